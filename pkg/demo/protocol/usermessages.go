package protocol

type VGUIMenuSubkey struct {
	Name string `pb:"1"`
	Str  string `pb:"2"`
}

// CS_UM_VGUIMenu
type VGUIMenu struct {
	Name    string           `pb:"1"`
	Show    bool             `pb:"2"`
	Subkeys []VGUIMenuSubkey `pb:"3"`
}

func (m VGUIMenu) Type() UserMessageCode { return UM_VGUI_MENU }

// CS_UM_Geiger
type Geiger struct {
	Range int32 `pb:"1"`
}

func (m Geiger) Type() UserMessageCode { return UM_GEIGER }

// CS_UM_Train
type Train struct {
	Train int32 `pb:"1"`
}

func (m Train) Type() UserMessageCode { return UM_TRAIN }

// CS_UM_HudText
type HudText struct {
	Text string `pb:"1"`
}

func (m HudText) Type() UserMessageCode { return UM_HUD_TEXT }

// CS_UM_SayText
type SayText struct {
	EntIdx      int32  `pb:"1"`
	Text        string `pb:"2"`
	Chat        bool   `pb:"3"`
	TextAllChat bool   `pb:"4"`
}

func (m SayText) Type() UserMessageCode { return UM_SAY_TEXT }

// CS_UM_SayText2
type SayText2 struct {
	EntIdx      int32    `pb:"1"`
	Chat        bool     `pb:"2"`
	MsgName     string   `pb:"3"`
	Params      []string `pb:"4"`
	TextAllChat bool     `pb:"5"`
}

func (m SayText2) Type() UserMessageCode { return UM_SAY_TEXT2 }

// CS_UM_TextMsg
type TextMsg struct {
	MsgDst int32    `pb:"1"`
	Params []string `pb:"3"`
}

func (m TextMsg) Type() UserMessageCode { return UM_TEXT_MSG }

type Vector2D struct {
	X float32 `pb:"1"`
	Y float32 `pb:"2"`
}

type RGBA struct {
	R int32 `pb:"1"`
	G int32 `pb:"2"`
	B int32 `pb:"3"`
	A int32 `pb:"4"`
}

// CS_UM_HudMsg
type HudMsg struct {
	Channel     int32    `pb:"1"`
	Pos         Vector2D `pb:"2"`
	Color1      RGBA     `pb:"3"`
	Color2      RGBA     `pb:"4"`
	Effect      int32    `pb:"5"`
	FadeInTime  float32  `pb:"6"`
	FadeOutTime float32  `pb:"7"`
	HoldTime    float32  `pb:"9"`
	FxTime      float32  `pb:"10"`
	Text        string   `pb:"11"`
}

func (m HudMsg) Type() UserMessageCode { return UM_HUD_MSG }

// CS_UM_ResetHud
type ResetHud struct {
	Reset bool `pb:"1"`
}

func (m ResetHud) Type() UserMessageCode { return UM_RESET_HUD }

// CS_UM_GameTitle
type GameTitle struct {
	Dummy int32 `pb:"1"`
}

func (m GameTitle) Type() UserMessageCode { return UM_GAME_TITLE }

// CS_UM_Shake
type Shake struct {
	Command        int32   `pb:"1"`
	LocalAmplitude float32 `pb:"2"`
	Frequency      float32 `pb:"3"`
	Duration       float32 `pb:"4"`
}

func (m Shake) Type() UserMessageCode { return UM_SHAKE }

// CS_UM_Fade
type Fade struct {
	Duration int32 `pb:"1"`
	HoldTime int32 `pb:"2"`
	Flags    int32 `pb:"3"`
	Color    RGBA  `pb:"4"`
}

func (m Fade) Type() UserMessageCode { return UM_FADE }

// CS_UM_Rumble
type Rumble struct {
	Index int32 `pb:"1"`
	Data  int32 `pb:"2"`
	Flags int32 `pb:"3"`
}

func (m Rumble) Type() UserMessageCode { return UM_RUMBLE }

// CS_UM_CloseCaption
type CloseCaption struct {
	Hash       uint32 `pb:"1"`
	Duration   int32  `pb:"2"`
	FromPlayer bool   `pb:"3"`
	CCToken    string `pb:"4"`
}

func (m CloseCaption) Type() UserMessageCode { return UM_CLOSE_CAPTION }

// CS_UM_CloseCaptionDirect
type CloseCaptionDirect struct {
	Hash       uint32 `pb:"1"`
	Duration   int32  `pb:"2"`
	FromPlayer bool   `pb:"3"`
}

func (m CloseCaptionDirect) Type() UserMessageCode { return UM_CLOSE_CAPTION_DIRECT }

// CS_UM_SendAudio
type SendAudio struct {
	RadioSound string `pb:"1"`
}

func (m SendAudio) Type() UserMessageCode { return UM_SEND_AUDIO }

// CS_UM_RawAudio
type RawAudio struct {
	Pitch         int32   `pb:"1"`
	EntIdx        int32   `pb:"2"`
	Duration      float32 `pb:"3"`
	VoiceFilename string  `pb:"4"`
}

func (m RawAudio) Type() UserMessageCode { return UM_RAW_AUDIO }

type PlayerMask struct {
	GameRulesMask int32 `pb:"1"`
	BanMasks      int32 `pb:"2"`
}

// CS_UM_VoiceMask
type VoiceMask struct {
	PlayerMasks     []PlayerMask `pb:"1"`
	PlayerModEnable bool         `pb:"2"`
}

func (m VoiceMask) Type() UserMessageCode { return UM_VOICE_MASK }

// CS_UM_RequestState
type RequestState struct {
	Dummy int32 `pb:"1"`
}

func (m RequestState) Type() UserMessageCode { return UM_REQUEST_STATE }

// CS_UM_Damage
type Damage struct {
	Amount            int32  `pb:"1"`
	InflictorWorldPos Vector `pb:"2"`
	VictimEntIndex    int32  `pb:"3"`
}

func (m Damage) Type() UserMessageCode { return UM_DAMAGE }

// CS_UM_RadioText
type RadioText struct {
	MsgDst  int32    `pb:"1"`
	Client  int32    `pb:"2"`
	MsgName string   `pb:"3"`
	Params  []string `pb:"4"`
}

func (m RadioText) Type() UserMessageCode { return UM_RADIO_TEXT }

// CS_UM_HintText
type HintText struct {
	Text string `pb:"1"`
}

func (m HintText) Type() UserMessageCode { return UM_HINT_TEXT }

// CS_UM_KeyHintText
type KeyHintText struct {
	Hints []string `pb:"1"`
}

func (m KeyHintText) Type() UserMessageCode { return UM_KEY_HINT_TEXT }

type SpottedEntityUpdate struct {
	EntityIdx        int32 `pb:"1"`
	ClassID          int32 `pb:"2"`
	OriginX          int32 `pb:"3"`
	OriginY          int32 `pb:"4"`
	OriginZ          int32 `pb:"5"`
	AngleY           int32 `pb:"6"`
	Defuser          bool  `pb:"7"`
	PlayerHasDefuser bool  `pb:"8"`
	PlayerHasC4      bool  `pb:"9"`
}

// CS_UM_ProcessSpottedEntityUpdate
type ProcessSpottedEntityUpdate struct {
	NewUpdate     bool                  `pb:"1"`
	EntityUpdates []SpottedEntityUpdate `pb:"2"`
}

func (m ProcessSpottedEntityUpdate) Type() UserMessageCode { return UM_PROCESS_SPOTTED_ENTITY_UPDATE }

// CS_UM_ReloadEffect
type ReloadEffect struct {
	EntIdx  int32   `pb:"1"`
	ActAnim int32   `pb:"2"`
	OriginX float32 `pb:"3"`
	OriginY float32 `pb:"4"`
	OriginZ float32 `pb:"5"`
}

func (m ReloadEffect) Type() UserMessageCode { return UM_RELOAD_EFFECT }

// CS_UM_AdjustMoney
type AdjustMoney struct {
	Amount int32 `pb:"1"`
}

func (m AdjustMoney) Type() UserMessageCode { return UM_ADJUST_MONEY }

// CS_UM_StopSpectatorMode
type StopSpectatorMode struct {
	Dummy int32 `pb:"1"`
}

func (m StopSpectatorMode) Type() UserMessageCode { return UM_STOP_SPECTATOR_MODE }

// CS_UM_KillCam
type KillCam struct {
	ObsMode      int32 `pb:"1"`
	FirstTarget  int32 `pb:"2"`
	SecondTarget int32 `pb:"3"`
}

func (m KillCam) Type() UserMessageCode { return UM_KILL_CAM }

// CS_UM_DesiredTimescale
type DesiredTimescale struct {
	DesiredTimescale    float32 `pb:"1"`
	DurationRealtimeSec float32 `pb:"2"`
	InterpolatorType    int32   `pb:"3"`
	StartBlendTime      float32 `pb:"4"`
}

func (m DesiredTimescale) Type() UserMessageCode { return UM_DESIRED_TIMESCALE }

// CS_UM_CurrentTimescale
type CurrentTimescale struct {
	CurTimescale float32 `pb:"1"`
}

func (m CurrentTimescale) Type() UserMessageCode { return UM_CURRENT_TIMESCALE }

// CS_UM_AchievementEvent
type AchievementEvent struct {
	Achievement int32 `pb:"1"`
	Count       int32 `pb:"2"`
	UserID      int32 `pb:"3"`
}

func (m AchievementEvent) Type() UserMessageCode { return UM_ACHIEVEMENT_EVENT }

// CS_UM_MatchEndConditions
type MatchEndConditions struct {
	FragLimit int32 `pb:"1"`
	MaxRounds int32 `pb:"2"`
	WinLimit  int32 `pb:"3"`
	TimeLimit int32 `pb:"4"`
}

func (m MatchEndConditions) Type() UserMessageCode { return UM_MATCH_END_CONDITIONS }

// CS_UM_DisconnectToLobby
type DisconnectToLobby struct {
	Dummy int32 `pb:"1"`
}

func (m DisconnectToLobby) Type() UserMessageCode { return UM_DISCONNECT_TO_LOBBY }

type PlayerStat struct {
	Idx   int32 `pb:"1"`
	Delta int32 `pb:"2"`
}

// CS_UM_PlayerStatsUpdate
type PlayerStatsUpdate struct {
	Version int32        `pb:"1"`
	Stats   []PlayerStat `pb:"4"`
	UserID  int32        `pb:"5"`
	CRC     int32        `pb:"6"`
}

func (m PlayerStatsUpdate) Type() UserMessageCode { return UM_PLAYER_STATS_UPDATE }

// CS_UM_DisplayInventory
type DisplayInventory struct {
	Display bool  `pb:"1"`
	UserID  int32 `pb:"2"`
}

func (m DisplayInventory) Type() UserMessageCode { return UM_DISPLAY_INVENTORY }

// CS_UM_WarmupHasEnded
type WarmupHasEnded struct {
	Dummy int32 `pb:"1"`
}

func (m WarmupHasEnded) Type() UserMessageCode { return UM_WARMUP_HAS_ENDED }

// CS_UM_ClientInfo
type ClientInfo struct {
	Dummy int32 `pb:"1"`
}

func (m ClientInfo) Type() UserMessageCode { return UM_CLIENT_INFO }

// CS_UM_XRankGet
type XRankGet struct {
	ModeIdx    int32 `pb:"1"`
	Controller int32 `pb:"2"`
}

func (m XRankGet) Type() UserMessageCode { return UM_X_RANK_GET }

// CS_UM_XRankUpd
type XRankUpd struct {
	ModeIdx    int32 `pb:"1"`
	Controller int32 `pb:"2"`
	Ranking    int32 `pb:"3"`
}

func (m XRankUpd) Type() UserMessageCode { return UM_X_RANK_UPD }

// CS_UM_CallVoteFailed
type CallVoteFailed struct {
	Reason int32 `pb:"1"`
	Time   int32 `pb:"2"`
}

func (m CallVoteFailed) Type() UserMessageCode { return UM_CALL_VOTE_FAILED }

// CS_UM_VoteStart
type VoteStart struct {
	Team         int32  `pb:"1"`
	EntIdx       int32  `pb:"2"`
	VoteType     int32  `pb:"3"`
	DispStr      string `pb:"4"`
	DetailsStr   string `pb:"5"`
	OtherTeamStr string `pb:"6"`
	IsYesNoVote  bool   `pb:"7"`
	EntIdxTarget int32  `pb:"8"`
}

func (m VoteStart) Type() UserMessageCode { return UM_VOTE_START }

// CS_UM_VotePass
type VotePass struct {
	Team       int32  `pb:"1"`
	VoteType   int32  `pb:"2"`
	DispStr    string `pb:"3"`
	DetailsStr string `pb:"4"`
}

func (m VotePass) Type() UserMessageCode { return UM_VOTE_PASS }

// CS_UM_VoteFailed
type VoteFailed struct {
	Team   int32 `pb:"1"`
	Reason int32 `pb:"2"`
}

func (m VoteFailed) Type() UserMessageCode { return UM_VOTE_FAILED }

// CS_UM_VoteSetup
type VoteSetup struct {
	PotentialIssues []string `pb:"1"`
}

func (m VoteSetup) Type() UserMessageCode { return UM_VOTE_SETUP }

// CS_UM_ServerRankRevealAll
type ServerRankRevealAll struct {
	SecondsTillShutdown int32  `pb:"1"`
	Reservation         []byte `pb:"2"`
}

func (m ServerRankRevealAll) Type() UserMessageCode { return UM_SERVER_RANK_REVEAL_ALL }

// CS_UM_SendLastKillerDamageToClient
type SendLastKillerDamageToClient struct {
	NumHitsGiven int32 `pb:"1"`
	DamageGiven  int32 `pb:"2"`
	NumHitsTaken int32 `pb:"3"`
	DamageTaken  int32 `pb:"4"`
}

func (m SendLastKillerDamageToClient) Type() UserMessageCode { return UM_SEND_LAST_KILLER_DAMAGE_TO_CLIENT }

type RankUpdate struct {
	AccountID  int32   `pb:"1"`
	RankOld    int32   `pb:"2"`
	RankNew    int32   `pb:"3"`
	NumWins    int32   `pb:"4"`
	RankChange float32 `pb:"5"`
	RankTypeID int32   `pb:"6"`
}

// CS_UM_ServerRankUpdate
type ServerRankUpdate struct {
	RankUpdates []RankUpdate `pb:"1"`
}

func (m ServerRankUpdate) Type() UserMessageCode { return UM_SERVER_RANK_UPDATE }

// CS_UM_ItemPickup
type ItemPickup struct {
	Item string `pb:"1"`
}

func (m ItemPickup) Type() UserMessageCode { return UM_ITEM_PICKUP }

// CS_UM_ShowMenu
type ShowMenu struct {
	BitsValidSlots int32  `pb:"1"`
	DisplayTime    int32  `pb:"2"`
	MenuString     string `pb:"3"`
}

func (m ShowMenu) Type() UserMessageCode { return UM_SHOW_MENU }

// CS_UM_BarTime
type BarTime struct {
	Time string `pb:"1"`
}

func (m BarTime) Type() UserMessageCode { return UM_BAR_TIME }

// CS_UM_AmmoDenied
type AmmoDenied struct {
	AmmoIdx int32 `pb:"1"`
}

func (m AmmoDenied) Type() UserMessageCode { return UM_AMMO_DENIED }

// CS_UM_MarkAchievement
type MarkAchievement struct {
	Achievement string `pb:"1"`
}

func (m MarkAchievement) Type() UserMessageCode { return UM_MARK_ACHIEVEMENT }

// CS_UM_MatchStatsUpdate
type MatchStatsUpdate struct {
	Update string `pb:"1"`
}

func (m MatchStatsUpdate) Type() UserMessageCode { return UM_MATCH_STATS_UPDATE }

// CS_UM_ItemDrop
type ItemDrop struct {
	ItemID int64 `pb:"1"`
	Death  bool  `pb:"2"`
}

func (m ItemDrop) Type() UserMessageCode { return UM_ITEM_DROP }

// CS_UM_GlowPropTurnOff
type GlowPropTurnOff struct {
	EntIdx int32 `pb:"1"`
}

func (m GlowPropTurnOff) Type() UserMessageCode { return UM_GLOW_PROP_TURN_OFF }

// CS_UM_SendPlayerItemDrops
type SendPlayerItemDrops struct {
	EntityUpdates [][]byte `pb:"1"`
}

func (m SendPlayerItemDrops) Type() UserMessageCode { return UM_SEND_PLAYER_ITEM_DROPS }

// CS_UM_RoundBackupFilenames
type RoundBackupFilenames struct {
	Count    int32  `pb:"1"`
	Index    int32  `pb:"2"`
	Filename string `pb:"3"`
	NiceName string `pb:"4"`
}

func (m RoundBackupFilenames) Type() UserMessageCode { return UM_ROUND_BACKUP_FILENAMES }

// CS_UM_SendPlayerItemFound
type SendPlayerItemFound struct {
	ItemInfo []byte `pb:"1"`
	EntIndex int32  `pb:"2"`
}

func (m SendPlayerItemFound) Type() UserMessageCode { return UM_SEND_PLAYER_ITEM_FOUND }

// CS_UM_ReportHit
type ReportHit struct {
	PosX      float32 `pb:"1"`
	PosY      float32 `pb:"2"`
	PosZ      float32 `pb:"3"`
	Timestamp float32 `pb:"4"`
}

func (m ReportHit) Type() UserMessageCode { return UM_REPORT_HIT }

// CS_UM_XpUpdate
type XpUpdate struct {
	Data []byte `pb:"1"`
}

func (m XpUpdate) Type() UserMessageCode { return UM_XP_UPDATE }

// CS_UM_QuestProgress
type QuestProgress struct {
	QuestID      uint32 `pb:"1"`
	NormalPoints uint32 `pb:"2"`
	BonusPoints  uint32 `pb:"3"`
	IsEventQuest bool   `pb:"4"`
}

func (m QuestProgress) Type() UserMessageCode { return UM_QUEST_PROGRESS }

// CS_UM_ScoreLeaderboardData
type ScoreLeaderboardData struct {
	Data []byte `pb:"1"`
}

func (m ScoreLeaderboardData) Type() UserMessageCode { return UM_SCORE_LEADERBOARD_DATA }

// CS_UM_PlayerDecalDigitalSignature
type PlayerDecalDigitalSignature struct {
	Data []byte `pb:"1"`
}

func (m PlayerDecalDigitalSignature) Type() UserMessageCode { return UM_PLAYER_DECAL_DIGITAL_SIGNATURE }

// CS_UM_WeaponSound
type WeaponSound struct {
	EntIdx    int32   `pb:"1"`
	OriginX   float32 `pb:"2"`
	OriginY   float32 `pb:"3"`
	OriginZ   float32 `pb:"4"`
	Sound     string  `pb:"5"`
	Timestamp float32 `pb:"6"`
}

func (m WeaponSound) Type() UserMessageCode { return UM_WEAPON_SOUND }

// CS_UM_UpdateScreenHealthBar
type UpdateScreenHealthBar struct {
	EntIdx         int32   `pb:"1"`
	HealthRatioOld float32 `pb:"2"`
	HealthRatioNew float32 `pb:"3"`
	Style          int32   `pb:"4"`
}

func (m UpdateScreenHealthBar) Type() UserMessageCode { return UM_UPDATE_SCREEN_HEALTH_BAR }

// CS_UM_EntityOutlineHighlight
type EntityOutlineHighlight struct {
	EntIdx          int32 `pb:"1"`
	RemoveHighlight bool  `pb:"2"`
}

func (m EntityOutlineHighlight) Type() UserMessageCode { return UM_ENTITY_OUTLINE_HIGHLIGHT }

// CS_UM_SSUI
type SSUI struct {
	Show      bool    `pb:"1"`
	StartTime float32 `pb:"2"`
	EndTime   float32 `pb:"3"`
}

func (m SSUI) Type() UserMessageCode { return UM_SSUI }

type SurvivalFact struct {
	Type            int32   `pb:"1"`
	Display         int32   `pb:"2"`
	Value           int32   `pb:"3"`
	Interestingness float32 `pb:"4"`
}

type SurvivalPlacement struct {
	XUID       uint64 `pb:"1"`
	TeamNumber int32  `pb:"2"`
	Placement  int32  `pb:"3"`
}

type SurvivalDamage struct {
	XUID     uint64 `pb:"1"`
	To       int32  `pb:"2"`
	ToHits   int32  `pb:"3"`
	From     int32  `pb:"4"`
	FromHits int32  `pb:"5"`
}

// CS_UM_SurvivalStats
type SurvivalStats struct {
	XUID       uint64              `pb:"1"`
	Facts      []SurvivalFact      `pb:"2"`
	Users      []SurvivalPlacement `pb:"3"`
	Damages    []SurvivalDamage    `pb:"4"`
	TickNumber int32               `pb:"5"`
}

func (m SurvivalStats) Type() UserMessageCode { return UM_SURVIVAL_STATS }

type EndOfMatchPlayer struct {
	EntIndex    int32    `pb:"1"`
	XUID        uint64   `pb:"2"`
	Name        string   `pb:"3"`
	TeamNumber  int32    `pb:"4"`
	Nomination  Accolade `pb:"5"`
	Items       [][]byte `pb:"6"`
	PlayerColor int32    `pb:"7"`
	IsBot       bool     `pb:"8"`
}

type Accolade struct {
	Accolade int32   `pb:"1"`
	Value    float32 `pb:"2"`
	Position int32   `pb:"3"`
}

// CS_UM_EndOfMatchAllPlayersData
type EndOfMatchAllPlayersData struct {
	AllPlayerData []EndOfMatchPlayer `pb:"1"`
	Scene         int32              `pb:"2"`
}

func (m EndOfMatchAllPlayersData) Type() UserMessageCode { return UM_END_OF_MATCH_ALL_PLAYERS_DATA }

// CS_UM_RoundImpactScoreData
type RoundImpactScoreData struct {
	InitConditions  []byte   `pb:"1"`
	AllRISEventData [][]byte `pb:"2"`
}

func (m RoundImpactScoreData) Type() UserMessageCode { return UM_ROUND_IMPACT_SCORE_DATA }

// CS_UM_CurrentRoundOdds
type CurrentRoundOdds struct {
	Odds int32 `pb:"1"`
}

func (m CurrentRoundOdds) Type() UserMessageCode { return UM_CURRENT_ROUND_ODDS }

// CS_UM_DeepStats
type DeepStats struct {
	Stats []byte `pb:"1"`
}

func (m DeepStats) Type() UserMessageCode { return UM_DEEP_STATS }
