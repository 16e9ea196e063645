package protocol

// svc_ServerInfo
type ServerInfo struct {
	Protocol                  int32   `pb:"1"`
	ServerCount               int32   `pb:"2"`
	IsDedicated               bool    `pb:"3"`
	IsOfficialValveServer     bool    `pb:"4"`
	IsHLTV                    bool    `pb:"5"`
	IsReplay                  bool    `pb:"6"`
	COS                       int32   `pb:"7"`
	MapCRC                    uint32  `pb:"8,fixed"`
	ClientCRC                 uint32  `pb:"9,fixed"`
	StringTableCRC            uint32  `pb:"10,fixed"`
	MaxClients                int32   `pb:"11"`
	MaxClasses                int32   `pb:"12"`
	PlayerSlot                int32   `pb:"13"`
	TickInterval              float32 `pb:"14"`
	GameDir                   string  `pb:"15"`
	MapName                   string  `pb:"16"`
	MapGroupName              string  `pb:"17"`
	SkyName                   string  `pb:"18"`
	HostName                  string  `pb:"19"`
	PublicIP                  uint32  `pb:"20"`
	IsRedirectingToProxyRelay bool    `pb:"21"`
	UGCMapID                  uint64  `pb:"22"`
}

func (m ServerInfo) Type() MessageCode { return SVC_SERVER_INFO }

type SendProp struct {
	Type        int32   `pb:"1"`
	VarName     string  `pb:"2"`
	Flags       int32   `pb:"3"`
	Priority    int32   `pb:"4"`
	DTName      string  `pb:"5"`
	NumElements int32   `pb:"6"`
	LowValue    float32 `pb:"7"`
	HighValue   float32 `pb:"8"`
	NumBits     int32   `pb:"9"`
}

// svc_SendTable
type SendTable struct {
	IsEnd        bool       `pb:"1"`
	NetTableName string     `pb:"2"`
	NeedsDecoder bool       `pb:"3"`
	Props        []SendProp `pb:"4"`
}

func (m SendTable) Type() MessageCode { return SVC_SEND_TABLE }

type ClassInfoEntry struct {
	ClassID       int32  `pb:"1"`
	DataTableName string `pb:"2"`
	ClassName     string `pb:"3"`
}

// svc_ClassInfo
type ClassInfo struct {
	CreateOnClient bool             `pb:"1"`
	Classes        []ClassInfoEntry `pb:"2"`
}

func (m ClassInfo) Type() MessageCode { return SVC_CLASS_INFO }

// svc_SetPause
type SetPause struct {
	Paused bool `pb:"1"`
}

func (m SetPause) Type() MessageCode { return SVC_SET_PAUSE }

// svc_CreateStringTable
type CreateStringTable struct {
	Name              string `pb:"1"`
	MaxEntries        int32  `pb:"2"`
	NumEntries        int32  `pb:"3"`
	UserDataFixedSize bool   `pb:"4"`
	UserDataSize      int32  `pb:"5"`
	UserDataSizeBits  int32  `pb:"6"`
	Flags             int32  `pb:"7"`
	StringData        []byte `pb:"8"`
}

func (m CreateStringTable) Type() MessageCode { return SVC_CREATE_STRING_TABLE }

// svc_UpdateStringTable
type UpdateStringTable struct {
	TableID           int32  `pb:"1"`
	NumChangedEntries int32  `pb:"2"`
	StringData        []byte `pb:"3"`
}

func (m UpdateStringTable) Type() MessageCode { return SVC_UPDATE_STRING_TABLE }

// svc_VoiceInit
type VoiceInit struct {
	Quality int32  `pb:"1"`
	Codec   string `pb:"2"`
	Version int32  `pb:"3"`
}

func (m VoiceInit) Type() MessageCode { return SVC_VOICE_INIT }

// svc_VoiceData
type VoiceData struct {
	Client                   int32  `pb:"1"`
	Proximity                bool   `pb:"2"`
	XUID                     uint64 `pb:"3,fixed"`
	AudibleMask              int32  `pb:"4"`
	VoiceData                []byte `pb:"5"`
	Caster                   bool   `pb:"6"`
	Format                   int32  `pb:"7"`
	SequenceBytes            int32  `pb:"8"`
	SectionNumber            uint32 `pb:"9"`
	UncompressedSampleOffset uint32 `pb:"10"`
}

func (m VoiceData) Type() MessageCode { return SVC_VOICE_DATA }

// svc_Print
type Print struct {
	Text string `pb:"1"`
}

func (m Print) Type() MessageCode { return SVC_PRINT }

type SoundInfo struct {
	OriginX        int32   `pb:"1,zigzag"`
	OriginY        int32   `pb:"2,zigzag"`
	OriginZ        int32   `pb:"3,zigzag"`
	Volume         uint32  `pb:"4"`
	DelayValue     float32 `pb:"5"`
	SequenceNumber int32   `pb:"6"`
	EntityIndex    int32   `pb:"7"`
	Channel        int32   `pb:"8"`
	Pitch          int32   `pb:"9"`
	Flags          int32   `pb:"10"`
	SoundNum       uint32  `pb:"11"`
	SoundNumHandle uint32  `pb:"12,fixed"`
	SpeakerEntity  int32   `pb:"13"`
	RandomSeed     int32   `pb:"14"`
	SoundLevel     int32   `pb:"15"`
	IsSentence     bool    `pb:"16"`
	IsAmbient      bool    `pb:"17"`
}

// svc_Sounds
type Sounds struct {
	ReliableSound bool        `pb:"1"`
	Sounds        []SoundInfo `pb:"2"`
}

func (m Sounds) Type() MessageCode { return SVC_SOUNDS }

// svc_SetView
type SetView struct {
	EntityIndex int32 `pb:"1"`
}

func (m SetView) Type() MessageCode { return SVC_SET_VIEW }

type Vector struct {
	X float32 `pb:"1"`
	Y float32 `pb:"2"`
	Z float32 `pb:"3"`
}

type QAngle struct {
	X float32 `pb:"1"`
	Y float32 `pb:"2"`
	Z float32 `pb:"3"`
}

// svc_FixAngle
type FixAngle struct {
	Relative bool   `pb:"1"`
	Angle    QAngle `pb:"2"`
}

func (m FixAngle) Type() MessageCode { return SVC_FIX_ANGLE }

// svc_CrosshairAngle
type CrosshairAngle struct {
	Angle QAngle `pb:"1"`
}

func (m CrosshairAngle) Type() MessageCode { return SVC_CROSSHAIR_ANGLE }

// svc_BSPDecal
type BSPDecal struct {
	Pos               Vector `pb:"1"`
	DecalTextureIndex int32  `pb:"2"`
	EntityIndex       int32  `pb:"3"`
	ModelIndex        int32  `pb:"4"`
	LowPriority       bool   `pb:"5"`
}

func (m BSPDecal) Type() MessageCode { return SVC_BSP_DECAL }

// svc_SplitScreen
type SplitScreen struct {
	SplitType   int32 `pb:"1"`
	Slot        int32 `pb:"2"`
	PlayerIndex int32 `pb:"3"`
}

func (m SplitScreen) Type() MessageCode { return SVC_SPLIT_SCREEN }

// svc_UserMessage
type UserMessage struct {
	MsgType     int32  `pb:"1"`
	MsgData     []byte `pb:"2"`
	Passthrough int32  `pb:"3"`
}

func (m UserMessage) Type() MessageCode { return SVC_USER_MESSAGE }

// svc_EntityMessage
type EntityMessage struct {
	EntIndex int32  `pb:"1"`
	ClassID  int32  `pb:"2"`
	EntData  []byte `pb:"3"`
}

func (m EntityMessage) Type() MessageCode { return SVC_ENTITY_MESSAGE }

type GameEventKey struct {
	Type       int32   `pb:"1"`
	ValString  string  `pb:"2"`
	ValFloat   float32 `pb:"3"`
	ValLong    int32   `pb:"4"`
	ValShort   int32   `pb:"5"`
	ValByte    int32   `pb:"6"`
	ValBool    bool    `pb:"7"`
	ValUint64  uint64  `pb:"8"`
	ValWString []byte  `pb:"9"`
}

// svc_GameEvent
type GameEvent struct {
	EventName   string         `pb:"1"`
	EventID     int32          `pb:"2"`
	Keys        []GameEventKey `pb:"3"`
	Passthrough int32          `pb:"4"`
}

func (m GameEvent) Type() MessageCode { return SVC_GAME_EVENT }

// svc_PacketEntities
type PacketEntities struct {
	MaxEntries     int32  `pb:"1"`
	UpdatedEntries int32  `pb:"2"`
	IsDelta        bool   `pb:"3"`
	UpdateBaseline bool   `pb:"4"`
	Baseline       int32  `pb:"5"`
	DeltaFrom      int32  `pb:"6"`
	EntityData     []byte `pb:"7"`
}

func (m PacketEntities) Type() MessageCode { return SVC_PACKET_ENTITIES }

// svc_TempEntities
type TempEntities struct {
	Reliable   bool   `pb:"1"`
	NumEntries int32  `pb:"2"`
	EntityData []byte `pb:"3"`
}

func (m TempEntities) Type() MessageCode { return SVC_TEMP_ENTITIES }

// svc_Prefetch
type Prefetch struct {
	SoundIndex int32 `pb:"1"`
}

func (m Prefetch) Type() MessageCode { return SVC_PREFETCH }

// svc_Menu
type Menu struct {
	DialogType    int32  `pb:"1"`
	MenuKeyValues []byte `pb:"2"`
}

func (m Menu) Type() MessageCode { return SVC_MENU }

type GameEventListKey struct {
	Type int32  `pb:"1"`
	Name string `pb:"2"`
}

type GameEventDescriptor struct {
	EventID int32              `pb:"1"`
	Name    string             `pb:"2"`
	Keys    []GameEventListKey `pb:"3"`
}

// svc_GameEventList
type GameEventList struct {
	Descriptors []GameEventDescriptor `pb:"1"`
}

func (m GameEventList) Type() MessageCode { return SVC_GAME_EVENT_LIST }

// svc_GetCvarValue
type GetCvarValue struct {
	Cookie   int32  `pb:"1"`
	CvarName string `pb:"2"`
}

func (m GetCvarValue) Type() MessageCode { return SVC_GET_CVAR_VALUE }

// svc_PaintmapData
type PaintmapData struct {
	Paintmap []byte `pb:"1"`
}

func (m PaintmapData) Type() MessageCode { return SVC_PAINTMAP_DATA }

// svc_CmdKeyValues
type CmdKeyValues struct {
	KeyValues []byte `pb:"1"`
}

func (m CmdKeyValues) Type() MessageCode { return SVC_CMD_KEY_VALUES }

// svc_EncryptedData
type EncryptedData struct {
	Encrypted []byte `pb:"1"`
	KeyType   int32  `pb:"2"`
}

func (m EncryptedData) Type() MessageCode { return SVC_ENCRYPTED_DATA }

// svc_HltvReplay
type HltvReplay struct {
	Delay               int32   `pb:"1"`
	PrimaryTarget       int32   `pb:"2"`
	ReplayStopAt        int32   `pb:"3"`
	ReplayStartAt       int32   `pb:"4"`
	ReplaySlowdownBegin int32   `pb:"5"`
	ReplaySlowdownEnd   int32   `pb:"6"`
	ReplaySlowdownRate  float32 `pb:"7"`
}

func (m HltvReplay) Type() MessageCode { return SVC_HLTV_REPLAY }

// svc_Broadcast_Command
type BroadcastCommand struct {
	Cmd string `pb:"1"`
}

func (m BroadcastCommand) Type() MessageCode { return SVC_BROADCAST_COMMAND }
