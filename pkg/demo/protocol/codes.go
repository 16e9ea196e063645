package protocol

import "fmt"

// MessageCode identifies a message in the packet stream. The net and svc
// ranges do not overlap.
type MessageCode uint32

const (
	NET_NOP                MessageCode = 0
	NET_DISCONNECT         MessageCode = 1
	NET_FILE               MessageCode = 2
	NET_SPLIT_SCREEN_USER  MessageCode = 3
	NET_TICK               MessageCode = 4
	NET_STRING_CMD         MessageCode = 5
	NET_SET_CON_VAR        MessageCode = 6
	NET_SIGNON_STATE       MessageCode = 7
	NET_PLAYER_AVATAR_DATA MessageCode = 100

	SVC_SERVER_INFO         MessageCode = 8
	SVC_SEND_TABLE          MessageCode = 9
	SVC_CLASS_INFO          MessageCode = 10
	SVC_SET_PAUSE           MessageCode = 11
	SVC_CREATE_STRING_TABLE MessageCode = 12
	SVC_UPDATE_STRING_TABLE MessageCode = 13
	SVC_VOICE_INIT          MessageCode = 14
	SVC_VOICE_DATA          MessageCode = 15
	SVC_PRINT               MessageCode = 16
	SVC_SOUNDS              MessageCode = 17
	SVC_SET_VIEW            MessageCode = 18
	SVC_FIX_ANGLE           MessageCode = 19
	SVC_CROSSHAIR_ANGLE     MessageCode = 20
	SVC_BSP_DECAL           MessageCode = 21
	SVC_SPLIT_SCREEN        MessageCode = 22
	SVC_USER_MESSAGE        MessageCode = 23
	SVC_ENTITY_MESSAGE      MessageCode = 24
	SVC_GAME_EVENT          MessageCode = 25
	SVC_PACKET_ENTITIES     MessageCode = 26
	SVC_TEMP_ENTITIES       MessageCode = 27
	SVC_PREFETCH            MessageCode = 28
	SVC_MENU                MessageCode = 29
	SVC_GAME_EVENT_LIST     MessageCode = 30
	SVC_GET_CVAR_VALUE      MessageCode = 31
	SVC_PAINTMAP_DATA       MessageCode = 33
	SVC_CMD_KEY_VALUES      MessageCode = 34
	SVC_ENCRYPTED_DATA      MessageCode = 35
	SVC_HLTV_REPLAY         MessageCode = 36
	SVC_BROADCAST_COMMAND   MessageCode = 38
)

func (c MessageCode) String() string {
	switch c {
	case NET_NOP:
		return "net_NOP"
	case NET_DISCONNECT:
		return "net_Disconnect"
	case NET_FILE:
		return "net_File"
	case NET_SPLIT_SCREEN_USER:
		return "net_SplitScreenUser"
	case NET_TICK:
		return "net_Tick"
	case NET_STRING_CMD:
		return "net_StringCmd"
	case NET_SET_CON_VAR:
		return "net_SetConVar"
	case NET_SIGNON_STATE:
		return "net_SignonState"
	case NET_PLAYER_AVATAR_DATA:
		return "net_PlayerAvatarData"
	case SVC_SERVER_INFO:
		return "svc_ServerInfo"
	case SVC_SEND_TABLE:
		return "svc_SendTable"
	case SVC_CLASS_INFO:
		return "svc_ClassInfo"
	case SVC_SET_PAUSE:
		return "svc_SetPause"
	case SVC_CREATE_STRING_TABLE:
		return "svc_CreateStringTable"
	case SVC_UPDATE_STRING_TABLE:
		return "svc_UpdateStringTable"
	case SVC_VOICE_INIT:
		return "svc_VoiceInit"
	case SVC_VOICE_DATA:
		return "svc_VoiceData"
	case SVC_PRINT:
		return "svc_Print"
	case SVC_SOUNDS:
		return "svc_Sounds"
	case SVC_SET_VIEW:
		return "svc_SetView"
	case SVC_FIX_ANGLE:
		return "svc_FixAngle"
	case SVC_CROSSHAIR_ANGLE:
		return "svc_CrosshairAngle"
	case SVC_BSP_DECAL:
		return "svc_BSPDecal"
	case SVC_SPLIT_SCREEN:
		return "svc_SplitScreen"
	case SVC_USER_MESSAGE:
		return "svc_UserMessage"
	case SVC_ENTITY_MESSAGE:
		return "svc_EntityMessage"
	case SVC_GAME_EVENT:
		return "svc_GameEvent"
	case SVC_PACKET_ENTITIES:
		return "svc_PacketEntities"
	case SVC_TEMP_ENTITIES:
		return "svc_TempEntities"
	case SVC_PREFETCH:
		return "svc_Prefetch"
	case SVC_MENU:
		return "svc_Menu"
	case SVC_GAME_EVENT_LIST:
		return "svc_GameEventList"
	case SVC_GET_CVAR_VALUE:
		return "svc_GetCvarValue"
	case SVC_PAINTMAP_DATA:
		return "svc_PaintmapData"
	case SVC_CMD_KEY_VALUES:
		return "svc_CmdKeyValues"
	case SVC_ENCRYPTED_DATA:
		return "svc_EncryptedData"
	case SVC_HLTV_REPLAY:
		return "svc_HltvReplay"
	case SVC_BROADCAST_COMMAND:
		return "svc_Broadcast_Command"
	}
	return fmt.Sprintf("unknown(%d)", uint32(c))
}

// UserMessageCode identifies a message carried inside svc_UserMessage.
type UserMessageCode uint32

const (
	UM_VGUI_MENU                         UserMessageCode = 1
	UM_GEIGER                            UserMessageCode = 2
	UM_TRAIN                             UserMessageCode = 3
	UM_HUD_TEXT                          UserMessageCode = 4
	UM_SAY_TEXT                          UserMessageCode = 5
	UM_SAY_TEXT2                         UserMessageCode = 6
	UM_TEXT_MSG                          UserMessageCode = 7
	UM_HUD_MSG                           UserMessageCode = 8
	UM_RESET_HUD                         UserMessageCode = 9
	UM_GAME_TITLE                        UserMessageCode = 10
	UM_SHAKE                             UserMessageCode = 12
	UM_FADE                              UserMessageCode = 13
	UM_RUMBLE                            UserMessageCode = 14
	UM_CLOSE_CAPTION                     UserMessageCode = 15
	UM_CLOSE_CAPTION_DIRECT              UserMessageCode = 16
	UM_SEND_AUDIO                        UserMessageCode = 17
	UM_RAW_AUDIO                         UserMessageCode = 18
	UM_VOICE_MASK                        UserMessageCode = 19
	UM_REQUEST_STATE                     UserMessageCode = 20
	UM_DAMAGE                            UserMessageCode = 21
	UM_RADIO_TEXT                        UserMessageCode = 22
	UM_HINT_TEXT                         UserMessageCode = 23
	UM_KEY_HINT_TEXT                     UserMessageCode = 24
	UM_PROCESS_SPOTTED_ENTITY_UPDATE     UserMessageCode = 25
	UM_RELOAD_EFFECT                     UserMessageCode = 26
	UM_ADJUST_MONEY                      UserMessageCode = 27
	UM_UPDATE_TEAM_MONEY                 UserMessageCode = 28
	UM_STOP_SPECTATOR_MODE               UserMessageCode = 29
	UM_KILL_CAM                          UserMessageCode = 30
	UM_DESIRED_TIMESCALE                 UserMessageCode = 31
	UM_CURRENT_TIMESCALE                 UserMessageCode = 32
	UM_ACHIEVEMENT_EVENT                 UserMessageCode = 33
	UM_MATCH_END_CONDITIONS              UserMessageCode = 34
	UM_DISCONNECT_TO_LOBBY               UserMessageCode = 35
	UM_PLAYER_STATS_UPDATE               UserMessageCode = 36
	UM_DISPLAY_INVENTORY                 UserMessageCode = 37
	UM_WARMUP_HAS_ENDED                  UserMessageCode = 38
	UM_CLIENT_INFO                       UserMessageCode = 39
	UM_X_RANK_GET                        UserMessageCode = 40
	UM_X_RANK_UPD                        UserMessageCode = 41
	UM_CALL_VOTE_FAILED                  UserMessageCode = 45
	UM_VOTE_START                        UserMessageCode = 46
	UM_VOTE_PASS                         UserMessageCode = 47
	UM_VOTE_FAILED                       UserMessageCode = 48
	UM_VOTE_SETUP                        UserMessageCode = 49
	UM_SERVER_RANK_REVEAL_ALL            UserMessageCode = 50
	UM_SEND_LAST_KILLER_DAMAGE_TO_CLIENT UserMessageCode = 51
	UM_SERVER_RANK_UPDATE                UserMessageCode = 52
	UM_ITEM_PICKUP                       UserMessageCode = 53
	UM_SHOW_MENU                         UserMessageCode = 54
	UM_BAR_TIME                          UserMessageCode = 55
	UM_AMMO_DENIED                       UserMessageCode = 56
	UM_MARK_ACHIEVEMENT                  UserMessageCode = 57
	UM_MATCH_STATS_UPDATE                UserMessageCode = 58
	UM_ITEM_DROP                         UserMessageCode = 59
	UM_GLOW_PROP_TURN_OFF                UserMessageCode = 60
	UM_SEND_PLAYER_ITEM_DROPS            UserMessageCode = 61
	UM_ROUND_BACKUP_FILENAMES            UserMessageCode = 62
	UM_SEND_PLAYER_ITEM_FOUND            UserMessageCode = 63
	UM_REPORT_HIT                        UserMessageCode = 64
	UM_XP_UPDATE                         UserMessageCode = 65
	UM_QUEST_PROGRESS                    UserMessageCode = 66
	UM_SCORE_LEADERBOARD_DATA            UserMessageCode = 67
	UM_PLAYER_DECAL_DIGITAL_SIGNATURE    UserMessageCode = 68
	UM_WEAPON_SOUND                      UserMessageCode = 69
	UM_UPDATE_SCREEN_HEALTH_BAR          UserMessageCode = 70
	UM_ENTITY_OUTLINE_HIGHLIGHT          UserMessageCode = 71
	UM_SSUI                              UserMessageCode = 72
	UM_SURVIVAL_STATS                    UserMessageCode = 73
	UM_DISCONNECT_TO_LOBBY2              UserMessageCode = 74
	UM_END_OF_MATCH_ALL_PLAYERS_DATA     UserMessageCode = 75
	UM_ROUND_IMPACT_SCORE_DATA           UserMessageCode = 76
	UM_CURRENT_ROUND_ODDS                UserMessageCode = 77
	UM_DEEP_STATS                        UserMessageCode = 78
)

func (c UserMessageCode) String() string {
	switch c {
	case UM_VGUI_MENU:
		return "CS_UM_VGUIMenu"
	case UM_GEIGER:
		return "CS_UM_Geiger"
	case UM_TRAIN:
		return "CS_UM_Train"
	case UM_HUD_TEXT:
		return "CS_UM_HudText"
	case UM_SAY_TEXT:
		return "CS_UM_SayText"
	case UM_SAY_TEXT2:
		return "CS_UM_SayText2"
	case UM_TEXT_MSG:
		return "CS_UM_TextMsg"
	case UM_HUD_MSG:
		return "CS_UM_HudMsg"
	case UM_RESET_HUD:
		return "CS_UM_ResetHud"
	case UM_GAME_TITLE:
		return "CS_UM_GameTitle"
	case UM_SHAKE:
		return "CS_UM_Shake"
	case UM_FADE:
		return "CS_UM_Fade"
	case UM_RUMBLE:
		return "CS_UM_Rumble"
	case UM_CLOSE_CAPTION:
		return "CS_UM_CloseCaption"
	case UM_CLOSE_CAPTION_DIRECT:
		return "CS_UM_CloseCaptionDirect"
	case UM_SEND_AUDIO:
		return "CS_UM_SendAudio"
	case UM_RAW_AUDIO:
		return "CS_UM_RawAudio"
	case UM_VOICE_MASK:
		return "CS_UM_VoiceMask"
	case UM_REQUEST_STATE:
		return "CS_UM_RequestState"
	case UM_DAMAGE:
		return "CS_UM_Damage"
	case UM_RADIO_TEXT:
		return "CS_UM_RadioText"
	case UM_HINT_TEXT:
		return "CS_UM_HintText"
	case UM_KEY_HINT_TEXT:
		return "CS_UM_KeyHintText"
	case UM_PROCESS_SPOTTED_ENTITY_UPDATE:
		return "CS_UM_ProcessSpottedEntityUpdate"
	case UM_RELOAD_EFFECT:
		return "CS_UM_ReloadEffect"
	case UM_ADJUST_MONEY:
		return "CS_UM_AdjustMoney"
	case UM_UPDATE_TEAM_MONEY:
		return "CS_UM_UpdateTeamMoney"
	case UM_STOP_SPECTATOR_MODE:
		return "CS_UM_StopSpectatorMode"
	case UM_KILL_CAM:
		return "CS_UM_KillCam"
	case UM_DESIRED_TIMESCALE:
		return "CS_UM_DesiredTimescale"
	case UM_CURRENT_TIMESCALE:
		return "CS_UM_CurrentTimescale"
	case UM_ACHIEVEMENT_EVENT:
		return "CS_UM_AchievementEvent"
	case UM_MATCH_END_CONDITIONS:
		return "CS_UM_MatchEndConditions"
	case UM_DISCONNECT_TO_LOBBY:
		return "CS_UM_DisconnectToLobby"
	case UM_PLAYER_STATS_UPDATE:
		return "CS_UM_PlayerStatsUpdate"
	case UM_DISPLAY_INVENTORY:
		return "CS_UM_DisplayInventory"
	case UM_WARMUP_HAS_ENDED:
		return "CS_UM_WarmupHasEnded"
	case UM_CLIENT_INFO:
		return "CS_UM_ClientInfo"
	case UM_X_RANK_GET:
		return "CS_UM_XRankGet"
	case UM_X_RANK_UPD:
		return "CS_UM_XRankUpd"
	case UM_CALL_VOTE_FAILED:
		return "CS_UM_CallVoteFailed"
	case UM_VOTE_START:
		return "CS_UM_VoteStart"
	case UM_VOTE_PASS:
		return "CS_UM_VotePass"
	case UM_VOTE_FAILED:
		return "CS_UM_VoteFailed"
	case UM_VOTE_SETUP:
		return "CS_UM_VoteSetup"
	case UM_SERVER_RANK_REVEAL_ALL:
		return "CS_UM_ServerRankRevealAll"
	case UM_SEND_LAST_KILLER_DAMAGE_TO_CLIENT:
		return "CS_UM_SendLastKillerDamageToClient"
	case UM_SERVER_RANK_UPDATE:
		return "CS_UM_ServerRankUpdate"
	case UM_ITEM_PICKUP:
		return "CS_UM_ItemPickup"
	case UM_SHOW_MENU:
		return "CS_UM_ShowMenu"
	case UM_BAR_TIME:
		return "CS_UM_BarTime"
	case UM_AMMO_DENIED:
		return "CS_UM_AmmoDenied"
	case UM_MARK_ACHIEVEMENT:
		return "CS_UM_MarkAchievement"
	case UM_MATCH_STATS_UPDATE:
		return "CS_UM_MatchStatsUpdate"
	case UM_ITEM_DROP:
		return "CS_UM_ItemDrop"
	case UM_GLOW_PROP_TURN_OFF:
		return "CS_UM_GlowPropTurnOff"
	case UM_SEND_PLAYER_ITEM_DROPS:
		return "CS_UM_SendPlayerItemDrops"
	case UM_ROUND_BACKUP_FILENAMES:
		return "CS_UM_RoundBackupFilenames"
	case UM_SEND_PLAYER_ITEM_FOUND:
		return "CS_UM_SendPlayerItemFound"
	case UM_REPORT_HIT:
		return "CS_UM_ReportHit"
	case UM_XP_UPDATE:
		return "CS_UM_XpUpdate"
	case UM_QUEST_PROGRESS:
		return "CS_UM_QuestProgress"
	case UM_SCORE_LEADERBOARD_DATA:
		return "CS_UM_ScoreLeaderboardData"
	case UM_PLAYER_DECAL_DIGITAL_SIGNATURE:
		return "CS_UM_PlayerDecalDigitalSignature"
	case UM_WEAPON_SOUND:
		return "CS_UM_WeaponSound"
	case UM_UPDATE_SCREEN_HEALTH_BAR:
		return "CS_UM_UpdateScreenHealthBar"
	case UM_ENTITY_OUTLINE_HIGHLIGHT:
		return "CS_UM_EntityOutlineHighlight"
	case UM_SSUI:
		return "CS_UM_SSUI"
	case UM_SURVIVAL_STATS:
		return "CS_UM_SurvivalStats"
	case UM_DISCONNECT_TO_LOBBY2:
		return "CS_UM_DisconnectToLobby2"
	case UM_END_OF_MATCH_ALL_PLAYERS_DATA:
		return "CS_UM_EndOfMatchAllPlayersData"
	case UM_ROUND_IMPACT_SCORE_DATA:
		return "CS_UM_RoundImpactScoreData"
	case UM_CURRENT_ROUND_ODDS:
		return "CS_UM_CurrentRoundOdds"
	case UM_DEEP_STATS:
		return "CS_UM_DeepStats"
	}
	return fmt.Sprintf("CS_UM_unknown(%d)", uint32(c))
}
