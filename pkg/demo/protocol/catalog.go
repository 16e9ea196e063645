package protocol

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/repeale/fp-go/option"
)

var ErrUnknownMessageKind = errors.New("unknown message kind")

type Message interface {
	Type() MessageCode
}

// UserMessageBody is a message carried inside svc_UserMessage.
type UserMessageBody interface {
	Type() UserMessageCode
}

var NET_MESSAGES = make(map[MessageCode]Message)
var SVC_MESSAGES = make(map[MessageCode]Message)
var USER_MESSAGES = make(map[UserMessageCode]UserMessageBody)

func registerNet(message Message) {
	NET_MESSAGES[message.Type()] = message
}

func registerSvc(message Message) {
	SVC_MESSAGES[message.Type()] = message
}

func registerUser(message UserMessageBody) {
	USER_MESSAGES[message.Type()] = message
}

// Lookup resolves a code against the net space first and then the svc space.
func Lookup(code MessageCode) opt.Option[Message] {
	if message, ok := NET_MESSAGES[code]; ok {
		return opt.Some(message)
	}

	if message, ok := SVC_MESSAGES[code]; ok {
		return opt.Some(message)
	}

	return opt.None[Message]()
}

func LookupUser(code UserMessageCode) opt.Option[UserMessageBody] {
	if message, ok := USER_MESSAGES[code]; ok {
		return opt.Some(message)
	}

	return opt.None[UserMessageBody]()
}

func newFromPrototype(prototype interface{}) reflect.Value {
	return reflect.New(reflect.TypeOf(prototype).Elem())
}

// Decode parses the payload of a single message. The returned value is
// always a pointer to the concrete message struct.
func Decode(code MessageCode, b []byte) (Message, error) {
	prototype := Lookup(code)
	if opt.IsNone(prototype) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessageKind, code)
	}

	value := newFromPrototype(prototype.Value)
	err := Unmarshal(b, value.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}

	return value.Interface().(Message), nil
}

// DecodeUser parses a user message payload. ok is false when the code has
// no message in the catalog.
func DecodeUser(code UserMessageCode, b []byte) (message UserMessageBody, ok bool, err error) {
	prototype := LookupUser(code)
	if opt.IsNone(prototype) {
		return nil, false, nil
	}

	value := newFromPrototype(prototype.Value)
	err = Unmarshal(b, value.Interface())
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", code, err)
	}

	return value.Interface().(UserMessageBody), true, nil
}

// Encode produces the payload for a message; it is the inverse of Decode.
func Encode(message Message) ([]byte, error) {
	return Marshal(message)
}

func EncodeUser(message UserMessageBody) ([]byte, error) {
	return Marshal(message)
}

func init() {
	registerNet(&NOP{})
	registerNet(&Disconnect{})
	registerNet(&File{})
	registerNet(&SplitScreenUser{})
	registerNet(&Tick{})
	registerNet(&StringCmd{})
	registerNet(&SetConVar{})
	registerNet(&SignonState{})
	registerNet(&PlayerAvatarData{})

	registerSvc(&ServerInfo{})
	registerSvc(&SendTable{})
	registerSvc(&ClassInfo{})
	registerSvc(&SetPause{})
	registerSvc(&CreateStringTable{})
	registerSvc(&UpdateStringTable{})
	registerSvc(&VoiceInit{})
	registerSvc(&VoiceData{})
	registerSvc(&Print{})
	registerSvc(&Sounds{})
	registerSvc(&SetView{})
	registerSvc(&FixAngle{})
	registerSvc(&CrosshairAngle{})
	registerSvc(&BSPDecal{})
	registerSvc(&SplitScreen{})
	registerSvc(&UserMessage{})
	registerSvc(&EntityMessage{})
	registerSvc(&GameEvent{})
	registerSvc(&PacketEntities{})
	registerSvc(&TempEntities{})
	registerSvc(&Prefetch{})
	registerSvc(&Menu{})
	registerSvc(&GameEventList{})
	registerSvc(&GetCvarValue{})
	registerSvc(&PaintmapData{})
	registerSvc(&CmdKeyValues{})
	registerSvc(&EncryptedData{})
	registerSvc(&HltvReplay{})
	registerSvc(&BroadcastCommand{})

	registerUser(&VGUIMenu{})
	registerUser(&Geiger{})
	registerUser(&Train{})
	registerUser(&HudText{})
	registerUser(&SayText{})
	registerUser(&SayText2{})
	registerUser(&TextMsg{})
	registerUser(&HudMsg{})
	registerUser(&ResetHud{})
	registerUser(&GameTitle{})
	registerUser(&Shake{})
	registerUser(&Fade{})
	registerUser(&Rumble{})
	registerUser(&CloseCaption{})
	registerUser(&CloseCaptionDirect{})
	registerUser(&SendAudio{})
	registerUser(&RawAudio{})
	registerUser(&VoiceMask{})
	registerUser(&RequestState{})
	registerUser(&Damage{})
	registerUser(&RadioText{})
	registerUser(&HintText{})
	registerUser(&KeyHintText{})
	registerUser(&ProcessSpottedEntityUpdate{})
	registerUser(&ReloadEffect{})
	registerUser(&AdjustMoney{})
	registerUser(&StopSpectatorMode{})
	registerUser(&KillCam{})
	registerUser(&DesiredTimescale{})
	registerUser(&CurrentTimescale{})
	registerUser(&AchievementEvent{})
	registerUser(&MatchEndConditions{})
	registerUser(&DisconnectToLobby{})
	registerUser(&PlayerStatsUpdate{})
	registerUser(&DisplayInventory{})
	registerUser(&WarmupHasEnded{})
	registerUser(&ClientInfo{})
	registerUser(&XRankGet{})
	registerUser(&XRankUpd{})
	registerUser(&CallVoteFailed{})
	registerUser(&VoteStart{})
	registerUser(&VotePass{})
	registerUser(&VoteFailed{})
	registerUser(&VoteSetup{})
	registerUser(&ServerRankRevealAll{})
	registerUser(&SendLastKillerDamageToClient{})
	registerUser(&ServerRankUpdate{})
	registerUser(&ItemPickup{})
	registerUser(&ShowMenu{})
	registerUser(&BarTime{})
	registerUser(&AmmoDenied{})
	registerUser(&MarkAchievement{})
	registerUser(&MatchStatsUpdate{})
	registerUser(&ItemDrop{})
	registerUser(&GlowPropTurnOff{})
	registerUser(&SendPlayerItemDrops{})
	registerUser(&RoundBackupFilenames{})
	registerUser(&SendPlayerItemFound{})
	registerUser(&ReportHit{})
	registerUser(&XpUpdate{})
	registerUser(&QuestProgress{})
	registerUser(&ScoreLeaderboardData{})
	registerUser(&PlayerDecalDigitalSignature{})
	registerUser(&WeaponSound{})
	registerUser(&UpdateScreenHealthBar{})
	registerUser(&EntityOutlineHighlight{})
	registerUser(&SSUI{})
	registerUser(&SurvivalStats{})
	registerUser(&EndOfMatchAllPlayersData{})
	registerUser(&RoundImpactScoreData{})
	registerUser(&CurrentRoundOdds{})
	registerUser(&DeepStats{})
}
