package protocol

// net_NOP
type NOP struct {
}

func (m NOP) Type() MessageCode { return NET_NOP }

// net_Disconnect
type Disconnect struct {
	Text string `pb:"1"`
}

func (m Disconnect) Type() MessageCode { return NET_DISCONNECT }

// net_File
type File struct {
	TransferID       int32  `pb:"1"`
	FileName         string `pb:"2"`
	IsReplayDemoFile bool   `pb:"3"`
	Deny             bool   `pb:"4"`
}

func (m File) Type() MessageCode { return NET_FILE }

// net_SplitScreenUser
type SplitScreenUser struct {
	Slot int32 `pb:"1"`
}

func (m SplitScreenUser) Type() MessageCode { return NET_SPLIT_SCREEN_USER }

// net_Tick
type Tick struct {
	Tick                      uint32 `pb:"1"`
	HostComputationTime       uint32 `pb:"4"`
	HostComputationTimeStdDev uint32 `pb:"5"`
	HostFramestartTimeStdDev  uint32 `pb:"6"`
	HltvReplayFlags           uint32 `pb:"7"`
}

func (m Tick) Type() MessageCode { return NET_TICK }

// net_StringCmd
type StringCmd struct {
	Command string `pb:"1"`
}

func (m StringCmd) Type() MessageCode { return NET_STRING_CMD }

type CVar struct {
	Name           string `pb:"1"`
	Value          string `pb:"2"`
	DictionaryName uint32 `pb:"3"`
}

type CVars struct {
	CVars []CVar `pb:"1"`
}

// net_SetConVar
type SetConVar struct {
	ConVars CVars `pb:"1"`
}

func (m SetConVar) Type() MessageCode { return NET_SET_CON_VAR }

// net_SignonState
type SignonState struct {
	SignonState       uint32   `pb:"1"`
	SpawnCount        uint32   `pb:"2"`
	NumServerPlayers  uint32   `pb:"3"`
	PlayersNetworkIDs []string `pb:"4"`
	MapName           string   `pb:"5"`
}

func (m SignonState) Type() MessageCode { return NET_SIGNON_STATE }

// net_PlayerAvatarData
type PlayerAvatarData struct {
	AccountID uint32 `pb:"1"`
	RGB       []byte `pb:"2"`
}

func (m PlayerAvatarData) Type() MessageCode { return NET_PLAYER_AVATAR_DATA }
