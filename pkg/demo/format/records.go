package format

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	dio "github.com/cfoust/sourdemo/pkg/demo/io"
)

const (
	MAGIC     = "HL2DEMO\x00"
	PATH_SIZE = 260
)

var ErrBadMagic = errors.New("bad magic")

// FileHeader is the fixed preamble of every demo file.
type FileHeader struct {
	Magic           [8]byte
	DemoProtocol    int32
	NetworkProtocol int32
	ServerName      [PATH_SIZE]byte
	ClientName      [PATH_SIZE]byte
	MapName         [PATH_SIZE]byte
	GameDirectory   [PATH_SIZE]byte
	PlaybackTime    float32
	PlaybackTicks   int32
	PlaybackFrames  int32
	SignonLength    int32
}

func (h *FileHeader) Validate() error {
	if string(h.Magic[:]) != MAGIC {
		return fmt.Errorf("%w: %q", ErrBadMagic, trim(h.Magic[:]))
	}
	return nil
}

func (h *FileHeader) Server() string    { return trim(h.ServerName[:]) }
func (h *FileHeader) Client() string    { return trim(h.ClientName[:]) }
func (h *FileHeader) Map() string       { return trim(h.MapName[:]) }
func (h *FileHeader) Directory() string { return trim(h.GameDirectory[:]) }

// NewFileHeader fills in the magic and the padded name fields.
func NewFileHeader(server, client, mapName, directory string) FileHeader {
	header := FileHeader{}
	copy(header.Magic[:], MAGIC)
	pad(header.ServerName[:], server)
	pad(header.ClientName[:], client)
	pad(header.MapName[:], mapName)
	pad(header.GameDirectory[:], directory)
	return header
}

type SequenceInfo struct {
	SequenceIn  int32
	SequenceOut int32
}

type CommandHeader struct {
	Command    uint8
	Tick       int32
	PlayerSlot uint8
}

type Vector [3]float32

type ViewInfo struct {
	Origin      Vector
	Angles      Vector
	LocalAngles Vector
}

type PlayerViewInfo struct {
	Flags     int32
	Original  ViewInfo
	Resampled ViewInfo
}

type CommandInfo struct {
	Players [2]PlayerViewInfo
}

// PacketInfo precedes the message stream of every signon and packet
// command.
type PacketInfo struct {
	CommandInfo  CommandInfo
	SequenceInfo SequenceInfo
}

type DataHeader struct {
	Size int32
}

// ServerClass is one entry of the class registry that trails the data
// tables.
type ServerClass struct {
	ID        uint16
	Name      string
	DataTable string
}

func (c *ServerClass) Marshal(p *dio.Buffer) error {
	err := p.Put(c.ID)
	if err != nil {
		return err
	}
	p.PutCString(c.Name)
	p.PutCString(c.DataTable)
	return nil
}

func (c *ServerClass) Unmarshal(p *dio.Buffer) error {
	var err error
	c.ID, err = p.GetU16()
	if err != nil {
		return err
	}

	c.Name, err = p.GetCString()
	if err != nil {
		return err
	}

	c.DataTable, err = p.GetCString()
	return err
}

// PlayerInfo is the blob stored in the userinfo string table.
type PlayerInfo struct {
	Version         uint64
	XUID            uint64
	RawName         [128]byte
	UserID          int32
	RawGUID         [33]byte
	FriendsID       uint32
	RawFriendsName  [128]byte
	FakePlayer      bool
	IsHLTV          bool
	CustomFiles     [4]uint64
	FilesDownloaded uint8
	EntityID        int32
}

func (p *PlayerInfo) Name() string        { return trim(p.RawName[:]) }
func (p *PlayerInfo) GUID() string        { return trim(p.RawGUID[:]) }
func (p *PlayerInfo) FriendsName() string { return trim(p.RawFriendsName[:]) }

func ParsePlayerInfo(data []byte) (*PlayerInfo, error) {
	buffer := dio.Buffer(data)

	info := PlayerInfo{}
	err := buffer.Get(&info)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func trim(b []byte) string {
	end := bytes.IndexByte(b, 0)
	if end >= 0 {
		b = b[:end]
	}
	return strings.ToValidUTF8(string(b), "�")
}

func pad(dst []byte, value string) {
	copy(dst[:len(dst)-1], value)
}
