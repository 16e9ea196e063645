package format

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dio "github.com/cfoust/sourdemo/pkg/demo/io"
)

func TestRecordSizes(t *testing.T) {
	assert.Equal(t, 1072, binary.Size(FileHeader{}))
	assert.Equal(t, 6, binary.Size(CommandHeader{}))
	assert.Equal(t, 8, binary.Size(SequenceInfo{}))
	assert.Equal(t, 36, binary.Size(ViewInfo{}))
	assert.Equal(t, 76, binary.Size(PlayerViewInfo{}))
	assert.Equal(t, 160, binary.Size(PacketInfo{}))
	assert.Equal(t, 4, binary.Size(DataHeader{}))
	assert.Equal(t, 352, binary.Size(PlayerInfo{}))
}

func TestFileHeader(t *testing.T) {
	header := NewFileHeader("Counter-Strike", "GOTV Demo", "de_dust2", "csgo")
	header.DemoProtocol = 4
	header.PlaybackTicks = 128

	p := dio.Buffer{}
	require.NoError(t, p.Put(header))

	var decoded FileHeader
	require.NoError(t, p.Get(&decoded))
	require.NoError(t, decoded.Validate())

	assert.Equal(t, "Counter-Strike", decoded.Server())
	assert.Equal(t, "GOTV Demo", decoded.Client())
	assert.Equal(t, "de_dust2", decoded.Map())
	assert.Equal(t, "csgo", decoded.Directory())
	assert.Equal(t, int32(4), decoded.DemoProtocol)
	assert.Equal(t, int32(128), decoded.PlaybackTicks)
}

func TestFileHeaderMagic(t *testing.T) {
	header := FileHeader{}
	copy(header.Magic[:], "HL2DEMX\x00")
	assert.ErrorIs(t, header.Validate(), ErrBadMagic)
}

func TestServerClass(t *testing.T) {
	before := ServerClass{ID: 40, Name: "CCSPlayer", DataTable: "DT_CSPlayer"}

	p := dio.Buffer{}
	require.NoError(t, before.Marshal(&p))

	var after ServerClass
	require.NoError(t, after.Unmarshal(&p))
	assert.Equal(t, before, after)
	assert.NoError(t, p.Drained())
}

func TestPlayerInfo(t *testing.T) {
	info := PlayerInfo{
		Version:  1,
		XUID:     76561197960287930,
		UserID:   12,
		EntityID: 3,
		IsHLTV:   true,
	}
	copy(info.RawName[:], "s1mple")
	copy(info.RawGUID[:], "STEAM_1:0:1")

	p := dio.Buffer{}
	require.NoError(t, p.Put(info))

	parsed, err := ParsePlayerInfo(p)
	require.NoError(t, err)
	assert.Equal(t, "s1mple", parsed.Name())
	assert.Equal(t, "STEAM_1:0:1", parsed.GUID())
	assert.Equal(t, "", parsed.FriendsName())
	assert.Equal(t, info.XUID, parsed.XUID)
	assert.True(t, parsed.IsHLTV)
	assert.False(t, parsed.FakePlayer)

	_, err = ParsePlayerInfo(p[:100])
	assert.ErrorIs(t, err, dio.ErrTruncated)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "dem_packet", CommandPacket.String())
	assert.Equal(t, "dem_stop", CommandStop.String())
	assert.Equal(t, "dem_unknown(42)", Command(42).String())
	assert.True(t, CommandStringTables.Known())
	assert.False(t, Command(0).Known())
	assert.False(t, Command(10).Known())
}
