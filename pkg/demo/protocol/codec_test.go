package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func cmp[T any](t *testing.T, before T) {
	b, err := Marshal(&before)
	require.NoError(t, err)

	var after T
	err = Unmarshal(b, &after)
	require.NoError(t, err)

	assert.Equal(t, before, after, "should yield same result")
}

func TestWireBytes(t *testing.T) {
	b, err := Marshal(&Print{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x02, 'h', 'i'}, b)

	b, err = Marshal(&Tick{Tick: 300})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0xac, 0x02}, b)

	b, err = Marshal(&ServerInfo{MapCRC: 0x01020304})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x45, 0x04, 0x03, 0x02, 0x01}, b, "fixed32 field")

	b, err = Marshal(&SoundInfo{OriginX: -1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x01}, b, "sint32 field")
}

func TestNegativeInt32(t *testing.T) {
	b, err := Marshal(&SetView{EntityIndex: -1})
	require.NoError(t, err)
	assert.Len(t, b, 11, "negative int32 is sign extended to ten bytes")

	var view SetView
	require.NoError(t, Unmarshal(b, &view))
	assert.Equal(t, int32(-1), view.EntityIndex)
}

func TestNested(t *testing.T) {
	cmp(t, SendTable{
		NetTableName: "DT_CSPlayer",
		NeedsDecoder: true,
		Props: []SendProp{
			{Type: 1, VarName: "m_iHealth", NumBits: 8},
			{Type: 6, VarName: "baseclass", DTName: "DT_BasePlayer"},
			{},
		},
	})

	cmp(t, FixAngle{Relative: true, Angle: QAngle{X: 1.5, Y: -90, Z: 0.25}})
	cmp(t, SetConVar{ConVars: CVars{CVars: []CVar{{Name: "sv_cheats", Value: "0"}}}})
}

func TestScalarKinds(t *testing.T) {
	cmp(t, VoiceData{
		Client:      3,
		Proximity:   true,
		XUID:        76561197960287930,
		AudibleMask: -5,
		VoiceData:   []byte{1, 2, 3},
	})

	cmp(t, Sounds{
		ReliableSound: true,
		Sounds: []SoundInfo{
			{OriginX: -100, OriginY: 200, OriginZ: -2147483648, DelayValue: 0.5, SoundNumHandle: 0xdeadbeef},
		},
	})

	cmp(t, ItemDrop{ItemID: -42, Death: true})
	cmp(t, SurvivalStats{XUID: 1 << 60, Users: []SurvivalPlacement{{XUID: 7, Placement: 1}}})
	cmp(t, SendPlayerItemDrops{EntityUpdates: [][]byte{{1}, {2, 3}}})
	cmp(t, SayText2{EntIdx: 1, MsgName: "Cstrike_Chat_All", Params: []string{"player", "gg", "", ""}})
}

func TestUnknownFieldsSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "hello")
	b = protowire.AppendTag(b, 98, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 1)

	var message Print
	require.NoError(t, Unmarshal(b, &message))
	assert.Equal(t, "hello", message.Text)
}

func TestPackedRepeated(t *testing.T) {
	type Packed struct {
		Values []int32 `pb:"1"`
	}

	var inner []byte
	for _, value := range []uint64{1, 2, 300} {
		inner = protowire.AppendVarint(inner, value)
	}

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, inner)
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 4)

	var packed Packed
	require.NoError(t, Unmarshal(b, &packed))
	assert.Equal(t, []int32{1, 2, 300, 4}, packed.Values)
}

func TestCodecErrors(t *testing.T) {
	var message Print

	err := Unmarshal([]byte{0x0a, 0x05, 'h'}, &message)
	assert.ErrorIs(t, err, ErrCodec, "truncated string")

	err = Unmarshal([]byte{0x08, 0x01}, &message)
	assert.ErrorIs(t, err, ErrCodec, "wire type mismatch")

	err = Unmarshal([]byte{0x80}, &message)
	assert.ErrorIs(t, err, ErrCodec, "truncated tag")

	var tick Tick
	err = Unmarshal([]byte{0x0a, 0x00}, &tick)
	assert.ErrorIs(t, err, ErrCodec, "bytes where varint expected")
}

func TestBadTags(t *testing.T) {
	type Broken struct {
		Value int32 `pb:"one"`
	}

	_, err := Marshal(&Broken{Value: 1})
	assert.Error(t, err)

	err = Unmarshal(nil, Broken{})
	assert.Error(t, err, "non-pointer")
}
