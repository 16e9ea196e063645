package demo

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoust/sourdemo/pkg/demo/events"
	"github.com/cfoust/sourdemo/pkg/demo/format"
	dio "github.com/cfoust/sourdemo/pkg/demo/io"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

type recorded struct {
	names  []string
	events []interface{}
}

func (r *recorded) observe(name string, event interface{}) error {
	r.names = append(r.names, name)
	r.events = append(r.events, event)
	return nil
}

func (r *recorded) handler() events.UserMessageHandler {
	return events.Funcs(r.observe)
}

func quiet() Option {
	return WithLogger(zerolog.Nop())
}

func build(t *testing.T, fn func(w *Writer)) []byte {
	var buffer bytes.Buffer
	w := NewWriter(&buffer)
	require.NoError(t, w.WriteHeader(format.NewFileHeader("Counter-Strike", "GOTV Demo", "de_dust2", "csgo")))
	fn(w)
	return buffer.Bytes()
}

func parse(data []byte, h events.Handler, opts ...Option) (Result, error) {
	return Parse(bytes.NewReader(data), h, append([]Option{quiet()}, opts...)...)
}

func TestMinimalDemo(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{}, &protocol.NOP{}))
		require.NoError(t, w.WriteStop(1))
	})

	r := &recorded{}
	result, err := parse(data, r.handler())
	require.NoError(t, err)

	assert.Equal(t, []string{"dem_header", "dem_packetinfo", "net_NOP"}, r.names)
	assert.Equal(t, Stopped, result.Reason)
	assert.Equal(t, 2, result.Commands)
	assert.Equal(t, format.CommandStop, result.LastCommand)
	assert.Equal(t, int64(len(data)), result.Offset)
	assert.Equal(t, "de_dust2", result.Header.Map())
}

func TestDataTables(t *testing.T) {
	tables := []protocol.SendTable{
		{NetTableName: "DT_CSPlayer", Props: []protocol.SendProp{{VarName: "m_iHealth", NumBits: 8}}},
		{IsEnd: true},
	}
	classes := []format.ServerClass{
		{ID: 0, Name: "CAI_BaseNPC", DataTable: "DT_AI_BaseNPC"},
		{ID: 1, Name: "CAK47", DataTable: "DT_WeaponAK47"},
		{ID: 40, Name: "CCSPlayer", DataTable: "DT_CSPlayer"},
	}

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteDataTables(0, tables, classes))
		require.NoError(t, w.WriteStop(0))
	})

	counter := events.NewCounter()
	r := &recorded{}
	_, err := parse(data, events.Funcs(events.Tee(counter.Observe, r.observe)))
	require.NoError(t, err)

	assert.Equal(t, 2, counter.Count("svc_SendTable"))
	assert.Equal(t, 3, counter.Count("dem_serverclass"))

	var got []format.ServerClass
	for _, event := range r.events {
		if class, ok := event.(*format.ServerClass); ok {
			got = append(got, *class)
		}
	}
	assert.Equal(t, classes, got)
	assert.Equal(t, "DT_CSPlayer", r.events[1].(*protocol.SendTable).NetTableName)
}

// The class registry comes right after the end-of-tables marker even if the
// tables did not use up the whole region.
func TestDataTablesEarlyEnd(t *testing.T) {
	tables := []protocol.SendTable{
		{NetTableName: "DT_A"},
		{IsEnd: true},
		{NetTableName: "DT_Never"},
	}

	payload, err := EncodeDataTables(tables[:2], []format.ServerClass{{ID: 7, Name: "CA", DataTable: "DT_A"}})
	require.NoError(t, err)

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRaw(format.CommandDataTables, 0, payload))
		require.NoError(t, w.WriteStop(0))
	})

	r := &recorded{}
	_, err = parse(data, r.handler())
	require.NoError(t, err)
	assert.Equal(t, []string{"dem_header", "svc_SendTable", "svc_SendTable", "dem_serverclass"}, r.names)
}

func fullDemo(t *testing.T) []byte {
	return build(t, func(w *Writer) {
		require.NoError(t, w.WritePacket(format.CommandSignon, 0, format.PacketInfo{},
			&protocol.ServerInfo{Protocol: 13789, MapName: "de_dust2", TickInterval: 1.0 / 64},
			&protocol.SignonState{SignonState: 2},
		))
		require.NoError(t, w.WriteDataTables(0,
			[]protocol.SendTable{{NetTableName: "DT_A"}, {IsEnd: true}},
			[]format.ServerClass{{ID: 1, Name: "CA", DataTable: "DT_A"}},
		))
		require.NoError(t, w.WriteSyncTick(0))
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{},
			&protocol.Tick{Tick: 1},
			&protocol.Print{Text: "hello"},
			&protocol.NOP{},
		))
		require.NoError(t, w.WriteStop(2))
	})
}

// Cutting the stream anywhere must surface as a truncation.
func TestTruncatedAnywhere(t *testing.T) {
	data := fullDemo(t)

	_, err := parse(data, events.NopHandler{})
	require.NoError(t, err)

	for end := 0; end < len(data); end++ {
		_, err := parse(data[:end], events.NopHandler{})
		require.ErrorIs(t, err, ErrTruncated, "cut at %d", end)
		assert.NotErrorIs(t, err, ErrFrameMismatch, "cut at %d", end)

		var parseError *ParseError
		require.ErrorAs(t, err, &parseError)
		assert.LessOrEqual(t, parseError.Offset, int64(end))
	}
}

func TestPacketShorterThanMessages(t *testing.T) {
	messages, err := EncodeMessages(&protocol.Print{Text: "hello"})
	require.NoError(t, err)

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRawPacket(format.CommandPacket, 0, format.PacketInfo{}, messages[:len(messages)-1]))
		require.NoError(t, w.WriteStop(0))
	})

	_, err = parse(data, events.NopHandler{})
	assert.ErrorIs(t, err, ErrFrameMismatch)
	assert.NotErrorIs(t, err, ErrTruncated)
}

func TestEmptyPacket(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRawPacket(format.CommandPacket, 0, format.PacketInfo{}, nil))
		require.NoError(t, w.WriteStop(0))
	})

	r := &recorded{}
	_, err := parse(data, r.handler())
	require.NoError(t, err)
	assert.Equal(t, []string{"dem_header", "dem_packetinfo"}, r.names)
}

func TestDataTablesFraming(t *testing.T) {
	tables := []protocol.SendTable{{IsEnd: true}}
	classes := []format.ServerClass{{ID: 1, Name: "CA", DataTable: "DT_A"}}

	payload, err := EncodeDataTables(tables, classes)
	require.NoError(t, err)

	for name, region := range map[string][]byte{
		"trailing byte":  append(append([]byte{}, payload...), 0),
		"missing class":  payload[:len(payload)-len("CA\x00DT_A\x00")],
		"unterminated":   payload[:len(payload)-1],
		"no class count": payload[:len(payload)-len("CA\x00DT_A\x00")-2],
	} {
		data := build(t, func(w *Writer) {
			require.NoError(t, w.WriteRaw(format.CommandDataTables, 0, region))
			require.NoError(t, w.WriteStop(0))
		})

		_, err := parse(data, events.NopHandler{})
		assert.ErrorIs(t, err, ErrFrameMismatch, name)
		assert.NotErrorIs(t, err, ErrTruncated, name)
	}
}

func TestClassNameEncoding(t *testing.T) {
	p := dio.Buffer{}
	p.PutVarUint(uint32(protocol.SVC_SEND_TABLE))
	p.PutVarUint(2)
	p = append(p, 0x08, 0x01)
	require.NoError(t, p.Put(uint16(1), uint16(5)))
	p = append(p, 0xff, 0xfe, 0x00)
	p.PutCString("DT_A")

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRaw(format.CommandDataTables, 0, p))
		require.NoError(t, w.WriteStop(0))
	})

	_, err := parse(data, events.NopHandler{})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestPacketErrors(t *testing.T) {
	invalidVarint := dio.Buffer{0xff, 0xff, 0xff, 0xff, 0xff}

	unknownKind := dio.Buffer{}
	unknownKind.PutVarUint(37)
	unknownKind.PutVarUint(0)

	badPayload := dio.Buffer{}
	badPayload.PutVarUint(uint32(protocol.SVC_PRINT))
	badPayload.PutVarUint(2)
	badPayload = append(badPayload, 0x0a, 0x05)

	for _, test := range []struct {
		name   string
		region []byte
		err    error
	}{
		{"invalid varint", invalidVarint, ErrInvalidVarint},
		{"unknown kind", unknownKind, ErrUnknownMessageKind},
		{"bad payload", badPayload, ErrCodec},
	} {
		data := build(t, func(w *Writer) {
			require.NoError(t, w.WriteRawPacket(format.CommandPacket, 0, format.PacketInfo{}, test.region))
			require.NoError(t, w.WriteStop(0))
		})

		_, err := parse(data, events.NopHandler{})
		assert.ErrorIs(t, err, test.err, test.name)

		var parseError *ParseError
		require.ErrorAs(t, err, &parseError, test.name)
		assert.Equal(t, "packet", parseError.Region)
		assert.Equal(t, 0, parseError.Command)
	}
}

func TestErrorOffset(t *testing.T) {
	region, err := EncodeMessages(&protocol.NOP{})
	require.NoError(t, err)
	region.PutVarUint(37)
	region.PutVarUint(0)

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRawPacket(format.CommandPacket, 0, format.PacketInfo{}, region))
	})

	_, err = parse(data, events.NopHandler{})
	var parseError *ParseError
	require.ErrorAs(t, err, &parseError)

	// The unknown message starts two bytes before the end of the region
	assert.Equal(t, int64(len(data)-2), parseError.Offset)
}

func TestNegativeRegion(t *testing.T) {
	data := build(t, func(w *Writer) {
		p := dio.Buffer{}
		require.NoError(t, p.Put(format.CommandHeader{Command: uint8(format.CommandDataTables)}, format.DataHeader{Size: -1}))
		_, err := w.writer.Write(p)
		require.NoError(t, err)
	})

	_, err := parse(data, events.NopHandler{})
	assert.ErrorIs(t, err, ErrFrameMismatch)
}

func TestRegionLimit(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRaw(format.CommandDataTables, 0, make([]byte, 64)))
	})

	_, err := parse(data, events.NopHandler{}, WithMaxRegionSize(32))
	assert.ErrorIs(t, err, ErrFrameMismatch)
}

func TestDataAfterStop(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteStop(0))
	})
	data = append(data, 0)

	_, err := parse(data, events.NopHandler{})
	assert.ErrorIs(t, err, ErrFrameMismatch)
}

func TestUnsupportedCommands(t *testing.T) {
	for _, command := range []format.Command{
		format.CommandConsoleCmd,
		format.CommandUserCmd,
		format.CommandCustomData,
		format.CommandStringTables,
	} {
		data := build(t, func(w *Writer) {
			require.NoError(t, w.WriteRaw(command, 0, []byte("data")))
			require.NoError(t, w.WriteStop(0))
		})

		_, err := parse(data, events.NopHandler{})
		assert.ErrorIs(t, err, ErrUnsupportedCommand, command.String())
	}
}

func TestSkipUnsupportedCommands(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteRaw(format.CommandConsoleCmd, 0, []byte("say hi\x00")))

		p := dio.Buffer{}
		require.NoError(t, p.Put(format.CommandHeader{Command: uint8(format.CommandUserCmd)}, int32(99), format.DataHeader{Size: 3}))
		p = append(p, 1, 2, 3)
		require.NoError(t, p.Put(format.CommandHeader{Command: uint8(format.CommandCustomData)}, int32(0), format.DataHeader{Size: 1}))
		p = append(p, 9)
		_, err := w.writer.Write(p)
		require.NoError(t, err)

		require.NoError(t, w.WriteRaw(format.CommandStringTables, 0, make([]byte, 100)))
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{}, &protocol.Print{Text: "after"}))
		require.NoError(t, w.WriteStop(1))
	})

	r := &recorded{}
	result, err := parse(data, r.handler(), WithUnsupportedPolicy(UnsupportedSkip))
	require.NoError(t, err)
	assert.Equal(t, Stopped, result.Reason)
	assert.Equal(t, 6, result.Commands)
	assert.Equal(t, []string{"dem_header", "dem_packetinfo", "svc_Print"}, r.names)
}

func TestUnknownCommand(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{}, &protocol.NOP{}))
		require.NoError(t, w.WriteCommand(format.Command(42), 5))
		require.NoError(t, w.WritePacket(format.CommandPacket, 6, format.PacketInfo{}, &protocol.NOP{}))
	})

	r := &recorded{}
	result, err := parse(data, r.handler())
	require.NoError(t, err)
	assert.Equal(t, Unrecognized, result.Reason)
	assert.Equal(t, int32(5), result.LastTick)
	assert.Equal(t, format.Command(42), result.LastCommand)
	assert.Equal(t, []string{"dem_header", "dem_packetinfo", "net_NOP"}, r.names)

	_, err = parse(data, events.NopHandler{}, WithUnknownPolicy(UnknownFail))
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestMagic(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WriteStop(0))
	})
	data[0] = 'X'

	_, err := parse(data, events.NopHandler{})
	assert.NoError(t, err)

	_, err = parse(data, events.NopHandler{}, WithStrictMagic(true))
	assert.ErrorIs(t, err, format.ErrBadMagic)
}

type failingHandler struct {
	events.NopHandler
	prints int
}

var errStop = errors.New("seen enough")

func (h *failingHandler) OnPrint(*protocol.Print) error {
	h.prints++
	return errStop
}

func TestObserverFailure(t *testing.T) {
	data := build(t, func(w *Writer) {
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{},
			&protocol.Print{Text: "one"},
			&protocol.Print{Text: "two"},
		))
		require.NoError(t, w.WriteStop(1))
	})

	h := &failingHandler{}
	_, err := parse(data, h)
	assert.ErrorIs(t, err, ErrObserver)
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, h.prints)

	var observerError *ObserverError
	require.ErrorAs(t, err, &observerError)
	assert.Equal(t, "svc_Print", observerError.Event)
}

type chatHandler struct {
	events.NopUserMessageHandler
	said    []string
	unknown int
}

func (h *chatHandler) OnSayText2(message *protocol.SayText2) error {
	h.said = append(h.said, message.Params[1])
	return nil
}

func (h *chatHandler) OnUserMessage(*protocol.UserMessage) error {
	h.unknown++
	return nil
}

func TestUserMessages(t *testing.T) {
	payload, err := protocol.EncodeUser(&protocol.SayText2{
		EntIdx:  3,
		Chat:    true,
		MsgName: "Cstrike_Chat_All",
		Params:  []string{"player", "gl hf", "", ""},
	})
	require.NoError(t, err)

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{},
			&protocol.UserMessage{MsgType: int32(protocol.UM_SAY_TEXT2), MsgData: payload},
			&protocol.UserMessage{MsgType: 500},
		))
		require.NoError(t, w.WriteStop(1))
	})

	h := &chatHandler{}
	_, err = parse(data, events.NewUserMessageDecoder(h))
	require.NoError(t, err)
	assert.Equal(t, []string{"gl hf"}, h.said)
	assert.Equal(t, 1, h.unknown)

	h = &chatHandler{}
	_, err = parse(data, h)
	require.NoError(t, err)
	assert.Empty(t, h.said, "without the decoder user messages stay opaque")
	assert.Equal(t, 2, h.unknown)
}

// Every container message kind reaches its handler method once.
func TestEveryMessageKind(t *testing.T) {
	var messages []protocol.Message
	for _, prototype := range protocol.NET_MESSAGES {
		messages = append(messages, prototype)
	}
	for _, prototype := range protocol.SVC_MESSAGES {
		messages = append(messages, prototype)
	}

	data := build(t, func(w *Writer) {
		require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{}, messages...))
		require.NoError(t, w.WriteStop(1))
	})

	counter := events.NewCounter()
	_, err := parse(data, counter.Handler())
	require.NoError(t, err)

	for _, message := range messages {
		assert.Equal(t, 1, counter.Count(message.Type().String()), message.Type().String())
	}
	assert.Equal(t, len(messages)+2, counter.Total())
}

func TestCancel(t *testing.T) {
	data := fullDemo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParser(bytes.NewReader(data), events.NopHandler{}, quiet()).ParseContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
