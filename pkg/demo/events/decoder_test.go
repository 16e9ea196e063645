package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

// Everything except svc_UserMessage passes through the decoder untouched.
func TestDecoderTransparency(t *testing.T) {
	for _, name := range append(Kinds(), UserKinds()...) {
		if name == protocol.SVC_USER_MESSAGE.String() {
			continue
		}

		event, ok := New(name)
		require.True(t, ok)

		var direct, decorated []seen
		require.NoError(t, Dispatch(Funcs(collect(&direct)), event))
		require.NoError(t, Dispatch(NewUserMessageDecoder(Funcs(collect(&decorated))), event))

		assert.Equal(t, direct, decorated, name)
	}
}

func TestDecoderKnownUserMessage(t *testing.T) {
	payload, err := protocol.EncodeUser(&protocol.SayText{EntIdx: 1, Text: "gg"})
	require.NoError(t, err)

	var events []seen
	decoder := NewUserMessageDecoder(Funcs(collect(&events)))
	err = Dispatch(decoder, &protocol.UserMessage{
		MsgType: int32(protocol.UM_SAY_TEXT),
		MsgData: payload,
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "CS_UM_SayText", events[0].name)
	assert.Equal(t, &protocol.SayText{EntIdx: 1, Text: "gg"}, events[0].event)
}

func TestDecoderUnknownUserMessage(t *testing.T) {
	for _, code := range []protocol.UserMessageCode{
		protocol.UM_UPDATE_TEAM_MONEY,
		protocol.UM_DISCONNECT_TO_LOBBY2,
		11,
		500,
	} {
		message := &protocol.UserMessage{MsgType: int32(code), MsgData: []byte{0xff}}

		var events []seen
		err := Dispatch(NewUserMessageDecoder(Funcs(collect(&events))), message)
		require.NoError(t, err)

		require.Len(t, events, 1)
		assert.Equal(t, "svc_UserMessage", events[0].name)
		assert.Same(t, message, events[0].event)
	}
}

func TestDecoderBadPayload(t *testing.T) {
	var events []seen
	err := Dispatch(NewUserMessageDecoder(Funcs(collect(&events))), &protocol.UserMessage{
		MsgType: int32(protocol.UM_SAY_TEXT),
		MsgData: []byte{0x12, 0x10, 'x'},
	})
	assert.ErrorIs(t, err, protocol.ErrCodec)
	assert.Empty(t, events)
}

type moneyHandler struct {
	NopUserMessageHandler
	amounts []int32
}

func (h *moneyHandler) OnAdjustMoney(message *protocol.AdjustMoney) error {
	h.amounts = append(h.amounts, message.Amount)
	return nil
}

func TestDecoderPartialUserHandler(t *testing.T) {
	payload, err := protocol.EncodeUser(&protocol.AdjustMoney{Amount: -300})
	require.NoError(t, err)

	h := &moneyHandler{}
	decoder := NewUserMessageDecoder(h)

	require.NoError(t, Dispatch(decoder, &protocol.UserMessage{
		MsgType: int32(protocol.UM_ADJUST_MONEY),
		MsgData: payload,
	}))
	require.NoError(t, Dispatch(decoder, &protocol.Print{Text: "ignored"}))

	assert.Equal(t, []int32{-300}, h.amounts)
}
