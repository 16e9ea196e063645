package events

import (
	"fmt"

	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

// UserMessageDecoder unpacks svc_UserMessage payloads and dispatches the
// decoded message to the wrapped handler. Every other event is forwarded
// unchanged through the embedded handler.
type UserMessageDecoder struct {
	UserMessageHandler
}

func NewUserMessageDecoder(inner UserMessageHandler) *UserMessageDecoder {
	return &UserMessageDecoder{UserMessageHandler: inner}
}

func (d *UserMessageDecoder) OnUserMessage(message *protocol.UserMessage) error {
	code := protocol.UserMessageCode(message.MsgType)

	decoded, ok, err := protocol.DecodeUser(code, message.MsgData)
	if err != nil {
		return fmt.Errorf("failed to decode user message: %w", err)
	}

	if !ok {
		return d.UserMessageHandler.OnUserMessage(message)
	}

	return DispatchUser(d.UserMessageHandler, decoded)
}
