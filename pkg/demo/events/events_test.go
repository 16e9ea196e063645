package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoust/sourdemo/pkg/demo/format"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

type seen struct {
	name  string
	event interface{}
}

func collect(events *[]seen) EventFunc {
	return func(name string, event interface{}) error {
		*events = append(*events, seen{name, event})
		return nil
	}
}

func TestKinds(t *testing.T) {
	assert.Len(t, Kinds(), 41)
	assert.Len(t, UserKinds(), 72)
	assert.Contains(t, Kinds(), "svc_Print")
	assert.Contains(t, Kinds(), "dem_serverclass")
	assert.Contains(t, UserKinds(), "CS_UM_SayText")
	assert.NotContains(t, UserKinds(), "CS_UM_UpdateTeamMoney")
}

// Each event type reaches exactly the method registered for it.
func TestDispatchCompleteness(t *testing.T) {
	for _, name := range append(Kinds(), UserKinds()...) {
		event, ok := New(name)
		require.True(t, ok, name)

		var events []seen
		err := Dispatch(Funcs(collect(&events)), event)
		require.NoError(t, err, name)
		require.Len(t, events, 1, name)
		assert.Equal(t, name, events[0].name)
		assert.Same(t, event, events[0].event)
		assert.Equal(t, name, Name(event))
	}
}

func TestDispatchMessagesByCatalog(t *testing.T) {
	for code, prototype := range protocol.SVC_MESSAGES {
		assert.Equal(t, code.String(), Name(prototype))
	}
	for code, prototype := range protocol.NET_MESSAGES {
		assert.Equal(t, code.String(), Name(prototype))
	}
	for code, prototype := range protocol.USER_MESSAGES {
		assert.Equal(t, code.String(), Name(prototype))
	}
}

func TestUnroutable(t *testing.T) {
	err := Dispatch(NopHandler{}, &struct{}{})
	assert.ErrorIs(t, err, ErrUnroutable)

	err = Dispatch(NopHandler{}, protocol.Print{})
	assert.ErrorIs(t, err, ErrUnroutable, "events are routed by pointer")

	err = Dispatch(NopHandler{}, &protocol.SayText{})
	assert.ErrorIs(t, err, ErrUnroutable, "user messages need a user handler")

	assert.NoError(t, Dispatch(NopUserMessageHandler{}, &protocol.SayText{}))
	assert.Equal(t, "", Name(&struct{}{}))
}

type printHandler struct {
	NopHandler
	prints []string
}

func (h *printHandler) OnPrint(message *protocol.Print) error {
	h.prints = append(h.prints, message.Text)
	return nil
}

func TestPartialHandler(t *testing.T) {
	h := &printHandler{}

	require.NoError(t, Dispatch(h, &protocol.Print{Text: "hello"}))
	require.NoError(t, Dispatch(h, &protocol.Tick{Tick: 1}))
	require.NoError(t, Dispatch(h, &format.ServerClass{ID: 1}))

	assert.Equal(t, []string{"hello"}, h.prints)
}

func TestHandlerError(t *testing.T) {
	failure := errors.New("stop here")
	h := Funcs(func(name string, event interface{}) error {
		return failure
	})

	err := Dispatch(h, &protocol.Print{})
	assert.ErrorIs(t, err, failure)
}

func TestTee(t *testing.T) {
	failure := errors.New("stop here")

	var first, second []seen
	fn := Tee(
		collect(&first),
		func(string, interface{}) error { return failure },
		collect(&second),
	)

	err := Dispatch(Funcs(fn), &protocol.Print{})
	assert.ErrorIs(t, err, failure)
	assert.Len(t, first, 1)
	assert.Len(t, second, 0)
}
