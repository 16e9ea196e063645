// Package events routes decoded demo records and messages to handlers.
//
// A Handler has one method per event type. Consumers embed NopHandler (or
// NopUserMessageHandler) and override the methods they care about.
package events

//go:generate go run ../../../cmd/eventgen -o handler_gen.go

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var ErrUnroutable = errors.New("no route for event")

// EventFunc receives every event along with its wire name.
type EventFunc func(name string, event interface{}) error

type route struct {
	name string
	call func(Handler, interface{}) error
}

type userRoute struct {
	name string
	call func(UserMessageHandler, interface{}) error
}

var routes = make(map[reflect.Type]route)
var userRoutes = make(map[reflect.Type]userRoute)
var types = make(map[string]reflect.Type)

func addType(name string, type_ reflect.Type) {
	if _, ok := types[name]; ok {
		panic(fmt.Sprintf("event %s registered twice", name))
	}
	types[name] = type_
}

func on[T any](name string, fn func(Handler, *T) error) {
	type_ := reflect.TypeOf((*T)(nil))
	addType(name, type_)
	routes[type_] = route{
		name: name,
		call: func(h Handler, event interface{}) error {
			return fn(h, event.(*T))
		},
	}
}

func onUser[T any](name string, fn func(UserMessageHandler, *T) error) {
	type_ := reflect.TypeOf((*T)(nil))
	addType(name, type_)
	userRoutes[type_] = userRoute{
		name: name,
		call: func(h UserMessageHandler, event interface{}) error {
			return fn(h, event.(*T))
		},
	}
}

// Dispatch invokes the handler method matching the event's type. User
// messages are routed only if h also implements UserMessageHandler.
func Dispatch(h Handler, event interface{}) error {
	type_ := reflect.TypeOf(event)
	if r, ok := routes[type_]; ok {
		return r.call(h, event)
	}

	if r, ok := userRoutes[type_]; ok {
		if user, ok := h.(UserMessageHandler); ok {
			return r.call(user, event)
		}
	}

	return fmt.Errorf("%w: %T", ErrUnroutable, event)
}

func DispatchUser(h UserMessageHandler, event interface{}) error {
	return Dispatch(h, event)
}

// Name returns the wire name of an event, or the empty string if the type
// is not routable.
func Name(event interface{}) string {
	type_ := reflect.TypeOf(event)
	if r, ok := routes[type_]; ok {
		return r.name
	}
	if r, ok := userRoutes[type_]; ok {
		return r.name
	}
	return ""
}

// New allocates an empty event for a wire name.
func New(name string) (interface{}, bool) {
	type_, ok := types[name]
	if !ok {
		return nil, false
	}
	return reflect.New(type_.Elem()).Interface(), true
}

func sortedNames[R any](table map[reflect.Type]R, name func(R) string) []string {
	names := make([]string, 0, len(table))
	for _, r := range table {
		names = append(names, name(r))
	}
	sort.Strings(names)
	return names
}

// Kinds lists the events a Handler receives.
func Kinds() []string {
	return sortedNames(routes, func(r route) string { return r.name })
}

// UserKinds lists the events only a UserMessageHandler receives.
func UserKinds() []string {
	return sortedNames(userRoutes, func(r userRoute) string { return r.name })
}

// Funcs adapts a single callback into a handler that receives everything.
func Funcs(fn EventFunc) UserMessageHandler {
	return funcs{fn: fn}
}

type funcs struct {
	fn EventFunc
}

// Tee calls each function in order and stops at the first error.
func Tee(fns ...EventFunc) EventFunc {
	return func(name string, event interface{}) error {
		for _, fn := range fns {
			err := fn(name, event)
			if err != nil {
				return err
			}
		}
		return nil
	}
}
