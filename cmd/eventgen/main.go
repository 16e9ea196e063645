// eventgen writes the handler interfaces, no-op bases, callback adapter and
// route registrations for pkg/demo/events from the message catalogs.
package main

import (
	"bytes"
	"go/format"
	"os"
	"reflect"
	"sort"
	"text/template"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

type Event struct {
	// Wire name, e.g. svc_Print
	Name string
	// Qualified Go type, e.g. protocol.Print
	Type string
	// Handler method, e.g. OnPrint
	Method string
}

// Records that are not protobuf messages.
var RECORDS = []Event{
	{Name: "dem_header", Type: "format.FileHeader", Method: "OnFileHeader"},
	{Name: "dem_packetinfo", Type: "format.PacketInfo", Method: "OnPacketInfo"},
	{Name: "dem_serverclass", Type: "format.ServerClass", Method: "OnServerClass"},
}

func fromPrototype(name string, prototype interface{}) Event {
	type_ := reflect.TypeOf(prototype).Elem()
	return Event{
		Name:   name,
		Type:   "protocol." + type_.Name(),
		Method: "On" + type_.Name(),
	}
}

func containerEvents() []Event {
	codes := make([]protocol.MessageCode, 0)
	for code := range protocol.NET_MESSAGES {
		codes = append(codes, code)
	}
	for code := range protocol.SVC_MESSAGES {
		codes = append(codes, code)
	}

	// net_PlayerAvatarData sits at 100 but belongs with the other net
	// messages.
	isNet := func(code protocol.MessageCode) bool {
		_, ok := protocol.NET_MESSAGES[code]
		return ok
	}
	sort.Slice(codes, func(i, j int) bool {
		if isNet(codes[i]) != isNet(codes[j]) {
			return isNet(codes[i])
		}
		return codes[i] < codes[j]
	})

	events := append([]Event{}, RECORDS...)
	for _, code := range codes {
		prototype := protocol.Lookup(code).Value
		events = append(events, fromPrototype(code.String(), prototype))
	}
	return events
}

func userEvents() []Event {
	codes := make([]protocol.UserMessageCode, 0)
	for code := range protocol.USER_MESSAGES {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	events := make([]Event, 0, len(codes))
	for _, code := range codes {
		events = append(events, fromPrototype(code.String(), protocol.USER_MESSAGES[code]))
	}
	return events
}

var TEMPLATE = template.Must(template.New("handlers").Parse(`// Code generated by eventgen. DO NOT EDIT.

package events

import (
	"github.com/cfoust/sourdemo/pkg/demo/format"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

type Handler interface {
{{- range .Container}}
	{{.Method}}(*{{.Type}}) error
{{- end}}
}

type UserMessageHandler interface {
	Handler
{{range .User}}
	{{.Method}}(*{{.Type}}) error
{{- end}}
}

type NopHandler struct{}

{{range .Container -}}
func (NopHandler) {{.Method}}(*{{.Type}}) error { return nil }
{{end}}
type NopUserMessageHandler struct {
	NopHandler
}

{{range .User -}}
func (NopUserMessageHandler) {{.Method}}(*{{.Type}}) error { return nil }
{{end}}
{{range .Container -}}
func (f funcs) {{.Method}}(event *{{.Type}}) error { return f.fn("{{.Name}}", event) }
{{end}}
{{range .User -}}
func (f funcs) {{.Method}}(event *{{.Type}}) error { return f.fn("{{.Name}}", event) }
{{end}}
func init() {
{{- range .Container}}
	on("{{.Name}}", Handler.{{.Method}})
{{- end}}
{{range .User}}
	onUser("{{.Name}}", UserMessageHandler.{{.Method}})
{{- end}}
}
`))

var CLI struct {
	Out string `short:"o" help:"File to write." default:"handler_gen.go" type:"path"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("eventgen"),
		kong.Description("Generate event handler tables."),
	)

	var buffer bytes.Buffer
	err := TEMPLATE.Execute(&buffer, struct {
		Container []Event
		User      []Event
	}{
		Container: containerEvents(),
		User:      userEvents(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render template")
	}

	source, err := format.Source(buffer.Bytes())
	if err != nil {
		log.Fatal().Err(err).Msg("generated code does not parse")
	}

	err = os.WriteFile(CLI.Out, source, 0644)
	if err != nil {
		log.Fatal().Err(err).Str("path", CLI.Out).Msg("failed to write output")
	}
}
