package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/cfoust/sourdemo/pkg/demo/events"
	"github.com/cfoust/sourdemo/pkg/demo/format"
	dio "github.com/cfoust/sourdemo/pkg/demo/io"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

// Termination describes how a demo ended without error.
type Termination int

const (
	// A dem_stop command was read and nothing followed it.
	Stopped Termination = iota
	// A command code outside the known range was read.
	Unrecognized
)

func (t Termination) String() string {
	switch t {
	case Stopped:
		return "stopped"
	case Unrecognized:
		return "unrecognized"
	}
	return fmt.Sprintf("termination(%d)", int(t))
}

type Result struct {
	Reason      Termination
	Header      format.FileHeader
	Commands    int
	LastTick    int32
	LastCommand format.Command
	// Number of bytes consumed from the stream
	Offset int64
}

type Parser struct {
	reader  *dio.Reader
	handler events.Handler
	options Options
	log     zerolog.Logger

	result  Result
	command int
}

func NewParser(reader io.Reader, handler events.Handler, opts ...Option) *Parser {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		reader:  dio.NewReader(reader),
		handler: handler,
		options: options,
		log:     options.Logger.With().Str("component", "demo").Logger(),
		command: -1,
	}
}

// Parse reads a whole demo from reader, dispatching every record and message
// to handler in stream order.
func Parse(reader io.Reader, handler events.Handler, opts ...Option) (Result, error) {
	return NewParser(reader, handler, opts...).Parse()
}

func (p *Parser) Parse() (Result, error) {
	return p.ParseContext(context.Background())
}

// ParseContext is like Parse but stops between commands once ctx is done.
func (p *Parser) ParseContext(ctx context.Context) (Result, error) {
	err := p.parseHeader()
	if err != nil {
		return p.result, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return p.result, err
		}

		done, err := p.parseCommand()
		p.result.Offset = p.reader.Offset()
		if err != nil {
			return p.result, err
		}

		if done {
			return p.result, nil
		}
	}
}

func (p *Parser) fail(region string, offset int64, err error) error {
	return &ParseError{
		Region:  region,
		Offset:  offset,
		Command: p.command,
		Err:     err,
	}
}

func (p *Parser) dispatch(event interface{}) error {
	err := events.Dispatch(p.handler, event)
	if err != nil {
		return &ObserverError{
			Event: events.Name(event),
			Err:   err,
		}
	}
	return nil
}

func (p *Parser) parseHeader() error {
	header := &p.result.Header
	err := p.reader.Get(header)
	if err != nil {
		return p.fail("header", p.reader.Offset(), err)
	}

	err = header.Validate()
	if err != nil {
		if p.options.StrictMagic {
			return p.fail("header", 0, err)
		}
		p.log.Warn().Err(err).Msg("demo header has unexpected magic")
	}

	p.log.Debug().
		Int32("protocol", header.DemoProtocol).
		Int32("network", header.NetworkProtocol).
		Str("map", header.Map()).
		Str("server", header.Server()).
		Msg("read header")

	err = p.dispatch(header)
	if err != nil {
		return p.fail("header", p.reader.Offset(), err)
	}

	return nil
}

// Returns true when the demo is over.
func (p *Parser) parseCommand() (bool, error) {
	p.command++

	var header format.CommandHeader
	err := p.reader.Get(&header)
	if err != nil {
		return false, p.fail("command header", p.reader.Offset(), err)
	}

	command := format.Command(header.Command)
	p.result.Commands++
	p.result.LastTick = header.Tick
	p.result.LastCommand = command

	p.log.Trace().
		Stringer("command", command).
		Int32("tick", header.Tick).
		Uint8("slot", header.PlayerSlot).
		Int64("offset", p.reader.Offset()).
		Msg("command")

	switch command {
	case format.CommandSignon, format.CommandPacket:
		return false, p.parsePacket()
	case format.CommandSyncTick:
		return false, nil
	case format.CommandDataTables:
		return false, p.parseDataTables()
	case format.CommandStop:
		return true, p.parseStop()
	case format.CommandConsoleCmd,
		format.CommandUserCmd,
		format.CommandCustomData,
		format.CommandStringTables:
		return false, p.parseUnsupported(command)
	}

	if p.options.Unknown == UnknownFail {
		return false, p.fail(
			"command header",
			p.reader.Offset(),
			fmt.Errorf("%w: %d", ErrUnknownCommand, header.Command),
		)
	}

	p.log.Warn().
		Uint8("command", header.Command).
		Int32("tick", header.Tick).
		Int64("offset", p.reader.Offset()).
		Msg("unknown command, treating as end of demo")
	p.result.Reason = Unrecognized
	return true, nil
}

func (p *Parser) parseStop() error {
	done, err := p.reader.AtEOF()
	if err != nil {
		return p.fail("stop", p.reader.Offset(), err)
	}

	if !done {
		return p.fail(
			"stop",
			p.reader.Offset()-1,
			fmt.Errorf("%w: data after dem_stop", ErrFrameMismatch),
		)
	}

	p.result.Reason = Stopped
	return nil
}

type region struct {
	name   string
	start  int64
	size   int
	buffer dio.Buffer
}

// Absolute offset of the next unread byte.
func (r *region) offset() int64 {
	return r.start + int64(r.size-r.buffer.Len())
}

// readRegion reads a DataHeader and the bytes it declares.
func (p *Parser) readRegion(name string) (*region, error) {
	var header format.DataHeader
	err := p.reader.Get(&header)
	if err != nil {
		return nil, p.fail(name, p.reader.Offset(), err)
	}

	if header.Size < 0 {
		return nil, p.fail(
			name,
			p.reader.Offset(),
			fmt.Errorf("%w: negative size %d", ErrFrameMismatch, header.Size),
		)
	}

	if int(header.Size) > p.options.MaxRegionSize {
		return nil, p.fail(
			name,
			p.reader.Offset(),
			fmt.Errorf("%w: size %d exceeds limit of %d", ErrFrameMismatch, header.Size, p.options.MaxRegionSize),
		)
	}

	start := p.reader.Offset()
	buffer, err := p.reader.ReadFull(int(header.Size))
	if err != nil {
		return nil, p.fail(name, p.reader.Offset(), err)
	}

	return &region{
		name:   name,
		start:  start,
		size:   int(header.Size),
		buffer: buffer,
	}, nil
}

func (p *Parser) regionError(r *region, err error) error {
	return p.fail(r.name, r.offset(), err)
}

// nextElement reads a varint kind and length followed by the body they
// describe, charging all of it against budget.
func (p *Parser) nextElement(r *region, budget *int) (uint32, dio.Buffer, error) {
	kind, n, err := r.buffer.GetVarUint()
	if err != nil {
		return 0, nil, p.regionError(r, overrun(err))
	}
	*budget -= n

	length, n, err := r.buffer.GetVarUint()
	if err != nil {
		return 0, nil, p.regionError(r, overrun(err))
	}
	*budget -= n

	body, err := r.buffer.Take(int(length))
	if err != nil {
		return 0, nil, p.regionError(r, overrun(err))
	}
	*budget -= int(length)

	return kind, body, nil
}

func (p *Parser) parsePacket() error {
	var info format.PacketInfo
	err := p.reader.Get(&info)
	if err != nil {
		return p.fail("packet info", p.reader.Offset(), err)
	}

	err = p.dispatch(&info)
	if err != nil {
		return p.fail("packet info", p.reader.Offset(), err)
	}

	r, err := p.readRegion("packet")
	if err != nil {
		return err
	}

	budget := r.size
	for budget > 0 {
		start := r.offset()
		kind, body, err := p.nextElement(r, &budget)
		if err != nil {
			return err
		}

		message, err := protocol.Decode(protocol.MessageCode(kind), body)
		if err != nil {
			return p.fail(r.name, start, err)
		}

		err = p.dispatch(message)
		if err != nil {
			return p.fail(r.name, start, err)
		}
	}

	if budget != 0 {
		return p.regionError(r, fmt.Errorf("%w: budget ended at %d", ErrFrameMismatch, budget))
	}

	err = r.buffer.Drained()
	if err != nil {
		return p.regionError(r, err)
	}

	return nil
}

func (p *Parser) parseDataTables() error {
	r, err := p.readRegion("datatables")
	if err != nil {
		return err
	}

	budget := r.size
	for budget > 0 {
		start := r.offset()
		_, body, err := p.nextElement(r, &budget)
		if err != nil {
			return err
		}

		table := &protocol.SendTable{}
		err = protocol.Unmarshal(body, table)
		if err != nil {
			return p.fail(r.name, start, err)
		}

		err = p.dispatch(table)
		if err != nil {
			return p.fail(r.name, start, err)
		}

		if table.IsEnd {
			break
		}
	}

	count, err := r.buffer.GetU16()
	if err != nil {
		return p.regionError(r, overrun(err))
	}

	p.log.Trace().Uint16("classes", count).Msg("reading class registry")

	for i := 0; i < int(count); i++ {
		start := r.offset()
		class := &format.ServerClass{}
		err = class.Unmarshal(&r.buffer)
		if err != nil {
			return p.fail(r.name, start, overrun(err))
		}

		err = p.dispatch(class)
		if err != nil {
			return p.fail(r.name, start, err)
		}
	}

	err = r.buffer.Drained()
	if err != nil {
		return p.regionError(r, err)
	}

	return nil
}

func (p *Parser) parseUnsupported(command format.Command) error {
	if p.options.Unsupported != UnsupportedSkip {
		return p.fail(
			command.String(),
			p.reader.Offset(),
			fmt.Errorf("%w: %s", ErrUnsupportedCommand, command),
		)
	}

	// User commands carry an outgoing sequence number and custom data a
	// callback index ahead of their data.
	if command == format.CommandUserCmd || command == format.CommandCustomData {
		var prefix int32
		err := p.reader.Get(&prefix)
		if err != nil {
			return p.fail(command.String(), p.reader.Offset(), err)
		}
	}

	r, err := p.readRegion(command.String())
	if err != nil {
		return err
	}

	p.log.Warn().
		Stringer("command", command).
		Int("size", r.size).
		Int64("offset", r.start).
		Msg("skipping uninterpreted command")
	return nil
}
