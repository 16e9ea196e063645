package demo

import (
	"io"

	"github.com/cfoust/sourdemo/pkg/demo/format"
	dio "github.com/cfoust/sourdemo/pkg/demo/io"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

// Writer produces demo files. It understands the same subset of commands as
// the parser.
type Writer struct {
	writer io.Writer
}

func NewWriter(writer io.Writer) *Writer {
	return &Writer{writer: writer}
}

func (w *Writer) write(p dio.Buffer) error {
	_, err := w.writer.Write(p)
	return err
}

func (w *Writer) WriteHeader(header format.FileHeader) error {
	p := dio.Buffer{}
	err := p.Put(header)
	if err != nil {
		return err
	}
	return w.write(p)
}

func (w *Writer) writeCommand(p *dio.Buffer, command format.Command, tick int32) error {
	return p.Put(format.CommandHeader{
		Command: uint8(command),
		Tick:    tick,
	})
}

func putRegion(p *dio.Buffer, region dio.Buffer) error {
	err := p.Put(format.DataHeader{Size: int32(len(region))})
	if err != nil {
		return err
	}
	*p = append(*p, region...)
	return nil
}

// EncodeMessages frames messages the way they appear in a packet: varint
// kind, varint length, payload.
func EncodeMessages(messages ...protocol.Message) (dio.Buffer, error) {
	p := dio.Buffer{}
	for _, message := range messages {
		payload, err := protocol.Encode(message)
		if err != nil {
			return nil, err
		}

		p.PutVarUint(uint32(message.Type()))
		p.PutVarUint(uint32(len(payload)))
		p = append(p, payload...)
	}
	return p, nil
}

func (w *Writer) WritePacket(command format.Command, tick int32, info format.PacketInfo, messages ...protocol.Message) error {
	data, err := EncodeMessages(messages...)
	if err != nil {
		return err
	}

	return w.WriteRawPacket(command, tick, info, data)
}

// WriteRawPacket writes a packet whose message stream has already been
// framed.
func (w *Writer) WriteRawPacket(command format.Command, tick int32, info format.PacketInfo, data []byte) error {
	p := dio.Buffer{}
	err := w.writeCommand(&p, command, tick)
	if err != nil {
		return err
	}

	err = p.Put(info)
	if err != nil {
		return err
	}

	err = putRegion(&p, data)
	if err != nil {
		return err
	}

	return w.write(p)
}

// EncodeDataTables builds the body of a dem_datatables region. The last
// table should have IsEnd set.
func EncodeDataTables(tables []protocol.SendTable, classes []format.ServerClass) (dio.Buffer, error) {
	p := dio.Buffer{}
	for _, table := range tables {
		payload, err := protocol.Marshal(&table)
		if err != nil {
			return nil, err
		}

		p.PutVarUint(uint32(protocol.SVC_SEND_TABLE))
		p.PutVarUint(uint32(len(payload)))
		p = append(p, payload...)
	}

	err := p.Put(uint16(len(classes)))
	if err != nil {
		return nil, err
	}

	for _, class := range classes {
		err = class.Marshal(&p)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (w *Writer) WriteDataTables(tick int32, tables []protocol.SendTable, classes []format.ServerClass) error {
	data, err := EncodeDataTables(tables, classes)
	if err != nil {
		return err
	}

	return w.WriteRaw(format.CommandDataTables, tick, data)
}

// WriteRaw writes a command followed by a DataHeader-framed region.
func (w *Writer) WriteRaw(command format.Command, tick int32, data []byte) error {
	p := dio.Buffer{}
	err := w.writeCommand(&p, command, tick)
	if err != nil {
		return err
	}

	err = putRegion(&p, data)
	if err != nil {
		return err
	}

	return w.write(p)
}

func (w *Writer) WriteSyncTick(tick int32) error {
	p := dio.Buffer{}
	err := w.writeCommand(&p, format.CommandSyncTick, tick)
	if err != nil {
		return err
	}
	return w.write(p)
}

// WriteCommand writes a bare command header, which is all dem_stop and
// unknown commands consist of.
func (w *Writer) WriteCommand(command format.Command, tick int32) error {
	p := dio.Buffer{}
	err := w.writeCommand(&p, command, tick)
	if err != nil {
		return err
	}
	return w.write(p)
}

func (w *Writer) WriteStop(tick int32) error {
	return w.WriteCommand(format.CommandStop, tick)
}
