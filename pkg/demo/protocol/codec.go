package protocol

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrCodec = errors.New("invalid message payload")

// Fields are described with a `pb` struct tag holding the field number and
// optional encoding hints:
//
//	Origin int32  `pb:"1,zigzag"`
//	Crc    uint32 `pb:"8,fixed"`
//
// Struct fields are embedded messages, slices are repeated fields. Both
// packed and unpacked scalar encodings are accepted.
type fieldInfo struct {
	index  int
	number protowire.Number
	zigzag bool
	fixed  bool
}

type messageInfo struct {
	fields  []fieldInfo
	byField map[protowire.Number]int
}

var messageInfos sync.Map

func getMessageInfo(type_ reflect.Type) (*messageInfo, error) {
	if cached, ok := messageInfos.Load(type_); ok {
		return cached.(*messageInfo), nil
	}

	info := &messageInfo{
		byField: make(map[protowire.Number]int),
	}

	for i := 0; i < type_.NumField(); i++ {
		field := type_.Field(i)
		tag, ok := field.Tag.Lookup("pb")
		if !ok {
			continue
		}

		parts := strings.Split(tag, ",")
		number, err := strconv.Atoi(parts[0])
		if err != nil || number <= 0 {
			return nil, fmt.Errorf("%s.%s has invalid pb tag %q", type_, field.Name, tag)
		}

		descriptor := fieldInfo{
			index:  i,
			number: protowire.Number(number),
		}

		for _, option := range parts[1:] {
			switch option {
			case "zigzag":
				descriptor.zigzag = true
			case "fixed":
				descriptor.fixed = true
			default:
				return nil, fmt.Errorf("%s.%s has unknown pb option %q", type_, field.Name, option)
			}
		}

		info.byField[descriptor.number] = len(info.fields)
		info.fields = append(info.fields, descriptor)
	}

	actual, _ := messageInfos.LoadOrStore(type_, info)
	return actual.(*messageInfo), nil
}

func codecError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCodec, fmt.Sprintf(format, args...))
}

func isScalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int32, reflect.Int64,
		reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Unmarshal decodes a protobuf payload into the struct v points to. Fields
// without a `pb` tag are left alone and unknown field numbers are skipped.
func Unmarshal(b []byte, v interface{}) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cannot unmarshal into %T", v)
	}

	return unmarshalStruct(b, value.Elem())
}

func unmarshalStruct(b []byte, value reflect.Value) error {
	info, err := getMessageInfo(value.Type())
	if err != nil {
		return err
	}

	for len(b) > 0 {
		number, wireType, n := protowire.ConsumeTag(b)
		if n < 0 {
			return codecError("%s: bad tag: %v", value.Type(), protowire.ParseError(n))
		}
		b = b[n:]

		index, ok := info.byField[number]
		if !ok {
			n = protowire.ConsumeFieldValue(number, wireType, b)
			if n < 0 {
				return codecError("%s: field %d: %v", value.Type(), number, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		field := info.fields[index]
		n, err = unmarshalField(b, wireType, field, value.Field(field.index))
		if err != nil {
			return fmt.Errorf("%s field %d: %w", value.Type(), number, err)
		}
		b = b[n:]
	}

	return nil
}

func unmarshalField(b []byte, wireType protowire.Type, field fieldInfo, value reflect.Value) (int, error) {
	type_ := value.Type()

	switch {
	case type_.Kind() == reflect.Slice && type_.Elem().Kind() == reflect.Uint8:
		data, n, err := consumeBytes(b, wireType)
		if err != nil {
			return 0, err
		}
		value.SetBytes(append([]byte(nil), data...))
		return n, nil

	case type_.Kind() == reflect.Slice:
		element := type_.Elem()

		// Packed repeated scalars
		if isScalar(element.Kind()) && wireType == protowire.BytesType {
			data, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, codecError("packed: %v", protowire.ParseError(n))
			}

			for len(data) > 0 {
				entry := reflect.New(element).Elem()
				m, err := unmarshalScalar(data, scalarWireType(element.Kind(), field), field, entry)
				if err != nil {
					return 0, err
				}
				data = data[m:]
				value.Set(reflect.Append(value, entry))
			}
			return n, nil
		}

		entry := reflect.New(element).Elem()
		n, err := unmarshalSingle(b, wireType, field, entry)
		if err != nil {
			return 0, err
		}
		value.Set(reflect.Append(value, entry))
		return n, nil
	}

	return unmarshalSingle(b, wireType, field, value)
}

func unmarshalSingle(b []byte, wireType protowire.Type, field fieldInfo, value reflect.Value) (int, error) {
	switch value.Kind() {
	case reflect.String:
		data, n, err := consumeBytes(b, wireType)
		if err != nil {
			return 0, err
		}
		value.SetString(string(data))
		return n, nil
	case reflect.Slice:
		if value.Type().Elem().Kind() != reflect.Uint8 {
			return 0, fmt.Errorf("nested repeated field %s is not supported", value.Type())
		}
		data, n, err := consumeBytes(b, wireType)
		if err != nil {
			return 0, err
		}
		value.SetBytes(append([]byte(nil), data...))
		return n, nil
	case reflect.Struct:
		data, n, err := consumeBytes(b, wireType)
		if err != nil {
			return 0, err
		}
		err = unmarshalStruct(data, value)
		if err != nil {
			return 0, err
		}
		return n, nil
	}

	return unmarshalScalar(b, wireType, field, value)
}

func consumeBytes(b []byte, wireType protowire.Type) ([]byte, int, error) {
	if wireType != protowire.BytesType {
		return nil, 0, codecError("expected length-delimited field, got wire type %d", wireType)
	}

	data, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, codecError("%v", protowire.ParseError(n))
	}
	return data, n, nil
}

func scalarWireType(kind reflect.Kind, field fieldInfo) protowire.Type {
	switch kind {
	case reflect.Float32:
		return protowire.Fixed32Type
	case reflect.Float64:
		return protowire.Fixed64Type
	case reflect.Int32, reflect.Uint32:
		if field.fixed {
			return protowire.Fixed32Type
		}
	case reflect.Int64, reflect.Uint64:
		if field.fixed {
			return protowire.Fixed64Type
		}
	}
	return protowire.VarintType
}

func unmarshalScalar(b []byte, wireType protowire.Type, field fieldInfo, value reflect.Value) (int, error) {
	expected := scalarWireType(value.Kind(), field)
	if wireType != expected {
		return 0, codecError("%s expects wire type %d, got %d", value.Type(), expected, wireType)
	}

	var raw uint64
	var n int
	switch wireType {
	case protowire.VarintType:
		raw, n = protowire.ConsumeVarint(b)
	case protowire.Fixed32Type:
		var v uint32
		v, n = protowire.ConsumeFixed32(b)
		raw = uint64(v)
	case protowire.Fixed64Type:
		raw, n = protowire.ConsumeFixed64(b)
	}
	if n < 0 {
		return 0, codecError("%s: %v", value.Type(), protowire.ParseError(n))
	}

	switch value.Kind() {
	case reflect.Bool:
		value.SetBool(raw != 0)
	case reflect.Int32:
		if field.zigzag {
			value.SetInt(int64(int32(protowire.DecodeZigZag(raw & math.MaxUint32))))
		} else {
			value.SetInt(int64(int32(raw)))
		}
	case reflect.Int64:
		if field.zigzag {
			value.SetInt(protowire.DecodeZigZag(raw))
		} else {
			value.SetInt(int64(raw))
		}
	case reflect.Uint32:
		value.SetUint(uint64(uint32(raw)))
	case reflect.Uint64:
		value.SetUint(raw)
	case reflect.Float32:
		value.SetFloat(float64(math.Float32frombits(uint32(raw))))
	case reflect.Float64:
		value.SetFloat(math.Float64frombits(raw))
	default:
		return 0, fmt.Errorf("unimplemented type: %s", value.Type())
	}

	return n, nil
}

// Marshal encodes the struct v as a protobuf payload. Zero-valued fields are
// omitted and repeated scalars are written unpacked.
func Marshal(v interface{}) ([]byte, error) {
	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot marshal %T", v)
	}

	return marshalStruct(nil, value)
}

func marshalStruct(b []byte, value reflect.Value) ([]byte, error) {
	info, err := getMessageInfo(value.Type())
	if err != nil {
		return nil, err
	}

	for _, field := range info.fields {
		fieldValue := value.Field(field.index)
		type_ := fieldValue.Type()

		if type_.Kind() == reflect.Slice && type_.Elem().Kind() != reflect.Uint8 {
			for i := 0; i < fieldValue.Len(); i++ {
				b, err = marshalSingle(b, field, fieldValue.Index(i), true)
				if err != nil {
					return nil, err
				}
			}
			continue
		}

		b, err = marshalSingle(b, field, fieldValue, false)
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

func marshalSingle(b []byte, field fieldInfo, value reflect.Value, always bool) ([]byte, error) {
	if !always && value.IsZero() {
		return b, nil
	}

	switch value.Kind() {
	case reflect.String:
		b = protowire.AppendTag(b, field.number, protowire.BytesType)
		return protowire.AppendString(b, value.String()), nil
	case reflect.Slice:
		b = protowire.AppendTag(b, field.number, protowire.BytesType)
		return protowire.AppendBytes(b, value.Bytes()), nil
	case reflect.Struct:
		inner, err := marshalStruct(nil, value)
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, field.number, protowire.BytesType)
		return protowire.AppendBytes(b, inner), nil
	}

	wireType := scalarWireType(value.Kind(), field)
	b = protowire.AppendTag(b, field.number, wireType)

	var raw uint64
	switch value.Kind() {
	case reflect.Bool:
		raw = protowire.EncodeBool(value.Bool())
	case reflect.Int32, reflect.Int64:
		if field.zigzag {
			raw = protowire.EncodeZigZag(value.Int())
		} else {
			raw = uint64(value.Int())
		}
	case reflect.Uint32, reflect.Uint64:
		raw = value.Uint()
	case reflect.Float32:
		raw = uint64(math.Float32bits(float32(value.Float())))
	case reflect.Float64:
		raw = math.Float64bits(value.Float())
	default:
		return nil, fmt.Errorf("unimplemented type: %s", value.Type())
	}

	switch wireType {
	case protowire.Fixed32Type:
		b = protowire.AppendFixed32(b, uint32(raw))
	case protowire.Fixed64Type:
		b = protowire.AppendFixed64(b, raw)
	default:
		b = protowire.AppendVarint(b, raw)
	}

	return b, nil
}
