package events

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
)

type Record struct {
	Kind  string      `cbor:"kind"`
	Event interface{} `cbor:"event"`
}

type RawRecord struct {
	Kind  string          `cbor:"kind"`
	Event cbor.RawMessage `cbor:"event"`
}

// Decode unpacks the event into its concrete type.
func (r RawRecord) Decode() (interface{}, error) {
	event, ok := New(r.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnroutable, r.Kind)
	}

	err := cbor.Unmarshal(r.Event, event)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Recorder writes every event it sees to a stream of CBOR records.
type Recorder struct {
	encoder *cbor.Encoder
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		encoder: cbor.NewEncoder(w),
	}
}

func (r *Recorder) Observe(name string, event interface{}) error {
	return r.encoder.Encode(Record{
		Kind:  name,
		Event: event,
	})
}

func (r *Recorder) Handler() UserMessageHandler {
	return Funcs(r.Observe)
}

// ReadRecords calls fn for each record in a stream written by a Recorder.
func ReadRecords(reader io.Reader, fn func(RawRecord) error) error {
	decoder := cbor.NewDecoder(reader)
	for {
		var record RawRecord
		err := decoder.Decode(&record)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = fn(record)
		if err != nil {
			return err
		}
	}
}

// LogEvents writes one log line per event at the given level.
func LogEvents(logger zerolog.Logger, level zerolog.Level) EventFunc {
	return func(name string, event interface{}) error {
		logger.WithLevel(level).
			Str("kind", name).
			Msgf("%+v", event)
		return nil
	}
}
