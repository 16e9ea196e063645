package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoust/sourdemo/pkg/demo"
	"github.com/cfoust/sourdemo/pkg/demo/events"
	"github.com/cfoust/sourdemo/pkg/demo/format"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

func writeDemo(t *testing.T, path string) {
	output, err := createOutput(path)
	require.NoError(t, err)

	w := demo.NewWriter(output)
	require.NoError(t, w.WriteHeader(format.NewFileHeader("server", "GOTV Demo", "de_inferno", "csgo")))
	require.NoError(t, w.WritePacket(format.CommandPacket, 1, format.PacketInfo{}, &protocol.Print{Text: "hi"}))
	require.NoError(t, w.WriteStop(1))
	require.NoError(t, output.Close())
}

func TestCompressedInputs(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"plain.dem", "demo.dem.gz", "demo.dem.sz"} {
		path := filepath.Join(dir, name)
		writeDemo(t, path)

		input, err := openInput(path)
		require.NoError(t, err, name)

		counter := events.NewCounter()
		result, err := demo.Parse(input, counter.Handler())
		require.NoError(t, err, name)
		require.NoError(t, input.Close())

		assert.Equal(t, demo.Stopped, result.Reason, name)
		assert.Equal(t, 1, counter.Count("svc_Print"), name)
	}
}

func TestRecordingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.cbor.sz")

	output, err := createOutput(path)
	require.NoError(t, err)

	recorder := events.NewRecorder(output)
	require.NoError(t, recorder.Observe("svc_Print", &protocol.Print{Text: "hello"}))
	require.NoError(t, output.Close())

	input, err := openInput(path)
	require.NoError(t, err)
	defer input.Close()

	var got []interface{}
	err = events.ReadRecords(input, func(record events.RawRecord) error {
		event, err := record.Decode()
		got = append(got, event)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{&protocol.Print{Text: "hello"}}, got)
}

func TestFingerprint(t *testing.T) {
	classes := []format.ServerClass{
		{ID: 0, Name: "CAI_BaseNPC", DataTable: "DT_AI_BaseNPC"},
		{ID: 1, Name: "CAK47", DataTable: "DT_WeaponAK47"},
	}

	assert.Equal(t, fingerprint(classes), fingerprint(append([]format.ServerClass{}, classes...)))

	swapped := []format.ServerClass{classes[0], {ID: 1, Name: "CAK47", DataTable: "DT_WeaponM4A1"}}
	assert.NotEqual(t, fingerprint(classes), fingerprint(swapped))
	assert.NotEqual(t, fingerprint(classes), fingerprint(nil))
}

