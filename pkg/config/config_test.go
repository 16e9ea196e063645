package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfoust/sourdemo/pkg/demo"
)

func write(t *testing.T, path string, contents string) {
	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)
}

func TestProcess(t *testing.T) {
	// Default config
	config, err := Process([]string{})
	require.NoError(t, err)
	require.Equal(t, "fail", config.Parser.UnsupportedCommands)
	require.Equal(t, "stop", config.Parser.UnknownCommands)
	require.False(t, config.Parser.StrictMagic)
	require.Equal(t, demo.DEFAULT_MAX_REGION_SIZE, config.Parser.MaxRegionBytes)
	require.True(t, config.Parser.DecodeUserMessages)
	require.Equal(t, OutputText, config.Output.Format)

	dir := t.TempDir()

	// yaml config
	{
		yaml := filepath.Join(dir, "config.yaml")
		write(t, yaml, `
parser:
  unsupportedCommands: skip
`)
		config, err = Process([]string{yaml})
		require.NoError(t, err)
		require.Equal(t, "skip", config.Parser.UnsupportedCommands)
		require.Equal(t, "stop", config.Parser.UnknownCommands)
	}

	// json config
	{
		json := filepath.Join(dir, "config.json")
		write(t, json, `{
  "output": {
    "format": "cbor"
  }
}`)
		config, err = Process([]string{json})
		require.NoError(t, err)
		require.Equal(t, OutputCBOR, config.Output.Format)
	}

	// multiple yaml
	{
		yaml1 := filepath.Join(dir, "config1.yaml")
		write(t, yaml1, `
parser:
  unknownCommands: fail
  maxRegionBytes: 1024
`)

		yaml2 := filepath.Join(dir, "config2.yaml")
		write(t, yaml2, `
parser:
  maxRegionBytes: 2048
`)
		config, err = Process([]string{yaml1, yaml2})
		require.NoError(t, err)
		require.Equal(t, "fail", config.Parser.UnknownCommands)
		require.Equal(t, 2048, config.Parser.MaxRegionBytes)
	}
}

func TestInvalid(t *testing.T) {
	dir := t.TempDir()

	for name, contents := range map[string]string{
		"policy.yaml":  "parser:\n  unsupportedCommands: ignore\n",
		"unknown.yaml": "parser:\n  unknownCommands: skip\n",
		"format.yaml":  "output:\n  format: xml\n",
		"size.yaml":    "parser:\n  maxRegionBytes: 0\n",
		"key.yaml":     "parser:\n  colour: blue\n",
		"config.toml":  "[parser]\n",
	} {
		path := filepath.Join(dir, name)
		write(t, path, contents)
		_, err := Process([]string{path})
		require.Error(t, err, name)
	}

	_, err := Process([]string{filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	config, err := Process([]string{})
	require.NoError(t, err)

	config.Parser.UnsupportedCommands = "skip"
	config.Parser.StrictMagic = true

	options := demo.DefaultOptions()
	for _, option := range config.Parser.Options() {
		option(&options)
	}

	require.Equal(t, demo.UnsupportedSkip, options.Unsupported)
	require.Equal(t, demo.UnknownStop, options.Unknown)
	require.True(t, options.StrictMagic)
}

func TestMarshal(t *testing.T) {
	config, err := Process([]string{})
	require.NoError(t, err)

	data, err := config.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "effective.yaml")
	write(t, path, string(data))

	again, err := Process([]string{path})
	require.NoError(t, err)
	require.Equal(t, config, again)
}
