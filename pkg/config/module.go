package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cfoust/sourdemo/pkg/demo"
)

//go:embed default.yaml
var DEFAULT []byte

type ParserConfig struct {
	UnsupportedCommands string `yaml:"unsupportedCommands"`
	UnknownCommands     string `yaml:"unknownCommands"`
	StrictMagic         bool   `yaml:"strictMagic"`
	MaxRegionBytes      int    `yaml:"maxRegionBytes"`
	DecodeUserMessages  bool   `yaml:"decodeUserMessages"`
}

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputCBOR OutputFormat = "cbor"
)

type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
	// Level at which events are logged in text mode
	Level   string `yaml:"level"`
	Workers int    `yaml:"workers"`
}

type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
}

func (c *ParserConfig) Validate() error {
	if _, err := demo.ParseUnsupportedPolicy(c.UnsupportedCommands); err != nil {
		return err
	}

	if _, err := demo.ParseUnknownPolicy(c.UnknownCommands); err != nil {
		return err
	}

	if c.MaxRegionBytes <= 0 {
		return fmt.Errorf("maxRegionBytes must be positive, got %d", c.MaxRegionBytes)
	}

	return nil
}

// Options converts the parser section into options for demo.Parse. The
// config must already be valid.
func (c *ParserConfig) Options() []demo.Option {
	unsupported, _ := demo.ParseUnsupportedPolicy(c.UnsupportedCommands)
	unknown, _ := demo.ParseUnknownPolicy(c.UnknownCommands)
	return []demo.Option{
		demo.WithUnsupportedPolicy(unsupported),
		demo.WithUnknownPolicy(unknown),
		demo.WithStrictMagic(c.StrictMagic),
		demo.WithMaxRegionSize(c.MaxRegionBytes),
	}
}

func (c *OutputConfig) Validate() error {
	switch c.Format {
	case OutputText, OutputCBOR:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}

	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}

func (c *Config) Validate() error {
	if err := c.Parser.Validate(); err != nil {
		return fmt.Errorf("parser: %w", err)
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

// decode layers the document in data over config. Keys missing from the
// document keep their current value.
func decode(config *Config, data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(config)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func readFile(config *Config, path string) error {
	// Check if this is a valid file
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("does not exist")
	}

	switch filepath.Ext(path) {
	// JSON is a subset of YAML
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return decode(config, data)
	}

	return fmt.Errorf(
		"not in a valid format",
	)
}

// Process starts from the default configuration and layers the provided
// configuration files over it in order.
func Process(configPaths []string) (*Config, error) {
	config := Config{}
	err := decode(&config, DEFAULT)
	if err != nil {
		return nil, fmt.Errorf(
			"invalid default config file: %v",
			err,
		)
	}

	for _, path := range configPaths {
		err := readFile(&config, path)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %v",
				path,
				err,
			)
		}

		err = config.Validate()
		if err != nil {
			return nil, fmt.Errorf(
				"config file %s is not valid: %v",
				path,
				err,
			)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Marshal renders the effective configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
