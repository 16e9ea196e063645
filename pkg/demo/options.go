package demo

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// UnsupportedPolicy decides what happens to console commands, user commands,
// custom data and string tables, none of which are interpreted.
type UnsupportedPolicy string

const (
	UnsupportedFail UnsupportedPolicy = "fail"
	UnsupportedSkip UnsupportedPolicy = "skip"
)

// UnknownPolicy decides what happens when a command code is outside the
// known range.
type UnknownPolicy string

const (
	// Treat the code as the end of the demo.
	UnknownStop UnknownPolicy = "stop"
	UnknownFail UnknownPolicy = "fail"
)

func ParseUnsupportedPolicy(value string) (UnsupportedPolicy, error) {
	switch policy := UnsupportedPolicy(value); policy {
	case UnsupportedFail, UnsupportedSkip:
		return policy, nil
	}
	return "", fmt.Errorf("unknown unsupported command policy %q", value)
}

func ParseUnknownPolicy(value string) (UnknownPolicy, error) {
	switch policy := UnknownPolicy(value); policy {
	case UnknownStop, UnknownFail:
		return policy, nil
	}
	return "", fmt.Errorf("unknown command policy %q", value)
}

const DEFAULT_MAX_REGION_SIZE = 64 * 1024 * 1024

type Options struct {
	Unsupported UnsupportedPolicy
	Unknown     UnknownPolicy
	// Reject files whose header does not start with HL2DEMO
	StrictMagic bool
	// Upper bound on a single region's declared size
	MaxRegionSize int
	Logger        zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		Unsupported:   UnsupportedFail,
		Unknown:       UnknownStop,
		StrictMagic:   false,
		MaxRegionSize: DEFAULT_MAX_REGION_SIZE,
		Logger:        log.Logger,
	}
}

type Option func(*Options)

func WithUnsupportedPolicy(policy UnsupportedPolicy) Option {
	return func(o *Options) { o.Unsupported = policy }
}

func WithUnknownPolicy(policy UnknownPolicy) Option {
	return func(o *Options) { o.Unknown = policy }
}

func WithStrictMagic(strict bool) Option {
	return func(o *Options) { o.StrictMagic = strict }
}

func WithMaxRegionSize(size int) Option {
	return func(o *Options) { o.MaxRegionSize = size }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
