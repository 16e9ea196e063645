package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cfoust/sourdemo/pkg/config"
	"github.com/cfoust/sourdemo/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version bool     `help:"Print version information and exit." short:"v"`
	Debug   bool     `help:"Whether to enable debug logging."`
	Config  []string `help:"Configuration files, applied in order over the defaults." short:"c" type:"existingfile"`

	Dump struct {
		Demo   string `arg:"" help:"Demo to read. .gz and .sz files are decompressed." type:"existingfile"`
		Output string `help:"Where to write CBOR records. .gz and .sz files are compressed." short:"o" default:"-"`
	} `cmd:"" help:"Print or record every event in a demo."`

	Stats struct {
		Demos []string `arg:"" help:"Demos to read." type:"existingfile"`
	} `cmd:"" help:"Count the events in one or more demos."`

	Classes struct {
		Demo string `arg:"" help:"Demo to read." type:"existingfile"`
	} `cmd:"" help:"List the server classes a demo registers."`

	Replay struct {
		Records string `arg:"" help:"CBOR records written by dump." type:"existingfile"`
	} `cmd:"" help:"Log the events in a recording made by dump."`

	ShowConfig struct {
	} `cmd:"" name:"config" help:"Write the effective configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("sourdemo"),
		kong.Description("a reader for Source engine demo files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf(
			"sourdemo %s (commit %s)\n",
			version.Version,
			version.GitCommit,
		)
		fmt.Printf(
			"built %s\n",
			version.BuildTime,
		)
		os.Exit(0)
	}

	cfg, err := config.Process(CLI.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	switch ctx.Command() {
	case "dump <demo>":
		err = dumpCommand(cfg, CLI.Dump.Demo, CLI.Dump.Output)
	case "stats <demos>":
		err = statsCommand(cfg, CLI.Stats.Demos)
	case "classes <demo>":
		err = classesCommand(cfg, CLI.Classes.Demo)
	case "replay <records>":
		err = replayCommand(cfg, CLI.Replay.Records)
	case "config":
		var data []byte
		data, err = cfg.Marshal()
		if err == nil {
			_, err = os.Stdout.Write(data)
		}
	}

	if err != nil {
		writeError(err)
	}
}
