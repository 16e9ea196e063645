package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cfoust/sourdemo/pkg/config"
	"github.com/cfoust/sourdemo/pkg/demo"
	"github.com/cfoust/sourdemo/pkg/demo/events"
	"github.com/cfoust/sourdemo/pkg/demo/format"
	"github.com/cfoust/sourdemo/pkg/utils"
)

func handlerFor(cfg *config.Config, fn events.EventFunc) events.Handler {
	handler := events.Funcs(fn)
	if cfg.Parser.DecodeUserMessages {
		return events.NewUserMessageDecoder(handler)
	}
	return handler
}

func parseFile(ctx context.Context, cfg *config.Config, path string, handler events.Handler) (demo.Result, error) {
	input, err := openInput(path)
	if err != nil {
		return demo.Result{}, err
	}
	defer input.Close()

	logger := log.With().Str("demo", path).Logger()
	options := append(cfg.Parser.Options(), demo.WithLogger(logger))

	result, err := demo.NewParser(input, handler, options...).ParseContext(ctx)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug().
		Stringer("reason", result.Reason).
		Int("commands", result.Commands).
		Int32("tick", result.LastTick).
		Int64("bytes", result.Offset).
		Msg("parsed demo")
	return result, nil
}

func dumpCommand(cfg *config.Config, path string, outputPath string) error {
	session := utils.NewSession(context.Background())
	defer session.Cancel()

	if cfg.Output.Format == config.OutputText {
		level, _ := zerolog.ParseLevel(cfg.Output.Level)
		_, err := parseFile(session.Ctx(), cfg, path, handlerFor(cfg, events.LogEvents(log.Logger, level)))
		return err
	}

	output, err := createOutput(outputPath)
	if err != nil {
		return err
	}

	recorder := events.NewRecorder(output)
	_, err = parseFile(session.Ctx(), cfg, path, handlerFor(cfg, recorder.Observe))
	if err != nil {
		output.Close()
		return err
	}

	return output.Close()
}

type outcome struct {
	path   string
	result demo.Result
	err    error
}

func statsCommand(cfg *config.Config, paths []string) error {
	session := utils.NewSession(context.Background())
	defer session.Cancel()

	total := events.NewCounter()
	outcomes := utils.NewTopic[outcome]()
	subscriber := outcomes.Subscribe(len(paths))

	var failed int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for outcome := range subscriber.Recv() {
			if outcome.err != nil {
				failed++
				log.Error().Err(outcome.err).Str("demo", outcome.path).Msg("failed to parse demo")
				continue
			}
			log.Info().
				Str("demo", outcome.path).
				Stringer("reason", outcome.result.Reason).
				Int("commands", outcome.result.Commands).
				Msg("parsed demo")
		}
	}()

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Output.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				counter := events.NewCounter()
				result, err := parseFile(session.Ctx(), cfg, path, handlerFor(cfg, counter.Observe))
				if err == nil {
					total.Merge(counter)
				}
				outcomes.Publish(outcome{path, result, err})
			}
		}()
	}

	for _, path := range paths {
		if session.IsDone() {
			break
		}
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	outcomes.Close()
	<-done

	for _, tally := range total.Sorted() {
		fmt.Printf("%-40s %d\n", tally.Name, tally.Count)
	}

	log.Info().
		Int("demos", len(paths)).
		Int("events", total.Total()).
		Dur("elapsed", session.Elapsed()).
		Msg("done")

	if failed > 0 {
		return fmt.Errorf("%d of %d demos failed", failed, len(paths))
	}
	return nil
}

// fingerprint identifies a class registry. Two demos with the same
// fingerprint agree on every class ID.
func fingerprint(classes []format.ServerClass) uint64 {
	digest := xxhash.New()
	for _, class := range classes {
		fmt.Fprintf(digest, "%d %s %s\n", class.ID, class.Name, class.DataTable)
	}
	return digest.Sum64()
}

func classesCommand(cfg *config.Config, path string) error {
	session := utils.NewSession(context.Background())
	defer session.Cancel()

	var classes []format.ServerClass
	handler := events.Funcs(func(name string, event interface{}) error {
		if class, ok := event.(*format.ServerClass); ok {
			classes = append(classes, *class)
		}
		return nil
	})

	_, err := parseFile(session.Ctx(), cfg, path, handler)
	if err != nil {
		return err
	}

	for _, class := range classes {
		fmt.Printf("%4d %-40s %s\n", class.ID, class.Name, class.DataTable)
	}
	fmt.Printf("%d classes, fingerprint %016x\n", len(classes), fingerprint(classes))
	return nil
}

func replayCommand(cfg *config.Config, path string) error {
	input, err := openInput(path)
	if err != nil {
		return err
	}
	defer input.Close()

	level, _ := zerolog.ParseLevel(cfg.Output.Level)
	logEvent := events.LogEvents(log.Logger, level)

	count := 0
	err = events.ReadRecords(input, func(record events.RawRecord) error {
		event, err := record.Decode()
		if err != nil {
			return err
		}
		count++
		return logEvent(record.Kind, event)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d records\n", count)
	return nil
}
