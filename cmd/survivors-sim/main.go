// Command survivors-sim plays the arena headlessly with the autopilot and
// prints a YAML summary of every run
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"slimesurvivors/game"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default game config")
	runs := flag.Int("runs", 1, "number of games to play")
	maxTicks := flag.Int("max-ticks", 60*60*10, "tick limit per game")
	seed := flag.Int64("seed", 1, "seed of the first run; run i uses seed+i")
	parallel := flag.Int("parallel", runtime.NumCPU(), "games played concurrently")
	out := flag.String("out", "-", "summary destination, - for stdout")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("parse log level")
	}
	log = log.Level(level)

	if *runs <= 0 || *maxTicks <= 0 {
		log.Fatal().Int("runs", *runs).Int("max_ticks", *maxTicks).Msg("runs and max-ticks must be positive")
	}

	cfg := game.DefaultConfig()
	if *configPath != "" {
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{cfg: cfg, maxTicks: *maxTicks, parallel: *parallel, log: log}
	summary, err := r.playAll(ctx, *runs, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	if err := writeSummary(*out, summary); err != nil {
		log.Fatal().Err(err).Msg("write summary")
	}
}

// writeSummary encodes the summary as YAML to a file or stdout
func writeSummary(path string, summary Summary) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}
