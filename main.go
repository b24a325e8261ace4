package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"slimesurvivors/audio"
	"slimesurvivors/game"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default game config")
	seed := flag.Int64("seed", 0, "random seed for spawns and rewards (0 picks one)")
	autopilot := flag.Bool("autopilot", false, "start with the autopilot steering")
	mute := flag.Bool("mute", false, "start with sound muted")
	profile := flag.Bool("profile", false, "capture a CPU profile and trace when the frame rate drops")
	profileDir := flag.String("profile-dir", "profiles", "directory for captured profiles")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(level)
	} else {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
	}

	if *seed == 0 {
		*seed = rand.Int63()
	}
	log.Info().Int64("seed", *seed).Msg("starting")

	sound := audio.NewSoundManager(log.With().Str("component", "audio").Logger())
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)

	var profiler *Profiler
	if *profile {
		profiler = NewProfiler(*profileDir, log.With().Str("component", "profiler").Logger())
	}

	g, err := NewGame(cfg, game.Options{
		Rand:   rand.New(rand.NewSource(*seed)),
		Logger: &log,
	}, sound, profiler, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}
	g.useAutopilot = *autopilot

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Slime Survivors")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
