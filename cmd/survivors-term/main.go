// Command survivors-term plays the arena in a terminal
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"slimesurvivors/audio"
	"slimesurvivors/game"
)

// terminal drives a simulation from tcell events
type terminal struct {
	screen    tcell.Screen
	sim       *game.Simulation
	sound     *audio.SoundManager
	pilot     *game.Autopilot
	keys      heldKeys
	autopilot bool
	clock     *game.PausableClock
	log       zerolog.Logger
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default game config")
	seed := flag.Int64("seed", 0, "random seed for spawns and rewards (0 picks one)")
	mute := flag.Bool("mute", false, "start with sound muted")
	logFile := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	log := zerolog.Nop()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	if err := run(*configPath, *seed, *mute, log); err != nil {
		log.Error().Err(err).Msg("terminal frontend failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run sets up the screen and blocks until the player quits
func run(configPath string, seed int64, mute bool, log zerolog.Logger) error {
	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sound := audio.NewSoundManager(log)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Warn().Err(err).Msg("audio unavailable")
	}
	defer sound.Cleanup()
	sound.SetMuted(mute)

	clock := game.NewPausableClock(nil)
	sim, err := game.NewSimulation(cfg, game.Options{
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(seed)),
		Sink:   sound,
		Logger: &log,
	})
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	t := &terminal{
		screen: screen,
		sim:    sim,
		sound:  sound,
		pilot:  game.NewAutopilot(),
		clock:  clock,
		log:    log,
	}
	t.loop()
	return nil
}

// loop multiplexes key events and the frame ticker
func (t *terminal) loop() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.step()
			t.draw()
		}
	}
}

// step advances the simulation by one frame
func (t *terminal) step() {
	held := t.keys.tick()
	if t.clock.Paused() {
		return
	}

	var provider game.IntentProvider = game.IntentFunc(func(game.View) game.Intent { return held })
	if t.autopilot {
		if t.sim.RewardPending() {
			if _, err := t.sim.ChooseReward(0); err != nil {
				t.log.Warn().Err(err).Msg("autopilot reward")
			}
		}
		provider = t.pilot
	}
	t.sim.Tick(provider.Intent(t.sim))
}

// togglePause freezes or resumes play. Pausing is refused while a reward
// choice or the game-over panel is showing.
func (t *terminal) togglePause() {
	if t.sim.GameOver() || t.sim.RewardPending() {
		return
	}
	t.clock.SetPaused(!t.clock.Paused())
}

// handleEvent processes one tcell event and reports whether to keep running
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// handleKey maps keys to movement, toggles and reward choices
func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		t.togglePause()
	case tcell.KeyUp:
		t.keys.press(dirUp)
	case tcell.KeyDown:
		t.keys.press(dirDown)
	case tcell.KeyLeft:
		t.keys.press(dirLeft)
	case tcell.KeyRight:
		t.keys.press(dirRight)
	case tcell.KeyF2:
		t.autopilot = !t.autopilot
		t.keys.release()
	case tcell.KeyRune:
		return t.handleRune(ev.Rune())
	}
	return true
}

// handleRune handles printable keys
func (t *terminal) handleRune(r rune) bool {
	if dir := runeDirection(r); dir != dirNone {
		t.keys.press(dir)
		return true
	}

	switch r {
	case 'q':
		return false
	case 'p':
		t.togglePause()
	case 'r':
		if t.sim.GameOver() || t.clock.Paused() {
			t.clock.Resume()
			t.sim.Restart()
			t.keys.release()
		}
	case 'm':
		t.sound.ToggleMute()
	case '1', '2', '3', '4', '5', '6':
		if t.sim.RewardPending() {
			if _, err := t.sim.ChooseReward(int(r - '1')); err != nil {
				t.log.Debug().Err(err).Msg("reward key ignored")
			}
		}
	}
	return true
}
