package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	errProfiling     = errors.New("capture already running")
	errCaptureCooled = errors.New("capture on cooldown")
)

// frameSnapshot describes the scene at the moment a slow frame was seen.
// It is written next to the profile so a capture can be matched to load.
type frameSnapshot struct {
	Run         string  `yaml:"run"`
	Tick        int     `yaml:"tick"`
	FPS         float64 `yaml:"fps"`
	Enemies     int     `yaml:"enemies"`
	Projectiles int     `yaml:"projectiles"`
	Pickups     int     `yaml:"pickups"`
	Particles   int     `yaml:"particles"`
}

// captureManifest is the YAML file written after a capture completes
type captureManifest struct {
	Taken    time.Time     `yaml:"taken"`
	Duration time.Duration `yaml:"duration"`
	Frame    frameSnapshot `yaml:"frame"`
	Files    []string      `yaml:"files"`

	HeapAllocKB uint64 `yaml:"heap_alloc_kb"`
	SysKB       uint64 `yaml:"sys_kb"`
	NumGC       uint32 `yaml:"num_gc"`
	HeapObjects uint64 `yaml:"heap_objects"`
}

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops, at most once per cooldown
type Profiler struct {
	dir      string
	duration time.Duration
	cooldown time.Duration
	log      zerolog.Logger

	mu        sync.Mutex
	running   bool
	lastStart time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, log zerolog.Logger) *Profiler {
	return &Profiler{
		dir:      dir,
		duration: 5 * time.Second,
		cooldown: 10 * time.Second,
		log:      log,
	}
}

// CaptureProfile starts a background capture for the given frame. It returns
// immediately; the frame loop keeps running while the capture records it.
func (p *Profiler) CaptureProfile(frame frameSnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return errProfiling
	}
	if since := time.Since(p.lastStart); since < p.cooldown {
		return fmt.Errorf("%w: last capture %v ago", errCaptureCooled, since.Round(time.Second))
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.running = true
	p.lastStart = time.Now()
	base := fmt.Sprintf("slow-%s-tick%d", p.lastStart.Format("20060102-150405"), frame.Tick)

	go p.capture(base, frame)
	return nil
}

// capture records the CPU profile and the trace side by side, then writes
// the manifest
func (p *Profiler) capture(base string, frame frameSnapshot) {
	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	cpuPath := filepath.Join(p.dir, base+".cpu.prof")
	tracePath := filepath.Join(p.dir, base+".trace")

	var eg errgroup.Group
	eg.Go(func() error { return p.record(cpuPath, pprof.StartCPUProfile, pprof.StopCPUProfile) })
	eg.Go(func() error { return p.record(tracePath, trace.Start, trace.Stop) })
	if err := eg.Wait(); err != nil {
		p.log.Error().Err(err).Str("capture", base).Msg("profile capture failed")
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	manifest := captureManifest{
		Taken:       time.Now(),
		Duration:    p.duration,
		Frame:       frame,
		Files:       []string{filepath.Base(cpuPath), filepath.Base(tracePath)},
		HeapAllocKB: m.HeapAlloc / 1024,
		SysKB:       m.Sys / 1024,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}

	path := filepath.Join(p.dir, base+".yaml")
	if err := writeManifest(path, manifest); err != nil {
		p.log.Error().Err(err).Msg("write capture manifest")
		return
	}
	p.log.Info().Str("manifest", path).Int("enemies", frame.Enemies).Msg("profile captured")
}

// record runs one start/stop profiler pair over the capture duration
func (p *Profiler) record(path string, start func(w io.Writer) error, stop func()) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(path), err)
	}
	time.Sleep(p.duration)
	stop()
	return nil
}

// writeManifest stores a capture manifest as YAML
func writeManifest(path string, m captureManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// IsProfiling returns whether a capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
