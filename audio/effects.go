package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency slides linearly from
// freq to endFreq over its duration
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone builds one enveloped note
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(from, to, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// CreateShootSound is a short falling blip
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(880, 440, 60*time.Millisecond, WaveSquare, rate), 0.25)
}

// CreateHurtSound is a low saw buzz
func CreateHurtSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(180, 90, 180*time.Millisecond, WaveSaw, rate), 0.5)
}

// CreateEnemyDeathSound is a burst of noise
func CreateEnemyDeathSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(0, 0, 120*time.Millisecond, WaveNoise, rate), 0.3)
}

// CreatePlayerDeathSound is a long descending wail
func CreatePlayerDeathSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(440, 55, 900*time.Millisecond, WaveSaw, rate), 0.6)
}

// CreatePickupSound is a bright bell with an octave overtone
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	mixed := beep.Mix(
		newVolume(tone(1320, 1320, d, WaveSine, rate), 0.7),
		newVolume(tone(2640, 2640, d, WaveSine, rate), 0.3),
	)
	return newVolume(mixed, 0.35)
}

// CreateLevelUpSound is a rising three-note arpeggio
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	d := 110 * time.Millisecond
	seq := beep.Seq(
		tone(523.25, 523.25, d, WaveSquare, rate),
		tone(659.25, 659.25, d, WaveSquare, rate),
		tone(783.99, 783.99, 2*d, WaveSquare, rate),
	)
	return newVolume(seq, 0.4)
}

// GetSoundEffect returns a fresh streamer for the given sound
func GetSoundEffect(kind SoundKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case SoundShoot:
		return CreateShootSound(rate)
	case SoundHurt:
		return CreateHurtSound(rate)
	case SoundEnemyDeath:
		return CreateEnemyDeathSound(rate)
	case SoundPlayerDeath:
		return CreatePlayerDeathSound(rate)
	case SoundPickup:
		return CreatePickupSound(rate)
	case SoundLevelUp:
		return CreateLevelUpSound(rate)
	default:
		return nil
	}
}
