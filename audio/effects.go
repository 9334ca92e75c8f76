package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped sine note from the beep generators
func tone(freq float64, d, attack, release time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, attack, release, rate), nil
}

// CreateEatSound is a quick rising two-note chirp
func CreateEatSound(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	n1, err := tone(659.25, eatNoteDuration, eatAttack, eatRelease, rate) // E5
	if err != nil {
		return nil, err
	}
	n2, err := tone(987.77, eatNoteDuration, eatAttack, eatRelease, rate) // B5
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(n1, n2), cfg.Volume), nil
}

// CreatePoisonSound is a low saw with a noise wash
func CreatePoisonSound(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewEnvelope(NewOscillator(110, poisonDuration, WaveSaw, rate), poisonDuration, poisonAttack, poisonRelease, rate)
	noise := NewEnvelope(NewOscillator(0, poisonDuration, WaveNoise, rate), poisonDuration, poisonAttack, poisonRelease, rate)

	mixed := beep.Mix(newVolume(saw, 0.7), newVolume(noise, 0.2))
	return newVolume(mixed, cfg.Volume), nil
}

// CreateCrashSound is a short square-wave thud
func CreateCrashSound(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(82.41, crashDuration, WaveSquare, rate) // E2
	shaped := NewEnvelope(osc, crashDuration, crashAttack, crashRelease, rate)
	return newVolume(shaped, cfg.Volume*0.6), nil
}

// CreateFanfareSound is an ascending major arpeggio
func CreateFanfareSound(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
	streams := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		s, err := tone(f, fanfareNote, fanfareAttack, fanfareRelease, rate)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}
	return newVolume(beep.Seq(streams...), cfg.Volume), nil
}

// GetSoundEffect returns the streamer for a cue
func GetSoundEffect(t SoundType, cfg Config) (beep.Streamer, error) {
	switch t {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundPoison:
		return CreatePoisonSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundFanfare:
		return CreateFanfareSound(cfg)
	default:
		return nil, nil
	}
}
