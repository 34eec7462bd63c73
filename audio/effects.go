package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/whack/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear pitch glide
type oscillator struct {
	freq     float64
	glide    float64 // Hz added over the full duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, 0, duration, wave, rate)
}

// NewGlide creates an oscillator sliding from freq to freq+glide
func NewGlide(freq, glide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		glide:    glide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), uint64(duration))),
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
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		o.phase += (o.freq + o.glide*progress) / float64(o.rate)
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
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

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
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// semitone returns base shifted by n equal-tempered semitones
func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

// CreateHitSound renders hit variant n (1-based): a downward "bonk" with a
// short noise thump, pitched one semitone higher per variant
func CreateHitSound(n int, rate beep.SampleRate) beep.Streamer {
	freq := semitone(constants.HitSoundBaseFreq, n-1)
	d := constants.HitSoundDuration

	wave := WaveSine
	if n%2 == 0 {
		wave = WaveTriangle
	}
	tone := NewEnvelope(NewGlide(freq, -freq/2, d, wave, rate), d, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	thumpLen := d / 4
	thump := NewEnvelope(NewOscillator(0, thumpLen, WaveNoise, rate), thumpLen, time.Millisecond, thumpLen-time.Millisecond, rate)

	return beep.Mix(
		newVolume(tone, 0.8),
		newVolume(thump, 0.3),
	)
}

// gameOverScales holds the descending phrase for each game-over variant, in semitones
var gameOverScales = [constants.GameOverSoundCount][constants.GameOverNotes]int{
	{7, 4, 0, -5},
	{12, 7, 3, 0},
	{5, 3, 1, -2},
	{9, 5, 2, -3},
	{4, 2, 0, -12},
}

// CreateGameOverSound renders game-over variant n (1-based): a falling four-note phrase
// with a short rest before the last note
func CreateGameOverSound(n int, rate beep.SampleRate) beep.Streamer {
	phrase := gameOverScales[(n-1)%len(gameOverScales)]
	d := constants.GameOverNoteDuration

	notes := make([]beep.Streamer, 0, len(phrase)+1)
	for i, step := range phrase {
		wave := WaveSquare
		if i == len(phrase)-1 {
			wave = WaveSine
			notes = append(notes, generators.Silence(rate.N(constants.GameOverRest)))
		}
		osc := NewOscillator(semitone(constants.HitSoundBaseFreq*2, step), d, wave, rate)
		notes = append(notes, newVolume(NewEnvelope(osc, d, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate), 0.5))
	}
	return beep.Seq(notes...)
}
