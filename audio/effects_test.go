package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns all samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// TestOscillatorSine verifies sine samples stay in range and duration is honored
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d invalid: %v", i, s)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(osc) {
		if s[0] != -1 && s[0] != 1 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

// TestOscillatorDrained verifies a finished oscillator reports not ok
func TestOscillatorDrained(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveTriangle, beep.SampleRate(8000))
	drain(osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("drained oscillator returned n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies silence at the start and the end of the envelope
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != rate.N(d) {
		t.Fatalf("Expected %d samples, got %d", rate.N(d), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if mid != 1 {
		t.Errorf("sustain should pass through, got %f", mid)
	}
	last := samples[len(samples)-1][0]
	if last > 0.05 || last < -0.05 {
		t.Errorf("release should end near silence, got %f", last)
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)
	for _, sm := range drain(s) {
		if sm[0] != 0 {
			t.Fatal("zero volume should be silent")
		}
	}
}

func TestSemitone(t *testing.T) {
	if got := semitone(220, 12); got < 439.999 || got > 440.001 {
		t.Errorf("octave up = %f, want 440", got)
	}
	if got := semitone(220, 0); got != 220 {
		t.Errorf("unison = %f", got)
	}
}

// TestHitVariantsDiffer verifies variants are distinct renderings
func TestHitVariantsDiffer(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := drain(CreateHitSound(1, rate))
	b := drain(CreateHitSound(2, rate))

	if len(a) == 0 || len(b) == 0 {
		t.Fatal("empty hit sound")
	}
	same := true
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("hit variants 1 and 2 are identical")
	}
}

func TestGameOverSoundLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for v := 1; v <= 5; v++ {
		samples := drain(CreateGameOverSound(v, rate))
		want := 4*rate.N(180*time.Millisecond) + rate.N(60*time.Millisecond)
		if len(samples) != want {
			t.Errorf("variant %d: %d samples, want %d", v, len(samples), want)
		}
	}
}
