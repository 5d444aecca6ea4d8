package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite tone, sweeping linearly from startFreq
// to endFreq over its duration. Equal frequencies give a steady tone.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a tone generator for wave synthesis.
func NewOscillator(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a stream with a linear attack and release; the
// stretch between the two plays at full volume.
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

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
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

// newVolume scales a stream safely; math.Log2(0) is -Inf, so zero
// volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// newShootEffect is the cannon's rising square zap.
func newShootEffect(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(620, 1480, 90*time.Millisecond, WaveSquare, rate)
	shaped := NewEnvelope(osc, 90*time.Millisecond, 2*time.Millisecond, 45*time.Millisecond, rate)
	return newVolume(shaped, 0.35)
}

// newExplosionEffect is a decaying noise burst for deaths and blasts.
func newExplosionEffect(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, 0, 350*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 350*time.Millisecond, 3*time.Millisecond, 300*time.Millisecond, rate)
	rumble := NewOscillator(75, 40, 350*time.Millisecond, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, 350*time.Millisecond, 3*time.Millisecond, 300*time.Millisecond, rate)
	mixed := beep.Mix(
		newVolume(shaped, 0.55),
		newVolume(rumbleShaped, 0.45),
	)
	return newVolume(mixed, 0.8)
}

// stepNotes is the formation's walking bassline; each completed march
// step plays the next note.
var stepNotes = [4]float64{110.00, 103.83, 98.00, 92.50}

// newInvaderStepEffect plays one note of the descending four-note march.
func newInvaderStepEffect(rate beep.SampleRate, note int) beep.Streamer {
	freq := stepNotes[note%len(stepNotes)]
	osc := NewOscillator(freq, freq, 95*time.Millisecond, WaveSquare, rate)
	shaped := NewEnvelope(osc, 95*time.Millisecond, 4*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.4)
}

// newKillShotEffect is the chirp for a destroyed invader or saucer.
func newKillShotEffect(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880, 1760, 140*time.Millisecond, WaveSine, rate)
	shaped := NewEnvelope(osc, 140*time.Millisecond, 3*time.Millisecond, 90*time.Millisecond, rate)
	return newVolume(shaped, 0.45)
}

// newHadoukenEffect is the wave shot's downward saw sweep.
func newHadoukenEffect(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(920, 140, 260*time.Millisecond, WaveSaw, rate)
	shaped := NewEnvelope(osc, 260*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(shaped, 0.5)
}

// newCoinEffect is the two-note credit chime.
func newCoinEffect(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, 987.77, 70*time.Millisecond, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, 70*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, rate)
	n2 := NewOscillator(1318.51, 1318.51, 130*time.Millisecond, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, 130*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}

// humStreamer is the saucer's endless warble: a sine carrier wobbled
// by a slow LFO. It never drains; the mixer holds it behind a Ctrl
// until the saucer leaves.
type humStreamer struct {
	phase    float64
	lfoPhase float64
	rate     beep.SampleRate
}

// newMysteryHum creates the looping saucer warble.
func newMysteryHum(rate beep.SampleRate) beep.Streamer {
	return &humStreamer{rate: rate}
}

func (h *humStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := 520 + 140*math.Sin(2*math.Pi*h.lfoPhase)
		val := 0.3 * math.Sin(2*math.Pi*h.phase)

		samples[i][0] = val
		samples[i][1] = val

		h.phase += freq / float64(h.rate)
		h.phase = h.phase - math.Floor(h.phase)
		h.lfoPhase += 8.0 / float64(h.rate)
		h.lfoPhase = h.lfoPhase - math.Floor(h.lfoPhase)
	}
	return len(samples), true
}

func (h *humStreamer) Err() error { return nil }
