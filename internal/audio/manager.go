// Package audio synthesizes the cabinet's sound effects with beep.
// Every effect is generated at startup from oscillators; no sample
// assets ship with the binary. If the speaker cannot initialize, the
// manager degrades to a no-op and the game plays on in silence.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and reacts to simulation events. The zero
// value is unusable; construct with NewManager.
type Manager struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	hum      *beep.Ctrl
	stepNote int
	enabled  bool
}

// NewManager creates a silent manager. Call Init to bring up the
// speaker; a manager that is never initialized ignores every event,
// which is also how --mute is implemented.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init brings up the audio device. The returned error is advisory:
// callers may log it and keep using the manager, which stays disabled.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.enabled = true
	return nil
}

// Play reacts to one simulation event. Safe to call from the tick
// loop; effects mix over each other and drop out of the mixer when
// drained.
func (m *Manager) Play(ev core.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}

	switch ev {
	case core.EventShoot:
		m.add(newShootEffect(sampleRate))
	case core.EventExplosion:
		m.add(newExplosionEffect(sampleRate))
	case core.EventInvaderStep:
		m.add(newInvaderStepEffect(sampleRate, m.stepNote))
		m.stepNote++
	case core.EventKillShot:
		m.add(newKillShotEffect(sampleRate))
	case core.EventMysteryOn:
		m.startHum()
	case core.EventMysteryOff:
		m.stopHum()
	case core.EventHadouken:
		m.add(newHadoukenEffect(sampleRate))
	case core.EventCoin:
		m.add(newCoinEffect(sampleRate))
	}
}

// Close silences everything. The speaker itself stays open; clearing
// the mixer is enough to stop all output without artifacts.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}

	speaker.Lock()
	if m.hum != nil {
		m.hum.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	m.hum = nil
	m.enabled = false
}

// add hands a finite streamer to the mixer under the speaker lock.
func (m *Manager) add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// startHum begins the saucer warble. The looping streamer is created
// once and parked behind a Ctrl; later saucers just unpause it.
func (m *Manager) startHum() {
	speaker.Lock()
	defer speaker.Unlock()

	if m.hum == nil {
		m.hum = &beep.Ctrl{Streamer: newMysteryHum(sampleRate)}
		m.mixer.Add(m.hum)
		return
	}
	m.hum.Paused = false
}

// stopHum pauses the saucer warble.
func (m *Manager) stopHum() {
	speaker.Lock()
	defer speaker.Unlock()

	if m.hum != nil {
		m.hum.Paused = true
	}
}
