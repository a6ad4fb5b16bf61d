package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-ballgame/internal/core"
)

// Player is a core.SoundPlayer backed by the system speaker.
// Every Play call mixes a new voice, so effects may overlap.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	logger *log.Logger
	open   bool
}

// Open initializes the speaker and starts the mixer.
func Open(logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &Player{mixer: &beep.Mixer{}, logger: logger, open: true}
	speaker.Play(p.mixer)
	return p, nil
}

// Play implements core.SoundPlayer. Unknown sounds are logged and skipped.
func (p *Player) Play(id core.SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}

	s := Effect(id)
	if s == nil {
		p.logger.Warn("unknown sound", "id", id)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.open = false
}

// OpenOrSilent opens the speaker, falling back to a silent player when the
// system has no audio device.
func OpenOrSilent(logger *log.Logger) (core.SoundPlayer, func()) {
	p, err := Open(logger)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return core.NopSoundPlayer{}, func() {}
	}
	return p, p.Close
}
