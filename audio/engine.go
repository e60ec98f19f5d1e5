// Package audio plays the mixer tracks through the system speaker. Every
// track is synthesised on the fly, so no sound file is ever decoded.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ayoisaiah/unwind/internal/apperr"
	"github.com/ayoisaiah/unwind/mixer"
)

// SampleRate is the output rate of every track.
const SampleRate beep.SampleRate = 44100

var errSpeakerInit = &apperr.Error{
	Message: "unable to initialise the speaker",
}

// Engine is a mixer.Backend backed by the system speaker. The speaker is
// initialised lazily on the first Loop call.
type Engine struct {
	initErr error
	once    sync.Once
	seed    uint64
	ready   bool
}

var _ mixer.Backend = (*Engine)(nil)

// NewEngine returns an engine that has not touched the audio device yet.
func NewEngine() *Engine {
	return &Engine{
		seed: uint64(time.Now().UnixNano()),
	}
}

func (e *Engine) init() error {
	e.once.Do(func() {
		bufferSize := 10

		err := speaker.Init(
			SampleRate,
			SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
		if err != nil {
			e.initErr = errSpeakerInit.Wrap(err)
			return
		}

		e.ready = true
	})

	return e.initErr
}

// Loop starts track at volume and returns its handle.
func (e *Engine) Loop(track mixer.Track, volume float64) (mixer.Handle, error) {
	if err := e.init(); err != nil {
		return nil, err
	}

	e.seed++

	vol := &effects.Volume{
		Streamer: Synth(track, SampleRate, e.seed),
		Base:     2,
	}

	applyVolume(vol, volume)

	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Play(ctrl)

	return &handle{ctrl: ctrl, vol: vol}, nil
}

// applyVolume maps a linear volume in [0, 1] onto the exponent used by
// effects.Volume.
func applyVolume(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Silent = true
		vol.Volume = 0

		return
	}

	vol.Silent = false
	vol.Volume = math.Log2(min(v, 1))
}

type handle struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
}

func (h *handle) SetVolume(v float64) {
	speaker.Lock()
	applyVolume(h.vol, v)
	speaker.Unlock()
}

// Stop detaches the streamer so the speaker drops the track.
func (h *handle) Stop() {
	speaker.Lock()
	h.ctrl.Streamer = nil
	speaker.Unlock()
}

// Close releases the audio device.
func (e *Engine) Close() {
	if !e.ready {
		return
	}

	speaker.Clear()
	speaker.Close()
}
