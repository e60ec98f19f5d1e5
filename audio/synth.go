package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep/v2"

	"github.com/ayoisaiah/unwind/mixer"
)

// voice describes how a track is synthesised from filtered noise.
type voice struct {
	// smoothing of the one-pole low-pass filter, closer to 1 is darker
	smoothing float64
	gain      float64
	// swell is the rate in Hz of a slow amplitude swell, 0 disables it
	swell float64
	// crackle is the chance per sample of a short impulse
	crackle float64
	// chirp is the chance per sample of a bird-like sine sweep
	chirp float64
	// note is the chance per sample of a soft decaying piano tone
	note float64
}

var voices = map[mixer.Track]voice{
	mixer.Rain:   {smoothing: 0.55, gain: 0.5, crackle: 0.0002},
	mixer.Ocean:  {smoothing: 0.98, gain: 2.5, swell: 0.1},
	mixer.Forest: {smoothing: 0.9, gain: 0.3, chirp: 0.00004},
	mixer.White:  {gain: 0.3},
	mixer.Piano:  {smoothing: 0.995, gain: 0.2, note: 0.0001},
}

// pentatonic is C major pentatonic from middle C, in Hz.
var pentatonic = []float64{261.63, 293.66, 329.63, 392.00, 440.00}

type synth struct {
	rng   *rand.Rand
	v     voice
	rate  float64
	low   float64
	phase float64
	// active sweep state
	sweepLeft int
	sweepFreq float64
	sweepArg  float64
	burst     float64
	// current piano tone
	noteAmp  float64
	noteFreq float64
	noteArg  float64
}

// Synth returns an endless streamer for track.
func Synth(track mixer.Track, sr beep.SampleRate, seed uint64) beep.Streamer {
	s := &synth{
		rng:  rand.New(rand.NewPCG(seed, uint64(len(track)))),
		v:    voices[track],
		rate: float64(sr),
	}

	return beep.StreamerFunc(s.stream)
}

func (s *synth) stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		x := s.next()
		samples[i][0] = x
		samples[i][1] = x
	}

	return len(samples), true
}

func (s *synth) next() float64 {
	white := s.rng.Float64()*2 - 1

	s.low = s.v.smoothing*s.low + (1-s.v.smoothing)*white
	x := s.low * s.v.gain

	if s.v.swell > 0 {
		s.phase += 2 * math.Pi * s.v.swell / s.rate
		x *= 0.6 + 0.4*math.Sin(s.phase)
	}

	if s.v.crackle > 0 {
		if s.rng.Float64() < s.v.crackle {
			s.burst = 0.6 + s.rng.Float64()*0.4
		}

		x += s.burst * white
		s.burst *= 0.9
	}

	if s.v.chirp > 0 {
		x += s.chirpSample()
	}

	if s.v.note > 0 {
		x += s.noteSample()
	}

	return max(-1, min(1, x))
}

func (s *synth) chirpSample() float64 {
	if s.sweepLeft == 0 {
		if s.rng.Float64() >= s.v.chirp {
			return 0
		}

		s.sweepLeft = int(s.rate * (0.08 + s.rng.Float64()*0.12))
		s.sweepFreq = 2500 + s.rng.Float64()*2000
	}

	s.sweepLeft--
	s.sweepFreq += 0.02
	s.sweepArg += 2 * math.Pi * s.sweepFreq / s.rate

	return 0.25 * math.Sin(s.sweepArg)
}

func (s *synth) noteSample() float64 {
	if s.noteAmp < 0.001 && s.rng.Float64() < s.v.note {
		s.noteAmp = 0.3
		s.noteFreq = pentatonic[s.rng.IntN(len(pentatonic))]
	}

	if s.noteAmp < 0.001 {
		return 0
	}

	s.noteArg += 2 * math.Pi * s.noteFreq / s.rate
	// roughly a two second decay at 44.1kHz
	s.noteAmp *= 0.99995

	return s.noteAmp * math.Sin(s.noteArg)
}
