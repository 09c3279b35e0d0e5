package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/reef-arcade/event"
)

const (
	attack  = 5 * time.Millisecond
	release = 20 * time.Millisecond
)

// note is a shaped tone
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, wave, rate), d, attack, release, rate)
}

func glide(start, end float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Sweep(start, end, d, wave, rate), d, attack, d/2, rate)
}

// arpeggio plays freqs back to back
func arpeggio(freqs []float64, step time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = note(f, step, wave, rate)
	}
	return beep.Seq(parts...)
}

// chord plays freqs together, normalized to unit amplitude
func chord(freqs []float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = gain(note(f, d, wave, rate), 1/float64(len(freqs)))
	}
	return beep.Mix(parts...)
}

// Build synthesizes a cue at the configured volume; nil for unknown cues
func Build(c event.Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer
	switch c {
	case event.CueClick:
		s = note(800, 50*time.Millisecond, WaveSine, rate)
	case event.CueMatch:
		s = chord([]float64{523.25, 659.25, 783.99}, 250*time.Millisecond, WaveSine, rate)
	case event.CueShuffle:
		s = arpeggio([]float64{200, 300, 400, 500, 600}, 50*time.Millisecond, WaveSquare, rate)
	case event.CueSuccess:
		s = arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 100*time.Millisecond, WaveTriangle, rate)
	case event.CueError:
		s = arpeggio([]float64{150, 130}, 150*time.Millisecond, WaveSaw, rate)
	case event.CueShoot:
		s = glide(600, 100, 100*time.Millisecond, WaveSquare, rate)
	case event.CueZap:
		s = glide(1200, 200, 200*time.Millisecond, WaveSaw, rate)
	case event.CueWhoosh:
		d := 200 * time.Millisecond
		s = Shape(Tone(0, d, WaveNoise, rate), d, 50*time.Millisecond, 100*time.Millisecond, rate)
	case event.CueEnemyHit:
		s = glide(200, 50, 50*time.Millisecond, WaveTriangle, rate)
	case event.CueExplosion:
		d := 500 * time.Millisecond
		s = Lowpass(Shape(Tone(0, d, WaveNoise, rate), d, attack, 400*time.Millisecond, rate), 800, rate)
	case event.CueLevelUp:
		s = arpeggio([]float64{440, 554.37, 659.25}, 100*time.Millisecond, WaveSine, rate)
	default:
		return nil
	}
	return gain(s, cfg.Volume(c))
}
