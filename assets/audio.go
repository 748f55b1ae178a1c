package assets

import (
	"bytes"
	"fmt"
	"math"

	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// CueLoader synthesizes and caches the game's sound cues. The game ships
// no audio files; both cues are short PCM bursts generated at first use
// and cached as decoded bytes, mirroring an asset loader's SFX cache.
type CueLoader struct {
	cueCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewCueLoader creates a new cue loader with the given context
func NewCueLoader(ctx *audio.Context) *CueLoader {
	return &CueLoader{
		cueCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// Player returns a fresh player for a cue, synthesizing on first use.
func (l *CueLoader) Player(id cfg.SoundID) (*audio.Player, error) {
	pcm, ok := l.cueCache[id]
	if !ok {
		var err error
		pcm, err = Synthesize(id, l.context.SampleRate())
		if err != nil {
			return nil, err
		}
		l.cueCache[id] = pcm
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// Synthesize renders a cue as 16-bit little-endian stereo PCM at the
// given sample rate, the format the audio context consumes directly.
func Synthesize(id cfg.SoundID, sampleRate int) ([]byte, error) {
	switch id {
	case cfg.SoundTap:
		// Short high blip on finger registration.
		var buf bytes.Buffer
		appendTone(&buf, 880, 0.07, sampleRate, 0.5)
		return buf.Bytes(), nil

	case cfg.SoundWinner:
		// Rising arpeggio: C5 E5 G5 C6.
		var buf bytes.Buffer
		for _, freq := range []float64{523.25, 659.25, 783.99, 1046.50} {
			appendTone(&buf, freq, 0.12, sampleRate, 0.6)
		}
		return buf.Bytes(), nil

	case cfg.SoundMenuSelect:
		var buf bytes.Buffer
		appendTone(&buf, 660, 0.05, sampleRate, 0.4)
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("no cue defined for sound %d", id)
	}
}

// appendTone writes one sine burst with a short attack and exponential
// decay so consecutive notes don't click.
func appendTone(buf *bytes.Buffer, freq, seconds float64, sampleRate int, gain float64) {
	n := int(seconds * float64(sampleRate))
	attack := sampleRate / 200 // 5ms ramp-in
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-6 * t / seconds)
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		v := int16(gain * env * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
		// left then right channel
		buf.WriteByte(byte(v))
		buf.WriteByte(byte(v >> 8))
		buf.WriteByte(byte(v))
		buf.WriteByte(byte(v >> 8))
	}
}
