package assets

import (
	"testing"

	cfg "github.com/automoto/fingerspin/config"
)

func TestSynthesizeTapFormat(t *testing.T) {
	pcm, err := Synthesize(cfg.SoundTap, cfg.Audio.SampleRate)
	if err != nil {
		t.Fatalf("Synthesize(tap) error: %v", err)
	}

	// 16-bit stereo: 4 bytes per sample frame
	if len(pcm)%4 != 0 {
		t.Fatalf("pcm length %d not a whole number of stereo frames", len(pcm))
	}
	wantFrames := int(0.07 * float64(cfg.Audio.SampleRate))
	if got := len(pcm) / 4; got != wantFrames {
		t.Fatalf("tap cue has %d frames, want %d", got, wantFrames)
	}

	// The burst is not silence
	silent := true
	for _, b := range pcm {
		if b != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Fatalf("tap cue is all zeroes")
	}
}

func TestSynthesizeWinnerLongerThanTap(t *testing.T) {
	tap, err := Synthesize(cfg.SoundTap, cfg.Audio.SampleRate)
	if err != nil {
		t.Fatalf("Synthesize(tap) error: %v", err)
	}
	winner, err := Synthesize(cfg.SoundWinner, cfg.Audio.SampleRate)
	if err != nil {
		t.Fatalf("Synthesize(winner) error: %v", err)
	}
	if len(winner) <= len(tap) {
		t.Fatalf("winner cue (%d bytes) not longer than tap (%d bytes)", len(winner), len(tap))
	}

	// Four notes at 0.12s each
	wantFrames := 4 * int(0.12*float64(cfg.Audio.SampleRate))
	if got := len(winner) / 4; got != wantFrames {
		t.Fatalf("winner cue has %d frames, want %d", got, wantFrames)
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	if _, err := Synthesize(cfg.SoundNone, cfg.Audio.SampleRate); err == nil {
		t.Fatalf("expected an error for an undefined cue")
	}
}

func TestSynthesizeChannelsMatch(t *testing.T) {
	pcm, err := Synthesize(cfg.SoundMenuSelect, cfg.Audio.SampleRate)
	if err != nil {
		t.Fatalf("Synthesize(menu) error: %v", err)
	}
	// Mono source duplicated to both channels
	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("left/right differ at frame %d", i/4)
		}
	}
}
