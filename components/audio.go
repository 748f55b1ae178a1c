package components

import (
	cfg "github.com/automoto/fingerspin/config"
	"github.com/yohamta/donburi"
)

// AudioData holds the per-world cue queue (singleton component). Cues
// are queued here and drained by the audio system, so game logic never
// touches the audio context directly. Volume and mute state are global,
// shared across scenes.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
