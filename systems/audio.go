package systems

import (
	"log"
	"sync"

	"github.com/automoto/fingerspin/assets"
	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalCueLoader    *assets.CueLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalCueLoader = assets.NewCueLoader(globalAudioContext)
	})
}

// UpdateAudio drains pending cues and plays them. This is the only
// system that touches the audio context; everything else just queues.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playCue(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// playCue plays one cue fire-and-forget. Failures are logged and
// skipped; the game stays fully playable without sound.
func playCue(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, err := globalCueLoader.Player(soundID)
	if err != nil {
		log.Printf("audio: could not play cue %d: %v", soundID, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Audio.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound cue to be played on the next audio update
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the cue volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current cue volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted toggles all sound output
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sound output is off
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. No audio context is created here so headless
// code paths stay silent-safe.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
