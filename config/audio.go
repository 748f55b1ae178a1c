package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Board cues
	SoundTap
	SoundWinner
	// UI sounds
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64

	// Per-cue volume adjustment on top of the global SFX volume
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		VolumeMultipliers: map[SoundID]float64{
			SoundWinner: 1.2,
		},
	}
}
