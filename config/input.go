package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPick
	ActionReset
	ActionBack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds keyboard shortcuts for the board commands. Touch is
// the primary input; these exist so the game is playable at a desk.
type InputConfig struct {
	Bindings map[ActionID][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]ebiten.Key{
			ActionPick:  {ebiten.KeySpace, ebiten.KeyEnter},
			ActionReset: {ebiten.KeyR},
			ActionBack:  {ebiten.KeyEscape},
		},
	}
}
