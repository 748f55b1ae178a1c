package components

import (
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SelectionData stores the selection sequencer state and the color
// assignment map. This is a singleton component - one session at a time.
//
// Snapshot freezes the contact list at session start; later registry
// mutations never affect a running session. Colors is keyed by touch ID
// and lives apart from the contact records: an ID with no entry renders
// with the idle color.
type SelectionData struct {
	State    cfg.PickStateID
	Snapshot []donburi.Entity
	Colors   map[ebiten.TouchID]cfg.ContactColorID

	Current   int // cycling highlight index into Snapshot
	StepTimer int // frames until the next highlight step
	StepsLeft int // highlight steps remaining this session

	Winner     int // snapshot index of the winner, -1 until drawn
	BlinkTimer int
	BlinkLeft  int  // winner color toggles remaining
	BlinkOn    bool // true while the base winner color is showing
	Cooldown   int  // frames until the session ends

	ScaleTween *gween.Sequence // winner reveal scale animation
}

var Selection = donburi.NewComponentType[SelectionData]()

// Selecting reports whether a session is in progress. While true, Pick
// is rejected and contact moves are ignored.
func (s *SelectionData) Selecting() bool {
	return s.State != cfg.PickIdle
}

// ColorOf resolves the assigned color for a touch ID, defaulting to idle.
func (s *SelectionData) ColorOf(id ebiten.TouchID) cfg.ContactColorID {
	if c, ok := s.Colors[id]; ok {
		return c
	}
	return cfg.ColorIdle
}

// WinnerVariant reports whether a color is one of the winner colors,
// which drives the accent border.
func WinnerVariant(c cfg.ContactColorID) bool {
	return c == cfg.ColorWinner || c == cfg.ColorWinnerAlt
}
