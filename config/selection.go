package config

// PickStateID represents the selection sequencer's current phase.
// All timers below count frames at 60 TPS, matching the rest of the
// game's frame-based timing.
type PickStateID int

const (
	PickIdle PickStateID = iota
	PickCycling
	PickBlinking
	PickCooldown
)

// SelectionConfig contains the timing and animation constants of one
// selection session.
type SelectionConfig struct {
	CycleInterval int // frames between highlight steps (200ms)
	CyclesPerPick int // full passes over the snapshot before the draw
	BlinkInterval int // frames between winner color toggles (300ms)
	BlinkCount    int // total toggles before the blink stops
	CooldownTime  int // frames from the draw until picking re-enables (2000ms)

	// Winner reveal scale tween (seconds, driven at 1/60 per frame)
	RevealScale    float32 // overshoot target
	SettleScale    float32 // final resting scale
	RevealDuration float32
	SettleDuration float32
}

func init() {
	Selection = SelectionConfig{
		CycleInterval: 12,
		CyclesPerPick: 3,
		BlinkInterval: 18,
		BlinkCount:    6,
		CooldownTime:  120,

		RevealScale:    1.3,
		SettleScale:    1.2,
		RevealDuration: 0.25,
		SettleDuration: 0.2,
	}
}
