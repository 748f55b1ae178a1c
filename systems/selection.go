package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// StartPick begins a selection session. Silent no-op when the board is
// empty or a session is already running.
func StartPick(e *ecs.ECS) {
	sel := GetOrCreateSelection(e)
	if sel.Selecting() {
		return
	}

	contacts := ActiveContacts(e)
	if len(contacts) == 0 {
		return
	}

	// Freeze the contact list for the whole session
	sel.Snapshot = sel.Snapshot[:0]
	for _, entry := range contacts {
		sel.Snapshot = append(sel.Snapshot, entry.Entity())
	}

	sel.State = cfg.PickCycling
	sel.Current = -1
	sel.StepTimer = cfg.Selection.CycleInterval
	sel.StepsLeft = len(sel.Snapshot) * cfg.Selection.CyclesPerPick
	sel.Winner = -1
}

// UpdateSelection advances the sequencer state machine one frame:
// Cycling -> (draw) -> Blinking -> Cooldown -> Idle. All transitions are
// frame counters owned by this world, so dropping the scene cancels
// every pending step at once.
func UpdateSelection(e *ecs.ECS) {
	sel := GetOrCreateSelection(e)

	switch sel.State {
	case cfg.PickCycling:
		sel.StepTimer--
		if sel.StepTimer > 0 {
			return
		}
		sel.StepTimer = cfg.Selection.CycleInterval
		sel.Current = (sel.Current + 1) % len(sel.Snapshot)
		recolorCycling(e, sel)
		sel.StepsLeft--
		if sel.StepsLeft == 0 {
			reveal(e, sel)
		}

	case cfg.PickBlinking:
		stepScaleTween(e, sel)
		sel.Cooldown--
		sel.BlinkTimer--
		if sel.BlinkTimer <= 0 {
			sel.BlinkTimer = cfg.Selection.BlinkInterval
			sel.BlinkOn = !sel.BlinkOn
			setWinnerColor(e, sel)
			sel.BlinkLeft--
			if sel.BlinkLeft == 0 {
				sel.BlinkOn = true
				setWinnerColor(e, sel)
				sel.State = cfg.PickCooldown
			}
		}

	case cfg.PickCooldown:
		stepScaleTween(e, sel)
		sel.Cooldown--
		if sel.Cooldown <= 0 {
			// Session over. The winner keeps its color and border
			// until RESET.
			sel.State = cfg.PickIdle
		}
	}
}

// reveal draws the winner uniformly over the snapshot and starts the
// reveal animation and blink phase.
func reveal(e *ecs.ECS, sel *components.SelectionData) {
	k := len(sel.Snapshot)
	sel.Winner = rng.Intn(k)

	for i, ent := range sel.Snapshot {
		colorID := cfg.ColorIdle
		if i == sel.Winner {
			colorID = cfg.ColorWinner
		}
		setSnapshotColor(e, sel, ent, colorID)
	}

	PlaySFX(e, cfg.SoundWinner)

	// Overshoot then settle
	tw := gween.NewSequence()
	tw.Add(
		gween.New(1, cfg.Selection.RevealScale, cfg.Selection.RevealDuration, ease.OutBack),
		gween.New(cfg.Selection.RevealScale, cfg.Selection.SettleScale, cfg.Selection.SettleDuration, ease.OutQuad),
	)
	sel.ScaleTween = tw

	sel.State = cfg.PickBlinking
	sel.BlinkOn = true
	sel.BlinkTimer = cfg.Selection.BlinkInterval
	sel.BlinkLeft = cfg.Selection.BlinkCount
	sel.Cooldown = cfg.Selection.CooldownTime
}

// recolorCycling paints the current snapshot index with the highlight
// color and everything else idle.
func recolorCycling(e *ecs.ECS, sel *components.SelectionData) {
	for i, ent := range sel.Snapshot {
		colorID := cfg.ColorIdle
		if i == sel.Current {
			colorID = cfg.ColorHighlight
		}
		setSnapshotColor(e, sel, ent, colorID)
	}
}

// setWinnerColor toggles the winner between the two winner variants
func setWinnerColor(e *ecs.ECS, sel *components.SelectionData) {
	if sel.Winner < 0 || sel.Winner >= len(sel.Snapshot) {
		return
	}
	colorID := cfg.ColorWinnerAlt
	if sel.BlinkOn {
		colorID = cfg.ColorWinner
	}
	setSnapshotColor(e, sel, sel.Snapshot[sel.Winner], colorID)
}

func setSnapshotColor(e *ecs.ECS, sel *components.SelectionData, ent donburi.Entity, colorID cfg.ContactColorID) {
	if !e.World.Valid(ent) {
		// The contact was replaced mid-session; nothing to recolor.
		return
	}
	entry := e.World.Entry(ent)
	sel.Colors[components.Contact.Get(entry).TouchID] = colorID
}

// stepScaleTween advances the winner scale animation by one frame
func stepScaleTween(e *ecs.ECS, sel *components.SelectionData) {
	if sel.ScaleTween == nil || sel.Winner < 0 {
		return
	}
	v, _, done := sel.ScaleTween.Update(1.0 / 60.0)

	ent := sel.Snapshot[sel.Winner]
	if e.World.Valid(ent) {
		components.Contact.Get(e.World.Entry(ent)).Scale = float64(v)
	}
	if done {
		sel.ScaleTween = nil
	}
}

// GetOrCreateSelection returns the singleton Selection component
func GetOrCreateSelection(e *ecs.ECS) *components.SelectionData {
	entry, ok := components.Selection.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Selection))
		components.Selection.SetValue(entry, components.SelectionData{
			State:  cfg.PickIdle,
			Colors: make(map[ebiten.TouchID]cfg.ContactColorID),
			Winner: -1,
		})
	}
	return components.Selection.Get(entry)
}
