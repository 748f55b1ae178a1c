package systems

import (
	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for touch IDs to avoid allocations
var (
	touchIDs     []ebiten.TouchID
	justTouchIDs []ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
)

// UpdateInput polls the keyboard for action shortcuts and captures this
// frame's raw touch/mouse state into the Touches queue. It is the only
// system that reads platform input; tests feed the queue directly.
// Must run BEFORE UpdateBoard in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range cfg.Input.Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	captureTouches(e)
}

// captureTouches translates the platform touch state into start/move/end
// batches. The left mouse button doubles as one synthetic contact.
func captureTouches(e *ecs.ECS) {
	touches := GetOrCreateTouches(e)

	justTouchIDs = inpututil.AppendJustPressedTouchIDs(justTouchIDs[:0])
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	// Starts
	var starts []components.TouchPoint
	for _, id := range justTouchIDs {
		x, y := ebiten.TouchPosition(id)
		starts = append(starts, components.TouchPoint{ID: id, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		starts = append(starts, components.TouchPoint{ID: components.MouseContactID, X: float64(x), Y: float64(y)})
	}
	if len(starts) > 0 {
		touches.Pending = append(touches.Pending, components.TouchBatch{Kind: components.TouchStart, Points: starts})
		touches.Taps = append(touches.Taps, starts...)
	}

	// Moves: every held contact reports its position each frame
	var moves []components.TouchPoint
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		moves = append(moves, components.TouchPoint{ID: id, X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		moves = append(moves, components.TouchPoint{ID: components.MouseContactID, X: float64(x), Y: float64(y)})
	}
	if len(moves) > 0 {
		touches.Pending = append(touches.Pending, components.TouchBatch{Kind: components.TouchMove, Points: moves})
	}

	// Ends: IDs seen last frame that have been released
	var ends []components.TouchPoint
	for _, id := range prevTouchIDs {
		if inpututil.IsTouchJustReleased(id) {
			ends = append(ends, components.TouchPoint{ID: id})
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ends = append(ends, components.TouchPoint{ID: components.MouseContactID})
	}
	if len(ends) > 0 {
		touches.Pending = append(touches.Pending, components.TouchBatch{Kind: components.TouchEnd, Points: ends})
	}

	prevTouchIDs = append(prevTouchIDs[:0], touchIDs...)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetOrCreateTouches returns the singleton Touches component
func GetOrCreateTouches(e *ecs.ECS) *components.TouchesData {
	entry, ok := components.Touches.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Touches))
	}
	return components.Touches.Get(entry)
}
