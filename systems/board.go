package systems

import (
	"math"
	"sort"

	"github.com/automoto/fingerspin/archetypes"
	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoard drains the touch queue and applies it to the contact
// registry. Must run AFTER UpdateInput.
func UpdateBoard(e *ecs.ECS) {
	touches := GetOrCreateTouches(e)
	sel := GetOrCreateSelection(e)

	for _, batch := range touches.Pending {
		switch batch.Kind {
		case components.TouchStart:
			registerBatch(e, touches, batch)
		case components.TouchMove:
			// Positions freeze while a selection is running
			if !sel.Selecting() {
				moveBatch(e, batch)
			}
		case components.TouchEnd:
			// Lifting a finger keeps its contact on the board until
			// RESET - the board freezes the moment hands come off.
		}
	}
	touches.Pending = touches.Pending[:0]
}

// registerBatch spawns a contact for every in-bounds point. A point
// whose ID is already registered replaces the old contact, so stale
// entries never block re-registration. One tap cue per batch.
func registerBatch(e *ecs.ECS, touches *components.TouchesData, batch components.TouchBatch) {
	registered := false
	for _, p := range batch.Points {
		if !InPlaySurface(p.X, p.Y) {
			continue
		}
		pruneContact(e, p.ID)
		spawnContact(e, touches, p)
		registered = true
	}
	if registered {
		PlaySFX(e, cfg.SoundTap)
	}
}

func moveBatch(e *ecs.ECS, batch components.TouchBatch) {
	for _, p := range batch.Points {
		if !InPlaySurface(p.X, p.Y) {
			// Out-of-bounds move: position stays at the last in-bounds value
			continue
		}
		if entry := findContact(e, p.ID); entry != nil {
			c := components.Contact.Get(entry)
			c.X = p.X
			c.Y = p.Y
		}
	}
}

// InPlaySurface reports whether a point is inside the touch-reactive
// region: the screen rectangle minus the reserved control strip.
func InPlaySurface(x, y float64) bool {
	if x < 0 || x >= float64(cfg.C.Width) {
		return false
	}
	return y >= 0 && y < float64(cfg.C.Height-cfg.HUD.ControlStripHeight)
}

func spawnContact(e *ecs.ECS, touches *components.TouchesData, p components.TouchPoint) *donburi.Entry {
	entry := archetypes.Contact.Spawn(e)

	dots := make([]components.OrbitDot, cfg.Board.DotCount)
	for i := range dots {
		dots[i] = components.OrbitDot{
			Angle:     2 * math.Pi * float64(i) / float64(cfg.Board.DotCount),
			Radius:    cfg.Board.OrbitRadius,
			HalfCycle: cfg.Board.PulseHalfCycle + cfg.Board.PulseStagger*i,
		}
	}

	components.Contact.SetValue(entry, components.ContactData{
		TouchID: p.ID,
		Seq:     touches.NextSeq,
		X:       p.X,
		Y:       p.Y,
		Scale:   1,
		Active:  true,
		Dots:    dots,
	})
	touches.NextSeq++
	return entry
}

// pruneContact removes any contact already keyed by this touch ID
func pruneContact(e *ecs.ECS, id ebiten.TouchID) {
	if entry := findContact(e, id); entry != nil {
		e.World.Remove(entry.Entity())
	}
}

func findContact(e *ecs.ECS, id ebiten.TouchID) *donburi.Entry {
	var found *donburi.Entry
	components.Contact.Each(e.World, func(entry *donburi.Entry) {
		if components.Contact.Get(entry).TouchID == id {
			found = entry
		}
	})
	return found
}

// ActiveContacts returns the registry in insertion order. Storage order
// is not stable across removals, so this sorts by registration sequence.
func ActiveContacts(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Contact.Each(e.World, func(entry *donburi.Entry) {
		if components.Contact.Get(entry).Active {
			entries = append(entries, entry)
		}
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Contact.Get(entries[i]).Seq < components.Contact.Get(entries[j]).Seq
	})
	return entries
}

// ContactCount returns the number of active contacts
func ContactCount(e *ecs.ECS) int {
	count := 0
	components.Contact.Each(e.World, func(entry *donburi.Entry) {
		if components.Contact.Get(entry).Active {
			count++
		}
	})
	return count
}

// ResetBoard unconditionally clears the registry, the color map, the
// winner, and any running session, re-enabling Pick.
func ResetBoard(e *ecs.ECS) {
	var toRemove []donburi.Entity
	components.Contact.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry.Entity())
	})
	for _, ent := range toRemove {
		e.World.Remove(ent)
	}

	sel := GetOrCreateSelection(e)
	sel.State = cfg.PickIdle
	sel.Snapshot = nil
	sel.Colors = make(map[ebiten.TouchID]cfg.ContactColorID)
	sel.Current = 0
	sel.StepTimer = 0
	sel.StepsLeft = 0
	sel.Winner = -1
	sel.BlinkTimer = 0
	sel.BlinkLeft = 0
	sel.Cooldown = 0
	sel.ScaleTween = nil
}
