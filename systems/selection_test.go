package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestPickOnEmptyBoardIsNoOp(t *testing.T) {
	e := newTestECS()

	StartPick(e)

	sel := GetOrCreateSelection(e)
	if sel.Selecting() {
		t.Fatalf("selection started on an empty board, state = %d", sel.State)
	}
}

func TestPickDuringSessionIsNoOp(t *testing.T) {
	e := newTestECS()
	pressAt(e,
		components.TouchPoint{ID: 0, X: 100, Y: 100},
		components.TouchPoint{ID: 1, X: 200, Y: 200},
	)

	StartPick(e)
	sel := GetOrCreateSelection(e)
	stepsBefore := sel.StepsLeft

	// A second Pick mid-session must not restart the sequencer
	StartPick(e)
	if sel.StepsLeft != stepsBefore {
		t.Fatalf("steps left changed from %d to %d after re-pick", stepsBefore, sel.StepsLeft)
	}
	if sel.State != cfg.PickCycling {
		t.Fatalf("state = %d after re-pick, want cycling", sel.State)
	}
}

func TestCyclingVisitsEveryContactInOrder(t *testing.T) {
	const k = 4
	e := newTestECS()
	var points []components.TouchPoint
	for i := 0; i < k; i++ {
		points = append(points, components.TouchPoint{ID: ebiten.TouchID(i), X: float64(100 + 60*i), Y: 200})
	}
	pressAt(e, points...)

	StartPick(e)
	sel := GetOrCreateSelection(e)

	totalSteps := k * cfg.Selection.CyclesPerPick

	// The last step triggers the reveal, which overwrites the highlight,
	// so observe every boundary except the final one.
	for step := 0; step < totalSteps-1; step++ {
		for f := 0; f < cfg.Selection.CycleInterval; f++ {
			UpdateSelection(e)
		}
		wantID := ebiten.TouchID(step % k)
		for id := ebiten.TouchID(0); id < k; id++ {
			want := cfg.ColorIdle
			if id == wantID {
				want = cfg.ColorHighlight
			}
			if got := sel.ColorOf(id); got != want {
				t.Fatalf("step %d: touch %d color = %d, want %d", step, id, got, want)
			}
		}
	}

	// Final step: exactly CycleInterval more frames reach the draw
	for f := 0; f < cfg.Selection.CycleInterval; f++ {
		if sel.Winner >= 0 {
			t.Fatalf("winner drawn %d frames early", cfg.Selection.CycleInterval-f)
		}
		UpdateSelection(e)
	}
	if sel.Winner < 0 {
		t.Fatalf("no winner after %d cycling frames", totalSteps*cfg.Selection.CycleInterval)
	}
	if sel.State != cfg.PickBlinking {
		t.Fatalf("state = %d after reveal, want blinking", sel.State)
	}
}

func TestWinnerDrawCoversAllContacts(t *testing.T) {
	old := rng
	rng = rand.New(rand.NewSource(42))
	defer func() { rng = old }()

	const k = 3
	const sessions = 300
	e := newTestECS()
	var points []components.TouchPoint
	for i := 0; i < k; i++ {
		points = append(points, components.TouchPoint{ID: ebiten.TouchID(i), X: float64(100 + 60*i), Y: 200})
	}
	pressAt(e, points...)

	sel := GetOrCreateSelection(e)
	counts := make([]int, k)
	cyclingFrames := k * cfg.Selection.CyclesPerPick * cfg.Selection.CycleInterval

	for s := 0; s < sessions; s++ {
		StartPick(e)
		for f := 0; f < cyclingFrames; f++ {
			UpdateSelection(e)
		}
		if sel.Winner < 0 || sel.Winner >= k {
			t.Fatalf("session %d: winner index %d out of range", s, sel.Winner)
		}
		counts[sel.Winner]++
		// Skip the blink and cooldown phases, next session starts fresh.
		sel.State = cfg.PickIdle
		sel.ScaleTween = nil
	}

	// Each contact should win about sessions/k times. A 40% band is
	// loose enough for a seeded fair draw and tight enough that a
	// biased one fails.
	expected := sessions / k
	lo, hi := expected*6/10, expected*14/10
	for i, c := range counts {
		if c < lo || c > hi {
			t.Fatalf("contact %d won %d of %d sessions, want within [%d, %d]", i, c, sessions, lo, hi)
		}
	}
}

func TestFullSessionTimeline(t *testing.T) {
	e := newTestECS()
	pressAt(e, components.TouchPoint{ID: 0, X: 100, Y: 100})

	StartPick(e)
	sel := GetOrCreateSelection(e)

	// Single contact: cycling still runs all its steps
	cyclingFrames := 1 * cfg.Selection.CyclesPerPick * cfg.Selection.CycleInterval
	for f := 0; f < cyclingFrames; f++ {
		UpdateSelection(e)
	}

	if sel.Winner != 0 {
		t.Fatalf("winner = %d with one contact, want 0", sel.Winner)
	}
	if got := sel.ColorOf(0); got != cfg.ColorWinner {
		t.Fatalf("winner color = %d right after reveal, want %d", got, cfg.ColorWinner)
	}

	// Winner cue queued exactly once
	audio := GetOrCreateAudio(e)
	winnerCues := 0
	for _, s := range audio.PendingSFX {
		if s == cfg.SoundWinner {
			winnerCues++
		}
	}
	if winnerCues != 1 {
		t.Fatalf("queued %d winner cues, want 1", winnerCues)
	}

	// The session ends exactly CooldownTime frames after the reveal
	for f := 0; f < cfg.Selection.CooldownTime-1; f++ {
		UpdateSelection(e)
		if !sel.Selecting() {
			t.Fatalf("session ended %d frames early", cfg.Selection.CooldownTime-1-f)
		}
	}
	UpdateSelection(e)
	if sel.Selecting() {
		t.Fatalf("session still running after cooldown, state = %d", sel.State)
	}

	// Winner keeps its color and settle scale after the session
	if got := sel.ColorOf(0); got != cfg.ColorWinner {
		t.Fatalf("winner color = %d after session end, want %d", got, cfg.ColorWinner)
	}
	c := contactByID(e, 0)
	if math.Abs(c.Scale-float64(cfg.Selection.SettleScale)) > 0.01 {
		t.Fatalf("winner scale = %f after session, want ~%f", c.Scale, cfg.Selection.SettleScale)
	}

	if !CanPick(e) {
		t.Fatalf("pick unavailable after the session ended")
	}
}

func TestBlinkTogglesAndEndsOnBaseColor(t *testing.T) {
	e := newTestECS()
	pressAt(e, components.TouchPoint{ID: 0, X: 100, Y: 100})

	StartPick(e)
	sel := GetOrCreateSelection(e)
	cyclingFrames := cfg.Selection.CyclesPerPick * cfg.Selection.CycleInterval
	for f := 0; f < cyclingFrames; f++ {
		UpdateSelection(e)
	}

	toggles := 0
	last := sel.ColorOf(0)
	blinkFrames := cfg.Selection.BlinkCount * cfg.Selection.BlinkInterval
	for f := 0; f < blinkFrames; f++ {
		UpdateSelection(e)
		if got := sel.ColorOf(0); got != last {
			toggles++
			last = got
		}
		if !components.WinnerVariant(sel.ColorOf(0)) {
			t.Fatalf("winner lost its variant color mid-blink at frame %d", f)
		}
	}

	if toggles != cfg.Selection.BlinkCount {
		t.Fatalf("observed %d color toggles, want %d", toggles, cfg.Selection.BlinkCount)
	}
	if got := sel.ColorOf(0); got != cfg.ColorWinner {
		t.Fatalf("blink ended on color %d, want base %d", got, cfg.ColorWinner)
	}
	if sel.State != cfg.PickCooldown {
		t.Fatalf("state = %d after blinking, want cooldown", sel.State)
	}
}

func TestSnapshotSurvivesRegistryChanges(t *testing.T) {
	e := newTestECS()
	pressAt(e,
		components.TouchPoint{ID: 0, X: 100, Y: 100},
		components.TouchPoint{ID: 1, X: 200, Y: 200},
	)

	StartPick(e)
	sel := GetOrCreateSelection(e)
	if len(sel.Snapshot) != 2 {
		t.Fatalf("snapshot size = %d, want 2", len(sel.Snapshot))
	}

	// Replacing a contact mid-session invalidates its snapshot entry;
	// the sequencer must run to completion without touching it.
	pressAt(e, components.TouchPoint{ID: 1, X: 250, Y: 250})

	total := 2*cfg.Selection.CyclesPerPick*cfg.Selection.CycleInterval + cfg.Selection.CooldownTime
	for f := 0; f < total; f++ {
		UpdateSelection(e)
	}
	if sel.Selecting() {
		t.Fatalf("session never completed after registry change, state = %d", sel.State)
	}
}
