package systems

import (
	"fmt"
	"image"

	cfg "github.com/automoto/fingerspin/config"
	"github.com/automoto/fingerspin/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateHUD creates the control strip system. It dispatches the three
// board commands from strip taps and keyboard shortcuts: PICK starts a
// session, RESET clears the board, BACK returns home (scene teardown,
// nothing is cleared first).
func NewUpdateHUD(sceneChanger SceneChanger, createHomeScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		touches := GetOrCreateTouches(e)

		pick := GetAction(input, cfg.ActionPick).JustPressed
		reset := GetAction(input, cfg.ActionReset).JustPressed
		back := GetAction(input, cfg.ActionBack).JustPressed

		for _, tap := range touches.Taps {
			switch buttonAt(tap.X, tap.Y) {
			case cfg.ButtonPick:
				pick = true
			case cfg.ButtonReset:
				reset = true
			case cfg.ButtonBack:
				back = true
			}
		}
		touches.Taps = touches.Taps[:0]

		if pick && CanPick(e) {
			PlaySFX(e, cfg.SoundMenuSelect)
			StartPick(e)
		}
		if reset {
			PlaySFX(e, cfg.SoundMenuSelect)
			ResetBoard(e)
		}
		if back {
			sceneChanger.ChangeScene(createHomeScene())
		}
	}
}

// CanPick reports whether the PICK command is currently available
func CanPick(e *ecs.ECS) bool {
	if GetOrCreateSelection(e).Selecting() {
		return false
	}
	return ContactCount(e) > 0
}

// buttonAt hit-tests a point against the control strip buttons
func buttonAt(x, y float64) cfg.HUDButtonID {
	for _, id := range []cfg.HUDButtonID{cfg.ButtonPick, cfg.ButtonReset, cfg.ButtonBack} {
		r := buttonRect(id)
		if int(x) >= r.Min.X && int(x) < r.Max.X && int(y) >= r.Min.Y && int(y) < r.Max.Y {
			return id
		}
	}
	return cfg.ButtonNone
}

// buttonRect lays the three buttons out evenly across the strip
func buttonRect(id cfg.HUDButtonID) image.Rectangle {
	margin := int(cfg.HUD.ButtonMargin)
	stripTop := cfg.C.Height - cfg.HUD.ControlStripHeight
	w := (cfg.C.Width - 4*margin) / 3
	h := cfg.HUD.ControlStripHeight - 2*margin

	idx := int(id - cfg.ButtonPick)
	x := margin + idx*(w+margin)
	y := stripTop + margin
	return image.Rect(x, y, x+w, y+h)
}

// DrawHUD renders the control strip, its three buttons, and the finger
// counter.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	stripTop := cfg.C.Height - cfg.HUD.ControlStripHeight
	vector.FillRect(
		screen,
		0, float32(stripTop),
		float32(cfg.C.Width), float32(cfg.HUD.ControlStripHeight),
		cfg.HUD.StripColor,
		false,
	)

	canPick := CanPick(e)
	labelFont := fonts.Label.Get()

	for _, id := range []cfg.HUDButtonID{cfg.ButtonPick, cfg.ButtonReset, cfg.ButtonBack} {
		r := buttonRect(id)

		buttonColor := cfg.HUD.ButtonColor
		labelColor := cfg.HUD.LabelColor
		if id == cfg.ButtonPick && !canPick {
			buttonColor = cfg.HUD.ButtonDisabled
			labelColor = cfg.HUD.LabelDisabledColor
		}
		vector.FillRect(
			screen,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()),
			buttonColor,
			false,
		)

		label := cfg.HUD.ButtonLabels[id]
		textWidth := len(label) * 11 // Approximate width for 20pt font
		x := r.Min.X + (r.Dx()-textWidth)/2
		y := r.Min.Y + r.Dy()/2 + 7
		text.Draw(screen, label, labelFont, x, y, labelColor)
	}

	counter := fmt.Sprintf("FINGERS: %d", ContactCount(e))
	text.Draw(screen, counter, fonts.Small.Get(), 8, 18, cfg.HUD.CounterColor)
}
