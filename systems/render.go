package systems

import (
	"image/color"

	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBoard renders every contact: filled circle, border, and the eight
// orbiting dots. Render state is derived entirely from the contact
// record, the color map, and the winner index.
func DrawBoard(e *ecs.ECS, screen *ebiten.Image) {
	sel := GetOrCreateSelection(e)

	for _, entry := range ActiveContacts(e) {
		c := components.Contact.Get(entry)

		colorID := sel.ColorOf(c.TouchID)
		fill := cfg.Board.Palette[colorID]
		radius := float32(cfg.Board.ContactRadius * c.Scale)

		vector.FillCircle(screen, float32(c.X), float32(c.Y), radius, fill, true)

		borderColor := cfg.Board.BorderColor
		borderWidth := cfg.Board.BorderWidth
		if components.WinnerVariant(colorID) {
			borderColor = cfg.Board.AccentBorder
			borderWidth = cfg.Board.WinnerBorder
		}
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), radius, borderWidth, borderColor, true)

		for i := range c.Dots {
			x, y := DotPosition(c, i)
			vector.FillCircle(screen,
				float32(x), float32(y),
				float32(cfg.Board.DotRadius),
				dotColor(DotOpacity(c, i)),
				true,
			)
		}
	}
}

// dotColor returns white at the given opacity, premultiplied as ebiten
// expects.
func dotColor(opacity float64) color.RGBA {
	v := uint8(opacity * 255)
	return color.RGBA{R: v, G: v, B: v, A: v}
}
