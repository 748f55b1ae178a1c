package config

import "image/color"

// HUDButtonID identifies one of the control strip commands
type HUDButtonID int

const (
	ButtonNone HUDButtonID = iota
	ButtonPick
	ButtonReset
	ButtonBack
)

// HUDConfig contains control strip configuration. The strip is the
// reserved band at the bottom of the screen; touches inside it never
// register as game contacts.
type HUDConfig struct {
	ControlStripHeight int     // reserved band height in pixels
	ButtonMargin       float64 // outer margin and gap between buttons
	ButtonLabels       map[HUDButtonID]string

	StripColor         color.RGBA
	ButtonColor        color.RGBA
	ButtonDisabled     color.RGBA
	LabelColor         color.RGBA
	LabelDisabledColor color.RGBA
	CounterColor       color.RGBA
}

func init() {
	HUD = HUDConfig{
		ControlStripHeight: 72,
		ButtonMargin:       12,
		ButtonLabels: map[HUDButtonID]string{
			ButtonPick:  "PICK",
			ButtonReset: "RESET",
			ButtonBack:  "BACK",
		},

		StripColor:         DimGray,
		ButtonColor:        SlateGray,
		ButtonDisabled:     color.RGBA{R: 34, G: 36, B: 44, A: 255},
		LabelColor:         White,
		LabelDisabledColor: color.RGBA{R: 110, G: 110, B: 110, A: 255},
		CounterColor:       White,
	}
}
