package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// MouseContactID is the synthetic touch identifier used for the left
// mouse button so the game stays playable on machines without a touch
// screen. Real platform touch IDs are never negative.
const MouseContactID ebiten.TouchID = -1

// OrbitDot is one of the decorative markers circling a contact. Angle
// and Radius are fixed at spawn; opacity derives from PulseTick.
type OrbitDot struct {
	Angle     float64 // angular offset around the contact, radians
	Radius    float64 // orbit distance from the contact center
	HalfCycle int     // frames for one fade half-cycle
	PulseTick int     // frames elapsed, drives the opacity triangle wave
}

// ContactData represents one tracked finger on the play surface.
type ContactData struct {
	TouchID ebiten.TouchID
	Seq     int // monotonic registration order, see TouchesData.NextSeq

	X, Y     float64
	Scale    float64 // 1.0 at rest; the winner tween pushes it to 1.2
	Rotation float64 // orbit phase in [0, 1), one revolution per period
	Active   bool

	Dots []OrbitDot
}

var Contact = donburi.NewComponentType[ContactData]()
