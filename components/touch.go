package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TouchKind is the event kind of one touch batch
type TouchKind int

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
)

// TouchPoint is one touch point inside a batch
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y float64
}

// TouchBatch is a group of touch points delivered in one frame with a
// shared event kind, mirroring how the platform reports multi-touch.
type TouchBatch struct {
	Kind   TouchKind
	Points []TouchPoint
}

// TouchesData is the singleton event queue between the raw input poller
// and the board. UpdateInput appends, UpdateBoard drains. Taps carries
// this frame's just-pressed points for HUD hit-testing and is cleared by
// the HUD system.
type TouchesData struct {
	Pending []TouchBatch
	Taps    []TouchPoint
	NextSeq int // next contact registration sequence number
}

var Touches = donburi.NewComponentType[TouchesData]()
