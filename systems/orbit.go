package systems

import (
	"math"

	"github.com/automoto/fingerspin/components"
	cfg "github.com/automoto/fingerspin/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts advances each contact's orbit rotation and dot pulse
// timers by one frame.
func UpdateContacts(e *ecs.ECS) {
	components.Contact.Each(e.World, func(entry *donburi.Entry) {
		c := components.Contact.Get(entry)
		c.Rotation += 1.0 / float64(cfg.Board.RotationPeriod)
		if c.Rotation >= 1 {
			c.Rotation -= 1
		}
		for i := range c.Dots {
			c.Dots[i].PulseTick++
		}
	})
}

// DotPosition derives a dot's screen position from the contact's
// rotation phase. The orbit radius scales with the contact.
func DotPosition(c *components.ContactData, i int) (float64, float64) {
	dot := c.Dots[i]
	angle := dot.Angle + c.Rotation*2*math.Pi
	r := dot.Radius * c.Scale
	return c.X + math.Cos(angle)*r, c.Y + math.Sin(angle)*r
}

// DotOpacity derives a dot's opacity in [0, 1]: a triangle wave rising
// over one half-cycle and falling over the next.
func DotOpacity(c *components.ContactData, i int) float64 {
	dot := c.Dots[i]
	if dot.HalfCycle <= 0 {
		return 1
	}
	phase := dot.PulseTick % (2 * dot.HalfCycle)
	if phase < dot.HalfCycle {
		return float64(phase) / float64(dot.HalfCycle)
	}
	return 2 - float64(phase)/float64(dot.HalfCycle)
}
