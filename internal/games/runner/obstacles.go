package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// GroundObstacle sits on the ground line and scrolls left until it leaves the
// field, after which the session drops it.
type GroundObstacle struct {
	x, y          int
	width, height int
	speed         int
}

func newGroundObstacle(f *Field, width, height, speed int) *GroundObstacle {
	return &GroundObstacle{
		x:      f.Width,
		y:      f.GroundLine - height,
		width:  width,
		height: height,
		speed:  speed,
	}
}

// Step moves the obstacle left by its speed.
func (o *GroundObstacle) Step() {
	o.x -= o.speed
}

// Expired reports whether the obstacle is entirely past the left edge.
func (o *GroundObstacle) Expired() bool {
	return o.x < -o.width
}

func (o *GroundObstacle) Bounds() core.Rect {
	return core.NewRect(o.x, o.y, o.width, o.height)
}

func (o *GroundObstacle) Sprite() SpriteID { return SpriteGround }
func (o *GroundObstacle) X() int           { return o.x }
func (o *GroundObstacle) Speed() int       { return o.speed }

func (*GroundObstacle) entity() {}

// AerialObstacle flies at a random altitude. When it leaves the field it wraps
// back to the right edge at a new altitude; it is never removed.
type AerialObstacle struct {
	x, y          int
	width, height int
	speed         int
	field         *Field
}

func newAerialObstacle(f *Field, width, height, speed int) *AerialObstacle {
	return &AerialObstacle{
		x:      f.Width,
		y:      f.randomAltitude(),
		width:  width,
		height: height,
		speed:  speed,
		field:  f,
	}
}

// Step moves the obstacle left, wrapping it once it is past the left edge.
func (o *AerialObstacle) Step() {
	o.x -= o.speed
	if o.x < -o.width {
		o.x = o.field.Width
		o.y = o.field.randomAltitude()
	}
}

func (o *AerialObstacle) Bounds() core.Rect {
	return core.NewRect(o.x, o.y, o.width, o.height)
}

func (o *AerialObstacle) Sprite() SpriteID { return SpriteAerial }
func (o *AerialObstacle) X() int           { return o.x }
func (o *AerialObstacle) Y() int           { return o.y }
func (o *AerialObstacle) Speed() int       { return o.speed }

func (*AerialObstacle) entity() {}
