// Package runner implements the side-scrolling runner simulation: the player,
// ground and aerial obstacles, the spawner, and the per-session collision and
// progression rules. It is pure logic with no terminal dependencies; the loop
// package drives it and renders its entities.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// SpriteID names the image an entity is drawn with.
type SpriteID string

const (
	SpritePlayer       SpriteID = "player"
	SpritePlayerCrouch SpriteID = "player_crouch"
	SpriteGround       SpriteID = "ground_obstacle"
	SpriteAerial       SpriteID = "aerial_obstacle"
)

// SpriteIDs lists every sprite the simulation can ask for.
func SpriteIDs() []SpriteID {
	return []SpriteID{SpritePlayer, SpritePlayerCrouch, SpriteGround, SpriteAerial}
}

// Entity is implemented by Player, GroundObstacle and AerialObstacle only.
type Entity interface {
	// Step advances the entity by one tick.
	Step()
	// Bounds returns the hitbox in logical pixels.
	Bounds() core.Rect
	// Sprite returns the image to draw at Bounds().Origin().
	Sprite() SpriteID

	entity()
}

// Field is the playfield shared by a session's entities. It owns the random
// stream used for spawn delays and aerial altitudes.
type Field struct {
	Width       int
	Height      int
	GroundLine  int
	MinAltitude int
	MaxAltitude int

	rng *rand.Rand
}

// NewField builds a field from the screen and aerial config.
func NewField(cfg config.RunnerConfig, rng *rand.Rand) *Field {
	return &Field{
		Width:       cfg.Screen.Width,
		Height:      cfg.Screen.Height,
		GroundLine:  cfg.Screen.GroundLine,
		MinAltitude: cfg.Aerial.MinAltitude,
		MaxAltitude: cfg.MaxAltitude(),
		rng:         rng,
	}
}

// randomAltitude returns a y uniformly drawn from [MinAltitude, MaxAltitude].
func (f *Field) randomAltitude() int {
	return randomBetween(f.rng, f.MinAltitude, f.MaxAltitude)
}

// randomBetween returns a uniform int in [lo, hi].
func randomBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
