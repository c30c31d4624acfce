package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner. X is fixed; Y moves along a parabola while jumping.
type Player struct {
	x, y          int
	width, height int
	velocity      int // vertical, negative = up
	jumping       bool
	crouching     bool

	restY         int // y while standing on the ground
	jumpImpulse   int
	crouchImpulse int
	gravity       int
}

// NewPlayer places a player on the ground line.
func NewPlayer(cfg config.PlayerConfig, groundLine int) *Player {
	restY := groundLine - cfg.Height
	return &Player{
		x:             cfg.X,
		y:             restY,
		width:         cfg.Width,
		height:        cfg.Height,
		restY:         restY,
		jumpImpulse:   cfg.JumpImpulse,
		crouchImpulse: cfg.CrouchJumpImpulse,
		gravity:       cfg.Gravity,
	}
}

// Jump starts a jump from the ground. Jumping from a crouch uses the weaker
// impulse. No-op while airborne.
func (p *Player) Jump() {
	if p.jumping {
		return
	}
	p.jumping = true
	if p.crouching {
		p.velocity = p.crouchImpulse
	} else {
		p.velocity = p.jumpImpulse
	}
}

// Crouch lowers the player. No-op while airborne.
func (p *Player) Crouch() {
	if p.jumping {
		return
	}
	p.crouching = true
}

// StandUp clears the crouch.
func (p *Player) StandUp() {
	p.crouching = false
}

// Step applies velocity then gravity. Landing clamps y to the ground and
// clears both the jump and the crouch.
func (p *Player) Step() {
	if !p.jumping {
		return
	}
	p.y += p.velocity
	p.velocity += p.gravity
	if p.y >= p.restY {
		p.y = p.restY
		p.jumping = false
		p.crouching = false
	}
}

// Bounds returns the hitbox. Crouching does not shrink it.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}

// Sprite returns the crouch pose only while crouching on the ground.
func (p *Player) Sprite() SpriteID {
	if p.crouching && !p.jumping {
		return SpritePlayerCrouch
	}
	return SpritePlayer
}

func (p *Player) Y() int          { return p.y }
func (p *Player) RestY() int      { return p.restY }
func (p *Player) Velocity() int   { return p.velocity }
func (p *Player) Airborne() bool  { return p.jumping }
func (p *Player) Crouching() bool { return p.crouching }

func (*Player) entity() {}
