package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Outcome reports what happened during one Advance.
type Outcome struct {
	Collided bool
	Hit      Entity // obstacle the player ran into, nil unless Collided
}

// Session is one run from the first tick to a collision. It owns every entity;
// a replay discards it and starts a new one.
type Session struct {
	cfg     config.RunnerConfig
	field   *Field
	player  *Player
	ground  []*GroundObstacle
	aerial  []*AerialObstacle
	spawner *Spawner

	score  int
	speed  int
	ticks  int
	over   bool
	paused bool
}

// NewSession starts a run with score 0 and the initial scroll speed.
func NewSession(cfg config.RunnerConfig, rng *rand.Rand) *Session {
	field := NewField(cfg, rng)
	return &Session{
		cfg:     cfg,
		field:   field,
		player:  NewPlayer(cfg.Player, cfg.Screen.GroundLine),
		ground:  make([]*GroundObstacle, 0, 8),
		aerial:  make([]*AerialObstacle, 0, 4),
		spawner: NewSpawner(field, cfg.Ground, cfg.Aerial),
		speed:   cfg.Progression.InitialSpeed,
	}
}

// HandleInput applies a key event to the player. Events that mean nothing
// while playing are ignored.
func (s *Session) HandleInput(ev core.Event) {
	if s.over {
		return
	}
	switch {
	case ev.IsKeyDown(core.KeyPause):
		s.paused = !s.paused
	case ev.IsKeyUp(core.KeyCrouch):
		s.player.StandUp()
	case s.paused:
	case ev.IsKeyDown(core.KeyJump):
		s.player.Jump()
	case ev.IsKeyDown(core.KeyCrouch):
		s.player.Crouch()
	}
}

// Advance simulates one tick: player physics, spawning, obstacle movement and
// pruning, the collision check and finally score and speed. A collision ends
// the session with the score it had before this tick.
func (s *Session) Advance() Outcome {
	if s.over || s.paused {
		return Outcome{}
	}
	s.ticks++

	s.player.Step()
	s.spawn()
	s.moveObstacles()

	if hit := s.collision(); hit != nil {
		s.over = true
		return Outcome{Collided: true, Hit: hit}
	}

	s.score++
	p := s.cfg.Progression
	if p.SpeedStep > 0 && s.score%p.StepEvery == 0 {
		s.speed += p.SpeedStep
	}
	return Outcome{}
}

func (s *Session) spawn() {
	var lastGround *GroundObstacle
	if n := len(s.ground); n > 0 {
		lastGround = s.ground[n-1]
	}
	if o := s.spawner.Ground(lastGround, s.speed); o != nil {
		s.ground = append(s.ground, o)
	}

	var lastAerial *AerialObstacle
	if n := len(s.aerial); n > 0 {
		lastAerial = s.aerial[n-1]
	}
	if o := s.spawner.Aerial(lastAerial, s.score, s.speed); o != nil {
		s.aerial = append(s.aerial, o)
	}
}

// moveObstacles steps every obstacle and compacts expired ground obstacles
// out of the slice in place.
func (s *Session) moveObstacles() {
	live := s.cfg.Progression.LiveSpeed

	survivors := s.ground[:0]
	for _, o := range s.ground {
		if live {
			o.speed = s.speed
		}
		o.Step()
		if !o.Expired() {
			survivors = append(survivors, o)
		}
	}
	clear(s.ground[len(survivors):])
	s.ground = survivors

	for _, o := range s.aerial {
		if live {
			o.speed = s.speed
		}
		o.Step()
	}
}

// collision returns the first obstacle overlapping the player, ground
// obstacles first, each in spawn order.
func (s *Session) collision() Entity {
	pr := s.player.Bounds()
	for _, o := range s.ground {
		if pr.Intersects(o.Bounds()) {
			return o
		}
	}
	for _, o := range s.aerial {
		if pr.Intersects(o.Bounds()) {
			return o
		}
	}
	return nil
}

// Entities returns everything to draw, player first, then ground and aerial
// obstacles in spawn order.
func (s *Session) Entities() []Entity {
	out := make([]Entity, 0, 1+len(s.ground)+len(s.aerial))
	out = append(out, s.player)
	for _, o := range s.ground {
		out = append(out, o)
	}
	for _, o := range s.aerial {
		out = append(out, o)
	}
	return out
}

func (s *Session) Player() *Player                    { return s.player }
func (s *Session) GroundObstacles() []*GroundObstacle { return s.ground }
func (s *Session) AerialObstacles() []*AerialObstacle { return s.aerial }

// Score returns the number of ticks survived.
func (s *Session) Score() int { return s.score }

// Speed returns the current scroll speed.
func (s *Session) Speed() int { return s.speed }

// Ticks returns the number of simulated ticks, excluding paused ones.
func (s *Session) Ticks() int { return s.ticks }

// Over reports whether the session ended in a collision.
func (s *Session) Over() bool { return s.over }

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool { return s.paused }
