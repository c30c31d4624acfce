package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Spawner decides when obstacles enter the field.
//
// Ground obstacles use a tick counter compared against a delay redrawn from
// [MinDelay, MaxDelay] on every tick. Aerial obstacles are gated on the score
// being a positive multiple of ScoreInterval. Both are held back while the most
// recent obstacle of the same kind is still within Spacing of the right edge.
type Spawner struct {
	field  *Field
	ground config.GroundConfig
	aerial config.AerialConfig

	groundTimer   int
	aerialPending bool
}

// NewSpawner creates a spawner for the given field.
func NewSpawner(f *Field, ground config.GroundConfig, aerial config.AerialConfig) *Spawner {
	return &Spawner{field: f, ground: ground, aerial: aerial}
}

// Ground advances the ground timer and returns a new obstacle, or nil.
// last is the most recently spawned ground obstacle still alive.
func (sp *Spawner) Ground(last *GroundObstacle, speed int) *GroundObstacle {
	sp.groundTimer++
	if sp.groundTimer <= randomBetween(sp.field.rng, sp.ground.MinDelay, sp.ground.MaxDelay) {
		return nil
	}
	if last != nil && last.x >= sp.field.Width-sp.ground.Spacing {
		return nil
	}
	sp.groundTimer = 0
	return newGroundObstacle(sp.field, sp.ground.Width, sp.ground.Height, speed)
}

// Aerial returns a new aerial obstacle when score opens the gate, or nil.
//
// By default the gate is open for the single qualifying tick, so a spawn held
// back by spacing is skipped for that interval. With RetryUntilSpawned the
// spawn stays pending until spacing allows it.
func (sp *Spawner) Aerial(last *AerialObstacle, score, speed int) *AerialObstacle {
	if score > 0 && score%sp.aerial.ScoreInterval == 0 {
		sp.aerialPending = true
	}
	if !sp.aerialPending {
		return nil
	}
	if !sp.aerial.RetryUntilSpawned {
		sp.aerialPending = false
	}
	if last != nil && last.x >= sp.field.Width-sp.aerial.Spacing {
		return nil
	}
	sp.aerialPending = false
	return newAerialObstacle(sp.field, sp.aerial.Width, sp.aerial.Height, speed)
}
