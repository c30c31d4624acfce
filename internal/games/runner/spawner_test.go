package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestSpawner(seed int64, retry bool) *Spawner {
	cfg := config.DefaultRunnerConfig()
	cfg.Aerial.RetryUntilSpawned = retry
	return NewSpawner(newTestField(seed), cfg.Ground, cfg.Aerial)
}

func TestSpawnerGroundDelay(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		sp := newTestSpawner(seed, false)

		var spawned *GroundObstacle
		tick := 0
		for spawned == nil {
			tick++
			spawned = sp.Ground(nil, 10)
			if tick > 151 {
				t.Fatalf("seed %d: no spawn after %d ticks", seed, tick)
			}
		}
		if tick < 51 {
			t.Errorf("seed %d: spawned on tick %d, expected no earlier than 51", seed, tick)
		}
		if spawned.Speed() != 10 || spawned.X() != 1000 {
			t.Errorf("seed %d: unexpected obstacle %+v", seed, spawned)
		}
		if sp.groundTimer != 0 {
			t.Errorf("seed %d: timer not reset after spawn", seed)
		}
	}
}

func TestSpawnerGroundSpacing(t *testing.T) {
	sp := newTestSpawner(3, false)
	last := newGroundObstacle(sp.field, 100, 100, 10)
	sp.groundTimer = 1000

	last.x = 800 // not yet left of width-spacing
	if o := sp.Ground(last, 10); o != nil {
		t.Error("spawned while the last obstacle is within spacing")
	}
	if sp.groundTimer != 1001 {
		t.Errorf("timer = %d, expected it to keep counting", sp.groundTimer)
	}

	last.x = 799
	if o := sp.Ground(last, 12); o == nil || o.Speed() != 12 {
		t.Errorf("expected a spawn at speed 12, got %+v", o)
	}
}

func TestSpawnerAerialGate(t *testing.T) {
	sp := newTestSpawner(5, false)

	for _, score := range []int{0, 1, 250, 499, 501} {
		if o := sp.Aerial(nil, score, 10); o != nil {
			t.Errorf("spawned at score %d", score)
		}
	}
	for _, score := range []int{500, 1000, 2500} {
		o := sp.Aerial(nil, score, 15)
		if o == nil {
			t.Fatalf("no spawn at score %d", score)
		}
		if o.Speed() != 15 || o.X() != 1000 {
			t.Errorf("unexpected obstacle %+v", o)
		}
		if o.Y() < 50 || o.Y() > 250 {
			t.Errorf("altitude %d outside [50, 250]", o.Y())
		}
	}
}

func TestSpawnerAerialBlockedBySpacing(t *testing.T) {
	tests := []struct {
		name          string
		retry         bool
		expectedLater bool
	}{
		{"one shot skips the interval", false, false},
		{"retry spawns once spacing allows", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sp := newTestSpawner(9, tc.retry)
			last := newAerialObstacle(sp.field, 100, 50, 10)
			last.x = 900

			if o := sp.Aerial(last, 500, 10); o != nil {
				t.Fatal("spawned while the last aerial obstacle is within spacing")
			}

			last.x = 700
			o := sp.Aerial(last, 501, 10)
			if (o != nil) != tc.expectedLater {
				t.Errorf("spawn on later tick = %v, expected %v", o != nil, tc.expectedLater)
			}
			if o := sp.Aerial(last, 502, 10); o != nil {
				t.Error("pending spawn should fire at most once")
			}
		})
	}
}
