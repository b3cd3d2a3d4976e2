package systems

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/vmath"
)

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 1},
		{50 * time.Second, 1.5},
		{300 * time.Second, 4},
		{time.Hour, constants.DifficultyCap},
	}
	for _, test := range tests {
		if got := DifficultyLevel(test.elapsed); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("DifficultyLevel(%v) = %f, want %f", test.elapsed, got, test.want)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    time.Duration
	}{
		{0, 1800 * time.Millisecond},
		{100 * time.Second, 1000 * time.Millisecond},
		{162500 * time.Millisecond, 500 * time.Millisecond},
		{10 * time.Minute, constants.MinSpawnInterval},
	}
	for _, test := range tests {
		if got := SpawnInterval(test.elapsed); got != test.want {
			t.Errorf("SpawnInterval(%v) = %v, want %v", test.elapsed, got, test.want)
		}
	}
}

func TestSelectEnemyType(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		r       float64
		want    core.EnemyType
	}{
		{"early common draw", 0, 0.5, core.EnemyVanguard},
		{"early hunter band", 0, 0.95, core.EnemyHunter},
		{"early titan band", 0, 0.99, core.EnemyTitan},
		{"early at hunter threshold", 0, 0.9, core.EnemyVanguard},
		{"late hunter band widened", 10 * time.Minute, 0.7, core.EnemyHunter},
		{"late titan band widened", 10 * time.Minute, 0.9, core.EnemyTitan},
		{"late vanguard floor", 10 * time.Minute, 0.59, core.EnemyVanguard},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := SelectEnemyType(test.elapsed, test.r); got != test.want {
				t.Errorf("got %s - want %s", got, test.want)
			}
		})
	}
}

func TestNewEnemyScaling(t *testing.T) {
	e := NewEnemy(1, core.EnemyHunter, vmath.Vec2{}, 10*time.Second, 4, 0.5)

	if e.Health != constants.HunterHealth*4 {
		t.Errorf("health %f, want %f", e.Health, constants.HunterHealth*4)
	}
	if e.FireRate != constants.HunterFireRate/2 {
		t.Errorf("fire rate %v, want %v", e.FireRate, constants.HunterFireRate/2)
	}
	if want := 10*time.Second + constants.EnemyFirstShotJitter/2; e.LastShot != want {
		t.Errorf("first shot reference %v, want %v", e.LastShot, want)
	}

	v := NewEnemy(2, core.EnemyVanguard, vmath.Vec2{}, 0, 2, 0)
	if v.FireRate != 0 {
		t.Errorf("vanguard fire rate %v, want 0", v.FireRate)
	}
}

func TestSpawnAccumulatorExactInterval(t *testing.T) {
	w := newPlayingWorld(t)
	interval := SpawnInterval(w.Now)
	step := 20 * time.Millisecond
	n := int(interval / step)

	for i := 0; i < n-1; i++ {
		tickSpawner(w, step)
	}
	if w.Enemies.Len() != 0 {
		t.Fatalf("spawned %d enemies before interval", w.Enemies.Len())
	}

	tickSpawner(w, step)
	if w.Enemies.Len() != 1 {
		t.Fatalf("enemies = %d, want exactly 1", w.Enemies.Len())
	}
	if w.SpawnAccum != 0 {
		t.Errorf("accumulator %v, want reset to 0", w.SpawnAccum)
	}
}

func TestFirstSpawnLead(t *testing.T) {
	w := newPlayingWorld(t)
	w.SpawnAccum = constants.InitialSpawnInterval - constants.FirstSpawnLead

	tickSpawner(w, constants.FirstSpawnLead-time.Millisecond)
	if w.Enemies.Len() != 0 {
		t.Fatal("spawned before lead elapsed")
	}
	tickSpawner(w, time.Millisecond)
	if w.Enemies.Len() != 1 {
		t.Fatal("no spawn once lead elapsed")
	}
}

func TestSpawnOutsideEdges(t *testing.T) {
	w := newPlayingWorld(t)
	off := constants.SpawnEdgeOffset

	for i := 0; i < 200; i++ {
		e := SpawnEnemy(w)
		onEdge := e.Pos.X == -off || e.Pos.X == w.Width+off || e.Pos.Y == -off || e.Pos.Y == w.Height+off
		if !onEdge {
			t.Fatalf("spawn %d at %v not outside an edge", i, e.Pos)
		}
		if e.Health <= 0 || e.LastHit >= 0 {
			t.Fatalf("spawn %d bad state: %+v", i, e)
		}
	}
	if w.Enemies.Len() != 200 {
		t.Errorf("enemies = %d, want 200", w.Enemies.Len())
	}
}
