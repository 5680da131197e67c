package ai

import (
	"testing"

	"gridsnake/game"
	"gridsnake/game/types"
)

func snapshot(body []types.Point, dir types.Direction, food types.Point) game.Snapshot {
	return game.Snapshot{
		Grid:      types.Grid{Width: 10, Height: 10},
		State:     types.Running,
		Body:      body,
		Direction: dir,
		Food:      food,
		HasFood:   true,
	}
}

func TestNewState(t *testing.T) {
	s := snapshot([]types.Point{{X: 0, Y: 5}}, types.Right, types.Point{X: 4, Y: 2})
	state := NewState(s)

	if state.RelativeFoodDir != [2]int{1, -1} {
		t.Errorf("expected food up-right, got %v", state.RelativeFoodDir)
	}
	if state.FoodDistance != 7 {
		t.Errorf("expected distance 7, got %d", state.FoodDistance)
	}
	if !state.DangerDirs[types.Left] {
		t.Error("left of x=0 must be a wall")
	}
	if state.DangerDirs[types.Up] || state.DangerDirs[types.Right] || state.DangerDirs[types.Down] {
		t.Errorf("unexpected danger: %v", state.DangerDirs)
	}

	s.Wrap = true
	if NewState(s).DangerDirs[types.Left] {
		t.Error("walls are not dangerous in wrap mode")
	}
	if got := NewState(s).FoodDistance; got != 7 {
		t.Errorf("expected wrapped distance 7, got %d", got)
	}
}

func TestIsDangerTailIsSafe(t *testing.T) {
	body := []types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}}
	s := snapshot(body, types.Left, types.Point{X: 8, Y: 8})

	if IsDanger(s, types.Point{X: 2, Y: 3}) {
		t.Error("tail cell moves away this tick")
	}
	if !IsDanger(s, types.Point{X: 3, Y: 2}) {
		t.Error("body cell must be dangerous")
	}
	if IsDanger(s, types.Point{X: 1, Y: 2}) {
		t.Error("empty cell must be safe")
	}
}

func TestGetActionNeverReverses(t *testing.T) {
	q := NewQLearning(1)
	q.Epsilon = 1

	for _, current := range types.Directions {
		for i := 0; i < 50; i++ {
			if got := q.GetAction(State{}, current); got == current.Opposite() {
				t.Fatalf("heading %v picked reverse %v", current, got)
			}
		}
	}
}

func TestGetActionAvoidsDanger(t *testing.T) {
	q := NewQLearning(1)
	q.Epsilon = 0

	state := State{DangerDirs: [4]bool{true, false, false, false}}
	if got := q.GetAction(state, types.Up); got == types.Up {
		t.Fatal("greedy choice should avoid a dangerous cell when a safe one ties")
	}
}

func TestObserveRewards(t *testing.T) {
	head := []types.Point{{X: 5, Y: 5}}
	prev := snapshot(head, types.Right, types.Point{X: 8, Y: 5})

	tests := []struct {
		name string
		next game.Snapshot
		want float64
	}{
		{"closer", snapshot([]types.Point{{X: 6, Y: 5}}, types.Right, types.Point{X: 8, Y: 5}), RewardCloser},
		{"farther", snapshot([]types.Point{{X: 5, Y: 4}}, types.Up, types.Point{X: 8, Y: 5}), RewardFarther},
		{"food", func() game.Snapshot {
			s := snapshot([]types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, types.Right, types.Point{X: 1, Y: 1})
			s.FoodEaten = 1
			return s
		}(), RewardFood},
		{"death", func() game.Snapshot {
			s := snapshot(head, types.Right, types.Point{X: 8, Y: 5})
			s.State = types.GameOver
			return s
		}(), RewardDeath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQLearning(7)
			q.Epsilon = 0
			q.Steer(prev)
			if got := q.Observe(prev, tt.next); got != tt.want {
				t.Fatalf("expected reward %v, got %v", tt.want, got)
			}
			if len(q.QTable) == 0 {
				t.Fatal("expected the table to be updated")
			}
		})
	}
}

func TestObserveWithoutSteerIsNoop(t *testing.T) {
	q := NewQLearning(1)
	s := snapshot([]types.Point{{X: 5, Y: 5}}, types.Right, types.Point{X: 8, Y: 5})
	if got := q.Observe(s, s); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if len(q.QTable) != 0 {
		t.Fatal("table must stay empty")
	}
}

func TestDeathCountsGame(t *testing.T) {
	q := NewQLearning(1)
	prev := snapshot([]types.Point{{X: 9, Y: 5}}, types.Right, types.Point{X: 0, Y: 0})
	next := prev
	next.State = types.GameOver

	q.Steer(prev)
	q.Observe(prev, next)
	if q.GamesPlayed != 1 {
		t.Fatalf("expected 1 game, got %d", q.GamesPlayed)
	}
}

func TestSeededAgentsAgree(t *testing.T) {
	a, b := NewQLearning(42), NewQLearning(42)
	a.Epsilon, b.Epsilon = 0.5, 0.5
	s := snapshot([]types.Point{{X: 5, Y: 5}}, types.Right, types.Point{X: 8, Y: 2})
	for i := 0; i < 20; i++ {
		if a.Steer(s) != b.Steer(s) {
			t.Fatalf("step %d: seeded agents diverged", i)
		}
	}
}
