package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"gridsnake/game/types"
)

// scriptedSource replays fixed values, then repeats the last one.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i] % n
}

func TestRespawnAvoidsSnake(t *testing.T) {
	s := buildSnake(types.Point{X: 0, Y: 0}, types.Right)
	// First candidate (0,0) and second (1,0) are on the snake; third (2,0) is free.
	src := &scriptedSource{values: []int{0, 0, 1, 0, 2, 0}}
	f := NewFood(src)
	f.Respawn(10, 10, s)
	if f.Position() != (types.Point{X: 2, Y: 0}) {
		t.Fatalf("expected food at (2,0), got %v", f.Position())
	}
	if src.calls != 6 {
		t.Errorf("expected 3 samples (6 draws), got %d draws", src.calls)
	}
}

func TestRespawnSeededIsDeterministic(t *testing.T) {
	s := NewSnake(types.Point{X: 20, Y: 12}, types.Right)
	a := NewFood(rand.New(rand.NewSource(42)))
	b := NewFood(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		a.Respawn(types.Cols, types.Rows, s)
		b.Respawn(types.Cols, types.Rows, s)
		if a.Position() != b.Position() {
			t.Fatalf("same seed diverged at step %d: %v vs %v", i, a.Position(), b.Position())
		}
		if s.ContainsPoint(a.Position()) {
			t.Fatalf("food placed on snake at %v", a.Position())
		}
		if !types.DefaultGrid.Contains(a.Position()) {
			t.Fatalf("food outside grid at %v", a.Position())
		}
	}
}

// On a completely full board no free cell exists; the bounded retry gives up and
// accepts a cell under the snake rather than looping forever.
func TestRespawnFullBoardFallsBackAfterCap(t *testing.T) {
	// 2x2 board fully covered by a snake of length 4.
	s := buildSnake(types.Point{X: 0, Y: 0}, types.Right, types.Down, types.Left)
	src := &scriptedSource{values: []int{1}}
	f := NewFood(src)
	f.Respawn(2, 2, s)

	if !s.ContainsPoint(f.Position()) {
		t.Fatalf("expected fallback candidate under the snake, got %v", f.Position())
	}
	// 2*cols*rows capped attempts plus the final one, two draws each.
	if want := (2*2*2 + 1) * 2; src.calls != want {
		t.Errorf("expected %d draws, got %d", want, src.calls)
	}
}
