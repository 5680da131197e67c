package entity

import (
	"testing"

	"gridsnake/game/types"
)

// buildSnake grows a snake from start by moving along dirs, keeping every cell.
func buildSnake(start types.Point, dirs ...types.Direction) *Snake {
	s := NewSnake(start, types.Right)
	head := start
	for _, d := range dirs {
		head = head.Add(d)
		s.MoveTo(head, true)
	}
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.Point{X: 20, Y: 12}, types.Right)
	if s.Len() != 1 {
		t.Fatalf("expected length 1, got %d", s.Len())
	}
	if s.GetHead() != (types.Point{X: 20, Y: 12}) {
		t.Errorf("unexpected head %v", s.GetHead())
	}
	if s.CurrentDirection() != types.Right || s.PendingDirection() != types.Right {
		t.Errorf("expected both directions right, got %v/%v", s.CurrentDirection(), s.PendingDirection())
	}
}

func TestSetDesiredDirectionIgnoresReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Up)
	s.SetDesiredDirection(types.Down)
	if s.PendingDirection() != types.Up {
		t.Fatalf("reversal should be ignored, pending is %v", s.PendingDirection())
	}
	s.SetDesiredDirection(types.Left)
	if s.PendingDirection() != types.Left {
		t.Fatalf("expected pending left, got %v", s.PendingDirection())
	}
	// Checked against the committed direction, not the pending one.
	s.SetDesiredDirection(types.Right)
	if s.PendingDirection() != types.Right {
		t.Fatalf("expected pending right, got %v", s.PendingDirection())
	}
	if s.CurrentDirection() != types.Up {
		t.Errorf("current direction changed before flush: %v", s.CurrentDirection())
	}
	s.FlushPendingDirection()
	if s.CurrentDirection() != types.Right {
		t.Errorf("expected current right after flush, got %v", s.CurrentDirection())
	}
}

func TestMoveToWithoutGrowKeepsLength(t *testing.T) {
	s := buildSnake(types.Point{X: 5, Y: 5}, types.Right, types.Right)
	tail := s.Body()[s.Len()-1]
	s.MoveTo(types.Point{X: 8, Y: 5}, false)
	if s.Len() != 3 {
		t.Fatalf("expected length 3, got %d", s.Len())
	}
	if s.ContainsPoint(tail) {
		t.Errorf("tail %v should have been evicted", tail)
	}
	want := []types.Point{{X: 8, Y: 5}, {X: 7, Y: 5}, {X: 6, Y: 5}}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestMoveToWithGrowKeepsTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.MoveTo(types.Point{X: 6, Y: 5}, true)
	if s.Len() != 2 {
		t.Fatalf("expected length 2, got %d", s.Len())
	}
	if !s.ContainsPoint(types.Point{X: 5, Y: 5}) || !s.ContainsPoint(types.Point{X: 6, Y: 5}) {
		t.Errorf("expected both cells occupied")
	}
	if s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("unexpected head %v", s.GetHead())
	}
}

func TestHasHeadCollidedWithBody(t *testing.T) {
	// A 2x2 loop: right, down, left brings the head next to the start.
	s := buildSnake(types.Point{X: 5, Y: 5}, types.Right, types.Down, types.Left)
	if s.HasHeadCollidedWithBody() {
		t.Fatal("no collision expected yet")
	}
	s.MoveTo(types.Point{X: 5, Y: 5}, true)
	if !s.HasHeadCollidedWithBody() {
		t.Fatal("expected collision when head re-enters the start cell")
	}
}

func TestChasingTailIsNotACollision(t *testing.T) {
	// Square of four cells; moving into the tail cell frees it in the same move.
	s := buildSnake(types.Point{X: 5, Y: 5}, types.Right, types.Down, types.Left)
	s.MoveTo(types.Point{X: 5, Y: 5}, false)
	if s.HasHeadCollidedWithBody() {
		t.Fatal("moving into the vacated tail cell must not collide")
	}
	if !s.ContainsPoint(types.Point{X: 5, Y: 5}) {
		t.Fatal("occupancy index lost the head cell")
	}
	assertIndexInSync(t, s)
}

func TestBodyIsACopy(t *testing.T) {
	s := buildSnake(types.Point{X: 1, Y: 1}, types.Right)
	body := s.Body()
	body[0] = types.Point{X: 99, Y: 99}
	if s.GetHead() == (types.Point{X: 99, Y: 99}) {
		t.Fatal("Body must not expose internal storage")
	}
}

func TestOccupancyIndexStaysInSync(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0}, types.Right)
	head := s.GetHead()
	for i := 0; i < 30; i++ {
		d := types.Right
		if i%7 == 3 {
			d = types.Down
		}
		head = head.Add(d)
		s.MoveTo(head, i%3 == 0)
		assertIndexInSync(t, s)
	}
}

func assertIndexInSync(t *testing.T, s *Snake) {
	t.Helper()
	counts := make(map[types.Point]int)
	for _, p := range s.Body() {
		counts[p]++
	}
	if len(counts) != len(s.occupied) {
		t.Fatalf("index has %d cells, body has %d distinct", len(s.occupied), len(counts))
	}
	for p, n := range counts {
		if s.occupied[p] != n {
			t.Fatalf("index count for %v = %d, body count = %d", p, s.occupied[p], n)
		}
	}
}
