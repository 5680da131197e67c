package entity

import (
	"gridsnake/game/types"
)

// Snake is an ordered chain of cells plus a per-cell occupancy count.
// body is stored tail-first so moves append at the end; Body() reports it head-first.
type Snake struct {
	body     []types.Point
	occupied map[types.Point]int

	currentDirection types.Direction
	pendingDirection types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		body:             []types.Point{startPos},
		occupied:         map[types.Point]int{startPos: 1},
		currentDirection: dir,
		pendingDirection: dir,
	}
}

// SetDesiredDirection queues dir unless it reverses the committed direction.
func (s *Snake) SetDesiredDirection(dir types.Direction) {
	if s.currentDirection.IsOpposite(dir) {
		return
	}
	s.pendingDirection = dir
}

// FlushPendingDirection commits the queued direction. The engine calls it once
// per tick before computing the next head.
func (s *Snake) FlushPendingDirection() {
	s.currentDirection = s.pendingDirection
}

// MoveTo prepends newHead and drops the tail unless grow is set.
// newHead is not validated; wrap and bounds are the caller's job.
func (s *Snake) MoveTo(newHead types.Point, grow bool) {
	s.body = append(s.body, newHead)
	s.occupied[newHead]++

	if !grow {
		s.removeTail()
	}
}

func (s *Snake) removeTail() {
	if len(s.body) == 0 {
		return
	}
	tail := s.body[0]
	s.body = s.body[1:]
	if s.occupied[tail] <= 1 {
		delete(s.occupied, tail)
	} else {
		s.occupied[tail]--
	}
}

// HasHeadCollidedWithBody reports whether the head shares its cell with any
// other segment. Only meaningful after MoveTo.
func (s *Snake) HasHeadCollidedWithBody() bool {
	return s.occupied[s.GetHead()] > 1
}

func (s *Snake) GetHead() types.Point {
	return s.body[len(s.body)-1]
}

// ContainsPoint is an O(1) membership test.
func (s *Snake) ContainsPoint(p types.Point) bool {
	return s.occupied[p] > 0
}

// Body returns a head-first copy of the segments.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) CurrentDirection() types.Direction {
	return s.currentDirection
}

func (s *Snake) PendingDirection() types.Direction {
	return s.pendingDirection
}
