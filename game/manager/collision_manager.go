package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionManager owns the board geometry: bounds, wrap-around and hits.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead computes where the head lands after one step in dir. With wrap
// enabled both coordinates are floor-mod reduced onto the board. Without wrap
// ok is false when the step leaves the board.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction, wrap bool) (next types.Point, ok bool) {
	next = head.Add(dir)
	if wrap {
		return cm.Wrap(next), true
	}
	if cm.isWallCollision(next) {
		return next, false
	}
	return next, true
}

// Wrap maps any point onto the board so leaving one edge re-enters at the opposite one.
func (cm *CollisionManager) Wrap(pos types.Point) types.Point {
	return types.Point{
		X: floorMod(pos.X, cm.grid.Width),
		Y: floorMod(pos.Y, cm.grid.Height),
	}
}

// isWallCollision checks if a position is outside the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food != nil && pos == food.Position()
}

// IsSelfCollision must run after the move was committed.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HasHeadCollidedWithBody()
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
