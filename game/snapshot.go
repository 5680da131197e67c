package game

import (
	"gridsnake/game/types"
)

// Snapshot is a read-only copy of the session handed to listeners and renderers.
type Snapshot struct {
	SessionID  string
	Grid       types.Grid
	State      types.GameState
	Body       []types.Point // head first
	Direction  types.Direction
	Food       types.Point
	HasFood    bool
	Score      int
	HighScore  int
	FoodEaten  int
	SpeedLevel int
	Interval   int // ms until the next tick
	Difficulty types.Difficulty
	Wrap       bool
	Ticks      uint64
}

// Snapshot copies the current session state.
func (e *Engine) Snapshot() Snapshot {
	food, hasFood := e.Food()
	return Snapshot{
		SessionID:  e.sessionID,
		Grid:       e.grid,
		State:      e.state,
		Body:       e.Body(),
		Direction:  e.Direction(),
		Food:       food,
		HasFood:    hasFood,
		Score:      e.stateMgr.GetScore(),
		HighScore:  e.stateMgr.GetHighScore(),
		FoodEaten:  e.stateMgr.GetFoodEaten(),
		SpeedLevel: e.stateMgr.SpeedLevel(),
		Interval:   e.stateMgr.CurrentInterval(),
		Difficulty: e.stateMgr.GetDifficulty(),
		Wrap:       e.wrapMode,
		Ticks:      e.ticks,
	}
}

// Head returns the first body cell; ok is false when there is no snake yet.
func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Body) == 0 {
		return types.Point{}, false
	}
	return s.Body[0], true
}

// Length is the number of body cells.
func (s Snapshot) Length() int {
	return len(s.Body)
}
