// Package ai drives the snake with a small tabular Q-learning agent. The table
// lives in memory for the lifetime of the process.
package ai

import (
	"math"

	"golang.org/x/exp/rand"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Rewards
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
)

// State is what the agent sees: where the food is relative to the head and
// which neighbouring cells would end the game.
type State struct {
	RelativeFoodDir [2]int  // sign of food - head on each axis
	DangerDirs      [4]bool // indexed like types.Directions
	FoodDistance    int
}

// key drops the distance so the table stays small.
func (s State) key() State {
	s.FoodDistance = 0
	return s
}

// QTable maps a state to the value of each direction.
type QTable map[State][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng        *rand.Rand
	lastState  State
	lastAction types.Direction
	pending    bool
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// NewState reads the agent's view off a snapshot.
func NewState(s game.Snapshot) State {
	head, ok := s.Head()
	if !ok {
		return State{}
	}
	state := State{
		RelativeFoodDir: [2]int{sign(s.Food.X - head.X), sign(s.Food.Y - head.Y)},
		FoodDistance:    manhattanDistance(head, s.Food, s.Grid, s.Wrap),
	}
	for i, d := range types.Directions {
		state.DangerDirs[i] = IsDanger(s, head.Add(d))
	}
	return state
}

// IsDanger reports whether the head moving onto p would end the game. The tail
// cell is safe because it moves away on the same tick.
func IsDanger(s game.Snapshot, p types.Point) bool {
	if s.Wrap {
		p = manager.NewCollisionManager(s.Grid).Wrap(p)
	} else if !s.Grid.Contains(p) {
		return true
	}
	for i, b := range s.Body {
		if b == p {
			return len(s.Body) == 1 || i != len(s.Body)-1
		}
	}
	return false
}

// Steer picks the next direction for the snake in s, never the reverse of
// the current one, and remembers it for the following Observe.
func (q *QLearning) Steer(s game.Snapshot) types.Direction {
	state := NewState(s)
	action := q.GetAction(state, s.Direction)
	q.lastState = state
	q.lastAction = action
	q.pending = true
	return action
}

// GetAction is epsilon-greedy over the legal directions.
func (q *QLearning) GetAction(state State, current types.Direction) types.Direction {
	legal := make([]types.Direction, 0, 3)
	for _, d := range types.Directions {
		if !current.IsOpposite(d) {
			legal = append(legal, d)
		}
	}

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return legal[q.rng.Intn(len(legal))]
	}

	// Exploitation: best known action, preferring safe cells on ties
	values := q.QTable[state.key()]
	best := legal[0]
	bestValue := math.Inf(-1)
	for _, d := range legal {
		v := values[d]
		if state.DangerDirs[d] {
			v += RewardDeath
		}
		if v > bestValue {
			bestValue = v
			best = d
		}
	}
	return best
}

// Observe scores the move chosen by the last Steer against the snapshot that
// followed it and updates the table.
func (q *QLearning) Observe(prev, next game.Snapshot) float64 {
	if !q.pending {
		return 0
	}
	q.pending = false

	nextState := NewState(next)
	var reward float64
	switch {
	case next.State == types.GameOver:
		reward = RewardDeath
	case next.FoodEaten > prev.FoodEaten:
		reward = RewardFood
	case nextState.FoodDistance < q.lastState.FoodDistance:
		reward = RewardCloser
	case nextState.FoodDistance > q.lastState.FoodDistance:
		reward = RewardFarther
	}

	maxNextQ := 0.0
	if next.State != types.GameOver {
		maxNextQ = math.Inf(-1)
		for _, v := range q.QTable[nextState.key()] {
			maxNextQ = math.Max(maxNextQ, v)
		}
	} else {
		q.GamesPlayed++
	}

	key := q.lastState.key()
	values := q.QTable[key]
	currentQ := values[q.lastAction]
	values[q.lastAction] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)
	q.QTable[key] = values

	q.TotalReward += reward
	return reward
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattanDistance measures head to food, going around the edges in wrap mode.
func manhattanDistance(p1, p2 types.Point, grid types.Grid, wrap bool) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	if wrap {
		if dx > grid.Width/2 {
			dx = grid.Width - dx
		}
		if dy > grid.Height/2 {
			dy = grid.Height - dy
		}
	}

	return dx + dy
}
