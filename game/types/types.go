package types

import (
	"errors"
	"fmt"
	"strings"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Default board size
const (
	Cols = 40
	Rows = 25
)

// DefaultGrid is the 40x25 board the engine plays on unless told otherwise.
var DefaultGrid = Grid{Width: Cols, Height: Rows}

// Contains reports whether p lies inside [0,Width)x[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell a new snake starts on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point is a cell on the grid. Equality is structural.
type Point struct {
	X, Y int
}

// Add returns p moved by the unit vector of d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the (dx, dy) unit vector. Up decreases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the 180-degree reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// IsOpposite holds only for the Up/Down and Left/Right pairs.
func (d Direction) IsOpposite(other Direction) bool {
	return d != other && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// GameState is the engine's session state.
type GameState int

const (
	Waiting GameState = iota
	Running
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Difficulty sets the starting pace and the score earned per food.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ErrUnknownDifficulty is returned when a difficulty name cannot be parsed.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// BaseInterval is the tick period in milliseconds before any speed-up.
func (d Difficulty) BaseInterval() int {
	switch d {
	case Easy:
		return 200
	case Hard:
		return 75
	default:
		return 130
	}
}

// ScoreGain is the score added for each food eaten.
func (d Difficulty) ScoreGain() int {
	switch d {
	case Easy:
		return 10
	case Hard:
		return 30
	default:
		return 20
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next cycles Easy -> Medium -> Hard -> Easy.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % 3
}

// ParseDifficulty accepts the case-insensitive names easy, medium and hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// UnmarshalText lets env and flag parsing fill a Difficulty from its name.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(d.String())), nil
}
