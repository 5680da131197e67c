package entity

import (
	"gridsnake/game/types"
)

// RandomSource is the subset of *rand.Rand that food placement needs.
type RandomSource interface {
	Intn(n int) int
}

// Food is the single item on the board.
type Food struct {
	position types.Point
	random   RandomSource
}

func NewFood(random RandomSource) *Food {
	return &Food{random: random}
}

// Respawn samples cells until one is free of the snake. After 2*cols*rows
// attempts the last candidate is kept even if the snake covers it, so a
// nearly full board cannot loop forever.
func (f *Food) Respawn(cols, rows int, snake *Snake) {
	maxAttempts := cols * rows * 2
	var candidate types.Point
	for attempts := 1; ; attempts++ {
		candidate = types.Point{
			X: f.random.Intn(cols),
			Y: f.random.Intn(rows),
		}
		if !snake.ContainsPoint(candidate) || attempts > maxAttempts {
			break
		}
	}
	f.position = candidate
}

func (f *Food) Position() types.Point {
	return f.position
}
