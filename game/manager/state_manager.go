package manager

import (
	"gridsnake/game/types"
)

// Speed scaling
const (
	SpeedScaleEvery = 5  // food eaten per speed step
	SpeedStepMS     = 10 // ms shaved off the interval per step
	MinIntervalMS   = 40
)

// StateManager keeps the scoring side of a session. highScore survives Reset.
type StateManager struct {
	difficulty types.Difficulty
	score      int
	highScore  int
	foodEaten  int
}

func NewStateManager(difficulty types.Difficulty) *StateManager {
	return &StateManager{
		difficulty: difficulty,
	}
}

// Reset starts a new session: score and food count go back to zero.
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.foodEaten = 0
}

// RecordFood credits one food item at the current difficulty.
func (sm *StateManager) RecordFood() {
	sm.score += sm.difficulty.ScoreGain()
	sm.foodEaten++
	sm.UpdateScore(sm.score)
}

// UpdateScore raises the high score, never lowers it.
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// CurrentInterval is max(base - 10*floor(foodEaten/5), 40) milliseconds.
func (sm *StateManager) CurrentInterval() int {
	steps := sm.foodEaten / SpeedScaleEvery
	interval := sm.difficulty.BaseInterval() - steps*SpeedStepMS
	return max(interval, MinIntervalMS)
}

// SpeedLevel is the 1-based speed step shown to the player.
func (sm *StateManager) SpeedLevel() int {
	return sm.foodEaten/SpeedScaleEvery + 1
}

func (sm *StateManager) SetDifficulty(d types.Difficulty) {
	sm.difficulty = d
}

func (sm *StateManager) GetDifficulty() types.Difficulty {
	return sm.difficulty
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetFoodEaten() int {
	return sm.foodEaten
}
