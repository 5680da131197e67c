// Package input turns decoded player commands into calls on a game controller.
// Key decoding lives with the window toolkit; this package only knows commands.
package input

import (
	"gridsnake/game/types"
)

// Command is a player intent decoded from a raw input event.
type Command int

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Pause   // P, Escape
	Restart // R
	Confirm // Enter: restarts unless a game is running
	CycleDifficulty
	ToggleWrap
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Pause:
		return "pause"
	case Restart:
		return "restart"
	case Confirm:
		return "confirm"
	case CycleDifficulty:
		return "difficulty"
	case ToggleWrap:
		return "wrap"
	default:
		return "none"
	}
}

// Direction maps the four movement commands; ok is false for anything else.
func (c Command) Direction() (dir types.Direction, ok bool) {
	switch c {
	case MoveUp:
		return types.Up, true
	case MoveDown:
		return types.Down, true
	case MoveLeft:
		return types.Left, true
	case MoveRight:
		return types.Right, true
	}
	return types.Right, false
}

// Controller is what the host exposes to input: the engine surface plus a
// restart that also resets the host's scheduler.
type Controller interface {
	State() types.GameState
	SetDesiredDirection(types.Direction)
	TogglePause()
	Restart()
	Difficulty() types.Difficulty
	SetDifficulty(types.Difficulty)
	WrapMode() bool
	SetWrapMode(bool)
}

// Dispatch applies cmd to c. It reports whether the command was recognised.
func Dispatch(c Controller, cmd Command) bool {
	if dir, ok := cmd.Direction(); ok {
		c.SetDesiredDirection(dir)
		return true
	}
	switch cmd {
	case Pause:
		c.TogglePause()
	case Restart:
		c.Restart()
	case Confirm:
		if c.State() != types.Running {
			c.Restart()
		}
	case CycleDifficulty:
		c.SetDifficulty(c.Difficulty().Next())
	case ToggleWrap:
		c.SetWrapMode(!c.WrapMode())
	default:
		return false
	}
	return true
}
