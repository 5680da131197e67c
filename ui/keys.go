package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/input"
)

// keyBindings maps raylib keys to commands. Order matters: the first pressed
// key in a frame wins for each command.
var keyBindings = []struct {
	key int32
	cmd input.Command
}{
	{rl.KeyUp, input.MoveUp},
	{rl.KeyW, input.MoveUp},
	{rl.KeyDown, input.MoveDown},
	{rl.KeyS, input.MoveDown},
	{rl.KeyLeft, input.MoveLeft},
	{rl.KeyA, input.MoveLeft},
	{rl.KeyRight, input.MoveRight},
	{rl.KeyD, input.MoveRight},
	{rl.KeyP, input.Pause},
	{rl.KeyEscape, input.Pause},
	{rl.KeyR, input.Restart},
	{rl.KeyEnter, input.Confirm},
	{rl.KeyOne, input.CycleDifficulty},
	{rl.KeyTab, input.ToggleWrap},
}

// PollCommands returns the commands whose keys were pressed this frame, in
// binding order and without duplicates.
func PollCommands() []input.Command {
	var cmds []input.Command
	seen := make(map[input.Command]bool)
	for _, b := range keyBindings {
		if seen[b.cmd] || !rl.IsKeyPressed(b.key) {
			continue
		}
		seen[b.cmd] = true
		cmds = append(cmds, b.cmd)
	}
	return cmds
}
