package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/shell"
	"gridsnake/ui"
)

func main() {
	cfg, err := shell.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		exitf("Error: %v", err)
	}

	logger := log.New(os.Stderr, "snake ", log.LstdFlags)
	host := shell.New(cfg, logger)
	defer host.Close()

	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// Escape pauses; only closing the window quits
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}
		for _, cmd := range ui.PollCommands() {
			host.Handle(cmd)
		}
		host.Step(time.Now())
		renderer.Draw(host.Snapshot(), host.History())
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
