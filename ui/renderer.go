package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/stats"
)

const (
	borderPadding = 10
	hudHeight     = 30
)

var (
	snakeColor = rl.Color{R: 60, G: 200, B: 90, A: 255}
	headColor  = rl.Color{R: 80, G: 255, B: 120, A: 255}
	shadeColor = rl.Color{R: 0, G: 0, B: 0, A: 170}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the width
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight - hudHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Draw renders one frame for the given session state and history.
func (r *Renderer) Draw(s game.Snapshot, history *stats.History) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/45, r.statsPanel/15)
	lineHeight := min(r.screenHeight/35, r.statsPanel/12)

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	r.cellSize = max(min(availableWidth/int32(s.Grid.Width), availableHeight/int32(s.Grid.Height)), 1)

	r.totalGridWidth = r.cellSize * int32(s.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(s.Grid.Height)
	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = hudHeight + (r.gameHeight-r.totalGridHeight)/2

	r.drawGrid(s)
	if s.HasFood {
		r.drawCell(s.Food, rl.Red)
	}
	r.drawSnake(s)
	r.drawHUD(s, fontSize)
	r.drawOverlay(s, fontSize)
	r.drawStatsPanel(history, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) drawGrid(s game.Snapshot) {
	border := rl.DarkGray
	if s.Wrap {
		border = rl.SkyBlue
	}
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, border)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	for x := 0; x < s.Grid.Width; x++ {
		for y := 0; y < s.Grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Color{R: 30, G: 30, B: 30, A: 255})
		}
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(r.offsetX+int32(p.X)*r.cellSize, r.offsetY+int32(p.Y)*r.cellSize, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawSnake(s game.Snapshot) {
	// Tail first so the head is drawn on top
	for i := len(s.Body) - 1; i >= 0; i-- {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		r.drawCell(s.Body[i], color)
	}

	head, ok := s.Head()
	if !ok {
		return
	}
	// Direction indicator
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2
	switch s.Direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(s game.Snapshot, fontSize int32) {
	wrap := "off"
	if s.Wrap {
		wrap = "on"
	}
	hud := fmt.Sprintf("Score: %d   Best: %d   Speed: %d   Difficulty: %s   Wrap: %s",
		s.Score, s.HighScore, s.SpeedLevel, s.Difficulty, wrap)
	rl.DrawText(hud, borderPadding, (hudHeight-fontSize)/2, fontSize, rl.White)
}

func (r *Renderer) drawOverlay(s game.Snapshot, fontSize int32) {
	var title, hint string
	switch s.State {
	case types.Waiting:
		title, hint = "SNAKE", "Press Enter to start"
	case types.Paused:
		title, hint = "PAUSED", "Press P to resume"
	case types.GameOver:
		title, hint = fmt.Sprintf("GAME OVER  -  %d", s.Score), "Press Enter or R to play again"
	case types.Running:
		return
	}

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, shadeColor)
	big := fontSize * 3
	centerY := r.offsetY + r.totalGridHeight/2
	titleWidth := rl.MeasureText(title, big)
	rl.DrawText(title, r.offsetX+(r.totalGridWidth-titleWidth)/2, centerY-big, big, rl.White)
	hintWidth := rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, r.offsetX+(r.totalGridWidth-hintWidth)/2, centerY+fontSize, fontSize, rl.LightGray)
}

func (r *Renderer) drawStatsPanel(history *stats.History, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)
	if history == nil {
		return
	}

	lines := []string{
		"Sessions:",
		fmt.Sprintf("Games: %d", history.GamesPlayed()),
		fmt.Sprintf("Best: %d", history.MaxScore()),
		fmt.Sprintf("Avg: %.1f", history.AverageScore()),
		fmt.Sprintf("Median: %.1f", history.MedianScore()),
		fmt.Sprintf("Avg time: %.1fs", history.AverageDuration()),
		fmt.Sprintf("Longest: %.1fs", history.MaxDuration()),
	}
	for i, line := range lines {
		x := statsX + 5
		if i == 0 {
			x = statsX
		}
		rl.DrawText(line, x, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawScoreGraph(history, statsX, fontSize)
}

func (r *Renderer) drawScoreGraph(history *stats.History, graphX, fontSize int32) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	scores := history.Scores()
	if len(scores) < 2 {
		return
	}
	maxScore := max(history.MaxScore(), 1)
	slots := float32(stats.DefaultCapacity)
	if n := float32(len(scores)); n > slots {
		slots = n
	}

	yFor := func(score float64) int32 {
		return graphY + graphHeight - int32(float32(graphHeight)*float32(score)/float32(maxScore))
	}
	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/slots)
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/slots)
		rl.DrawLine(x1, yFor(float64(scores[j-1])), x2, yFor(float64(scores[j])), snakeColor)
	}

	// Dashed average line
	avgY := yFor(history.AverageScore())
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}
