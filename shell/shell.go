// Package shell hosts the engine: it paces ticks from a frame loop, routes
// player commands, records finished sessions and optionally lets the
// Q-learning agent steer.
package shell

import (
	"io"
	"log"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/input"
	"gridsnake/game/types"
	"gridsnake/stats"
)

// Shell owns one engine and everything around it. Like the engine it is not
// safe for concurrent use; the frame loop drives it from one goroutine.
type Shell struct {
	engine    *game.Engine
	scheduler Scheduler
	history   *stats.History
	logger    *log.Logger
	pilot     *ai.QLearning
	now       func() time.Time

	latest  game.Snapshot
	started time.Time
	closed  bool
}

var _ input.Controller = (*Shell)(nil)

// New builds a shell in the Waiting state. A zero seed is derived from the
// clock. A nil logger discards output.
func New(cfg Config, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Shell{
		history: stats.NewHistory(cfg.HistorySize),
		logger:  logger,
		now:     time.Now,
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(s.now().UnixNano())
	}
	s.engine = game.NewEngine(
		game.WithSeed(seed),
		game.WithDifficulty(cfg.Difficulty),
		game.WithWrap(cfg.Wrap),
		game.WithListener(game.ListenerFunc(s.onStateChanged)),
	)
	if cfg.Autopilot {
		s.pilot = ai.NewQLearning(seed)
	}
	s.latest = s.engine.Snapshot()
	s.logger.Printf("ready: difficulty=%s wrap=%t seed=%d autopilot=%t", cfg.Difficulty, cfg.Wrap, seed, cfg.Autopilot)
	return s
}

// onStateChanged runs inside engine calls and must not call back into it.
func (s *Shell) onStateChanged(snap game.Snapshot) {
	prev := s.latest
	s.latest = snap

	switch {
	case snap.State == types.GameOver && prev.State != types.GameOver:
		s.scheduler.Stop()
		s.record(snap, true)
		s.logger.Printf("session %s over: score=%d food=%d length=%d duration=%s",
			snap.SessionID, snap.Score, snap.FoodEaten, snap.Length(), s.now().Sub(s.started).Round(time.Millisecond))
	case snap.State == types.Paused && prev.State == types.Running:
		s.logger.Printf("session %s paused", snap.SessionID)
	case snap.State == types.Running && prev.State == types.Paused:
		s.logger.Printf("session %s resumed", snap.SessionID)
	}
}

func (s *Shell) record(snap game.Snapshot, completed bool) {
	s.history.Add(stats.GameRecord{
		SessionID:  snap.SessionID,
		StartTime:  s.started,
		EndTime:    s.now(),
		Score:      snap.Score,
		FoodEaten:  snap.FoodEaten,
		Length:     snap.Length(),
		Difficulty: snap.Difficulty,
		Wrap:       snap.Wrap,
		Completed:  completed,
	})
}

// inProgress reports whether a session has started and not ended.
func (s *Shell) inProgress() bool {
	return s.latest.State == types.Running || s.latest.State == types.Paused
}

// Step is called once per frame. With the autopilot on it also restarts
// finished sessions and steers before each tick. It reports whether a tick ran.
func (s *Shell) Step(now time.Time) bool {
	if s.pilot != nil && !s.inProgress() {
		s.restartAt(now)
	}
	if !s.scheduler.Due(now) {
		return false
	}

	prev := s.latest
	if s.pilot != nil && prev.State == types.Running {
		s.engine.SetDesiredDirection(s.pilot.Steer(prev))
	}
	interval := s.engine.Tick()
	if s.pilot != nil {
		s.pilot.Observe(prev, s.latest)
	}
	if s.scheduler.Running() {
		s.scheduler.Reset(now, millis(interval))
	}
	return true
}

// Handle applies a decoded player command.
func (s *Shell) Handle(cmd input.Command) bool {
	return input.Dispatch(s, cmd)
}

// Restart abandons any session in progress and starts a fresh one.
func (s *Shell) Restart() {
	s.restartAt(s.now())
}

func (s *Shell) restartAt(now time.Time) {
	if s.inProgress() {
		s.record(s.latest, false)
		s.logger.Printf("session %s abandoned: score=%d", s.latest.SessionID, s.latest.Score)
	}
	s.scheduler.Stop()
	s.started = now
	s.engine.StartNewGame()
	s.scheduler.Start(now, millis(s.engine.CurrentInterval()))
	s.logger.Printf("session %s started: difficulty=%s wrap=%t", s.latest.SessionID, s.latest.Difficulty, s.latest.Wrap)
}

// Close records an unfinished session and stops ticking. It is safe to call
// more than once.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.inProgress() {
		s.record(s.latest, false)
	}
	s.scheduler.Stop()
	s.logger.Printf("closing: games=%d best=%d average=%.1f", s.history.GamesPlayed(), s.history.MaxScore(), s.history.AverageScore())
}

func (s *Shell) State() types.GameState {
	return s.engine.State()
}

func (s *Shell) SetDesiredDirection(dir types.Direction) {
	s.engine.SetDesiredDirection(dir)
}

func (s *Shell) TogglePause() {
	s.engine.TogglePause()
}

func (s *Shell) Difficulty() types.Difficulty {
	return s.engine.Difficulty()
}

func (s *Shell) SetDifficulty(d types.Difficulty) {
	s.engine.SetDifficulty(d)
	s.logger.Printf("difficulty set to %s", d)
}

func (s *Shell) WrapMode() bool {
	return s.engine.WrapMode()
}

func (s *Shell) SetWrapMode(wrap bool) {
	s.engine.SetWrapMode(wrap)
	s.logger.Printf("wrap mode set to %t", wrap)
}

// Snapshot is the latest state reported by the engine.
func (s *Shell) Snapshot() game.Snapshot {
	return s.latest
}

func (s *Shell) History() *stats.History {
	return s.history
}

// Autopilot returns the steering agent, or nil when the player steers.
func (s *Shell) Autopilot() *ai.QLearning {
	return s.pilot
}

// Scheduler exposes tick pacing for display.
func (s *Shell) Scheduler() *Scheduler {
	return &s.scheduler
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
