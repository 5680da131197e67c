package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Engine runs one snake session at a time. It does no locking: the caller
// serializes every call, and listeners must not call back into the engine.
type Engine struct {
	grid         types.Grid
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	snake    *entity.Snake
	food     *entity.Food
	state    types.GameState
	wrapMode bool
	ticks    uint64

	random       entity.RandomSource
	listener     Listener
	newSessionID func() string
	sessionID    string
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand injects the source used for food placement.
func WithRand(r entity.RandomSource) Option {
	return func(e *Engine) { e.random = r }
}

// WithSeed seeds the default food placement source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.random = rand.New(rand.NewSource(seed)) }
}

func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

func WithGrid(g types.Grid) Option {
	return func(e *Engine) { e.grid = g }
}

func WithDifficulty(d types.Difficulty) Option {
	return func(e *Engine) { e.stateMgr.SetDifficulty(d) }
}

func WithWrap(wrap bool) Option {
	return func(e *Engine) { e.wrapMode = wrap }
}

// WithSessionIDs replaces the uuid generator used to label sessions.
func WithSessionIDs(next func() string) Option {
	return func(e *Engine) { e.newSessionID = next }
}

// NewEngine returns an engine in the Waiting state on the default 40x25 grid
// at Medium difficulty.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		grid:         types.DefaultGrid,
		stateMgr:     manager.NewStateManager(types.Medium),
		state:        types.Waiting,
		newSessionID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.random == nil {
		e.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	e.collisionMgr = manager.NewCollisionManager(e.grid)
	return e
}

func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// StartNewGame places a length-1 snake at the grid center heading right,
// resets score and food count, spawns food and switches to Running.
func (e *Engine) StartNewGame() {
	e.snake = entity.NewSnake(e.grid.Center(), types.Right)
	e.food = entity.NewFood(e.random)
	e.stateMgr.Reset()
	e.ticks = 0
	e.sessionID = e.newSessionID()
	e.food.Respawn(e.grid.Width, e.grid.Height, e.snake)
	e.state = types.Running
	e.notifyListener()
}

// Tick advances the session one step and returns the delay in milliseconds
// before the next tick. It mutates nothing unless the state is Running.
func (e *Engine) Tick() int {
	if e.state != types.Running {
		return e.CurrentInterval()
	}
	e.ticks++

	e.snake.FlushPendingDirection()
	nextHead, ok := e.collisionMgr.NextHead(e.snake.GetHead(), e.snake.CurrentDirection(), e.wrapMode)
	if !ok {
		e.endGame()
		return e.CurrentInterval()
	}

	ate := e.collisionMgr.IsFoodCollision(nextHead, e.food)
	e.snake.MoveTo(nextHead, ate)

	if e.collisionMgr.IsSelfCollision(e.snake) {
		e.endGame()
		return e.CurrentInterval()
	}

	if ate {
		e.stateMgr.RecordFood()
		e.food.Respawn(e.grid.Width, e.grid.Height, e.snake)
	}

	e.notifyListener()
	return e.CurrentInterval()
}

// TogglePause flips Running and Paused. Listeners are notified either way.
func (e *Engine) TogglePause() {
	switch e.state {
	case types.Running:
		e.state = types.Paused
	case types.Paused:
		e.state = types.Running
	case types.Waiting, types.GameOver:
	}
	e.notifyListener()
}

// SetDesiredDirection queues a turn. Ignored unless Running, so nothing
// queued during a pause fires on resume.
func (e *Engine) SetDesiredDirection(dir types.Direction) {
	if e.snake == nil || e.state != types.Running {
		return
	}
	e.snake.SetDesiredDirection(dir)
}

// SetDifficulty takes effect from the next tick.
func (e *Engine) SetDifficulty(d types.Difficulty) {
	e.stateMgr.SetDifficulty(d)
	e.notifyListener()
}

// SetWrapMode takes effect from the next tick.
func (e *Engine) SetWrapMode(wrap bool) {
	e.wrapMode = wrap
	e.notifyListener()
}

func (e *Engine) endGame() {
	e.state = types.GameOver
	e.notifyListener()
}

// CurrentInterval is the tick period for the current difficulty and food count.
func (e *Engine) CurrentInterval() int {
	return e.stateMgr.CurrentInterval()
}

func (e *Engine) notifyListener() {
	if e.listener != nil {
		e.listener.OnStateChanged(e.Snapshot())
	}
}

// Body returns the snake head-first, or nil before the first game.
func (e *Engine) Body() []types.Point {
	if e.snake == nil {
		return nil
	}
	return e.snake.Body()
}

// Food returns the food cell; ok is false before the first game.
func (e *Engine) Food() (pos types.Point, ok bool) {
	if e.food == nil {
		return types.Point{}, false
	}
	return e.food.Position(), true
}

// Direction is the direction of the last committed move.
func (e *Engine) Direction() types.Direction {
	if e.snake == nil {
		return types.Right
	}
	return e.snake.CurrentDirection()
}

func (e *Engine) State() types.GameState { return e.state }
func (e *Engine) Score() int { return e.stateMgr.GetScore() }
func (e *Engine) HighScore() int { return e.stateMgr.GetHighScore() }
func (e *Engine) FoodEaten() int { return e.stateMgr.GetFoodEaten() }
func (e *Engine) WrapMode() bool { return e.wrapMode }
func (e *Engine) Difficulty() types.Difficulty { return e.stateMgr.GetDifficulty() }
func (e *Engine) Grid() types.Grid { return e.grid }
func (e *Engine) SessionID() string { return e.sessionID }
