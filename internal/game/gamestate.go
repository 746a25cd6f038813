package game

type GameState int

const (
	StatePlaying  GameState = iota
	StateGameOver           // snake hit a wall or itself
	StateWon                // snake filled the whole board
)

// Loop drives the snake at a fixed cadence, decoupled from the render
// rate. Running goes false on quit; a finished game only stops the
// ticking, the final frame stays up until the player quits.
type Loop struct {
	Snake   *Snake
	State   GameState
	Running bool

	interval float64 // seconds between advances
	acc      float64
}

func NewLoop(snake *Snake, interval float64) *Loop {
	return &Loop{
		Snake:    snake,
		State:    StatePlaying,
		Running:  true,
		interval: interval,
	}
}

// HandleEvents applies one frame's worth of input in arrival order.
// Turn requests each overwrite the heading (reversals ignored by the
// snake), so the last accepted request before a tick wins.
func (l *Loop) HandleEvents(events []Event) {
	for _, e := range events {
		switch e.Type {
		case EventTurn:
			l.Snake.ChangeDirection(e.Dir)
		case EventQuit:
			l.Running = false
		}
	}
}

// Update accumulates frame time and advances the snake once per elapsed
// interval. A long frame can yield several ticks so game speed never
// depends on the render rate.
func (l *Loop) Update(dt float64) {
	if l.State != StatePlaying {
		return
	}

	l.acc += dt
	for l.acc >= l.interval {
		l.acc -= l.interval

		before := len(l.Snake.Segments)
		if !l.Snake.Advance() {
			l.State = StateGameOver
			PlaySound(SoundGameOver)
			return
		}
		if l.Snake.State == SnakeWon {
			l.State = StateWon
			PlaySound(SoundWin)
			return
		}
		if len(l.Snake.Segments) > before {
			PlaySound(SoundEat)
		}
	}
}
