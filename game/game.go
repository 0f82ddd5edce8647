// Package game runs a round of snake. A Game owns the snake, the display
// buffer and the terminal handle; Run drives it one tick at a time until the
// context is cancelled.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/battlesnakeio/termsnake/display"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/terminal"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultTickInterval is the time between two simulation steps.
const DefaultTickInterval = 150 * time.Millisecond

// Terminal is the part of the terminal contract the loop talks to.
type Terminal interface {
	PollInput() (terminal.Key, error)
	WriteGlyph(x, y int, ch rune) error
}

// Options tune a new game. The zero value is a valid configuration.
type Options struct {
	// TickInterval defaults to DefaultTickInterval.
	TickInterval time.Duration
	// Rand drives food placement; seeded from the clock when nil.
	Rand *rand.Rand
	// Snake replaces the centred starting snake.
	Snake *rules.Snake
	// Food places the first food item instead of sampling one.
	Food *rules.Point
	// Glyphs overrides the glyph set chosen for the locale.
	Glyphs *display.GlyphSet
}

// Stats summarise a round.
type Stats struct {
	Turn   int64
	Length int
	Eaten  int
	Status Status
	Death  *rules.Death
}

// Game is one round of snake.
type Game struct {
	ID string

	term     Terminal
	buffer   *display.Buffer
	snake    *rules.Snake
	food     *rules.Point
	status   Status
	death    *rules.Death
	width    int
	height   int
	turn     int64
	eaten    int
	interval time.Duration
	logger   *log.Entry
}

// New creates a round on a width x height board and draws the first frame.
func New(term Terminal, width, height int, opts Options) (*Game, error) {
	buffer, err := display.New(width, height, term)
	if err != nil {
		return nil, err
	}
	if opts.Rand != nil {
		buffer.SetRand(opts.Rand)
	}
	if opts.Glyphs != nil {
		buffer.SetGlyphs(*opts.Glyphs)
	}

	snake := opts.Snake
	if snake == nil {
		snake, err = startingSnake(width, height)
		if err != nil {
			return nil, err
		}
	}

	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	id := uuid.NewV4().String()
	g := &Game{
		ID:       id,
		term:     term,
		buffer:   buffer,
		snake:    snake.Clone(),
		status:   StatusRunning,
		width:    width,
		height:   height,
		interval: interval,
		logger: log.WithFields(log.Fields{
			"round":  id,
			"width":  width,
			"height": height,
		}),
	}

	if err := g.redraw(nil); err != nil {
		return nil, err
	}
	if opts.Food != nil {
		if err := g.placeFood(*opts.Food); err != nil {
			return nil, err
		}
	} else if err := g.spawnFood(); err != nil {
		return nil, err
	}

	g.logger.WithFields(log.Fields{
		"snake":    g.snake.Body,
		"interval": interval,
	}).Info("round started")
	return g, nil
}

// startingSnake centres a snake heading right, or down on a one column
// board.
func startingSnake(width, height int) (*rules.Snake, error) {
	dir := rules.DirectionRight
	if width < rules.InitialLength {
		dir = rules.DirectionDown
	}
	return rules.NewSnake(rules.Point{X: width / 2, Y: height / 2}, dir, width, height)
}

// Run advances the round once per tick until ctx is cancelled. Cancellation
// is only observed between ticks. A nil return means the round was
// cancelled; any error is a terminal I/O failure.
func (g *Game) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(g.interval), 1)
	// the first tick runs immediately; every later one waits a full interval
	limiter.Allow()

	for {
		select {
		case <-ctx.Done():
			g.logger.WithFields(g.fields()).Info("round cancelled")
			return nil
		default:
		}

		switch g.status {
		case StatusRunning:
			if err := g.Tick(); err != nil {
				return err
			}
			if g.status == StatusRunning {
				if err := g.handleInput(); err != nil {
					return err
				}
			}
		case StatusPaused:
			if err := g.handleInput(); err != nil {
				return err
			}
		}

		if err := limiter.Wait(ctx); err != nil {
			// the limiter refuses to wait past the context deadline
			<-ctx.Done()
		}
	}
}

// Status returns the current state of the round.
func (g *Game) Status() Status { return g.status }

// Snake returns a copy of the snake.
func (g *Game) Snake() *rules.Snake { return g.snake.Clone() }

// Food returns the food cell, if any is on the board.
func (g *Game) Food() (rules.Point, bool) {
	if g.food == nil {
		return rules.Point{}, false
	}
	return *g.food, true
}

// Buffer exposes the display buffer for inspection.
func (g *Game) Buffer() *display.Buffer { return g.buffer }

// Stats returns a summary of the round so far.
func (g *Game) Stats() Stats {
	return Stats{
		Turn:   g.turn,
		Length: g.snake.Len(),
		Eaten:  g.eaten,
		Status: g.status,
		Death:  g.death,
	}
}

func (g *Game) fields() log.Fields {
	return log.Fields{
		"turn":   g.turn,
		"length": g.snake.Len(),
		"eaten":  g.eaten,
		"status": g.status,
	}
}
