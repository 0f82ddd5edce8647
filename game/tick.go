package game

import (
	"github.com/battlesnakeio/termsnake/display"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/terminal"
	log "github.com/sirupsen/logrus"
)

// Tick advances a running round by one step:
//  1. find the cell the head moves into, wrapping at the edges
//  2. die if that cell holds the body, the vacating tail excepted
//  3. grow if it holds food
//  4. shift the body and redraw the cells that changed
//  5. respawn food when none is on the board
//
// Tick does nothing unless the round is running.
func (g *Game) Tick() error {
	if g.status != StatusRunning {
		return nil
	}
	g.turn++

	next := g.snake.NextHead(g.width, g.height)
	grow := g.buffer.Get(next) == display.Food

	if death := rules.CheckForDeath(g.turn, g.snake, next, grow); death != nil {
		g.status = StatusDead
		g.death = death
		g.logger.WithFields(g.fields()).
			WithField("cause", death.Cause).
			WithField("cell", next).
			Info("snake died")
		return nil
	}

	prev := make([]rules.Point, g.snake.Len())
	copy(prev, g.snake.Body)
	g.snake.Advance(next, grow)

	if err := g.redraw(prev); err != nil {
		return err
	}

	if grow {
		g.eaten++
		g.food = nil
		g.logger.WithFields(g.fields()).WithField("food", next).Info("snake ate")
	}
	if g.food == nil {
		return g.spawnFood()
	}
	return nil
}

// redraw blanks the cells in prev the snake no longer covers, then writes
// each snake cell whose marker changed.
func (g *Game) redraw(prev []rules.Point) error {
	covered := make(map[rules.Point]struct{}, g.snake.Len())
	for _, p := range g.snake.Body {
		covered[p] = struct{}{}
	}
	for _, p := range prev {
		if _, ok := covered[p]; ok {
			continue
		}
		if g.buffer.Get(p) == display.Empty {
			continue
		}
		if err := g.buffer.Set(p, display.Empty); err != nil {
			return err
		}
	}
	for i, p := range g.snake.Body {
		want := display.Body
		if i == 0 {
			want = display.Head
		}
		if g.buffer.Get(p) == want {
			continue
		}
		if err := g.buffer.Set(p, want); err != nil {
			return err
		}
	}
	return nil
}

// spawnFood drops food on a random empty cell. A full board is not an error,
// the next tick tries again.
func (g *Game) spawnFood() error {
	p, ok := g.buffer.RandomEmpty()
	if !ok {
		g.logger.WithFields(g.fields()).Debug("no empty cell for food")
		return nil
	}
	return g.placeFood(p)
}

func (g *Game) placeFood(p rules.Point) error {
	if g.buffer.Get(p) != display.Empty {
		return nil
	}
	if err := g.buffer.Set(p, display.Food); err != nil {
		return err
	}
	g.food = &p
	return nil
}

// handleInput reads at most one key and applies it.
func (g *Game) handleInput() error {
	key, err := g.term.PollInput()
	if err != nil {
		return err
	}
	g.apply(key)
	return nil
}

var keyDirections = map[terminal.Key]rules.Direction{
	terminal.KeyUp:    rules.DirectionUp,
	terminal.KeyDown:  rules.DirectionDown,
	terminal.KeyLeft:  rules.DirectionLeft,
	terminal.KeyRight: rules.DirectionRight,
}

// apply changes heading or pause state. Headings are only accepted while
// running, and never the reverse of the current one.
func (g *Game) apply(key terminal.Key) {
	switch key {
	case terminal.KeyNone:
		return
	case terminal.KeyEscape:
		switch g.status {
		case StatusRunning:
			g.status = StatusPaused
		case StatusPaused:
			g.status = StatusRunning
		default:
			return
		}
		g.logger.WithFields(g.fields()).Info("pause toggled")
		return
	}

	dir, ok := keyDirections[key]
	if !ok || g.status != StatusRunning {
		return
	}
	if !g.snake.Turn(dir) {
		g.logger.WithFields(log.Fields{
			"turn":    g.turn,
			"heading": g.snake.Direction,
			"input":   dir,
		}).Debug("reversal ignored")
	}
}
