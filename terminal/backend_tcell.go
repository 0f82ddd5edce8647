package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Tcell draws through tcell. Like termbox it reads Ctrl-C as a key.
type Tcell struct {
	onInterrupt func()
	newScreen   func() (tcell.Screen, error)
	screen      tcell.Screen
	events      chan tcell.Event
	done        chan struct{}
	cleanup     sync.Once
	style       tcell.Style
}

// NewTcell returns an uninitialised tcell backend.
func NewTcell(onInterrupt func()) *Tcell {
	return &Tcell{
		onInterrupt: onInterrupt,
		newScreen:   tcell.NewScreen,
		events:      make(chan tcell.Event, eventQueueSize),
		done:        make(chan struct{}),
		style:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// Setup creates and initialises the screen.
func (t *Tcell) Setup() error {
	screen, err := t.newScreen()
	if err != nil {
		return setupError(err, "tcell")
	}
	if err := screen.Init(); err != nil {
		return setupError(err, "tcell init")
	}
	t.screen = screen
	screen.HideCursor()
	screen.Clear()
	screen.Show()
	go t.pump()
	return nil
}

func (t *Tcell) pump() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// screen finalised
			return
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

// Cleanup finalises the screen and waits for the event pump to exit.
func (t *Tcell) Cleanup() {
	t.cleanup.Do(func() {
		if t.screen == nil {
			return
		}
		t.screen.Fini()
		<-t.done
	})
}

// PollInput returns the next queued key without blocking.
func (t *Tcell) PollInput() (Key, error) {
	select {
	case ev := <-t.events:
		return t.decode(ev)
	default:
		return KeyNone, nil
	}
}

func (t *Tcell) decode(ev tcell.Event) (Key, error) {
	switch ev := ev.(type) {
	case *tcell.EventError:
		return KeyNone, &IOError{Op: "poll", Err: ev}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return KeyEscape, nil
		case tcell.KeyCtrlC:
			if t.onInterrupt != nil {
				t.onInterrupt()
			}
			return KeyNone, nil
		case tcell.KeyRune:
			return keyFromRune(ev.Rune()), nil
		}
	}
	return KeyNone, nil
}

// WriteGlyph sets one cell and shows it.
func (t *Tcell) WriteGlyph(x, y int, ch rune) error {
	if t.screen == nil {
		return &IOError{Op: "write", Err: errors.New("screen not initialised")}
	}
	t.screen.SetContent(x, y, ch, nil, t.style)
	t.screen.Show()
	return nil
}

// Size reports the screen size.
func (t *Tcell) Size() (int, int, error) {
	if t.screen == nil {
		return 0, 0, setupError(errors.New("screen not initialised"), "detect size")
	}
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, setupError(errors.Errorf("reported %dx%d", w, h), "detect size")
	}
	return w, h, nil
}
