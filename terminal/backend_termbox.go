package terminal

import (
	"sync"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const eventQueueSize = 16

// Termbox draws through termbox-go. termbox owns the tty in raw mode, so
// Ctrl-C arrives as a key and is forwarded to onInterrupt.
type Termbox struct {
	onInterrupt func()
	poll        func() termbox.Event
	events      chan termbox.Event
	failed      chan error
	err         error
	done        chan struct{}
	cleanup     sync.Once
	started     bool
}

// NewTermbox returns an uninitialised termbox backend.
func NewTermbox(onInterrupt func()) *Termbox {
	return &Termbox{
		onInterrupt: onInterrupt,
		poll:        termbox.PollEvent,
		events:      make(chan termbox.Event, eventQueueSize),
		failed:      make(chan error, 1),
		done:        make(chan struct{}),
	}
}

// Setup initialises termbox and starts pumping events.
func (t *Termbox) Setup() error {
	if err := termbox.Init(); err != nil {
		return setupError(err, "termbox")
	}
	t.started = true
	go t.pump()
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		t.Cleanup()
		return setupError(err, "termbox clear")
	}
	if err := termbox.Flush(); err != nil {
		t.Cleanup()
		return setupError(err, "termbox flush")
	}
	return nil
}

// pump runs until Interrupt or the first read error. A failed tty keeps
// failing, so the error is reported once and the pump stops.
func (t *Termbox) pump() {
	defer close(t.done)
	for {
		ev := t.poll()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			t.failed <- ev.Err
			return
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

// Cleanup stops the event pump and closes termbox.
func (t *Termbox) Cleanup() {
	t.cleanup.Do(func() {
		if !t.started {
			return
		}
		select {
		case <-t.done:
			// Interrupt blocks when nothing is polling
		default:
			termbox.Interrupt()
			<-t.done
		}
		termbox.Close()
	})
}

// PollInput returns the next queued event without blocking. Once the pump
// has failed, every call after the queued keys returns the read error.
func (t *Termbox) PollInput() (Key, error) {
	select {
	case ev := <-t.events:
		return t.decode(ev)
	default:
	}
	if t.err == nil {
		select {
		case err := <-t.failed:
			t.err = &IOError{Op: "poll", Err: err}
		default:
		}
	}
	return KeyNone, t.err
}

func (t *Termbox) decode(ev termbox.Event) (Key, error) {
	if ev.Type != termbox.EventKey {
		return KeyNone, nil
	}
	switch ev.Key {
	case termbox.KeyEsc:
		return KeyEscape, nil
	case termbox.KeyCtrlC:
		if t.onInterrupt != nil {
			t.onInterrupt()
		}
		return KeyNone, nil
	}
	return keyFromRune(ev.Ch), nil
}

// WriteGlyph sets one cell and flushes it to the screen.
func (t *Termbox) WriteGlyph(x, y int, ch rune) error {
	termbox.SetCell(x, y, ch, termbox.ColorGreen, termbox.ColorDefault)
	if err := termbox.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Size reports the termbox back buffer size.
func (t *Termbox) Size() (int, int, error) {
	w, h := termbox.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, setupError(errors.Errorf("reported %dx%d", w, h), "detect size")
	}
	return w, h, nil
}
