package terminal

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instrument wraps all terminal methods to instrument the underlying calls.
func Instrument(t Terminal) Terminal { return &metrics{t} }

var (
	terminalCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "terminal",
			Name:      "calls",
			Help:      "Calls processed by the terminal backend.",
		},
		[]string{"method"},
	)
	terminalErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "terminal",
			Name:      "errors_total",
			Help:      "Terminal calls that returned an error.",
		},
		[]string{"method"},
	)
	keysRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "terminal",
			Name:      "keys_total",
			Help:      "Recognised keys read from the terminal.",
		},
		[]string{"key"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(terminalCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func countError(method string, err error) {
	if err != nil {
		terminalErrors.WithLabelValues(method).Inc()
	}
}

func init() {
	prometheus.MustRegister(terminalCalls, terminalErrors, keysRead)
}

type metrics struct{ t Terminal }

func (m *metrics) Setup() error {
	defer instrument("Setup")()
	err := m.t.Setup()
	countError("Setup", err)
	return err
}

func (m *metrics) Cleanup() {
	defer instrument("Cleanup")()
	m.t.Cleanup()
}

func (m *metrics) PollInput() (Key, error) {
	defer instrument("PollInput")()
	k, err := m.t.PollInput()
	countError("PollInput", err)
	if k != KeyNone {
		keysRead.WithLabelValues(k.String()).Inc()
	}
	return k, err
}

func (m *metrics) WriteGlyph(x, y int, ch rune) error {
	defer instrument("WriteGlyph")()
	err := m.t.WriteGlyph(x, y, ch)
	countError("WriteGlyph", err)
	return err
}

func (m *metrics) Size() (int, int, error) {
	defer instrument("Size")()
	w, h, err := m.t.Size()
	countError("Size", err)
	return w, h, err
}
