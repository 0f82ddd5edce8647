package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/battlesnakeio/termsnake/terminal"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.log")

	closeLog, err := setupLogging(path, "debug")
	require.NoError(t, err)
	log.WithField("round", "abc").Info("round started")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"round":"abc"`)
	require.Contains(t, string(data), `"msg":"round started"`)
	require.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetupLoggingDiscards(t *testing.T) {
	closeLog, err := setupLogging("", "info")
	require.NoError(t, err)
	defer closeLog()
	require.Equal(t, io.Discard, log.StandardLogger().Out)
}

func TestSetupLoggingBadLevel(t *testing.T) {
	_, err := setupLogging("", "chatty")
	require.Error(t, err)
}

type nopTerminal struct{}

func (nopTerminal) Setup() error { return nil }
func (nopTerminal) Cleanup()     {}

func (nopTerminal) PollInput() (terminal.Key, error) { return terminal.KeyRight, nil }

func (nopTerminal) WriteGlyph(x, y int, ch rune) error { return nil }

func (nopTerminal) Size() (width, height int, err error) { return 10, 10, nil }

func TestLogMetrics(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	log.SetLevel(log.InfoLevel)

	term := terminal.Instrument(nopTerminal{})
	_, err := term.PollInput()
	require.NoError(t, err)

	logMetrics()

	found := false
	for _, e := range hook.AllEntries() {
		if e.Data["metric"] == "snake_terminal_keys_total" && e.Data["key"] == "right" {
			found = true
		}
	}
	require.True(t, found, "keys metric not logged")
}
