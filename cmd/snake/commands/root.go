package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/terminal"
	"github.com/battlesnakeio/termsnake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "snake",
	Short:         "snake plays snake in the terminal",
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		return play()
	},
}

var (
	backend  string
	logFile  string
	logLevel string
)

// Execute runs the root command
func Execute() {
	rootCmd.Flags().StringVar(&backend, "backend", config.Backend, "terminal backend: ansi, termbox or tcell")
	rootCmd.Flags().StringVar(&logFile, "log-file", config.LogFile, "write JSON logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.LogLevel, "log level")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// play runs one round. The terminal is restored before play returns, on
// every path that got past Setup.
func play() error {
	closeLog, err := setupLogging(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := listenForSignals(ctx, cancel)
	defer stop()

	t, err := terminal.New(backend, cancel)
	if err != nil {
		return err
	}
	t = terminal.Instrument(t)

	if err := t.Setup(); err != nil {
		log.WithError(err).WithField("backend", backend).Error("terminal setup failed")
		return err
	}
	defer t.Cleanup()

	width, height, err := t.Size()
	if err != nil {
		log.WithError(err).Error("terminal size unavailable")
		return err
	}

	opts := game.Options{TickInterval: game.DefaultTickInterval}
	if config.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(int64(config.Seed)))
	}
	g, err := game.New(t, width, height, opts)
	if err != nil {
		log.WithError(err).Error("unable to start round")
		return err
	}

	err = g.Run(ctx)
	stats := g.Stats()
	entry := log.WithFields(log.Fields{
		"round":  g.ID,
		"turn":   stats.Turn,
		"length": stats.Length,
		"eaten":  stats.Eaten,
		"status": stats.Status,
	})
	if err != nil {
		entry.WithError(err).Error("round ended on terminal error")
	} else {
		entry.Info("round over")
	}
	logMetrics()
	return err
}

// listenForSignals cancels the round on SIGINT or SIGTERM. It never touches
// game state; cancel is safe to call repeatedly.
func listenForSignals(ctx context.Context, cancel context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.WithField("signal", sig.String()).Info("cancelling round")
			cancel()
		case <-ctx.Done():
		}
	}()
	return func() { signal.Stop(sigs) }
}

// setupLogging points logrus at path. With no path logs are discarded so
// nothing lands on the game screen.
func setupLogging(path, level string) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.JSONFormatter{})

	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
