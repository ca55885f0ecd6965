package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/edaniels/golog"
	"go.uber.org/zap"

	"github.com/CodedInternet/golinact/link"
	"github.com/CodedInternet/golinact/protocol"
	"github.com/CodedInternet/golinact/ui"
)

type EnvConfig struct {
	DEBUG   bool   `env:"DEBUG" envDefault:"0"`
	LOGFILE string `env:"LOGFILE" envDefault:"golinact.log"`
}

const usageMessage = "supply path argument. Example: /dev/ttyACM0"

// portPathFromArgs extracts the serial device path from the process arguments.
func portPathFromArgs(args []string) (path string, ok bool) {
	if len(args) < 2 {
		return "", false
	}
	return args[1], true
}

// newLogger builds a file backed logger; the TUI owns the terminal so nothing
// may write to stdout or stderr while it runs.
func newLogger(cfg *EnvConfig) (golog.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.DEBUG {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.OutputPaths = []string{cfg.LOGFILE}
	zcfg.ErrorOutputPaths = []string{cfg.LOGFILE}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func main() {
	cfg := new(EnvConfig)
	if err := env.Parse(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	// all startup failures happen before the TUI takes over the terminal, so
	// every exit path below leaves the terminal untouched
	portPath, ok := portPathFromArgs(os.Args)
	if !ok {
		fmt.Fprintln(os.Stderr, usageMessage)
		return
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	port, err := link.Open(portPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't open %s: %v\n", portPath, err)
		return
	}
	defer port.Close()

	cmds := make(chan protocol.Command, link.CMD_QUEUE_DEPTH)
	status := make(chan string, link.STATUS_QUEUE_DEPTH)
	samples := make(chan float64, link.TELEMETRY_QUEUE_DEPTH)

	// background tasks hold the port for the life of the process and are
	// abandoned on exit; outstanding I/O has no side effects worth draining
	go link.NewTelemetryReader(port, samples, logger).Run()
	go link.NewDispatcher(port, cmds, status, logger).Run()

	program := tea.NewProgram(
		ui.NewModel(cmds, status, samples),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		logger.Errorw("ui terminated", "error", err)
		fmt.Fprintln(os.Stderr, err)
	}
}
