package commands

import (
	"github.com/moasq/xcodeproj-modify/internal/config"
	"github.com/moasq/xcodeproj-modify/internal/logger"
	"github.com/moasq/xcodeproj-modify/internal/modify"
	"github.com/moasq/xcodeproj-modify/internal/terminal"
	"github.com/spf13/cobra"
)

// cfg is loaded once per invocation by setup.
var cfg *config.Config

var closeLog = func() error { return nil }

// setup loads configuration and wires logging and terminal output before any
// command runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if !cfg.Color {
		terminal.DisableColor()
	}

	closer, err := logger.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	closeLog = closer
	logger.Debug("starting", "command", cmd.CommandPath(), "args", len(args), "version", Version)
	return nil
}

func newModifier() *modify.Modifier {
	opts := modify.Options{Logger: logger.L()}
	if cfg != nil {
		opts.Output = &cfg.Output
	}
	return modify.New(opts)
}
