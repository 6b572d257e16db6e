// Package cli implements the lifectl command tree.
package cli

import (
	"io"
	"log/slog"

	"lifegrid/internal/config"
	"lifegrid/internal/telemetry"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the lifectl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "lifectl",
		Short: "Run Conway's Game of Life on a torus or an unbounded chunked grid",
		Long: `lifectl evolves Game of Life worlds headlessly.

Worlds are either a fixed-size torus or an unbounded grid that grows in
32x32 chunks as activity approaches unmaterialized space.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML run configuration")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newRunCommand(opts),
		newDumpCommand(opts),
		newSweepCommand(opts),
		newPatternsCommand(),
	)
	return root
}

// load reads the config file and applies the persistent log overrides.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	return telemetry.NewLogger(w, cfg.Log.Level, cfg.Log.Format)
}
