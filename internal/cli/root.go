// Package cli provides the command-line interface for regcanon.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"regcanon/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// appKey is used to store the loaded settings in the command context.
type appKey struct{}

type app struct {
	cfg *config.Config
	log *slog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "regcanon",
		Short: "Canonical forms and derivatives of regular expressions",
		Long: `regcanon reduces regular expressions over literals, concatenation,
alternation and Kleene star to a canonical form, takes Brzozowski
derivatives, and decides language equivalence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			logger.Debug("configuration loaded", "workers", cfg.Workers, "max_states", cfg.MaxStates)
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{cfg: cfg, log: logger}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./regcanon.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newCanonCommand())
	rootCmd.AddCommand(newDeriveCommand())
	rootCmd.AddCommand(newEquivCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newGenCommand())
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// fromContext returns the settings stored by PersistentPreRunE, or defaults
// when a command runs detached from the root.
func fromContext(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey{}).(*app); ok {
		return a
	}
	return &app{
		cfg: &config.Config{MaxStates: 10000, LogLevel: "warn", LogFormat: "text"},
		log: slog.New(slog.DiscardHandler),
	}
}
