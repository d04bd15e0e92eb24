package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regcanon/internal/equiv"
	"regcanon/internal/interpreter"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script of canon, derive, match and equiv statements",
		Long: `Run a script. Each statement prints one line:

  let e = "(a|b)*abb"
  canon  "aqb|arb|ab"
  derive e "ab"
  match  e "aabb"
  equiv  "(a*b*)*" "(a|b)*"

Statements are separated by newlines or ';'. '#' starts a comment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			prog, err := interpreter.Parse(args[0], string(data))
			if err != nil {
				return err
			}
			a.log.Debug("script parsed", "file", args[0], "statements", len(prog.Statements))

			rt := &interpreter.Context{
				Out:     cmd.OutOrStdout(),
				Checker: &equiv.Checker{MaxStates: a.cfg.MaxStates, Logger: a.log},
			}
			return prog.Exec(cmd.Context(), rt)
		},
	}
	cmd.Flags().Int("max-states", equiv.DefaultMaxStates, "State limit for equiv statements")
	return cmd
}
