package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"regcanon/internal/equiv"
)

func newEquivCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equiv <expr> <expr>",
		Short: "Decide whether two expressions denote the same language",
		Example: `  regcanon equiv '(a*b*)*' '(a|b)*'
  regcanon equiv --max-states 500 '(a|b)*abb' '(a|b)*bb'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			c := &equiv.Checker{MaxStates: a.cfg.MaxStates, Logger: a.log}
			res, err := c.CheckStrings(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			a.log.Info("equivalence decided", "equivalent", res.Equivalent, "states", res.States)
			if res.Equivalent {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "not equivalent (witness %q)\n", res.Witness)
			return nil
		},
	}
	cmd.Flags().Int("max-states", equiv.DefaultMaxStates, "Give up after visiting this many state pairs")
	return cmd
}
