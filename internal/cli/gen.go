package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"regcanon/internal/reggen"
)

func newGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print random expressions",
		Long: `Print random expressions, one per line. The same seed prints the same
expressions. Output can be piped into canon.`,
		Example: `  regcanon gen --count 5 --alphabet 3 --star-height 2 --seed 7
  regcanon gen --count 1000 | regcanon canon`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := fromContext(cmd.Context()).cfg.Gen
			g, err := reggen.New(reggen.Params{
				AlphabetSize: gc.Alphabet,
				StarHeight:   gc.StarHeight,
				Letters:      gc.Letters,
				Seed:         gc.Seed,
			})
			if err != nil {
				return err
			}
			for _, e := range g.GenerateN(gc.Count) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 10, "Number of expressions")
	cmd.Flags().Int("alphabet", 2, "Alphabet size (letters a.. then A..)")
	cmd.Flags().Int("star-height", 2, "Maximum star nesting, plus one")
	cmd.Flags().Int("letters", 6, "Upper bound on letters per expression")
	cmd.Flags().Uint64("seed", 1, "Random seed")
	return cmd
}
