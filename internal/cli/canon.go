package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"regcanon/internal/driver"
)

// ErrLinesFailed is returned by canon when at least one input line did not
// parse. The output still holds a line for every input line.
var ErrLinesFailed = errors.New("some expressions could not be parsed")

func newCanonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon [file]",
		Short: "Print the canonical form of each input line",
		Long: `Read one expression per line from file, or from standard input when no
file is given, and print its canonical form. A line that fails to parse
produces "error: line N: ..." in its place.`,
		Example: `  echo 'aqb|arb|ab' | regcanon canon
  regcanon canon --workers 4 exprs.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			d := &driver.Driver{Workers: a.cfg.Workers, Logger: a.log}
			sum, err := d.Run(cmd.Context(), in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if sum.Failed > 0 {
				return fmt.Errorf("%w: %d of %d lines", ErrLinesFailed, sum.Failed, sum.Lines)
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 0, "Number of lines canonicalized in parallel (0 = all CPUs)")
	return cmd
}
