package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"regcanon/internal/regexlib"
)

func newDeriveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <expr> <word>",
		Short: "Show the derivative after each symbol of a word",
		Example: `  regcanon derive '(a|b)*abb' abb
  regcanon derive 'a*' ''`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := regexlib.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid expression: %w", err)
			}
			accepted := renderDerivation(cmd.OutOrStdout(), n, args[1])
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "accepted: %t\n", accepted)
			return nil
		},
	}
}

// renderDerivation prints one row per consumed symbol and reports whether
// the word is accepted. It stops at the first empty derivative.
func renderDerivation(w io.Writer, n *regexlib.Node, word string) bool {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Step", "Symbol", "Derivative", "Nullable"})

	cur := regexlib.Reduce(n)
	t.AppendRow(table.Row{0, "", display(cur), cur.Nullable()})
	step := 0
	for _, c := range word {
		step++
		d := regexlib.Derive(cur, c)
		if d == nil {
			t.AppendRow(table.Row{step, string(c), "∅", false})
			cur = nil
			break
		}
		cur = regexlib.Reduce(d)
		t.AppendRow(table.Row{step, string(c), display(cur), cur.Nullable()})
	}
	t.Render()
	return cur != nil && cur.Nullable()
}

func display(n *regexlib.Node) string {
	if n.IsEmpty() {
		return "ε"
	}
	return regexlib.Serialize(n)
}
