package driver

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, d *Driver, in string) (string, Summary) {
	t.Helper()
	var out bytes.Buffer
	sum, err := d.Run(context.Background(), strings.NewReader(in), &out)
	require.NoError(t, err)
	return out.String(), sum
}

func TestRunCanonicalizesEachLine(t *testing.T) {
	out, sum := run(t, &Driver{}, "(a|a)\n(aqb|arb|ab)\nc|b|a\n\n(a*)*\n")
	assert.Equal(t, "a\na(|q|r)b\na|b|c\n\n(a)*\n", out)
	assert.Equal(t, Summary{Lines: 5}, sum)
}

func TestRunReportsSyntaxErrors(t *testing.T) {
	out, sum := run(t, &Driver{Workers: 2}, "a\n(b\n*c\r\nd)\n")
	assert.Equal(t, strings.Join([]string{
		"a",
		"error: line 2: [col 3] unexpected end of input, expected ')'",
		"error: line 3: [col 1] expected something before '*'",
		"error: line 4: [col 2] unbalanced ')'",
		"",
	}, "\n"), out)
	assert.Equal(t, Summary{Lines: 4, Failed: 3}, sum)
}

func TestRunKeepsOrderUnderParallelism(t *testing.T) {
	var in, want strings.Builder
	for i := 0; i < 200; i++ {
		c := rune('a' + i%26)
		fmt.Fprintf(&in, "%c|%c%c\n", c, c, c)
		fmt.Fprintf(&want, "%c(|%c)\n", c, c)
	}
	out, sum := run(t, &Driver{Workers: 8}, in.String())
	assert.Equal(t, want.String(), out)
	assert.Equal(t, 200, sum.Lines)
}

func TestRunNoTrailingNewline(t *testing.T) {
	out, sum := run(t, &Driver{}, "ab|ac")
	assert.Equal(t, "a(b|c)\n", out)
	assert.Equal(t, 1, sum.Lines)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Driver{}).Run(ctx, strings.NewReader("a\nb\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
