// Package driver runs the canonicalizer over a stream of expressions, one
// per line, and writes one result line per input line.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"regcanon/internal/regexlib"
)

// Driver settings. The zero value processes lines on all CPUs and logs
// nothing.
type Driver struct {
	Workers int
	Logger  *slog.Logger
}

// Summary counts what Run saw.
type Summary struct {
	Lines  int
	Failed int
}

type result struct {
	out string
	err error
}

// Run reads expressions from r and writes their canonical forms to w, in
// input order. A malformed line produces an "error: line N: ..." line and is
// counted in Summary.Failed; it does not stop the run. The returned error is
// reserved for I/O failures and cancellation.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	lines, err := readLines(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}

	results := make([]result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers())
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = canonicalLine(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Lines: len(lines)}
	bw := bufio.NewWriter(w)
	for i, res := range results {
		if res.err != nil {
			sum.Failed++
			log.Debug("rejected expression", "line", i+1, "input", lines[i], "error", res.err)
			fmt.Fprintf(bw, "error: line %d: %v\n", i+1, res.err)
			continue
		}
		fmt.Fprintln(bw, res.out)
	}
	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("write output: %w", err)
	}
	log.Info("canonicalized input", "lines", sum.Lines, "failed", sum.Failed)
	return sum, nil
}

func (d *Driver) workers() int {
	if d.Workers > 0 {
		return d.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func canonicalLine(line string) result {
	n, err := regexlib.Canonical(line)
	if err != nil {
		return result{err: err}
	}
	return result{out: regexlib.Serialize(n)}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
