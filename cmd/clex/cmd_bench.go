package main

import (
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clex/match"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare combinators, regexp and a hand loop on parenthesized runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Int("size", 1<<20, "length of the random input")
	cmd.Flags().Int("reps", 10, "number of timed repetitions")
	cmd.Flags().Int64("seed", 1, "random seed for the input")

	return cmd
}

// parenRun matches "(" followed by at least one byte that is neither
// parenthesis, followed by ")".
var parenRun = match.Seq{
	match.Char("("),
	match.Some(match.Seq{match.Not(match.Char("(")), match.Not(match.Char(")")), match.AnyChar}),
	match.Char(")"),
}

var parenRunRegexp = regexp.MustCompile(`\([^()]+\)`)

// benchInput returns size bytes drawn from "()abcdef".
func benchInput(size int, seed int64) []byte {
	const alphabet = "()abcdef"
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = alphabet[r.Intn(len(alphabet))]
	}
	return buf
}

func countRegexp(src []byte) int {
	return len(parenRunRegexp.FindAllIndex(src, -1))
}

func countMatcher(m match.Matcher, src []byte) int {
	n := 0
	for pos := 0; pos < len(src); {
		if end, ok := m.Match(src, pos); ok {
			n++
			pos = end
			continue
		}
		pos++
	}
	return n
}

func countManual(src []byte) int {
	n := 0
	for pos := 0; pos < len(src); pos++ {
		if src[pos] != '(' {
			continue
		}
		end := pos + 1
		for end < len(src) && src[end] != '(' && src[end] != ')' {
			end++
		}
		if end > pos+1 && end < len(src) && src[end] == ')' {
			n++
			pos = end
		}
	}
	return n
}

type benchCase struct {
	name  string
	count func([]byte) int
}

func runBench(w io.Writer) error {
	size := vp.GetInt("size")
	reps := vp.GetInt("reps")
	if size <= 0 || reps <= 0 {
		return fmt.Errorf("size and reps must be positive")
	}
	src := benchInput(size, vp.GetInt64("seed"))

	cases := []benchCase{
		{"regexp", countRegexp},
		{"matcher", func(b []byte) int { return countMatcher(parenRun, b) }},
		{"manual", countManual},
	}

	elapsed := make([]time.Duration, len(cases))
	for rep := 0; rep < reps; rep++ {
		for i, c := range cases {
			start := time.Now()
			n := c.count(src)
			d := time.Since(start)
			elapsed[i] += d
			fmt.Fprintf(w, "%-8s rep %-3d %8d matches %12s\n", c.name, rep, n, d)
		}
	}

	fmt.Fprintln(w)
	for i, c := range cases {
		fmt.Fprintf(w, "%-8s total %s\n", c.name, elapsed[i])
	}
	if elapsed[1] > 0 {
		fmt.Fprintf(w, "matcher is %.2f times faster than regexp\n", float64(elapsed[0])/float64(elapsed[1]))
		_, err := fmt.Fprintf(w, "matcher is %.2f times faster than manual\n", float64(elapsed[2])/float64(elapsed[1]))
		return err
	}
	return nil
}
