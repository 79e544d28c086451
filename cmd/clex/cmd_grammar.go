package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/clex/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarMatchCmd())
	cmd.AddCommand(newGrammarTokensCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse, verify and compile an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrammarCheck(cmd.OutOrStdout(), args[0], start)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start production (if empty, only checks syntax)")

	return cmd
}

func runGrammarCheck(w io.Writer, filename, start string) error {
	if start == "" {
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()

		if _, err := ebnf.Parse(filename, f); err != nil {
			printErrors(w, err)
			return err
		}
		return nil
	}

	g, err := grammar.Load(filename, start)
	if err != nil {
		printErrors(w, err)
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %d productions, %d token productions\n", filename, len(g.Names()), len(g.TokenRules()))
	return err
}

func newGrammarMatchCmd() *cobra.Command {
	var start, rule string

	cmd := &cobra.Command{
		Use:   "match <grammar> <text>",
		Short: "Run one production of a grammar against text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0], start)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			m := g.Matcher()
			if rule != "" {
				var found bool
				if m, found = g.Rule(rule); !found {
					return fmt.Errorf("unknown production %q", rule)
				}
			}
			src := []byte(args[1])
			end, ok := m.Match(src, 0)
			return newPrinter(cmd.OutOrStdout()).Match(src, end, ok)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start production")
	cmd.Flags().StringVar(&rule, "rule", "", "production to match (defaults to the start production)")
	cmd.MarkFlagRequired("start")

	return cmd
}

func newGrammarTokensCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "tokens <grammar> <file>",
		Short: "Split a file with the upper case productions of a grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrammarTokens(cmd.OutOrStdout(), args[0], start, args[1])
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start production")
	cmd.MarkFlagRequired("start")

	return cmd
}

func runGrammarTokens(w io.Writer, grammarFile, start, path string) error {
	g, err := grammar.Load(grammarFile, start)
	if err != nil {
		printErrors(w, err)
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tokens, tokErr := g.Tokenize(src)
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%-12s %-12s %q\n", tok.Span, tok.Rule, tok.Span.Text(src)); err != nil {
			return err
		}
	}
	if tokErr != nil {
		return fmt.Errorf("%s: %w", path, tokErr)
	}
	return nil
}

func printErrors(w io.Writer, err error) {
	for _, e := range grammar.Errors(err) {
		fmt.Fprintln(w, e)
	}
}
