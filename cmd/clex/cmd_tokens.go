package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/render"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().Bool("plain", false, "never colorize output")
	cmd.Flags().Bool("trivia", false, "include whitespace and comments")
	cmd.Flags().Bool("highlight", false, "print the source with tokens colored in place")

	return cmd
}

func runTokens(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	highlight := vp.GetBool("highlight")
	tokens, lexErr := lexer.Tokenize(src, lexerOptions(vp.GetBool("trivia") || highlight)...)

	p := newPrinter(w)
	if highlight {
		err = p.Source(src, tokens)
	} else {
		err = p.Tokens(src, tokens)
	}
	if err != nil {
		return err
	}
	if lexErr != nil {
		return fmt.Errorf("%s: %w", path, lexErr)
	}
	return nil
}

// lexerOptions returns the lexer configuration selected by the global flags.
func lexerOptions(trivia bool) []lexer.Option {
	var opts []lexer.Option
	if vp.GetBool("flat-comments") {
		opts = append(opts, lexer.WithFlatComments())
	}
	if !trivia {
		opts = append(opts, lexer.WithoutTrivia())
	}
	return opts
}

func newPrinter(w io.Writer) *render.Printer {
	if vp.GetBool("plain") {
		return render.New(w, "never")
	}
	return render.New(w, vp.GetString("color"))
}
