package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/parser"
)

func newIncludesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "includes <file>",
		Short: "List the #include directives of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncludes(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().Bool("tree", false, "print the include nodes with their children")

	return cmd
}

func runIncludes(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	opts := []parser.Option{parser.WithFile(path)}
	if vp.GetBool("flat-comments") {
		opts = append(opts, parser.WithFlatComments())
	}
	p := parser.New(opts...)
	p.Load(src)

	unit, ok := p.TakeTranslationUnit()
	if !ok {
		var lexErr *lexer.Error
		if _, err := lexer.New(lexerOptions(true)...).Tokenize(src); errors.As(err, &lexErr) {
			return fmt.Errorf("parse %s: %s: %w", path, p.Position(lexErr.Offset), err)
		}
		return fmt.Errorf("parse %s: incomplete translation unit", path)
	}

	printer := newPrinter(w)
	for _, inc := range unit.ChildrenOfKind(parser.KindPreprocInclude) {
		if vp.GetBool("tree") {
			if err := printer.Node(p.Source(), inc); err != nil {
				return err
			}
			continue
		}
		target := inc.FirstChildOfKind(parser.KindIncludePath)
		if target == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Position(inc.Span.Begin), target.Text(p.Source())); err != nil {
			return err
		}
	}
	return nil
}
