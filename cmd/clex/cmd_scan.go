package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/clex/lexer"
)

var scanLog = commonlog.GetLogger("clex.scan")

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Tokenize every source file below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().String("ext", ".c,.h,.cpp,.hpp,.cc", "comma separated file extensions to scan")
	cmd.Flags().Bool("quiet", false, "only print failures and the summary")

	return cmd
}

// scanResult is the outcome of tokenizing one file.
type scanResult struct {
	Path   string
	Tokens int
	Bytes  int
	Err    error
}

// scanReport aggregates a directory scan.
type scanReport struct {
	Files  []scanResult
	Hits   map[lexer.Kind]int
	Tokens int
	Bytes  int
	Failed int
}

func runScan(w io.Writer, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	report, err := scanTree(root, parseExts(vp.GetString("ext")), lexerOptions(true))
	if err != nil {
		return err
	}

	p := newPrinter(w)
	quiet := vp.GetBool("quiet")
	for _, f := range report.Files {
		if f.Err != nil {
			if err := p.Status(false, fmt.Sprintf("%s: %v", f.Path, f.Err)); err != nil {
				return err
			}
			continue
		}
		if quiet {
			continue
		}
		if err := p.Status(true, fmt.Sprintf("%s (%d tokens)", f.Path, f.Tokens)); err != nil {
			return err
		}
	}
	return writeSummary(w, report)
}

// parseExts splits a comma separated extension list. Entries without a
// leading dot get one.
func parseExts(list string) map[string]bool {
	exts := make(map[string]bool)
	for _, e := range strings.Split(list, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = true
	}
	return exts
}

func scanTree(root string, exts map[string]bool, opts []lexer.Option) (*scanReport, error) {
	lx := lexer.New(opts...)
	report := &scanReport{Hits: make(map[lexer.Kind]int)}

	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			scanLog.Warningf("walk %s: %v", p, err)
			report.Files = append(report.Files, scanResult{Path: p, Err: err})
			report.Failed++
			return nil
		}
		if info.IsDir() || !exts[filepath.Ext(p)] {
			return nil
		}
		report.Files = append(report.Files, scanFile(lx, p, report))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return report, nil
}

func scanFile(lx *lexer.Lexer, path string, report *scanReport) scanResult {
	result := scanResult{Path: path}
	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		report.Failed++
		return result
	}
	result.Bytes = len(src)

	tokens, err := lx.Tokenize(src)
	for _, tok := range tokens {
		report.Hits[tok.Kind]++
	}
	result.Tokens = len(tokens)
	report.Tokens += len(tokens)
	report.Bytes += len(src)

	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			scanLog.Debugf("%s: stopped at offset %d of %d", path, lexErr.Offset, len(src))
		}
		result.Err = err
		report.Failed++
	}
	return result
}

func writeSummary(w io.Writer, r *scanReport) error {
	kinds := make([]lexer.Kind, 0, len(r.Hits))
	for k := range r.Hits {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if r.Hits[kinds[i]] != r.Hits[kinds[j]] {
			return r.Hits[kinds[i]] > r.Hits[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	fmt.Fprintf(w, "\n=== SCAN COMPLETE ===\n")
	for _, k := range kinds {
		fmt.Fprintf(w, "%-14s %d\n", k, r.Hits[k])
	}
	fmt.Fprintf(w, "Files:  %d\n", len(r.Files))
	fmt.Fprintf(w, "Failed: %d\n", r.Failed)
	fmt.Fprintf(w, "Tokens: %d\n", r.Tokens)
	_, err := fmt.Fprintf(w, "Bytes:  %d\n", r.Bytes)
	return err
}
