package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/clex/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, vp.GetBool("flat-comments"))
			return server.RunStdio()
		},
	}
}
