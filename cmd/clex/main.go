package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var vp = viper.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	vp = viper.New()

	rootCmd := &cobra.Command{
		Use:          "clex",
		Short:        "Lex and inspect C-like source files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd.Flags()); err != nil {
				return err
			}
			configureLogging()
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountP("verbose", "v", "increase log verbosity (repeatable)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.String("color", "auto", "colorize output: always, never or auto")
	flags.Bool("flat-comments", false, "block comments do not nest")

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newIncludesCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// bindFlags makes every flag of the running command, inherited ones
// included, readable through vp, so each one can also be set from a CLEX_
// environment variable.
func bindFlags(fs *pflag.FlagSet) error {
	if err := vp.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	vp.SetEnvPrefix("clex")
	vp.AutomaticEnv()
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return nil
}

func configureLogging() {
	var path *string
	if p := vp.GetString("log-file"); p != "" {
		path = &p
	}
	commonlog.Configure(vp.GetInt("verbose"), path)
}
