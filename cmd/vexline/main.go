// Command vexline is a small front end for package vex: it parses a
// single ex command line and prints the result as JSON, or drops into an
// interactive REPL that parses and evaluates lines against an in-memory
// buffer.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jsynacek/vex"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "vexline",
		Short: "Parse and explore Vim-compatible ex command lines",
	}
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("vexline: fatal")
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>",
		Short: "Parse a single ex command line and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, ok := vex.Parse(args[0])
			if !ok {
				return fmt.Errorf("not an editor command: %q", args[0])
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pc)
		},
	}
}

func newReplCmd() *cobra.Command {
	var seedFile string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse ex command lines against a buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				log.Warn().Err(err).Msg("vexline: failed to load config, using defaults")
			}
			if seedFile == "" {
				seedFile = cfg.SeedFile
			}
			return runRepl(cfg, seedFile)
		},
	}
	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "file to seed the in-memory buffer from")
	return cmd
}
