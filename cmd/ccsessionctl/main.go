package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/scan"
	"github.com/pknull/ccsessionctl/internal/tui"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ccsessionctl",
		Short:   "Browse, search and clean up Claude Code session transcripts",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			sessions, err := scan.Sessions(cfg.ProjectsRoot)
			if err != nil {
				return err
			}

			// Interactive TUI when stdout is a terminal; TSV listing for pipes.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(sessions, cfg)
			}
			return printList(sessions, listOptions{sortField: "date"})
		},
	}

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(pruneCmd())
	rootCmd.AddCommand(openCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
