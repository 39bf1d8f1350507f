package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pknull/ccsessionctl/internal/actions"
	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/scan"
	"github.com/pknull/ccsessionctl/internal/session"
)

func pruneCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete empty sessions (no title, summary, first message or messages)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			sessions, err := scan.Sessions(cfg.ProjectsRoot)
			if err != nil {
				return err
			}

			var empty []*session.Session
			var freed int64
			for i := range sessions {
				s := &sessions[i]
				if err := session.LoadMetadata(s); err != nil {
					continue
				}
				if s.IsEmpty() {
					empty = append(empty, s)
					freed += s.SizeBytes
				}
			}

			if len(empty) == 0 {
				fmt.Println("Nothing to prune.")
				return nil
			}

			for _, s := range empty {
				fmt.Printf("%s\t%s\t%s\n", s.Project, s.ID, humanize.IBytes(uint64(s.SizeBytes)))
			}

			if dryRun {
				fmt.Printf("Would delete %d session(s), freeing %s.\n",
					len(empty), humanize.IBytes(uint64(freed)))
				return nil
			}

			deleted := actions.DeleteSessions(empty)
			fmt.Printf("Deleted %d of %d session(s), freed %s.\n",
				deleted, len(empty), humanize.IBytes(uint64(freed)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be deleted without deleting")

	return cmd
}
