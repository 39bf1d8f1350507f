package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/open"
	"github.com/pknull/ccsessionctl/internal/scan"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <session-id>",
		Short: "Open a session transcript in $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			sessions, err := scan.Sessions(cfg.ProjectsRoot)
			if err != nil {
				return err
			}

			// accept a full id or an unambiguous prefix
			id := args[0]
			path := ""
			for i := range sessions {
				if sessions[i].ID == id {
					path = sessions[i].Path
					break
				}
				if strings.HasPrefix(sessions[i].ID, id) {
					if path != "" {
						return fmt.Errorf("ambiguous session id prefix %q", id)
					}
					path = sessions[i].Path
				}
			}
			if path == "" {
				return fmt.Errorf("session %q not found", id)
			}

			return open.Session(path)
		},
	}
}
