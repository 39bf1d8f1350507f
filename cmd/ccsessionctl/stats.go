package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/scan"
	"github.com/pknull/ccsessionctl/internal/session"
)

type projectStats struct {
	name     string
	sessions int
	bytes    int64
	messages int
	tokens   int
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Per-project session counts, sizes and token estimates",
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

			for i := range sessions {
				_ = session.LoadMetadata(&sessions[i])
			}

			totals := projectTotals(sessions)

			fmt.Printf("%-24s %10s %10s %8s %10s\n",
				"Project", "Sessions", "Size", "Msgs", "Tokens")
			var total projectStats
			for _, ps := range totals {
				fmt.Printf("%-24s %10d %10s %8d %10s\n",
					ps.name, ps.sessions, humanize.IBytes(uint64(ps.bytes)),
					ps.messages, formatTokenCount(ps.tokens))
				total.sessions += ps.sessions
				total.bytes += ps.bytes
				total.messages += ps.messages
				total.tokens += ps.tokens
			}
			fmt.Printf("%-24s %10d %10s %8d %10s\n",
				"TOTAL", total.sessions, humanize.IBytes(uint64(total.bytes)),
				total.messages, formatTokenCount(total.tokens))

			return nil
		},
	}
}

// projectTotals aggregates per project, largest total size first.
func projectTotals(sessions []session.Session) []projectStats {
	byProject := make(map[string]*projectStats)
	for i := range sessions {
		s := &sessions[i]
		ps := byProject[s.Project]
		if ps == nil {
			ps = &projectStats{name: s.Project}
			byProject[s.Project] = ps
		}
		ps.sessions++
		ps.bytes += s.SizeBytes
		ps.messages += s.MessageCount
		ps.tokens += s.TokenCount
	}

	totals := make([]projectStats, 0, len(byProject))
	for _, ps := range byProject {
		totals = append(totals, *ps)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].bytes != totals[j].bytes {
			return totals[i].bytes > totals[j].bytes
		}
		return totals[i].name < totals[j].name
	})
	return totals
}

func formatTokenCount(tokens int) string {
	switch {
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(tokens)/1_000_000)
	case tokens >= 1_000:
		return fmt.Sprintf("%.1fK", float64(tokens)/1_000)
	default:
		return fmt.Sprintf("%d", tokens)
	}
}
