package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/scan"
	"github.com/pknull/ccsessionctl/internal/session"
)

type listOptions struct {
	sortField string
	reverse   bool
	project   string
	countOnly bool
}

func listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions as TSV (project, id, modified, size, label)",
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

			return printList(sessions, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.countOnly, "count", false, "Print session count only")
	cmd.Flags().StringVar(&opts.sortField, "sort", "date", "Sort field (date/size/project/name)")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "Reverse sort order")
	cmd.Flags().StringVar(&opts.project, "project", "", "Filter by project name")

	return cmd
}

func printList(sessions []session.Session, opts listOptions) error {
	sessions = filterByProject(sessions, opts.project)

	if opts.countOnly {
		fmt.Println(len(sessions))
		return nil
	}

	for i := range sessions {
		// labels and the name sort key both need metadata; a corrupt file
		// still lists
		_ = session.LoadMetadata(&sessions[i])
	}

	if err := sortSessions(sessions, opts.sortField, opts.reverse); err != nil {
		return err
	}

	for i := range sessions {
		s := &sessions[i]
		label := strings.ReplaceAll(session.Preview(s), "\t", " ")
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			s.Project,
			s.ID,
			s.Modified.Format("2006-01-02 15:04"),
			humanize.IBytes(uint64(s.SizeBytes)),
			label,
		)
	}
	return nil
}

// filterByProject keeps sessions whose project name contains the query,
// case-insensitively. An empty query keeps everything.
func filterByProject(sessions []session.Session, query string) []session.Session {
	if query == "" {
		return sessions
	}
	needle := strings.ToLower(query)
	filtered := sessions[:0]
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.Project), needle) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func sortSessions(sessions []session.Session, field string, reverse bool) error {
	var less func(a, b *session.Session) bool
	switch field {
	case "date":
		less = func(a, b *session.Session) bool { return a.Modified.After(b.Modified) }
	case "size":
		less = func(a, b *session.Session) bool { return a.SizeBytes > b.SizeBytes }
	case "project":
		less = func(a, b *session.Session) bool { return a.Project < b.Project }
	case "name":
		less = func(a, b *session.Session) bool { return nameSortKey(a) < nameSortKey(b) }
	default:
		return fmt.Errorf("unknown sort field %q (want date/size/project/name)", field)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if reverse {
			return less(&sessions[j], &sessions[i])
		}
		return less(&sessions[i], &sessions[j])
	})
	return nil
}

// nameSortKey mirrors the Name ordering of the interactive list: summary,
// else first message.
func nameSortKey(s *session.Session) string {
	if s.Summary != "" {
		return s.Summary
	}
	return s.FirstMessage
}
