package cli

import (
	"fmt"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/godebbugs/debbugs/pkg/debbugs"
	"github.com/godebbugs/debbugs/pkg/soap"
	"github.com/spf13/cobra"
)

var (
	searchPackage       string
	searchBugs          []int
	searchSubmitter     string
	searchMaintainer    string
	searchSource        string
	searchSeverity      string
	searchStatus        string
	searchOwner         string
	searchCorrespondent string
	searchArchive       string
	searchTags          []string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for bugs matching the given criteria",
	Long: `Search for bugs matching the given criteria and print their numbers.
At least one criterion must be provided.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := buildQuery()
		if err != nil {
			return err
		}

		client, cfg, err := newClient(cmd)
		if err != nil {
			return err
		}

		ids, err := client.GetBugs(cmd.Context(), query)
		if err != nil {
			return err
		}

		if cfg.JSON {
			return output.JSON(ids)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func buildQuery() (*debbugs.SearchQuery, error) {
	query := &debbugs.SearchQuery{
		Package:       searchPackage,
		Submitter:     searchSubmitter,
		Maintainer:    searchMaintainer,
		Source:        searchSource,
		Severity:      searchSeverity,
		Owner:         searchOwner,
		Correspondent: searchCorrespondent,
		Tags:          searchTags,
	}
	for _, n := range searchBugs {
		if n < 1 {
			return nil, fmt.Errorf("invalid bug number %d", n)
		}
		query.BugIDs = append(query.BugIDs, debbugs.BugID(n))
	}
	if searchStatus != "" {
		status, err := soap.ParseBugStatus(searchStatus)
		if err != nil {
			return nil, err
		}
		query.Status = status
	}
	if searchArchive != "" {
		archive, err := soap.ParseArchiveState(searchArchive)
		if err != nil {
			return nil, err
		}
		query.Archive = archive
	}

	if query.Empty() {
		return nil, fmt.Errorf("at least one search criterion is required")
	}
	return query, nil
}

func init() {
	flags := searchCmd.Flags()
	flags.StringVar(&searchPackage, "package", "", "Binary package name")
	flags.IntSliceVar(&searchBugs, "bug", nil, "Bug number (repeatable)")
	flags.StringVar(&searchSubmitter, "submitter", "", "Submitter email address")
	flags.StringVar(&searchMaintainer, "maintainer", "", "Maintainer email address")
	flags.StringVar(&searchSource, "source", "", "Source package name")
	flags.StringVar(&searchSeverity, "severity", "", "Bug severity")
	flags.StringVar(&searchStatus, "status", "", "Bug status (done, forwarded, open)")
	flags.StringVar(&searchOwner, "owner", "", "Owner email address")
	flags.StringVar(&searchCorrespondent, "correspondent", "", "Correspondent email address")
	flags.StringVar(&searchArchive, "archive", "", "Archive state (archived, unarchived, both)")
	flags.StringSliceVar(&searchTags, "tag", nil, "Tag name (repeatable)")
	rootCmd.AddCommand(searchCmd)
}
