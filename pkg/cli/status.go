package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/godebbugs/debbugs/pkg/debbugs"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <bug>...",
	Short: "Fetch status records for one or more bugs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseBugArgs(args)
		if err != nil {
			return err
		}

		client, cfg, err := newClient(cmd)
		if err != nil {
			return err
		}

		reports, err := client.GetStatus(cmd.Context(), ids)
		if err != nil {
			return err
		}

		if cfg.JSON {
			return output.JSON(reports)
		}

		// Print in ascending bug order, noting requested bugs the
		// server did not report on.
		sorted := make([]debbugs.BugID, 0, len(reports))
		for id := range reports {
			sorted = append(sorted, id)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		for _, id := range sorted {
			printReport(reports[id])
		}
		for _, id := range ids {
			if _, ok := reports[id]; !ok {
				fmt.Printf("Bug #%d: no status returned\n", id)
			}
		}
		return nil
	},
}

func printReport(r *debbugs.BugReport) {
	fmt.Println(r)
	if r.Severity != nil {
		fmt.Printf("  severity:   %s\n", *r.Severity)
	}
	if r.Pending != nil {
		fmt.Printf("  state:      %s\n", *r.Pending)
	}
	if r.Originator != nil {
		fmt.Printf("  reported by: %s\n", *r.Originator)
	}
	if r.Owner != nil {
		fmt.Printf("  owned by:   %s\n", *r.Owner)
	}
	if r.Tags != nil {
		fmt.Printf("  tags:       %s\n", *r.Tags)
	}
	if len(r.MergedWith) > 0 {
		merged := make([]string, len(r.MergedWith))
		for i, m := range r.MergedWith {
			merged[i] = strconv.Itoa(int(m))
		}
		fmt.Printf("  merged with: %s\n", strings.Join(merged, ", "))
	}
	if len(r.FixedVersions) > 0 {
		fixed := make([]string, len(r.FixedVersions))
		for i, v := range r.FixedVersions {
			fixed[i] = v.String()
		}
		fmt.Printf("  fixed in:   %s\n", strings.Join(fixed, ", "))
	}
	if r.Archived != nil && *r.Archived {
		fmt.Println("  archived")
	}
}

func parseBugArgs(args []string) ([]debbugs.BugID, error) {
	ids := make([]debbugs.BugID, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 32)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid bug number %q", arg)
		}
		ids = append(ids, debbugs.BugID(n))
	}
	return ids, nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
