package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/godebbugs/debbugs/pkg/debbugs"
	"github.com/spf13/cobra"
)

var logHeadersOnly bool

var logCmd = &cobra.Command{
	Use:   "log <bug>",
	Short: "Fetch the message log of a bug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 32)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid bug number %q", args[0])
		}

		client, cfg, err := newClient(cmd)
		if err != nil {
			return err
		}

		entries, err := client.GetBugLog(cmd.Context(), debbugs.BugID(n))
		if err != nil {
			return err
		}

		if cfg.JSON {
			return output.JSON(entries)
		}

		for i, entry := range entries {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("--- message %d ---\n", entry.MsgNum)
			fmt.Println(entry.Header)
			if !logHeadersOnly {
				fmt.Println()
				fmt.Println(entry.Body)
			}
		}
		return nil
	},
}

func init() {
	logCmd.Flags().BoolVar(&logHeadersOnly, "headers-only", false, "Print message headers without bodies")
	rootCmd.AddCommand(logCmd)
}
