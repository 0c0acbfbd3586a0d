package cli

import (
	"fmt"
	"strconv"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

var newestAmount int

var newestCmd = &cobra.Command{
	Use:   "newest [amount]",
	Short: "Show the most recently filed bug numbers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := newestAmount
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			amount = n
		}

		client, cfg, err := newClient(cmd)
		if err != nil {
			return err
		}

		ids, err := client.NewestBugs(cmd.Context(), amount)
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

func init() {
	newestCmd.Flags().IntVarP(&newestAmount, "amount", "n", 10, "Number of bugs to fetch")
	rootCmd.AddCommand(newestCmd)
}
