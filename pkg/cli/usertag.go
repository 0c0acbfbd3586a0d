package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

var usertagCmd = &cobra.Command{
	Use:   "usertag <email> [tag...]",
	Short: "Show a user's tags and the bugs carrying them",
	Long: `Show the usertags defined by the given email address. With tag
arguments, only those tags are fetched; without, all of the user's
tags are listed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]
		tags := args[1:]

		client, cfg, err := newClient(cmd)
		if err != nil {
			return err
		}

		result, err := client.GetUsertag(cmd.Context(), email, tags...)
		if err != nil {
			return err
		}

		if cfg.JSON {
			return output.JSON(result)
		}

		names := make([]string, 0, len(result))
		for name := range result {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ids := result[name]
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = fmt.Sprint(id)
			}
			fmt.Printf("%s: %s\n", name, strings.Join(parts, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usertagCmd)
}
