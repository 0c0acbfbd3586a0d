package cli

import (
	"fmt"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/godebbugs/debbugs/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration and where each value came from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.JSON {
			type entry struct {
				Value  any    `json:"value"`
				Source string `json:"source"`
			}
			return output.JSON(map[string]entry{
				"endpoint":        {cfg.Endpoint, source(cfg, "endpoint")},
				"actionNamespace": {cfg.ActionNamespace, source(cfg, "actionNamespace")},
				"timeout":         {cfg.Timeout, source(cfg, "timeout")},
				"verbose":         {cfg.Verbose, source(cfg, "verbose")},
				"json":            {cfg.JSON, source(cfg, "json")},
			})
		}

		w := output.Table()
		fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
		fmt.Fprintf(w, "endpoint\t%s\t%s\n", cfg.Endpoint, source(cfg, "endpoint"))
		fmt.Fprintf(w, "actionNamespace\t%s\t%s\n", cfg.ActionNamespace, source(cfg, "actionNamespace"))
		fmt.Fprintf(w, "timeout\t%d\t%s\n", cfg.Timeout, source(cfg, "timeout"))
		fmt.Fprintf(w, "verbose\t%t\t%s\n", cfg.Verbose, source(cfg, "verbose"))
		fmt.Fprintf(w, "json\t%t\t%s\n", cfg.JSON, source(cfg, "json"))
		return w.Flush()
	},
}

func source(cfg *cliconfig.CLIConfig, key string) string {
	if s, ok := cfg.Sources[key]; ok {
		return s
	}
	return cliconfig.SourceDefault
}

func init() {
	rootCmd.AddCommand(configCmd)
}
