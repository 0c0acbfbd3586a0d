// Package cli implements the debbugs command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/godebbugs/debbugs/pkg/cliconfig"
	"github.com/godebbugs/debbugs/pkg/debbugs"
	"github.com/godebbugs/debbugs/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	endpoint        string
	actionNamespace string
	timeoutSeconds  int
	jsonOutput      bool
	verbose         bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "debbugs",
	Short: "debbugs queries a Debian-style bug tracker over its SOAP interface",
	Long: `debbugs talks to the SOAP interface of a debbugs bug tracker, such as
the one behind bugs.debian.org, and prints bug numbers, status records,
message logs, and usertags.

Configuration can be provided via flags, environment variables, or a
configuration file (.debbugsrc.yaml in the current directory, or
config.yaml under the debbugs directory of your user config dir).`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "SOAP endpoint URL (default: "+cliconfig.DefaultEndpoint+")")
	rootCmd.PersistentFlags().StringVar(&actionNamespace, "action-namespace", "", "Namespace prefix for the SOAPAction header (namespace#operation)")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds (default: 30)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and responses to stderr")
}

// resolveConfig loads configuration from files and environment, then applies
// any flags the user set on top.
func resolveConfig(cmd *cobra.Command) (*cliconfig.CLIConfig, error) {
	cfg, err := cliconfig.LoadAll()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpoint
		cfg.Sources["endpoint"] = cliconfig.SourceFlag
	}
	if flags.Changed("action-namespace") {
		cfg.ActionNamespace = actionNamespace
		cfg.Sources["actionNamespace"] = cliconfig.SourceFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutSeconds
		cfg.Sources["timeout"] = cliconfig.SourceFlag
	}
	if flags.Changed("json") {
		cfg.JSON = jsonOutput
		cfg.Sources["json"] = cliconfig.SourceFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
		cfg.Sources["verbose"] = cliconfig.SourceFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds a client from the resolved configuration.
func newClient(cmd *cobra.Command) (*debbugs.Client, *cliconfig.CLIConfig, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	client := debbugs.NewClient(&debbugs.Config{
		Endpoint:        cfg.Endpoint,
		ActionNamespace: cfg.ActionNamespace,
		Timeout:         time.Duration(cfg.Timeout) * time.Second,
	})
	if cfg.Verbose {
		client.SetLogger(logging.NewWithLevel(logging.LevelDebug))
	}
	return client, cfg, nil
}
