// debbugs CLI - Command-line client for a debbugs SOAP interface
package main

import (
	"github.com/godebbugs/debbugs/pkg/cli"
)

// Build-time variables set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate
	cli.Execute()
}
