package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/godebbugs/debbugs/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// resolveBuildInfo fills unset build metadata from the binary's embedded VCS
// info. Values injected via ldflags win; the -dirty suffix applies only to a
// commit taken from vcs.revision, never to a release-provided one.
func resolveBuildInfo(version, commit, date string, info *debug.BuildInfo) (string, string, string) {
	if info == nil {
		return version, commit, date
	}

	if version == "dev" {
		version = info.Main.Version
	}

	commitFromVCS := false
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "none" {
				commit = setting.Value
				commitFromVCS = true
			}
		case "vcs.time":
			if date == "unknown" {
				date = setting.Value
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if commitFromVCS && dirty {
		commit += "-dirty"
	}

	return version, commit, date
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show debbugs version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, commit, date := Version, Commit, BuildDate
		if info, ok := debug.ReadBuildInfo(); ok {
			version, commit, date = resolveBuildInfo(version, commit, date, info)
		}

		out := VersionOutput{
			Version: version,
			Commit:  commit,
			Date:    date,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		}

		if jsonOutput {
			return output.JSON(out)
		}

		v := out.Version
		if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
			v = "v" + v
		}
		fmt.Printf("debbugs %s (%s, %s)\n", v, out.Commit, out.Date)
		fmt.Printf("%s %s/%s\n", out.Go, out.OS, out.Arch)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
