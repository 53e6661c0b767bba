package version

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/ejolly/demo-project/demo"
)

// Build-time variables injected via ldflags:
//
//	-X github.com/ejolly/demo-project/internal/version.Commit=abc1234
//	-X github.com/ejolly/demo-project/internal/version.Date=2024-01-01
var (
	Commit = "none"
	Date   = "unknown"
)

// Info is the resolved build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// String renders the one-line form printed by "demo version".
func (i Info) String() string {
	return fmt.Sprintf("demo version %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// WriteText writes String followed by a newline.
func (i Info) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, i.String())
	return err
}

// Get returns the build metadata of the running binary.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(Commit, Date, bi)
}

// resolve fills commit and date from bi only when they still hold their
// ldflags-unset defaults. ldflags always win.
func resolve(commit, date string, bi *debug.BuildInfo) Info {
	info := Info{Version: demo.Version, Commit: commit, Date: date}
	if bi == nil {
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" && s.Value != "" {
				rev := s.Value
				if len(rev) > 7 {
					rev = rev[:7]
				}
				info.Commit = rev
			}
		case "vcs.time":
			if info.Date == "unknown" && s.Value != "" {
				info.Date = s.Value
			}
		}
	}
	return info
}
