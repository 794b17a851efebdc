// Package version carries build metadata stamped in with
// -ldflags "-X todoview/internal/version.Version=...".
package version

import "strings"

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders "todoview <version>" followed by commit and date when set.
func String() string {
	var b strings.Builder
	b.WriteString("todoview ")
	b.WriteString(Version)
	var meta []string
	if Commit != "" {
		meta = append(meta, Commit)
	}
	if Date != "" {
		meta = append(meta, Date)
	}
	if len(meta) > 0 {
		b.WriteString(" (" + strings.Join(meta, ", ") + ")")
	}
	return b.String()
}
