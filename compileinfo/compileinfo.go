// Package compileinfo reports the version control state a binary was
// built from, so that converted output can be traced back to a commit.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Path      string
	GoVersion string
	Revision  string
	BuildTime string
	Dirty     bool
}

func (i Info) String() string {
	dirty := ""
	if i.Dirty {
		dirty = " The working tree was dirty at build time."
	}

	return fmt.Sprintf("%s was built with %s from revision %s (%s).%s", i.Path, i.GoVersion, i.Revision, i.BuildTime, dirty)
}

// Get reads the build metadata stamped into the running binary. Fields
// stay empty when the binary was built outside version control.
func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Path = bi.Path
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Revision = s.Value
		case "vcs.time":
			out.BuildTime = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
