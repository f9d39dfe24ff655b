package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags at build time.
var (
	version   = "v0.0.0-devel"
	gitCommit = ""
	buildDate = ""
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
}

func Get() Info {
	return Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s = fmt.Sprintf("%s (%s)", s, i.GitCommit)
	}
	return s
}
