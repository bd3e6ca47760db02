package build

import "fmt"

var (
	ShortVersion   = "dev"
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
	LongVersion    = fmt.Sprintf("%s (%s - %s) - %s", ShortVersion, ProjectVersion, GitRef, BuildDate)
)
