package version

import (
	"fmt"
	"runtime"
)

// Version is overridden at build time with -ldflags "-X .../version.Version=x.y.z"
var Version = "0.3.0"

// Report returns a multi-line description of the running build,
// suitable for pasting into bug reports.
func Report() string {
	return fmt.Sprintf("App version: vlink v%s\nGo version: %s\nPlatform: %s/%s",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
