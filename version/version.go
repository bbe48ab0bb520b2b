// Package version reports the library version for user agent strings.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const modulePath = "github.com/wv0m56/http-client"

// Version is overridable at build time with -ldflags. When left at "dev"
// the module version from build info is used instead, if available.
var Version = "dev"

var resolve = sync.OnceValue(func() string {
	if Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath && dep.Version != "(devel)" {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	return Version
})

// String returns the effective library version.
func String() string {
	return resolve()
}

// UserAgent returns the default User-Agent header value sent by clients
// that do not set one themselves.
func UserAgent() string {
	return fmt.Sprintf("http-client/%s (%s)", String(), runtime.Version())
}
