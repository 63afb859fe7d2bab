// Package version reports the build stamp of the stockboard binaries
package version

// BuildInfo is the build stamp exposed by /meta/version and `stockboard version`
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Service is the default service name reported when none is stamped
const Service = "stockboard-api"

// Info returns the build stamp; values come from -ldflags, e.g.
// -X 'stockboard/internal/core/version.version=v0.1.0' -X 'stockboard/internal/core/version.commit=abcd'
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// For returns the build stamp under a different service name, used by the CLI
func For(service string) BuildInfo {
	bi := Info()
	if service != "" {
		bi.Service = service
	}
	return bi
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
