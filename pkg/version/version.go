package version

// Version is stamped at build time:
//
//	go build -ldflags "-X scanhub.backend/pkg/version.Version=$(git describe --tags)"
var Version = "0.0.1-dev"

// Get returns the build version string.
func Get() string {
	return Version
}
