// Package build contains information about the running binary.
// The values are replaced during the release build, see Makefile.
package build

var (
	BuildVersion = "dev" //nolint:gochecknoglobals
	BuildDate    = "-"   //nolint:gochecknoglobals
	GitCommit    = "-"   //nolint:gochecknoglobals
)
