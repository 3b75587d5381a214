// Package version reports the build version of indeedsearch.
package version

// Set at build time with
//
//	-ldflags "-X github.com/davidbarts/indeedsearch/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Link-time injected build metadata.
var (
	version   = "0.0.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if recorded.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if recorded.
func GetBuildDate() string {
	return buildDate
}

// Detailed returns the version followed by commit and build date when they are known.
func Detailed() string {
	s := version
	if gitCommit != "" {
		s += " (" + gitCommit + ")"
	}
	if buildDate != "" {
		s += " built " + buildDate
	}
	return s
}
