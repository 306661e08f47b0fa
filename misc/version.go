// Package misc keeps build time information.
package misc

// Set with -ldflags "-X selkit/misc.version=... -X selkit/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "selkit"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
