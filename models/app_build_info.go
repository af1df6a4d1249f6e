package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo holds the values injected with -ldflags at build time.
// Empty values mean the binary was built without them.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the banner printed by both binaries on start, with N/A for
// missing values.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orUnknown(a.version), orUnknown(a.date), orUnknown(a.commit))
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}
