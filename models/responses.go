package models

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version,omitempty"`
	BuildDate    string `json:"build_date,omitempty"`
	BuildCommit  string `json:"build_commit,omitempty"`
}

// NewVersionResponse combines the configured version with build metadata.
func NewVersionResponse(version string, build AppBuildInfo) VersionResponse {
	return VersionResponse{
		Version:      version,
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
	}
}
