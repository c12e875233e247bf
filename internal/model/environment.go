package model

const (
	SessionX11     = "x11"
	SessionWayland = "wayland"

	// VersionNotFound is reported when a release file exists but carries no
	// version key, or when no release file exists at all.
	VersionNotFound = "notfound"
)

// EnvironmentInfo is the result of one detection pass. Empty DistroName or
// DesktopEnv means unknown.
type EnvironmentInfo struct {
	DistroName    string `json:"distro_name" yaml:"distro_name"`
	DistroVersion string `json:"distro_ver" yaml:"distro_ver"`
	SessionType   string `json:"session_type" yaml:"session_type"`
	DesktopEnv    string `json:"desktop_env" yaml:"desktop_env"`
}

func (e EnvironmentInfo) DesktopKnown() bool {
	return e.DesktopEnv != ""
}

type HostInfo struct {
	Kernel          string `json:"kernel" yaml:"kernel"`
	Arch            string `json:"arch" yaml:"arch"`
	Platform        string `json:"platform" yaml:"platform"`
	PlatformFamily  string `json:"platform_family" yaml:"platform_family"`
	PlatformVersion string `json:"platform_version" yaml:"platform_version"`
	Chassis         string `json:"chassis" yaml:"chassis"`
	Vendor          string `json:"vendor" yaml:"vendor"`
	Product         string `json:"product" yaml:"product"`
}

type Report struct {
	Environment EnvironmentInfo `json:"environment" yaml:"environment"`
	Host        *HostInfo       `json:"host,omitempty" yaml:"host,omitempty"`
}
