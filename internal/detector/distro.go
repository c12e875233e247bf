package detector

import (
	"path/filepath"
	"strings"

	"deskenv/internal/model"
)

const (
	osReleasePath   = "/etc/os-release"
	lsbReleasePath  = "/etc/lsb-release"
	archReleasePath = "/etc/arch-release"
)

type releaseSource int

const (
	sourceNone releaseSource = iota
	sourceOSRelease
	sourceLSBRelease
	sourceArchRelease
)

func (s releaseSource) String() string {
	switch s {
	case sourceOSRelease:
		return osReleasePath
	case sourceLSBRelease:
		return lsbReleasePath
	case sourceArchRelease:
		return archReleasePath
	default:
		return "none"
	}
}

func (d *Detector) path(p string) string {
	return filepath.Join(d.root, p)
}

// findReleaseSource picks the first release file that exists.
func (d *Detector) findReleaseSource() releaseSource {
	switch {
	case fileExists(d.path(osReleasePath)):
		return sourceOSRelease
	case fileExists(d.path(lsbReleasePath)):
		return sourceLSBRelease
	case fileExists(d.path(archReleasePath)):
		return sourceArchRelease
	default:
		d.logger.Warn().Msg("No release file found in /etc")
		return sourceNone
	}
}

func (d *Detector) detectDistroName(src releaseSource) string {
	var raw string
	switch src {
	case sourceOSRelease:
		raw = d.readKey(src, "NAME", "PRETTY_NAME")
	case sourceLSBRelease:
		raw = d.readKey(src, "DISTRIB_ID", "DISTRIB_DESCRIPTION")
	case sourceArchRelease:
		raw = "arch"
	}

	name := raw
	if id, ok := d.distroNames.Match(raw); ok {
		name = id
	}
	name = strings.ToLower(name)

	d.logger.Debug().Str("source", src.String()).Str("raw", raw).Str("distro_name", name).Msg("Distro name")
	return name
}

func (d *Detector) detectDistroVersion(src releaseSource) string {
	var ver string
	switch src {
	case sourceOSRelease:
		ver = d.readKey(src, "VERSION_ID")
	case sourceLSBRelease:
		ver = d.readKey(src, "DISTRIB_RELEASE")
	}

	if ver == "" {
		d.logger.Debug().Str("source", src.String()).Msg("Distro version not found")
		return model.VersionNotFound
	}
	return ver
}

func (d *Detector) readKey(src releaseSource, keys ...string) string {
	val, err := firstValue(d.path(src.String()), keys...)
	if err != nil {
		d.logger.Warn().Err(err).Str("file", src.String()).Msg("Failed to read release file")
		return ""
	}
	return val
}
