// Package detector works out which Linux distribution, display session
// protocol and desktop environment the current process is running under.
package detector

import (
	"os"

	"github.com/rs/zerolog"

	"deskenv/internal/model"
)

// Detector probes the live system. It keeps no state between calls to
// Detect, so every call sees the environment as it is at that moment.
type Detector struct {
	logger            zerolog.Logger
	root              string
	lookupEnv         func(string) (string, bool)
	procs             ProcessTable
	distroExtra       []Mapping
	desktopExtra      []Mapping
	distroNames       *Table
	desktopNames      *Table
	exclusiveFallback bool
	selfPID           int
}

type Option func(*Detector)

// WithRoot resolves the release files below dir instead of "/".
func WithRoot(dir string) Option {
	return func(d *Detector) {
		d.root = dir
	}
}

func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(d *Detector) {
		d.lookupEnv = lookup
	}
}

func WithProcessTable(procs ProcessTable) Option {
	return func(d *Detector) {
		if procs == nil {
			procs = Unavailable()
		}
		d.procs = procs
	}
}

// WithDistroNames adds mappings consulted before the built-in DistroNames.
func WithDistroNames(extra []Mapping) Option {
	return func(d *Detector) {
		d.distroExtra = extra
	}
}

// WithDesktopNames adds mappings consulted before the built-in DesktopNames.
func WithDesktopNames(extra []Mapping) Option {
	return func(d *Detector) {
		d.desktopExtra = extra
	}
}

// WithExclusiveSessionFallback makes the process-table session fallback stop
// at the first protocol it finds instead of letting a Wayland match replace
// an X11 match.
func WithExclusiveSessionFallback(exclusive bool) Option {
	return func(d *Detector) {
		d.exclusiveFallback = exclusive
	}
}

// New creates a detector. Without options it reads the real filesystem and
// environment and treats the process table as unavailable.
func New(logger zerolog.Logger, opts ...Option) (*Detector, error) {
	d := &Detector{
		logger:    logger.With().Str("component", "env_detector").Logger(),
		root:      "/",
		lookupEnv: os.LookupEnv,
		procs:     Unavailable(),
		selfPID:   os.Getpid(),
	}
	for _, opt := range opts {
		opt(d)
	}

	var err error
	if d.distroNames, err = CompileTable(d.distroExtra, DistroNames); err != nil {
		return nil, err
	}
	if d.desktopNames, err = CompileTable(d.desktopExtra, DesktopNames); err != nil {
		return nil, err
	}

	return d, nil
}

// Detect runs every detection step once. The only error it returns wraps
// ErrEnvironment; every other problem degrades to a sentinel value and a
// log line.
func (d *Detector) Detect() (model.EnvironmentInfo, error) {
	d.logger.Debug().Str("root", d.root).Msg("Detecting environment")

	src := d.findReleaseSource()
	info := model.EnvironmentInfo{
		DistroName:    d.detectDistroName(src),
		DistroVersion: d.detectDistroVersion(src),
	}

	session, err := d.detectSessionType()
	if err != nil {
		d.logger.Error().Err(err).Msg("Session type detection failed")
		return model.EnvironmentInfo{}, err
	}
	info.SessionType = session
	info.DesktopEnv = d.detectDesktopEnv()

	d.logger.Debug().
		Str("distro_name", info.DistroName).
		Str("distro_ver", info.DistroVersion).
		Str("session_type", info.SessionType).
		Str("desktop_env", info.DesktopEnv).
		Msg("Environment detected")

	return info, nil
}

func (d *Detector) getenv(key string) string {
	val, ok := d.lookupEnv(key)
	if !ok {
		return ""
	}
	return val
}
