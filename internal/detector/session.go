package detector

import (
	"fmt"
	"strings"

	"deskenv/internal/model"
)

func (d *Detector) detectSessionType() (string, error) {
	session := d.getenv("XDG_SESSION_TYPE")
	if session == "" {
		d.logger.Error().Msg("XDG_SESSION_TYPE should really be set. Are you in a graphical environment?")
		// Older distros (antiX and friends) never set it.
		session = d.sessionFromProcesses()
	}

	if session == "" && d.getenv("WAYLAND_DISPLAY") != "" {
		session = model.SessionWayland
	}

	if session == "" {
		return "", fmt.Errorf("%w: detecting session type failed", ErrEnvironment)
	}

	session = strings.ToLower(session)
	switch session {
	case model.SessionX11, model.SessionWayland:
		return session, nil
	default:
		return "", fmt.Errorf("%w: unknown session type: %s", ErrEnvironment, session)
	}
}

// sessionFromProcesses infers the protocol from the X server and Wayland
// compositor processes. Unless the fallback is exclusive a Wayland match
// replaces an X11 match.
func (d *Detector) sessionFromProcesses() string {
	procs, err := d.procs.Processes()
	if err != nil {
		d.logger.Debug().Err(err).Msg("Process scan for session type skipped")
		return ""
	}

	var session string
	if n := d.countMatching(procs, "xorg"); n > 0 {
		d.logger.Debug().Int("count", n).Msg("X server processes found")
		session = model.SessionX11
		if d.exclusiveFallback {
			return session
		}
	}

	if n := d.countMatching(procs, "wayland"); n > 0 {
		d.logger.Debug().Int("count", n).Msg("Wayland processes found")
		if session == model.SessionX11 {
			d.logger.Warn().Msg("Both X server and Wayland processes are running, assuming wayland")
		}
		session = model.SessionWayland
	}

	return session
}

// countMatching counts processes other than this one whose command line
// contains needle, ignoring case.
func (d *Detector) countMatching(procs []Process, needle string) int {
	count := 0
	for _, p := range procs {
		if p.PID == d.selfPID {
			continue
		}
		line := p.Cmdline
		if line == "" {
			line = p.Name
		}
		if strings.Contains(strings.ToLower(line), needle) {
			count++
		}
	}
	return count
}
