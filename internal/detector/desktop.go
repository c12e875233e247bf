package detector

type desktopIndicator struct {
	names []string
	id    string
	label string
}

// desktopIndicators identify a desktop from one of its running processes.
var desktopIndicators = []desktopIndicator{
	{names: []string{"plasmashell", "kwin_ft", "kwin_x11"}, id: "kde", label: "KWin"},
	{names: []string{"gnome-shell"}, id: "gnome", label: "GNOME Shell"},
	{names: []string{"sway"}, id: "sway", label: "SwayWM"},
}

func (ind desktopIndicator) matches(name string) bool {
	for _, n := range ind.names {
		if name == n {
			return true
		}
	}
	return false
}

func (d *Detector) detectDesktopEnv() string {
	raw := d.getenv("XDG_CURRENT_DESKTOP")
	if raw == "" {
		raw = d.getenv("XDG_SESSION_DESKTOP")
	}

	var desktop string
	switch id, ok := d.desktopNames.Match(raw); {
	case raw == "":
		d.logger.Error().Msg("Desktop environment not found in XDG_CURRENT_DESKTOP or XDG_SESSION_DESKTOP")
		d.logger.Error().Msg("Configuration will not be able to adapt automatically to the desktop environment")
	case ok:
		desktop = id
	default:
		d.logger.Error().Str("desktop", raw).Msg("Desktop environment not in names table")
		desktop = raw
	}

	return d.crossCheckDesktop(desktop)
}

// crossCheckDesktop overrides desktop when a running process clearly belongs
// to a different desktop. The first disagreeing process wins.
func (d *Detector) crossCheckDesktop(desktop string) string {
	procs, err := d.procs.Processes()
	if err != nil {
		d.logger.Debug().Err(err).Msg("Process doublecheck of desktop environment bypassed")
		return desktop
	}

	for _, p := range procs {
		for _, ind := range desktopIndicators {
			if !ind.matches(p.Name) || desktop == ind.id {
				continue
			}
			d.logger.Error().
				Str("desktop", desktop).
				Str("process", p.Name).
				Msgf("Desktop may be misidentified, %s detected", ind.label)
			return ind.id
		}
	}

	return desktop
}
