package detector

import (
	"fmt"
	"regexp"
)

// Mapping pairs a case-insensitive pattern with the canonical id it maps to.
type Mapping struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	ID      string `yaml:"id" json:"id"`
}

// DistroNames simplifies the name found in a release file. Order matters.
var DistroNames = []Mapping{
	{`Debian.*`, "debian"},
	{`elementary`, "eos"},
	{`Fedora.*`, "fedora"},
	{`LMDE.*`, "lmde"},
	{`Manjaro`, "manjaro"},
	{`KDE Neon`, "neon"},
	{`Linux Mint`, "mint"},
	{`Pop!_OS`, "popos"},
	{`Red Hat.*`, "rhel"},
	{`Rocky.*`, "rocky"},
	{`Ubuntu`, "ubuntu"},
	{`Zorin.*`, "zorin"},
}

// DesktopNames simplifies XDG_CURRENT_DESKTOP / XDG_SESSION_DESKTOP values.
// Order matters.
var DesktopNames = []Mapping{
	{`Budgie`, "budgie"},
	{`Cinnamon`, "cinnamon"},
	{`Deepin`, "deepin"},
	{`Enlightenment`, "enlightenment"},
	{`GNOME`, "gnome"},
	{`Hyprland`, "hypr"},
	{`IceWM`, "icewm"},
	{`KDE`, "kde"},
	{`LXDE`, "lxde"},
	{`LXQt`, "lxqt"},
	{`MATE`, "mate"},
	{`Pantheon`, "pantheon"},
	{`Plasma`, "kde"},
	{`SwayWM`, "sway"},
	{`Ubuntu`, "gnome"}, // Ubuntu reports itself, the shell is GNOME
	{`Unity`, "unity"},
	{`Xfce`, "xfce"},
}

// Table is an ordered list of compiled mappings.
type Table struct {
	entries []tableEntry
}

type tableEntry struct {
	re *regexp.Regexp
	id string
}

// CompileTable compiles the given mapping lists into one table, keeping the
// order of the lists and of the entries within them.
func CompileTable(lists ...[]Mapping) (*Table, error) {
	t := &Table{}
	for _, list := range lists {
		for _, m := range list {
			if m.ID == "" {
				return nil, fmt.Errorf("pattern %q has no id", m.Pattern)
			}
			re, err := regexp.Compile("(?i)" + m.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", m.Pattern, err)
			}
			t.entries = append(t.entries, tableEntry{re: re, id: m.ID})
		}
	}
	return t, nil
}

func MustCompileTable(lists ...[]Mapping) *Table {
	t, err := CompileTable(lists...)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the id of the first entry whose pattern occurs in s.
func (t *Table) Match(s string) (string, bool) {
	if t == nil || s == "" {
		return "", false
	}
	for _, e := range t.entries {
		if e.re.MatchString(s) {
			return e.id, true
		}
	}
	return "", false
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
