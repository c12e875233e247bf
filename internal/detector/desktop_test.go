package detector

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DesktopEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"kde", map[string]string{"XDG_CURRENT_DESKTOP": "KDE"}, "kde"},
		{"ubuntu is gnome", map[string]string{"XDG_CURRENT_DESKTOP": "Ubuntu"}, "gnome"},
		{"colon list", map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME"}, "gnome"},
		{"plasma", map[string]string{"XDG_CURRENT_DESKTOP": "plasma"}, "kde"},
		{"hyprland", map[string]string{"XDG_CURRENT_DESKTOP": "Hyprland"}, "hypr"},
		{"cinnamon variant", map[string]string{"XDG_CURRENT_DESKTOP": "X-Cinnamon"}, "cinnamon"},
		{"xfce lowercase", map[string]string{"XDG_CURRENT_DESKTOP": "xfce"}, "xfce"},
		{"session desktop fallback", map[string]string{"XDG_SESSION_DESKTOP": "mate"}, "mate"},
		{
			"current desktop preferred",
			map[string]string{"XDG_CURRENT_DESKTOP": "LXQt", "XDG_SESSION_DESKTOP": "lxde"},
			"lxqt",
		},
		{"unknown keeps raw value", map[string]string{"XDG_CURRENT_DESKTOP": "Foo"}, "Foo"},
		{"unset", map[string]string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"XDG_SESSION_TYPE": "x11"}
			for k, v := range tt.env {
				env[k] = v
			}

			info, err := newTestDetector(t, t.TempDir(), env).Detect()
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.DesktopEnv)
			assert.Equal(t, tt.want != "", info.DesktopKnown())
		})
	}
}

func TestDetector_DesktopEnvLogs(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		var buf bytes.Buffer
		d, err := New(zerolog.New(&buf), WithRoot(t.TempDir()),
			WithLookupEnv(envLookup(map[string]string{"XDG_SESSION_TYPE": "x11"})))
		require.NoError(t, err)

		_, err = d.Detect()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Desktop environment not found")
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("not in table", func(t *testing.T) {
		var buf bytes.Buffer
		d, err := New(zerolog.New(&buf), WithRoot(t.TempDir()),
			WithLookupEnv(envLookup(map[string]string{"XDG_SESSION_TYPE": "x11", "XDG_CURRENT_DESKTOP": "Foo"})))
		require.NoError(t, err)

		_, err = d.Detect()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Desktop environment not in names table")
		assert.Contains(t, buf.String(), `"desktop":"Foo"`)
	})
}

func TestDetector_DesktopCrossCheck(t *testing.T) {
	tests := []struct {
		name    string
		desktop string
		procs   ProcessTable
		want    string
	}{
		{
			name:    "kwin overrides gnome",
			desktop: "GNOME",
			procs:   StaticTable{{PID: 20, Name: "plasmashell"}},
			want:    "kde",
		},
		{
			name:    "gnome shell overrides unknown",
			desktop: "",
			procs:   StaticTable{{PID: 20, Name: "gnome-shell"}},
			want:    "gnome",
		},
		{
			name:    "raw sway agrees with process",
			desktop: "sway",
			procs:   StaticTable{{PID: 20, Name: "sway"}},
			want:    "sway",
		},
		{
			name:    "agreeing process keeps value",
			desktop: "KDE",
			procs:   StaticTable{{PID: 20, Name: "kwin_x11"}, {PID: 21, Name: "bash"}},
			want:    "kde",
		},
		{
			name:    "agreeing match does not stop the scan",
			desktop: "KDE",
			procs:   StaticTable{{PID: 20, Name: "kwin_x11"}, {PID: 21, Name: "gnome-shell"}, {PID: 22, Name: "sway"}},
			want:    "gnome",
		},
		{
			name:    "unrelated processes",
			desktop: "XFCE",
			procs:   StaticTable{{PID: 20, Name: "xfwm4"}},
			want:    "xfce",
		},
		{
			name:    "process table unavailable",
			desktop: "GNOME",
			procs:   Unavailable(),
			want:    "gnome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"XDG_SESSION_TYPE": "wayland"}
			if tt.desktop != "" {
				env["XDG_CURRENT_DESKTOP"] = tt.desktop
			}

			d := newTestDetector(t, t.TempDir(), env, WithProcessTable(tt.procs))
			info, err := d.Detect()
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.DesktopEnv)
		})
	}
}

func TestDetector_DesktopCrossCheckLogs(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(zerolog.New(&buf), WithRoot(t.TempDir()),
		WithLookupEnv(envLookup(map[string]string{"XDG_SESSION_TYPE": "x11", "XDG_CURRENT_DESKTOP": "GNOME"})),
		WithProcessTable(StaticTable{{PID: 20, Name: "kwin_x11"}}))
	require.NoError(t, err)

	info, err := d.Detect()
	require.NoError(t, err)
	assert.Equal(t, "kde", info.DesktopEnv)
	assert.Contains(t, buf.String(), "Desktop may be misidentified, KWin detected")
	assert.Contains(t, buf.String(), `"desktop":"gnome"`)
}

func TestDetector_DesktopNamesExtraFirst(t *testing.T) {
	env := map[string]string{"XDG_SESSION_TYPE": "x11", "XDG_CURRENT_DESKTOP": "ubuntu:GNOME"}
	d := newTestDetector(t, t.TempDir(), env, WithDesktopNames([]Mapping{{Pattern: `^ubuntu`, ID: "ubuntu-gnome"}}))

	info, err := d.Detect()
	require.NoError(t, err)
	assert.Equal(t, "ubuntu-gnome", info.DesktopEnv)
}
