package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"deskenv/internal/model"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const (
	colorReset = "\033[0m"
	colorKey   = "\033[96m" // Bright cyan
)

func Formats() []string {
	return []string{FormatText, FormatYAML, FormatJSON}
}

func IsFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// Render writes r to w in the given format. color only affects text output.
func Render(w io.Writer, r model.Report, format string, color bool) error {
	switch format {
	case FormatText:
		return renderText(w, r, color)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

type field struct {
	key   string
	value string
}

func renderText(w io.Writer, r model.Report, color bool) error {
	env := r.Environment
	fields := []field{
		{"Distro", env.DistroName},
		{"Version", env.DistroVersion},
		{"Session", env.SessionType},
		{"Desktop", env.DesktopEnv},
	}

	if h := r.Host; h != nil {
		platform := strings.TrimSpace(h.Platform + " " + h.PlatformVersion)
		fields = append(fields,
			field{"Platform", platform},
			field{"Kernel", h.Kernel},
			field{"Arch", h.Arch},
			field{"Host", strings.TrimSpace(h.Vendor + " " + h.Product)},
			field{"Chassis", h.Chassis},
		)
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.key)+1)
	}

	for _, f := range fields {
		key := fmt.Sprintf("%-*s", width, f.key+":")
		if color {
			key = colorKey + key + colorReset
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", key, getValueOrDefault(f.value, "unknown")); err != nil {
			return err
		}
	}

	return nil
}

func getValueOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
