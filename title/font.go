// SPDX-License-Identifier: Unlicense OR MIT

package title

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/wayland-contrib/adwaita/theme"
)

// FontPreference describes the desktop's titlebar font setting.
type FontPreference struct {
	Name   string
	Style  string
	PtSize float64
}

// DefaultFontPreference matches what GNOME falls back to when the
// setting is unreadable.
func DefaultFontPreference() FontPreference {
	return FontPreference{Name: "sans-serif", PtSize: 10}
}

// ParseFontPreference parses a setting string such as `Cantarell 12` or
// `Cantarell Bold 11`. Missing pieces keep their defaults.
func ParseFontPreference(conf string) FontPreference {
	pref := DefaultFontPreference()
	fields := strings.Split(conf, " ")
	if len(fields) == 0 || fields[0] == "" {
		return pref
	}
	pref.Name = fields[0]

	var style, size string
	if len(fields) > 1 {
		style = fields[1]
	}
	if len(fields) > 2 {
		size = fields[2]
	}
	// A lone numeric second word is the size, not a style.
	if style != "" && size == "" && isNumeric(style) {
		style, size = "", style
	}
	pref.Style = style
	if size != "" {
		if v, err := strconv.ParseFloat(size, 64); err == nil {
			pref.PtSize = v
		}
	}
	return pref
}

func isNumeric(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return len(s) > 0
}

// TitlebarFont probes the desktop for the configured titlebar font.
func TitlebarFont() FontPreference {
	s, ok := theme.TitlebarFontSetting()
	if !ok || s == "" {
		return DefaultFontPreference()
	}
	return ParseFontPreference(s)
}

// fontFileMatching resolves the preference to a font file through
// fc-match and maps it read-only. The mapping stays alive for the
// process; fonts are loaded once per frame.
func fontFileMatching(pref FontPreference) ([]byte, error) {
	pattern := pref.Name
	if pref.Style != "" {
		pattern += ":" + pref.Style
	}
	out, err := exec.Command("fc-match", "-f", "%{file}", pattern).Output()
	if err != nil {
		return nil, fmt.Errorf("title: fc-match %q: %w", pattern, err)
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return nil, fmt.Errorf("title: no font matches %q", pattern)
	}
	return mapFontFile(path)
}

func mapFontFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("title: open font: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("title: stat font: %w", err)
	}
	size := int(st.Size())
	if size <= 0 {
		return nil, fmt.Errorf("title: empty font file %q", path)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("title: mmap font: %w", err)
	}
	return data, nil
}
