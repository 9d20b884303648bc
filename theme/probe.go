// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"os/exec"
	"strings"
)

// The desktop settings probes shell out to the usual freedesktop tools and
// degrade to defaults when those are missing. They are plain collaborator
// calls; nothing is cached process-wide.

func commandOutput(name string, args ...string) (string, bool) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", false
	}
	return string(out), true
}

// PreferDark reports whether the desktop asks for a dark color scheme.
//
// It first consults gsettings and then falls back to the settings portal
// via dbus-send, so it works on both GNOME and portal-only sessions.
func PreferDark() bool {
	if out, ok := commandOutput("gsettings", "get", "org.gnome.desktop.interface", "color-scheme"); ok {
		if strings.Contains(out, "prefer-dark") {
			return true
		}
	}
	// Outputs something like: `variant       variant          uint32 1`.
	out, ok := commandOutput("dbus-send",
		"--print-reply=literal",
		"--dest=org.freedesktop.portal.Desktop",
		"/org/freedesktop/portal/desktop",
		"org.freedesktop.portal.Settings.Read",
		"string:org.freedesktop.appearance",
		"string:color-scheme")
	return ok && strings.HasSuffix(strings.TrimSpace(out), "uint32 1")
}

// TitlebarFontSetting returns the raw GNOME titlebar font setting, with
// the surrounding quotes stripped, e.g. `Cantarell Bold 12`.
func TitlebarFontSetting() (string, bool) {
	out, ok := commandOutput("gsettings", "get", "org.gnome.desktop.wm.preferences", "titlebar-font")
	if !ok {
		return "", false
	}
	s := strings.Trim(strings.TrimSpace(out), "'")
	if s == "" {
		return "", false
	}
	return s, true
}

// ButtonLayoutSetting returns the raw GNOME button layout setting, e.g.
// `appicon:minimize,maximize,close`.
func ButtonLayoutSetting() (string, bool) {
	out, ok := commandOutput("gsettings", "get", "org.gnome.desktop.wm.preferences", "button-layout")
	if !ok {
		return "", false
	}
	s := strings.Trim(strings.TrimSpace(out), "'")
	if s == "" {
		return "", false
	}
	return s, true
}
