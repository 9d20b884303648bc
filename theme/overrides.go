// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette overrides let users re-color the decorations without patching
// the host program. The file is YAML; every key is optional and missing
// entries keep the base palette's value:
//
//	active:
//	  headerbar: "#ebebeb"
//	  button_idle: "#d8d8d8"
//	  button_hover: "#cfcfcf"
//	  button_icon: "#2a2a2a"
//	  border: "#dcdcdc"
//	  font: "#2f2f2f"
//	inactive:
//	  headerbar: "#fafafa"
type overridesFile struct {
	Active   colorMapOverrides `yaml:"active"`
	Inactive colorMapOverrides `yaml:"inactive"`
}

type colorMapOverrides struct {
	Headerbar   string `yaml:"headerbar"`
	ButtonIdle  string `yaml:"button_idle"`
	ButtonHover string `yaml:"button_hover"`
	ButtonIcon  string `yaml:"button_icon"`
	Border      string `yaml:"border"`
	Font        string `yaml:"font"`
}

// ParseOverrides applies the palette overrides in data on top of base.
func ParseOverrides(data []byte, base ColorTheme) (ColorTheme, error) {
	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("theme: parsing overrides: %w", err)
	}
	if err := f.Active.apply(&base.Active); err != nil {
		return base, err
	}
	if err := f.Inactive.apply(&base.Inactive); err != nil {
		return base, err
	}
	return base, nil
}

// LoadOverrides reads a YAML override file and applies it on top of base.
func LoadOverrides(path string, base ColorTheme) (ColorTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("theme: reading overrides: %w", err)
	}
	return ParseOverrides(data, base)
}

func (o *colorMapOverrides) apply(m *ColorMap) error {
	for _, e := range []struct {
		value string
		dst   *color.NRGBA
	}{
		{o.Headerbar, &m.Headerbar},
		{o.ButtonIdle, &m.ButtonIdle},
		{o.ButtonHover, &m.ButtonHover},
		{o.ButtonIcon, &m.ButtonIcon},
		{o.Border, &m.Border},
		{o.Font, &m.Font},
	} {
		if e.value == "" {
			continue
		}
		c, err := parseHexColor(e.value)
		if err != nil {
			return err
		}
		*e.dst = c
	}
	return nil
}

// parseHexColor parses #rrggbb and #rrggbbaa.
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("theme: color %q: missing '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("theme: color %q: want #rrggbb or #rrggbbaa", s)
	}
	var v [4]uint8
	v[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("theme: color %q: invalid hex digit", s)
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
