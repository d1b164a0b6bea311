package theme

import (
	"errors"
	"strings"
)

var ErrInvalidColor = errors.New("accent color not in palette")

type Color string

const (
	Red    Color = "#FF3860"
	Gold   Color = "#FFD700"
	Blue   Color = "#00A7E1"
	Teal   Color = "#14B8A6"
	Purple Color = "#8B5CF6"
)

// Palette lists the accent colors on offer. The first entry is the default.
var Palette = []Color{Red, Gold, Blue, Teal, Purple}

// ParseColor matches s against the palette, ignoring case and an optional
// leading '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	for _, c := range Palette {
		if strings.EqualFold(s, strings.TrimPrefix(string(c), "#")) {
			return c, nil
		}
	}
	return "", ErrInvalidColor
}

func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

type State struct {
	DarkMode    bool  `json:"darkMode"`
	AccentColor Color `json:"accentColor"`
}

func DefaultState() State {
	return State{DarkMode: false, AccentColor: Palette[0]}
}

// ColorScheme is the class the presentation layer puts on its root element.
func (s State) ColorScheme() string {
	if s.DarkMode {
		return "dark"
	}
	return "light"
}

// StyleAttributes are the CSS custom properties derived from the state.
// primary and accent are HSL triples.
func (s State) StyleAttributes() map[string]string {
	attrs := map[string]string{
		"--theme-color": string(s.AccentColor),
		"--primary":     "221 83% 53%",
		"--accent":      "347 77% 50%",
	}
	if s.DarkMode {
		attrs["--primary"] = "196 100% 47%"
		attrs["--accent"] = "349 89% 60%"
	}
	return attrs
}
