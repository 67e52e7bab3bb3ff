package imgui

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Theme is an ordered list of style-color overrides that can be pushed as
// one scope. Order matters only for readability; the whole theme is popped
// in a single native call.
type Theme struct {
	Name   string
	Colors []ThemeColor
}

// ThemeColor overrides one style color slot.
type ThemeColor struct {
	Slot  StyleColor
	Color Vec4
}

// themeFile is the on-disk YAML shape.
type themeFile struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`
}

// styleColorNames maps YAML keys to style color slots. Keys follow the
// native ImGuiCol_* names without the prefix.
var styleColorNames = map[string]StyleColor{
	"Text":           ColText,
	"TextDisabled":   ColTextDisabled,
	"WindowBg":       ColWindowBg,
	"ChildBg":        ColChildBg,
	"PopupBg":        ColPopupBg,
	"Border":         ColBorder,
	"FrameBg":        ColFrameBg,
	"FrameBgHovered": ColFrameBgHovered,
	"FrameBgActive":  ColFrameBgActive,
	"CheckMark":      ColCheckMark,
	"SliderGrab":     ColSliderGrab,
	"Button":         ColButton,
	"ButtonHovered":  ColButtonHovered,
	"ButtonActive":   ColButtonActive,
	"Header":         ColHeader,
	"HeaderHovered":  ColHeaderHovered,
	"HeaderActive":   ColHeaderActive,
	"Separator":      ColSeparator,
	"PlotLines":      ColPlotLines,
	"PlotHistogram":  ColPlotHistogram,
}

// LoadTheme reads a theme from YAML. Colors are hex strings in #RRGGBB or
// #RRGGBBAA form, keyed by the native color slot name:
//
//	name: midnight
//	colors:
//	  Text: "#e6e6e6"
//	  Button: "#20304080"
func LoadTheme(r io.Reader) (Theme, error) {
	var f themeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Theme{}, fmt.Errorf("imgui: decoding theme: %w", err)
	}

	t := Theme{Name: f.Name, Colors: make([]ThemeColor, 0, len(f.Colors))}
	for key, hex := range f.Colors {
		slot, ok := styleColorNames[key]
		if !ok {
			return Theme{}, fmt.Errorf("imgui: theme %q: unknown color slot %q", f.Name, key)
		}
		col, err := parseHexColor(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("imgui: theme %q: slot %s: %w", f.Name, key, err)
		}
		t.Colors = append(t.Colors, ThemeColor{Slot: slot, Color: col})
	}
	return t, nil
}

func parseHexColor(s string) (Vec4, error) {
	if len(s) == 0 || s[0] != '#' {
		return Vec4{}, fmt.Errorf("color %q must start with '#'", s)
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Vec4{}, fmt.Errorf("color %q must be #RRGGBB or #RRGGBBAA", s)
	}
	var parts [4]uint8
	parts[3] = 0xFF
	for i := 0; i*2 < len(digits); i++ {
		hi, ok1 := hexNibble(digits[i*2])
		lo, ok2 := hexNibble(digits[i*2+1])
		if !ok1 || !ok2 {
			return Vec4{}, fmt.Errorf("color %q has invalid hex digits", s)
		}
		parts[i] = hi<<4 | lo
	}
	return RGBA(parts[0], parts[1], parts[2], parts[3]), nil
}

func hexNibble(c byte) (uint8, bool) {
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

// ThemeToken tracks a pushed theme. End pops every color the theme pushed
// in a single native call.
type ThemeToken struct {
	ui    *Ui
	seq   uint64
	count int32
	ended bool
}

// PushTheme pushes all of the theme's color overrides and returns a token
// that pops them together.
func (ui *Ui) PushTheme(t Theme) *ThemeToken {
	for _, tc := range t.Colors {
		ui.native.PushStyleColor(tc.Slot.Native(), tc.Color)
	}
	return &ThemeToken{
		ui:    ui,
		seq:   ui.BeginScope(scopeTheme),
		count: int32(len(t.Colors)),
	}
}

// End pops the theme's style colors.
func (t *ThemeToken) End() {
	if t.ended {
		panic("imgui: ThemeToken ended twice")
	}
	t.ui.EndScope(scopeTheme, t.seq)
	t.ended = true
	if t.count > 0 {
		t.ui.native.PopStyleColor(t.count)
	}
}

// Themed runs fn with the theme applied, popping it on exit.
func (ui *Ui) Themed(t Theme, fn func()) {
	tok := ui.PushTheme(t)
	defer tok.End()
	fn()
}
