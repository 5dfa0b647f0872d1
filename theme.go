package mpctui

import "fmt"

// Theme resolves color pairs and decorations to concrete styles.
type Theme struct {
	Regular   Style // default text and unfocused values
	Highlight Style // focused input values and the active button
	Hint      Style // numeric action hints
	Border    Style // panel border
}

// ThemeDefault draws highlights by inverting the terminal colors.
var ThemeDefault = Theme{
	Regular:   DefaultStyle(),
	Highlight: DefaultStyle().Inverse(),
	Hint:      DefaultStyle().Dim(),
	Border:    DefaultStyle(),
}

// ThemeMonochrome is a minimal theme using only attributes, for terminals
// where reverse video is hard to read.
var ThemeMonochrome = Theme{
	Regular:   DefaultStyle(),
	Highlight: DefaultStyle().Bold().Underline(),
	Hint:      DefaultStyle().Dim(),
	Border:    DefaultStyle().Dim(),
}

// ThemeClassic paints the panel white on black and highlights black on
// white, regardless of the terminal's own colors.
var ThemeClassic = Theme{
	Regular:   DefaultStyle().Foreground(White).Background(Black),
	Highlight: DefaultStyle().Foreground(Black).Background(White),
	Hint:      DefaultStyle().Foreground(White).Background(Black).Dim(),
	Border:    DefaultStyle().Foreground(White).Background(Black),
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Pair returns the style for a color pair.
func (t Theme) Pair(p ColorPair) Style {
	if p == PairHighlight {
		return t.Highlight
	}
	return t.Regular
}

// ThemeByName looks up a theme by its configuration name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return ThemeDefault, nil
	case "mono", "monochrome":
		return ThemeMonochrome, nil
	case "classic":
		return ThemeClassic, nil
	}
	return Theme{}, fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, name)
}
