package mpctui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Auto requests a widget's default width.
const Auto = -1

// titleReserve is the part of the interior a truncated title gives up to its
// decoration: "= " before the text, "..." and " =" after it.
const titleReserve = 7

const ellipsis = "..."

// center pads s on both sides with fill to width cells. The odd cell goes to
// the right. Strings already at or over width are returned unchanged.
func center(s string, width int, fill rune) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	f := string(fill)
	return strings.Repeat(f, left) + s + strings.Repeat(f, pad-left)
}

// formatTitle returns the heading text that will be shown and the full
// decorated line, which is exactly width cells wide.
func formatTitle(text string, width int) (shown, line string) {
	if width <= 0 {
		return "", ""
	}
	shown = text
	if runewidth.StringWidth(text)+2 > width {
		shown = runewidth.Truncate(text, max(width-titleReserve, 0), "") + ellipsis
	}
	line = center(" "+shown+" ", width, '=')
	line = runewidth.Truncate(line, width, "")
	return shown, line
}

// formatInput splits an input into the label prefix, the padded value run
// that takes the focus color, and the trailing separator.
func formatInput(label, value string, width int) (prefix, field, sep string) {
	fieldWidth := max(width, runewidth.StringWidth(label)+1)
	return label + ": ", runewidth.FillRight(value, fieldWidth), " "
}

// formatButton brackets label centered in width cells. Auto gives the label
// one cell of padding on each side.
func formatButton(label string, width int) string {
	if width < 0 {
		width = runewidth.StringWidth(label) + 2
	}
	return "[" + center(label, width, ' ') + "]"
}
