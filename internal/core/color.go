package core

import "strconv"

// Color is the foreground color of a screen cell. ColorDefault leaves the
// terminal's own color in place.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple

	numColors
)

// ansi256 holds the xterm 256-color index of each color; the first
// sixteen match the basic palette.
var ansi256 = [numColors]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorPink:          213,
	ColorPurple:        99,
}

// Colors returns every defined color.
func Colors() []Color {
	out := make([]Color, 0, numColors)
	for c := range numColors {
		out = append(out, c)
	}
	return out
}

// ANSI returns the 256-color index as a string, or "" for ColorDefault
// and unknown colors.
func (c Color) ANSI() string {
	if c >= numColors || ansi256[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansi256[c])
}
