package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a palette entry shared by the terminal and pixel renderers.
// The terminal maps it to an ANSI 256-colour code, the rasterizer to RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// RGBA returns the pixel colour for this palette entry.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return colornames.Red
	case ColorGreen:
		return colornames.Limegreen
	case ColorYellow:
		return colornames.Gold
	case ColorBlue:
		return colornames.Royalblue
	case ColorCyan:
		return colornames.Cyan
	case ColorOrange:
		return colornames.Darkorange
	case ColorGray:
		return colornames.Gray
	default:
		return colornames.White
	}
}

// ANSI returns the 256-colour terminal code, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "9"
	case ColorGreen:
		return "10"
	case ColorYellow:
		return "11"
	case ColorBlue:
		return "12"
	case ColorCyan:
		return "14"
	case ColorWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
