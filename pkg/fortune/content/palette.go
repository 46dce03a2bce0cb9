package content

// Decoration templates wrap a fortune with one symbol on each side. Every
// template takes three positional fillers, in order: symbol, text, symbol.

// colorPalette carries the ANSI color variants, reset included.
var colorPalette = []string{
	"\033[91m %s %s %s\033[00m", // red
	"\033[92m %s %s %s\033[00m", // green
	"\033[93m %s %s %s\033[00m", // yellow
	"\033[95m %s %s %s\033[00m", // magenta
	"\033[94m %s %s %s\033[00m", // blue
	"\033[96m %s %s %s\033[00m", // cyan
	"\033[97m %s %s %s\033[00m", // gray
}

// plainPalette is used when stdout is not a terminal or color is disabled.
var plainPalette = []string{
	" %s %s %s",
}

// Palette returns the decoration templates, colored or plain.
func Palette(color bool) []string {
	if color {
		return colorPalette
	}
	return plainPalette
}
