package constants

// Glyphs
const (
	MoleUpGlyph   = "(o.o)"
	MoleHitGlyph  = "(x_x)"
	MolehillGlyph = "/^^^^^\\"
	HoleGlyph     = "_______"
	StarGlyph     = '*'

	// HoleWidth and HoleHeight size one hole cell including padding
	HoleWidth  = 11
	HoleHeight = 5
)

// Status Bar Text
const (
	AudioStr       = " ♪ "
	MutedStr       = " x "
	RoundOverText  = " TIME'S UP! press r for a new round "
	HelpText       = "click or 1-9 to whack · m mute · r restart · q quit"
	StatusBarLines = 2
)
