package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbField      = tcell.NewRGBColor(36, 52, 30) // Dark grass

	RgbMolehill = tcell.NewRGBColor(139, 90, 43)   // Soil brown
	RgbHole     = tcell.NewRGBColor(60, 40, 20)    // Dark soil
	RgbMoleUp   = tcell.NewRGBColor(200, 160, 120) // Mole fur
	RgbMoleHit  = tcell.NewRGBColor(255, 120, 120) // Whacked
	RgbLabel    = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbStarBright = tcell.NewRGBColor(255, 255, 0)  // Bright yellow
	RgbStarDim    = tcell.NewRGBColor(255, 200, 80) // Amber
	RgbStarFade   = tcell.NewRGBColor(160, 120, 60) // Faded amber

	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBg      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbBestBg       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbTimeBg       = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbTimeLowBg    = tcell.NewRGBColor(200, 50, 50)   // Red when time is short
	RgbRoundID      = tcell.NewRGBColor(120, 120, 140) // Muted gray
	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)     // Bright red
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)     // Bright green
	RgbDebugText    = tcell.NewRGBColor(0, 200, 200)   // Cyan

	RgbBannerBg   = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbBannerText = tcell.NewRGBColor(255, 255, 255) // White
)

// StarColor returns the star color for an animation frame
func StarColor(frame int) tcell.Color {
	switch frame {
	case 0:
		return RgbStarBright
	case 1:
		return RgbStarDim
	default:
		return RgbStarFade
	}
}

// TimeColor returns the time background, turning red in the last five seconds
func TimeColor(remaining int) tcell.Color {
	if remaining <= 5 {
		return RgbTimeLowBg
	}
	return RgbTimeBg
}
