package parameter

// Layout & Margins
const (
	// TopMargin is the status bar
	TopMargin = 1

	// MessageRows is the height of the message bar under the map
	MessageRows = 2

	// Map projection, terminal cells are about twice as tall as wide
	CellsPerMeterX = 2.0
	CellsPerMeterY = 1.0

	// GridSpacing is the distance in meters between ground markers
	GridSpacing = 4.0
)

// UI Symbols
const (
	AudioStr  = "♫ "
	PausedStr = "PAUSED "
	BladeStr  = "⚔ "
)

// View colors, hex encoded for go-colorful
const (
	ColorBackground = "#1a1b26"
	ColorGround     = "#3b4261"
	ColorDormant    = "#565f89"
	ColorRevealed   = "#c0caf5"
	ColorPrompting  = "#e0af68"
	ColorActivated  = "#9ece6a"
	ColorResolved   = "#4f7a3a"
	ColorPlayer     = "#7dcfff"
	ColorStatusFg   = "#a9b1d6"
	ColorStatusBg   = "#24283b"
	ColorMessageFg  = "#f7f7f7"
)

// LightGlowScale maps light intensity to the strongest tint alpha
const LightGlowScale = 0.06
