package parameter

// Camera used by the hero render sinks
const (
	CameraDistance = 8.0
	CameraFOV      = 60.0
)

// Poster export
const (
	PosterWidth       = 1200
	PosterHeight      = 630
	PosterSupersample = 2
	PosterWarmFrames  = 90
)

// Terminal cells are roughly twice as tall as wide
const CellAspect = 2.0

// Accent colors shared by sinks
const (
	AccentR = 0x0e
	AccentG = 0xa5
	AccentB = 0xe9
)

// CellPixelWidth approximates one terminal column in CSS pixels for viewport classing
const CellPixelWidth = 10

// Preview overlay
const (
	PreviewLogFile  = "aspire-preview.log"
	PreviewHUDRow   = 0
	PreviewNotFound = "404 - page not found"
)
