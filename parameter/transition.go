package parameter

// Scroll transition
const (
	// ScrollMax is the scroll offset at which the hero transition completes
	ScrollMax = 600.0
	// MobileBreakpoint is the viewport width below which the mobile class applies
	MobileBreakpoint = 768
	// ScrollStep is the offset applied per wheel notch or arrow key in terminal previews
	ScrollStep = 40.0
)
