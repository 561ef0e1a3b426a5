package transition

import "time"

// CountUp returns the displayed value of a stat counter elapsed into its animation
// Linear in time, floored, and held at value once duration has passed
func CountUp(value int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return value
	}
	if elapsed <= 0 {
		return 0
	}
	progress := float64(elapsed) / float64(duration)
	return int(progress * float64(value))
}
