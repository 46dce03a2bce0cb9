package fortune

import "time"

// valentinesSoon reports whether now falls in the window from late January
// through Valentine's Day: January 30 to February 14, inclusive.
func valentinesSoon(now time.Time) bool {
	return (now.Month() == time.January && now.Day() > 29) ||
		(now.Month() == time.February && now.Day() <= 14)
}
