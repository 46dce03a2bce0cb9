package fortune

import (
	"testing"
	"time"
)

func TestValentinesSoon(t *testing.T) {
	date := func(month time.Month, day int) time.Time {
		return time.Date(2026, month, day, 12, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "January 29 - inactive", now: date(time.January, 29), want: false},
		{name: "January 30 - active", now: date(time.January, 30), want: true},
		{name: "January 31 - active", now: date(time.January, 31), want: true},
		{name: "February 1 - active", now: date(time.February, 1), want: true},
		{name: "February 14 - active", now: date(time.February, 14), want: true},
		{name: "February 15 - inactive", now: date(time.February, 15), want: false},
		{name: "mid-year - inactive", now: date(time.June, 1), want: false},
		{name: "December 31 - inactive", now: date(time.December, 31), want: false},
		{name: "early January - inactive", now: date(time.January, 2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valentinesSoon(tt.now); got != tt.want {
				t.Errorf("valentinesSoon(%s) = %v, want %v", tt.now.Format("Jan 2"), got, tt.want)
			}
		})
	}
}
