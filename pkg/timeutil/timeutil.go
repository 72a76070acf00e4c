// Package timeutil provides duration formatting helpers.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration compactly for log suffixes, in the style
// of the npm debug package: "3ms", "2s", "4m", "1h".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
