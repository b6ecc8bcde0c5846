package app

import "time"

const (
	minInterval = 10 * time.Millisecond
	maxInterval = 2 * time.Second
)

// stepInterval halves (faster) or doubles (slower) the round interval within
// [0, maxInterval]. Going faster from minInterval runs rounds every frame.
func stepInterval(d time.Duration, faster bool) time.Duration {
	if faster {
		if d <= minInterval {
			return 0
		}
		return d / 2
	}
	if d < minInterval {
		return minInterval
	}
	return min(d*2, maxInterval)
}

// kindForDigit maps the digit keys 1..9 to the n-th kind.
func kindForDigit(digit int, kinds []string) (string, bool) {
	if digit < 1 || digit > len(kinds) {
		return "", false
	}
	return kinds[digit-1], true
}
