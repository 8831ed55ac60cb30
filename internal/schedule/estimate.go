package schedule

import (
	"strings"
	"unicode"
)

// Default estimate minutes applied when an estimate string carries no
// recognizable unit keyword.
const (
	DefaultModuleMin   = 60
	DefaultTopicMin    = 60
	DefaultSubtopicMin = 15
)

// ParseEstimate converts a free-text duration estimate ("2-3 hours",
// "1 week", "45 minutes") into minutes. The first run of digits is taken as
// the magnitude (1 if none); the unit is inferred by substring match. A
// string with no recognizable unit keyword falls back to fallbackMin,
// regardless of any digits it contains.
func ParseEstimate(estimate string, fallbackMin int) int {
	s := strings.ToLower(strings.TrimSpace(estimate))
	if s == "" {
		return fallbackMin
	}

	value := firstInt(s)

	switch {
	case strings.Contains(s, "hour"):
		return value * 60
	case strings.Contains(s, "day"):
		return value * 1440
	case strings.Contains(s, "week"):
		return value * 10080
	case strings.Contains(s, "minute"):
		return value
	default:
		return fallbackMin
	}
}

// firstInt extracts the first contiguous run of digits, defaulting to 1.
func firstInt(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiSafe(s[start:i])
		}
	}
	if start >= 0 {
		return atoiSafe(s[start:])
	}
	return 1
}

func atoiSafe(digits string) int {
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 1 << 30
		}
	}
	return n
}
