package service

// WarnThreshold is the usage fraction at which the site capacity warning
// fires.
const WarnThreshold = 0.8

// UsageFraction returns the fraction of capacity used, clamped to [0, 1].
// A non-positive capacity means "no limit configured" and yields 0 rather
// than dividing by zero.
func UsageFraction(total, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}

	fraction := total / capacity
	if fraction > 1 {
		return 1
	}
	if fraction < 0 {
		return 0
	}

	return fraction
}

// OverWarningThreshold reports whether a usage fraction has reached the
// warning threshold. Exactly 80% warns.
func OverWarningThreshold(fraction float64) bool {
	return fraction >= WarnThreshold
}
