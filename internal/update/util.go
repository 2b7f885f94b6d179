package update

// clamp keeps cursor positions inside [low, high]; an empty list
// collapses to zero.
func clamp(v, low, high int) int {
	if high < low {
		return low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
