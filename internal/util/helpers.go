package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// MoveIndex returns the destination of moving index i by delta within n
// items, and false when the move would leave the range.
func MoveIndex(i, delta, n int) (int, bool) {
	j := i + delta
	if i < 0 || i >= n || j < 0 || j >= n {
		return i, false
	}
	return j, true
}
