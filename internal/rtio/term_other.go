//go:build !linux

package rtio

// IsTerminal reports whether fd refers to a terminal. Interactive input
// is only detected on Linux; elsewhere input is always read as lines.
func IsTerminal(fd uintptr) bool {
	return false
}
