//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package cli

// IsTerminal reports whether fd refers to a terminal. On platforms
// without a probe we assume non-interactive output.
func IsTerminal(fd uintptr) bool {
	return false
}
