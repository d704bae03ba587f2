//go:build windows

package cli

import "golang.org/x/sys/windows"

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd uintptr) bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(fd), &mode)
	return err == nil
}
