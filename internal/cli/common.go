// Package cli provides shared plumbing for the Lox command-line tools:
// version information, exit helpers, and terminal detection.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	semver "github.com/Masterminds/semver/v3"
)

// Version information for all CLI tools
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-23"
	CommitSHA = "unknown" // Will be set during build
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// SemVer returns the tool version as a parsed semantic version
func SemVer() (*semver.Version, error) {
	return semver.NewVersion(Version)
}

// SatisfiesConstraint reports whether the tool version satisfies the
// given semver constraint expression, e.g. ">=0.1.0". Scripts use this
// through the --check-version flag to assert a minimum tool version.
func SatisfiesConstraint(expr string) (bool, error) {
	v, err := SemVer()
	if err != nil {
		return false, fmt.Errorf("invalid tool version %q: %w", Version, err)
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", expr, err)
	}
	return c.Check(v), nil
}

// PrintVersion prints version information in a consistent format
func PrintVersion(toolName string, jsonOutput bool) {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err == nil {
			fmt.Println(string(data))
			return
		}
		fmt.Fprintf(os.Stderr, "Error: Failed to marshal version info to JSON: %v\n", err)
	}

	fmt.Printf("%s v%s (%s/%s, %s, built %s)\n",
		toolName, info.Version, info.Platform, info.Arch, info.GoVersion, info.BuildDate)
}

// ExitWithError prints a formatted error to stderr and exits with
// status 1
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
