// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for console
// binaries.
//
// Version information is injected at build time via -ldflags, for
// example:
//
//	go build -ldflags "-X github.com/DanyBoi22/Volttron-TEC/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildTime)
}

// Print writes the standard --version line for the named binary.
func Print(name string) {
	fmt.Printf("%s %s\n  Go: %s\n  Platform: %s/%s\n",
		name, Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
