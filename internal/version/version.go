// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other confkit packages to avoid import cycles.

package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the module version stamped by go install, or "dev".
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}()

// String reports the binary version along with the configuration file
// format it reads and writes. A format of 0 is unversioned.
func String(format int) string {
	if format == 0 {
		return Version + " (unversioned config)"
	}
	return fmt.Sprintf("%s (config format %d)", Version, format)
}
