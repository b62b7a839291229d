// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.


// Package version reports the version of the program. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher64/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information embedded in the
// binary by the go tool.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher64"

// set by the linker for release builds
var number string

// Version returns the version string, the VCS revision and whether this is a
// numbered release. The revision has the suffix "+dirty" if the source had
// been modified since the last commit.
//
// The version string is "unreleased" if the program was not built as a
// release and "local" if there is no VCS information. This can happen when
// running with "go run ."
func Version() (string, string, bool) {
	if number != "" {
		return number, revision(), true
	}
	if _, ok := buildSetting("vcs"); ok {
		return "unreleased", revision(), false
	}
	return "local", revision(), false
}

// String returns a single line suitable for printing in response to a version
// request on the command line.
func String() string {
	v, r, release := Version()
	if release {
		return ApplicationName + " " + v
	}
	return ApplicationName + " " + v + " (" + r + ")"
}

func revision() string {
	r, ok := buildSetting("vcs.revision")
	if !ok || r == "" {
		return "no revision information"
	}
	if m, _ := buildSetting("vcs.modified"); m == "true" {
		return r + "+dirty"
	}
	return r
}

func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}
