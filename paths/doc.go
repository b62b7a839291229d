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

// Package paths contains functions to prepare paths to gopher64 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file.
//
//	p, err := paths.ResourcePath(fs, "", "preferences")
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".gopher64", is present in the program's current directory then that is
// the base path that is used. If it is not present then the user's config
// directory is used, as returned by os.UserConfigDir(). On a modern Linux
// system the path returned in the example above will be:
//
//	/home/user/.config/gopher64/preferences
//
// Any directories in the path are created if necessary.
package paths
