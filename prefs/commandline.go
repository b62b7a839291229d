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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack allows preferences to be overridden for the
// duration of a session. each group in the stack is a set of key/value
// pairs. values are consumed as they are used
type commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

var cmdline commandLine

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.stack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// prefs string is a list of key/value pairs separated by semi-colons:
//
//	sid.realmode::true; sid.samplerate::48000
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	grp := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		grp[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	cmdline.stack = append(cmdline.stack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the unused preferences of the group as a
// prefs string, sorted by key.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return ""
	}

	popped := cmdline.stack[len(cmdline.stack)-1]
	cmdline.stack = cmdline.stack[:len(cmdline.stack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, popped[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for key from the most recent group.
// The value is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return false, nil
	}

	grp := cmdline.stack[len(cmdline.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
