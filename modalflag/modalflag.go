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


package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes divides the command line into modes. The Output field should be set
// before calling Parse() otherwise help messages will not be seen.
type Modes struct {
	Output io.Writer

	// flags for the current mode. a new flag set is created by NewArgs() and
	// NewMode()
	flags  *flag.FlagSet
	parsed bool

	args    []string
	argsIdx int

	// the sub-modes that can be selected by the next call to Parse(). the
	// first entry is the default
	subModes []string

	// every mode selected since NewArgs() was called
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected since NewArgs() was called.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed. Usually the command line arguments
// without the program name.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new mode. The remaining arguments are parsed with a new set
// of flags and sub-modes.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp is printed after the flag and sub-mode information when help
// is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the most recent call to
// NewMode(). It is true even if Parse() returned an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing of the mode was successful. if sub-modes were added then
	// Mode() returns the selected sub-mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed to Output
	ParseHelp

	// the error is returned as the second return value
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	u := &usage{}
	md.flags.SetOutput(u)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				u.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}

		// unrecognised flags belong to the default sub-mode if there is one
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// the flags of this mode have been consumed
	md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg()

	if len(md.subModes) > 0 {
		md.path = append(md.path, md.selectSubMode())
	}

	return ParseContinue, nil
}

// the sub-mode named by the first remaining argument. the argument is
// consumed if it names a sub-mode
func (md *Modes) selectSubMode() string {
	if md.argsIdx < len(md.args) {
		arg := strings.ToUpper(md.args[md.argsIdx])
		for _, m := range md.subModes {
			if m == arg {
				md.argsIdx++
				return m
			}
		}
	}
	return md.subModes[0]
}

// RemainingArgs returns the arguments that are neither flags nor a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). Returns the empty string if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, help string) *bool {
	return md.flags.Bool(name, value, help)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, help string) *int {
	return md.flags.Int(name, value, help)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, help string) *float64 {
	return md.flags.Float64(name, value, help)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, help string) *string {
	return md.flags.String(name, value, help)
}

// Visit calls fn with the name of every flag that was set on the command line.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
