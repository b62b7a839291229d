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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6))
	repeatStyle = lipgloss.NewStyle().Faint(true)
)

// Colorizer applies basic coloring rules to logging output. It is intended to
// be passed to SetEcho() when output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Each line is expected to be in
// the "tag: detail" form of a log entry.
func (c Colorizer) Write(p []byte) (int, error) {
	var s strings.Builder

	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			s.WriteString("\n")
			continue
		}

		s.WriteString(tagStyle.Render(tag))
		s.WriteString(": ")

		if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
			s.WriteString(detail[:i])
			s.WriteString(repeatStyle.Render(detail[i:]))
		} else {
			s.WriteString(detail)
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
