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


package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/sidfile"
)

type infoStyles struct {
	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	table lipgloss.Style
}

func newInfoStyles(styled bool) infoStyles {
	if !styled {
		return infoStyles{
			title: lipgloss.NewStyle(),
			key:   lipgloss.NewStyle().Width(10),
			value: lipgloss.NewStyle(),
			table: lipgloss.NewStyle(),
		}
	}
	return infoStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)).Padding(0, 1),
		key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)).Width(10),
		value: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		table: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func clockString(tune *sidfile.Tune) string {
	switch {
	case tune.IsPAL():
		return "PAL"
	case tune.IsNTSC():
		return "NTSC"
	}
	return "PAL/NTSC"
}

// writeInfo writes the header information of the tune. Colours and borders
// are only used if styled is true.
func writeInfo(w io.Writer, tune *sidfile.Tune, styled bool) {
	st := newInfoStyles(styled)

	var rows []string
	row := func(key string, value string) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, st.key.Render(key), st.value.Render(value)))
	}

	row("Name", tune.Name)
	row("Author", tune.Author)
	row("Released", tune.Released)
	row("Format", fmt.Sprintf("%s v%d", tune.Magic, tune.Version))
	row("Load", fmt.Sprintf("%04x - %04x", tune.LoadAddress, tune.LoadEnd()-1))
	row("Init", fmt.Sprintf("%04x", tune.InitAddress))
	if tune.PlayAddress == 0 {
		row("Play", "interrupt")
	} else {
		row("Play", fmt.Sprintf("%04x", tune.PlayAddress))
	}
	row("Songs", fmt.Sprintf("%d (start %d)", tune.Songs, tune.StartSong))
	row("Clock", clockString(tune))

	for i, a := range tune.SIDAddress {
		if a == 0 {
			continue
		}
		model := "unknown"
		if m, ok := tune.Model(i); ok {
			model = m.String()
		}
		row(fmt.Sprintf("SID%d", i+1), fmt.Sprintf("%04x %s", a, model))
	}

	row("Hash", tune.Hash)

	var banks []string
	for _, l := range strings.Split(strings.TrimSpace(memorymap.Summary(memorymap.PortFor(tune.InitAddress))), "\n") {
		banks = append(banks, strings.ReplaceAll(l, "\t", " "))
	}
	row("Init map", strings.Join(banks, "\n"))

	fmt.Fprintln(w, st.title.Render(tune.String()))
	fmt.Fprintln(w, st.table.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}
