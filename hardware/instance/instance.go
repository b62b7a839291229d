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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the C64 type, but is not actually the C64 itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel.
package instance

import (
	"github.com/spf13/afero"

	"github.com/jetsetilly/gopher64/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main     Label = ""
	Renderer Label = "renderer"
	Testing  Label = "testing"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the C64 type, but is not actually the C64
// itself.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences

	// rather than accessing the fields in Prefs directly, the emulation
	// should read the fields in Live. these values are updated with the
	// UpdateLive() function and may be altered by the emulation itself (for
	// example, when a tune requires real SID mode)
	Live preferences.Live
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new prefs instance will be
// created from the preferences file on disk. Providing a non-nil value allows
// the preferences of more than one C64 instance to be synchronised.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences(afero.NewOsFs())
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs
	ins.UpdateLive(false)

	return ins, nil
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance is allowed to create log entries.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}

// UpdateLive updates the live preference values for the running emulation.
// The ntsc argument is used if the video standard preference is set to AUTO.
func (ins *Instance) UpdateLive(ntsc bool) {
	ins.Live = ins.Prefs.Live(ntsc)
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
	ins.UpdateLive(false)
}
