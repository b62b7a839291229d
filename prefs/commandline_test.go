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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/test"
)

func TestCommandLineGroup(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// whitespace around keys and values is ignored. unused values are
	// returned sorted by key
	prefs.PushCommandLineStack(" sid.samplerate:: 48000 ;sid.realmode::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sid.realmode::true; sid.samplerate::48000")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// pairs without the separator are dropped
	prefs.PushCommandLineStack("sid.highquality;sid.model1::6581")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sid.model1::6581")
}

func TestCommandLineConsumption(t *testing.T) {
	prefs.PushCommandLineStack("sid.attenuation::30; sid.model2::8580")

	ok, v := prefs.GetCommandLinePref("sid.attenuation")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "30")

	// a value is only given out once
	ok, _ = prefs.GetCommandLinePref("sid.attenuation")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("sid.videostandard")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sid.model2::8580")
}

func TestCommandLineNesting(t *testing.T) {
	prefs.PushCommandLineStack("sid.realmode::true")
	prefs.PushCommandLineStack("sid.realmode::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("sid.realmode")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	ok, v = prefs.GetCommandLinePref("sid.realmode")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
