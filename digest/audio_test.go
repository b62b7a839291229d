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


package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/test"
)

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	zero := a.Hash()

	samples := make([]int16, 50000)
	for i := range samples {
		samples[i] = int16(i * 7)
	}

	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectEquality(t, a.Samples(), len(samples))
	test.ExpectInequality(t, a.Hash(), zero)

	// the digest does not depend on how the samples are divided or on when
	// the hash is taken
	test.ExpectSuccess(t, b.SetAudio(samples[:123]))
	_ = b.Hash()
	test.ExpectSuccess(t, b.SetAudio(samples[123:]))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the digest depends on every sample
	samples[len(samples)-1]++
	b.Reset()
	test.ExpectEquality(t, b.Hash(), zero)
	test.ExpectSuccess(t, b.SetAudio(samples))
	test.ExpectInequality(t, a.Hash(), b.Hash())
}
