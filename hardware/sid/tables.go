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

package sid

import "math"

// number of CPU cycles between envelope counter steps, by the rate nibble of
// the AD and SR registers
var prescalePeriods = [16]int{
	9, 32, 63, 95, 149, 220, 267, 313, 392, 977, 1954, 3126, 3907, 11720, 19532, 31251,
}

// number of prescale periods between envelope counter steps during decay and
// release. the envelope is exponential because the period lengthens as the
// envelope counter falls
var exponentPeriods [256]uint8

// the envelope DAC of the 6581 is not linear
var envelopeDAC6581 [256]uint8

// combined waveform tables. indexed by the upper 12 bits of the oscillator
var (
	sawTriangle      [4096]uint8
	pulseTriangle    [4096]uint8
	pulseSawtooth    [4096]uint8
	pulseSawTriangle [4096]uint8
)

// filter tables. the cutoff tables are indexed by the 11 bit cutoff register
// value and give the integrator coefficient for a 44.1kHz sample rate. values
// are fixed point with 12 fractional bits
var (
	cutoff8580    [2048]int
	cutoff6581    [2048]int
	resonance8580 [16]int
	resonance6581 [16]int
)

const referenceSampleRate = 44100.0

func init() {
	for i := range exponentPeriods {
		switch {
		case i == 0:
			exponentPeriods[i] = 1
		case i < 7:
			exponentPeriods[i] = 30
		case i < 15:
			exponentPeriods[i] = 16
		case i < 27:
			exponentPeriods[i] = 8
		case i < 55:
			exponentPeriods[i] = 4
		case i < 94:
			exponentPeriods[i] = 2
		default:
			exponentPeriods[i] = 1
		}
	}

	buildDAC(envelopeDAC6581[:], 8, 2.20, false)

	buildCombinedWaveform(&sawTriangle, 0.8, 2.4, 0.64, false)
	buildCombinedWaveform(&pulseSawTriangle, 0.8, 2.5, 0.64, false)
	buildCombinedWaveform(&pulseSawtooth, 1.4, 1.9, 0.68, false)
	buildCombinedWaveform(&pulseTriangle, 0.8, 1.5, 0.5, true)

	buildCutoff8580()
	buildCutoff6581()

	for r := range 16 {
		resonance8580[r] = int(math.Pow(2, float64(4-r)/8) * 0x1000)
		if r > 5 {
			resonance6581[r] = int(8.0 / float64(r) * 0x1000)
		} else {
			resonance6581[r] = int(math.Round(1.41 * 0x1000))
		}
	}
}

// buildDAC models an R-2R ladder DAC where the ratio of the 2R and R
// resistors is not exactly two. the result is scaled so that the maximum
// input gives the maximum output
func buildDAC(dac []uint8, bits int, twoROverR float64, terminated bool) {
	vbit := make([]float64, bits)

	for setBit := range bits {
		vn := 1.0
		r := 1.0
		twoR := twoROverR * r
		rn := math.Inf(1)
		if terminated {
			rn = twoR
		}

		// tail resistance by repeated parallel substitution
		bit := 0
		for ; bit < setBit; bit++ {
			if math.IsInf(rn, 1) {
				rn = r + twoR
			} else {
				rn = r + twoR*rn/(twoR+rn)
			}
		}

		// source transformation for the bit voltage
		if math.IsInf(rn, 1) {
			rn = twoR
		} else {
			rn = twoR * rn / (twoR + rn)
			vn = vn * rn / twoR
		}

		// output voltage by repeated source transformation from the tail
		for bit++; bit < bits; bit++ {
			rn += r
			i := vn / rn
			rn = twoR * rn / (twoR + rn)
			vn = rn * i
		}

		vbit[setBit] = vn
	}

	var full float64
	for _, v := range vbit {
		full += v
	}

	// superposition of the voltage of each bit
	for i := range dac {
		var vo float64
		for j := range bits {
			if (i>>j)&1 == 1 {
				vo += vbit[j]
			}
		}
		dac[i] = uint8(float64(len(dac)-1)*vo/full + 0.5)
	}
}

// buildCombinedWaveform models the combination of two waveforms. a bit in the
// output is set only if it is strong enough after being pulled down by
// neighbouring bits that are clear. the influence of a neighbour falls with
// distance
//
// the triangle argument folds the index into a triangle before the model is
// applied. this is used for the pulse+triangle table, which is indexed by the
// oscillator value rather than by the triangle value
func buildCombinedWaveform(tbl *[4096]uint8, bitmul float64, bitstrength float64, threshold float64, triangle bool) {
	for i := range tbl {
		v := i
		if triangle {
			if v&0x800 == 0x800 {
				v ^= 0xfff
			}
			v = (v << 1) & 0xfff
		}

		var out int
		for j := range 12 {
			var level float64
			for k := range 12 {
				level += bitmul / math.Pow(bitstrength, math.Abs(float64(k-j))) * (float64((v>>k)&1) - 0.5)
			}
			if level >= threshold {
				out |= 1 << j
			}
		}

		tbl[i] = uint8(out >> 4)
	}
}

// integrator coefficient for a cutoff frequency
func cutoffCoefficient(freq float64) int {
	return int((1 - math.Exp(-2*math.Pi*freq/referenceSampleRate)) * 0x1000)
}

// the 8580 cutoff is close to linear between 30Hz and 12.5kHz
func buildCutoff8580() {
	for i := range cutoff8580 {
		cutoff8580[i] = cutoffCoefficient(float64(i+2) * 12500.0 / 2048.0)
	}
}

// the 6581 cutoff sits at a floor for the lower part of the register range
// and then rises steeply
func buildCutoff6581() {
	const (
		bias  = 0x180
		floor = 200.0
	)
	for i := range cutoff6581 {
		f := float64(i-bias) / 8 * 20000.0 / 256.0
		cutoff6581[i] = cutoffCoefficient(max(f, floor))
	}
}
