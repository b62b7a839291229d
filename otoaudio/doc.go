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


// Package otoaudio plays the output of the emulation through the audio device
// of the host with the ebitengine/oto library.
//
// The audio device pulls samples from the emulation in its own goroutine. The
// emulation is not safe for concurrent use so any other access to it while
// the Player is running should be made through the Do() function.
package otoaudio
