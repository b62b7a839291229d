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
	"os"
	"os/signal"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/instance"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/modalflag"
	"github.com/jetsetilly/gopher64/otoaudio"
	"github.com/jetsetilly/gopher64/paths"
	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/sidfile"
	"github.com/jetsetilly/gopher64/statsview"
	"github.com/jetsetilly/gopher64/version"
	"github.com/jetsetilly/gopher64/wavwriter"
)

// exit values
const (
	exitOK = iota
	exitParse
	exitMode
)

// the number of stereo samples generated at once while rendering
const renderChunk = 4096

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "RENDER", "INFO", "VERSION")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"sid.realmode::true; sid.samplerate::48000\")")
	echoLog := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(exitOK)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParse)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if *echoLog {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "RENDER":
		err = render(md)
	case "INFO":
		err = info(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher64", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(exitMode)
	}
}

// the tune named by the only remaining argument
func loadTune(md *modalflag.Modes) (*sidfile.Tune, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("SID file required for %s mode", md)
	case 1:
		return sidfile.Load(afero.NewOsFs(), md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// create a C64 for the main instance with the tune loaded. the hq and realsid
// flags override the preference for this session only
func prepareC64(tune *sidfile.Tune, subtune int, hq bool, realSID bool) (*hardware.C64, error) {
	ins, err := instance.NewInstance(nil)
	if err != nil {
		return nil, err
	}
	ins.Label = instance.Main

	if hq {
		if err := ins.Prefs.HighQuality.Set(true); err != nil {
			return nil, err
		}
	}
	if realSID {
		if err := ins.Prefs.RealSIDMode.Set(true); err != nil {
			return nil, err
		}
	}

	c, err := hardware.NewC64(ins)
	if err != nil {
		return nil, err
	}

	if err := c.LoadTune(tune, subtune); err != nil {
		return nil, err
	}

	return c, nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	tune, err := loadTune(md)
	if err != nil {
		return err
	}

	writeInfo(os.Stdout, tune, term.IsTerminal(int(os.Stdout.Fd())))

	return nil
}

func render(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "", "output WAV file (default is generated from the tune name)")
	seconds := md.AddInt("seconds", 60, "length of output in seconds")
	subtune := md.AddInt("subtune", 0, "subtune to render (0 for the start song)")
	hq := md.AddBool("hq", false, "high quality waveform generation")
	realSID := md.AddBool("realsid", false, "real SID mode for tunes without a play address")
	showDigest := md.AddBool("digest", false, "print digest of the audio output")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	tune, err := loadTune(md)
	if err != nil {
		return err
	}

	c, err := prepareC64(tune, *subtune, *hq, *realSID)
	if err != nil {
		return err
	}

	if *output == "" {
		*output = paths.UniqueFilename("render", tune.Name) + ".wav"
	}

	dig := digest.NewAudio()

	rate := c.Instance().Live.SampleRate

	ww, err := wavwriter.NewWavWriter(afero.NewOsFs(), *output, rate)
	if err != nil {
		return err
	}

	buf := make([]int16, renderChunk*2)
	remaining := *seconds * rate
	for remaining > 0 {
		n := min(remaining, renderChunk)
		c.GenerateSamples(buf[:n*2])
		if err := ww.SetAudio(buf[:n*2]); err != nil {
			return err
		}
		if err := dig.SetAudio(buf[:n*2]); err != nil {
			return err
		}
		remaining -= n
	}

	if *showDigest {
		fmt.Println(dig.Hash())
	}

	return ww.EndMixing()
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	seconds := md.AddInt("seconds", 0, "stop after number of seconds (0 to play until interrupted)")
	subtune := md.AddInt("subtune", 0, "subtune to play (0 for the start song)")
	hq := md.AddBool("hq", false, "high quality waveform generation")
	realSID := md.AddBool("realsid", false, "real SID mode for tunes without a play address")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	tune, err := loadTune(md)
	if err != nil {
		return err
	}

	c, err := prepareC64(tune, *subtune, *hq, *realSID)
	if err != nil {
		return err
	}

	pl, err := otoaudio.NewPlayer(c, c.Instance().Live.SampleRate)
	if err != nil {
		return err
	}

	_, n := c.Tune()
	fmt.Printf("%s (%d/%d)\n", tune, n, tune.Songs)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var timeout <-chan time.Time
	if *seconds > 0 {
		timeout = time.After(time.Duration(*seconds) * time.Second)
	}

	// check for audio device errors periodically
	check := time.NewTicker(time.Second)
	defer check.Stop()

	pl.Play()
	defer pl.Pause()

	for {
		select {
		case <-intChan:
			fmt.Print("\r")
			return nil
		case <-timeout:
			return nil
		case <-check.C:
			if err := pl.Err(); err != nil {
				return err
			}
		}
	}
}
