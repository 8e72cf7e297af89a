// This file is part of Noentiendo.
//
// Noentiendo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Noentiendo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Noentiendo.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Breq16/noentiendo/gui"
	"github.com/Breq16/noentiendo/gui/sdlgfx"
	"github.com/Breq16/noentiendo/logger"
	"github.com/Breq16/noentiendo/statsview"
	"github.com/Breq16/noentiendo/systems"
	"github.com/Breq16/noentiendo/version"

	"github.com/bradleyjkemp/memviz"
)

// the number of instructions to run between frames. the emulation is not
// cycle accurate so there is nothing to calibrate this against; it is
// simply fast enough for the easy target
const instructionsPerFrame = 10000

// #mainthread
func main() {
	os.Exit(run())
}

func run() int {
	scale := flag.Float64("scale", 10.0, "window scale factor")
	trace := flag.Bool("trace", false, "log every executed instruction (very slow)")
	fps := flag.Int("fps", 60, "frames per second")
	stats := flag.Bool("statsview", false, "run stats server")
	memvizFile := flag.String("memviz", "", "dump the machine structure (graphviz dot) to file and exit")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n", os.Args[0])
		flag.PrintDefaults()
		return 10
	}

	logger.SetEcho(os.Stderr)

	vrsn, revision, _ := version.Version()
	logger.Logf("main", "%s (%s, %s)", version.ApplicationName, vrsn, revision)

	sys, scr, err := systems.Easy(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 10
	}
	sys.Trace = *trace

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 10
		}
		defer f.Close()
		memviz.Map(f, sys)
		return 0
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			logger.Log("main", "statsview not available in this build")
		}
	}

	sys.Reset()

	eventChannel := make(chan gui.Event, 8)
	gfx, err := sdlgfx.NewSdlGfx(scr, float32(*scale), eventChannel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 10
	}
	defer gfx.Destroy()

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	lmtr := time.NewTicker(time.Second / time.Duration(*fps))
	defer lmtr.Stop()

	for {
		select {
		case <-intChan:
			return 0

		case ev := <-eventChannel:
			switch ev.ID {
			case gui.EventWindowClose:
				return 0
			case gui.EventKeyboard:
				data := ev.Data.(gui.EventDataKeyboard)
				if data.Down && data.Key == "Escape" {
					return 0
				}
			}

		case <-lmtr.C:
			for i := 0; i < instructionsPerFrame; i++ {
				if err := sys.Tick(); err != nil {
					logger.Log("main", err.Error())
					return 20
				}
			}

			if err := gfx.Update(); err != nil {
				logger.Log("main", err.Error())
				return 20
			}

			gfx.Service()
		}
	}
}
