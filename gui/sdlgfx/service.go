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

package sdlgfx

import (
	"github.com/Breq16/noentiendo/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (gfx *SdlGfx) Service() {
	// do not check for events if no event channel has been set
	if gfx.eventChannel == nil {
		return
	}

	// loop until there are no more events to retrieve. servicing one
	// event per frame is not enough, queued events would take a frame or
	// longer each to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			gfx.eventChannel <- gui.Event{ID: gui.EventWindowClose}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				gfx.eventChannel <- gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: true,
					}}
			case sdl.KEYUP:
				gfx.eventChannel <- gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: false,
					}}
			}
		}
	}
}
