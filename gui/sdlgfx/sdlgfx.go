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

// Package sdlgfx is a simple SDL presentation of an emulated frame
// buffer. One texture, streamed every frame; the renderer scales it up
// to the window size.
package sdlgfx

import (
	"github.com/Breq16/noentiendo/curated"
	"github.com/Breq16/noentiendo/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error for all SDL failures.
const SDL = "sdl: %v"

// the number of bytes required for each screen pixel
// 4 == red + green + blue + alpha
const pixelDepth = 4

// SdlGfx is a simple SDL implementation of the gui.GUI interface.
type SdlGfx struct {
	src gui.PixelRenderer

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	// connects the SDL event loop with the parent process
	eventChannel chan gui.Event
}

// NewSdlGfx is the preferred method of initialisation for the SdlGfx
// type.
//
// MUST ONLY be called from the main goroutine.
func NewSdlGfx(src gui.PixelRenderer, scale float32, eventChannel chan gui.Event) (*SdlGfx, error) {
	var err error

	gfx := &SdlGfx{
		src:          src,
		eventChannel: eventChannel,
	}

	w, h := src.Size()
	gfx.width = int32(w)
	gfx.height = int32(h)

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	gfx.window, err = sdl.CreateWindow("Noentiendo",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(gfx.width)*scale), int32(float32(gfx.height)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	gfx.renderer, err = sdl.CreateRenderer(gfx.window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// make sure everything drawn through the renderer is correctly scaled
	err = gfx.renderer.SetScale(scale, scale)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	gfx.texture, err = gfx.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), gfx.width, gfx.height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// an initial (black) frame so the window does not open with garbage
	err = gfx.Update()
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	return gfx, nil
}

// Update implements the gui.GUI interface. It streams the current frame
// data into the texture and presents it.
func (gfx *SdlGfx) Update() error {
	err := gfx.texture.Update(nil, gfx.src.Pixels(), int(gfx.width*pixelDepth))
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = gfx.renderer.Copy(gfx.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	gfx.renderer.Present()

	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (gfx *SdlGfx) Destroy() {
	gfx.texture.Destroy()
	gfx.renderer.Destroy()
	gfx.window.Destroy()
	sdl.Quit()
}
