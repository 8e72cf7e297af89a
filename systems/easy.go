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

// Package systems assembles memory maps into runnable machines.
package systems

import (
	"github.com/Breq16/noentiendo/hardware"
	"github.com/Breq16/noentiendo/hardware/memory"
	"github.com/Breq16/noentiendo/hardware/memory/bus"
)

// memory map of the easy system.
const (
	// RAM occupies the bottom half of the address space. the zero page
	// and the stack page live here, as does the framebuffer
	RAMSize = 0x8000

	// the program image occupies the top half, which places the reset
	// and interrupt vectors inside the image
	ROMOrigin = uint16(0x8000)

	// the framebuffer is an ordinary region of RAM, one byte per pixel
	FrameBufferOrigin = uint16(0x0200)
	FrameBufferWidth  = 32
	FrameBufferHeight = 32
)

// the classic 16 colour palette. the low nibble of a framebuffer byte
// selects an entry; the high nibble is ignored.
var palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xff, 0xff, 0xff}, // white
	{0x88, 0x00, 0x00}, // red
	{0xaa, 0xff, 0xee}, // cyan
	{0xcc, 0x44, 0xcc}, // purple
	{0x00, 0xcc, 0x55}, // green
	{0x00, 0x00, 0xaa}, // blue
	{0xee, 0xee, 0x77}, // yellow
	{0xdd, 0x88, 0x55}, // orange
	{0x66, 0x44, 0x00}, // brown
	{0xff, 0x77, 0x77}, // light red
	{0x33, 0x33, 0x33}, // dark grey
	{0x77, 0x77, 0x77}, // grey
	{0xaa, 0xff, 0x66}, // light green
	{0x00, 0x88, 0xff}, // light blue
	{0xbb, 0xbb, 0xbb}, // light grey
}

// the number of bytes per pixel in the converted frame data
const pixelDepth = 4

// Screen converts the framebuffer region of memory into RGBA frame
// data. It implements the gui.PixelRenderer interface.
type Screen struct {
	mem    bus.Memory
	pixels []byte
}

func newScreen(mem bus.Memory) *Screen {
	return &Screen{
		mem:    mem,
		pixels: make([]byte, FrameBufferWidth*FrameBufferHeight*pixelDepth),
	}
}

// Size implements the gui.PixelRenderer interface.
func (scr *Screen) Size() (int, int) {
	return FrameBufferWidth, FrameBufferHeight
}

// Pixels implements the gui.PixelRenderer interface. The framebuffer
// region is read through the bus on every call.
func (scr *Screen) Pixels() []byte {
	for i := 0; i < FrameBufferWidth*FrameBufferHeight; i++ {
		col := palette[scr.mem.Read(FrameBufferOrigin+uint16(i))&0x0f]
		scr.pixels[i*pixelDepth] = col[0]
		scr.pixels[i*pixelDepth+1] = col[1]
		scr.pixels[i*pixelDepth+2] = col[2]
		scr.pixels[i*pixelDepth+3] = 0xff
	}
	return scr.pixels
}

// Easy assembles the simplest machine the emulation supports: 32k of RAM
// in the bottom half of the address space and the program image in the
// top half.
func Easy(romFile string) (*hardware.System, *Screen, error) {
	rom, err := memory.NewROMFromFile(romFile)
	if err != nil {
		return nil, nil, err
	}

	mem := memory.NewBranch().
		Map(0x0000, memory.NewBlock(RAMSize)).
		Map(ROMOrigin, rom)

	return hardware.NewSystem(mem), newScreen(mem), nil
}
