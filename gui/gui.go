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

// Package gui defines the interface between the emulation and whatever
// is presenting it on screen.
package gui

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Service the user interface. MUST be called from the main goroutine
	// at a regular interval.
	Service()

	// Update the display from the current frame data.
	Update() error

	// Release all resources held by the user interface.
	Destroy()
}

// PixelRenderer is implemented by anything that can supply frame data
// to a GUI. Pixels are packed RGBA, four bytes per pixel, in row order.
type PixelRenderer interface {
	Pixels() []byte
	Size() (width, height int)
}
