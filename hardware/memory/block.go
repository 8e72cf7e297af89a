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

package memory

import (
	"os"

	"github.com/Breq16/noentiendo/curated"
)

// Block is a fixed-size RAM store. Accesses beyond the size of the block
// behave as unmapped: reads return zero, writes are dropped.
type Block struct {
	data []uint8
}

// NewBlock creates a new RAM block of the specified size, initialised to
// zero.
func NewBlock(size uint32) *Block {
	return &Block{
		data: make([]uint8, size),
	}
}

// NewBlockFromImage creates a new RAM block with the specified initial
// contents. Unlike ROM, a Reset() clears the contents rather than
// restoring the image.
func NewBlockFromImage(image []uint8) *Block {
	b := NewBlock(uint32(len(image)))
	copy(b.data, image)
	return b
}

// Read implements the bus.Memory interface.
func (b *Block) Read(address uint16) uint8 {
	if int(address) >= len(b.data) {
		return 0
	}
	return b.data[address]
}

// Write implements the bus.Memory interface.
func (b *Block) Write(address uint16, data uint8) {
	if int(address) >= len(b.data) {
		return
	}
	b.data[address] = data
}

// Tick implements the bus.Memory interface.
func (b *Block) Tick() {
}

// Reset implements the bus.Memory interface. RAM contents return to the
// power-on state of all zeros.
func (b *Block) Reset() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Error pattern returned when a ROM image file cannot be loaded.
const ImageError = "rom image: %v"

// ROM is a read-only store backed by a byte image. Writes are silently
// dropped; reads beyond the image return zero.
type ROM struct {
	image []uint8
}

// NewROM creates a new ROM from a byte image. The image is copied so later
// changes to the argument have no effect on the ROM.
func NewROM(image []uint8) *ROM {
	r := &ROM{
		image: make([]uint8, len(image)),
	}
	copy(r.image, image)
	return r
}

// NewROMFromFile creates a new ROM with the image taken from the contents
// of the named file.
func NewROMFromFile(filename string) (*ROM, error) {
	image, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ImageError, err)
	}
	return NewROM(image), nil
}

// Read implements the bus.Memory interface.
func (r *ROM) Read(address uint16) uint8 {
	if int(address) >= len(r.image) {
		return 0
	}
	return r.image[address]
}

// Write implements the bus.Memory interface. ROM is not writable so the
// data is dropped.
func (r *ROM) Write(_ uint16, _ uint8) {
}

// Tick implements the bus.Memory interface.
func (r *ROM) Tick() {
}

// Reset implements the bus.Memory interface. The image is immutable so
// there is nothing to restore.
func (r *ROM) Reset() {
}
