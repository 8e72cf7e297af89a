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

package memory_test

import (
	"testing"

	"github.com/Breq16/noentiendo/hardware/memory"
	"github.com/Breq16/noentiendo/test"
)

func TestNull(t *testing.T) {
	n := memory.NewNull()

	test.Equate(t, n.Read(0x0000), 0)

	// writes are dropped
	n.Write(0x0000, 0xff)
	test.Equate(t, n.Read(0x0000), 0)
}

func TestBlock(t *testing.T) {
	b := memory.NewBlock(0x1000)

	b.Write(0x0abc, 0x42)
	test.Equate(t, b.Read(0x0abc), 0x42)

	// accesses beyond the size of the block behave as unmapped
	b.Write(0x1000, 0xff)
	test.Equate(t, b.Read(0x1000), 0)

	// reset returns RAM to the power-on state
	b.Reset()
	test.Equate(t, b.Read(0x0abc), 0)
}

func TestBlockFromImage(t *testing.T) {
	b := memory.NewBlockFromImage([]uint8{0x11, 0x22})

	test.Equate(t, b.Read(0x0000), 0x11)
	test.Equate(t, b.Read(0x0001), 0x22)

	// the block is ordinary RAM: a reset clears the initial contents
	// rather than restoring them
	b.Reset()
	test.Equate(t, b.Read(0x0000), 0)
}

func TestROM(t *testing.T) {
	image := []uint8{0x01, 0x02, 0x03}
	r := memory.NewROM(image)

	// the image is copied on creation
	image[0] = 0xff
	test.Equate(t, r.Read(0x0000), 0x01)

	// writes to ROM are dropped
	r.Write(0x0001, 0xff)
	test.Equate(t, r.Read(0x0001), 0x02)

	// reads beyond the image return zero
	test.Equate(t, r.Read(0x0003), 0)

	// reset does not disturb the image
	r.Reset()
	test.Equate(t, r.Read(0x0002), 0x03)
}
