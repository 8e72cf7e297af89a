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

package systems_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Breq16/noentiendo/hardware/cpu/registers/assert"
	"github.com/Breq16/noentiendo/systems"
	"github.com/Breq16/noentiendo/test"
)

// writes a 32k image to a temporary file. the program runs from the
// image origin
func makeImage(t *testing.T, program []uint8) string {
	t.Helper()

	image := make([]uint8, 0x8000)
	copy(image, program)
	image[0x7ffc] = 0x00
	image[0x7ffd] = 0x80

	filename := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(filename, image, 0644); err != nil {
		t.Fatal(err)
	}

	return filename
}

func TestEasy(t *testing.T) {
	// plot a single white pixel in the top-left corner of the screen
	filename := makeImage(t, []uint8{
		0xa9, 0x01, // LDA #$01
		0x8d, 0x00, 0x02, // STA $0200
	})

	sys, scr, err := systems.Easy(filename)
	if err != nil {
		t.Fatal(err)
	}

	sys.Reset()
	assert.Assert(t, sys.CPU.PC, 0x8000)

	for i := 0; i < 2; i++ {
		if err := sys.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	w, h := scr.Size()
	test.Equate(t, w, 32)
	test.Equate(t, h, 32)

	pixels := scr.Pixels()
	test.Equate(t, pixels[0], 0xff)
	test.Equate(t, pixels[1], 0xff)
	test.Equate(t, pixels[2], 0xff)
	test.Equate(t, pixels[3], 0xff)

	// the pixel next door is still black
	test.Equate(t, pixels[4], 0)
}

func TestEasyMissingImage(t *testing.T) {
	_, _, err := systems.Easy(filepath.Join(t.TempDir(), "no-such-file"))
	if err == nil {
		t.Fatal("expected an error for a missing image file")
	}
}
