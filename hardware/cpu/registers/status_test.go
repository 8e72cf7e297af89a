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

package registers_test

import (
	"testing"

	"github.com/Breq16/noentiendo/hardware/cpu/registers"
	"github.com/Breq16/noentiendo/hardware/cpu/registers/assert"
	"github.com/Breq16/noentiendo/test"
)

func TestSetNZ(t *testing.T) {
	sr := registers.NewStatusRegister()

	// for all 8 bit values, Zero is set iff the value is zero and Sign is
	// set iff bit 7 is set
	for v := 0; v < 256; v++ {
		sr.SetNZ(uint8(v))
		test.Equate(t, sr.Zero, v == 0)
		test.Equate(t, sr.Sign, v&0x80 == 0x80)
	}
}

func TestStatusValue(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the unused bit always reads as set
	test.Equate(t, sr.Value(), 0x20)

	sr.Carry = true
	sr.Sign = true
	test.Equate(t, sr.Value(), 0xa1)
	assert.Assert(t, sr, "Sv-bdizC")
}

func TestStatusLoad(t *testing.T) {
	sr := registers.NewStatusRegister()

	// load replaces the whole byte
	sr.Load(0xc3)
	assert.Assert(t, sr, "SV-bdiZC")

	// a load/value round trip preserves every flag; the unused bit reads
	// as set regardless of the loaded value
	for v := 0; v < 256; v++ {
		sr.Load(uint8(v))
		test.Equate(t, sr.Value(), uint8(v)&0xdf|0x20)
	}
}
