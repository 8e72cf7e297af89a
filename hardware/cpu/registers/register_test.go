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

func TestLoad(t *testing.T) {
	r := registers.NewRegister(0, "test")
	assert.Assert(t, r, 0)
	test.Equate(t, r.IsZero(), true)

	r.Load(0x7f)
	assert.Assert(t, r, 0x7f)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), false)

	r.Load(0x80)
	assert.Assert(t, r, 0x80)
	test.Equate(t, r.IsNegative(), true)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		value    uint8
		add      uint8
		carryIn  bool
		result   int
		carry    bool
		overflow bool
	}{
		{0x00, 0x00, false, 0x00, false, false},
		{0x00, 0x01, false, 0x01, false, false},
		{0xff, 0x01, false, 0x00, true, false},
		{0xff, 0x01, true, 0x01, true, false},
		{0xff, 0xff, true, 0xff, true, false},

		// adding 0xff with carry set leaves the register unchanged and the
		// carry out mirrors the carry in
		{0x10, 0xff, true, 0x10, true, false},

		// signed overflow
		{0x7f, 0x01, false, 0x80, false, true},
		{0x50, 0x50, false, 0xa0, false, true},
		{0x80, 0x80, false, 0x00, true, true},
	}

	for _, tc := range tests {
		r := registers.NewRegister(tc.value, "test")
		carry, overflow := r.Add(tc.add, tc.carryIn)
		assert.Assert(t, r, tc.result)
		test.Equate(t, carry, tc.carry)
		test.Equate(t, overflow, tc.overflow)
	}
}

func TestSubtract(t *testing.T) {
	// with the carry flag set (no borrow), subtraction gives the plain
	// difference
	r := registers.NewRegister(0x50, "test")
	carry, overflow := r.Subtract(0x10, true)
	assert.Assert(t, r, 0x40)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// subtracting a larger value borrows, clearing the carry
	r.Load(0x10)
	carry, _ = r.Subtract(0x20, true)
	assert.Assert(t, r, 0xf0)
	test.Equate(t, carry, false)
}

func TestLogicalOperators(t *testing.T) {
	r := registers.NewRegister(0x0f, "test")

	r.AND(0x3c)
	assert.Assert(t, r, 0x0c)

	r.ORA(0xf0)
	assert.Assert(t, r, 0xfc)

	r.EOR(0xff)
	assert.Assert(t, r, 0x03)
}

func TestShiftsAndRotates(t *testing.T) {
	r := registers.NewRegister(0x80, "test")

	test.Equate(t, r.ASL(), true)
	assert.Assert(t, r, 0x00)

	r.Load(0x01)
	test.Equate(t, r.LSR(), true)
	assert.Assert(t, r, 0x00)

	// rotates feed the old carry into the vacated bit
	r.Load(0x80)
	test.Equate(t, r.ROL(true), true)
	assert.Assert(t, r, 0x01)

	r.Load(0x01)
	test.Equate(t, r.ROR(true), true)
	assert.Assert(t, r, 0x80)
}
