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

package cpu

import (
	"github.com/Breq16/noentiendo/hardware/cpu/registers"
)

// aluAdd implements the ADC instruction. the carry flag feeds into the
// addition and receives the carry out. binary arithmetic always, even
// when the decimal flag is set.
func (mc *CPU) aluAdd(value uint8) {
	carry, overflow := mc.A.Add(value, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.Status.SetNZ(mc.A.Value())
}

// aluSubtract implements the SBC instruction. a set carry flag means no
// borrow.
func (mc *CPU) aluSubtract(value uint8) {
	carry, overflow := mc.A.Subtract(value, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.Status.SetNZ(mc.A.Value())
}

// aluCompare implements the CMP, CPX and CPY instructions. the register
// itself is left untouched; only the carry, zero and sign flags change.
func (mc *CPU) aluCompare(reg registers.Register, value uint8) {
	carry, _ := reg.Subtract(value, true)
	mc.Status.Carry = carry
	mc.Status.SetNZ(reg.Value())
}
