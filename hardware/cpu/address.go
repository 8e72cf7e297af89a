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
	"github.com/Breq16/noentiendo/hardware/cpu/instructions"
)

// target is the outcome of addressing mode resolution for instructions
// that store a result. the accumulator alternative means there is no
// memory address involved at all.
type target struct {
	accumulator bool
	address     uint16
}

// resolveTarget consumes the instruction's operand bytes and returns the
// location the instruction will write to. index arithmetic wraps: zero
// page indexing stays inside the zero page and absolute indexing wraps
// around the top of the address space.
func (mc *CPU) resolveTarget(mode instructions.AddressingMode) target {
	switch mode {
	case instructions.Accumulator:
		return target{accumulator: true}

	case instructions.ZeroPage:
		return target{address: uint16(mc.fetch())}

	case instructions.ZeroPageIndexedX:
		return target{address: uint16(mc.fetch() + mc.X.Value())}

	case instructions.ZeroPageIndexedY:
		return target{address: uint16(mc.fetch() + mc.Y.Value())}

	case instructions.Absolute:
		return target{address: mc.fetchWord()}

	case instructions.AbsoluteIndexedX:
		return target{address: mc.fetchWord() + mc.X.Address()}

	case instructions.AbsoluteIndexedY:
		return target{address: mc.fetchWord() + mc.Y.Address()}

	case instructions.IndexedIndirect:
		ptr := uint16(mc.fetch() + mc.X.Value())
		return target{address: mc.readWord(ptr)}

	case instructions.IndirectIndexed:
		base := mc.readWord(uint16(mc.fetch()))
		return target{address: base + mc.Y.Address()}
	}

	// the definitions table never pairs any other mode with an
	// instruction that resolves a target
	panic("unresolvable addressing mode")
}

// resolveValue consumes the instruction's operand bytes and returns the
// value the instruction will operate on.
func (mc *CPU) resolveValue(mode instructions.AddressingMode) uint8 {
	if mode == instructions.Immediate {
		return mc.fetch()
	}
	t := mc.resolveTarget(mode)
	return mc.mem.Read(t.address)
}
