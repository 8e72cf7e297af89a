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
	"github.com/Breq16/noentiendo/curated"
	"github.com/Breq16/noentiendo/hardware/cpu/instructions"
	"github.com/Breq16/noentiendo/hardware/cpu/registers"
)

// Sentinal error returned by ExecuteInstruction() for opcodes with no
// entry in the definitions table.
const UnimplementedOpcode = "cpu: unimplemented opcode (%#02x) at (%#04x)"

// ExecuteInstruction performs one complete fetch-decode-execute step.
//
// Opcodes with no entry in the definitions table cause an error and
// nothing else: the program counter is restored to the address of the
// offending byte and no register or memory location changes.
func (mc *CPU) ExecuteInstruction() error {
	address := mc.PC.Address()

	opcode := mc.fetch()
	defn := mc.defn[opcode]
	if defn == nil {
		mc.PC.Load(address)
		return curated.Errorf(UnimplementedOpcode, opcode, address)
	}

	mc.execute(defn)
	mc.LastResult = Result{Address: address, Defn: defn}

	return nil
}

// modify runs f against the resolved target of a read-modify-write
// instruction, which is either the accumulator or a memory location. the
// sign and zero flags reflect the stored result.
func (mc *CPU) modify(mode instructions.AddressingMode, f func(r *registers.Register)) {
	t := mc.resolveTarget(mode)

	if t.accumulator {
		f(&mc.A)
		mc.Status.SetNZ(mc.A.Value())
		return
	}

	r := registers.NewRegister(mc.mem.Read(t.address), "RMW")
	f(&r)
	mc.Status.SetNZ(r.Value())
	mc.mem.Write(t.address, r.Value())
}

// branch implements the conditional branch instructions. the displacement
// byte is consumed whether the branch is taken or not.
func (mc *CPU) branch(taken bool) {
	displacement := int8(mc.fetch())
	if taken {
		mc.PC.Offset(displacement)
	}
}

func (mc *CPU) execute(defn *instructions.Definition) {
	mode := defn.AddressingMode

	switch defn.Operator {
	// loads and stores
	case instructions.Lda:
		mc.A.Load(mc.resolveValue(mode))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Ldx:
		mc.X.Load(mc.resolveValue(mode))
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Ldy:
		mc.Y.Load(mc.resolveValue(mode))
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.Sta:
		mc.mem.Write(mc.resolveTarget(mode).address, mc.A.Value())
	case instructions.Stx:
		mc.mem.Write(mc.resolveTarget(mode).address, mc.X.Value())
	case instructions.Sty:
		mc.mem.Write(mc.resolveTarget(mode).address, mc.Y.Value())

	// register transfers. TXS is the odd one out, no flags change
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	// stack instructions
	case instructions.Pha:
		mc.push(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.pop())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Php:
		mc.push(mc.Status.Value())
	case instructions.Plp:
		mc.Status.Load(mc.pop())

	// bitwise operations
	case instructions.And:
		mc.A.AND(mc.resolveValue(mode))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(mc.resolveValue(mode))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(mc.resolveValue(mode))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Bit:
		v := mc.resolveValue(mode)
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40
		mc.Status.Zero = v&mc.A.Value() == 0

	// arithmetic
	case instructions.Adc:
		mc.aluAdd(mc.resolveValue(mode))
	case instructions.Sbc:
		mc.aluSubtract(mc.resolveValue(mode))
	case instructions.Cmp:
		mc.aluCompare(mc.A, mc.resolveValue(mode))
	case instructions.Cpx:
		mc.aluCompare(mc.X, mc.resolveValue(mode))
	case instructions.Cpy:
		mc.aluCompare(mc.Y, mc.resolveValue(mode))

	// increments and decrements
	case instructions.Inc:
		mc.modify(mode, func(r *registers.Register) {
			r.Add(1, false)
		})
	case instructions.Dec:
		mc.modify(mode, func(r *registers.Register) {
			r.Add(0xff, false)
		})
	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetNZ(mc.Y.Value())

	// shifts and rotates
	case instructions.Asl:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
		})
	case instructions.Lsr:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
		})
	case instructions.Rol:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		})
	case instructions.Ror:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		})

	// jumps and subroutines. JSR pushes the address of the last byte of
	// its own operand and RTS compensates
	case instructions.Jmp:
		address := mc.fetchWord()
		if mode == instructions.Indirect {
			address = mc.readWord(address)
		}
		mc.PC.Load(address)
	case instructions.Jsr:
		address := mc.fetchWord()
		mc.pushWord(mc.PC.Address() - 1)
		mc.PC.Load(address)
	case instructions.Rts:
		mc.PC.Load(mc.popWord() + 1)

	// interrupts. BRK skips over its signature byte before entering the
	// interrupt sequence
	case instructions.Brk:
		mc.PC.Increment()
		mc.Interrupt(true)
	case instructions.Rti:
		mc.Status.Load(mc.pop())
		mc.PC.Load(mc.popWord())

	// branches
	case instructions.Bcc:
		mc.branch(!mc.Status.Carry)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero)
	case instructions.Beq:
		mc.branch(mc.Status.Zero)
	case instructions.Bpl:
		mc.branch(!mc.Status.Sign)
	case instructions.Bmi:
		mc.branch(mc.Status.Sign)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow)

	// flag instructions
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Nop:
	}
}
