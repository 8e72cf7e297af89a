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

// Package instructions defines the instruction set of the CPU: one
// Definition per documented opcode, indexed by the opcode byte. Opcode bytes
// with no Definition are dispatch faults; the emulation does not implement
// the undocumented instructions.
package instructions

import "fmt"

// Operator describes what an instruction does, distinct from where its
// operand comes from.
type Operator int

// List of operators.
const (
	Lda Operator = iota
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
	Pha
	Php
	Pla
	Plp
	Asl
	Lsr
	Rol
	Ror
	And
	Bit
	Eor
	Ora
	Adc
	Sbc
	Cmp
	Cpx
	Cpy
	Inc
	Dec
	Inx
	Iny
	Dex
	Dey
	Jmp
	Jsr
	Rts
	Brk
	Rti
	Bcc
	Bcs
	Beq
	Bmi
	Bne
	Bpl
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Sec
	Sed
	Sei
	Nop
)

var operatorMnemonics = []string{
	"LDA", "LDX", "LDY", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"PHA", "PHP", "PLA", "PLP",
	"ASL", "LSR", "ROL", "ROR",
	"AND", "BIT", "EOR", "ORA",
	"ADC", "SBC", "CMP", "CPX", "CPY",
	"INC", "DEC", "INX", "INY", "DEX", "DEY",
	"JMP", "JSR", "RTS", "BRK", "RTI",
	"BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS",
	"CLC", "CLD", "CLI", "CLV", "SEC", "SED", "SEI",
	"NOP",
}

// String returns the conventional three letter mnemonic for the operator.
func (op Operator) String() string {
	return operatorMnemonics[op]
}

// AddressingMode describes the method by which the instruction's operand
// bytes are turned into a value or a memory address.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota

	// the shift/rotate instructions have a variant that operates on the
	// accumulator in place. there is no memory address at all in this mode
	Accumulator

	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind, used only by JMP

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

var addressingModeNames = []string{
	"", "A", "#", "rel",
	"abs", "zpg", "ind",
	"(ind,X)", "(ind),Y",
	"abs,X", "abs,Y",
	"zpg,X", "zpg,Y",
}

func (mode AddressingMode) String() string {
	return addressingModeNames[mode]
}

// EffectCategory categorises an instruction by the effect it has, which in
// turn decides what the addressing mode resolution must produce: a value
// for Read instructions, an address for Write and RMW instructions, and
// nothing at all for the categories that work on the program counter.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow consists of the branch instructions and JMP. branch
	// instructions can be distinguished by the Relative addressing mode
	Flow

	Subroutine
	Interrupt
)

// Definition describes a single opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns the operator mnemonic qualified by the addressing mode.
func (defn Definition) String() string {
	if defn.AddressingMode == Implied {
		return defn.Operator.String()
	}
	return fmt.Sprintf("%s %s", defn.Operator, defn.AddressingMode)
}
