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
	"fmt"

	"github.com/Breq16/noentiendo/hardware/cpu/instructions"
	"github.com/Breq16/noentiendo/hardware/cpu/registers"
	"github.com/Breq16/noentiendo/hardware/memory/bus"
)

// Result summarises the most recent call to ExecuteInstruction(). It is
// intended for disassembly style tracing and has no effect on emulation.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// the defintion of the executed instruction
	Defn *instructions.Definition
}

// CPU implements the 6502-class processor.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem  bus.Memory
	defn []*instructions.Definition

	// LastResult is valid after every successful ExecuteInstruction()
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.Memory) *CPU {
	return &CPU{
		A:    registers.NewRegister(0, "A"),
		X:    registers.NewRegister(0, "X"),
		Y:    registers.NewRegister(0, "Y"),
		SP:   registers.NewRegister(0, "SP"),
		mem:  mem,
		defn: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s SR=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset restores the processor to its power-on state. The program counter
// is loaded indirectly through the reset vector.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(bus.Reset)
	mc.LastResult = Result{}
}

// LoadPCIndirect loads the program counter with the word found at the
// supplied address.
func (mc *CPU) LoadPCIndirect(address uint16) {
	mc.PC.Load(mc.readWord(address))
}

// readWord reads a 16bit value in little endian order. the high byte is
// read from address+1 with no special treatment of page boundaries.
func (mc *CPU) readWord(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// fetch a byte from the address pointed to by the program counter,
// advancing the program counter as a consequence.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Increment()
	return v
}

func (mc *CPU) fetchWord() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// the stack occupies a fixed page. the stack pointer holds the low byte
// of the next free location and grows downwards.

func (mc *CPU) push(data uint8) {
	mc.mem.Write(bus.StackOrigin|mc.SP.Address(), data)
	mc.SP.Add(0xff, false)
}

func (mc *CPU) pop() uint8 {
	mc.SP.Add(1, false)
	return mc.mem.Read(bus.StackOrigin | mc.SP.Address())
}

// pushWord pushes the high byte before the low byte, matching the order
// used by the JSR and interrupt entry sequences.
func (mc *CPU) pushWord(data uint16) {
	mc.push(uint8(data >> 8))
	mc.push(uint8(data))
}

func (mc *CPU) popWord() uint16 {
	lo := mc.pop()
	hi := mc.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// Interrupt runs the interrupt entry sequence: the current program counter
// and status byte are pushed onto the stack, further interrupts are
// disabled and the program counter is loaded through the interrupt vector.
//
// The Break flag in the pushed status byte records whether the interrupt
// was software sourced (the BRK instruction) or hardware sourced. Masking
// of hardware interrupts by the interrupt disable flag is the caller's
// decision, not Interrupt's.
func (mc *CPU) Interrupt(software bool) {
	mc.pushWord(mc.PC.Address())
	mc.Status.Break = software
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(bus.IRQ)
}
