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

// Package bus defines the memory bus concept. Every memory region in the
// address space, and the address space itself, implements the Memory
// interface; composition of regions is therefore invisible to the CPU.
//
// All bus operations are total. Reads from unmapped addresses return zero
// and writes to unmapped or read-only addresses are silently dropped. This
// means the CPU never sees a memory fault and the only error the emulation
// can produce is an unimplemented opcode.
package bus

// Memory is the capability required of every backing store: readable and
// writable byte-addressed storage that can be stepped and reset.
//
// Addresses passed to a mapped region are offsets from the region's origin,
// not absolute addresses.
type Memory interface {
	// Read returns the byte at the specified address. Unmapped reads
	// return 0.
	Read(address uint16) uint8

	// Write the byte to the specified address. Writes to unmapped or
	// read-only addresses are dropped.
	Write(address uint16, data uint8)

	// Tick advances any internal device state by one step. Called once per
	// CPU tick.
	Tick()

	// Reset returns the store to its power-on state.
	Reset()
}

// Addresses of the fixed vectors at the top of the address space. The CPU
// reads a 16 bit address from these locations on reset and on interrupt
// entry.
const (
	// Reset is where the program counter is loaded from at power-on.
	Reset = uint16(0xfffc)

	// IRQ is where the program counter is loaded from on interrupt entry,
	// for both hardware interrupts and the BRK instruction.
	IRQ = uint16(0xfffe)
)

// StackOrigin is the start of the fixed page the stack pointer offsets
// into. The stack grows downwards from the top of this page.
const StackOrigin = uint16(0x0100)
