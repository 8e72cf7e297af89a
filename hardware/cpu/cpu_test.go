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

package cpu_test

import (
	"testing"

	"github.com/Breq16/noentiendo/curated"
	"github.com/Breq16/noentiendo/hardware/cpu"
	"github.com/Breq16/noentiendo/hardware/cpu/registers/assert"
	"github.com/Breq16/noentiendo/test"
)

// mockMem is a flat 64k store with no mapping concerns.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Tick() {}

func (mem *mockMem) Reset() {}

// put loads a sequence of bytes into memory, returning the address of
// the first byte after the sequence.
func (mem *mockMem) put(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatal(err)
	}
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mem.put(0xfffc, 0x00, 0x10)

	mc := cpu.NewCPU(mem)
	mc.Reset()

	assert.Assert(t, mc.PC, 0x1000)
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestLoadsAndStores(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// LDA #$7f
	mem.put(0x1000, 0xa9, 0x7f)
	step(t, mc)
	assert.Assert(t, mc.A, 0x7f)
	assert.Assert(t, mc.Status, "sv-bdizc")

	// LDX #$00
	mem.put(0x1002, 0xa2, 0x00)
	step(t, mc)
	assert.Assert(t, mc.X, 0x00)
	assert.Assert(t, mc.Status, "sv-bdiZc")

	// LDY #$80
	mem.put(0x1004, 0xa0, 0x80)
	step(t, mc)
	assert.Assert(t, mc.Y, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// STA $0200
	mem.put(0x1006, 0x8d, 0x00, 0x02)
	step(t, mc)
	assert.Assert(t, mem.Read(0x0200), 0x7f)

	// STX $42 / STY $43
	mem.put(0x1009, 0x86, 0x42, 0x84, 0x43)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mem.Read(0x0042), 0x00)
	assert.Assert(t, mem.Read(0x0043), 0x80)
	assert.Assert(t, mc.PC, 0x100d)
}

func TestAddressingModes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// zero page indexing wraps inside the zero page. base $ff with an
	// index of 2 resolves to $01, not $101
	mem.put(0x0001, 0x11)
	mem.put(0x0101, 0x99)
	mc.X.Load(0x02)
	mem.put(0x1000, 0xb5, 0xff) // LDA $ff,X
	step(t, mc)
	assert.Assert(t, mc.A, 0x11)

	// absolute indexing wraps around the top of the address space
	mem.put(0x0000, 0x22)
	mem.put(0x1002, 0xbd, 0xfe, 0xff) // LDA $fffe,X
	step(t, mc)
	assert.Assert(t, mc.A, 0x22)

	// indexed indirect: pointer in zero page, offset by X before the
	// dereference
	mem.put(0x0034, 0x00, 0x03) // pointer to $0300
	mem.put(0x0300, 0x33)
	mem.put(0x1005, 0xa1, 0x32) // LDA ($32,X)
	step(t, mc)
	assert.Assert(t, mc.A, 0x33)

	// indirect indexed: pointer dereferenced first, Y added after
	mem.put(0x0040, 0x00, 0x03) // pointer to $0300
	mem.put(0x0305, 0x44)
	mc.Y.Load(0x05)
	mem.put(0x1007, 0xb1, 0x40) // LDA ($40),Y
	step(t, mc)
	assert.Assert(t, mc.A, 0x44)
}

func TestAdc(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// 0x00 + 0xff. no carry out, no overflow, sign set
	mem.put(0x1000, 0xa9, 0x00, 0x69, 0xff) // LDA #$00; ADC #$ff
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0xff)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// 0x50 + 0x50. two positives summing to a negative sets overflow
	mem.put(0x1004, 0xa9, 0x50, 0x69, 0x50) // LDA #$50; ADC #$50
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0xa0)
	assert.Assert(t, mc.Status, "SV-bdizc")

	// carry feeds into the addition
	mem.put(0x1008, 0x38, 0xa9, 0x00, 0x69, 0x00) // SEC; LDA #$00; ADC #$00
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x01)
	assert.Assert(t, mc.Status, "sv-bdizc")

	// wrap around sets the carry out and the zero flag
	mem.put(0x100d, 0xa9, 0xff, 0x69, 0x01) // LDA #$ff; ADC #$01
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "sv-bdiZC")
}

func TestSbc(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// SEC; LDA #$08; SBC #$05
	mem.put(0x1000, 0x38, 0xa9, 0x08, 0xe9, 0x05)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x03)
	assert.Assert(t, mc.Status, "sv-bdizC")

	// subtracting a larger value borrows, clearing the carry
	mem.put(0x1005, 0xa9, 0x05, 0xe9, 0x08) // LDA #$05; SBC #$08
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0xfd)
	assert.Assert(t, mc.Status, "Sv-bdizc")
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// comparing 0x10 with 0x20 clears the carry and leaves the
	// accumulator untouched
	mem.put(0x1000, 0xa9, 0x10, 0xc9, 0x20) // LDA #$10; CMP #$20
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x10)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// equality sets carry and zero
	mem.put(0x1004, 0xc9, 0x10) // CMP #$10
	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdiZC")

	// CPX and CPY
	mem.put(0x1006, 0xa2, 0x30, 0xe0, 0x01, 0xa0, 0x00, 0xc0, 0x01)
	step(t, mc) // LDX #$30
	step(t, mc) // CPX #$01
	assert.Assert(t, mc.Status.Carry, true)
	step(t, mc) // LDY #$00
	step(t, mc) // CPY #$01
	assert.Assert(t, mc.Status.Carry, false)
}

func TestBranches(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// a branch that is not taken still consumes its displacement byte
	mem.put(0x1000, 0x18, 0x90, 0x10) // CLC; BCC +16 ... taken
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x1013)

	// the displacement is signed. branch backwards over the program
	mem.put(0x1013, 0x38, 0xb0, 0xfd) // SEC; BCS -3
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x1013)

	// not taken: program counter advances past the displacement
	mem.put(0x1013, 0xa9, 0x00, 0xd0, 0x40) // LDA #$00; BNE +64
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x1017)

	// BEQ taken on the same zero result
	mem.put(0x1017, 0xf0, 0x02) // BEQ +2
	step(t, mc)
	assert.Assert(t, mc.PC, 0x101b)
}

func TestJsrRts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xfd)
	mc.PC.Load(0x1000)

	mem.put(0x1000, 0x20, 0x00, 0x20) // JSR $2000
	mem.put(0x2000, 0x60)             // RTS

	step(t, mc)
	assert.Assert(t, mc.PC, 0x2000)

	// the pushed return address is the address of the last byte of the
	// JSR operand
	assert.Assert(t, mem.Read(0x01fd), 0x10)
	assert.Assert(t, mem.Read(0x01fc), 0x02)
	assert.Assert(t, mc.SP, 0xfb)

	step(t, mc)
	assert.Assert(t, mc.PC, 0x1003)
	assert.Assert(t, mc.SP, 0xfd)
}

func TestJmp(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	mem.put(0x1000, 0x4c, 0x00, 0x30) // JMP $3000
	step(t, mc)
	assert.Assert(t, mc.PC, 0x3000)

	mem.put(0x2100, 0x00, 0x40)
	mem.put(0x3000, 0x6c, 0x00, 0x21) // JMP ($2100)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x4000)
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xfd)
	mc.PC.Load(0x1000)

	// PHA / PLA. the pull sets the sign and zero flags
	mem.put(0x1000, 0xa9, 0x80, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc) // LDA #$80
	step(t, mc) // PHA
	assert.Assert(t, mem.Read(0x01fd), 0x80)
	step(t, mc) // LDA #$00
	step(t, mc) // PLA
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// PHP / PLP round trip through a different flag state
	mem.put(0x1006, 0x38, 0x08, 0x18, 0x28) // SEC; PHP; CLC; PLP
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.Status.Carry, false)
	step(t, mc)
	assert.Assert(t, mc.Status.Carry, true)
}

func TestShiftsAndRotates(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// ASL A moves bit 7 into the carry
	mem.put(0x1000, 0xa9, 0x81, 0x0a) // LDA #$81; ASL A
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x02)
	assert.Assert(t, mc.Status, "sv-bdizC")

	// ROL A shifts the old carry into bit 0
	mem.put(0x1003, 0x2a) // ROL A
	step(t, mc)
	assert.Assert(t, mc.A, 0x05)
	assert.Assert(t, mc.Status, "sv-bdizc")

	// LSR against memory writes the shifted value back
	mem.put(0x0050, 0x03)
	mem.put(0x1004, 0x46, 0x50) // LSR $50
	step(t, mc)
	assert.Assert(t, mem.Read(0x0050), 0x01)
	assert.Assert(t, mc.Status, "sv-bdizC")

	// ROR against memory
	mem.put(0x1006, 0x66, 0x50) // ROR $50
	step(t, mc)
	assert.Assert(t, mem.Read(0x0050), 0x80)
	assert.Assert(t, mc.Status, "Sv-bdizC")
}

func TestIncDec(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	// INC wraps from 0xff to 0x00 and sets the zero flag
	mem.put(0x0060, 0xff)
	mem.put(0x1000, 0xe6, 0x60) // INC $60
	step(t, mc)
	assert.Assert(t, mem.Read(0x0060), 0x00)
	assert.Assert(t, mc.Status, "sv-bdiZc")

	// DEC back to 0xff
	mem.put(0x1002, 0xc6, 0x60) // DEC $60
	step(t, mc)
	assert.Assert(t, mem.Read(0x0060), 0xff)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// DEX wraps from 0x00
	mem.put(0x1004, 0xca) // DEX
	step(t, mc)
	assert.Assert(t, mc.X, 0xff)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// INY
	mem.put(0x1005, 0xc8) // INY
	step(t, mc)
	assert.Assert(t, mc.Y, 0x01)
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestBitwise(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	mem.put(0x1000, 0xa9, 0xcc, 0x29, 0x0f) // LDA #$cc; AND #$0f
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x0c)

	mem.put(0x1004, 0x49, 0xff) // EOR #$ff
	step(t, mc)
	assert.Assert(t, mc.A, 0xf3)

	mem.put(0x1006, 0x09, 0x0c) // ORA #$0c
	step(t, mc)
	assert.Assert(t, mc.A, 0xff)

	// BIT copies bits 7 and 6 of the operand into sign and overflow and
	// tests the AND against the accumulator for zero
	mem.put(0x0070, 0xc0)
	mem.put(0x1008, 0xa9, 0x3f, 0x24, 0x70) // LDA #$3f; BIT $70
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x3f)
	assert.Assert(t, mc.Status, "SV-bdiZc")
}

func TestTransfers(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	mem.put(0x1000, 0xa9, 0x80, 0xaa, 0xa8) // LDA #$80; TAX; TAY
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.X, 0x80)
	assert.Assert(t, mc.Y, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	// TXS does not affect the flags
	mem.put(0x1004, 0xa2, 0x00, 0x9a) // LDX #$00; TXS
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.SP, 0x00)
	assert.Assert(t, mc.Status, "sv-bdiZc")

	mem.put(0x1007, 0xba) // TSX
	step(t, mc)
	assert.Assert(t, mc.X, 0x00)
	assert.Assert(t, mc.Status, "sv-bdiZc")
}

func TestFlagInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	mem.put(0x1000, 0x38, 0xf8, 0x78) // SEC; SED; SEI
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bDIzC")

	mem.put(0x1003, 0x18, 0xd8, 0x58) // CLC; CLD; CLI
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdizc")

	// CLV is the only way to clear the overflow flag directly
	mc.Status.Overflow = true
	mem.put(0x1006, 0xb8) // CLV
	step(t, mc)
	assert.Assert(t, mc.Status.Overflow, false)
}

func TestBrkRti(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xfd)
	mc.PC.Load(0x1000)
	mc.Status.Carry = true

	mem.put(0xfffe, 0x00, 0x20) // interrupt vector
	mem.put(0x1000, 0x00)       // BRK
	mem.put(0x2000, 0x40)       // RTI

	step(t, mc)
	assert.Assert(t, mc.PC, 0x2000)
	assert.Assert(t, mc.Status.InterruptDisable, true)

	// the pushed return address skips the BRK signature byte and the
	// pushed status byte has the Break flag set
	assert.Assert(t, mem.Read(0x01fd), 0x10)
	assert.Assert(t, mem.Read(0x01fc), 0x02)
	assert.Assert(t, mem.Read(0x01fb), 0x31)

	step(t, mc)
	assert.Assert(t, mc.PC, 0x1002)
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.Status.Carry, true)
}

func TestHardwareInterrupt(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xfd)
	mc.PC.Load(0x1234)

	mem.put(0xfffe, 0x00, 0x20)
	mc.Interrupt(false)

	assert.Assert(t, mc.PC, 0x2000)
	assert.Assert(t, mem.Read(0x01fd), 0x12)
	assert.Assert(t, mem.Read(0x01fc), 0x34)

	// the Break flag is clear in the pushed status byte
	assert.Assert(t, mem.Read(0x01fb), 0x20)
	assert.Assert(t, mc.Status.InterruptDisable, true)
}

func TestDispatchFault(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)
	mc.A.Load(0x42)
	mc.SP.Load(0xfd)

	mem.put(0x1000, 0xff)

	err := mc.ExecuteInstruction()
	if err == nil {
		t.Fatal("expected an error for an unimplemented opcode")
	}
	test.Equate(t, curated.Is(err, cpu.UnimplementedOpcode), true)

	// nothing has changed, not even the program counter
	assert.Assert(t, mc.PC, 0x1000)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestNop(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(0x1000)

	mem.put(0x1000, 0xea)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x1001)
	assert.Assert(t, mc.Status, "sv-bdizc")
}
