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

package registers

import "fmt"

// ProgramCounter represents the 16 bit program counter.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter creates a new program counter with an initial value.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the canonical name of the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC as a value of type uint16.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the PC. The counter wraps modulo 65536.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}

// Increment the PC by one. Used when consuming bytes from the instruction
// stream.
func (pc *ProgramCounter) Increment() {
	pc.value++
}

// Offset the PC by a signed displacement, as used by the branch
// instructions. The displacement is sign extended before the wrapping add.
func (pc *ProgramCounter) Offset(displacement int8) {
	pc.value += uint16(int16(displacement))
}
