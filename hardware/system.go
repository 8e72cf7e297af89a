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

package hardware

import (
	"github.com/Breq16/noentiendo/hardware/cpu"
	"github.com/Breq16/noentiendo/hardware/memory/bus"
	"github.com/Breq16/noentiendo/logger"
)

// System is the top level of the emulation. The CPU runs against whatever
// memory system was supplied, usually the root of a memory.Branch tree.
type System struct {
	CPU *cpu.CPU
	Mem bus.Memory

	// log every executed instruction. very slow
	Trace bool
}

// NewSystem is the preferred method of initialisation for the System
// structure.
func NewSystem(mem bus.Memory) *System {
	return &System{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// Reset puts the machine back into its power-on state. The memory system
// is reset before the CPU so that the reset vector read finds the memory
// already settled.
func (sys *System) Reset() {
	sys.Mem.Reset()
	sys.CPU.Reset()
}

// Tick runs one instruction and then gives every attached device its
// time slice.
func (sys *System) Tick() error {
	err := sys.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}

	if sys.Trace {
		res := sys.CPU.LastResult
		logger.Logf("cpu", "%04x  %s  %s", res.Address, res.Defn, sys.CPU)
	}

	sys.Mem.Tick()

	return nil
}

// Interrupt delivers an interrupt to the CPU regardless of the state of
// the interrupt disable flag. Callers wanting maskable behaviour should
// check the flag first. The software argument is recorded in the Break
// flag of the pushed status byte.
func (sys *System) Interrupt(software bool) {
	sys.CPU.Interrupt(software)
}
