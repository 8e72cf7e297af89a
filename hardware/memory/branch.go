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

package memory

import (
	"github.com/Breq16/noentiendo/hardware/memory/bus"
)

type branchEntry struct {
	origin uint16
	mem    bus.Memory
}

// Branch composes several stores into one address space. Each mapped store
// is declared with an origin address; a store spans from its origin to the
// origin of the next mapped store above it (or to the top of the address
// space).
//
// Resolution scans entries in declaration order and selects the last entry
// whose origin is less than or equal to the requested address. Callers
// should map stores in ascending origin order for conventional behaviour;
// mapping at an equal or lower origin than an earlier entry shadows the
// earlier entry for all addresses at or above the later origin.
//
// Addresses below the first mapped origin are unmapped: reads return zero
// and writes are dropped.
type Branch struct {
	entries []branchEntry
}

// NewBranch creates a new Branch with no mapped stores.
func NewBranch() *Branch {
	return &Branch{
		entries: make([]branchEntry, 0),
	}
}

// Map attaches a store to the address space at the specified origin. The
// Branch is returned to allow chained construction:
//
//	mem := memory.NewBranch().Map(0x0000, ram).Map(0x8000, rom)
func (b *Branch) Map(origin uint16, mem bus.Memory) *Branch {
	b.entries = append(b.entries, branchEntry{origin: origin, mem: mem})
	return b
}

// resolve finds the mapped store covering the address, along with the
// offset of the address from the store's origin.
func (b *Branch) resolve(address uint16) (bus.Memory, uint16, bool) {
	var mem bus.Memory
	var origin uint16

	for _, e := range b.entries {
		if address >= e.origin {
			mem = e.mem
			origin = e.origin
		}
	}

	if mem == nil {
		return nil, 0, false
	}

	return mem, address - origin, true
}

// Read implements the bus.Memory interface.
func (b *Branch) Read(address uint16) uint8 {
	mem, offset, ok := b.resolve(address)
	if !ok {
		return 0
	}
	return mem.Read(offset)
}

// Write implements the bus.Memory interface.
func (b *Branch) Write(address uint16, data uint8) {
	mem, offset, ok := b.resolve(address)
	if !ok {
		return
	}
	mem.Write(offset, data)
}

// Tick implements the bus.Memory interface. The tick fans out to every
// mapped store in declaration order.
func (b *Branch) Tick() {
	for _, e := range b.entries {
		e.mem.Tick()
	}
}

// Reset implements the bus.Memory interface. The reset fans out to every
// mapped store in declaration order.
func (b *Branch) Reset() {
	for _, e := range b.entries {
		e.mem.Reset()
	}
}
