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

// Null is the always-unmapped store. Reads return zero and writes are
// dropped. Useful as a placeholder for address ranges with no hardware
// behind them.
type Null struct{}

// NewNull creates a new Null store.
func NewNull() *Null {
	return &Null{}
}

// Read implements the bus.Memory interface.
func (n *Null) Read(_ uint16) uint8 {
	return 0
}

// Write implements the bus.Memory interface.
func (n *Null) Write(_ uint16, _ uint8) {
}

// Tick implements the bus.Memory interface.
func (n *Null) Tick() {
}

// Reset implements the bus.Memory interface.
func (n *Null) Reset() {
}
