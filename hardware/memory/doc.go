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

// Package memory contains the concrete implementations of the bus.Memory
// interface: the Null store, the Block RAM store, the ROM store and the
// Branch type, which composes other stores into a single address space.
//
// A complete 64KiB address space is typically a Branch with a Block mapped
// at the bottom and a ROM image at the top, such that the reset and
// interrupt vectors are read from the image.
package memory
