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

// Package cpu emulates the instruction processing of a 6502-class
// processor. The emulation is not cycle accurate: each call to
// ExecuteInstruction() performs one complete fetch-decode-execute step and
// the effects of the instruction appear all at once.
//
// The emulation covers the 151 documented opcodes. The decimal flag is
// tracked but arithmetic is never BCD adjusted.
package cpu
