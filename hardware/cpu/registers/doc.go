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

// Package registers implements the registers of the CPU. The 8 bit registers
// (accumulator, index registers and the stack pointer) are implemented by the
// Register type; the 16 bit program counter by the ProgramCounter type; and
// the status flags by the StatusRegister type.
//
// All register arithmetic wraps: modulo 256 for the Register type and modulo
// 65536 for the ProgramCounter type. The Add() function of the Register type
// additionally reports the carry and overflow state of the addition, which is
// all the ALU of the real chip needs.
package registers
