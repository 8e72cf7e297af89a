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

// Package curated is the error type used throughout the emulator. Errors
// created with Errorf() keep hold of the pattern string they were created
// with, meaning that callers can detect a particular category of error with
// the Is() and Has() functions without string comparison of the formatted
// message.
//
// Error messages created by wrapping one curated error in another are
// normalised on output, removing duplicated message parts.
package curated
