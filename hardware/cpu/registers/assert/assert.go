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

// Package assert contains a convenience assertion function for register
// values, used by the CPU unit tests. A StatusRegister can be compared
// against a string of eight flag characters (for example "sv-BdIzc"), the
// upper case characters indicating a set flag; note that the unused bit is
// always written as '-'.
package assert

import (
	"reflect"
	"testing"

	"github.com/Breq16/noentiendo/hardware/cpu/registers"
)

// Assert is used to test equality between a register and a literal value.
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StatusRegister failed (%#02x  - wanted %#02x)", r.Value(), x)
			}

		case string:
			if len(x) != 8 {
				t.Fatalf("assert StatusRegister failed (status flags must be a string of 8 chars)")
			}
			if r.String() != x {
				t.Errorf("assert StatusRegister failed (%s  - wanted %s)", r.String(), x)
			}
		}

	case uint16:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint16 failed (%#04x  - wanted %#04x)", r, x)
			}
		}

	case uint8:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint8 failed (%#02x  - wanted %#02x)", r, x)
			}
		}

	case bool:
		if r != x.(bool) {
			t.Errorf("assert bool failed (%v  - wanted %v)", r, x.(bool))
		}

	case int:
		if r != x.(int) {
			t.Errorf("assert int failed (%d  - wanted %d)", r, x.(int))
		}
	}
}
