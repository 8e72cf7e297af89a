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

package logger

import (
	"strings"
	"testing"

	"github.com/Breq16/noentiendo/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(maxCentral)

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "")

	l.log("test", "this is a test")
	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	// clearing the log means the next write produces nothing
	l.clear()
	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "")
}

func TestLoggerRepeats(t *testing.T) {
	l := newLogger(maxCentral)

	// identical entries collapse into one line with a repeat count
	l.log("test", "this is a test")
	l.log("test", "this is a test")
	l.log("test", "this is a test")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test (repeat x3)\n")

	// a different detail string breaks the run
	l.log("test", "this is another test")

	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test (repeat x3)\ntest: this is another test\n")
}

func TestLoggerTail(t *testing.T) {
	l := newLogger(maxCentral)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	s := &strings.Builder{}
	l.tail(s, 2)
	test.Equate(t, s.String(), "test: b\ntest: c\n")

	// asking for more entries than exist is capped
	s.Reset()
	l.tail(s, 100)
	test.Equate(t, s.String(), "test: a\ntest: b\ntest: c\n")
}
