// This file is part of Quartet.
//
// Quartet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Quartet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Quartet.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions that remove common boilerplate from
// the package tests.
//
// The Expect*() functions record a test failure and allow the test to
// continue. The Demand*() functions stop the test immediately and should be
// used when later parts of the test rely on the value being correct. For
// example, testing the length of a slice before indexing into it.
//
// A nil value is considered a success by ExpectSuccess() and a failure by
// ExpectFailure(). This follows from how errors are returned in Go.
//
// The Writer type implements io.Writer and can be used to capture output,
// which can then be compared with Writer.Compare().
package test
