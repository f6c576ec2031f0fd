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

// Package resources prepares paths for Quartet resources, such as the
// preferences file.
//
// The JoinPath() function returns the path to the resource specified by the
// arguments. Directories leading up to the resource are created as required
// but the resource itself is never created or touched.
//
// If a directory named ".quartet" exists in the current working directory
// then that is used as the base path. This is the "portable" mode and is
// convenient during development. Otherwise the base path is rooted in the
// user's configuration directory. On modern Linux systems that would be
// something like:
//
//	/home/user/.config/quartet/
package resources
