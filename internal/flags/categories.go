// Copyright 2024 The turb1600 Authors
// This file is part of turb1600.
//
// turb1600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// turb1600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with turb1600. If not, see <http://www.gnu.org/licenses/>.

package flags

const (
	// HashingCategory groups the flags selecting input and output modes.
	HashingCategory = "HASHING"

	// LoggingCategory groups the logging and debugging flags.
	LoggingCategory = "LOGGING AND DEBUGGING"

	// MiscCategory is the fallback for everything else.
	MiscCategory = "MISC"
)
