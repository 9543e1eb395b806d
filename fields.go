/*
 * fields.go, part of biomesh.
 *
 * Copyright 2024 The biomesh developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package biomesh

import (
	"math"
	"strconv"
	"strings"
)

//minAtomRecord is the column at which the Z coordinate field ends.
//Anything shorter cannot hold the mandatory fields of an ATOM record.
//Real-world PDB lines are routinely shorter than the full 80 columns
//when the optional trailing fields are absent, so everything past
//this column is treated as optional.
const minAtomRecord = 54

//field extracts the whitespace-trimmed content of the fixed-width
//column range [start, start+length) from line. The range is clipped
//to the actual line length; a start beyond the end of the line yields
//the empty string rather than an error.
func field(line string, start, length int) string {
	if start >= len(line) {
		return ""
	}
	end := start + length
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

//parseIntField parses the mandatory integer field called name at the
//given column range. Empty fields and partial conversions (trailing
//garbage) are FieldErrors, not truncations.
func parseIntField(line string, lineno, start, length int, name string) (int, error) {
	s := field(line, start, length)
	if s == "" {
		return 0, &FieldError{Line: lineno, Field: name}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldError{Line: lineno, Field: name, Value: s}
	}
	return v, nil
}

//parseFloatField parses the mandatory float field called name at the
//given column range. Non-finite values are rejected so that parsed
//coordinates are always finite.
func parseFloatField(line string, lineno, start, length int, name string) (float64, error) {
	s := field(line, start, length)
	if s == "" {
		return 0, &FieldError{Line: lineno, Field: name}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Line: lineno, Field: name, Value: s}
	}
	return v, nil
}
