/*
 * elements.go, part of biomesh.
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

import "strings"

//Two-letter element symbols recognized by ElementFromName, keyed by
//their upper-cased spelling. "CA" is deliberately not here, see
//ElementFromName.
var twoLetterSymbol = map[string]string{
	"FE": "Fe",
	"ZN": "Zn",
	"MG": "Mg",
	"CL": "Cl",
	"NA": "Na",
}

//Single-letter elements used as the fallback when no two-letter
//symbol matches.
var oneLetterSymbol = map[string]string{
	"C": "C",
	"N": "N",
	"O": "O",
	"S": "S",
	"P": "P",
	"H": "H",
	"K": "K",
}

//ElementFromName guesses a chemical element symbol from a PDB atom
//name, returning "" when no confident guess is possible.
//
//The atom name "CA" always resolves to carbon, never to calcium: in
//protein structures "CA" overwhelmingly denotes the alpha-carbon
//backbone atom, and no residue context is consulted to tell the two
//apart. Callers that really have a calcium ion must set Atom.Symbol
//explicitly (calcium stays available in the spec table as "Ca").
func ElementFromName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		two := strings.ToUpper(name[:2])
		if two == "CA" {
			return "C" //alpha carbon, not calcium
		}
		if sym, ok := twoLetterSymbol[two]; ok {
			return sym
		}
	}
	if sym, ok := oneLetterSymbol[strings.ToUpper(name[:1])]; ok {
		return sym
	}
	return ""
}
