/*
 * atomicdata.go, part of biomesh.
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

import "sort"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present.
var symbolMass = map[string]float64{
	"H":  1.01,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"P":  30.97,
	"S":  32.07,
	"K":  39.10,
	"Ca": 40.08,
	"Mg": 24.31,
	"Cl": 35.45,
	"Na": 22.99,
	"Fe": 55.85,
	"Zn": 65.38,
}

//A map for assigning atomic radii to elements. These are the
//van der Waals style radii used for volume estimates, not covalent
//radii. Note that just common "bio-elements" are present.
var symbolRadius = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"P":  1.80,
	"S":  1.80,
	"K":  2.75,
	"Ca": 1.97,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Fe": 1.72,
	"Zn": 1.39,
}

//SpecTable maps element symbols to their atomic specifications. A
//table can be owned by a single parse session or shared by reference
//across parsers, but it must not be mutated while a parse using it is
//in flight: there is no internal locking. Callers that need that can
//hand each parser its own Copy.
type SpecTable struct {
	specs map[string]AtomicSpec
}

//NewSpecTable returns an empty table.
func NewSpecTable() *SpecTable {
	return &SpecTable{specs: make(map[string]AtomicSpec)}
}

//DefaultTable returns a table pre-populated with the common
//biological elements from symbolMass/symbolRadius. Lookups are
//case-sensitive: keys use canonical chemical casing ("Fe", not "FE"),
//which is also what ElementFromName produces.
func DefaultTable() *SpecTable {
	t := NewSpecTable()
	for sym, mass := range symbolMass {
		t.Add(AtomicSpec{Symbol: sym, Radius: symbolRadius[sym], Mass: mass})
	}
	return t
}

//Add inserts or replaces the specification for spec.Symbol.
func (T *SpecTable) Add(spec AtomicSpec) {
	T.specs[spec.Symbol] = spec
}

//Get returns the specification for the given symbol, if present.
func (T *SpecTable) Get(symbol string) (AtomicSpec, bool) {
	s, ok := T.specs[symbol]
	return s, ok
}

//Has reports whether the table holds a specification for symbol.
func (T *SpecTable) Has(symbol string) bool {
	_, ok := T.specs[symbol]
	return ok
}

//Remove deletes the specification for symbol and reports whether it
//was present.
func (T *SpecTable) Remove(symbol string) bool {
	if _, ok := T.specs[symbol]; !ok {
		return false
	}
	delete(T.specs, symbol)
	return true
}

//Clear removes all specifications.
func (T *SpecTable) Clear() {
	T.specs = make(map[string]AtomicSpec)
}

//Len returns the number of specifications in the table.
func (T *SpecTable) Len() int {
	return len(T.specs)
}

//Symbols returns the element symbols in the table, sorted.
func (T *SpecTable) Symbols() []string {
	syms := make([]string, 0, len(T.specs))
	for s := range T.specs {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

//Copy returns an independent copy of the table.
func (T *SpecTable) Copy() *SpecTable {
	n := NewSpecTable()
	for k, v := range T.specs {
		n.specs[k] = v
	}
	return n
}
