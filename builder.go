/*
 * builder.go, part of biomesh.
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

//AtomBuilder constructs Atoms field by field, with automatic element
//detection and spec-table enrichment. It is the programmatic
//counterpart of the parser: callers assembling atoms from something
//other than a PDB file get the same enrichment semantics the parser
//applies. A builder can be reused via Reset.
type AtomBuilder struct {
	atom  Atom
	table *SpecTable
}

//NewAtomBuilder returns a builder that enriches against table, or
//against DefaultTable() if table is nil.
func NewAtomBuilder(table *SpecTable) *AtomBuilder {
	if table == nil {
		table = DefaultTable()
	}
	return &AtomBuilder{table: table}
}

//Serial sets the serial number.
func (B *AtomBuilder) Serial(serial int) *AtomBuilder {
	B.atom.Serial = serial
	return B
}

//Name sets the atom name.
func (B *AtomBuilder) Name(name string) *AtomBuilder {
	B.atom.Name = name
	return B
}

//ResName sets the residue name.
func (B *AtomBuilder) ResName(name string) *AtomBuilder {
	B.atom.ResName = name
	return B
}

//Chain sets the chain identifier.
func (B *AtomBuilder) Chain(chain string) *AtomBuilder {
	B.atom.Chain = chain
	return B
}

//ResSeq sets the residue sequence number.
func (B *AtomBuilder) ResSeq(n int) *AtomBuilder {
	B.atom.ResSeq = n
	return B
}

//Coords sets the coordinates in Angstroms.
func (B *AtomBuilder) Coords(x, y, z float64) *AtomBuilder {
	B.atom.X = x
	B.atom.Y = y
	B.atom.Z = z
	return B
}

//Element sets the chemical element symbol explicitly, bypassing
//inference.
func (B *AtomBuilder) Element(symbol string) *AtomBuilder {
	B.atom.Symbol = symbol
	return B
}

//Radius sets the atomic radius explicitly. Enrichment never
//overwrites a non-zero radius.
func (B *AtomBuilder) Radius(r float64) *AtomBuilder {
	B.atom.Radius = r
	return B
}

//Mass sets the atomic mass explicitly. Enrichment never overwrites a
//non-zero mass.
func (B *AtomBuilder) Mass(m float64) *AtomBuilder {
	B.atom.Mass = m
	return B
}

//AutoDetectElement infers the element symbol from the atom name and,
//if successful, applies the spec-table properties. Fields already set
//are left alone.
func (B *AtomBuilder) AutoDetectElement() *AtomBuilder {
	if B.atom.Name == "" {
		return B
	}
	if sym := ElementFromName(B.atom.Name); sym != "" {
		B.atom.Symbol = sym
		applySpec(&B.atom, B.table)
	}
	return B
}

//Build returns the constructed atom. If no element was set
//explicitly, it is auto-detected from the atom name; an element the
//spec table doesn't know is left unenriched (the lenient policy).
func (B *AtomBuilder) Build() *Atom {
	if B.atom.Symbol == "" && B.atom.Name != "" {
		B.AutoDetectElement()
	} else if B.atom.Symbol != "" {
		applySpec(&B.atom, B.table)
	}
	at := B.atom
	return &at
}

//BuildStrict is Build under the strict enrichment policy: a resolved
//element symbol with no spec-table entry is an UnknownElementError
//instead of a silent no-op.
func (B *AtomBuilder) BuildStrict() (*Atom, error) {
	at := B.Build()
	if at.Symbol != "" && !B.table.Has(at.Symbol) {
		return nil, &UnknownElementError{Symbol: at.Symbol, Name: at.Name}
	}
	return at, nil
}

//Reset clears the builder for reuse. The spec table is kept.
func (B *AtomBuilder) Reset() *AtomBuilder {
	B.atom = Atom{}
	return B
}

//applySpec fills in radius and mass for at.Symbol from table,
//touching only fields still at zero so explicitly-set values survive.
//It reports whether the table had an entry for the symbol.
func applySpec(at *Atom, table *SpecTable) bool {
	if table == nil || at.Symbol == "" {
		return false
	}
	spec, ok := table.Get(at.Symbol)
	if !ok {
		return false
	}
	if at.Radius == 0 {
		at.Radius = spec.Radius
	}
	if at.Mass == 0 {
		at.Mass = spec.Mass
	}
	return true
}
