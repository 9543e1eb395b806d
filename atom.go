/*
 * atom.go, part of biomesh.
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
	"gonum.org/v1/gonum/spatial/r3"
)

//Atom contains the data for one atom read from an ATOM or HETATM
//record of a PDB file, plus the chemical properties (Symbol, Radius,
//Mass) filled in by enrichment. An Atom is not modified after parsing
//except for enrichment, which only fills fields that are still at
//their zero value.
type Atom struct {
	Serial    int     //PDB serial number, not required to be unique
	Name      string  //atom name, e.g. "CA"
	AltLoc    string  //alternate location indicator, usually empty
	ResName   string  //3-letter residue name
	Chain     string  //chain identifier
	ResSeq    int     //residue sequence number
	ICode     string  //insertion code, usually empty
	X, Y, Z   float64 //coordinates in Angstroms
	Occupancy float64 //defaults to 1.0 when the column is absent
	Bfactor   float64 //temperature factor, defaults to 0.0
	Symbol    string  //chemical element symbol, empty pending inference
	Radius    float64 //atomic radius in Angstroms, 0 pending enrichment
	Mass      float64 //atomic mass in u, 0 pending enrichment
	Charge    string  //formal charge as printed in the file, rarely set
	Het       bool    //came from a HETATM record
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	newat := *A
	return &newat
}

//Coord returns the position of the atom as an r3 vector.
func (A *Atom) Coord() r3.Vec {
	return r3.Vec{X: A.X, Y: A.Y, Z: A.Z}
}

//Distance returns the distance in Angstroms between A and B.
func (A *Atom) Distance(B *Atom) float64 {
	return r3.Norm(r3.Sub(A.Coord(), B.Coord()))
}

//AtomicSpec holds the chemical properties assigned to an element
//symbol during enrichment.
type AtomicSpec struct {
	Symbol string
	Radius float64 //atomic radius in Angstroms
	Mass   float64 //atomic mass in u
}
