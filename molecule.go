/*
 * molecule.go, part of biomesh.
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
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/biomesh-dev/biomesh/geo"
)

//Atomer is the basic interface for any ordered collection of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i. Should
	//panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//BoundingBox computes the axis-aligned bounding box covering every
//atom in mol. It returns the empty box for an empty collection.
func BoundingBox(mol Atomer) geo.Box {
	var box geo.Box
	for i := 0; i < mol.Len(); i++ {
		box.AddPoint(mol.Atom(i).Coord())
	}
	return box
}

//Chain is a named collection of atoms sharing a chain identifier. It
//caches its bounding box; the cache is invalidated whenever the atom
//set changes.
type Chain struct {
	ID    string
	atoms []*Atom
	box   *geo.Box //lazily computed, nil when stale
}

//NewChain returns an empty chain with the given identifier.
func NewChain(id string) *Chain {
	return &Chain{ID: id}
}

//AddAtom appends an atom to the chain and invalidates the cached
//bounding box.
func (C *Chain) AddAtom(at *Atom) {
	C.atoms = append(C.atoms, at)
	C.box = nil
}

//Atom returns the atom at index i, in file order. Panics if out of
//range.
func (C *Chain) Atom(i int) *Atom {
	if i >= len(C.atoms) {
		panic("Chain: requested Atom out of bounds")
	}
	return C.atoms[i]
}

//Len returns the number of atoms in the chain.
func (C *Chain) Len() int {
	return len(C.atoms)
}

//Atoms returns the backing atom slice. Callers must not modify it.
func (C *Chain) Atoms() []*Atom {
	return C.atoms
}

//Clear removes all atoms and invalidates the cached bounding box.
func (C *Chain) Clear() {
	C.atoms = nil
	C.box = nil
}

//Empty reports whether the chain has no atoms.
func (C *Chain) Empty() bool {
	return len(C.atoms) == 0
}

//BoundingBox returns the bounding box of the chain, computing and
//caching it on first use. The cached box is recomputed in full after
//any mutation, never updated incrementally.
func (C *Chain) BoundingBox() geo.Box {
	if C.box == nil {
		box := BoundingBox(C)
		C.box = &box
	}
	return *C.box
}

//Center returns the center of the chain's bounding box. All axes are
//NaN for an empty chain.
func (C *Chain) Center() r3.Vec {
	box := C.BoundingBox()
	return box.Center()
}

//BoundingSphereRadius returns the radius of the smallest sphere
//centered at the chain's bounding-box center that covers the box.
func (C *Chain) BoundingSphereRadius() float64 {
	box := C.BoundingBox()
	return box.BoundingSphereRadius()
}

//InBounds reports whether p lies within the chain's bounding box.
func (C *Chain) InBounds(p r3.Vec) bool {
	box := C.BoundingBox()
	return box.Contains(p)
}

//Structure holds the result of parsing one PDB content: the atoms in
//file order, the same atoms grouped by chain, and the HEADER/TITLE
//metadata if present.
type Structure struct {
	Header string
	Title  string
	atoms  []*Atom
	chains map[string]*Chain
}

//NewStructure returns an empty structure.
func NewStructure() *Structure {
	return &Structure{chains: make(map[string]*Chain)}
}

//AddAtom appends an atom to the flat list and to its chain, creating
//the chain on first use.
func (S *Structure) AddAtom(at *Atom) {
	S.atoms = append(S.atoms, at)
	ch, ok := S.chains[at.Chain]
	if !ok {
		ch = NewChain(at.Chain)
		S.chains[at.Chain] = ch
	}
	ch.AddAtom(at)
}

//Atom returns the atom at index i, in file order. Panics if out of
//range.
func (S *Structure) Atom(i int) *Atom {
	if i >= len(S.atoms) {
		panic("Structure: requested Atom out of bounds")
	}
	return S.atoms[i]
}

//Len returns the total number of atoms.
func (S *Structure) Len() int {
	return len(S.atoms)
}

//Atoms returns the flat atom list in file order. Callers must not
//modify it.
func (S *Structure) Atoms() []*Atom {
	return S.atoms
}

//Empty reports whether no atoms were parsed.
func (S *Structure) Empty() bool {
	return len(S.atoms) == 0
}

//Chain returns the chain with the given identifier, or nil if no
//atom with that chain id was parsed.
func (S *Structure) Chain(id string) *Chain {
	return S.chains[id]
}

//ChainIDs returns the chain identifiers present, sorted.
func (S *Structure) ChainIDs() []string {
	ids := make([]string, 0, len(S.chains))
	for id := range S.chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

//NChains returns the number of distinct chains.
func (S *Structure) NChains() int {
	return len(S.chains)
}

//BoundingBox returns the bounding box over all atoms of the
//structure.
func (S *Structure) BoundingBox() geo.Box {
	return BoundingBox(S)
}
