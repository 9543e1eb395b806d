/*
 * molecule_test.go, part of biomesh.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func testAtom(chain string, x, y, z float64) *Atom {
	return &Atom{Name: "CA", Chain: chain, X: x, Y: y, Z: z}
}

func TestChainBoundingBoxCache(t *testing.T) {
	ch := NewChain("A")
	assert.True(t, ch.Empty())
	assert.True(t, ch.BoundingBox().IsEmpty())
	c := ch.Center()
	assert.True(t, math.IsNaN(c.X))

	ch.AddAtom(testAtom("A", 0, 0, 0))
	ch.AddAtom(testAtom("A", 10, 5, 8))
	box := ch.BoundingBox()
	assert.Equal(t, r3.Vec{}, box.Min())
	assert.Equal(t, r3.Vec{X: 10, Y: 5, Z: 8}, box.Max())

	//adding an atom must invalidate the cached box
	ch.AddAtom(testAtom("A", -2, 0, 0))
	box = ch.BoundingBox()
	assert.Equal(t, r3.Vec{X: -2, Y: 0, Z: 0}, box.Min())

	//and so must Clear
	ch.Clear()
	assert.True(t, ch.Empty())
	assert.True(t, ch.BoundingBox().IsEmpty())
}

func TestChainGeometry(t *testing.T) {
	ch := NewChain("A")
	ch.AddAtom(testAtom("A", -2, 0, 0))
	ch.AddAtom(testAtom("A", 10, 5, 8))

	c := ch.Center()
	assert.InDelta(t, 4.0, c.X, 1e-12)
	assert.InDelta(t, 2.5, c.Y, 1e-12)
	assert.InDelta(t, 4.0, c.Z, 1e-12)

	want := math.Sqrt(6*6 + 2.5*2.5 + 4*4)
	assert.InDelta(t, want, ch.BoundingSphereRadius(), 1e-12)

	assert.True(t, ch.InBounds(r3.Vec{X: 0, Y: 1, Z: 1}))
	assert.True(t, ch.InBounds(r3.Vec{X: 10, Y: 5, Z: 8})) //boundary is inclusive
	assert.False(t, ch.InBounds(r3.Vec{X: 11, Y: 1, Z: 1}))
}

func TestChainAtomPanicsOutOfBounds(t *testing.T) {
	ch := NewChain("A")
	ch.AddAtom(testAtom("A", 0, 0, 0))
	assert.NotNil(t, ch.Atom(0))
	assert.Panics(t, func() { ch.Atom(1) })
}

func TestStructureChainGrouping(t *testing.T) {
	mol := NewStructure()
	assert.True(t, mol.Empty())
	assert.True(t, mol.BoundingBox().IsEmpty())

	mol.AddAtom(testAtom("B", 1, 1, 1))
	mol.AddAtom(testAtom("A", 2, 2, 2))
	mol.AddAtom(testAtom("B", 3, 3, 3))

	assert.Equal(t, 3, mol.Len())
	assert.Equal(t, 2, mol.NChains())
	assert.Equal(t, []string{"A", "B"}, mol.ChainIDs())
	require.NotNil(t, mol.Chain("B"))
	assert.Equal(t, 2, mol.Chain("B").Len())

	//file order is preserved in the flat list
	assert.Equal(t, "B", mol.Atom(0).Chain)
	assert.Equal(t, "A", mol.Atom(1).Chain)
	assert.Panics(t, func() { mol.Atom(3) })

	//atoms are shared, not copied, between the flat list and chains
	assert.Same(t, mol.Atom(1), mol.Chain("A").Atom(0))
}

func TestStructureBlankChainID(t *testing.T) {
	mol := NewStructure()
	mol.AddAtom(testAtom("", 0, 0, 0))
	require.NotNil(t, mol.Chain(""))
	assert.Equal(t, 1, mol.Chain("").Len())
	assert.Equal(t, []string{""}, mol.ChainIDs())
}

func TestBoundingBoxAtomer(t *testing.T) {
	mol := NewStructure()
	mol.AddAtom(testAtom("A", -2, 0, 0))
	mol.AddAtom(testAtom("A", 10, 5, 8))
	mol.AddAtom(testAtom("B", 1, 1, 1))

	box := BoundingBox(mol)
	assert.Equal(t, r3.Vec{X: -2, Y: 0, Z: 0}, box.Min())
	assert.Equal(t, r3.Vec{X: 10, Y: 5, Z: 8}, box.Max())
	assert.InDelta(t, 480.0, box.Volume(), 1e-9)

	//the chain box covers only that chain's atoms
	bbox := mol.Chain("B").BoundingBox()
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, bbox.Min())
	assert.InDelta(t, 0.0, bbox.Volume(), 1e-12)
}
