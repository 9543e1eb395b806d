/*
 * atomicdata_test.go, part of biomesh.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, 13, table.Len())

	c, ok := table.Get("C")
	require.True(t, ok)
	assert.InDelta(t, 1.70, c.Radius, 1e-9)
	assert.InDelta(t, 12.01, c.Mass, 1e-9)

	fe, ok := table.Get("Fe")
	require.True(t, ok)
	assert.InDelta(t, 1.72, fe.Radius, 1e-9)
	assert.InDelta(t, 55.85, fe.Mass, 1e-9)

	//lookups are case-sensitive, canonical chemical casing only
	assert.False(t, table.Has("FE"))
	assert.False(t, table.Has("fe"))
	assert.True(t, table.Has("Ca")) //calcium is in the table even
	//though name inference never produces it
}

func TestSpecTableMutation(t *testing.T) {
	table := NewSpecTable()
	assert.Equal(t, 0, table.Len())
	assert.False(t, table.Has("Se"))

	table.Add(AtomicSpec{Symbol: "Se", Radius: 1.90, Mass: 78.97})
	require.True(t, table.Has("Se"))
	se, _ := table.Get("Se")
	assert.InDelta(t, 1.90, se.Radius, 1e-9)

	//Add replaces an existing entry
	table.Add(AtomicSpec{Symbol: "Se", Radius: 2.00, Mass: 78.97})
	se, _ = table.Get("Se")
	assert.InDelta(t, 2.00, se.Radius, 1e-9)
	assert.Equal(t, 1, table.Len())

	assert.True(t, table.Remove("Se"))
	assert.False(t, table.Remove("Se"))
	assert.Equal(t, 0, table.Len())

	table.Add(AtomicSpec{Symbol: "C"})
	table.Clear()
	assert.Equal(t, 0, table.Len())
}

func TestSpecTableSymbolsSorted(t *testing.T) {
	table := NewSpecTable()
	table.Add(AtomicSpec{Symbol: "Zn"})
	table.Add(AtomicSpec{Symbol: "C"})
	table.Add(AtomicSpec{Symbol: "Fe"})
	assert.Equal(t, []string{"C", "Fe", "Zn"}, table.Symbols())
}

func TestSpecTableCopyIsIndependent(t *testing.T) {
	orig := DefaultTable()
	cp := orig.Copy()
	cp.Remove("C")
	cp.Add(AtomicSpec{Symbol: "Se", Radius: 1.90, Mass: 78.97})

	assert.True(t, orig.Has("C"))
	assert.False(t, orig.Has("Se"))
	assert.False(t, cp.Has("C"))
}
