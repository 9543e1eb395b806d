/*
 * builder_test.go, part of biomesh.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAutoDetect(t *testing.T) {
	at := NewAtomBuilder(nil).
		Serial(1).
		Name("CA").
		ResName("ALA").
		Chain("A").
		ResSeq(1).
		Coords(1.0, 2.0, 3.0).
		Build()
	assert.Equal(t, "C", at.Symbol)
	assert.InDelta(t, 1.70, at.Radius, 1e-9)
	assert.InDelta(t, 12.01, at.Mass, 1e-9)
	assert.Equal(t, 1.0, at.X)
	assert.Equal(t, 3.0, at.Z)
}

func TestBuilderExplicitValuesSurviveEnrichment(t *testing.T) {
	at := NewAtomBuilder(nil).
		Name("CA").
		Radius(2.5).
		Build()
	assert.Equal(t, "C", at.Symbol)
	assert.InDelta(t, 2.5, at.Radius, 1e-9)   //explicit value kept
	assert.InDelta(t, 12.01, at.Mass, 1e-9)   //unset field enriched
}

func TestBuilderExplicitElement(t *testing.T) {
	//an explicit element wins over what the name would suggest
	at := NewAtomBuilder(nil).Name("CA").Element("Ca").Build()
	assert.Equal(t, "Ca", at.Symbol)
	assert.InDelta(t, 1.97, at.Radius, 1e-9)
	assert.InDelta(t, 40.08, at.Mass, 1e-9)
}

func TestBuilderUnknownElement(t *testing.T) {
	b := NewAtomBuilder(nil).Name("SE").Element("Se")

	at := b.Build() //lenient: kept, unenriched
	assert.Equal(t, "Se", at.Symbol)
	assert.Equal(t, 0.0, at.Radius)

	_, err := b.BuildStrict()
	require.Error(t, err)
	var unknown *UnknownElementError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Se", unknown.Symbol)
}

func TestBuilderCustomTable(t *testing.T) {
	table := DefaultTable()
	table.Add(AtomicSpec{Symbol: "Se", Radius: 1.90, Mass: 78.97})
	at, err := NewAtomBuilder(table).Name("SE").Element("Se").BuildStrict()
	require.NoError(t, err)
	assert.InDelta(t, 1.90, at.Radius, 1e-9)
}

func TestBuilderReset(t *testing.T) {
	b := NewAtomBuilder(nil)
	first := b.Serial(1).Name("N").Build()
	second := b.Reset().Serial(2).Name("O").Build()

	assert.Equal(t, 1, first.Serial)
	assert.Equal(t, "N", first.Symbol)
	assert.Equal(t, 2, second.Serial)
	assert.Equal(t, "O", second.Symbol)
	//Build returns an independent copy each time
	assert.NotSame(t, first, second)
}

func TestAtomDistance(t *testing.T) {
	a := NewAtomBuilder(nil).Name("N").Coords(0, 0, 0).Build()
	b := NewAtomBuilder(nil).Name("O").Coords(3, 4, 0).Build()
	assert.InDelta(t, 5.0, a.Distance(b), 1e-12)
	assert.InDelta(t, 5.0, b.Distance(a), 1e-12)
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestAtomCopy(t *testing.T) {
	a := NewAtomBuilder(nil).Serial(7).Name("CA").Coords(1, 2, 3).Build()
	c := a.Copy()
	assert.Equal(t, *a, *c)
	c.X = 99
	assert.Equal(t, 1.0, a.X)

	var nilAtom *Atom
	assert.Panics(t, func() { nilAtom.Copy() })
}
