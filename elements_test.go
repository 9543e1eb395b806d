/*
 * elements_test.go, part of biomesh.
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
)

func TestElementFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"N", "N"},
		{"CA", "C"}, //alpha carbon, never calcium
		{"CB", "C"},
		{"CG1", "C"},
		{"OXT", "O"},
		{"SD", "S"},
		{"FE", "Fe"},
		{"FE2", "Fe"},
		{"ZN", "Zn"},
		{"MG", "Mg"},
		{"CL", "Cl"},
		{"NA", "Na"},
		{"K", "K"},
		{"P", "P"},
		{"HB2", "H"},
		{"HG1", "H"}, //mercury is not in the heuristic, H wins
		{"ca", "C"},  //matching is case-insensitive
		{"fe", "Fe"},
		{" N ", "N"}, //padding is stripped first
		{"1HB", ""},  //leading digit defeats the heuristic
		{"XX", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ElementFromName(c.name), "name %q", c.name)
	}
}
