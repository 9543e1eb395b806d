/*
 * options.go, part of biomesh.
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

import "go.uber.org/zap"

//Options contains the policies of a Parser. The PDB corpus disagrees
//on several behaviors (HETATM handling, empty files, unknown
//elements), so each is an explicit flag here rather than a hardcoded
//choice.
type Options struct {
	parseHetatm    bool //parse HETATM like ATOM, or skip with a warning
	failOnEmpty    bool //is a zero-atom parse an error or a warning?
	strictElements bool //unknown element under enrichment aborts the parse
	table          *SpecTable
	logger         *zap.Logger
}

//DefaultOptions returns the default policies: HETATM records are
//parsed like ATOM records, a zero-atom parse is a warning rather than
//an error, unknown elements are left unenriched, enrichment uses
//DefaultTable, and diagnostics go to a no-op logger.
func DefaultOptions() *Options {
	r := new(Options)
	r.parseHetatm = true
	r.failOnEmpty = false
	r.strictElements = false
	r.table = DefaultTable()
	r.logger = zap.NewNop()
	return r
}

//ParseHetatm returns whether HETATM records are parsed like ATOM
//records, and sets the policy first if given a value. When false,
//HETATM lines are skipped with a per-line warning.
func (O *Options) ParseHetatm(b ...bool) bool {
	if len(b) > 0 {
		O.parseHetatm = b[0]
	}
	return O.parseHetatm
}

//FailOnEmpty returns whether a parse yielding zero atoms is reported
//as an error, and sets the policy first if given a value. When false,
//a zero-atom parse succeeds with an accumulated warning.
func (O *Options) FailOnEmpty(b ...bool) bool {
	if len(b) > 0 {
		O.failOnEmpty = b[0]
	}
	return O.failOnEmpty
}

//StrictElements returns whether an element resolved by inference but
//missing from the spec table aborts the parse, and sets the policy
//first if given a value. When false, such atoms are kept with zero
//radius and mass.
func (O *Options) StrictElements(b ...bool) bool {
	if len(b) > 0 {
		O.strictElements = b[0]
	}
	return O.strictElements
}

//Table returns the spec table used for enrichment, and replaces it
//first if given one. The table must not be mutated while a parse
//using it is running.
func (O *Options) Table(t ...*SpecTable) *SpecTable {
	if len(t) > 0 && t[0] != nil {
		O.table = t[0]
	}
	return O.table
}

//Logger returns the logger that receives per-line diagnostics, and
//replaces it first if given one.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}
