/*
 * doc.go, part of biomesh.
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

/*
Package biomesh reads molecular structures from PDB files and answers
basic geometric questions about them.

The parser decodes the fixed-column ATOM and HETATM records, infers
chemical elements from atom names when the element columns are blank,
and enriches atoms with van der Waals radii and masses from a
configurable table of atomic data. Atoms are grouped into chains, and
each chain, as well as the whole structure, can report its axis-aligned
bounding box (see the geo subpackage).

The entry points are Parser, for full control over policies and
diagnostics, and the ReadPDBFile convenience function:

	mol, err := biomesh.ReadPDBFile("protein.pdb", nil)

Malformed records do not abort a parse: they are skipped, recorded
against their line numbers, and available from Parser.Errors
afterwards.
*/
package biomesh
