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

//Package geo provides the axis-aligned bounding-box geometry used by
//biomesh. Points are gonum spatial/r3 vectors with coordinates in
//Angstroms. The package is deliberately small: bounding boxes, their
//derived quantities (center, volume, bounding-sphere radius) and
//octant subdivision are the full extent of the geometry this library
//does.
package geo
