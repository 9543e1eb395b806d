/*
 * box.go, part of biomesh.
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

package geo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Box is an axis-aligned bounding box over a set of points in 3D space.
//The zero value of Box is the empty box, which is distinct from a
//degenerate single-point box: an empty box contains nothing and
//intersects nothing, while a single-point box is a valid, zero-volume
//box. A Box only becomes non-empty through NewBox or AddPoint.
type Box struct {
	min, max r3.Vec
	set      bool //false means empty, regardless of min/max
}

//NewBox returns a box with the given bounds. Swapped bounds are
//normalized per axis, so the returned box is always valid.
func NewBox(min, max r3.Vec) Box {
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	if min.Z > max.Z {
		min.Z, max.Z = max.Z, min.Z
	}
	return Box{min: min, max: max, set: true}
}

//newBoxRaw skips the swap normalization. Subdivide builds octants from
//already-ordered midpoints, and Expand must be able to produce an
//invalid box without it being silently repaired.
func newBoxRaw(min, max r3.Vec) Box {
	return Box{min: min, max: max, set: true}
}

//AddPoint grows the box to cover p. On an empty box it produces the
//degenerate single-point box at p.
func (B *Box) AddPoint(p r3.Vec) {
	if !B.set {
		B.min = p
		B.max = p
		B.set = true
		return
	}
	B.min.X = math.Min(B.min.X, p.X)
	B.min.Y = math.Min(B.min.Y, p.Y)
	B.min.Z = math.Min(B.min.Z, p.Z)
	B.max.X = math.Max(B.max.X, p.X)
	B.max.Y = math.Max(B.max.Y, p.Y)
	B.max.Z = math.Max(B.max.Z, p.Z)
}

//Reset returns the box to the empty state.
func (B *Box) Reset() {
	*B = Box{}
}

//IsEmpty reports whether no point has been added to the box.
func (B Box) IsEmpty() bool {
	return !B.set
}

//IsValid reports whether min <= max holds on every axis. The empty box
//is valid. A box can only become invalid by shrinking it with a
//negative Expand margin.
func (B Box) IsValid() bool {
	if !B.set {
		return true
	}
	return B.min.X <= B.max.X && B.min.Y <= B.max.Y && B.min.Z <= B.max.Z
}

//Min returns the minimum corner of the box. It is NaN on every axis
//for an empty box.
func (B Box) Min() r3.Vec {
	if !B.set {
		return nanVec()
	}
	return B.min
}

//Max returns the maximum corner of the box. It is NaN on every axis
//for an empty box.
func (B Box) Max() r3.Vec {
	if !B.set {
		return nanVec()
	}
	return B.max
}

//Width returns the X dimension of the box, 0 if the box is empty.
func (B Box) Width() float64 {
	if !B.set {
		return 0
	}
	return B.max.X - B.min.X
}

//Height returns the Y dimension of the box, 0 if the box is empty.
func (B Box) Height() float64 {
	if !B.set {
		return 0
	}
	return B.max.Y - B.min.Y
}

//Depth returns the Z dimension of the box, 0 if the box is empty.
func (B Box) Depth() float64 {
	if !B.set {
		return 0
	}
	return B.max.Z - B.min.Z
}

//Volume returns the volume of the box, 0 if the box is empty.
func (B Box) Volume() float64 {
	if !B.set {
		return 0
	}
	return B.Width() * B.Height() * B.Depth()
}

//Center returns the midpoint of the box. For an empty box every axis
//is NaN, signalling "undefined" rather than a misleading origin.
func (B Box) Center() r3.Vec {
	if !B.set {
		return nanVec()
	}
	return r3.Vec{
		X: (B.min.X + B.max.X) * 0.5,
		Y: (B.min.Y + B.max.Y) * 0.5,
		Z: (B.min.Z + B.max.Z) * 0.5,
	}
}

//BoundingSphereRadius returns the radius of the smallest sphere
//centered at the box center that covers the whole box, 0 if empty.
func (B Box) BoundingSphereRadius() float64 {
	if !B.set {
		return 0
	}
	c := B.Center()
	d := r3.Vec{
		X: math.Max(math.Abs(B.max.X-c.X), math.Abs(B.min.X-c.X)),
		Y: math.Max(math.Abs(B.max.Y-c.Y), math.Abs(B.min.Y-c.Y)),
		Z: math.Max(math.Abs(B.max.Z-c.Z), math.Abs(B.min.Z-c.Z)),
	}
	return r3.Norm(d)
}

//Contains reports whether p lies within the box. All six faces are
//inclusive, so boundary points count as contained. An empty box
//contains nothing.
func (B Box) Contains(p r3.Vec) bool {
	if !B.set {
		return false
	}
	return p.X >= B.min.X && p.X <= B.max.X &&
		p.Y >= B.min.Y && p.Y <= B.max.Y &&
		p.Z >= B.min.Z && p.Z <= B.max.Z
}

//ContainsBox reports whether other lies fully within B, faces
//included. It is false whenever either box is empty.
func (B Box) ContainsBox(other Box) bool {
	if !B.set || !other.set {
		return false
	}
	return other.min.X >= B.min.X && other.max.X <= B.max.X &&
		other.min.Y >= B.min.Y && other.max.Y <= B.max.Y &&
		other.min.Z >= B.min.Z && other.max.Z <= B.max.Z
}

//Intersects reports whether B and other share any volume. Boxes that
//merely touch at a face, edge or corner count as intersecting. It is
//false whenever either box is empty.
func (B Box) Intersects(other Box) bool {
	if !B.set || !other.set {
		return false
	}
	return !(other.max.X < B.min.X || other.min.X > B.max.X ||
		other.max.Y < B.min.Y || other.min.Y > B.max.Y ||
		other.max.Z < B.min.Z || other.min.Z > B.max.Z)
}

//Expand grows every face of the box symmetrically outwards by margin.
//A negative margin shrinks the box and may shrink it past validity
//(min > max); that state is allowed and is reported by IsValid rather
//than repaired or panicked on. Expand has no effect on an empty box.
func (B *Box) Expand(margin float64) {
	if !B.set {
		return
	}
	B.min.X -= margin
	B.min.Y -= margin
	B.min.Z -= margin
	B.max.X += margin
	B.max.Y += margin
	B.max.Z += margin
}

//Subdivide splits the box at its axis-wise midpoints into 8 octants,
//ordered [---] [--+] [-+-] [-++] [+--] [+-+] [++-] [+++] where - and +
//are the lower and upper halves of X, Y and Z respectively. The octant
//volumes sum to the parent volume for any non-empty box. Subdividing
//an empty box yields 8 empty boxes.
func (B Box) Subdivide() [8]Box {
	var oct [8]Box
	if !B.set {
		return oct
	}
	mid := B.Center()
	oct[0] = newBoxRaw(r3.Vec{X: B.min.X, Y: B.min.Y, Z: B.min.Z}, r3.Vec{X: mid.X, Y: mid.Y, Z: mid.Z})
	oct[1] = newBoxRaw(r3.Vec{X: B.min.X, Y: B.min.Y, Z: mid.Z}, r3.Vec{X: mid.X, Y: mid.Y, Z: B.max.Z})
	oct[2] = newBoxRaw(r3.Vec{X: B.min.X, Y: mid.Y, Z: B.min.Z}, r3.Vec{X: mid.X, Y: B.max.Y, Z: mid.Z})
	oct[3] = newBoxRaw(r3.Vec{X: B.min.X, Y: mid.Y, Z: mid.Z}, r3.Vec{X: mid.X, Y: B.max.Y, Z: B.max.Z})
	oct[4] = newBoxRaw(r3.Vec{X: mid.X, Y: B.min.Y, Z: B.min.Z}, r3.Vec{X: B.max.X, Y: mid.Y, Z: mid.Z})
	oct[5] = newBoxRaw(r3.Vec{X: mid.X, Y: B.min.Y, Z: mid.Z}, r3.Vec{X: B.max.X, Y: mid.Y, Z: B.max.Z})
	oct[6] = newBoxRaw(r3.Vec{X: mid.X, Y: mid.Y, Z: B.min.Z}, r3.Vec{X: B.max.X, Y: B.max.Y, Z: mid.Z})
	oct[7] = newBoxRaw(r3.Vec{X: mid.X, Y: mid.Y, Z: mid.Z}, r3.Vec{X: B.max.X, Y: B.max.Y, Z: B.max.Z})
	return oct
}

func nanVec() r3.Vec {
	n := math.NaN()
	return r3.Vec{X: n, Y: n, Z: n}
}
