/*
Copyright © 2018 the Planar authors.
This file is part of Planar.

Planar is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Planar is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Planar.  If not, see <http://www.gnu.org/licenses/>.
*/

package planar

// geomBase carries the state every variant shares: the creating
// factory and the lazily computed envelope cache.
type geomBase struct {
	factory *GeometryFactory
	env     *Envelope
}

// Factory returns the factory that created the geometry.
func (b *geomBase) Factory() *GeometryFactory { return b.factory }

func (b *geomBase) envelopeChanged() { b.env = nil }

// Point is a single location on the plane. A point is empty only when
// constructed without a coordinate.
type Point struct {
	geomBase
	coord Coordinate
	empty bool
}

// Type returns TypePoint.
func (p *Point) Type() GeomType { return TypePoint }

// Dimension returns 0.
func (p *Point) Dimension() Dimension { return DimPoint }

// BoundaryDimension returns DimFalse: a point has an empty boundary.
func (p *Point) BoundaryDimension() Dimension { return DimFalse }

// IsEmpty reports whether p was constructed without a coordinate.
func (p *Point) IsEmpty() bool { return p.empty }

// NumPoints returns 1, or 0 for an empty point.
func (p *Point) NumPoints() int {
	if p.empty {
		return 0
	}
	return 1
}

// NumGeoms returns 1.
func (p *Point) NumGeoms() int { return 1 }

// GeomN returns p.
func (p *Point) GeomN(int) Geom { return p }

// Coord returns a copy of the point location, or nil if p is empty.
func (p *Point) Coord() *Coordinate {
	if p.empty {
		return nil
	}
	c := p.coord
	return &c
}

// X returns the x ordinate. It panics on an empty point.
func (p *Point) X() float64 {
	if p.empty {
		panic("planar: X of empty Point")
	}
	return p.coord.X
}

// Y returns the y ordinate. It panics on an empty point.
func (p *Point) Y() float64 {
	if p.empty {
		panic("planar: Y of empty Point")
	}
	return p.coord.Y
}

// Clone returns a deep copy of p.
func (p *Point) Clone() Geom {
	o := *p
	o.env = nil
	return &o
}

// Boundary returns an empty GeometryCollection: points have no
// boundary.
func (p *Point) Boundary() Geom {
	return p.factory.CreateGeometryCollection()
}

// Area returns 0.
func (p *Point) Area() float64 { return 0 }

// Length returns 0.
func (p *Point) Length() float64 { return 0 }

// Envelope returns the (cached) bounding box of p.
func (p *Point) Envelope() *Envelope {
	if p.env == nil {
		p.env = p.computeEnvelope()
	}
	return p.env
}

func (p *Point) computeEnvelope() *Envelope {
	if p.empty {
		return NewEnvelope()
	}
	return EnvelopeOf(p.coord)
}

func (p *Point) compareToSameClass(other Geom) int {
	return p.coord.Compare(other.(*Point).coord)
}
