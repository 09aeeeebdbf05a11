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

import "math"

// Polygon is a planar surface bounded by one exterior LinearRing and
// zero or more interior rings (holes). Hole rings must not be nil; if
// the exterior ring is empty no hole may be non-empty.
type Polygon struct {
	geomBase
	exterior  *LinearRing
	interiors []*LinearRing
}

// Type returns TypePolygon.
func (p *Polygon) Type() GeomType { return TypePolygon }

// Dimension returns 2.
func (p *Polygon) Dimension() Dimension { return DimArea }

// BoundaryDimension returns 1.
func (p *Polygon) BoundaryDimension() Dimension { return DimLine }

// IsEmpty reports whether the exterior ring is empty.
func (p *Polygon) IsEmpty() bool { return p.exterior.IsEmpty() }

// Exterior returns the exterior ring.
func (p *Polygon) Exterior() *LinearRing { return p.exterior }

// NumInteriors returns the number of holes.
func (p *Polygon) NumInteriors() int { return len(p.interiors) }

// Interior returns the i'th hole.
func (p *Polygon) Interior(i int) *LinearRing { return p.interiors[i] }

// NumPoints returns the total vertex count over all rings.
func (p *Polygon) NumPoints() int {
	n := p.exterior.NumPoints()
	for _, hole := range p.interiors {
		n += hole.NumPoints()
	}
	return n
}

// NumGeoms returns 1.
func (p *Polygon) NumGeoms() int { return 1 }

// GeomN returns p.
func (p *Polygon) GeomN(int) Geom { return p }

// Coord returns a copy of the first exterior vertex, or nil if p is
// empty.
func (p *Polygon) Coord() *Coordinate { return p.exterior.Coord() }

// Clone returns a deep copy of p.
func (p *Polygon) Clone() Geom {
	holes := make([]*LinearRing, len(p.interiors))
	for i, hole := range p.interiors {
		holes[i] = hole.Clone().(*LinearRing)
	}
	return &Polygon{
		geomBase:  geomBase{factory: p.factory},
		exterior:  p.exterior.Clone().(*LinearRing),
		interiors: holes,
	}
}

// Boundary returns the rings of p as lineal geometry: a LineString
// for a polygon without holes, a MultiLineString otherwise.
func (p *Polygon) Boundary() Geom {
	gf := p.factory
	if p.IsEmpty() {
		ml, _ := gf.CreateMultiLineString()
		return ml
	}
	shell, _ := gf.CreateLineString(p.exterior.Coords())
	if len(p.interiors) == 0 {
		return shell
	}
	lines := []*LineString{shell}
	for _, hole := range p.interiors {
		hl, _ := gf.CreateLineString(hole.Coords())
		lines = append(lines, hl)
	}
	ml, _ := gf.CreateMultiLineString(lines...)
	return ml
}

// Area returns the surface area: the exterior area minus the hole
// areas.
func (p *Polygon) Area() float64 {
	area := math.Abs(signedArea(p.exterior.coords))
	for _, hole := range p.interiors {
		area -= math.Abs(signedArea(hole.coords))
	}
	return area
}

// Length returns the perimeter, summed over all rings.
func (p *Polygon) Length() float64 {
	length := p.exterior.Length()
	for _, hole := range p.interiors {
		length += hole.Length()
	}
	return length
}

// Envelope returns the (cached) bounding box of p.
func (p *Polygon) Envelope() *Envelope {
	if p.env == nil {
		p.env = p.computeEnvelope()
	}
	return p.env
}

func (p *Polygon) computeEnvelope() *Envelope {
	return p.exterior.computeEnvelope()
}

func (p *Polygon) compareToSameClass(other Geom) int {
	return p.exterior.compareToSameClass(other.(*Polygon).exterior)
}

// Normalize puts the polygon in canonical form: each ring starts at
// its lexicographically smallest vertex, the exterior ring is
// clockwise and holes are counter-clockwise.
func (p *Polygon) Normalize() {
	normalizeRing(p.exterior, true)
	for _, hole := range p.interiors {
		normalizeRing(hole, false)
	}
	GeometryChanged(p)
}

func normalizeRing(ring *LinearRing, clockwise bool) {
	if ring.IsEmpty() {
		return
	}
	coords := ring.coords[:len(ring.coords)-1]
	unique := cloneCoords(coords)
	scrollCoords(unique, minCoordIndex(unique))
	unique = append(unique, unique[0])
	if isCCW(unique) == clockwise {
		reverseCoords(unique)
	}
	ring.coords = unique
}

// IsRectangle reports whether g is a Polygon that is an axis-aligned
// rectangle: no holes, exactly 5 vertices, every vertex on the
// envelope corners and consecutive vertices sharing an edge of the
// envelope.
func IsRectangle(g Geom) bool {
	p, ok := g.(*Polygon)
	if !ok || p.IsEmpty() || len(p.interiors) != 0 {
		return false
	}
	coords := p.exterior.coords
	if len(coords) != 5 {
		return false
	}
	env := p.Envelope()
	for i := 0; i < 4; i++ {
		x, y := coords[i].X, coords[i].Y
		if x != env.MinX && x != env.MaxX {
			return false
		}
		if y != env.MinY && y != env.MaxY {
			return false
		}
	}
	for i := 1; i < 5; i++ {
		xChanged := coords[i].X != coords[i-1].X
		yChanged := coords[i].Y != coords[i-1].Y
		if xChanged == yChanged {
			return false
		}
	}
	return true
}
