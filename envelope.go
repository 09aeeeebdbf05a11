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

import "github.com/ctessum/geom"

// Envelope is an axis-aligned bounding box. The zero value created by
// NewEnvelope is null (contains no points); a null envelope is the
// envelope of an empty geometry.
//
// Envelope relations are a necessary condition for the corresponding
// exact predicates: they are used to prune topology computations,
// never to confirm them.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEnvelope returns a null envelope.
func NewEnvelope() *Envelope {
	return &Envelope{MinX: 1, MinY: 1, MaxX: -1, MaxY: -1}
}

// EnvelopeOf returns the envelope of a set of coordinates.
func EnvelopeOf(cs ...Coordinate) *Envelope {
	e := NewEnvelope()
	for _, c := range cs {
		e.ExpandToIncludeCoord(c)
	}
	return e
}

// IsNull reports whether e contains no points.
func (e *Envelope) IsNull() bool {
	return e.MaxX < e.MinX
}

// Width returns the size of the x extent, or 0 for a null envelope.
func (e *Envelope) Width() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns the size of the y extent, or 0 for a null envelope.
func (e *Envelope) Height() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Area returns the area of e.
func (e *Envelope) Area() float64 {
	return e.Width() * e.Height()
}

// ExpandToIncludeCoord grows e as necessary to include c.
func (e *Envelope) ExpandToIncludeCoord(c Coordinate) {
	if e.IsNull() {
		e.MinX, e.MaxX = c.X, c.X
		e.MinY, e.MaxY = c.Y, c.Y
		return
	}
	if c.X < e.MinX {
		e.MinX = c.X
	}
	if c.X > e.MaxX {
		e.MaxX = c.X
	}
	if c.Y < e.MinY {
		e.MinY = c.Y
	}
	if c.Y > e.MaxY {
		e.MaxY = c.Y
	}
}

// ExpandToInclude grows e as necessary to include e2.
func (e *Envelope) ExpandToInclude(e2 *Envelope) {
	if e2.IsNull() {
		return
	}
	e.ExpandToIncludeCoord(Coord(e2.MinX, e2.MinY))
	e.ExpandToIncludeCoord(Coord(e2.MaxX, e2.MaxY))
}

// Intersects reports whether e and e2 have any point in common.
func (e *Envelope) Intersects(e2 *Envelope) bool {
	if e.IsNull() || e2.IsNull() {
		return false
	}
	return e2.MinX <= e.MaxX && e2.MaxX >= e.MinX &&
		e2.MinY <= e.MaxY && e2.MaxY >= e.MinY
}

// IntersectsCoord reports whether e includes the location of c.
func (e *Envelope) IntersectsCoord(c Coordinate) bool {
	if e.IsNull() {
		return false
	}
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// Contains reports whether e2 lies wholly inside e. Following OGC
// usage this is equivalent to Covers: boundary points count as inside.
func (e *Envelope) Contains(e2 *Envelope) bool {
	return e.Covers(e2)
}

// Covers reports whether every point of e2 is a point of e.
func (e *Envelope) Covers(e2 *Envelope) bool {
	if e.IsNull() || e2.IsNull() {
		return false
	}
	return e2.MinX >= e.MinX && e2.MaxX <= e.MaxX &&
		e2.MinY >= e.MinY && e2.MaxY <= e.MaxY
}

// Clone returns a copy of e.
func (e *Envelope) Clone() *Envelope {
	o := *e
	return &o
}

// bounds converts e to an R-tree query rectangle.
func (e *Envelope) bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: e.MinX, Y: e.MinY},
		Max: geom.Point{X: e.MaxX, Y: e.MaxY},
	}
}
