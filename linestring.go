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

import (
	"gonum.org/v1/gonum/floats"
)

// LineString is an ordered sequence of two or more vertices joined by
// straight segments, or an empty sequence. Consecutive vertices may
// be equal, and the line may self-intersect. A sequence with exactly
// one vertex is invalid and fails construction.
type LineString struct {
	geomBase
	coords []Coordinate
}

// Type returns TypeLineString.
func (l *LineString) Type() GeomType { return TypeLineString }

// Dimension returns 1.
func (l *LineString) Dimension() Dimension { return DimLine }

// BoundaryDimension returns DimFalse for a closed line and DimPoint
// otherwise, per the OGC mod-2 rule.
func (l *LineString) BoundaryDimension() Dimension {
	if l.IsClosed() {
		return DimFalse
	}
	return DimPoint
}

// IsEmpty reports whether l has no vertices.
func (l *LineString) IsEmpty() bool { return len(l.coords) < 1 }

// NumPoints returns the number of vertices.
func (l *LineString) NumPoints() int { return len(l.coords) }

// NumGeoms returns 1.
func (l *LineString) NumGeoms() int { return 1 }

// GeomN returns l.
func (l *LineString) GeomN(int) Geom { return l }

// Coord returns a copy of the first vertex, or nil if l is empty.
func (l *LineString) Coord() *Coordinate {
	if l.IsEmpty() {
		return nil
	}
	c := l.coords[0]
	return &c
}

// Coords returns a copy of the vertex sequence.
func (l *LineString) Coords() []Coordinate {
	return cloneCoords(l.coords)
}

// SetCoords replaces the vertex sequence and discards cached state.
// Like construction, a sequence of exactly one vertex is rejected.
func (l *LineString) SetCoords(coords []Coordinate) error {
	if len(coords) == 1 {
		return ErrLineStringPoints
	}
	l.coords = cloneCoords(coords)
	GeometryChanged(l)
	return nil
}

// IsClosed reports whether the first and last vertices are equal.
func (l *LineString) IsClosed() bool {
	if l.IsEmpty() {
		return false
	}
	return l.coords[0].Equals(l.coords[len(l.coords)-1])
}

// Clone returns a deep copy of l.
func (l *LineString) Clone() Geom {
	return &LineString{
		geomBase: geomBase{factory: l.factory},
		coords:   cloneCoords(l.coords),
	}
}

// Reverse returns a new LineString with the vertex order reversed.
func (l *LineString) Reverse() *LineString {
	coords := cloneCoords(l.coords)
	reverseCoords(coords)
	return &LineString{
		geomBase: geomBase{factory: l.factory},
		coords:   coords,
	}
}

// Boundary returns the two endpoints as a MultiPoint; the boundary of
// a closed line is empty under the mod-2 rule.
func (l *LineString) Boundary() Geom {
	if l.IsClosed() || l.IsEmpty() {
		mp, _ := l.factory.CreateMultiPoint()
		return mp
	}
	first := l.factory.CreatePoint(l.coords[0])
	last := l.factory.CreatePoint(l.coords[len(l.coords)-1])
	mp, _ := l.factory.CreateMultiPoint(first, last)
	return mp
}

// Area returns 0.
func (l *LineString) Area() float64 { return 0 }

// Length returns the sum of the segment lengths.
func (l *LineString) Length() float64 {
	return coordsLength(l.coords)
}

// Envelope returns the (cached) bounding box of l.
func (l *LineString) Envelope() *Envelope {
	if l.env == nil {
		l.env = l.computeEnvelope()
	}
	return l.env
}

func (l *LineString) computeEnvelope() *Envelope {
	if l.IsEmpty() {
		return NewEnvelope()
	}
	xs := make([]float64, len(l.coords))
	ys := make([]float64, len(l.coords))
	for i, c := range l.coords {
		xs[i] = c.X
		ys[i] = c.Y
	}
	return &Envelope{
		MinX: floats.Min(xs),
		MinY: floats.Min(ys),
		MaxX: floats.Max(xs),
		MaxY: floats.Max(ys),
	}
}

func (l *LineString) compareToSameClass(other Geom) int {
	var o []Coordinate
	switch g := other.(type) {
	case *LinearRing:
		o = g.coords
	case *LineString:
		o = g.coords
	}
	return compareCoords(l.coords, o)
}
