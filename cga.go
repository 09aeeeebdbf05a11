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

// orientationIndex returns the turn direction at q relative to the
// directed segment p1→p2: 1 for counter-clockwise, -1 for clockwise,
// 0 for collinear.
func orientationIndex(p1, p2, q Coordinate) int {
	// The determinant is evaluated with translated operands, which
	// keeps the magnitudes small for nearby points.
	det := (p2.X-p1.X)*(q.Y-p1.Y) - (p2.Y-p1.Y)*(q.X-p1.X)
	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	}
	return 0
}

// signedArea returns the signed area of a ring, positive for
// counter-clockwise orientation. The ring is evaluated relative to
// its first vertex to keep the summed magnitudes small.
func signedArea(ring []Coordinate) float64 {
	if len(ring) < 3 {
		return 0
	}
	x0, y0 := ring[0].X, ring[0].Y
	sum := 0.0
	for i := 0; i < len(ring)-1; i++ {
		ax, ay := ring[i].X-x0, ring[i].Y-y0
		bx, by := ring[i+1].X-x0, ring[i+1].Y-y0
		sum += ax*by - bx*ay
	}
	return sum / 2
}

// isCCW reports whether the ring is oriented counter-clockwise.
func isCCW(ring []Coordinate) bool {
	return signedArea(ring) > 0
}

// coordsLength returns the length of the path through cs.
func coordsLength(cs []Coordinate) float64 {
	length := 0.0
	for i := 1; i < len(cs); i++ {
		length += cs[i-1].Distance(cs[i])
	}
	return length
}

// pointOnSegment reports whether q lies on the closed segment p1-p2.
func pointOnSegment(q, p1, p2 Coordinate) bool {
	if q.X < math.Min(p1.X, p2.X) || q.X > math.Max(p1.X, p2.X) ||
		q.Y < math.Min(p1.Y, p2.Y) || q.Y > math.Max(p1.Y, p2.Y) {
		return false
	}
	return orientationIndex(p1, p2, q) == 0
}

// distancePointToSegment returns the distance from q to the closed
// segment p1-p2.
func distancePointToSegment(q, p1, p2 Coordinate) float64 {
	if p1.Equals(p2) {
		return q.Distance(p1)
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	r := ((q.X-p1.X)*dx + (q.Y-p1.Y)*dy) / (dx*dx + dy*dy)
	if r <= 0 {
		return q.Distance(p1)
	}
	if r >= 1 {
		return q.Distance(p2)
	}
	return q.Distance(Coord(p1.X+r*dx, p1.Y+r*dy))
}

// projectionFactor returns the parameter along p1→p2 of the
// projection of q onto the segment's supporting line.
func projectionFactor(q, p1, p2 Coordinate) float64 {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := dx*dx + dy*dy
	if length == 0 {
		return 0
	}
	return ((q.X-p1.X)*dx + (q.Y-p1.Y)*dy) / length
}

// rayCrossingCounter accumulates ring crossings of the horizontal ray
// extending rightward from a query point. After all relevant segments
// are counted, an odd crossing count means the point is inside.
type rayCrossingCounter struct {
	p          Coordinate
	crossings  int
	onBoundary bool
}

// countSegment processes one ring segment.
func (rc *rayCrossingCounter) countSegment(p1, p2 Coordinate) {
	if rc.onBoundary {
		return
	}
	p := rc.p

	// Entirely left of the ray origin: cannot cross.
	if p1.X < p.X && p2.X < p.X {
		return
	}

	// Exactly at a vertex.
	if p.Equals(p2) || p.Equals(p1) {
		rc.onBoundary = true
		return
	}

	// Horizontal segment at the ray height.
	if p1.Y == p.Y && p2.Y == p.Y {
		minX, maxX := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
		if p.X >= minX && p.X <= maxX {
			rc.onBoundary = true
		}
		return
	}

	// Count a crossing when the segment straddles the ray, using the
	// "lower endpoint excluded" rule so shared ring vertices are not
	// double counted.
	if (p1.Y > p.Y && p2.Y <= p.Y) || (p2.Y > p.Y && p1.Y <= p.Y) {
		x1, y1 := p1.X-p.X, p1.Y-p.Y
		x2, y2 := p2.X-p.X, p2.Y-p.Y
		sign := x1*y2 - x2*y1
		switch {
		case sign == 0:
			rc.onBoundary = true
			return
		case y2 < y1:
			sign = -sign
		}
		if sign > 0 {
			rc.crossings++
		}
	}
}

func (rc *rayCrossingCounter) location() Location {
	if rc.onBoundary {
		return Boundary
	}
	if rc.crossings%2 == 1 {
		return Interior
	}
	return Exterior
}
