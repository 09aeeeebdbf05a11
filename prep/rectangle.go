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

package prep

import "github.com/spatialmodel/planar"

// RectangleContains computes the contains predicate for a
// rectangular first operand. A rectangle contains a geometry exactly
// when the geometry lies in its envelope and does not collapse
// entirely onto the envelope's boundary, so no topology is needed.
func RectangleContains(rect, g planar.Geom) bool {
	rc := rectangleContains{env: rect.Envelope()}
	if !rc.env.Contains(g.Envelope()) {
		return false
	}
	return !rc.containedInBoundary(g)
}

type rectangleContains struct {
	env *planar.Envelope
}

func (rc rectangleContains) containedInBoundary(g planar.Geom) bool {
	switch t := g.(type) {
	case *planar.Polygon, *planar.MultiPolygon:
		// A polygon has interior points, which can never all lie on
		// the rectangle's boundary.
		return false
	case *planar.Point:
		if t.IsEmpty() {
			return true
		}
		return rc.coordInBoundary(*t.Coord())
	case *planar.LinearRing:
		return rc.lineInBoundary(t.Coords())
	case *planar.LineString:
		return rc.lineInBoundary(t.Coords())
	default:
		for i := 0; i < g.NumGeoms(); i++ {
			if !rc.containedInBoundary(g.GeomN(i)) {
				return false
			}
		}
		return true
	}
}

// coordInBoundary assumes the coordinate lies in the rectangle's
// envelope, so it is on the boundary iff it hits one of the four
// edge lines.
func (rc rectangleContains) coordInBoundary(c planar.Coordinate) bool {
	return c.X == rc.env.MinX || c.X == rc.env.MaxX ||
		c.Y == rc.env.MinY || c.Y == rc.env.MaxY
}

func (rc rectangleContains) lineInBoundary(cs []planar.Coordinate) bool {
	for i := 1; i < len(cs); i++ {
		if !rc.segmentInBoundary(cs[i-1], cs[i]) {
			return false
		}
	}
	return true
}

func (rc rectangleContains) segmentInBoundary(p0, p1 planar.Coordinate) bool {
	if p0.Equals(p1) {
		return rc.coordInBoundary(p0)
	}
	if p0.X == p1.X {
		return p0.X == rc.env.MinX || p0.X == rc.env.MaxX
	}
	if p0.Y == p1.Y {
		return p0.Y == rc.env.MinY || p0.Y == rc.env.MaxY
	}
	return false
}
