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

// EachComponent visits g and every component geometry below it:
// collection parts recursively, and the rings of polygons. The
// visited geometries must not be mutated through f; use
// MutateCoordinates for read-write traversal.
func EachComponent(g Geom, f func(Geom)) {
	f(g)
	switch c := g.(type) {
	case *Polygon:
		f(c.exterior)
		for _, hole := range c.interiors {
			f(hole)
		}
	case *GeometryCollection:
		for _, part := range c.geoms {
			EachComponent(part, f)
		}
	case *MultiPoint:
		for _, part := range c.geoms {
			EachComponent(part, f)
		}
	case *MultiLineString:
		for _, part := range c.geoms {
			EachComponent(part, f)
		}
	case *MultiPolygon:
		for _, part := range c.geoms {
			EachComponent(part, f)
		}
	}
}

// EachCoordinate visits every vertex of g in storage order.
func EachCoordinate(g Geom, f func(Coordinate)) {
	EachComponent(g, func(c Geom) {
		switch t := c.(type) {
		case *Point:
			if !t.empty {
				f(t.coord)
			}
		case *LinearRing:
			for _, coord := range t.coords {
				f(coord)
			}
		case *LineString:
			for _, coord := range t.coords {
				f(coord)
			}
		}
	})
}

// MutateCoordinates passes a mutable reference to every stored vertex
// of g to f, then invalidates cached envelopes throughout g.
func MutateCoordinates(g Geom, f func(*Coordinate)) {
	EachComponent(g, func(c Geom) {
		switch t := c.(type) {
		case *Point:
			if !t.empty {
				f(&t.coord)
			}
		case *LinearRing:
			for i := range t.coords {
				f(&t.coords[i])
			}
		case *LineString:
			for i := range t.coords {
				f(&t.coords[i])
			}
		}
	})
	GeometryChanged(g)
}

// ComponentCoordinates returns one representative vertex per
// component of g, including one per ring for polygonal geometries.
func ComponentCoordinates(g Geom) []Coordinate {
	var pts []Coordinate
	EachComponent(g, func(c Geom) {
		switch t := c.(type) {
		case *Point:
			if !t.empty {
				pts = append(pts, t.coord)
			}
		case *Polygon, *GeometryCollection, *MultiPoint, *MultiLineString, *MultiPolygon:
			// Composite; their parts are visited separately.
		default:
			if coord := t.Coord(); coord != nil {
				pts = append(pts, *coord)
			}
		}
	})
	return pts
}

// AllCoordinates returns every vertex of g in storage order.
func AllCoordinates(g Geom) []Coordinate {
	var pts []Coordinate
	EachCoordinate(g, func(c Coordinate) {
		pts = append(pts, c)
	})
	return pts
}

// boundaryPointsOf computes the mod-2 boundary of a lineal geometry:
// the segment endpoints occurring an odd number of times.
func boundaryPointsOf(g Geom) []Coordinate {
	counts := make(map[Coordinate]int)
	var order []Coordinate
	EachComponent(g, func(c Geom) {
		l, ok := c.(*LineString)
		if !ok || l.IsEmpty() || l.IsClosed() {
			return
		}
		for _, end := range []Coordinate{l.coords[0], l.coords[len(l.coords)-1]} {
			key := Coord(end.X, end.Y)
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
	})
	var pts []Coordinate
	for _, c := range order {
		if counts[c]%2 == 1 {
			pts = append(pts, c)
		}
	}
	return pts
}
