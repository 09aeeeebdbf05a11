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
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// locatePointInRing classifies p against a single closed ring using
// horizontal-ray crossing counting.
func locatePointInRing(p Coordinate, ring []Coordinate) Location {
	rc := rayCrossingCounter{p: p}
	for i := 1; i < len(ring); i++ {
		rc.countSegment(ring[i-1], ring[i])
		if rc.onBoundary {
			return Boundary
		}
	}
	return rc.location()
}

// locatePointInPolygon classifies p against a polygon, honoring its
// holes.
func locatePointInPolygon(p Coordinate, poly *Polygon) Location {
	if poly.IsEmpty() {
		return Exterior
	}
	loc := locatePointInRing(p, poly.Exterior().Coords())
	if loc != Interior {
		return loc
	}
	for i := 0; i < poly.NumInteriors(); i++ {
		holeLoc := locatePointInRing(p, poly.Interior(i).Coords())
		switch holeLoc {
		case Interior:
			return Exterior
		case Boundary:
			return Boundary
		}
	}
	return Interior
}

// LocatePointInArea classifies p against any polygonal geometry with
// a linear scan of its rings. Non-polygonal components are ignored.
func LocatePointInArea(p Coordinate, g Geom) Location {
	if g.IsEmpty() || !g.Envelope().IntersectsCoord(p) {
		return Exterior
	}
	loc := Exterior
	EachComponent(g, func(c Geom) {
		if poly, ok := c.(*Polygon); ok && loc == Exterior {
			loc = locatePointInPolygon(p, poly)
		}
	})
	return loc
}

// indexedSegment is one boundary segment stored in an R-tree.
type indexedSegment struct {
	geom.LineString
	p1, p2 Coordinate
}

func newIndexedSegment(p1, p2 Coordinate) *indexedSegment {
	return &indexedSegment{
		LineString: geom.LineString{{X: p1.X, Y: p1.Y}, {X: p2.X, Y: p2.Y}},
		p1:         p1,
		p2:         p2,
	}
}

// pointAt interpolates the segment at parameter t in [0,1], returning
// the exact endpoint at the parameter extremes.
func (s *indexedSegment) pointAt(t float64) Coordinate {
	switch t {
	case 0:
		return s.p1
	case 1:
		return s.p2
	}
	return Coord(s.p1.X+t*(s.p2.X-s.p1.X), s.p1.Y+t*(s.p2.Y-s.p1.Y))
}

func (s *indexedSegment) hasEndpoint(p Coordinate) bool {
	return p.Equals(s.p1) || p.Equals(s.p2)
}

// IndexedPointInAreaLocator classifies points against a polygonal
// geometry using an R-tree over its ring segments, so repeated
// queries against the same geometry avoid rescanning every ring. The
// rings of a valid polygonal geometry partition the plane by the
// even-odd rule, so shells and holes can share one index.
type IndexedPointInAreaLocator struct {
	index *rtree.Rtree
	env   *Envelope
}

// NewIndexedPointInAreaLocator builds a locator over the polygonal
// components of g.
func NewIndexedPointInAreaLocator(g Geom) *IndexedPointInAreaLocator {
	l := &IndexedPointInAreaLocator{
		index: rtree.NewTree(25, 50),
		env:   g.Envelope().Clone(),
	}
	EachComponent(g, func(c Geom) {
		ring, ok := c.(*LinearRing)
		if !ok {
			return
		}
		cs := ring.Coords()
		for i := 1; i < len(cs); i++ {
			if cs[i-1].Equals(cs[i]) {
				continue
			}
			l.index.Insert(newIndexedSegment(cs[i-1], cs[i]))
		}
	})
	return l
}

// Locate classifies p against the indexed geometry.
func (l *IndexedPointInAreaLocator) Locate(p Coordinate) Location {
	if !l.env.IntersectsCoord(p) {
		return Exterior
	}
	// Only segments whose envelope meets the rightward horizontal
	// ray can affect the crossing count.
	ray := &Envelope{MinX: p.X, MinY: p.Y, MaxX: l.env.MaxX, MaxY: p.Y}
	rc := rayCrossingCounter{p: p}
	for _, hit := range l.index.SearchIntersect(ray.bounds()) {
		seg := hit.(*indexedSegment)
		rc.countSegment(seg.p1, seg.p2)
		if rc.onBoundary {
			return Boundary
		}
	}
	return rc.location()
}

// locateOnLine classifies p against the point set of a single
// line string, using the component's own endpoints as its boundary.
func locateOnLine(p Coordinate, line *LineString) Location {
	if line.IsEmpty() || !line.Envelope().IntersectsCoord(p) {
		return Exterior
	}
	cs := line.Coords()
	if !line.IsClosed() && (p.Equals(cs[0]) || p.Equals(cs[len(cs)-1])) {
		return Boundary
	}
	for i := 1; i < len(cs); i++ {
		if pointOnSegment(p, cs[i-1], cs[i]) {
			return Interior
		}
	}
	return Exterior
}

// locateOnRing classifies p against a standalone closed ring. A ring
// is a closed curve with an empty boundary, so every point of it is
// interior.
func locateOnRing(p Coordinate, r *LinearRing) Location {
	if r.IsEmpty() || !r.Envelope().IntersectsCoord(p) {
		return Exterior
	}
	cs := r.Coords()
	for i := 1; i < len(cs); i++ {
		if pointOnSegment(p, cs[i-1], cs[i]) {
			return Interior
		}
	}
	return Exterior
}

// LocatePoint classifies p against the point set of an arbitrary
// geometry. Boundaries of linear components combine by the mod-2
// rule: an endpoint shared by an even number of component curves is
// interior to the merged linework.
func LocatePoint(p Coordinate, g Geom) Location {
	if g.IsEmpty() {
		return Exterior
	}
	in := false
	boundaryCount := 0
	polyRings := make(map[*LinearRing]bool)
	EachComponent(g, func(c Geom) {
		switch c := c.(type) {
		case *Point:
			if !c.IsEmpty() && p.Equals(*c.Coord()) {
				in = true
			}
		case *LinearRing:
			// A polygon's rings are classified with their polygon,
			// which is visited before them. A standalone ring is a
			// curve in its own right.
			if polyRings[c] {
				return
			}
			if locateOnRing(p, c) == Interior {
				in = true
			}
		case *LineString:
			switch locateOnLine(p, c) {
			case Interior:
				in = true
			case Boundary:
				boundaryCount++
			}
		case *Polygon:
			polyRings[c.exterior] = true
			for _, hole := range c.interiors {
				polyRings[hole] = true
			}
			switch locatePointInPolygon(p, c) {
			case Interior:
				in = true
			case Boundary:
				boundaryCount++
			}
		}
	})
	if boundaryCount%2 == 1 {
		return Boundary
	}
	if boundaryCount > 0 || in {
		return Interior
	}
	return Exterior
}
