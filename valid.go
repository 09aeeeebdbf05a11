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

// taggedSegment is one segment of a curve, remembering which curve
// it came from and where.
type taggedSegment struct {
	p1, p2 Coordinate
	curve  int
	pos    int
}

// curveSegments flattens segment strings into tagged segments.
func curveSegments(strings []*segmentString) []taggedSegment {
	var segs []taggedSegment
	for ci, ss := range strings {
		cs := ss.coords
		pos := 0
		for i := 1; i < len(cs); i++ {
			if cs[i-1].Equals(cs[i]) {
				continue
			}
			segs = append(segs, taggedSegment{p1: cs[i-1], p2: cs[i], curve: ci, pos: pos})
			pos++
		}
	}
	return segs
}

// allowedSelfNode reports whether curves may meet at p: only at
// curve endpoints, or at the closure point of a closed curve.
func allowedSelfNode(p Coordinate, ss *segmentString) bool {
	cs := ss.coords
	if len(cs) == 0 {
		return false
	}
	if p.Equals(cs[0]) {
		return true
	}
	closed := cs[0].Equals(cs[len(cs)-1])
	return !closed && p.Equals(cs[len(cs)-1])
}

// linealIsSimple checks a set of curves for self-intersection. The
// curves are simple when segments meet only at adjacent vertices
// within a curve and at curve endpoints across curves.
func linealIsSimple(strings []*segmentString) bool {
	segs := curveSegments(strings)
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			si := intersectSegments(a.p1, a.p2, b.p1, b.p2)
			if si.Kind == noIntersection {
				continue
			}
			if si.Kind == collinearIntersection {
				return false
			}
			if si.Proper {
				return false
			}
			if a.curve == b.curve {
				if b.pos-a.pos == 1 && si.Pt.Equals(a.p2) && si.Pt.Equals(b.p1) {
					continue // shared vertex of consecutive segments
				}
				// Non-adjacent segments of one curve may only meet
				// at the closure point of a closed curve.
				cs := strings[a.curve].coords
				closed := cs[0].Equals(cs[len(cs)-1])
				if closed && si.Pt.Equals(cs[0]) &&
					a.pos == 0 && si.Pt.Equals(a.p1) && si.Pt.Equals(b.p2) {
					continue
				}
				return false
			}
			if allowedSelfNode(si.Pt, strings[a.curve]) && allowedSelfNode(si.Pt, strings[b.curve]) {
				continue
			}
			return false
		}
	}
	return true
}

// IsSimple reports whether g has no anomalous self-intersections:
// lineal geometries may only touch themselves at their endpoints,
// and multipoints may not repeat a location. Heterogeneous
// collections are not supported.
func IsSimple(g Geom) (bool, error) {
	switch t := g.(type) {
	case *GeometryCollection:
		return false, ErrGeometryCollection
	case *Point:
		return true, nil
	case *MultiPoint:
		seen := make(map[Coordinate]bool)
		simple := true
		EachCoordinate(t, func(c Coordinate) {
			key := Coord(c.X, c.Y)
			if seen[key] {
				simple = false
			}
			seen[key] = true
		})
		return simple, nil
	case *Polygon, *MultiPolygon:
		// Ring-bounded geometries are simple by definition.
		return true, nil
	case *LinearRing, *LineString, *MultiLineString:
		return linealIsSimple(extractSegmentStrings(g)), nil
	}
	return false, ErrGeometryCollection
}

// IsValid reports whether g satisfies the structural validity rules
// for its type: finite coordinates everywhere, simple rings, holes
// inside their shells, and rings meeting at most in isolated points.
func IsValid(g Geom) bool {
	valid := true
	EachCoordinate(g, func(c Coordinate) {
		if !c.isFinite() {
			valid = false
		}
	})
	if !valid {
		return false
	}
	EachComponent(g, func(c Geom) {
		if !valid {
			return
		}
		if p, ok := c.(*Polygon); ok && !p.IsEmpty() {
			valid = polygonIsValid(p)
		}
	})
	return valid
}

func polygonIsValid(p *Polygon) bool {
	rings := append([]*LinearRing{p.Exterior()}, p.interiors...)
	for _, r := range rings {
		if !r.IsEmpty() && !linealIsSimple(extractSegmentStrings(r)) {
			return false
		}
	}
	// Distinct rings may touch at isolated points but not cross or
	// share a segment.
	for i := 0; i < len(rings); i++ {
		for j := i + 1; j < len(rings); j++ {
			a, b := ringSegs(rings[i]), ringSegs(rings[j])
			for _, sa := range a {
				for _, sb := range b {
					si := intersectSegments(sa.p1, sa.p2, sb.p1, sb.p2)
					if si.Kind == collinearIntersection || si.Proper {
						return false
					}
				}
			}
		}
	}
	shell := p.Exterior().Coords()
	for _, hole := range p.interiors {
		if hole.IsEmpty() {
			continue
		}
		if locatePointInRing(hole.Coords()[0], shell) == Exterior {
			return false
		}
	}
	return true
}

func ringSegs(r *LinearRing) []taggedSegment {
	if r.IsEmpty() {
		return nil
	}
	return curveSegments(extractSegmentStrings(r))
}
