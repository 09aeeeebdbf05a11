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
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// clipPolygon converts the polygonal components of g into a clipping
// polygon, one contour per ring.
func clipPolygon(g Geom) geom.Polygon {
	var clip geom.Polygon
	addRing := func(r *LinearRing) {
		if r.IsEmpty() {
			return
		}
		cs := r.Coords()
		ring := make([]geom.Point, len(cs))
		for i, c := range cs {
			ring[i] = geom.Point{X: c.X, Y: c.Y}
		}
		clip = append(clip, ring)
	}
	EachComponent(g, func(c Geom) {
		if p, ok := c.(*Polygon); ok {
			addRing(p.Exterior())
			for i := 0; i < p.NumInteriors(); i++ {
				addRing(p.Interior(i))
			}
		}
	})
	return clip
}

// clipResult converts a clipping result back into a geometry,
// assigning rings to polygons by containment parity: rings nested
// inside an even number of others are shells, the rest are holes of
// their innermost enclosing shell.
func clipResult(p geom.Polygon, gf *GeometryFactory) (Geom, error) {
	type ring struct {
		coords []Coordinate
		area   float64
		depth  int
	}
	var rings []*ring
	for _, contour := range p {
		cs := make([]Coordinate, len(contour))
		for i, pt := range contour {
			cs[i] = Coord(pt.X, pt.Y)
		}
		if len(cs) > 0 && !cs[0].Equals(cs[len(cs)-1]) {
			cs = append(cs, cs[0])
		}
		a := math.Abs(signedArea(cs))
		if a == 0 {
			continue
		}
		rings = append(rings, &ring{coords: cs, area: a})
	}
	for _, r := range rings {
		pt := ringInteriorPoint(r.coords)
		for _, other := range rings {
			if other == r {
				continue
			}
			if locatePointInRing(pt, other.coords) == Interior {
				r.depth++
			}
		}
	}

	var polys []*Polygon
	for _, r := range rings {
		if r.depth%2 != 0 {
			continue
		}
		shell, err := gf.CreateLinearRing(r.coords)
		if err != nil {
			return nil, err
		}
		var holes []*LinearRing
		for _, h := range rings {
			if h.depth != r.depth+1 {
				continue
			}
			if locatePointInRing(ringInteriorPoint(h.coords), r.coords) != Interior {
				continue
			}
			hole, err := gf.CreateLinearRing(h.coords)
			if err != nil {
				return nil, err
			}
			holes = append(holes, hole)
		}
		poly, err := gf.CreatePolygon(shell, holes...)
		if err != nil {
			return nil, err
		}
		polys = append(polys, poly)
	}

	switch len(polys) {
	case 0:
		return gf.CreatePolygon(nil)
	case 1:
		return polys[0], nil
	}
	return gf.CreateMultiPolygon(polys...)
}

// ringInteriorPoint returns a point strictly inside a simple ring:
// the midpoint of the widest interval where a horizontal line
// through the ring's interior crosses it.
func ringInteriorPoint(ring []Coordinate) Coordinate {
	env := EnvelopeOf(ring...)
	y := (env.MinY + env.MaxY) / 2
	var xs []float64
	for i := 1; i < len(ring); i++ {
		p1, p2 := ring[i-1], ring[i]
		if (p1.Y > y) == (p2.Y > y) {
			continue
		}
		xs = append(xs, p1.X+(y-p1.Y)/(p2.Y-p1.Y)*(p2.X-p1.X))
	}
	if len(xs) < 2 {
		return ring[0]
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	best := Coord((lo+hi)/2, y)
	bestWidth := 0.0
	sort.Float64s(xs)
	for i := 1; i < len(xs); i += 2 {
		if w := xs[i] - xs[i-1]; w > bestWidth {
			bestWidth = w
			best = Coord((xs[i-1]+xs[i])/2, y)
		}
	}
	return best
}

func isPuntal(g Geom) bool { return g.Dimension() == DimPoint }
func isAreal(g Geom) bool  { return g.Dimension() == DimArea }

// uniquePoints returns the distinct coordinates of a puntal geometry
// in first-seen order.
func uniquePoints(g Geom) []Coordinate {
	seen := make(map[Coordinate]bool)
	var out []Coordinate
	EachCoordinate(g, func(c Coordinate) {
		key := Coord(c.X, c.Y)
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	})
	return out
}

// pointsToGeom packs coordinates into a point geometry: an empty
// collection for none, a point for one, a multipoint otherwise.
func pointsToGeom(cs []Coordinate, gf *GeometryFactory) (Geom, error) {
	switch len(cs) {
	case 0:
		return gf.CreateGeometryCollection(), nil
	case 1:
		return gf.CreatePoint(cs[0]), nil
	}
	pts := make([]*Point, len(cs))
	for i, c := range cs {
		pts[i] = gf.CreatePoint(c)
	}
	return gf.CreateMultiPoint(pts...)
}

// Intersection computes the point set shared by a and b. Lineal
// operands are not supported except against points.
func Intersection(a, b Geom) (Geom, error) {
	gf := a.Factory()
	if a.IsEmpty() || b.IsEmpty() {
		return gf.CreateGeometryCollection(), nil
	}
	switch {
	case isPuntal(a):
		return intersectPoints(a, b, gf)
	case isPuntal(b):
		return intersectPoints(b, a, gf)
	case isAreal(a) && isAreal(b):
		return clipResult(clipPolygon(a).Intersection(clipPolygon(b)), gf)
	}
	return nil, ErrOverlayUnsupported
}

func intersectPoints(pts, other Geom, gf *GeometryFactory) (Geom, error) {
	var kept []Coordinate
	for _, c := range uniquePoints(pts) {
		if LocatePoint(c, other) != Exterior {
			kept = append(kept, c)
		}
	}
	return pointsToGeom(kept, gf)
}

// Union computes the point set covered by a or b.
func Union(a, b Geom) (Geom, error) {
	gf := a.Factory()
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if !a.Envelope().Intersects(b.Envelope()) {
		return disjointParts(a, b, gf), nil
	}
	switch {
	case isPuntal(a) && isPuntal(b):
		merged := uniquePoints(a)
		seen := make(map[Coordinate]bool)
		for _, c := range merged {
			seen[c] = true
		}
		for _, c := range uniquePoints(b) {
			if !seen[c] {
				merged = append(merged, c)
			}
		}
		return pointsToGeom(merged, gf)
	case isPuntal(a):
		return unionPointsInto(a, b, gf)
	case isPuntal(b):
		return unionPointsInto(b, a, gf)
	case isAreal(a) && isAreal(b):
		return clipResult(clipPolygon(a).Union(clipPolygon(b)), gf)
	}
	return nil, ErrOverlayUnsupported
}

// unionPointsInto merges a puntal geometry into another geometry:
// covered points dissolve into it.
func unionPointsInto(pts, other Geom, gf *GeometryFactory) (Geom, error) {
	var loose []Geom
	for _, c := range uniquePoints(pts) {
		if LocatePoint(c, other) == Exterior {
			loose = append(loose, gf.CreatePoint(c))
		}
	}
	if len(loose) == 0 {
		return other.Clone(), nil
	}
	loose = append(loose, other.Clone())
	return gf.BuildGeometry(loose...), nil
}

// Difference computes the point set of a not covered by b.
func Difference(a, b Geom) (Geom, error) {
	gf := a.Factory()
	if a.IsEmpty() {
		return gf.CreateGeometryCollection(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	switch {
	case isPuntal(a):
		var kept []Coordinate
		for _, c := range uniquePoints(a) {
			if LocatePoint(c, b) == Exterior {
				kept = append(kept, c)
			}
		}
		return pointsToGeom(kept, gf)
	case isAreal(a) && isAreal(b):
		return clipResult(clipPolygon(a).Difference(clipPolygon(b)), gf)
	case b.Dimension() < a.Dimension():
		// Subtracting a lower-dimensional set leaves a unchanged.
		return a.Clone(), nil
	}
	return nil, ErrOverlayUnsupported
}

// SymmetricDifference computes the point set covered by exactly one
// of a and b.
func SymmetricDifference(a, b Geom) (Geom, error) {
	gf := a.Factory()
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if !a.Envelope().Intersects(b.Envelope()) {
		return disjointParts(a, b, gf), nil
	}
	switch {
	case isPuntal(a) && isPuntal(b):
		inA, inB := uniquePoints(a), uniquePoints(b)
		setB := make(map[Coordinate]bool)
		for _, c := range inB {
			setB[c] = true
		}
		setA := make(map[Coordinate]bool)
		var kept []Coordinate
		for _, c := range inA {
			setA[c] = true
			if !setB[c] {
				kept = append(kept, c)
			}
		}
		for _, c := range inB {
			if !setA[c] {
				kept = append(kept, c)
			}
		}
		return pointsToGeom(kept, gf)
	case isAreal(a) && isAreal(b):
		return clipResult(clipPolygon(a).XOr(clipPolygon(b)), gf)
	}
	return nil, ErrOverlayUnsupported
}

// disjointParts combines two geometries with non-overlapping extents
// into one result, flattening collection operands one level.
func disjointParts(a, b Geom, gf *GeometryFactory) Geom {
	var v []Geom
	for _, g := range []Geom{a, b} {
		switch g.(type) {
		case *GeometryCollection, *MultiPoint, *MultiLineString, *MultiPolygon:
			for _, part := range collectionParts(g) {
				v = append(v, part.Clone())
			}
		default:
			v = append(v, g.Clone())
		}
	}
	return gf.BuildGeometry(v...)
}
