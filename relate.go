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
	"sort"

	"github.com/ctessum/geom/index/rtree"
)

// relateGeometry is one operand of a topological relationship
// computation, with its linework indexed for intersection queries.
type relateGeometry struct {
	g       Geom
	hasArea bool
	strings []*segmentString
	segs    []*indexedSegment
	index   *rtree.Rtree

	areaLoc  *IndexedPointInAreaLocator
	boundary map[Coordinate]bool
}

func newRelateGeometry(g Geom) *relateGeometry {
	r := &relateGeometry{
		g:       g,
		hasArea: g.Dimension() == DimArea && !g.IsEmpty(),
		strings: extractSegmentStrings(g),
		index:   rtree.NewTree(25, 50),
	}
	for _, ss := range r.strings {
		cs := ss.coords
		for i := 1; i < len(cs); i++ {
			if cs[i-1].Equals(cs[i]) {
				continue
			}
			seg := newIndexedSegment(cs[i-1], cs[i])
			r.segs = append(r.segs, seg)
			r.index.Insert(seg)
		}
	}
	return r
}

func (r *relateGeometry) areaLocator() *IndexedPointInAreaLocator {
	if r.areaLoc == nil {
		r.areaLoc = NewIndexedPointInAreaLocator(r.g)
	}
	return r.areaLoc
}

// nodeLoc classifies a point known to lie on r's linework: on a
// polygon ring it is a boundary point; on merged lineal linework it
// is a boundary point exactly when the mod-2 endpoint count is odd.
func (r *relateGeometry) nodeLoc(p Coordinate) Location {
	if r.hasArea {
		return Boundary
	}
	if r.boundary == nil {
		r.boundary = make(map[Coordinate]bool)
		for _, bp := range boundaryPointsOf(r.g) {
			r.boundary[bp] = true
		}
	}
	if r.boundary[Coord(p.X, p.Y)] {
		return Boundary
	}
	return Interior
}

// Relate computes the DE-9IM intersection matrix of a and b.
// Heterogeneous GeometryCollection operands are not supported.
func Relate(a, b Geom) (*IntersectionMatrix, error) {
	if _, ok := a.(*GeometryCollection); ok {
		return nil, ErrGeometryCollection
	}
	if _, ok := b.(*GeometryCollection); ok {
		return nil, ErrGeometryCollection
	}
	ra, rb := newRelateGeometry(a), newRelateGeometry(b)
	im := newIntersectionMatrix()
	im.Set(Exterior, Exterior, DimArea)
	relateFeatures(ra, rb, im, false)
	relateFeatures(rb, ra, im, true)
	relateAreas(ra, rb, im)
	return im, nil
}

// relateFeatures classifies the point and line features of a against
// the point set of b, raising matrix entries as it goes. When
// transposed is set, a supplies the columns instead of the rows.
func relateFeatures(a, b *relateGeometry, im *IntersectionMatrix, transposed bool) {
	set := func(la, lb Location, d Dimension) {
		if transposed {
			la, lb = lb, la
		}
		im.SetAtLeast(la, lb, d)
	}

	// Isolated points: every point of a puntal geometry is interior.
	EachComponent(a.g, func(c Geom) {
		if p, ok := c.(*Point); ok && !p.IsEmpty() {
			set(Interior, LocatePoint(*p.Coord(), b.g), DimPoint)
		}
	})

	lineLoc := Interior
	if a.hasArea {
		lineLoc = Boundary
	}

	for _, seg := range a.segs {
		// Split the segment at every intersection with b's linework
		// and with the rest of a's own linework, then classify each
		// open piece by its midpoint and each split point
		// individually.
		params := []float64{0, 1}
		var covered [][2]float64
		var shared, selfNodes []Coordinate
		env := EnvelopeOf(seg.p1, seg.p2)

		for _, hit := range b.index.SearchIntersect(env.bounds()) {
			o := hit.(*indexedSegment)
			si := intersectSegments(seg.p1, seg.p2, o.p1, o.p2)
			switch si.Kind {
			case pointIntersection:
				params = append(params, si.T0)
				shared = append(shared, si.Pt)
			case collinearIntersection:
				params = append(params, si.T0, si.T1)
				covered = append(covered, [2]float64{si.T0, si.T1})
				shared = append(shared, seg.pointAt(si.T0), seg.pointAt(si.T1))
			}
		}

		for _, hit := range a.index.SearchIntersect(env.bounds()) {
			o := hit.(*indexedSegment)
			if o == seg {
				continue
			}
			si := intersectSegments(seg.p1, seg.p2, o.p1, o.p2)
			switch si.Kind {
			case pointIntersection:
				if seg.hasEndpoint(si.Pt) && o.hasEndpoint(si.Pt) {
					// Plain vertex adjacency; nothing topological
					// happens there that the pieces miss.
					continue
				}
				params = append(params, si.T0)
				selfNodes = append(selfNodes, si.Pt)
			case collinearIntersection:
				params = append(params, si.T0, si.T1)
				selfNodes = append(selfNodes, seg.pointAt(si.T0), seg.pointAt(si.T1))
			}
		}

		sort.Float64s(params)
		for k := 1; k < len(params); k++ {
			t0, t1 := params[k-1], params[k]
			if t1 <= t0 {
				continue
			}
			tm := (t0 + t1) / 2
			locB := Exterior
			switch {
			case coveredAt(covered, tm):
				// The piece lies on b's linework.
				locB = Interior
				if b.hasArea {
					locB = Boundary
				}
			case b.hasArea:
				locB = b.areaLocator().Locate(seg.pointAt(tm))
			}
			set(lineLoc, locB, DimLine)
		}

		// Points on both lineworks classify exactly on each side.
		for _, p := range shared {
			set(a.nodeLoc(p), b.nodeLoc(p), DimPoint)
		}
		for _, p := range selfNodes {
			set(a.nodeLoc(p), LocatePoint(p, b.g), DimPoint)
		}
	}

	// Endpoints of open curves are boundary candidates even without
	// any intersection.
	if !a.hasArea {
		for _, ss := range a.strings {
			line, ok := ss.parent.(*LineString)
			if !ok || line.IsClosed() {
				continue
			}
			cs := ss.coords
			for _, p := range []Coordinate{cs[0], cs[len(cs)-1]} {
				set(a.nodeLoc(p), LocatePoint(p, b.g), DimPoint)
			}
		}
	}
}

// relateAreas fills in the two-dimensional matrix entries with
// polygon clipping. Interiors of valid areal geometries intersect in
// either nothing or an area, so positive clip areas decide them.
func relateAreas(a, b *relateGeometry, im *IntersectionMatrix) {
	switch {
	case a.hasArea && b.hasArea:
		pa, pb := clipPolygon(a.g), clipPolygon(b.g)
		if pa.Intersection(pb).Area() > 0 {
			im.SetAtLeast(Interior, Interior, DimArea)
		}
		if pa.Difference(pb).Area() > 0 {
			im.SetAtLeast(Interior, Exterior, DimArea)
		}
		if pb.Difference(pa).Area() > 0 {
			im.SetAtLeast(Exterior, Interior, DimArea)
		}
	case a.hasArea:
		im.SetAtLeast(Interior, Exterior, DimArea)
	case b.hasArea:
		im.SetAtLeast(Exterior, Interior, DimArea)
	}
}

func coveredAt(covered [][2]float64, t float64) bool {
	for _, iv := range covered {
		if iv[0] <= t && t <= iv[1] {
			return true
		}
	}
	return false
}
