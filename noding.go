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

import "github.com/ctessum/geom/index/rtree"

// segmentString is the linework of one linear component: a line
// string's coordinate run, or one ring of a polygon.
type segmentString struct {
	coords []Coordinate
	parent Geom
}

// extractSegmentStrings collects the linework of g: line string
// components and polygon rings. Puntal components contribute
// nothing.
func extractSegmentStrings(g Geom) []*segmentString {
	var out []*segmentString
	EachComponent(g, func(c Geom) {
		switch c := c.(type) {
		case *LinearRing:
			if !c.IsEmpty() {
				out = append(out, &segmentString{coords: c.Coords(), parent: c})
			}
		case *LineString:
			if !c.IsEmpty() {
				out = append(out, &segmentString{coords: c.Coords(), parent: c})
			}
		}
	})
	return out
}

// SegmentIntersectionDetector records what kinds of segment
// intersections a search has found. Searches can stop early once the
// requested kinds are all present.
type SegmentIntersectionDetector struct {
	// FindProper requests that the search continue until a proper
	// intersection is seen (or the candidates are exhausted).
	FindProper bool
	// FindAllTypes requests both a proper and a non-proper
	// intersection before the search stops.
	FindAllTypes bool

	hasIntersection bool
	hasProper       bool
	hasNonProper    bool
	intersection    Coordinate
}

// HasIntersection reports whether any intersection was found.
func (d *SegmentIntersectionDetector) HasIntersection() bool { return d.hasIntersection }

// HasProperIntersection reports whether an intersection interior to
// both segments was found.
func (d *SegmentIntersectionDetector) HasProperIntersection() bool { return d.hasProper }

// HasNonProperIntersection reports whether an intersection at a
// segment endpoint was found.
func (d *SegmentIntersectionDetector) HasNonProperIntersection() bool { return d.hasNonProper }

// Intersection returns a point of one found intersection.
func (d *SegmentIntersectionDetector) Intersection() Coordinate { return d.intersection }

func (d *SegmentIntersectionDetector) processIntersection(si segmentIntersection) {
	if si.Kind == noIntersection {
		return
	}
	d.hasIntersection = true
	d.intersection = si.Pt
	if si.Kind == pointIntersection && si.Proper {
		d.hasProper = true
	} else {
		d.hasNonProper = true
	}
}

// isDone reports whether the search can stop.
func (d *SegmentIntersectionDetector) isDone() bool {
	if !d.hasIntersection {
		return false
	}
	if d.FindAllTypes {
		return d.hasProper && d.hasNonProper
	}
	if d.FindProper {
		return d.hasProper
	}
	return true
}

// FastSegmentSetIntersectionFinder tests sets of query segments
// against a fixed set of base segments held in an R-tree. Build it
// once per base geometry and reuse it across queries.
type FastSegmentSetIntersectionFinder struct {
	index *rtree.Rtree
	count int
}

// NewFastSegmentSetIntersectionFinder indexes the linework of g.
func NewFastSegmentSetIntersectionFinder(g Geom) *FastSegmentSetIntersectionFinder {
	f := &FastSegmentSetIntersectionFinder{index: rtree.NewTree(25, 50)}
	for _, ss := range extractSegmentStrings(g) {
		cs := ss.coords
		for i := 1; i < len(cs); i++ {
			if cs[i-1].Equals(cs[i]) {
				continue
			}
			f.index.Insert(newIndexedSegment(cs[i-1], cs[i]))
			f.count++
		}
	}
	return f
}

// Intersects reports whether the linework of g intersects the
// indexed base segments.
func (f *FastSegmentSetIntersectionFinder) Intersects(g Geom) bool {
	det := &SegmentIntersectionDetector{}
	f.Detect(g, det)
	return det.HasIntersection()
}

// Detect runs the intersection search for the linework of g,
// recording results in det, and reports whether any intersection was
// found.
func (f *FastSegmentSetIntersectionFinder) Detect(g Geom, det *SegmentIntersectionDetector) bool {
	if f.count == 0 {
		return false
	}
	for _, ss := range extractSegmentStrings(g) {
		cs := ss.coords
		for i := 1; i < len(cs); i++ {
			if cs[i-1].Equals(cs[i]) {
				continue
			}
			segEnv := EnvelopeOf(cs[i-1], cs[i])
			for _, hit := range f.index.SearchIntersect(segEnv.bounds()) {
				base := hit.(*indexedSegment)
				det.processIntersection(intersectSegments(cs[i-1], cs[i], base.p1, base.p2))
				if det.isDone() {
					return det.HasIntersection()
				}
			}
		}
	}
	return det.HasIntersection()
}
