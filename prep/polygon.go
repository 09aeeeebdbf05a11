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

// PreparedPolygon is a prepared Polygon or MultiPolygon. It lazily
// builds a point-in-area index and a segment index over the target
// and keeps a fast path for rectangular targets.
type PreparedPolygon struct {
	basicPrepared
	isRectangle bool
	segFinder   *planar.FastSegmentSetIntersectionFinder
	ptLocator   *planar.IndexedPointInAreaLocator
}

func newPreparedPolygon(g planar.Geom) *PreparedPolygon {
	return &PreparedPolygon{
		basicPrepared: *newBasicPrepared(g),
		isRectangle:   planar.IsRectangle(g),
	}
}

func (p *PreparedPolygon) finder() *planar.FastSegmentSetIntersectionFinder {
	if p.segFinder == nil {
		p.segFinder = planar.NewFastSegmentSetIntersectionFinder(p.geom)
	}
	return p.segFinder
}

func (p *PreparedPolygon) locator() *planar.IndexedPointInAreaLocator {
	if p.ptLocator == nil {
		p.ptLocator = planar.NewIndexedPointInAreaLocator(p.geom)
	}
	return p.ptLocator
}

// allTestComponentsInTarget reports whether no representative point
// of the test geometry lies in the target's exterior.
func (p *PreparedPolygon) allTestComponentsInTarget(g planar.Geom) bool {
	for _, pt := range planar.ComponentCoordinates(g) {
		if p.locator().Locate(pt) == planar.Exterior {
			return false
		}
	}
	return true
}

// allTestComponentsInTargetInterior reports whether every
// representative point of the test geometry lies strictly inside the
// target.
func (p *PreparedPolygon) allTestComponentsInTargetInterior(g planar.Geom) bool {
	for _, pt := range planar.ComponentCoordinates(g) {
		if p.locator().Locate(pt) != planar.Interior {
			return false
		}
	}
	return true
}

func (p *PreparedPolygon) anyTestComponentInTarget(g planar.Geom) bool {
	for _, pt := range planar.ComponentCoordinates(g) {
		if p.locator().Locate(pt) != planar.Exterior {
			return true
		}
	}
	return false
}

func (p *PreparedPolygon) anyTestComponentInTargetInterior(g planar.Geom) bool {
	for _, pt := range planar.ComponentCoordinates(g) {
		if p.locator().Locate(pt) == planar.Interior {
			return true
		}
	}
	return false
}

// anyTargetComponentInAreaTest reports whether a representative
// point of the target lies in an areal test geometry.
func (p *PreparedPolygon) anyTargetComponentInAreaTest(g planar.Geom) bool {
	for _, pt := range p.repPts {
		if planar.LocatePointInArea(pt, g) != planar.Exterior {
			return true
		}
	}
	return false
}

func (p *PreparedPolygon) Intersects(g planar.Geom) (bool, error) {
	if !p.envelopesIntersect(g) {
		return false, nil
	}
	if err := collectionError(g); err != nil {
		return false, err
	}
	if p.anyTestComponentInTarget(g) {
		return true, nil
	}
	if g.Dimension() == planar.DimPoint {
		return false, nil
	}
	if p.finder().Intersects(g) {
		return true, nil
	}
	if g.Dimension() == planar.DimArea {
		// The target may lie wholly inside the test area.
		return p.anyTargetComponentInAreaTest(g), nil
	}
	return false, nil
}

func (p *PreparedPolygon) Disjoint(g planar.Geom) (bool, error) {
	hit, err := p.Intersects(g)
	if err != nil {
		return false, err
	}
	return !hit, nil
}

func (p *PreparedPolygon) Contains(g planar.Geom) (bool, error) {
	if !p.envelopeCovers(g) {
		return false, nil
	}
	if err := collectionError(g); err != nil {
		return false, err
	}
	if p.isRectangle {
		return RectangleContains(p.geom, g), nil
	}
	return p.eval(g, true, planar.Contains)
}

func (p *PreparedPolygon) Covers(g planar.Geom) (bool, error) {
	if !p.envelopeCovers(g) {
		return false, nil
	}
	if err := collectionError(g); err != nil {
		return false, err
	}
	return p.eval(g, false, planar.Covers)
}

// ContainsProperly reports whether every point of g lies in the
// target's interior. Unlike Contains, no interaction with the
// target's boundary is tolerated, which makes the predicate cheap:
// no topology needs to be computed at individual points.
func (p *PreparedPolygon) ContainsProperly(g planar.Geom) (bool, error) {
	if !p.envelopeCovers(g) {
		return false, nil
	}
	if err := collectionError(g); err != nil {
		return false, err
	}
	if !p.allTestComponentsInTargetInterior(g) {
		return false, nil
	}
	if p.finder().Intersects(g) {
		return false, nil
	}
	// With no segment intersection, a target vertex inside an areal
	// test geometry still means the test reaches outside the target.
	if g.Dimension() == planar.DimArea && p.anyTargetComponentInAreaTest(g) {
		return false, nil
	}
	return true, nil
}

// eval decides contains (requireSomePointInInterior true) or covers
// (false). Short-circuit tests settle most configurations; only test
// linework touching the target linework at vertices forces the full
// topological predicate.
func (p *PreparedPolygon) eval(g planar.Geom, requireSomePointInInterior bool,
	fullTopo func(a, b planar.Geom) (bool, error)) (bool, error) {

	if !p.allTestComponentsInTarget(g) {
		return false, nil
	}

	// A puntal test geometry inside the target area is contained iff
	// some point escapes the boundary into the interior.
	if requireSomePointInInterior && g.Dimension() == planar.DimPoint {
		return p.anyTestComponentInTargetInterior(g), nil
	}

	// A proper segment crossing puts some of the test's interior in
	// an epsilon neighbourhood outside the target whenever the test
	// is areal, or the target is a single shell without holes.
	properIntersectionImpliesNotContained :=
		g.Dimension() == planar.DimArea || p.isSingleShell()

	det := &planar.SegmentIntersectionDetector{FindAllTypes: true}
	p.finder().Detect(g, det)

	if properIntersectionImpliesNotContained && det.HasProperIntersection() {
		return false, nil
	}

	// Only proper crossings: by the same epsilon-neighbourhood
	// argument the test leaves the target somewhere.
	if det.HasIntersection() && !det.HasNonProperIntersection() {
		return false, nil
	}

	// Vertex touches admit configurations that only the full
	// topological relationship can settle.
	if det.HasIntersection() {
		return fullTopo(p.geom, g)
	}

	// No linework interaction at all: a ring of the target inside an
	// areal test means the target's exterior reaches into the test.
	if g.Dimension() == planar.DimArea && p.anyTargetComponentInAreaTest(g) {
		return false, nil
	}
	return true, nil
}

// isSingleShell reports whether the target is one polygon without
// holes, counting a single-element MultiPolygon.
func (p *PreparedPolygon) isSingleShell() bool {
	if p.geom.NumGeoms() != 1 {
		return false
	}
	poly, ok := p.geom.GeomN(0).(*planar.Polygon)
	return ok && poly.NumInteriors() == 0
}
