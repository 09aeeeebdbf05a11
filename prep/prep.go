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

// Package prep speeds up repeated spatial predicate evaluation
// against a fixed geometry. A prepared geometry builds indexes over
// its target lazily and reuses them across calls, short-circuiting
// the common cases so the full topological relationship is only
// computed when the operands interact along their boundaries.
package prep

import "github.com/spatialmodel/planar"

// PreparedGeometry evaluates spatial predicates between a fixed
// target geometry and many test geometries. Implementations optimize
// some predicates and delegate the rest to the plain operations.
type PreparedGeometry interface {
	// Geom returns the target geometry.
	Geom() planar.Geom

	Contains(g planar.Geom) (bool, error)
	// ContainsProperly reports whether every point of g lies in the
	// target's interior, i.e. the relationship T**FF*FF* holds. Any
	// contact with the target's boundary makes it false.
	ContainsProperly(g planar.Geom) (bool, error)
	CoveredBy(g planar.Geom) (bool, error)
	Covers(g planar.Geom) (bool, error)
	Crosses(g planar.Geom) (bool, error)
	Disjoint(g planar.Geom) (bool, error)
	Intersects(g planar.Geom) (bool, error)
	Overlaps(g planar.Geom) (bool, error)
	Touches(g planar.Geom) (bool, error)
	Within(g planar.Geom) (bool, error)
}

// Prepare wraps g in the PreparedGeometry implementation suited to
// its type.
func Prepare(g planar.Geom) PreparedGeometry {
	switch g.(type) {
	case *planar.Point, *planar.MultiPoint:
		return newPreparedPoint(g)
	case *planar.LinearRing, *planar.LineString, *planar.MultiLineString:
		return newPreparedLineString(g)
	case *planar.Polygon, *planar.MultiPolygon:
		return newPreparedPolygon(g)
	}
	return newBasicPrepared(g)
}

// basicPrepared delegates every predicate to the plain operations.
// It also carries the representative points of the target, one
// vertex per component, which several optimizations share.
type basicPrepared struct {
	geom   planar.Geom
	repPts []planar.Coordinate
}

func newBasicPrepared(g planar.Geom) *basicPrepared {
	return &basicPrepared{geom: g, repPts: planar.ComponentCoordinates(g)}
}

func (b *basicPrepared) Geom() planar.Geom { return b.geom }

func (b *basicPrepared) envelopesIntersect(g planar.Geom) bool {
	return b.geom.Envelope().Intersects(g.Envelope())
}

// collectionError mirrors the plain predicates, which reject
// GeometryCollection operands once the envelope screen passes. The
// optimized paths must fail the same way instead of classifying the
// collection's parts.
func collectionError(g planar.Geom) error {
	if _, ok := g.(*planar.GeometryCollection); ok {
		return planar.ErrGeometryCollection
	}
	return nil
}

func (b *basicPrepared) envelopeCovers(g planar.Geom) bool {
	return b.geom.Envelope().Covers(g.Envelope())
}

// anyTargetComponentInTest reports whether any representative point
// of the target lies in the test geometry.
func (b *basicPrepared) anyTargetComponentInTest(g planar.Geom) bool {
	for _, pt := range b.repPts {
		if planar.LocatePoint(pt, g) != planar.Exterior {
			return true
		}
	}
	return false
}

func (b *basicPrepared) Contains(g planar.Geom) (bool, error) {
	return planar.Contains(b.geom, g)
}

func (b *basicPrepared) ContainsProperly(g planar.Geom) (bool, error) {
	if !b.geom.Envelope().Contains(g.Envelope()) {
		return false, nil
	}
	return planar.RelatePattern(b.geom, g, "T**FF*FF*")
}

func (b *basicPrepared) CoveredBy(g planar.Geom) (bool, error) {
	return planar.CoveredBy(b.geom, g)
}

func (b *basicPrepared) Covers(g planar.Geom) (bool, error) {
	return planar.Covers(b.geom, g)
}

func (b *basicPrepared) Crosses(g planar.Geom) (bool, error) {
	return planar.Crosses(b.geom, g)
}

func (b *basicPrepared) Disjoint(g planar.Geom) (bool, error) {
	return planar.Disjoint(b.geom, g)
}

func (b *basicPrepared) Intersects(g planar.Geom) (bool, error) {
	return planar.Intersects(b.geom, g)
}

func (b *basicPrepared) Overlaps(g planar.Geom) (bool, error) {
	return planar.Overlaps(b.geom, g)
}

func (b *basicPrepared) Touches(g planar.Geom) (bool, error) {
	return planar.Touches(b.geom, g)
}

func (b *basicPrepared) Within(g planar.Geom) (bool, error) {
	return planar.Within(b.geom, g)
}

// PreparedPoint is a prepared Point or MultiPoint.
type PreparedPoint struct {
	basicPrepared
}

func newPreparedPoint(g planar.Geom) *PreparedPoint {
	return &PreparedPoint{basicPrepared: *newBasicPrepared(g)}
}

// Intersects avoids computing topology for the test geometry: a
// puntal target intersects iff one of its points does.
func (p *PreparedPoint) Intersects(g planar.Geom) (bool, error) {
	if !p.envelopesIntersect(g) {
		return false, nil
	}
	if err := collectionError(g); err != nil {
		return false, err
	}
	return p.anyTargetComponentInTest(g), nil
}

func (p *PreparedPoint) Disjoint(g planar.Geom) (bool, error) {
	hit, err := p.Intersects(g)
	if err != nil {
		return false, err
	}
	return !hit, nil
}

// PreparedLineString is a prepared LineString, LinearRing or
// MultiLineString.
type PreparedLineString struct {
	basicPrepared
	segFinder *planar.FastSegmentSetIntersectionFinder
}

func newPreparedLineString(g planar.Geom) *PreparedLineString {
	return &PreparedLineString{basicPrepared: *newBasicPrepared(g)}
}

func (p *PreparedLineString) finder() *planar.FastSegmentSetIntersectionFinder {
	if p.segFinder == nil {
		p.segFinder = planar.NewFastSegmentSetIntersectionFinder(p.geom)
	}
	return p.segFinder
}

func (p *PreparedLineString) Intersects(g planar.Geom) (bool, error) {
	if !p.envelopesIntersect(g) {
		return false, nil
	}
	if err := collectionError(g); err != nil {
		return false, err
	}
	// Any segment crossing settles it.
	if p.finder().Intersects(g) {
		return true, nil
	}
	switch g.Dimension() {
	case planar.DimLine:
		return false, nil
	case planar.DimArea:
		// The target may lie wholly inside the test area.
		return p.anyTargetComponentInTest(g), nil
	case planar.DimPoint:
		for _, pt := range planar.ComponentCoordinates(g) {
			if planar.LocatePoint(pt, p.geom) != planar.Exterior {
				return true, nil
			}
		}
	}
	return false, nil
}

func (p *PreparedLineString) Disjoint(g planar.Geom) (bool, error) {
	hit, err := p.Intersects(g)
	if err != nil {
		return false, err
	}
	return !hit, nil
}
