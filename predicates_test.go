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

import "testing"

func evalBool(t *testing.T, name string, fn func(a, b Geom) (bool, error), a, b Geom) bool {
	t.Helper()
	got, err := fn(a, b)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return got
}

func TestPredicatesPointInPolygon(t *testing.T) {
	sq := square(t, 0, 0, 10)
	inside := tf.CreatePoint(Coord(5, 5))
	onEdge := tf.CreatePoint(Coord(0, 5))
	outside := tf.CreatePoint(Coord(15, 5))

	cases := []struct {
		name string
		fn   func(a, b Geom) (bool, error)
		a, b Geom
		want bool
	}{
		{"contains inside", Contains, sq, inside, true},
		{"contains on edge", Contains, sq, onEdge, false},
		{"contains outside", Contains, sq, outside, false},
		{"covers inside", Covers, sq, inside, true},
		{"covers on edge", Covers, sq, onEdge, true},
		{"covers outside", Covers, sq, outside, false},
		{"touches on edge", Touches, sq, onEdge, true},
		{"touches inside", Touches, sq, inside, false},
		{"intersects on edge", Intersects, sq, onEdge, true},
		{"disjoint outside", Disjoint, sq, outside, true},
		{"disjoint inside", Disjoint, sq, inside, false},
		{"within inside", Within, inside, sq, true},
		{"coveredby on edge", CoveredBy, onEdge, sq, true},
	}
	for _, c := range cases {
		if got := evalBool(t, c.name, c.fn, c.a, c.b); got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}

func TestPredicatesPolygonWithHole(t *testing.T) {
	poly, err := tf.CreatePolygon(
		mustRing(t, 0, 0, 12, 0, 12, 10, 0, 10, 0, 0),
		mustRing(t, 2, 2, 10, 2, 10, 8, 2, 8, 2, 2),
	)
	if err != nil {
		t.Fatal(err)
	}
	inHole := tf.CreatePoint(Coord(6, 5))
	inShell := tf.CreatePoint(Coord(1, 1))
	onHoleEdge := tf.CreatePoint(Coord(2, 5))

	if evalBool(t, "contains", Contains, poly, inHole) {
		t.Error("polygon contains a point inside its hole")
	}
	if !evalBool(t, "contains", Contains, poly, inShell) {
		t.Error("polygon does not contain a point between shell and hole")
	}
	if evalBool(t, "contains", Contains, poly, onHoleEdge) {
		t.Error("polygon contains a point on its hole ring")
	}
	if !evalBool(t, "covers", Covers, poly, onHoleEdge) {
		t.Error("polygon does not cover a point on its hole ring")
	}
	if !evalBool(t, "touches", Touches, poly, onHoleEdge) {
		t.Error("hole ring point does not touch")
	}
	if evalBool(t, "intersects", Intersects, poly, inHole) {
		t.Error("polygon intersects a point inside its hole")
	}
}

func TestPredicatesRing(t *testing.T) {
	ring := mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0)
	onEdge := tf.CreatePoint(Coord(5, 0))
	onVertex := tf.CreatePoint(Coord(0, 0))
	enclosed := tf.CreatePoint(Coord(5, 5))
	sq := square(t, 0, 0, 10)

	cases := []struct {
		name string
		fn   func(a, b Geom) (bool, error)
		a, b Geom
		want bool
	}{
		{"intersects point on edge", Intersects, ring, onEdge, true},
		{"intersects point on vertex", Intersects, ring, onVertex, true},
		{"intersects enclosed point", Intersects, ring, enclosed, false},
		{"contains point on edge", Contains, ring, onEdge, true},
		{"covers point on vertex", Covers, ring, onVertex, true},
		{"within point on edge", Within, onEdge, ring, true},
		{"touches point on edge", Touches, ring, onEdge, false},
		{"polygon covers its ring", Covers, sq, ring, true},
		{"ring coveredby polygon", CoveredBy, ring, sq, true},
		{"polygon contains its ring", Contains, sq, ring, false},
		{"ring equals itself", Equals, ring, mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), true},
	}
	for _, c := range cases {
		if got := evalBool(t, c.name, c.fn, c.a, c.b); got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}

func TestPredicatesLines(t *testing.T) {
	sq := square(t, 0, 0, 10)

	if !evalBool(t, "crosses", Crosses, mustLine(t, -5, 5, 15, 5), sq) {
		t.Error("through line does not cross the polygon")
	}
	if evalBool(t, "crosses", Crosses, mustLine(t, 2, 2, 8, 8), sq) {
		t.Error("contained line crosses the polygon")
	}
	if !evalBool(t, "within", Within, mustLine(t, 2, 2, 8, 8), sq) {
		t.Error("contained line is not within the polygon")
	}
	if !evalBool(t, "crosses", Crosses, mustLine(t, 0, 0, 2, 2), mustLine(t, 0, 2, 2, 0)) {
		t.Error("X lines do not cross")
	}
	if !evalBool(t, "touches", Touches, mustLine(t, 0, 0, 1, 1), mustLine(t, 1, 1, 2, 0)) {
		t.Error("endpoint-joined lines do not touch")
	}
	// Collinear partial overlap is an overlap, not a crossing.
	a := mustLine(t, 0, 0, 4, 0)
	b := mustLine(t, 2, 0, 6, 0)
	if !evalBool(t, "overlaps", Overlaps, a, b) {
		t.Error("collinear half-shared lines do not overlap")
	}
	if evalBool(t, "crosses", Crosses, a, b) {
		t.Error("collinear half-shared lines cross")
	}
}

func TestPredicatesSymmetry(t *testing.T) {
	a := square(t, 0, 0, 2)
	b := square(t, 1, 1, 2)
	for _, fn := range []struct {
		name string
		f    func(a, b Geom) (bool, error)
	}{
		{"intersects", Intersects},
		{"disjoint", Disjoint},
		{"touches", Touches},
		{"overlaps", Overlaps},
		{"equals", Equals},
	} {
		ab := evalBool(t, fn.name, fn.f, a, b)
		ba := evalBool(t, fn.name, fn.f, b, a)
		if ab != ba {
			t.Errorf("%s is not symmetric: %v vs %v", fn.name, ab, ba)
		}
	}

	sq := square(t, 0, 0, 10)
	small := square(t, 2, 2, 6)
	if !evalBool(t, "contains", Contains, sq, small) {
		t.Error("outer does not contain inner")
	}
	if !evalBool(t, "within", Within, small, sq) {
		t.Error("inner is not within outer")
	}
	if evalBool(t, "within", Within, sq, small) {
		t.Error("outer is within inner")
	}
}

func TestPredicatesEquals(t *testing.T) {
	// The same region described with different start vertices and
	// ring orientations.
	a := mustPoly(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0)
	b := mustPoly(t, 10, 10, 10, 0, 0, 0, 0, 10, 10, 10)
	if !evalBool(t, "equals", Equals, a, b) {
		t.Error("reoriented polygons are not equal")
	}
	if evalBool(t, "equals", Equals, a, square(t, 0, 0, 9)) {
		t.Error("different polygons are equal")
	}
	if !evalBool(t, "equals", Equals, tf.CreateEmptyPoint(), tf.CreateEmptyPoint()) {
		t.Error("two empty geometries are not equal")
	}
	if evalBool(t, "equals", Equals, tf.CreateEmptyPoint(), a) {
		t.Error("empty equals non-empty")
	}
}

func TestRelatePattern(t *testing.T) {
	sq := square(t, 0, 0, 10)
	pt := tf.CreatePoint(Coord(5, 5))

	ok, err := RelatePattern(sq, pt, "T**FF*FF*")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("contains-properly pattern does not match an interior point")
	}

	ok, err = RelatePattern(sq, tf.CreatePoint(Coord(0, 5)), "T**FF*FF*")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("contains-properly pattern matches a boundary point")
	}

	if _, err := RelatePattern(sq, pt, "T**"); err == nil {
		t.Error("short pattern accepted")
	}
}

func TestPredicatesDisjointEnvelopeShortCircuit(t *testing.T) {
	// Far-apart operands must resolve without a full relate; the
	// result still has to be right.
	a := square(t, 0, 0, 1)
	b := square(t, 100, 100, 1)
	if !evalBool(t, "disjoint", Disjoint, a, b) {
		t.Error("far-apart squares are not disjoint")
	}
	if evalBool(t, "intersects", Intersects, a, b) {
		t.Error("far-apart squares intersect")
	}
	if evalBool(t, "contains", Contains, a, b) {
		t.Error("far-apart squares contain each other")
	}
}
