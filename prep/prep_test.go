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

import (
	"testing"

	"github.com/spatialmodel/planar"
)

var tf = planar.NewGeometryFactory()

func xy(ords ...float64) []planar.Coordinate {
	cs := make([]planar.Coordinate, 0, len(ords)/2)
	for i := 0; i < len(ords); i += 2 {
		cs = append(cs, planar.Coord(ords[i], ords[i+1]))
	}
	return cs
}

func mustLine(t *testing.T, ords ...float64) *planar.LineString {
	t.Helper()
	l, err := tf.CreateLineString(xy(ords...))
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func mustPoly(t *testing.T, ords ...float64) *planar.Polygon {
	t.Helper()
	r, err := tf.CreateLinearRing(xy(ords...))
	if err != nil {
		t.Fatal(err)
	}
	p, err := tf.CreatePolygon(r)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func square(t *testing.T, x, y, side float64) *planar.Polygon {
	t.Helper()
	return mustPoly(t, x, y, x+side, y, x+side, y+side, x, y+side, x, y)
}

// TestPreparedAgainstPlain cross-checks every prepared predicate
// against the plain operation over a corpus of geometry pairs. The
// prepared path must never change an answer.
func TestPreparedAgainstPlain(t *testing.T) {
	holed, err := tf.CreatePolygon(
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		mustRing(t, 4, 4, 6, 4, 6, 6, 4, 6, 4, 4),
	)
	if err != nil {
		t.Fatal(err)
	}

	emptyPoly, err := tf.CreatePolygon(nil)
	if err != nil {
		t.Fatal(err)
	}

	targets := []planar.Geom{
		tf.CreatePoint(planar.Coord(5, 5)),
		mustLine(t, 0, 0, 10, 10),
		mustLine(t, 0, 0, 10, 0, 10, 10),
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		square(t, 0, 0, 10),
		holed,
		mustPoly(t, 0, 0, 4, 0, 4, 4, 2, 2, 0, 4, 0, 0),
		tf.CreateEmptyPoint(),
		emptyPoly,
	}
	tests := []planar.Geom{
		tf.CreatePoint(planar.Coord(5, 5)),
		tf.CreatePoint(planar.Coord(0, 0)),
		tf.CreatePoint(planar.Coord(5, 0)),
		tf.CreatePoint(planar.Coord(2, 1)),
		tf.CreatePoint(planar.Coord(50, 50)),
		mustLine(t, 0, 0, 10, 10),
		mustLine(t, -5, 5, 15, 5),
		mustLine(t, 1, 2, 3, 2),
		mustLine(t, 20, 20, 30, 20),
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		square(t, 0, 0, 10),
		square(t, 1, 1, 2),
		square(t, 5, 5, 10),
		square(t, -5, -5, 30),
		square(t, 10, 0, 3),
		square(t, 40, 40, 2),
		tf.CreateEmptyPoint(),
		emptyPoly,
	}

	type pred struct {
		name     string
		prepared func(PreparedGeometry, planar.Geom) (bool, error)
		plain    func(a, b planar.Geom) (bool, error)
	}
	preds := []pred{
		{"contains", PreparedGeometry.Contains, planar.Contains},
		{"containsproperly", PreparedGeometry.ContainsProperly,
			func(a, b planar.Geom) (bool, error) { return planar.RelatePattern(a, b, "T**FF*FF*") }},
		{"coveredby", PreparedGeometry.CoveredBy, planar.CoveredBy},
		{"covers", PreparedGeometry.Covers, planar.Covers},
		{"crosses", PreparedGeometry.Crosses, planar.Crosses},
		{"disjoint", PreparedGeometry.Disjoint, planar.Disjoint},
		{"intersects", PreparedGeometry.Intersects, planar.Intersects},
		{"overlaps", PreparedGeometry.Overlaps, planar.Overlaps},
		{"touches", PreparedGeometry.Touches, planar.Touches},
		{"within", PreparedGeometry.Within, planar.Within},
	}

	for ti, target := range targets {
		pg := Prepare(target)
		for gi, g := range tests {
			results := make(map[string]bool)
			for _, p := range preds {
				want, err := p.plain(target, g)
				if err != nil {
					t.Fatalf("target %d test %d %s (plain): %v", ti, gi, p.name, err)
				}
				got, err := p.prepared(pg, g)
				if err != nil {
					t.Fatalf("target %d test %d %s (prepared): %v", ti, gi, p.name, err)
				}
				if got != want {
					t.Errorf("target %d test %d %s: prepared %v, plain %v", ti, gi, p.name, got, want)
				}
				results[p.name] = got
			}
			// Strictness ordering of the containment predicates.
			if results["containsproperly"] && !results["contains"] {
				t.Errorf("target %d test %d: containsproperly without contains", ti, gi)
			}
			if results["contains"] && !results["covers"] {
				t.Errorf("target %d test %d: contains without covers", ti, gi)
			}
		}
	}
}

func TestPreparedLineStringRingTarget(t *testing.T) {
	ring := mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0)
	pg := Prepare(ring)
	if _, ok := pg.(*PreparedLineString); !ok {
		t.Fatalf("ring prepared as %T", pg)
	}

	cases := []struct {
		name string
		p    planar.Coordinate
		want bool
	}{
		{"point on edge", planar.Coord(5, 0), true},
		{"point on vertex", planar.Coord(0, 0), true},
		{"enclosed point", planar.Coord(5, 5), false},
		{"outside point", planar.Coord(15, 5), false},
	}
	for _, c := range cases {
		got, err := pg.Intersects(tf.CreatePoint(c.p))
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}

func TestPreparedCollectionOperand(t *testing.T) {
	gc := tf.CreateGeometryCollection(tf.CreatePoint(planar.Coord(5, 5)))
	pp := Prepare(square(t, 0, 0, 10)).(*PreparedPolygon)

	for name, fn := range map[string]func(planar.Geom) (bool, error){
		"intersects":       pp.Intersects,
		"disjoint":         pp.Disjoint,
		"contains":         pp.Contains,
		"containsproperly": pp.ContainsProperly,
		"covers":           pp.Covers,
	} {
		if _, err := fn(gc); err != planar.ErrGeometryCollection {
			t.Errorf("%s: want ErrGeometryCollection, got %v", name, err)
		}
	}

	pl := Prepare(mustLine(t, 0, 0, 10, 10)).(*PreparedLineString)
	if _, err := pl.Intersects(gc); err != planar.ErrGeometryCollection {
		t.Errorf("line intersects: want ErrGeometryCollection, got %v", err)
	}
	ppt := Prepare(tf.CreatePoint(planar.Coord(5, 5))).(*PreparedPoint)
	if _, err := ppt.Intersects(gc); err != planar.ErrGeometryCollection {
		t.Errorf("point intersects: want ErrGeometryCollection, got %v", err)
	}
}

func mustRing(t *testing.T, ords ...float64) *planar.LinearRing {
	t.Helper()
	r, err := tf.CreateLinearRing(xy(ords...))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestPrepareDispatch(t *testing.T) {
	cases := []struct {
		g    planar.Geom
		want string
	}{
		{tf.CreatePoint(planar.Coord(0, 0)), "*prep.PreparedPoint"},
		{mustLine(t, 0, 0, 1, 1), "*prep.PreparedLineString"},
		{square(t, 0, 0, 1), "*prep.PreparedPolygon"},
	}
	for _, c := range cases {
		pg := Prepare(c.g)
		switch pg.(type) {
		case *PreparedPoint:
			if c.want != "*prep.PreparedPoint" {
				t.Errorf("%v prepared as point", c.g.Type())
			}
		case *PreparedLineString:
			if c.want != "*prep.PreparedLineString" {
				t.Errorf("%v prepared as linestring", c.g.Type())
			}
		case *PreparedPolygon:
			if c.want != "*prep.PreparedPolygon" {
				t.Errorf("%v prepared as polygon", c.g.Type())
			}
		default:
			t.Errorf("%v prepared as %T", c.g.Type(), pg)
		}
		if planar.Compare(pg.Geom(), c.g) != 0 {
			t.Errorf("prepared geometry does not expose its target")
		}
	}
}

func TestPreparedPolygonContainsProperly(t *testing.T) {
	pg := Prepare(square(t, 0, 0, 10)).(*PreparedPolygon)

	cases := []struct {
		name string
		g    planar.Geom
		want bool
	}{
		{"interior point", tf.CreatePoint(planar.Coord(5, 5)), true},
		{"boundary point", tf.CreatePoint(planar.Coord(0, 5)), false},
		{"interior line", mustLine(t, 2, 2, 8, 8), true},
		{"line touching boundary", mustLine(t, 5, 5, 10, 5), false},
		{"interior polygon", square(t, 2, 2, 6), true},
		{"polygon sharing an edge", mustPoly(t, 0, 0, 10, 0, 10, 5, 0, 5, 0, 0), false},
		{"itself", square(t, 0, 0, 10), false},
		{"outside polygon", square(t, 20, 20, 2), false},
	}
	for _, c := range cases {
		got, err := pg.ContainsProperly(c.g)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}

func TestPreparedPolygonRectanglePath(t *testing.T) {
	rect := Prepare(square(t, 0, 0, 10)).(*PreparedPolygon)
	notRect := Prepare(mustPoly(t, 0, 0, 10, 0, 10, 10, 5, 8, 0, 10, 0, 0)).(*PreparedPolygon)

	// Both shapes contain an interior point and reject a boundary
	// point, whichever code path serves the answer.
	for _, pg := range []*PreparedPolygon{rect, notRect} {
		got, err := pg.Contains(tf.CreatePoint(planar.Coord(5, 5)))
		if err != nil {
			t.Fatal(err)
		}
		if !got {
			t.Errorf("interior point not contained")
		}
		got, err = pg.Contains(tf.CreatePoint(planar.Coord(0, 5)))
		if err != nil {
			t.Fatal(err)
		}
		if got {
			t.Errorf("boundary point contained")
		}
	}
}

func TestRectangleContains(t *testing.T) {
	rect := square(t, 0, 0, 10)

	cases := []struct {
		name string
		g    planar.Geom
		want bool
	}{
		{"interior point", tf.CreatePoint(planar.Coord(5, 5)), true},
		{"boundary point", tf.CreatePoint(planar.Coord(0, 5)), false},
		{"corner point", tf.CreatePoint(planar.Coord(0, 0)), false},
		{"outside point", tf.CreatePoint(planar.Coord(15, 5)), false},
		{"interior line", mustLine(t, 2, 2, 8, 8), true},
		{"line reaching the boundary", mustLine(t, 5, 5, 10, 5), true},
		{"line along an edge", mustLine(t, 0, 0, 10, 0), false},
		{"line along two edges", mustLine(t, 0, 5, 0, 10, 5, 10), false},
		{"line leaving the rectangle", mustLine(t, 5, 5, 15, 5), false},
		{"interior polygon", square(t, 2, 2, 6), true},
		{"edge-touching polygon", mustPoly(t, 0, 0, 5, 0, 5, 5, 0, 5, 0, 0), true},
		{"overhanging polygon", square(t, 5, 5, 10), false},
	}
	for _, c := range cases {
		if got := RectangleContains(rect, c.g); got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}
