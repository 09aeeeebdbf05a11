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

func TestLocatePoint(t *testing.T) {
	holed, err := tf.CreatePolygon(
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		mustRing(t, 2, 2, 8, 2, 8, 8, 2, 8, 2, 2),
	)
	if err != nil {
		t.Fatal(err)
	}
	line := mustLine(t, 0, 0, 10, 10)

	cases := []struct {
		name string
		p    Coordinate
		g    Geom
		want Location
	}{
		{"inside", Coord(1, 1), holed, Interior},
		{"in hole", Coord(5, 5), holed, Exterior},
		{"on shell", Coord(0, 5), holed, Boundary},
		{"on shell vertex", Coord(10, 10), holed, Boundary},
		{"on hole ring", Coord(2, 5), holed, Boundary},
		{"outside", Coord(11, 5), holed, Exterior},
		{"on line", Coord(5, 5), line, Interior},
		{"line endpoint", Coord(0, 0), line, Boundary},
		{"off line", Coord(5, 6), line, Exterior},
		{"at point", Coord(3, 3), tf.CreatePoint(Coord(3, 3)), Interior},
		{"off point", Coord(3, 4), tf.CreatePoint(Coord(3, 3)), Exterior},
		// A standalone ring is a closed curve: no boundary, every
		// point of the curve interior.
		{"on ring edge", Coord(5, 0), mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), Interior},
		{"on ring vertex", Coord(0, 0), mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), Interior},
		{"enclosed by ring", Coord(5, 5), mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), Exterior},
		{"off ring", Coord(11, 5), mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), Exterior},
	}
	for _, c := range cases {
		if got := LocatePoint(c.p, c.g); got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}

func TestIndexedPointInAreaLocator(t *testing.T) {
	holed, err := tf.CreatePolygon(
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		mustRing(t, 2, 2, 8, 2, 8, 8, 2, 8, 2, 2),
	)
	if err != nil {
		t.Fatal(err)
	}
	loc := NewIndexedPointInAreaLocator(holed)

	cases := []struct {
		p    Coordinate
		want Location
	}{
		{Coord(1, 1), Interior},
		{Coord(5, 5), Exterior},
		{Coord(0, 5), Boundary},
		{Coord(2, 5), Boundary},
		{Coord(-1, 5), Exterior},
		{Coord(20, 5), Exterior},
	}
	for _, c := range cases {
		if got := loc.Locate(c.p); got != c.want {
			t.Errorf("%v: want %v, have %v", c.p, c.want, got)
		}
		// The indexed locator must agree with the plain one.
		if got := LocatePointInArea(c.p, holed); got != loc.Locate(c.p) {
			t.Errorf("%v: locators disagree: %v vs %v", c.p, got, loc.Locate(c.p))
		}
	}
}

func TestIntersectSegments(t *testing.T) {
	// Proper crossing.
	si := intersectSegments(Coord(0, 0), Coord(2, 2), Coord(0, 2), Coord(2, 0))
	if si.Kind != pointIntersection || !si.Proper {
		t.Fatalf("crossing: %+v", si)
	}
	if !si.Pt.Equals(Coord(1, 1)) {
		t.Errorf("crossing point: %v", si.Pt)
	}

	// An endpoint on the other segment's interior is not proper, and
	// the reported point is the exact input vertex.
	si = intersectSegments(Coord(0, 0), Coord(4, 0), Coord(2, 0), Coord(2, 3))
	if si.Kind != pointIntersection || si.Proper {
		t.Fatalf("touch: %+v", si)
	}
	if si.Pt != Coord(2, 0) {
		t.Errorf("touch point not exact: %v", si.Pt)
	}

	// Collinear overlap reports the shared parameter interval on the
	// first segment.
	si = intersectSegments(Coord(0, 0), Coord(4, 0), Coord(2, 0), Coord(6, 0))
	if si.Kind != collinearIntersection {
		t.Fatalf("overlap: %+v", si)
	}
	if si.T0 != 0.5 || si.T1 != 1 {
		t.Errorf("overlap interval: [%g, %g]", si.T0, si.T1)
	}

	// Parallel but offset segments miss.
	si = intersectSegments(Coord(0, 0), Coord(4, 0), Coord(0, 1), Coord(4, 1))
	if si.Kind != noIntersection {
		t.Fatalf("parallel: %+v", si)
	}

	// Segments on crossing support lines can still miss.
	si = intersectSegments(Coord(0, 0), Coord(1, 1), Coord(5, 6), Coord(6, 5))
	if si.Kind != noIntersection {
		t.Fatalf("short segments: %+v", si)
	}
}

func TestFastSegmentSetIntersectionFinder(t *testing.T) {
	finder := NewFastSegmentSetIntersectionFinder(square(t, 0, 0, 10))

	if !finder.Intersects(mustLine(t, -5, 5, 15, 5)) {
		t.Error("crossing line not detected")
	}
	if finder.Intersects(mustLine(t, 2, 2, 8, 8)) {
		t.Error("interior line reported as intersecting the linework")
	}
	if finder.Intersects(mustLine(t, 20, 20, 30, 30)) {
		t.Error("distant line reported as intersecting")
	}

	// A line poking through the boundary has a proper crossing; one
	// ending on the boundary has only a non-proper contact.
	det := &SegmentIntersectionDetector{FindProper: true, FindAllTypes: true}
	finder.Detect(mustLine(t, 5, 5, 15, 5), det)
	if !det.HasProperIntersection() {
		t.Error("no proper intersection for a through line")
	}

	det = &SegmentIntersectionDetector{FindProper: true, FindAllTypes: true}
	finder.Detect(mustLine(t, 5, 5, 10, 5), det)
	if det.HasProperIntersection() {
		t.Error("proper intersection for a line ending on the boundary")
	}
	if !det.HasNonProperIntersection() {
		t.Error("no contact for a line ending on the boundary")
	}
}
