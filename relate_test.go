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

func TestRelate(t *testing.T) {
	square10 := square(t, 0, 0, 10)

	cases := []struct {
		name string
		a, b Geom
		want string
	}{
		{
			"equal points",
			tf.CreatePoint(Coord(1, 1)), tf.CreatePoint(Coord(1, 1)),
			"0FFFFFFF2",
		},
		{
			"disjoint points",
			tf.CreatePoint(Coord(0, 0)), tf.CreatePoint(Coord(1, 1)),
			"FF0FFF0F2",
		},
		{
			"crossing lines",
			mustLine(t, 0, 0, 2, 2), mustLine(t, 0, 2, 2, 0),
			"0F1FF0102",
		},
		{
			"equal lines",
			mustLine(t, 0, 0, 10, 10), mustLine(t, 0, 0, 10, 10),
			"1FFF0FFF2",
		},
		{
			"point in polygon",
			square10, tf.CreatePoint(Coord(5, 5)),
			"0F2FF1FF2",
		},
		{
			"point on polygon boundary",
			square10, tf.CreatePoint(Coord(0, 5)),
			"FF20F1FF2",
		},
		{
			"line in polygon",
			square10, mustLine(t, 2, 2, 8, 8),
			"102FF1FF2",
		},
		{
			"line crossing polygon",
			mustLine(t, -5, 5, 15, 5), square10,
			"101FF0212",
		},
		{
			"overlapping polygons",
			square(t, 0, 0, 2), square(t, 1, 1, 2),
			"212101212",
		},
		{
			"edge-adjacent polygons",
			square(t, 0, 0, 2), square(t, 2, 0, 2),
			"FF2F11212",
		},
		{
			"corner-adjacent polygons",
			square(t, 0, 0, 1), square(t, 1, 1, 1),
			"FF2F01212",
		},
		{
			"contained polygon",
			square10, square(t, 2, 2, 6),
			"212FF1FF2",
		},
		{
			"disjoint polygons",
			square(t, 0, 0, 1), square(t, 5, 5, 1),
			"FF2FF1212",
		},
		{
			"empty point and polygon",
			tf.CreateEmptyPoint(), square10,
			"FFFFFF212",
		},
		{
			// A standalone ring is a closed curve with an empty
			// boundary, so a point on it meets its interior.
			"ring and point on it",
			mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), tf.CreatePoint(Coord(5, 0)),
			"0F1FFFFF2",
		},
		{
			"ring enclosing a point",
			mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0), tf.CreatePoint(Coord(5, 5)),
			"FF1FFF0F2",
		},
		{
			"polygon and its own ring",
			square10, mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
			"FF21FFFF2",
		},
	}
	for _, c := range cases {
		im, err := Relate(c.a, c.b)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got := im.String(); got != c.want {
			t.Errorf("%s: want %s, have %s", c.name, c.want, got)
		}
	}
}

func TestRelateGeometryCollection(t *testing.T) {
	gc := tf.CreateGeometryCollection(tf.CreatePoint(Coord(0, 0)))
	pt := tf.CreatePoint(Coord(0, 0))
	if _, err := Relate(gc, pt); err != ErrGeometryCollection {
		t.Errorf("collection a: want ErrGeometryCollection, got %v", err)
	}
	if _, err := Relate(pt, gc); err != ErrGeometryCollection {
		t.Errorf("collection b: want ErrGeometryCollection, got %v", err)
	}
}

func TestRelateMultiLineStringBoundary(t *testing.T) {
	// The mod-2 rule merges the shared endpoint into the interior, so
	// a point there relates as an interior point.
	ml, err := tf.CreateMultiLineString(
		mustLine(t, 0, 0, 1, 1),
		mustLine(t, 1, 1, 2, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	im, err := Relate(ml, tf.CreatePoint(Coord(1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if got := im.String(); got != "0F1FF0FF2" {
		t.Errorf("want 0F1FF0FF2, have %s", got)
	}
}
