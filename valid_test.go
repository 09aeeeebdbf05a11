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
	"testing"
)

func TestIsSimple(t *testing.T) {
	cases := []struct {
		name string
		g    Geom
		want bool
	}{
		{"point", tf.CreatePoint(Coord(1, 1)), true},
		{"plain line", mustLine(t, 0, 0, 1, 1, 2, 0), true},
		{"closed line", mustLine(t, 0, 0, 1, 0, 1, 1, 0, 0), true},
		{"self-crossing line", mustLine(t, 0, 0, 2, 2, 0, 2, 2, 0), false},
		{"self-touching line", mustLine(t, 0, 0, 4, 0, 4, 4, 2, 0, 2, -4), false},
		{"polygon", square(t, 0, 0, 1), true},
		{"distinct multipoint", multiPoint(t, 0, 0, 1, 1), true},
		{"repeated multipoint", multiPoint(t, 0, 0, 1, 1, 0, 0), false},
	}
	for _, c := range cases {
		got, err := IsSimple(c.g)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}

	elbow, err := tf.CreateMultiLineString(
		mustLine(t, 0, 0, 1, 1),
		mustLine(t, 1, 1, 2, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	got, err := IsSimple(elbow)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("endpoint-joined lines are not simple")
	}

	crossing, err := tf.CreateMultiLineString(
		mustLine(t, 0, 0, 2, 2),
		mustLine(t, 0, 2, 2, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	got, err = IsSimple(crossing)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("crossing lines are simple")
	}

	if _, err := IsSimple(tf.CreateGeometryCollection(tf.CreatePoint(Coord(0, 0)))); err != ErrGeometryCollection {
		t.Errorf("collection: want ErrGeometryCollection, got %v", err)
	}
}

func TestIsValid(t *testing.T) {
	holed, err := tf.CreatePolygon(
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		mustRing(t, 2, 2, 8, 2, 8, 8, 2, 8, 2, 2),
	)
	if err != nil {
		t.Fatal(err)
	}
	escaped, err := tf.CreatePolygon(
		mustRing(t, 0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		mustRing(t, 20, 20, 22, 20, 22, 22, 20, 22, 20, 20),
	)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		g    Geom
		want bool
	}{
		{"square", square(t, 0, 0, 1), true},
		{"holed polygon", holed, true},
		{"bowtie", mustPoly(t, 0, 0, 4, 4, 0, 4, 4, 0, 0, 0), false},
		{"hole outside shell", escaped, false},
		{"empty polygon", mustPoly(t), true},
		{"point", tf.CreatePoint(Coord(0, 0)), true},
		{"nan point", tf.CreatePoint(Coord(math.NaN(), 0)), false},
		{"inf line", mustLine(t, 0, 0, math.Inf(1), 1), false},
	}
	for _, c := range cases {
		if got := IsValid(c.g); got != c.want {
			t.Errorf("%s: want %v, have %v", c.name, c.want, got)
		}
	}
}
