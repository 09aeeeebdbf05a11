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

// matrixOf builds an intersection matrix from its 9-character string
// form.
func matrixOf(t *testing.T, s string) *IntersectionMatrix {
	t.Helper()
	if len(s) != 9 {
		t.Fatalf("bad matrix literal %q", s)
	}
	im := newIntersectionMatrix()
	for i := 0; i < 9; i++ {
		var d Dimension
		switch s[i] {
		case 'F':
			d = DimFalse
		case '0':
			d = DimPoint
		case '1':
			d = DimLine
		case '2':
			d = DimArea
		default:
			t.Fatalf("bad matrix literal %q", s)
		}
		im.Set(Location(i/3), Location(i%3), d)
	}
	return im
}

func TestMatrixString(t *testing.T) {
	for _, s := range []string{"FFFFFFFFF", "212101212", "0F1FF0102"} {
		if got := matrixOf(t, s).String(); got != s {
			t.Errorf("want %s, have %s", s, got)
		}
	}
}

func TestMatrixTranspose(t *testing.T) {
	im := matrixOf(t, "102FF1FF2").Transpose()
	if got := im.String(); got != "1FF0FF212" {
		t.Errorf("transpose: want 1FF0FF212, have %s", got)
	}
}

func TestMatrixMatches(t *testing.T) {
	cases := []struct {
		matrix, pattern string
		want            bool
	}{
		{"212101212", "*********", true},
		{"212101212", "T*T***T**", true},
		{"212101212", "212101212", true},
		{"212101212", "FF*FF****", false},
		{"0F1FF0102", "0********", true},
		{"0F1FF0102", "1********", false},
		{"FF2F11212", "FT*******", false},
		{"FF2F11212", "F**T*****", true},
		{"102FF1FF2", "T*****FF*", true},
	}
	for _, c := range cases {
		got, err := matrixOf(t, c.matrix).Matches(c.pattern)
		if err != nil {
			t.Fatalf("%s ~ %s: %v", c.matrix, c.pattern, err)
		}
		if got != c.want {
			t.Errorf("%s ~ %s: want %v, have %v", c.matrix, c.pattern, c.want, got)
		}
	}

	if _, err := matrixOf(t, "FFFFFFFFF").Matches("TTTT"); err == nil {
		t.Error("short pattern accepted")
	}
	if _, err := matrixOf(t, "FFFFFFFFF").Matches("TTTTTTTTX"); err == nil {
		t.Error("bad pattern character accepted")
	}
}

func TestMatrixPredicates(t *testing.T) {
	type check struct {
		matrix     string
		dimA, dimB Dimension
		name       string
		fn         func(*IntersectionMatrix, Dimension, Dimension) bool
		want       bool
	}

	touches := func(im *IntersectionMatrix, a, b Dimension) bool { return im.IsTouches(a, b) }
	crosses := func(im *IntersectionMatrix, a, b Dimension) bool { return im.IsCrosses(a, b) }
	overlaps := func(im *IntersectionMatrix, a, b Dimension) bool { return im.IsOverlaps(a, b) }
	equals := func(im *IntersectionMatrix, a, b Dimension) bool { return im.IsEquals(a, b) }
	contains := func(im *IntersectionMatrix, _, _ Dimension) bool { return im.IsContains() }
	within := func(im *IntersectionMatrix, _, _ Dimension) bool { return im.IsWithin() }
	covers := func(im *IntersectionMatrix, _, _ Dimension) bool { return im.IsCovers() }
	disjoint := func(im *IntersectionMatrix, _, _ Dimension) bool { return im.IsDisjoint() }

	cases := []check{
		{"FF0FFF0F2", DimPoint, DimPoint, "disjoint", disjoint, true},
		{"0FFFFFFF2", DimPoint, DimPoint, "disjoint", disjoint, false},
		{"0FFFFFFF2", DimPoint, DimPoint, "equals", equals, true},
		{"1FFF0FFF2", DimLine, DimLine, "equals", equals, true},
		{"FF2F11212", DimArea, DimArea, "touches", touches, true},
		{"212101212", DimArea, DimArea, "touches", touches, false},
		{"FF0FFF0F2", DimPoint, DimPoint, "touches", touches, false},
		{"0F1FF0102", DimLine, DimLine, "crosses", crosses, true},
		{"1F1FF0102", DimLine, DimLine, "crosses", crosses, false},
		{"101FF0212", DimLine, DimArea, "crosses", crosses, true},
		{"212101212", DimArea, DimArea, "overlaps", overlaps, true},
		{"1F1FF0102", DimLine, DimLine, "overlaps", overlaps, true},
		{"0F1FF0102", DimLine, DimLine, "overlaps", overlaps, false},
		{"212FF1FF2", DimArea, DimArea, "contains", contains, true},
		{"0F2FF1FF2", DimArea, DimPoint, "contains", contains, true},
		{"FF20F1FF2", DimArea, DimPoint, "contains", contains, false},
		{"FF20F1FF2", DimArea, DimPoint, "covers", covers, true},
		{"212101212", DimArea, DimArea, "within", within, false},
		{"2FF1FF212", DimArea, DimArea, "within", within, true},
	}
	for _, c := range cases {
		im := matrixOf(t, c.matrix)
		if got := c.fn(im, c.dimA, c.dimB); got != c.want {
			t.Errorf("%s %s: want %v, have %v", c.matrix, c.name, c.want, got)
		}
	}
}
