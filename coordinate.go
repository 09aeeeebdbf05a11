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

import "math"

// Coordinate is a single location on the plane, with an optional
// third ordinate. Comparison and equality only consider X and Y,
// and are exact: no tolerance is ever applied.
type Coordinate struct {
	X, Y, Z float64
	HasZ    bool
}

// Coord creates a 2D coordinate.
func Coord(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// CoordZ creates a 3D coordinate.
func CoordZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, HasZ: true}
}

// Equals reports whether c and c2 are at the same 2D location.
func (c Coordinate) Equals(c2 Coordinate) bool {
	return c.X == c2.X && c.Y == c2.Y
}

// Compare orders coordinates lexicographically, X first and then Y.
func (c Coordinate) Compare(c2 Coordinate) int {
	switch {
	case c.X < c2.X:
		return -1
	case c.X > c2.X:
		return 1
	case c.Y < c2.Y:
		return -1
	case c.Y > c2.Y:
		return 1
	}
	return 0
}

// Distance returns the 2D euclidean distance between c and c2.
func (c Coordinate) Distance(c2 Coordinate) float64 {
	return math.Hypot(c2.X-c.X, c2.Y-c.Y)
}

func (c Coordinate) isFinite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// cloneCoords returns a copy of cs that shares no storage with it.
func cloneCoords(cs []Coordinate) []Coordinate {
	if cs == nil {
		return nil
	}
	o := make([]Coordinate, len(cs))
	copy(o, cs)
	return o
}

// removeRepeatedCoords drops consecutive duplicate locations.
func removeRepeatedCoords(cs []Coordinate) []Coordinate {
	if len(cs) == 0 {
		return nil
	}
	o := make([]Coordinate, 0, len(cs))
	o = append(o, cs[0])
	for _, c := range cs[1:] {
		if !c.Equals(o[len(o)-1]) {
			o = append(o, c)
		}
	}
	return o
}

// minCoordIndex returns the index of the lexicographically smallest
// coordinate in cs.
func minCoordIndex(cs []Coordinate) int {
	min := 0
	for i, c := range cs {
		if c.Compare(cs[min]) < 0 {
			min = i
		}
	}
	return min
}

// scrollCoords rotates cs in place so that the coordinate at index
// first becomes the first element.
func scrollCoords(cs []Coordinate, first int) {
	if first <= 0 {
		return
	}
	o := make([]Coordinate, 0, len(cs))
	o = append(o, cs[first:]...)
	o = append(o, cs[:first]...)
	copy(cs, o)
}

// reverseCoords reverses cs in place.
func reverseCoords(cs []Coordinate) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}

func compareCoords(a, b []Coordinate) int {
	if len(a) > len(b) {
		return 1
	}
	if len(a) < len(b) {
		return -1
	}
	for i := range a {
		if cmp := a[i].Compare(b[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}
