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

// Disjoint reports whether a and b share no points.
func Disjoint(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return true, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsDisjoint(), nil
}

// Intersects reports whether a and b share at least one point.
func Intersects(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsIntersects(), nil
}

// Touches reports whether a and b meet only along their boundaries.
func Touches(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsTouches(a.Dimension(), b.Dimension()), nil
}

// Crosses reports whether a and b share some but not all interior
// points, with the shared part of lower dimension than either
// operand allows.
func Crosses(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCrosses(a.Dimension(), b.Dimension()), nil
}

// Contains reports whether b lies in a, with at least one point of
// b's interior in a's interior.
func Contains(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsContains(), nil
}

// Within reports whether a lies in b. It is the converse of Contains.
func Within(a, b Geom) (bool, error) {
	return Contains(b, a)
}

// Covers reports whether every point of b is a point of a.
func Covers(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCovers(), nil
}

// CoveredBy reports whether every point of a is a point of b. It is
// the converse of Covers.
func CoveredBy(a, b Geom) (bool, error) {
	return Covers(b, a)
}

// Overlaps reports whether a and b share some but not all points and
// the shared part has the operands' common dimension.
func Overlaps(a, b Geom) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsOverlaps(a.Dimension(), b.Dimension()), nil
}

// Equals reports whether a and b cover exactly the same point set.
// Two empty geometries are equal regardless of type.
func Equals(a, b Geom) (bool, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty(), nil
	}
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsEquals(a.Dimension(), b.Dimension()), nil
}

// RelatePattern reports whether the DE-9IM matrix of a and b matches
// the given 9-character pattern.
func RelatePattern(a, b Geom, pattern string) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.Matches(pattern)
}
