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

import "fmt"

// Location classifies a point relative to a geometry.
type Location int

// The three point sets a geometry partitions the plane into.
const (
	Interior Location = iota
	Boundary
	Exterior
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	}
	return "Unknown"
}

// IntersectionMatrix is a DE-9IM matrix: for each pairing of
// {interior, boundary, exterior} of two geometries A and B it records
// the dimension of the intersection of the two point sets, or
// DimFalse for an empty intersection. Rows index A, columns index B.
type IntersectionMatrix struct {
	m [3][3]Dimension
}

func newIntersectionMatrix() *IntersectionMatrix {
	im := &IntersectionMatrix{}
	for i := range im.m {
		for j := range im.m[i] {
			im.m[i][j] = DimFalse
		}
	}
	return im
}

// Get returns the dimension of the intersection of the a feature of A
// with the b feature of B.
func (im *IntersectionMatrix) Get(a, b Location) Dimension { return im.m[a][b] }

// Set records the dimension of an intersection.
func (im *IntersectionMatrix) Set(a, b Location, dim Dimension) { im.m[a][b] = dim }

// SetAtLeast raises an entry to at least dim.
func (im *IntersectionMatrix) SetAtLeast(a, b Location, dim Dimension) {
	if im.m[a][b] < dim {
		im.m[a][b] = dim
	}
}

// Transpose swaps the roles of the two geometries, returning im.
func (im *IntersectionMatrix) Transpose() *IntersectionMatrix {
	im.m[0][1], im.m[1][0] = im.m[1][0], im.m[0][1]
	im.m[0][2], im.m[2][0] = im.m[2][0], im.m[0][2]
	im.m[1][2], im.m[2][1] = im.m[2][1], im.m[1][2]
	return im
}

// String renders the matrix as a 9-character DE-9IM string in
// row-major order.
func (im *IntersectionMatrix) String() string {
	b := make([]byte, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b = append(b, dimensionSymbol(im.m[i][j]))
		}
	}
	return string(b)
}

func dimensionSymbol(d Dimension) byte {
	switch d {
	case DimFalse:
		return 'F'
	case DimPoint:
		return '0'
	case DimLine:
		return '1'
	case DimArea:
		return '2'
	}
	return '?'
}

// Matches reports whether im matches a 9-character DE-9IM pattern
// over the alphabet {T, F, *, 0, 1, 2}.
func (im *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, fmt.Errorf("planar: DE-9IM pattern must have 9 characters: %q", pattern)
	}
	for i := 0; i < 9; i++ {
		if !matchesDimension(im.m[i/3][i%3], pattern[i]) {
			if err := validPatternChar(pattern[i]); err != nil {
				return false, err
			}
			return false, nil
		}
	}
	return true, nil
}

func validPatternChar(c byte) error {
	switch c {
	case 'T', 'F', '*', '0', '1', '2':
		return nil
	}
	return fmt.Errorf("planar: invalid DE-9IM pattern character %q", c)
}

func matchesDimension(d Dimension, c byte) bool {
	switch c {
	case '*':
		return true
	case 'T':
		return d >= DimPoint
	case 'F':
		return d == DimFalse
	case '0':
		return d == DimPoint
	case '1':
		return d == DimLine
	case '2':
		return d == DimArea
	}
	return false
}

func isTrue(d Dimension) bool { return d >= DimPoint }

// IsDisjoint reports whether the interiors and boundaries of the two
// geometries share no points.
func (im *IntersectionMatrix) IsDisjoint() bool {
	return im.m[Interior][Interior] == DimFalse &&
		im.m[Interior][Boundary] == DimFalse &&
		im.m[Boundary][Interior] == DimFalse &&
		im.m[Boundary][Boundary] == DimFalse
}

// IsIntersects is the negation of IsDisjoint.
func (im *IntersectionMatrix) IsIntersects() bool { return !im.IsDisjoint() }

// IsTouches reports boundary-only contact. It is symmetric, and false
// for two puntal operands (points have no boundary to touch).
func (im *IntersectionMatrix) IsTouches(dimA, dimB Dimension) bool {
	if dimA == DimPoint && dimB == DimPoint {
		return false
	}
	return im.m[Interior][Interior] == DimFalse &&
		(isTrue(im.m[Interior][Boundary]) ||
			isTrue(im.m[Boundary][Interior]) ||
			isTrue(im.m[Boundary][Boundary]))
}

// IsCrosses reports whether the geometries have some but not all
// interior points in common, for the dimension pairings where crosses
// is defined. It is not symmetric for mixed dimensions.
func (im *IntersectionMatrix) IsCrosses(dimA, dimB Dimension) bool {
	if (dimA == DimPoint && dimB == DimLine) ||
		(dimA == DimPoint && dimB == DimArea) ||
		(dimA == DimLine && dimB == DimArea) {
		return isTrue(im.m[Interior][Interior]) && isTrue(im.m[Interior][Exterior])
	}
	if (dimA == DimLine && dimB == DimPoint) ||
		(dimA == DimArea && dimB == DimPoint) ||
		(dimA == DimArea && dimB == DimLine) {
		return isTrue(im.m[Interior][Interior]) && isTrue(im.m[Exterior][Interior])
	}
	if dimA == DimLine && dimB == DimLine {
		return im.m[Interior][Interior] == DimPoint
	}
	return false
}

// IsWithin reports whether A lies in B.
func (im *IntersectionMatrix) IsWithin() bool {
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse
}

// IsContains reports whether B lies in A.
func (im *IntersectionMatrix) IsContains() bool {
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsOverlaps reports whether the geometries share some but not all
// points, with equal dimensions.
func (im *IntersectionMatrix) IsOverlaps(dimA, dimB Dimension) bool {
	if (dimA == DimPoint && dimB == DimPoint) || (dimA == DimArea && dimB == DimArea) {
		return isTrue(im.m[Interior][Interior]) &&
			isTrue(im.m[Interior][Exterior]) &&
			isTrue(im.m[Exterior][Interior])
	}
	if dimA == DimLine && dimB == DimLine {
		return im.m[Interior][Interior] == DimLine &&
			isTrue(im.m[Interior][Exterior]) &&
			isTrue(im.m[Exterior][Interior])
	}
	return false
}

// IsEquals reports whether the geometries cover exactly the same
// point set.
func (im *IntersectionMatrix) IsEquals(dimA, dimB Dimension) bool {
	if dimA != dimB {
		return false
	}
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsCovers reports whether every point of B is a point of A.
func (im *IntersectionMatrix) IsCovers() bool {
	hasPointInCommon := isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
	return hasPointInCommon &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsCoveredBy reports whether every point of A is a point of B.
func (im *IntersectionMatrix) IsCoveredBy() bool {
	hasPointInCommon := isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
	return hasPointInCommon &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse
}
