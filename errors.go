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

import "errors"

// Construction validation errors. Construction fails fast: no
// partially constructed geometry is ever returned alongside one of
// these.
var (
	// ErrLineStringPoints is returned when a LineString is built from
	// exactly one vertex.
	ErrLineStringPoints = errors.New("planar: point array must contain 0 or >1 elements")

	// ErrRingPoints is returned when a LinearRing has 1 to 3 distinct
	// vertices.
	ErrRingPoints = errors.New("planar: point array must contain 0 or >3 elements")

	// ErrRingNotClosed is returned when a LinearRing's first and last
	// vertices differ.
	ErrRingNotClosed = errors.New("planar: first and last points must be equal")

	// ErrNilElement is returned when a collection or hole list
	// contains a nil geometry.
	ErrNilElement = errors.New("planar: geometry list must not contain nil elements")

	// ErrHolesWithEmptyShell is returned when a Polygon has an empty
	// exterior ring but non-empty interior rings.
	ErrHolesWithEmptyShell = errors.New("planar: exterior ring is empty but interior rings are not")

	// ErrBadCoordinate is returned for coordinate input that is not a
	// 2- or 3-element ordinate sequence.
	ErrBadCoordinate = errors.New("planar: coordinate must have 2 or 3 ordinates")
)

// Unsupported-operation errors.
var (
	// ErrGeometryCollection is returned by operations that are not
	// defined for heterogeneous GeometryCollection arguments.
	ErrGeometryCollection = errors.New("planar: operation does not support GeometryCollection arguments")

	// ErrOverlayUnsupported is returned by set operations on operand
	// combinations the overlay engine cannot resolve exactly.
	ErrOverlayUnsupported = errors.New("planar: overlay is not supported for this operand combination")

	// ErrEmptyGeometry is returned by operations that are undefined
	// for empty geometries.
	ErrEmptyGeometry = errors.New("planar: operation is undefined for an empty geometry")
)
