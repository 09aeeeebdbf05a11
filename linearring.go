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

// LinearRing is a LineString that is closed (first and last vertices
// equal) and has either 0 or at least 4 vertices. Repeated
// consecutive vertices are removed at construction. Either
// orientation is allowed.
type LinearRing struct {
	LineString
}

// Type returns TypeLinearRing.
func (r *LinearRing) Type() GeomType { return TypeLinearRing }

// BoundaryDimension returns DimFalse: rings are always closed.
func (r *LinearRing) BoundaryDimension() Dimension { return DimFalse }

// IsClosed returns true: an empty ring is closed by convention.
func (r *LinearRing) IsClosed() bool {
	if r.IsEmpty() {
		return true
	}
	return r.coords[0].Equals(r.coords[len(r.coords)-1])
}

// Clone returns a deep copy of r.
func (r *LinearRing) Clone() Geom {
	return &LinearRing{LineString{
		geomBase: geomBase{factory: r.factory},
		coords:   cloneCoords(r.coords),
	}}
}

// Reverse returns a new LinearRing with the vertex order reversed.
func (r *LinearRing) Reverse() *LinearRing {
	coords := cloneCoords(r.coords)
	reverseCoords(coords)
	return &LinearRing{LineString{
		geomBase: geomBase{factory: r.factory},
		coords:   coords,
	}}
}

// GeomN returns r.
func (r *LinearRing) GeomN(int) Geom { return r }
