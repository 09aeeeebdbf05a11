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

// Package planar implements the OGC Simple Features geometry model for
// 2D geometries, the DE-9IM topological predicates built on it, and
// the supporting computational-geometry algorithms. The prep
// subpackage accelerates repeated predicate evaluation against a
// fixed geometry.
package planar

// GeomType identifies one of the concrete geometry variants. The set
// of variants is closed: code dispatching on GeomType may treat an
// unknown value as a programming error.
type GeomType int

// The concrete geometry variants.
const (
	TypePoint GeomType = iota
	TypeLineString
	TypeLinearRing
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

func (t GeomType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypeLinearRing:
		return "LinearRing"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	}
	return "Unknown"
}

// Dimension is the topological dimension of a geometry or of a
// DE-9IM intersection matrix entry.
type Dimension int

// Dimension values. DimFalse marks an empty intersection (or an
// empty geometry).
const (
	DimFalse Dimension = iota - 1
	DimPoint
	DimLine
	DimArea
)

// Geom is a 2D geometry. All concrete variants are constructed
// through a GeometryFactory; the factory reference they carry is
// shared, not owned.
//
// Geometries are treated as immutable by every algorithm in this
// package. The only sanctioned mutation is SetCoords on a LineString
// (and, through it, Normalize), which invalidates cached state via
// GeometryChanged. Mutating a geometry concurrently with predicate
// evaluation against it is undefined behavior.
type Geom interface {
	// Type returns the variant discriminant used for dispatch.
	Type() GeomType

	// Dimension returns 0, 1 or 2 for puntal, lineal and polygonal
	// geometries; the dimension of a heterogeneous collection is the
	// maximum dimension of its parts.
	Dimension() Dimension

	// BoundaryDimension returns the dimension of the geometry
	// boundary under the OGC mod-2 rule.
	BoundaryDimension() Dimension

	// Envelope returns the bounding box of the geometry, computing
	// and caching it on first use. The envelope of an empty geometry
	// is null.
	Envelope() *Envelope

	IsEmpty() bool

	// NumPoints returns the number of vertices.
	NumPoints() int

	// NumGeoms returns the number of parts in a collection, or 1.
	NumGeoms() int

	// GeomN returns the i'th part of a collection, or the geometry
	// itself for atomic variants.
	GeomN(i int) Geom

	// Coord returns the first vertex, or nil for an empty geometry.
	Coord() *Coordinate

	// Clone returns a deep copy sharing no coordinate storage.
	Clone() Geom

	// Factory returns the factory that created the geometry.
	Factory() *GeometryFactory

	// Boundary returns the combinatorial boundary of the geometry.
	Boundary() Geom

	// Area returns the area of polygonal geometries and 0 otherwise.
	Area() float64

	// Length returns the length of lineal geometries, the perimeter
	// of polygonal ones, and 0 otherwise.
	Length() float64

	computeEnvelope() *Envelope
	envelopeChanged()
	compareToSameClass(other Geom) int
}

// classSortIndex is the fixed cross-variant ordering used by Compare.
func classSortIndex(t GeomType) int {
	switch t {
	case TypePoint:
		return 0
	case TypeMultiPoint:
		return 1
	case TypeLineString:
		return 2
	case TypeLinearRing:
		return 3
	case TypeMultiLineString:
		return 4
	case TypePolygon:
		return 5
	case TypeMultiPolygon:
		return 6
	case TypeGeometryCollection:
		return 7
	}
	panic("planar: unrecognized geometry variant")
}

// Compare imposes a total order over geometries: first by variant
// class, then empty before non-empty, then a deterministic
// within-class ordering.
func Compare(a, b Geom) int {
	if a == b {
		return 0
	}
	if d := classSortIndex(a.Type()) - classSortIndex(b.Type()); d != 0 {
		return d
	}
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return -1
	case bEmpty:
		return 1
	}
	return a.compareToSameClass(b)
}

// GeometryChanged notifies g and every component geometry below it
// that coordinates have been mutated, discarding cached envelopes.
func GeometryChanged(g Geom) {
	EachComponent(g, func(c Geom) {
		c.envelopeChanged()
	})
}

// GetEnvelope returns the envelope of g as a geometry, built by g's
// factory.
func GetEnvelope(g Geom) Geom {
	return g.Factory().ToGeometry(g.Envelope())
}

func hasNilElements(geoms []Geom) bool {
	for _, g := range geoms {
		if g == nil {
			return true
		}
	}
	return false
}

func hasNonEmptyElements(geoms []Geom) bool {
	for _, g := range geoms {
		if !g.IsEmpty() {
			return true
		}
	}
	return false
}
