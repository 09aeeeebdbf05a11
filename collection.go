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

// GeometryCollection is an ordered sequence of possibly heterogeneous
// geometries.
type GeometryCollection struct {
	geomBase
	geoms []Geom
}

// Type returns TypeGeometryCollection.
func (gc *GeometryCollection) Type() GeomType { return TypeGeometryCollection }

// Dimension returns the maximum dimension over the parts.
func (gc *GeometryCollection) Dimension() Dimension {
	dim := DimFalse
	for _, g := range gc.geoms {
		if d := g.Dimension(); d > dim {
			dim = d
		}
	}
	return dim
}

// BoundaryDimension returns the maximum boundary dimension over the
// parts.
func (gc *GeometryCollection) BoundaryDimension() Dimension {
	dim := DimFalse
	for _, g := range gc.geoms {
		if d := g.BoundaryDimension(); d > dim {
			dim = d
		}
	}
	return dim
}

// IsEmpty reports whether every part is empty.
func (gc *GeometryCollection) IsEmpty() bool {
	for _, g := range gc.geoms {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// NumPoints returns the total vertex count over the parts.
func (gc *GeometryCollection) NumPoints() int {
	n := 0
	for _, g := range gc.geoms {
		n += g.NumPoints()
	}
	return n
}

// NumGeoms returns the number of parts.
func (gc *GeometryCollection) NumGeoms() int { return len(gc.geoms) }

// GeomN returns the i'th part.
func (gc *GeometryCollection) GeomN(i int) Geom { return gc.geoms[i] }

// Coord returns the first coordinate of the first non-empty part, or
// nil.
func (gc *GeometryCollection) Coord() *Coordinate {
	for _, g := range gc.geoms {
		if c := g.Coord(); c != nil {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of gc.
func (gc *GeometryCollection) Clone() Geom {
	return &GeometryCollection{
		geomBase: geomBase{factory: gc.factory},
		geoms:    cloneGeoms(gc.geoms),
	}
}

// Boundary is not defined for heterogeneous collections and panics if
// called: reaching it indicates a programming error, not a data
// condition.
func (gc *GeometryCollection) Boundary() Geom {
	panic("planar: Boundary is not supported for GeometryCollection")
}

// Area returns the summed area of the parts.
func (gc *GeometryCollection) Area() float64 {
	a := 0.0
	for _, g := range gc.geoms {
		a += g.Area()
	}
	return a
}

// Length returns the summed length of the parts.
func (gc *GeometryCollection) Length() float64 {
	l := 0.0
	for _, g := range gc.geoms {
		l += g.Length()
	}
	return l
}

// Envelope returns the (cached) bounding box of gc.
func (gc *GeometryCollection) Envelope() *Envelope {
	if gc.env == nil {
		gc.env = gc.computeEnvelope()
	}
	return gc.env
}

func (gc *GeometryCollection) computeEnvelope() *Envelope {
	env := NewEnvelope()
	for _, g := range gc.geoms {
		env.ExpandToInclude(g.Envelope())
	}
	return env
}

func (gc *GeometryCollection) compareToSameClass(other Geom) int {
	return compareGeomSlices(gc.geoms, collectionParts(other))
}

func collectionParts(g Geom) []Geom {
	switch c := g.(type) {
	case *GeometryCollection:
		return c.geoms
	case *MultiPoint:
		return c.geoms
	case *MultiLineString:
		return c.geoms
	case *MultiPolygon:
		return c.geoms
	}
	parts := make([]Geom, g.NumGeoms())
	for i := range parts {
		parts[i] = g.GeomN(i)
	}
	return parts
}

func compareGeomSlices(a, b []Geom) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if cmp := Compare(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func cloneGeoms(geoms []Geom) []Geom {
	o := make([]Geom, len(geoms))
	for i, g := range geoms {
		o[i] = g.Clone()
	}
	return o
}

// MultiPoint is a collection of Points.
type MultiPoint struct {
	GeometryCollection
}

// Type returns TypeMultiPoint.
func (mp *MultiPoint) Type() GeomType { return TypeMultiPoint }

// Dimension returns 0.
func (mp *MultiPoint) Dimension() Dimension { return DimPoint }

// BoundaryDimension returns DimFalse.
func (mp *MultiPoint) BoundaryDimension() Dimension { return DimFalse }

// Boundary returns an empty GeometryCollection.
func (mp *MultiPoint) Boundary() Geom {
	return mp.factory.CreateGeometryCollection()
}

// Clone returns a deep copy of mp.
func (mp *MultiPoint) Clone() Geom {
	return &MultiPoint{GeometryCollection{
		geomBase: geomBase{factory: mp.factory},
		geoms:    cloneGeoms(mp.geoms),
	}}
}

// GeomN returns the i'th part.
func (mp *MultiPoint) GeomN(i int) Geom { return mp.geoms[i] }

// MultiLineString is a collection of LineStrings.
type MultiLineString struct {
	GeometryCollection
}

// Type returns TypeMultiLineString.
func (ml *MultiLineString) Type() GeomType { return TypeMultiLineString }

// Dimension returns 1.
func (ml *MultiLineString) Dimension() Dimension { return DimLine }

// BoundaryDimension returns DimFalse if every part is closed, and
// DimPoint otherwise.
func (ml *MultiLineString) BoundaryDimension() Dimension {
	for _, g := range ml.geoms {
		if !g.(interface{ IsClosed() bool }).IsClosed() {
			return DimPoint
		}
	}
	return DimFalse
}

// IsClosed reports whether every part is closed.
func (ml *MultiLineString) IsClosed() bool {
	return ml.BoundaryDimension() == DimFalse
}

// Boundary returns the mod-2 boundary: the endpoints that occur an
// odd number of times across all parts, as a MultiPoint.
func (ml *MultiLineString) Boundary() Geom {
	pts := boundaryPointsOf(ml)
	points := make([]*Point, len(pts))
	for i, c := range pts {
		points[i] = ml.factory.CreatePoint(c)
	}
	mp, _ := ml.factory.CreateMultiPoint(points...)
	return mp
}

// Clone returns a deep copy of ml.
func (ml *MultiLineString) Clone() Geom {
	return &MultiLineString{GeometryCollection{
		geomBase: geomBase{factory: ml.factory},
		geoms:    cloneGeoms(ml.geoms),
	}}
}

// GeomN returns the i'th part.
func (ml *MultiLineString) GeomN(i int) Geom { return ml.geoms[i] }

// MultiPolygon is a collection of Polygons.
type MultiPolygon struct {
	GeometryCollection
}

// Type returns TypeMultiPolygon.
func (mp *MultiPolygon) Type() GeomType { return TypeMultiPolygon }

// Dimension returns 2.
func (mp *MultiPolygon) Dimension() Dimension { return DimArea }

// BoundaryDimension returns 1.
func (mp *MultiPolygon) BoundaryDimension() Dimension { return DimLine }

// Boundary returns the rings of all parts as a MultiLineString.
func (mp *MultiPolygon) Boundary() Geom {
	var lines []*LineString
	for _, g := range mp.geoms {
		switch b := g.Boundary().(type) {
		case *LineString:
			lines = append(lines, b)
		case *MultiLineString:
			for _, part := range b.geoms {
				lines = append(lines, part.(*LineString))
			}
		}
	}
	ml, _ := mp.factory.CreateMultiLineString(lines...)
	return ml
}

// Clone returns a deep copy of mp.
func (mp *MultiPolygon) Clone() Geom {
	return &MultiPolygon{GeometryCollection{
		geomBase: geomBase{factory: mp.factory},
		geoms:    cloneGeoms(mp.geoms),
	}}
}

// GeomN returns the i'th part.
func (mp *MultiPolygon) GeomN(i int) Geom { return mp.geoms[i] }
