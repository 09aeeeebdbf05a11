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

// PrecisionModel specifies the grid coordinates are snapped to.
// A zero Scale means full floating-point precision.
type PrecisionModel struct {
	Scale float64
}

// MakePrecise rounds c onto the precision grid.
func (pm *PrecisionModel) MakePrecise(c Coordinate) Coordinate {
	if pm == nil || pm.Scale == 0 {
		return c
	}
	c.X = math.Round(c.X*pm.Scale) / pm.Scale
	c.Y = math.Round(c.Y*pm.Scale) / pm.Scale
	return c
}

// OutputAdapter receives geometries produced for the host
// application, for example to turn them into curves in a modeling
// scene. It is optional.
type OutputAdapter interface {
	Output(geoms []Geom, name string) error
}

// GeometryFactory builds geometry instances and holds the
// process-scoped construction context: precision model, spatial
// reference identifier and an optional output adapter. The factory
// owns no geometries; each geometry keeps a shared reference back to
// its factory for clone and derived-geometry creation.
type GeometryFactory struct {
	PrecisionModel *PrecisionModel
	SRID           int
	Output         OutputAdapter
}

// NewGeometryFactory returns a factory with a full floating-point
// precision model and no spatial reference.
func NewGeometryFactory() *GeometryFactory {
	return &GeometryFactory{PrecisionModel: &PrecisionModel{}}
}

// CreateCoordinate builds a coordinate from 2 or 3 ordinates. Any
// other ordinate count is a construction error.
func (gf *GeometryFactory) CreateCoordinate(ordinates ...float64) (Coordinate, error) {
	switch len(ordinates) {
	case 2:
		return Coord(ordinates[0], ordinates[1]), nil
	case 3:
		return CoordZ(ordinates[0], ordinates[1], ordinates[2]), nil
	}
	return Coordinate{}, ErrBadCoordinate
}

// CreatePoint builds a point at c.
func (gf *GeometryFactory) CreatePoint(c Coordinate) *Point {
	return &Point{geomBase: geomBase{factory: gf}, coord: c}
}

// CreateEmptyPoint builds an empty point.
func (gf *GeometryFactory) CreateEmptyPoint() *Point {
	return &Point{geomBase: geomBase{factory: gf}, empty: true}
}

// CreateLineString builds a line from coords, which must contain
// either 0 or more than 1 vertices.
func (gf *GeometryFactory) CreateLineString(coords []Coordinate) (*LineString, error) {
	if len(coords) == 1 {
		return nil, ErrLineStringPoints
	}
	return &LineString{
		geomBase: geomBase{factory: gf},
		coords:   cloneCoords(coords),
	}, nil
}

// CreateLinearRing builds a ring from coords. Repeated consecutive
// vertices are removed first; the remaining sequence must be empty or
// closed with at least 4 vertices.
func (gf *GeometryFactory) CreateLinearRing(coords []Coordinate) (*LinearRing, error) {
	cs := removeRepeatedCoords(coords)
	if len(cs) > 0 && len(cs) < 4 {
		return nil, ErrRingPoints
	}
	if len(cs) > 0 && !cs[0].Equals(cs[len(cs)-1]) {
		return nil, ErrRingNotClosed
	}
	return &LinearRing{LineString{
		geomBase: geomBase{factory: gf},
		coords:   cs,
	}}, nil
}

// CreatePolygon builds a polygon from an exterior ring and optional
// holes. A nil exterior produces an empty polygon. Holes must not be
// nil, and if the exterior is empty no hole may be non-empty.
func (gf *GeometryFactory) CreatePolygon(exterior *LinearRing, interiors ...*LinearRing) (*Polygon, error) {
	if exterior == nil {
		exterior, _ = gf.CreateLinearRing(nil)
	}
	holes := make([]*LinearRing, 0, len(interiors))
	for _, hole := range interiors {
		if hole == nil {
			return nil, ErrNilElement
		}
		holes = append(holes, hole)
	}
	if exterior.IsEmpty() {
		for _, hole := range holes {
			if !hole.IsEmpty() {
				return nil, ErrHolesWithEmptyShell
			}
		}
	}
	return &Polygon{
		geomBase:  geomBase{factory: gf},
		exterior:  exterior,
		interiors: holes,
	}, nil
}

// CreateMultiPoint builds a collection of points.
func (gf *GeometryFactory) CreateMultiPoint(points ...*Point) (*MultiPoint, error) {
	geoms := make([]Geom, len(points))
	for i, p := range points {
		if p == nil {
			return nil, ErrNilElement
		}
		geoms[i] = p
	}
	return &MultiPoint{GeometryCollection{
		geomBase: geomBase{factory: gf},
		geoms:    geoms,
	}}, nil
}

// CreateMultiLineString builds a collection of lines.
func (gf *GeometryFactory) CreateMultiLineString(lines ...*LineString) (*MultiLineString, error) {
	geoms := make([]Geom, len(lines))
	for i, l := range lines {
		if l == nil {
			return nil, ErrNilElement
		}
		geoms[i] = l
	}
	return &MultiLineString{GeometryCollection{
		geomBase: geomBase{factory: gf},
		geoms:    geoms,
	}}, nil
}

// CreateMultiPolygon builds a collection of polygons.
func (gf *GeometryFactory) CreateMultiPolygon(polys ...*Polygon) (*MultiPolygon, error) {
	geoms := make([]Geom, len(polys))
	for i, p := range polys {
		if p == nil {
			return nil, ErrNilElement
		}
		geoms[i] = p
	}
	return &MultiPolygon{GeometryCollection{
		geomBase: geomBase{factory: gf},
		geoms:    geoms,
	}}, nil
}

// CreateGeometryCollection builds a heterogeneous collection. It
// panics on nil elements: passing one is a programming error.
func (gf *GeometryFactory) CreateGeometryCollection(geoms ...Geom) *GeometryCollection {
	if hasNilElements(geoms) {
		panic("planar: nil element in geometry collection")
	}
	return &GeometryCollection{
		geomBase: geomBase{factory: gf},
		geoms:    append([]Geom(nil), geoms...),
	}
}

// BuildGeometry wraps geoms in the minimal type that can represent
// them: a lone atomic geometry is returned as is, a homogeneous list
// becomes the corresponding Multi type, and anything heterogeneous or
// containing a collection becomes a GeometryCollection. An empty list
// yields an empty GeometryCollection.
func (gf *GeometryFactory) BuildGeometry(geoms ...Geom) Geom {
	heterogeneous := false
	hasCollection := false
	var geomType GeomType
	first := true
	for _, g := range geoms {
		t := g.Type()
		if first {
			geomType = t
			first = false
		} else if t != geomType {
			heterogeneous = true
		}
		switch t {
		case TypeGeometryCollection, TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon:
			hasCollection = true
		}
	}

	if first {
		return gf.CreateGeometryCollection()
	}
	if heterogeneous || hasCollection {
		return gf.CreateGeometryCollection(geoms...)
	}
	if len(geoms) == 1 {
		return geoms[0]
	}

	switch geomType {
	case TypePolygon:
		polys := make([]*Polygon, len(geoms))
		for i, g := range geoms {
			polys[i] = g.(*Polygon)
		}
		mp, _ := gf.CreateMultiPolygon(polys...)
		return mp
	case TypeLineString, TypeLinearRing:
		lines := make([]*LineString, len(geoms))
		for i, g := range geoms {
			switch l := g.(type) {
			case *LinearRing:
				lines[i] = &l.LineString
			case *LineString:
				lines[i] = l
			}
		}
		ml, _ := gf.CreateMultiLineString(lines...)
		return ml
	case TypePoint:
		points := make([]*Point, len(geoms))
		for i, g := range geoms {
			points[i] = g.(*Point)
		}
		mp, _ := gf.CreateMultiPoint(points...)
		return mp
	}
	return gf.CreateGeometryCollection(geoms...)
}

// ToGeometry converts an envelope back into a geometry: an empty
// point for a null envelope, a point for a degenerate envelope, a
// line for a zero-width or zero-height one, and otherwise a rectangle
// polygon closed explicitly at the min/min corner.
func (gf *GeometryFactory) ToGeometry(env *Envelope) Geom {
	if env.IsNull() {
		return gf.CreateEmptyPoint()
	}
	if env.Width() == 0 && env.Height() == 0 {
		return gf.CreatePoint(Coord(env.MinX, env.MinY))
	}
	if env.Width() == 0 || env.Height() == 0 {
		l, _ := gf.CreateLineString([]Coordinate{
			Coord(env.MinX, env.MinY),
			Coord(env.MaxX, env.MaxY),
		})
		return l
	}
	ring, _ := gf.CreateLinearRing([]Coordinate{
		Coord(env.MinX, env.MinY),
		Coord(env.MaxX, env.MinY),
		Coord(env.MaxX, env.MaxY),
		Coord(env.MinX, env.MaxY),
		Coord(env.MinX, env.MinY),
	})
	p, _ := gf.CreatePolygon(ring)
	return p
}
