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

package planarutil

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/planar"
)

// FromGeom converts a decoded geometry into the planar model using
// factory gf, snapping every vertex onto gf's precision grid.
func FromGeom(g geom.Geom, gf *planar.GeometryFactory) (planar.Geom, error) {
	switch t := g.(type) {
	case geom.Point:
		return gf.CreatePoint(gf.PrecisionModel.MakePrecise(planar.Coord(t.X, t.Y))), nil
	case geom.MultiPoint:
		pts := make([]*planar.Point, len(t))
		for i, p := range t {
			pts[i] = gf.CreatePoint(gf.PrecisionModel.MakePrecise(planar.Coord(p.X, p.Y)))
		}
		return gf.CreateMultiPoint(pts...)
	case geom.LineString:
		return gf.CreateLineString(coordsFromPoints(t, gf))
	case geom.MultiLineString:
		lines := make([]*planar.LineString, len(t))
		for i, l := range t {
			line, err := gf.CreateLineString(coordsFromPoints(l, gf))
			if err != nil {
				return nil, err
			}
			lines[i] = line
		}
		return gf.CreateMultiLineString(lines...)
	case geom.Polygon:
		return polygonFromRings(t, gf)
	case geom.MultiPolygon:
		polys := make([]*planar.Polygon, len(t))
		for i, p := range t {
			poly, err := polygonFromRings(p, gf)
			if err != nil {
				return nil, err
			}
			polys[i] = poly
		}
		return gf.CreateMultiPolygon(polys...)
	case geom.GeometryCollection:
		parts := make([]planar.Geom, len(t))
		for i, p := range t {
			part, err := FromGeom(p, gf)
			if err != nil {
				return nil, err
			}
			parts[i] = part
		}
		return gf.CreateGeometryCollection(parts...), nil
	}
	return nil, fmt.Errorf("planarutil: unsupported geometry type %T", g)
}

func coordsFromPoints(pts []geom.Point, gf *planar.GeometryFactory) []planar.Coordinate {
	cs := make([]planar.Coordinate, len(pts))
	for i, p := range pts {
		cs[i] = gf.PrecisionModel.MakePrecise(planar.Coord(p.X, p.Y))
	}
	return cs
}

func polygonFromRings(p geom.Polygon, gf *planar.GeometryFactory) (*planar.Polygon, error) {
	if len(p) == 0 {
		return gf.CreatePolygon(nil)
	}
	rings := make([]*planar.LinearRing, len(p))
	for i, r := range p {
		cs := coordsFromPoints(r, gf)
		// GeoJSON rings may omit the closing coordinate.
		if len(cs) > 0 && !cs[0].Equals(cs[len(cs)-1]) {
			cs = append(cs, cs[0])
		}
		ring, err := gf.CreateLinearRing(cs)
		if err != nil {
			return nil, err
		}
		rings[i] = ring
	}
	return gf.CreatePolygon(rings[0], rings[1:]...)
}

// ToGeom converts a planar geometry into the encodable form.
func ToGeom(g planar.Geom) (geom.Geom, error) {
	switch t := g.(type) {
	case *planar.Point:
		if t.IsEmpty() {
			return geom.MultiPoint{}, nil
		}
		return geom.Point{X: t.X(), Y: t.Y()}, nil
	case *planar.MultiPoint:
		out := make(geom.MultiPoint, 0, t.NumGeoms())
		for i := 0; i < t.NumGeoms(); i++ {
			p := t.GeomN(i).(*planar.Point)
			if p.IsEmpty() {
				continue
			}
			out = append(out, geom.Point{X: p.X(), Y: p.Y()})
		}
		return out, nil
	case *planar.LinearRing:
		return geom.LineString(pointsFromCoords(t.Coords())), nil
	case *planar.LineString:
		return geom.LineString(pointsFromCoords(t.Coords())), nil
	case *planar.Polygon:
		return ringsFromPolygon(t), nil
	case *planar.MultiPolygon:
		out := make(geom.MultiPolygon, t.NumGeoms())
		for i := 0; i < t.NumGeoms(); i++ {
			out[i] = ringsFromPolygon(t.GeomN(i).(*planar.Polygon))
		}
		return out, nil
	case *planar.MultiLineString:
		out := make(geom.MultiLineString, t.NumGeoms())
		for i := 0; i < t.NumGeoms(); i++ {
			l := t.GeomN(i).(*planar.LineString)
			out[i] = geom.LineString(pointsFromCoords(l.Coords()))
		}
		return out, nil
	case *planar.GeometryCollection:
		out := make(geom.GeometryCollection, t.NumGeoms())
		for i := 0; i < t.NumGeoms(); i++ {
			part, err := ToGeom(t.GeomN(i))
			if err != nil {
				return nil, err
			}
			out[i] = part
		}
		return out, nil
	}
	return nil, fmt.Errorf("planarutil: unsupported geometry type %v", g.Type())
}

func pointsFromCoords(cs []planar.Coordinate) []geom.Point {
	pts := make([]geom.Point, len(cs))
	for i, c := range cs {
		pts[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return pts
}

func ringsFromPolygon(p *planar.Polygon) geom.Polygon {
	if p.IsEmpty() {
		return geom.Polygon{}
	}
	out := geom.Polygon{pointsFromCoords(p.Exterior().Coords())}
	for i := 0; i < p.NumInteriors(); i++ {
		out = append(out, pointsFromCoords(p.Interior(i).Coords()))
	}
	return out
}
