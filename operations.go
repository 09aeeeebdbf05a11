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

import (
	"fmt"

	"github.com/ctessum/geom"
)

// CapStyle selects the shape of buffer line endings.
type CapStyle int

// JoinStyle selects the shape of buffer corners.
type JoinStyle int

const (
	CapRound CapStyle = iota + 1
	CapFlat
	CapSquare
)

const (
	JoinRound JoinStyle = iota + 1
	JoinMitre
	JoinBevel
)

// BufferParams collects the knobs of a buffer construction.
type BufferParams struct {
	// Resolution is the number of segments per quarter circle used
	// to approximate round caps and joins.
	Resolution  int
	CapStyle    CapStyle
	JoinStyle   JoinStyle
	MitreLimit  float64
	SingleSided bool
}

// DefaultBufferParams returns the conventional buffer settings:
// round caps and joins at 12 segments per quadrant.
func DefaultBufferParams() BufferParams {
	return BufferParams{
		Resolution: 12,
		CapStyle:   CapRound,
		JoinStyle:  JoinRound,
		MitreLimit: 5,
	}
}

// BufferOp constructs the set of points within a distance of a
// geometry. Implementations are supplied by the host application.
type BufferOp interface {
	Buffer(g Geom, distance float64, params BufferParams) (Geom, error)
}

// Buffer computes the buffer of g at the given distance using op. An
// empty input buffers to an empty collection without consulting op.
func Buffer(op BufferOp, g Geom, distance float64, params BufferParams) (Geom, error) {
	if g.IsEmpty() {
		return g.Factory().CreateGeometryCollection(), nil
	}
	if op == nil {
		return nil, fmt.Errorf("planar: no buffer implementation configured")
	}
	return op.Buffer(g, distance, params)
}

// Simplifier reduces the vertex count of a geometry within a
// distance tolerance.
type Simplifier interface {
	Simplify(g Geom, tolerance float64) (Geom, error)
}

// Simplify reduces the vertex count of g so no removed vertex lies
// farther than tolerance from the result, keeping the result free of
// new self-intersections when the input had none. Puntal geometries
// pass through unchanged.
func Simplify(g Geom, tolerance float64) (Geom, error) {
	return curveSimplifier{}.Simplify(g, tolerance)
}

// SimplifyWith runs an alternative simplification strategy.
func SimplifyWith(s Simplifier, g Geom, tolerance float64) (Geom, error) {
	return s.Simplify(g, tolerance)
}

// curveSimplifier is the shipped Simplifier, backed by topology-safe
// curve simplification of the geometry's linework.
type curveSimplifier struct{}

func (cs curveSimplifier) Simplify(g Geom, tolerance float64) (Geom, error) {
	gf := g.Factory()
	switch t := g.(type) {
	case *Point, *MultiPoint:
		return t.Clone(), nil
	case *LinearRing:
		simple := simplifyRing(t, tolerance)
		return gf.CreateLinearRing(simple)
	case *LineString:
		in := toClipLine(t)
		out := in.Simplify(tolerance).(geom.LineString)
		return gf.CreateLineString(fromClipLine(out))
	case *Polygon:
		return simplifyPolygon(t, tolerance, gf)
	case *MultiLineString:
		lines := make([]*LineString, t.NumGeoms())
		for i := range lines {
			s, err := cs.Simplify(t.GeomN(i), tolerance)
			if err != nil {
				return nil, err
			}
			lines[i] = s.(*LineString)
		}
		return gf.CreateMultiLineString(lines...)
	case *MultiPolygon:
		polys := make([]*Polygon, t.NumGeoms())
		for i := range polys {
			s, err := cs.Simplify(t.GeomN(i), tolerance)
			if err != nil {
				return nil, err
			}
			polys[i] = s.(*Polygon)
		}
		return gf.CreateMultiPolygon(polys...)
	case *GeometryCollection:
		parts := make([]Geom, t.NumGeoms())
		for i := range parts {
			s, err := cs.Simplify(t.GeomN(i), tolerance)
			if err != nil {
				return nil, err
			}
			parts[i] = s
		}
		return gf.CreateGeometryCollection(parts...), nil
	}
	return nil, fmt.Errorf("planar: cannot simplify %v", g.Type())
}

func simplifyPolygon(p *Polygon, tolerance float64, gf *GeometryFactory) (*Polygon, error) {
	if p.IsEmpty() {
		return gf.CreatePolygon(nil)
	}
	in := clipPolygon(p)
	out := in.Simplify(tolerance).(geom.Polygon)
	var rings [][]Coordinate
	for _, contour := range out {
		cs := fromClipLine(geom.LineString(contour))
		if len(cs) > 0 && !cs[0].Equals(cs[len(cs)-1]) {
			cs = append(cs, cs[0])
		}
		if len(removeRepeatedCoords(cs)) < 4 {
			continue
		}
		rings = append(rings, cs)
	}
	if len(rings) == 0 {
		return gf.CreatePolygon(nil)
	}
	shell, err := gf.CreateLinearRing(rings[0])
	if err != nil {
		return nil, err
	}
	holes := make([]*LinearRing, 0, len(rings)-1)
	for _, hc := range rings[1:] {
		hole, err := gf.CreateLinearRing(hc)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return gf.CreatePolygon(shell, holes...)
}

func simplifyRing(r *LinearRing, tolerance float64) []Coordinate {
	if r.IsEmpty() {
		return nil
	}
	out := toClipLine(&r.LineString).Simplify(tolerance).(geom.LineString)
	cs := fromClipLine(out)
	if len(cs) > 0 && !cs[0].Equals(cs[len(cs)-1]) {
		cs = append(cs, cs[0])
	}
	return cs
}

func toClipLine(l *LineString) geom.LineString {
	cs := l.Coords()
	out := make(geom.LineString, len(cs))
	for i, c := range cs {
		out[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return out
}

func fromClipLine(l geom.LineString) []Coordinate {
	cs := make([]Coordinate, len(l))
	for i, p := range l {
		cs[i] = Coord(p.X, p.Y)
	}
	return cs
}
