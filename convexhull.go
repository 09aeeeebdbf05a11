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
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ConvexHull computes the smallest convex geometry containing g.
// Degenerate inputs collapse: an empty geometry gives an empty
// collection, a single point a point, collinear input a line string.
func ConvexHull(g Geom) (Geom, error) {
	gf := g.Factory()
	pts := uniquePoints2(AllCoordinates(g))
	switch len(pts) {
	case 0:
		return gf.CreateGeometryCollection(), nil
	case 1:
		return gf.CreatePoint(pts[0]), nil
	case 2:
		return gf.CreateLineString(pts)
	}
	hull := monotoneChain(pts)
	if len(hull) == 2 {
		return gf.CreateLineString(hull)
	}
	ring, err := gf.CreateLinearRing(append(hull, hull[0]))
	if err != nil {
		return nil, err
	}
	return gf.CreatePolygon(ring)
}

// monotoneChain computes the convex hull of at least three distinct
// points, counter-clockwise without the closing vertex. Collinear
// input yields the two extreme points.
func monotoneChain(pts []Coordinate) []Coordinate {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Compare(pts[j]) < 0 })
	build := func(ordered []Coordinate) []Coordinate {
		var chain []Coordinate
		for _, p := range ordered {
			for len(chain) >= 2 &&
				orientationIndex(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain[:len(chain)-1]
	}
	lower := build(pts)
	upper := build(reversed(pts))
	return append(lower, upper...)
}

func reversed(cs []Coordinate) []Coordinate {
	out := make([]Coordinate, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

func uniquePoints2(cs []Coordinate) []Coordinate {
	seen := make(map[Coordinate]bool)
	var out []Coordinate
	for _, c := range cs {
		key := Coord(c.X, c.Y)
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// MinimumRotatedRectangle computes the smallest-area rectangle, at
// any rotation, enclosing g. One side of the result is collinear
// with an edge of the convex hull. Degenerate hulls (points, lines)
// are returned as they are.
func MinimumRotatedRectangle(g Geom) (Geom, error) {
	hull, err := ConvexHull(g)
	if err != nil {
		return nil, err
	}
	poly, ok := hull.(*Polygon)
	if !ok {
		return hull, nil
	}
	cs := poly.Exterior().Coords()
	xs := make([]float64, len(cs))
	ys := make([]float64, len(cs))

	bestArea := math.Inf(1)
	var bestU, bestV [2]float64
	var bestMinX, bestMaxX, bestMinY, bestMaxY float64
	for i := 1; i < len(cs); i++ {
		dx, dy := cs[i].X-cs[i-1].X, cs[i].Y-cs[i-1].Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit edge direction and its perpendicular form a rotated
		// frame; the axis-aligned envelope in that frame is the
		// candidate rectangle.
		ux, uy := dx/length, dy/length
		vx, vy := -uy, ux
		for j, c := range cs {
			xs[j] = ux*c.X + uy*c.Y
			ys[j] = vx*c.X + vy*c.Y
		}
		minX, maxX := floats.Min(xs), floats.Max(xs)
		minY, maxY := floats.Min(ys), floats.Max(ys)
		if area := (maxX - minX) * (maxY - minY); area < bestArea {
			bestArea = area
			bestU, bestV = [2]float64{ux, uy}, [2]float64{vx, vy}
			bestMinX, bestMaxX = minX, maxX
			bestMinY, bestMaxY = minY, maxY
		}
	}

	corner := func(x, y float64) Coordinate {
		return Coord(bestU[0]*x+bestV[0]*y, bestU[1]*x+bestV[1]*y)
	}
	ring, err := g.Factory().CreateLinearRing([]Coordinate{
		corner(bestMinX, bestMinY),
		corner(bestMaxX, bestMinY),
		corner(bestMaxX, bestMaxY),
		corner(bestMinX, bestMaxY),
		corner(bestMinX, bestMinY),
	})
	if err != nil {
		return nil, err
	}
	return g.Factory().CreatePolygon(ring)
}
