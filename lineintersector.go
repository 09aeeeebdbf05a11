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

type intersectionType int

const (
	noIntersection intersectionType = iota
	pointIntersection
	collinearIntersection
)

// segmentIntersection describes the intersection of segments p1-p2
// and q1-q2. For a point intersection, Pt holds the location and
// T0/U0 its parameters along p and q. For a collinear intersection,
// [T0,T1] and [U0,U1] are the overlap intervals along p and q.
//
// An intersection is proper when it lies strictly in the interior of
// both segments.
type segmentIntersection struct {
	Kind   intersectionType
	Proper bool
	Pt     Coordinate
	T0, T1 float64
	U0, U1 float64
}

// intersectSegments computes the intersection of the closed segments
// p1-p2 and q1-q2 exactly with respect to the orientation predicate.
func intersectSegments(p1, p2, q1, q2 Coordinate) segmentIntersection {
	// Envelope check first: cheap and exact.
	if math.Min(p1.X, p2.X) > math.Max(q1.X, q2.X) ||
		math.Max(p1.X, p2.X) < math.Min(q1.X, q2.X) ||
		math.Min(p1.Y, p2.Y) > math.Max(q1.Y, q2.Y) ||
		math.Max(p1.Y, p2.Y) < math.Min(q1.Y, q2.Y) {
		return segmentIntersection{}
	}

	o1 := orientationIndex(p1, p2, q1)
	o2 := orientationIndex(p1, p2, q2)
	if o1 != 0 && o1 == o2 {
		return segmentIntersection{}
	}
	o3 := orientationIndex(q1, q2, p1)
	o4 := orientationIndex(q1, q2, p2)
	if o3 != 0 && o3 == o4 {
		return segmentIntersection{}
	}

	if (o1 == 0 && o2 == 0) || (o3 == 0 && o4 == 0) {
		return collinearOverlap(p1, p2, q1, q2)
	}

	si := segmentIntersection{Kind: pointIntersection}
	switch {
	case o1 == 0:
		si.Pt = q1
	case o2 == 0:
		si.Pt = q2
	case o3 == 0:
		si.Pt = p1
	case o4 == 0:
		si.Pt = p2
	default:
		si.Proper = true
		si.Pt = crossingPoint(p1, p2, q1, q2)
	}
	si.T0 = clamp01(projectionFactor(si.Pt, p1, p2))
	si.T1 = si.T0
	si.U0 = clamp01(projectionFactor(si.Pt, q1, q2))
	si.U1 = si.U0
	return si
}

// collinearOverlap handles segments on the same supporting line.
func collinearOverlap(p1, p2, q1, q2 Coordinate) segmentIntersection {
	u0 := projectionFactor(q1, p1, p2)
	u1 := projectionFactor(q2, p1, p2)
	if u0 > u1 {
		u0, u1 = u1, u0
	}
	t0 := math.Max(0, u0)
	t1 := math.Min(1, u1)
	if t0 > t1 {
		return segmentIntersection{}
	}
	ptAt := func(t float64) Coordinate {
		return Coord(p1.X+t*(p2.X-p1.X), p1.Y+t*(p2.Y-p1.Y))
	}
	if t0 == t1 {
		pt := ptAt(t0)
		// Snap to the exact shared vertex when one exists.
		for _, v := range []Coordinate{q1, q2, p1, p2} {
			if pointOnSegment(v, p1, p2) && pointOnSegment(v, q1, q2) {
				pt = v
				break
			}
		}
		return segmentIntersection{
			Kind: pointIntersection,
			Pt:   pt,
			T0:   t0, T1: t0,
			U0: clamp01(projectionFactor(pt, q1, q2)),
			U1: clamp01(projectionFactor(pt, q1, q2)),
		}
	}
	return segmentIntersection{
		Kind: collinearIntersection,
		T0:   t0, T1: t1,
		U0: clamp01(projectionFactor(ptAt(t0), q1, q2)),
		U1: clamp01(projectionFactor(ptAt(t1), q1, q2)),
	}
}

// crossingPoint computes the proper intersection of two segments
// known to cross.
func crossingPoint(p1, p2, q1, q2 Coordinate) Coordinate {
	px, py := p2.X-p1.X, p2.Y-p1.Y
	qx, qy := q2.X-q1.X, q2.Y-q1.Y
	denom := px*qy - py*qx
	t := ((q1.X-p1.X)*qy - (q1.Y-p1.Y)*qx) / denom
	return Coord(p1.X+t*px, p1.Y+t*py)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
