/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "math"

// degenerateRadius is the cutoff below which an arc radius is treated as
// zero and the arc collapses to a straight line.
const degenerateRadius = 1e-12

// simplify rewrites an absolute command sequence into the canonical subset
// {Move, Line, Cubic, Close}. Horizontal/Vertical become Lines, quadratics
// are elevated to cubics, smooth variants are resolved by reflection and
// arcs expand to one cubic per quarter turn.
func simplify(commands []Command) []Command {
	out := make([]Command, 0, len(commands))
	var cursor Point
	var control Point
	hasControl := false

	for _, cmd := range commands {
		switch cmd.Op {
		case OpMove:
			cursor = cmd.End()
			hasControl = false
			out = append(out, Command{Op: OpMove, X: cmd.X, Y: cmd.Y})

		case OpLine:
			cursor = cmd.End()
			hasControl = false
			out = append(out, Command{Op: OpLine, X: cmd.X, Y: cmd.Y})

		case OpHorizontal:
			cursor.X = cmd.X
			hasControl = false
			out = append(out, Command{Op: OpLine, X: cursor.X, Y: cursor.Y})

		case OpVertical:
			cursor.Y = cmd.Y
			hasControl = false
			out = append(out, Command{Op: OpLine, X: cursor.X, Y: cursor.Y})

		case OpCubic:
			cursor = cmd.End()
			control = Point{cmd.X2, cmd.Y2}
			hasControl = true
			out = append(out, cmd)

		case OpSmoothCubic:
			p1 := reflect(control, hasControl, cursor)
			control = Point{cmd.X2, cmd.Y2}
			hasControl = true
			cursor = cmd.End()
			out = append(out, Command{
				Op: OpCubic,
				X1: p1.X, Y1: p1.Y,
				X2: cmd.X2, Y2: cmd.Y2,
				X: cmd.X, Y: cmd.Y,
			})

		case OpQuadratic:
			q1 := Point{cmd.X1, cmd.Y1}
			cubic := elevateQuadratic(cursor, q1, cmd.End())
			cursor = cmd.End()
			control = q1 // smooth reflection uses the original control point
			hasControl = true
			out = append(out, cubic)

		case OpSmoothQuadratic:
			q1 := reflect(control, hasControl, cursor)
			cubic := elevateQuadratic(cursor, q1, cmd.End())
			cursor = cmd.End()
			control = q1
			hasControl = true
			out = append(out, cubic)

		case OpArc:
			for _, b := range arcToCubics(cursor, cmd.Rx, cmd.Ry, cmd.Rotation, cmd.LargeArc, cmd.Sweep, cmd.End()) {
				if b.Op == OpCubic {
					control = Point{b.X2, b.Y2}
					hasControl = true
				}
				cursor = b.End()
				out = append(out, b)
			}

		case OpClose:
			hasControl = false
			out = append(out, Command{Op: OpClose})
		}
	}
	return out
}

// reflect mirrors the last control point through the cursor, degenerating to
// the cursor when no curve preceded.
func reflect(control Point, hasControl bool, cursor Point) Point {
	if !hasControl {
		return cursor
	}
	return Point{
		X: 2*cursor.X - control.X,
		Y: 2*cursor.Y - control.Y,
	}
}

// elevateQuadratic converts a quadratic Bezier to the exactly equivalent
// cubic: cp1 = q0 + 2/3*(q1-q0), cp2 = q2 + 2/3*(q1-q2).
func elevateQuadratic(q0, q1, q2 Point) Command {
	return Command{
		Op: OpCubic,
		X1: q0.X + 2.0/3.0*(q1.X-q0.X),
		Y1: q0.Y + 2.0/3.0*(q1.Y-q0.Y),
		X2: q2.X + 2.0/3.0*(q1.X-q2.X),
		Y2: q2.Y + 2.0/3.0*(q1.Y-q2.Y),
		X:  q2.X, Y: q2.Y,
	}
}

// arcToCubics converts an elliptical arc to cubic Bezier segments using the
// endpoint-to-center parameterization from the SVG spec (appendix B.2.4),
// splitting the sweep into sub-arcs of at most a quarter turn.
func arcToCubics(start Point, rx, ry, rotationDeg float64, largeArc, sweep bool, end Point) []Command {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < degenerateRadius || ry < degenerateRadius {
		return []Command{{Op: OpLine, X: end.X, Y: end.Y}}
	}

	// Rotate into the ellipse's local frame.
	phi := rotationDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up when they cannot span the chord.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2 := rx * rx
	ry2 := ry * ry
	x1p2 := x1p * x1p
	y1p2 := y1p * y1p

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	numerator := math.Max(rx2*ry2-rx2*y1p2-ry2*x1p2, 0)
	denominator := rx2*y1p2 + ry2*x1p2
	coef := sign * math.Sqrt(numerator/denominator)

	cxp := coef * (rx * y1p / ry)
	cyp := coef * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	// Start angle and sweep on the unit circle.
	startVec := Point{(x1p - cxp) / rx, (y1p - cyp) / ry}
	endVec := Point{(-x1p - cxp) / rx, (-y1p - cyp) / ry}

	theta1 := angleBetween(Point{1, 0}, startVec)
	dTheta := angleBetween(startVec, endVec)

	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	delta := dTheta / float64(segments)

	out := make([]Command, 0, segments)
	theta := theta1
	for i := 0; i < segments; i++ {
		out = append(out, arcSegment(cx, cy, rx, ry, phi, theta, delta))
		theta += delta
	}
	return out
}

// arcSegment approximates one sub-arc of at most a quarter turn with a
// single cubic, using the kappa-style control scale derived from the
// angular delta, then maps the unit-circle points back through axis
// scaling, rotation and translation to the ellipse center.
func arcSegment(cx, cy, rx, ry, phi, theta, delta float64) Command {
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	alpha := math.Sin(delta) * ((4.0 / 3.0) * (1 - math.Cos(delta/2)) / math.Sin(delta))

	p1 := Point{math.Cos(theta), math.Sin(theta)}
	p2 := Point{math.Cos(theta + delta), math.Sin(theta + delta)}
	cp1 := Point{p1.X - alpha*p1.Y, p1.Y + alpha*p1.X}
	cp2 := Point{p2.X + alpha*p2.Y, p2.Y - alpha*p2.X}

	tr := func(p Point) Point {
		tx := p.X * rx
		ty := p.Y * ry
		return Point{
			X: cosPhi*tx - sinPhi*ty + cx,
			Y: sinPhi*tx + cosPhi*ty + cy,
		}
	}

	c1 := tr(cp1)
	c2 := tr(cp2)
	e := tr(p2)
	return Command{Op: OpCubic, X1: c1.X, Y1: c1.Y, X2: c2.X, Y2: c2.Y, X: e.X, Y: e.Y}
}

// angleBetween returns the signed angle from v1 to v2.
func angleBetween(v1, v2 Point) float64 {
	dot := v1.X*v2.X + v1.Y*v2.Y
	det := v1.X*v2.Y - v1.Y*v2.X
	return math.Atan2(det, dot)
}
