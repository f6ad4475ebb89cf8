/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "math"

// Matrix is a 2D affine transform in SVG order:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// All builder methods return a new matrix; values never mutate.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Apply transforms a point: x' = ax + cy + e, y' = bx + dy + f.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Multiply combines two transforms; the receiver applies last.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// Translate appends a translation by (tx, ty).
func (m Matrix) Translate(tx, ty float64) Matrix {
	return m.Multiply(Matrix{A: 1, D: 1, E: tx, F: ty})
}

// Scale appends an axis scaling by (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Multiply(Matrix{A: sx, D: sy})
}

// Rotate appends a rotation by the given angle in degrees.
func (m Matrix) Rotate(angleDeg float64) Matrix {
	rad := angleDeg * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return m.Multiply(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// RotateAbout appends a rotation by angleDeg around the point (x, y).
func (m Matrix) RotateAbout(angleDeg, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(angleDeg).Translate(-x, -y)
}

// SkewX appends a horizontal skew by the given angle in degrees.
func (m Matrix) SkewX(angleDeg float64) Matrix {
	return m.Multiply(Matrix{A: 1, C: math.Tan(angleDeg * math.Pi / 180), D: 1})
}

// SkewY appends a vertical skew by the given angle in degrees.
func (m Matrix) SkewY(angleDeg float64) Matrix {
	return m.Multiply(Matrix{A: 1, B: math.Tan(angleDeg * math.Pi / 180), D: 1})
}

// Shear appends a shear by the raw factors (x, y).
func (m Matrix) Shear(x, y float64) Matrix {
	return m.Multiply(Matrix{A: 1, B: y, C: x, D: 1})
}

// transformCommands maps every coordinate of a canonical sequence through
// the matrix. Close passes unchanged; non-canonical variants are dropped,
// matching the canonical-only contract of the transform stage.
func transformCommands(commands []Command, m Matrix) []Command {
	out := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		switch cmd.Op {
		case OpMove, OpLine:
			p := m.Apply(cmd.End())
			out = append(out, Command{Op: cmd.Op, X: p.X, Y: p.Y})
		case OpCubic:
			p1 := m.Apply(Point{cmd.X1, cmd.Y1})
			p2 := m.Apply(Point{cmd.X2, cmd.Y2})
			p := m.Apply(cmd.End())
			out = append(out, Command{Op: OpCubic, X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y, X: p.X, Y: p.Y})
		case OpClose:
			out = append(out, Command{Op: OpClose})
		}
	}
	return out
}
