/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "math"

// BBox is an axis-aligned bounding rectangle. The zero-point state produced
// by newBBox uses infinity sentinels so "no points seen" stays detectable.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func newBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return Point{
		X: b.MinX + (b.MaxX-b.MinX)/2,
		Y: b.MinY + (b.MaxY-b.MinY)/2,
	}
}

func (b *BBox) addPoint(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// addCubic grows the box to enclose a cubic Bezier segment exactly: the
// endpoints plus any interior extrema of the curve, per axis.
func (b *BBox) addCubic(start, cp1, cp2, end Point) {
	b.addPoint(start.X, start.Y)
	b.addPoint(end.X, end.Y)
	b.addCubicExtrema(start.X, cp1.X, cp2.X, end.X, true)
	b.addCubicExtrema(start.Y, cp1.Y, cp2.Y, end.Y, false)
}

// addCubicExtrema solves the derivative of one axis of a cubic Bezier,
// at^2 + bt + c = 0, and folds curve values at roots inside (0,1) into the
// bounds. A near-zero leading coefficient reduces to the linear root.
func (b *BBox) addCubicExtrema(p0, p1, p2, p3 float64, isX bool) {
	a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
	bc := 6 * (p0 - 2*p1 + p2)
	c := 3 * (p1 - p0)

	var roots [2]float64
	n := 0
	if math.Abs(a) < 1e-9 {
		if math.Abs(bc) > 1e-9 {
			roots[n] = -c / bc
			n++
		}
	} else {
		disc := bc*bc - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots[0] = (-bc + sq) / (2 * a)
			roots[1] = (-bc - sq) / (2 * a)
			n = 2
		}
	}

	for i := 0; i < n; i++ {
		t := roots[i]
		if t <= 0 || t >= 1 {
			continue
		}
		mt := 1 - t
		val := mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
		if isX {
			b.MinX = math.Min(b.MinX, val)
			b.MaxX = math.Max(b.MaxX, val)
		} else {
			b.MinY = math.Min(b.MinY, val)
			b.MaxY = math.Max(b.MaxY, val)
		}
	}
}

// boundingBox computes the tight box over a canonical command sequence.
// ok is false when the sequence contributed no points at all.
func boundingBox(commands []Command) (BBox, bool) {
	if len(commands) == 0 {
		return BBox{}, false
	}

	bounds := newBBox()
	var cursor Point

	for _, cmd := range commands {
		switch cmd.Op {
		case OpMove, OpLine:
			bounds.addPoint(cmd.X, cmd.Y)
			cursor = cmd.End()
		case OpCubic:
			end := cmd.End()
			bounds.addCubic(cursor, Point{cmd.X1, cmd.Y1}, Point{cmd.X2, cmd.Y2}, end)
			cursor = end
		}
	}

	if math.IsInf(bounds.MinX, 1) {
		return BBox{}, false
	}
	return bounds, true
}
