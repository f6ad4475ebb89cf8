/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// Point is an absolute 2D coordinate. A plain value, copied freely.
type Point struct {
	X, Y float64
}

// Op discriminates the draw command variants. Every consumer switches
// exhaustively over it; adding a variant is a change visible everywhere.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpHorizontal
	OpVertical
	OpCubic
	OpQuadratic
	OpSmoothCubic
	OpSmoothQuadratic
	OpArc
	OpClose
)

// Command is one draw command with all coordinates absolute. Which fields are
// meaningful depends on Op:
//
//	Move, Line, SmoothQuadratic  X, Y
//	Horizontal                   X
//	Vertical                     Y
//	Cubic                        X1, Y1, X2, Y2, X, Y
//	Quadratic                    X1, Y1, X, Y
//	SmoothCubic                  X2, Y2, X, Y
//	Arc                          Rx, Ry, Rotation, LargeArc, Sweep, X, Y
//	Close                        none
//
// Commands are immutable values once produced by the parser.
type Command struct {
	Op       Op
	X1, Y1   float64 // first control point
	X2, Y2   float64 // second control point
	Rx, Ry   float64 // arc radii
	Rotation float64 // arc x-axis rotation in degrees
	LargeArc bool
	Sweep    bool
	X, Y     float64 // end point
}

// End returns the command's end point. For Horizontal and Vertical only one
// axis is meaningful; Close has no end point of its own.
func (c Command) End() Point { return Point{c.X, c.Y} }

// formatNum renders a coordinate the way path data is conventionally
// written: integral values without a fraction, everything else with at most
// two decimals and trailing zeros trimmed.
func formatNum(n float64) string {
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	s := strconv.FormatFloat(n, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

func flagNum(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// String renders the command in compact SVG path form, e.g. "M 10 -5" or
// "C 0 0,5 5,10 0". Arc flags render as 0/1.
func (c Command) String() string {
	switch c.Op {
	case OpMove:
		return "M " + formatNum(c.X) + " " + formatNum(c.Y)
	case OpLine:
		return "L " + formatNum(c.X) + " " + formatNum(c.Y)
	case OpHorizontal:
		return "H " + formatNum(c.X)
	case OpVertical:
		return "V " + formatNum(c.Y)
	case OpCubic:
		return "C " + formatNum(c.X1) + " " + formatNum(c.Y1) + "," +
			formatNum(c.X2) + " " + formatNum(c.Y2) + "," +
			formatNum(c.X) + " " + formatNum(c.Y)
	case OpQuadratic:
		return "Q " + formatNum(c.X1) + " " + formatNum(c.Y1) + "," +
			formatNum(c.X) + " " + formatNum(c.Y)
	case OpSmoothCubic:
		return "S " + formatNum(c.X2) + " " + formatNum(c.Y2) + "," +
			formatNum(c.X) + " " + formatNum(c.Y)
	case OpSmoothQuadratic:
		return "T " + formatNum(c.X) + " " + formatNum(c.Y)
	case OpArc:
		return "A " + formatNum(c.Rx) + " " + formatNum(c.Ry) + " " +
			formatNum(c.Rotation) + " " + flagNum(c.LargeArc) + " " +
			flagNum(c.Sweep) + " " + formatNum(c.X) + " " + formatNum(c.Y)
	default:
		return "Z"
	}
}

// formatCommands space-joins the rendered commands.
func formatCommands(cmds []Command) string {
	var b strings.Builder
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
