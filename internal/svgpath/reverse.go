/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "math"

// coincident is the tolerance under which two trace points count as the
// same position, used to elide degenerate closing lines.
const coincident = 1e-9

// reverseCommands reverses the point order of a canonical sequence,
// subpath by subpath.
func reverseCommands(commands []Command) []Command {
	if len(commands) == 0 {
		return nil
	}

	var out []Command
	var subpath []Command

	for _, cmd := range commands {
		if cmd.Op == OpMove && len(subpath) > 0 {
			out = append(out, reverseSubpath(subpath)...)
			subpath = subpath[:0]
		}
		subpath = append(subpath, cmd)
	}
	if len(subpath) > 0 {
		out = append(out, reverseSubpath(subpath)...)
	}
	return out
}

// reverseSubpath walks one subpath forward to record each command's end
// position, then emits the segments backwards. Cubic control points swap
// places; lines that would not move the cursor are dropped.
func reverseSubpath(cmds []Command) []Command {
	if len(cmds) == 0 {
		return nil
	}

	points := make([]Point, len(cmds))
	var cursor, start Point
	for i, cmd := range cmds {
		switch cmd.Op {
		case OpMove:
			cursor = cmd.End()
			start = cursor
		case OpLine, OpCubic:
			cursor = cmd.End()
		case OpClose:
			cursor = start
		}
		points[i] = cursor
	}

	last := points[len(points)-1]
	reversed := []Command{{Op: OpMove, X: last.X, Y: last.Y}}
	pos := last

	for i := len(cmds) - 1; i >= 1; i-- {
		prev := points[i-1] // where this command started in forward order
		switch cmds[i].Op {
		case OpLine, OpClose:
			if math.Abs(prev.X-pos.X) > coincident || math.Abs(prev.Y-pos.Y) > coincident {
				reversed = append(reversed, Command{Op: OpLine, X: prev.X, Y: prev.Y})
				pos = prev
			}
		case OpCubic:
			reversed = append(reversed, Command{
				Op: OpCubic,
				X1: cmds[i].X2, Y1: cmds[i].Y2,
				X2: cmds[i].X1, Y2: cmds[i].Y1,
				X: prev.X, Y: prev.Y,
			})
			pos = prev
		}
	}

	if cmds[len(cmds)-1].Op == OpClose {
		reversed = append(reversed, Command{Op: OpClose})
	}
	return reversed
}
