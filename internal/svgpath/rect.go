/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

// Rect is an axis-aligned rectangle described by its min corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect builds a rectangle from its min corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromBBox converts a bounding box to a rectangle.
func RectFromBBox(b BBox) Rect {
	return Rect{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()}
}

// fitMatrix derives the transform that scales and translates src into
// target. With keepAspect the smaller scale factor applies to both axes;
// with centered the residual slack is split evenly.
func fitMatrix(src, target Rect, keepAspect, centered bool) Matrix {
	// A degenerate source cannot be scaled, only placed.
	if src.Width == 0 || src.Height == 0 {
		return Identity().Translate(target.X, target.Y)
	}

	scaleX := target.Width / src.Width
	scaleY := target.Height / src.Height

	if keepAspect {
		uniform := scaleX
		if scaleY < uniform {
			uniform = scaleY
		}
		scaleX = uniform
		scaleY = uniform
	}

	tx := target.X - src.X*scaleX
	ty := target.Y - src.Y*scaleY

	if centered {
		if scaleX < target.Width/src.Width {
			tx += (target.Width - src.Width*scaleX) / 2
		}
		if scaleY < target.Height/src.Height {
			ty += (target.Height - src.Height*scaleY) / 2
		}
	}

	return Matrix{A: scaleX, D: scaleY, E: tx, F: ty}
}

// splitCommands partitions a command sequence into subpaths, one per Move
// boundary. Commands before the first Move form their own leading group.
func splitCommands(commands []Command) [][]Command {
	var paths [][]Command
	var current []Command

	for _, cmd := range commands {
		if cmd.Op == OpMove && len(current) > 0 {
			paths = append(paths, current)
			current = nil
		}
		current = append(current, cmd)
	}
	if len(current) > 0 {
		paths = append(paths, current)
	}
	return paths
}
