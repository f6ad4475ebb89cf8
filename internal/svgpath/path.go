/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package svgpath parses SVG path data into an absolute-coordinate command
// stream, normalizes it to the canonical {Move, Line, Cubic, Close} subset
// and derives tight bounding boxes from the result. Parsed sequences are
// immutable values; every transformation returns a fresh one, so concurrent
// read-only use is safe.
package svgpath

import "sync"

// Path is an immutable sequence of parsed draw commands, all in absolute
// coordinates. It may still contain shorthand and arc variants; Simplify
// reduces those away.
type Path struct {
	commands []Command
}

// Parse parses SVG path data. Any lexical or grammatical error aborts the
// whole parse; there is no partial result.
func Parse(s string) (*Path, error) {
	cmds, err := newParser(s).parse()
	if err != nil {
		return nil, err
	}
	return &Path{commands: cmds}, nil
}

// Commands returns the command sequence. Callers must not modify it.
func (p *Path) Commands() []Command { return p.commands }

// String renders the path in compact SVG form.
func (p *Path) String() string { return formatCommands(p.commands) }

// Split partitions the path into its subpaths, one per Move boundary.
func (p *Path) Split() []*Path {
	groups := splitCommands(p.commands)
	out := make([]*Path, len(groups))
	for i, g := range groups {
		out[i] = &Path{commands: g}
	}
	return out
}

// Simplify reduces the path to the canonical command subset.
func (p *Path) Simplify() *SimplePath {
	return &SimplePath{commands: simplify(p.commands)}
}

// SimplePath is a path restricted to Move, Line, Cubic and Close. Its
// bounding box is computed on first use and cached; transformations return
// new values, so a cached box can never go stale.
type SimplePath struct {
	commands []Command

	bboxOnce sync.Once
	bbox     BBox
	hasBBox  bool
}

func newSimplePath(cmds []Command) *SimplePath {
	return &SimplePath{commands: cmds}
}

// Commands returns the canonical command sequence. Callers must not modify it.
func (sp *SimplePath) Commands() []Command { return sp.commands }

// String renders the path in compact SVG form.
func (sp *SimplePath) String() string { return formatCommands(sp.commands) }

// BBox returns the tight bounding box. ok is false for a path with no
// points, such as an empty sequence.
func (sp *SimplePath) BBox() (BBox, bool) {
	sp.bboxOnce.Do(func() {
		sp.bbox, sp.hasBBox = boundingBox(sp.commands)
	})
	return sp.bbox, sp.hasBBox
}

// Transform applies an affine matrix to every coordinate and returns the
// transformed path.
func (sp *SimplePath) Transform(m Matrix) *SimplePath {
	return newSimplePath(transformCommands(sp.commands, m))
}

// Fit scales and translates the path so its bounding box lands inside
// target. keepAspect preserves proportions; centered splits the slack left
// by aspect preservation evenly. A path without a box is returned as is.
func (sp *SimplePath) Fit(target Rect, keepAspect, centered bool) *SimplePath {
	bb, ok := sp.BBox()
	if !ok {
		return newSimplePath(sp.commands)
	}
	m := fitMatrix(RectFromBBox(bb), target, keepAspect, centered)
	return sp.Transform(m)
}

// Reverse returns the path with the point order of every subpath reversed.
func (sp *SimplePath) Reverse() *SimplePath {
	return newSimplePath(reverseCommands(sp.commands))
}

// Split partitions the path into its subpaths, one per Move boundary.
func (sp *SimplePath) Split() []*SimplePath {
	groups := splitCommands(sp.commands)
	out := make([]*SimplePath, len(groups))
	for i, g := range groups {
		out[i] = newSimplePath(g)
	}
	return out
}
