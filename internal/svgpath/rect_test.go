/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "testing"

func TestRectFromBBox(t *testing.T) {
	r := RectFromBBox(BBox{MinX: 5, MinY: 10, MaxX: 25, MaxY: 16})
	if r != (Rect{X: 5, Y: 10, Width: 20, Height: 6}) {
		t.Fatalf("unexpected rect: %+v", r)
	}
}

func TestFitMatrixStretch(t *testing.T) {
	m := fitMatrix(NewRect(0, 0, 10, 5), NewRect(0, 0, 20, 20), false, false)
	if p := m.Apply(Point{10, 5}); !ptNear(p, 20, 20) {
		t.Fatalf("stretch fit misses the far corner: %+v", p)
	}
}

func TestFitMatrixKeepAspectCentered(t *testing.T) {
	// Uniform scale 2 leaves 10 units of vertical slack, split evenly.
	m := fitMatrix(NewRect(0, 0, 10, 5), NewRect(0, 0, 20, 20), true, true)
	if p := m.Apply(Point{0, 0}); !ptNear(p, 0, 5) {
		t.Fatalf("unexpected min corner: %+v", p)
	}
	if p := m.Apply(Point{10, 5}); !ptNear(p, 20, 15) {
		t.Fatalf("unexpected max corner: %+v", p)
	}
}

func TestFitMatrixKeepAspectUncentered(t *testing.T) {
	m := fitMatrix(NewRect(0, 0, 10, 5), NewRect(0, 0, 20, 20), true, false)
	if p := m.Apply(Point{0, 0}); !ptNear(p, 0, 0) {
		t.Fatalf("slack must stay at the far side without centering: %+v", p)
	}
	if p := m.Apply(Point{10, 5}); !ptNear(p, 20, 10) {
		t.Fatalf("unexpected max corner: %+v", p)
	}
}

func TestFitMatrixDegenerateSource(t *testing.T) {
	m := fitMatrix(NewRect(3, 4, 0, 10), NewRect(50, 60, 100, 100), true, true)
	if p := m.Apply(Point{0, 0}); !ptNear(p, 50, 60) {
		t.Fatalf("degenerate source must only translate: %+v", p)
	}
}

func TestSplitCommands(t *testing.T) {
	cmds := mustParse(t, "M 25 67 H 90 V 150 M 5 7 L 90 55")
	groups := splitCommands(cmds)
	if len(groups) != 2 {
		t.Fatalf("expected 2 subpaths, got %d", len(groups))
	}
	if got := formatCommands(groups[0]); got != "M 25 67 H 90 V 150" {
		t.Fatalf("first subpath = %q", got)
	}
	if got := formatCommands(groups[1]); got != "M 5 7 L 90 55" {
		t.Fatalf("second subpath = %q", got)
	}
}

func TestSplitCommandsSingle(t *testing.T) {
	cmds := mustParse(t, "M 1 2 L 3 4 Z")
	groups := splitCommands(cmds)
	if len(groups) != 1 {
		t.Fatalf("expected 1 subpath, got %d", len(groups))
	}
}
