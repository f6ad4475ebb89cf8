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
	"testing"
)

func ptNear(p Point, x, y float64) bool {
	const eps = 1e-9
	return math.Abs(p.X-x) < eps && math.Abs(p.Y-y) < eps
}

func TestMatrixIdentity(t *testing.T) {
	p := Identity().Apply(Point{3, -4})
	if !ptNear(p, 3, -4) {
		t.Fatalf("identity moved the point: %+v", p)
	}
}

func TestMatrixTranslateScale(t *testing.T) {
	m := Identity().Translate(10, 5).Scale(2, 3)
	p := m.Apply(Point{1, 1})
	if !ptNear(p, 12, 8) { // (1*2+10, 1*3+5)
		t.Fatalf("unexpected transform result: %+v", p)
	}
}

func TestMatrixRotate(t *testing.T) {
	p := Identity().Rotate(90).Apply(Point{1, 0})
	if !ptNear(p, 0, 1) {
		t.Fatalf("unexpected rotation result: %+v", p)
	}
}

func TestMatrixRotateAbout(t *testing.T) {
	p := Identity().RotateAbout(180, 1, 1).Apply(Point{0, 0})
	if !ptNear(p, 2, 2) {
		t.Fatalf("unexpected pivot rotation result: %+v", p)
	}
}

func TestMatrixSkewShear(t *testing.T) {
	if p := Identity().SkewX(45).Apply(Point{0, 1}); !ptNear(p, 1, 1) {
		t.Fatalf("unexpected skew-x result: %+v", p)
	}
	if p := Identity().SkewY(45).Apply(Point{1, 0}); !ptNear(p, 1, 1) {
		t.Fatalf("unexpected skew-y result: %+v", p)
	}
	if p := Identity().Shear(2, 0).Apply(Point{0, 1}); !ptNear(p, 2, 1) {
		t.Fatalf("unexpected shear result: %+v", p)
	}
}

func TestTransformCommands(t *testing.T) {
	cmds := mustSimplify(t, "M 1 1 L 2 1 C 2 2,3 2,3 1 Z")
	out := transformCommands(cmds, Identity().Scale(10, 10))
	want := "M 10 10 L 20 10 C 20 20,30 20,30 10 Z"
	if got := formatCommands(out); got != want {
		t.Fatalf("transformed = %q, want %q", got, want)
	}
	// the input sequence is untouched
	if got := formatCommands(cmds); got != "M 1 1 L 2 1 C 2 2,3 2,3 1 Z" {
		t.Fatalf("input mutated: %q", got)
	}
}
