/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pathkit/internal/svgpath"
)

func simplified(t *testing.T, data string) *svgpath.SimplePath {
	t.Helper()
	p, err := svgpath.Parse(data)
	if err != nil {
		t.Fatalf("parse %q: %v", data, err)
	}
	return p.Simplify()
}

func TestBuildDocument(t *testing.T) {
	const src = "M 0 0 H 10 Q 15 10 20 0 Z"
	doc, err := BuildDocument(simplified(t, src), src)
	if err != nil {
		t.Fatalf("BuildDocument error: %v", err)
	}
	if doc.Source != src {
		t.Fatalf("source = %q", doc.Source)
	}
	ops := make([]string, 0, len(doc.Commands))
	for _, c := range doc.Commands {
		ops = append(ops, c.Op)
	}
	want := []string{"move", "line", "cubic", "close"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v", ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}
	if doc.BBox == nil {
		t.Fatalf("expected a bbox")
	}
	if doc.BBox.MinX != 0 || doc.BBox.MaxX != 20 {
		t.Fatalf("bbox x range: %+v", doc.BBox)
	}
	cubic := doc.Commands[2]
	if cubic.X1 == nil || cubic.Y1 == nil || cubic.X2 == nil || cubic.Y2 == nil {
		t.Fatalf("cubic missing control points: %+v", cubic)
	}
}

func TestBuildDocumentNoGeometry(t *testing.T) {
	const src = "M 5 5"
	doc, err := BuildDocument(simplified(t, src), src)
	if err != nil {
		t.Fatalf("BuildDocument error: %v", err)
	}
	if doc.BBox == nil {
		t.Fatalf("single point still has a box")
	}
	if doc.BBox.Width != 0 || doc.BBox.Height != 0 {
		t.Fatalf("point box must be empty: %+v", doc.BBox)
	}
}

func TestWriteDocumentFile(t *testing.T) {
	const src = "M 0 0 L 10 0 L 10 10 Z"
	name := filepath.Join(t.TempDir(), "path.json")
	if err := WriteDocumentFile(name, simplified(t, src), src); err != nil {
		t.Fatalf("WriteDocumentFile error: %v", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Path != "M 0 0 L 10 0 L 10 10 Z" {
		t.Fatalf("path = %q", doc.Path)
	}
}
