/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders parsed paths into interchange formats: a JSON
// document describing the normalized segments, and a standalone SVG file.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"pathkit/internal/svgpath"
)

// Document is the JSON interchange form of a normalized path. Commands
// hold only the four normalized operation kinds.
type Document struct {
	Source   string       `json:"source"`
	Path     string       `json:"path"`
	Commands []DocCommand `json:"commands"`
	BBox     *DocBBox     `json:"bbox,omitempty"`
}

// DocCommand is one normalized segment. Fields beyond Op are populated
// per kind: move/line use X/Y, cubic adds both control points, close
// carries nothing.
type DocCommand struct {
	Op string   `json:"op"`
	X  *float64 `json:"x,omitempty"`
	Y  *float64 `json:"y,omitempty"`
	X1 *float64 `json:"x1,omitempty"`
	Y1 *float64 `json:"y1,omitempty"`
	X2 *float64 `json:"x2,omitempty"`
	Y2 *float64 `json:"y2,omitempty"`
}

// DocBBox is the tight bounding box of the path, omitted for paths with
// no geometry.
type DocBBox struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	MaxX   float64 `json:"maxX"`
	MaxY   float64 `json:"maxY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BuildDocument converts a normalized path into its JSON document form.
// Source is the original path text as given by the caller; it is carried
// verbatim for traceability.
func BuildDocument(sp *svgpath.SimplePath, source string) (Document, error) {
	doc := Document{
		Source:   source,
		Path:     sp.String(),
		Commands: make([]DocCommand, 0, len(sp.Commands())),
	}
	for _, c := range sp.Commands() {
		dc, err := docCommand(c)
		if err != nil {
			return Document{}, err
		}
		doc.Commands = append(doc.Commands, dc)
	}
	if b, ok := sp.BBox(); ok {
		doc.BBox = &DocBBox{
			MinX:   b.MinX,
			MinY:   b.MinY,
			MaxX:   b.MaxX,
			MaxY:   b.MaxY,
			Width:  b.Width(),
			Height: b.Height(),
		}
	}
	return doc, nil
}

func docCommand(c svgpath.Command) (DocCommand, error) {
	f := func(v float64) *float64 { return &v }
	switch c.Op {
	case svgpath.OpMove:
		return DocCommand{Op: "move", X: f(c.X), Y: f(c.Y)}, nil
	case svgpath.OpLine:
		return DocCommand{Op: "line", X: f(c.X), Y: f(c.Y)}, nil
	case svgpath.OpCubic:
		return DocCommand{
			Op: "cubic",
			X1: f(c.X1), Y1: f(c.Y1),
			X2: f(c.X2), Y2: f(c.Y2),
			X: f(c.X), Y: f(c.Y),
		}, nil
	case svgpath.OpClose:
		return DocCommand{Op: "close"}, nil
	default:
		return DocCommand{}, fmt.Errorf("non-normalized command %q in document", c.String())
	}
}

// MarshalDocument renders the document as indented JSON.
func MarshalDocument(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal path document: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteDocumentFile builds the JSON document and writes it to name.
func WriteDocumentFile(name string, sp *svgpath.SimplePath, source string) error {
	doc, err := BuildDocument(sp, source)
	if err != nil {
		return err
	}
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write path document: %w", err)
	}
	return nil
}
