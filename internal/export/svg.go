/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"os"

	"pathkit/internal/svgpath"
)

// SVGOptions controls standalone SVG output.
// - Margin widens the viewBox around the path's bounding box, in path units.
// - Stroke/Fill are SVG paint values ("#000", "none", "red").
type SVGOptions struct {
	Margin      float64
	Stroke      string
	StrokeWidth float64
	Fill        string
}

// BuildSVG renders the path as a complete standalone SVG image. The
// viewBox is derived from the path's tight bounding box plus the margin;
// a path with no geometry gets a unit viewBox.
func BuildSVG(sp *svgpath.SimplePath, opt SVGOptions) ([]byte, error) {
	stroke := opt.Stroke
	if stroke == "" {
		stroke = "#000"
	}
	fill := opt.Fill
	if fill == "" {
		fill = "none"
	}
	sw := opt.StrokeWidth
	if sw <= 0 {
		sw = 1
	}

	minX, minY, w, h := 0.0, 0.0, 1.0, 1.0
	if b, ok := sp.BBox(); ok {
		minX = b.MinX - opt.Margin
		minY = b.MinY - opt.Margin
		w = b.Width() + 2*opt.Margin
		h = b.Height() + 2*opt.Margin
		if w <= 0 {
			w = 1
		}
		if h <= 0 {
			h = 1
		}
	}

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"%g %g %g %g\">\n", minX, minY, w, h)
	wf("  <path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\"/>\n", escAttr(sp.String()), fill, escAttr(stroke), sw)
	wf("</svg>\n")

	if werr != nil {
		return nil, fmt.Errorf("build svg: %w", werr)
	}
	return buf.Bytes(), nil
}

// WriteSVGFile renders the path and writes the SVG image to name.
func WriteSVGFile(name string, sp *svgpath.SimplePath, opt SVGOptions) error {
	data, err := BuildSVG(sp, opt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func escAttr(s string) string {
	// naive escaping sufficient for path data and paint values
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			out = append(out, '&', 'q', 'u', 'o', 't', ';')
		case '&':
			out = append(out, '&', 'a', 'm', 'p', ';')
		case '<':
			out = append(out, '&', 'l', 't', ';')
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
