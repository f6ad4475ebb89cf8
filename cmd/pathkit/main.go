/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"pathkit/internal/config"
	"pathkit/internal/crash"
	"pathkit/internal/export"
	applog "pathkit/internal/log"
	"pathkit/internal/svgpath"
	"pathkit/internal/version"
)

func usage() {
	fmt.Println("PathKit — SVG path data toolkit")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pathkit version|-v|--version                Show version")
	fmt.Println("  pathkit parse <path>                        Parse path data and print it normalized")
	fmt.Println("  pathkit simplify <path>                     Reduce path data to M/L/C/Z commands")
	fmt.Println("  pathkit bbox <path>                         Print the tight bounding box")
	fmt.Println("  pathkit fit <path> <x> <y> <w> <h>          Fit the path into a rectangle")
	fmt.Println("  pathkit reverse <path>                      Reverse the drawing direction")
	fmt.Println("  pathkit split <path>                        Print each subpath on its own line")
	fmt.Println("  pathkit svg <path> [<out.svg>]              Render the path as a standalone SVG")
	fmt.Println("  pathkit json <path> [<out.json>]            Emit the normalized path as JSON")
	fmt.Println()
	fmt.Println("Pass \"-\" as <path> to read path data from stdin, or \"@<file>\" to read it from a file.")
}

// readInput resolves the path-data argument; "-" reads stdin and "@<file>"
// reads the named file.
func readInput(arg string) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("read path file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return arg, nil
	}
}

func fail(l *slog.Logger, msg string, err error) {
	l.Error(msg, slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	var input string
	defer func() { crash.Recover(input) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("PathKit — SVG path data toolkit")
		fmt.Println(version.String())
		return
	case "help", "--help", "-h":
		usage()
		return
	}

	if len(args) < 3 {
		fmt.Printf("%s requires <path>\n", args[1])
		usage()
		os.Exit(2)
	}
	in, err := readInput(args[2])
	if err != nil {
		fail(l, "read input failed", err)
	}
	input = in

	p, err := svgpath.Parse(input)
	if err != nil {
		fail(l, "parse failed", err)
	}

	switch args[1] {
	case "parse":
		fmt.Println(p.String())
	case "simplify":
		fmt.Println(p.Simplify().String())
	case "bbox":
		b, ok := p.Simplify().BBox()
		if !ok {
			fmt.Println("empty")
			return
		}
		fmt.Printf("min: (%g, %g)\n", b.MinX, b.MinY)
		fmt.Printf("max: (%g, %g)\n", b.MaxX, b.MaxY)
		fmt.Printf("size: %g x %g\n", b.Width(), b.Height())
	case "fit":
		if len(args) < 7 {
			fmt.Println("fit requires <path> <x> <y> <w> <h>")
			usage()
			os.Exit(2)
		}
		var vals [4]float64
		for i, a := range args[3:7] {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				fail(l, "bad rectangle", fmt.Errorf("parse %q: %w", a, err))
			}
			vals[i] = v
		}
		cfg, err := config.Load()
		if err != nil {
			fail(l, "load config failed", err)
		}
		target := svgpath.NewRect(vals[0], vals[1], vals[2], vals[3])
		l.Info("fit", slog.Any("target", target))
		fmt.Println(p.Simplify().Fit(target, cfg.Fit.KeepAspect, cfg.Fit.Centered).String())
	case "reverse":
		fmt.Println(p.Simplify().Reverse().String())
	case "split":
		for _, sub := range p.Split() {
			fmt.Println(sub.String())
		}
	case "svg":
		cfg, err := config.Load()
		if err != nil {
			fail(l, "load config failed", err)
		}
		opt := export.SVGOptions{
			Margin:      cfg.Render.Margin,
			Stroke:      cfg.Render.Stroke,
			StrokeWidth: cfg.Render.StrokeWidth,
			Fill:        cfg.Render.Fill,
		}
		sp := p.Simplify()
		if len(args) >= 4 {
			if err := export.WriteSVGFile(args[3], sp, opt); err != nil {
				fail(l, "write svg failed", err)
			}
			l.Info("svg written", slog.String("file", args[3]))
			return
		}
		data, err := export.BuildSVG(sp, opt)
		if err != nil {
			fail(l, "build svg failed", err)
		}
		fmt.Print(string(data))
	case "json":
		sp := p.Simplify()
		if len(args) >= 4 {
			if err := export.WriteDocumentFile(args[3], sp, input); err != nil {
				fail(l, "write json failed", err)
			}
			l.Info("json written", slog.String("file", args[3]))
			return
		}
		doc, err := export.BuildDocument(sp, input)
		if err != nil {
			fail(l, "build json failed", err)
		}
		data, err := export.MarshalDocument(doc)
		if err != nil {
			fail(l, "marshal json failed", err)
		}
		fmt.Print(string(data))
	default:
		usage()
		os.Exit(2)
	}
}
