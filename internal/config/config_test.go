/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"testing"
)

func TestEnvOverridesRenderStroke(t *testing.T) {
	old := os.Getenv(EnvRenderStroke)
	_ = os.Setenv(EnvRenderStroke, "#ff0000")
	t.Cleanup(func() { _ = os.Setenv(EnvRenderStroke, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := cfg.Render.Stroke, "#ff0000"; got != want {
		t.Fatalf("Render.Stroke = %q, want %q", got, want)
	}
}

func TestEnvOverridesRenderMargin(t *testing.T) {
	old := os.Getenv(EnvRenderMargin)
	_ = os.Setenv(EnvRenderMargin, "2.5")
	t.Cleanup(func() { _ = os.Setenv(EnvRenderMargin, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Margin != 2.5 {
		t.Fatalf("Render.Margin = %v, want 2.5", cfg.Render.Margin)
	}
}

func TestEnvOverridesRenderMarginInvalid(t *testing.T) {
	old := os.Getenv(EnvRenderMargin)
	_ = os.Setenv(EnvRenderMargin, "not-a-number")
	t.Cleanup(func() { _ = os.Setenv(EnvRenderMargin, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Margin != Defaults().Render.Margin {
		t.Fatalf("invalid margin override must keep the default, got %v", cfg.Render.Margin)
	}
}

func TestMergeIncludesFit(t *testing.T) {
	// Given a file config that clears fit flags, mergeInto should carry it through
	dst := Defaults()
	src := Defaults()
	src.Fit.KeepAspect = false
	src.Fit.Centered = false
	mergeInto(&dst, &src)
	if dst.Fit.KeepAspect || dst.Fit.Centered {
		t.Fatalf("fit flags were not merged from file config: %#v", dst.Fit)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "debug"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "C:/tmp/pk.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "C:/tmp/pk.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	oldLevel := os.Getenv(EnvLogLevel)
	oldFmt := os.Getenv(EnvLogFormat)
	oldSrc := os.Getenv(EnvLogSource)
	oldFile := os.Getenv(EnvLogFile)
	_ = os.Setenv(EnvLogLevel, "error")
	_ = os.Setenv(EnvLogFormat, "json")
	_ = os.Setenv(EnvLogSource, "1")
	_ = os.Setenv(EnvLogFile, "X:/pk.log")
	t.Cleanup(func() {
		_ = os.Setenv(EnvLogLevel, oldLevel)
		_ = os.Setenv(EnvLogFormat, oldFmt)
		_ = os.Setenv(EnvLogSource, oldSrc)
		_ = os.Setenv(EnvLogFile, oldFile)
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "X:/pk.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	old := os.Getenv(EnvLogLevel)
	_ = os.Setenv(EnvLogLevel, "debug")
	t.Cleanup(func() { _ = os.Setenv(EnvLogLevel, old) })
	name, ok := EnvOverrideFor("logging.level")
	if !ok || name != EnvLogLevel {
		t.Fatalf("EnvOverrideFor(logging.level) = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("no.such.key"); ok {
		t.Fatalf("unknown key must not report an override")
	}
}
