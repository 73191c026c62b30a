// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if !reflect.DeepEqual(*cfg, defaultConfig()) {
		t.Errorf("config = %+v, want defaults %+v", *cfg, defaultConfig())
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	content := []byte("tree:\n  kind: string\nbench:\n  size: 50\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if cfg.Tree.Kind != "string" {
		t.Errorf("Tree.Kind = %q, want string", cfg.Tree.Kind)
	}
	if cfg.Bench.Size != 50 {
		t.Errorf("Bench.Size = %d, want 50", cfg.Bench.Size)
	}
	// Untouched fields keep their defaults.
	if cfg.Bench.Pattern != patternAscending {
		t.Errorf("Bench.Pattern = %q, want %q", cfg.Bench.Pattern, patternAscending)
	}
	if !cfg.Display.Diagram {
		t.Error("Display.Diagram should default to true")
	}
	if len(cfg.Tree.Orders) != 3 {
		t.Errorf("Tree.Orders = %v, want all three", cfg.Tree.Orders)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("tree: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if !reflect.DeepEqual(*cfg, defaultConfig()) {
		t.Errorf("config = %+v, want defaults", *cfg)
	}
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig returned error: %v", err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if !reflect.DeepEqual(*cfg, defaultConfig()) {
		t.Errorf("config = %+v, want defaults", *cfg)
	}
}

func TestParseOrders(t *testing.T) {
	testCases := []struct {
		Name    string
		Input   []string
		Want    []avl.Order
		WantErr bool
	}{
		{Name: "empty means all", Input: nil, Want: avl.Orders},
		{Name: "short names", Input: []string{"post", "in"}, Want: []avl.Order{avl.Postorder, avl.Inorder}},
		{Name: "full names", Input: []string{"preorder"}, Want: []avl.Order{avl.Preorder}},
		{Name: "unknown", Input: []string{"inorder", "levelorder"}, WantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := parseOrders(tc.Input)
			if tc.WantErr {
				if !errors.Is(err, avl.ErrUnknownOrder) {
					t.Errorf("parseOrders(%v) error = %v, want ErrUnknownOrder", tc.Input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrders(%v) returned error: %v", tc.Input, err)
			}
			if !reflect.DeepEqual(got, tc.Want) {
				t.Errorf("parseOrders(%v) = %v, want %v", tc.Input, got, tc.Want)
			}
		})
	}
}

func TestConfigSessionConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.ExpectedValues = 42
	cfg.Session.FalsePositiveRate = 0.5

	got := cfg.SessionConfig()
	want := kinds.SessionConfig{ExpectedValues: 42, FalsePositiveRate: 0.5}
	if got.ExpectedValues != want.ExpectedValues || got.FalsePositiveRate != want.FalsePositiveRate {
		t.Errorf("SessionConfig() = %+v, want %+v", got, want)
	}
	if got.OnRotation != nil {
		t.Error("SessionConfig() should not install a rotation observer")
	}
}
