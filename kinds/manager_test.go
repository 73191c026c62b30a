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

package kinds

import (
	"errors"
	"slices"
	"testing"
)

func TestManagerDetect(t *testing.T) {
	manager := NewManager()

	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"1", "2", "-3"}, "int"},
		{[]string{"1", "2.5"}, "float"},
		{[]string{"1e3", "+Inf"}, "float"},
		{[]string{"1", "two"}, "string"},
		{[]string{"NaN"}, "string"},
		{nil, "int"},
	}

	for _, tc := range tests {
		k := manager.Detect(tc.tokens)
		if k == nil {
			t.Errorf("Detect(%q) = nil, want %s", tc.tokens, tc.want)
			continue
		}
		if k.Name() != tc.want {
			t.Errorf("Detect(%q) = %s, want %s", tc.tokens, k.Name(), tc.want)
		}
	}
}

func TestManagerGet(t *testing.T) {
	manager := NewManager()

	if k, err := manager.Get("Float"); err != nil || k.Name() != "float" {
		t.Errorf("Get(Float) = %v, %v", k, err)
	}

	_, err := manager.Get("complex")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Get(complex) error = %v, want ErrUnknownKind", err)
	}

	if got, want := manager.Names(), []string{"int", "float", "string"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestManagerResolve(t *testing.T) {
	manager := NewManager()

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"auto", []string{"3", "4"}, "int"},
		{"", []string{"3", "x"}, "string"},
		{"string", []string{"3", "4"}, "string"},
	}
	for _, tc := range tests {
		k, err := manager.Resolve(tc.name, tc.tokens)
		if err != nil {
			t.Errorf("Resolve(%q, %q) returned error: %v", tc.name, tc.tokens, err)
			continue
		}
		if k.Name() != tc.want {
			t.Errorf("Resolve(%q, %q) = %s, want %s", tc.name, tc.tokens, k.Name(), tc.want)
		}
	}
}

// upperKind is a test kind that only takes upper case words.
type upperKind struct{ StringKind }

func (upperKind) Name() string  { return "upper" }
func (upperKind) Priority() int { return 5 }

func (upperKind) Accepts(token string) bool {
	for _, r := range token {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return token != ""
}

func TestManagerRegister(t *testing.T) {
	manager := NewManager()
	manager.Register(upperKind{})

	if got, want := manager.Names(), []string{"int", "float", "upper", "string"}; !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if k := manager.Detect([]string{"AB", "CD"}); k.Name() != "upper" {
		t.Errorf("Detect picked %s, want upper", k.Name())
	}

	// Registering under an existing name replaces the old kind.
	manager.Register(upperKind{})
	if n := len(manager.Names()); n != 4 {
		t.Errorf("got %d kinds after re-registering, want 4", n)
	}
}
