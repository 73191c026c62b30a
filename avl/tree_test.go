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

package avl

import (
	"slices"
	"testing"
)

type TreeTestCase struct {
	Name          string
	Keys          []string
	ExpectedOrder []string
	ExpectedRoot  string
	ExpectedLen   int
}

func TestTreeOperations(t *testing.T) {
	testCases := []TreeTestCase{
		{
			Name:          "Simple Insertion",
			Keys:          []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
			ExpectedRoot:  "banana",
			ExpectedLen:   3,
		},
		{
			Name:          "Left Heavy Input",
			Keys:          []string{"cherry", "banana", "apple"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
			ExpectedRoot:  "banana",
			ExpectedLen:   3,
		},
		{
			Name:          "Mixed Input",
			Keys:          []string{"dog", "cat", "elephant", "bird"},
			ExpectedOrder: []string{"bird", "cat", "dog", "elephant"},
			ExpectedRoot:  "dog",
			ExpectedLen:   4,
		},
		{
			Name:          "Repeated Key",
			Keys:          []string{"dog", "dog", "cat"},
			ExpectedOrder: []string{"cat", "dog", "dog"},
			ExpectedRoot:  "dog",
			ExpectedLen:   3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string]()
			for _, key := range tc.Keys {
				tree.Insert(key)
			}

			if got := slices.Collect(tree.Inorder()); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("inorder = %v, want %v", got, tc.ExpectedOrder)
			}
			if tree.Root().Value() != tc.ExpectedRoot {
				t.Errorf("root = %q, want %q", tree.Root().Value(), tc.ExpectedRoot)
			}
			if tree.Len() != tc.ExpectedLen {
				t.Errorf("Len() = %d, want %d", tree.Len(), tc.ExpectedLen)
			}
			if err := Verify(tree.Root()); err != nil {
				t.Errorf("Verify() = %v", err)
			}
		})
	}
}

func TestTreeRotationHook(t *testing.T) {
	var seen []Rotation
	tree := New(WithRotationHook(func(r Rotation, _ int) {
		seen = append(seen, r)
	}))

	for _, v := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(v)
	}

	// An ascending run only ever needs single left rotations.
	if len(seen) != 4 {
		t.Fatalf("got %d rotations, want 4: %v", len(seen), seen)
	}
	for _, r := range seen {
		if r != RightRight {
			t.Errorf("unexpected %s rotation", r)
		}
	}
	if got, want := Render(tree.Preorder()), "4 2 1 3 6 5 7"; got != want {
		t.Errorf("preorder = %q, want %q", got, want)
	}
	if got, want := Render(tree.Postorder()), "1 3 2 5 7 6 4"; got != want {
		t.Errorf("postorder = %q, want %q", got, want)
	}
	if got, want := Render(tree.Walk(Inorder)), "1 2 3 4 5 6 7"; got != want {
		t.Errorf("inorder = %q, want %q", got, want)
	}
	if tree.Height() != 2 {
		t.Errorf("Height() = %d, want 2", tree.Height())
	}
}

func TestEmptyTreeHandle(t *testing.T) {
	tree := New[float64]()

	if !tree.IsEmpty() {
		t.Error("new tree is not empty")
	}
	if tree.Height() != -1 {
		t.Errorf("Height() = %d, want -1", tree.Height())
	}
	if tree.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tree.Len())
	}
	if tree.String() != "" {
		t.Errorf("String() = %q, want empty", tree.String())
	}
}
