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
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
)

// demoSequence exercises all four rotation cases.
var demoSequence = []int{63, 2, -10, -15, 81, 89, 93, 4, 6, 20, 17, 23}

// runDemo inserts demoSequence one value at a time and prints the tree after
// each step, followed by the final traversals and diagram.
func runDemo(w io.Writer, verify bool) error {
	tree := avl.New[int](avl.WithRotationHook[int](func(r avl.Rotation, pivot int) {
		logRotation(kinds.RotationEvent{Case: r, Pivot: fmt.Sprint(pivot)})
	}))

	fmt.Fprintf(w, "empty: %t\n", tree.IsEmpty())
	for _, v := range demoSequence {
		tree.Insert(v)
		fmt.Fprintf(w, "avlBST = %s\n", tree)

		if verify {
			if err := avl.Verify(tree.Root()); err != nil {
				return fmt.Errorf("tree invalid after inserting %d: %w", v, err)
			}
		}
	}

	fmt.Fprintln(w)
	for _, order := range avl.Orders {
		fmt.Fprintf(w, "%-10s %s\n", order.String()+":", avl.Render(tree.Walk(order)))
	}
	fmt.Fprintf(w, "height: %d, size: %d\n\n", tree.Height(), tree.Len())
	fmt.Fprintln(w, strings.Join(avl.Diagram(tree.Root()), "\n"))
	return nil
}
