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
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Diagram draws the tree top-down, one string per line, every line padded to
// the same width:
//
//	  20_
//	 /   \
//	10  30
//
// It returns nil for an empty tree.
func Diagram[V cmp.Ordered](root *Node[V]) []string {
	if root == nil {
		return nil
	}
	lines, _, _ := layout(root)
	return lines
}

// layout returns the lines of the subtree, their width, and the column of
// the middle of the root label.
func layout[V cmp.Ordered](n *Node[V]) ([]string, int, int) {
	label := fmt.Sprint(n.value)
	if label == "" {
		label = `""`
	}
	l := utf8.RuneCountInString(label)

	switch {
	case n.left == nil && n.right == nil:
		return []string{label}, l, l / 2

	case n.right == nil:
		lines, lw, lm := layout(n.left)
		first := spaces(lm+1) + strings.Repeat("_", lw-lm-1) + label
		second := spaces(lm) + "/" + spaces(lw-lm-1+l)
		out := []string{first, second}
		for _, line := range lines {
			out = append(out, line+spaces(l))
		}
		return out, lw + l, lw + l/2

	case n.left == nil:
		lines, rw, rm := layout(n.right)
		first := label + strings.Repeat("_", rm) + spaces(rw-rm)
		second := spaces(l+rm) + `\` + spaces(rw-rm-1)
		out := []string{first, second}
		for _, line := range lines {
			out = append(out, spaces(l)+line)
		}
		return out, l + rw, l / 2
	}

	left, lw, lm := layout(n.left)
	right, rw, rm := layout(n.right)
	first := spaces(lm+1) + strings.Repeat("_", lw-lm-1) + label + strings.Repeat("_", rm) + spaces(rw-rm)
	second := spaces(lm) + "/" + spaces(lw-lm-1+l+rm) + `\` + spaces(rw-rm-1)

	for len(left) < len(right) {
		left = append(left, spaces(lw))
	}
	for len(right) < len(left) {
		right = append(right, spaces(rw))
	}

	out := []string{first, second}
	for i := range left {
		out = append(out, left[i]+spaces(l)+right[i])
	}
	return out, lw + l + rw, lw + l/2
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
