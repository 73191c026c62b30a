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
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Order selects one of the classic depth-first traversals.
type Order int

const (
	Inorder   Order = iota // left, root, right
	Preorder               // root, left, right
	Postorder              // left, right, root
)

// Orders lists every traversal in display order.
var Orders = []Order{Inorder, Preorder, Postorder}

var ErrUnknownOrder = errors.New("unknown traversal order")

func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a traversal name such as "preorder" (case insensitive,
// "pre" and "in-order" style spellings accepted) to an Order.
func ParseOrder(name string) (Order, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "")
	switch s {
	case "inorder", "in":
		return Inorder, nil
	case "preorder", "pre":
		return Preorder, nil
	case "postorder", "post":
		return Postorder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Inorder yields the values of the subtree in ascending order.
func (n *Node[V]) Inorder() iter.Seq[V] {
	return n.Walk(Inorder)
}

func (n *Node[V]) Preorder() iter.Seq[V] {
	return n.Walk(Preorder)
}

func (n *Node[V]) Postorder() iter.Seq[V] {
	return n.Walk(Postorder)
}

// Walk returns a sequence over the subtree in the given order. The sequence
// reads the tree each time it is ranged over, so it can be reused as long as
// the tree is not modified in the meantime.
func (n *Node[V]) Walk(order Order) iter.Seq[V] {
	return func(yield func(V) bool) {
		walk(n, order, yield)
	}
}

// walk returns false once yield asks to stop.
func walk[V cmp.Ordered](n *Node[V], order Order, yield func(V) bool) bool {
	if n == nil {
		return true
	}
	switch order {
	case Preorder:
		return yield(n.value) &&
			walk(n.left, order, yield) &&
			walk(n.right, order, yield)
	case Postorder:
		return walk(n.left, order, yield) &&
			walk(n.right, order, yield) &&
			yield(n.value)
	default:
		return walk(n.left, order, yield) &&
			yield(n.value) &&
			walk(n.right, order, yield)
	}
}

// Render formats a sequence of values separated by single spaces, with no
// leading or trailing space.
func Render[V any](seq iter.Seq[V]) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// String renders the subtree in inorder.
func (n *Node[V]) String() string {
	return Render(n.Inorder())
}
