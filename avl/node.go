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

// Package avl implements an AVL tree: a binary search tree that rebalances
// on every insertion so that the two subtrees of any node differ in height
// by at most one.
//
// Values smaller than a node go left; values greater than or equal to it go
// right, so equal values keep their insertion order in an inorder walk.
package avl

import "cmp"

// Node is one vertex of the tree. A nil *Node is the empty tree.
type Node[V cmp.Ordered] struct {
	value  V
	left   *Node[V]
	right  *Node[V]
	height int // leaf = 0, absent child = -1
}

// NewNode returns a leaf holding v.
func NewNode[V cmp.Ordered](v V) *Node[V] {
	return &Node[V]{value: v}
}

// IsEmpty reports whether n holds no value. It is safe on a nil receiver.
func (n *Node[V]) IsEmpty() bool {
	return n == nil
}

// Value returns the payload of n. Calling it on an empty tree returns the
// zero value of V.
func (n *Node[V]) Value() V {
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

func (n *Node[V]) Left() *Node[V] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[V]) Right() *Node[V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of the subtree rooted at n, or -1 for the
// empty tree.
func (n *Node[V]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// SetLeft replaces the left subtree of n. The cached height is left as is;
// the insertion engine recomputes it once the subtree is settled.
func (n *Node[V]) SetLeft(child *Node[V]) {
	n.left = child
}

// SetRight replaces the right subtree of n. See SetLeft.
func (n *Node[V]) SetRight(child *Node[V]) {
	n.right = child
}

func (n *Node[V]) computeHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}
