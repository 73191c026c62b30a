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
	"iter"
)

// Tree holds the root of an AVL tree and swaps it for whatever Insert
// returns. A Tree is not safe for concurrent use; rotations rewrite several
// pointers at once, so callers sharing one must serialise access themselves.
type Tree[V cmp.Ordered] struct {
	root *Node[V]
	size int
	hook RotationHook[V]
}

type Option[V cmp.Ordered] func(*Tree[V])

// WithRotationHook installs a hook called for every rebalance.
func WithRotationHook[V cmp.Ordered](hook RotationHook[V]) Option[V] {
	return func(t *Tree[V]) {
		t.hook = hook
	}
}

func New[V cmp.Ordered](opts ...Option[V]) *Tree[V] {
	t := &Tree[V]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree[V]) Insert(x V) {
	t.root = InsertFunc(t.root, x, t.hook)
	t.size++
}

// Root returns the current root. It changes identity after rotations, so do
// not hold on to it across inserts.
func (t *Tree[V]) Root() *Node[V] { return t.root }

func (t *Tree[V]) Len() int { return t.size }

// Height is -1 for an empty tree.
func (t *Tree[V]) Height() int { return t.root.Height() }

func (t *Tree[V]) IsEmpty() bool { return t.root.IsEmpty() }

func (t *Tree[V]) Inorder() iter.Seq[V]   { return t.root.Inorder() }
func (t *Tree[V]) Preorder() iter.Seq[V]  { return t.root.Preorder() }
func (t *Tree[V]) Postorder() iter.Seq[V] { return t.root.Postorder() }

func (t *Tree[V]) Walk(order Order) iter.Seq[V] { return t.root.Walk(order) }

func (t *Tree[V]) String() string { return t.root.String() }
