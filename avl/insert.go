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

import "cmp"

// Rotation names the imbalance shape an insertion had to repair.
type Rotation int

const (
	LeftLeft   Rotation = iota // single right rotation
	LeftRight                  // left rotation of the left child, then right rotation
	RightRight                 // single left rotation
	RightLeft                  // right rotation of the right child, then left rotation
)

func (r Rotation) String() string {
	switch r {
	case LeftLeft:
		return "left-left"
	case LeftRight:
		return "left-right"
	case RightRight:
		return "right-right"
	case RightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// RotationHook is told about every rebalance, with the value of the node
// that was found out of balance.
type RotationHook[V cmp.Ordered] func(r Rotation, pivot V)

// Insert adds x to the tree rooted at root and returns the new root.
//
// The tree passed in is consumed: rotations may move root below one of its
// descendants, so the caller must continue with the returned node only.
func Insert[V cmp.Ordered](root *Node[V], x V) *Node[V] {
	return InsertFunc(root, x, nil)
}

// InsertFunc is Insert with a hook that observes rotations. hook may be nil.
func InsertFunc[V cmp.Ordered](root *Node[V], x V, hook RotationHook[V]) *Node[V] {
	if root == nil {
		return NewNode(x)
	}

	if x < root.value {
		root.SetLeft(InsertFunc(root.left, x, hook))
		if !balanced(root) {
			// The freshly attached child tells us which side x went down.
			if x < root.left.value {
				notify(hook, LeftLeft, root.value)
				return rotateWithLeftChild(root)
			}
			notify(hook, LeftRight, root.value)
			root.SetLeft(rotateWithRightChild(root.left))
			return rotateWithLeftChild(root)
		}
		root.computeHeight()
		return root
	}

	root.SetRight(InsertFunc(root.right, x, hook))
	if !balanced(root) {
		if x >= root.right.value {
			notify(hook, RightRight, root.value)
			return rotateWithRightChild(root)
		}
		notify(hook, RightLeft, root.value)
		root.SetRight(rotateWithLeftChild(root.right))
		return rotateWithRightChild(root)
	}
	root.computeHeight()
	return root
}

func notify[V cmp.Ordered](hook RotationHook[V], r Rotation, pivot V) {
	if hook != nil {
		hook(r, pivot)
	}
}

// balanced reports whether the children of n differ in height by less than two.
func balanced[V cmp.Ordered](n *Node[V]) bool {
	diff := n.left.Height() - n.right.Height()
	return diff > -2 && diff < 2
}

// rotateWithLeftChild promotes the left child of k2 and returns it.
func rotateWithLeftChild[V cmp.Ordered](k2 *Node[V]) *Node[V] {
	k1 := k2.left
	k2.SetLeft(k1.right)
	k1.SetRight(k2)

	// k2 is now below k1, so its height has to be settled first.
	k2.computeHeight()
	k1.computeHeight()
	return k1
}

// rotateWithRightChild promotes the right child of k1 and returns it.
func rotateWithRightChild[V cmp.Ordered](k1 *Node[V]) *Node[V] {
	k2 := k1.right
	k1.SetRight(k2.left)
	k2.SetLeft(k1)

	k1.computeHeight()
	k2.computeHeight()
	return k2
}
