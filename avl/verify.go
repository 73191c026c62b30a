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
	"math"
)

var (
	ErrOrdering = errors.New("ordering violated")
	ErrHeight   = errors.New("cached height is stale")
	ErrBalance  = errors.New("node out of balance")
)

// Verify walks the whole tree and checks the search-tree ordering, the
// cached heights and the AVL balance condition. For distinct values the
// ordering check is strict on the left; equal values only have to stay in
// inorder sequence. The first violation found is
// returned wrapped around one of ErrOrdering, ErrHeight or ErrBalance.
func Verify[V cmp.Ordered](root *Node[V]) error {
	_, err := verify(root, nil, nil)
	return err
}

// verify checks that every value v below n satisfies lo <= v <= hi (nil
// bound = unbounded) and returns the real height of n. The upper bound is
// inclusive because a rotation can lift a duplicate above an equal value that
// was inserted before it.
func verify[V cmp.Ordered](n *Node[V], lo, hi *V) (int, error) {
	if n == nil {
		return -1, nil
	}
	if lo != nil && n.value < *lo {
		return 0, fmt.Errorf("%w: %v sits in the right subtree of %v", ErrOrdering, n.value, *lo)
	}
	if hi != nil && n.value > *hi {
		return 0, fmt.Errorf("%w: %v sits in the left subtree of %v", ErrOrdering, n.value, *hi)
	}

	lh, err := verify(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := verify(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(lh, rh); n.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrHeight, n.value, n.height, want)
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, fmt.Errorf("%w: node %v has subtree heights %d and %d", ErrBalance, n.value, lh, rh)
	}
	return n.height, nil
}

// MaxHeight is the tallest an AVL tree of n values can be:
// floor(1.4405*log2(n+2) - 0.3277).
func MaxHeight(n int) int {
	if n <= 0 {
		return -1
	}
	return int(math.Floor(1.4405*math.Log2(float64(n+2)) - 0.3277))
}
