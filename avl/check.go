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

import "fmt"

// IsBST reports whether an in-order walk yields strictly increasing keys.
func (tree *Tree[K, V]) IsBST() bool {
	first := true
	var prev K
	for k := range tree.All() {
		if !first && tree.compare(prev, k) >= 0 {
			return false
		}
		prev = k
		first = false
	}
	return true
}

// IsBalanced reports whether every node has a balance factor in {-1, 0, 1}.
func (tree *Tree[K, V]) IsBalanced() bool {
	return isBalanced(tree.root)
}

func isBalanced[K, V any](n *node[K, V]) bool {
	if n == nil {
		return true
	}
	if bf := balanceFactor(n); bf > 1 || bf < -1 {
		return false
	}
	return isBalanced(n.left) && isBalanced(n.right)
}

// Verify checks ordering, balance, cached heights and the key count, and
// returns an error wrapping ErrInvariant for the first violation found.
func (tree *Tree[K, V]) Verify() error {
	count, _, err := tree.verify(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("%w: size is %d but %d keys are reachable", ErrInvariant, tree.size, count)
	}
	return nil
}

// verify returns the number of nodes and the real height of the subtree.
// lo and hi, when set, are exclusive bounds inherited from the ancestors.
func (tree *Tree[K, V]) verify(n *node[K, V], lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && tree.compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not greater than ancestor %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && tree.compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not less than ancestor %v", ErrInvariant, n.key, *hi)
	}

	lc, lh, err := tree.verify(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := tree.verify(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: key %v caches height %d, real height is %d", ErrInvariant, n.key, n.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance factor %d", ErrInvariant, n.key, bf)
	}
	return lc + rc + 1, h, nil
}
