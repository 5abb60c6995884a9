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

import "iter"

// All returns an iterator over the entries in ascending key order.
// The tree must not be modified during the iteration.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ascend(tree.root, yield)
	}
}

// Backward returns an iterator over the entries in descending key order.
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		descend(tree.root, yield)
	}
}

// Range returns an iterator over the entries whose key k satisfies
// lo <= k < hi, in ascending order.
func (tree *Tree[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.rangeSearch(tree.root, lo, hi, yield)
	}
}

// Keys returns every key in ascending order.
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.size)
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

// in-order walk, false once yield asked to stop
func ascend[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return ascend(n.left, yield) && yield(n.key, n.value) && ascend(n.right, yield)
}

func descend[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return descend(n.right, yield) && yield(n.key, n.value) && descend(n.left, yield)
}

// rangeSearch only enters the subtrees that can still hold keys in [lo, hi).
func (tree *Tree[K, V]) rangeSearch(n *node[K, V], lo, hi K, yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	aboveLo := tree.compare(n.key, lo) >= 0
	belowHi := tree.compare(n.key, hi) < 0

	if aboveLo && !tree.rangeSearch(n.left, lo, hi, yield) {
		return false
	}
	if aboveLo && belowHi && !yield(n.key, n.value) {
		return false
	}
	if belowHi {
		return tree.rangeSearch(n.right, lo, hi, yield)
	}
	return true
}
