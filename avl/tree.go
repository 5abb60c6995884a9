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

// node is a single entry of the tree. A node owns its two subtrees.
type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	height int // 1 for a leaf
}

// Tree is an ordered map from K to V.
type Tree[K, V any] struct {
	root    *node[K, V]
	size    int
	compare func(a, b K) int
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b. compare must define a total order; the tree does not check it.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{compare: compare}
}

// Size returns the number of keys in the tree.
func (tree *Tree[K, V]) Size() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.size == 0
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Clear drops every node.
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.size = 0
}
