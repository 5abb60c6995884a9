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

// lookup finds the node holding key, nil if there is none.
func (tree *Tree[K, V]) lookup(key K) *node[K, V] {
	n := tree.root
	for n != nil {
		c := tree.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Get returns the value stored under key and whether the key was found.
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if n := tree.lookup(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is in the tree.
func (tree *Tree[K, V]) Contains(key K) bool {
	return tree.lookup(key) != nil
}

// Set replaces the value of an existing key. Unlike Insert it never adds a
// key; it fails with ErrKeyNotFound when the key is absent.
func (tree *Tree[K, V]) Set(key K, value V) error {
	n := tree.lookup(key)
	if n == nil {
		return fmt.Errorf("set %v: %w", key, ErrKeyNotFound)
	}
	n.value = value
	return nil
}

// Min returns the smallest key.
func (tree *Tree[K, V]) Min() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, fmt.Errorf("min: %w", ErrEmptyTree)
	}
	return tree.root.first().key, nil
}

// Max returns the largest key.
func (tree *Tree[K, V]) Max() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, fmt.Errorf("max: %w", ErrEmptyTree)
	}
	return tree.root.last().key, nil
}

// leftmost node of a non-empty subtree
func (n *node[K, V]) first() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost node of a non-empty subtree
func (n *node[K, V]) last() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}
