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

// Remove deletes key from the tree and returns the value it held. When the
// key is absent the tree is unchanged and Remove returns the zero value and
// false.
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	n := tree.lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}
	value := n.value
	tree.root = tree.remove(tree.root, key)
	return value, true
}

func (tree *Tree[K, V]) remove(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	var replacement *node[K, V]
	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left = tree.remove(n.left, key)
		replacement = n
	case c > 0:
		n.right = tree.remove(n.right, key)
		replacement = n
	default:
		switch {
		case n.left == nil:
			replacement = n.right
			tree.size--
		case n.right == nil:
			replacement = n.left
			tree.size--
		default:
			// Two children: the in-order successor takes this node's place.
			// Removing it from the right subtree rebalances that path and
			// accounts for the size change.
			successor := n.right.first()
			successor.right = tree.remove(n.right, successor.key)
			successor.left = n.left
			replacement = successor
		}
		n.left = nil
		n.right = nil
	}

	// a removed leaf leaves nothing to balance at this level
	if replacement == nil {
		return nil
	}
	return rebalance(replacement)
}
