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

// Insert stores value under key. If the key is already present its value
// is overwritten and the size is unchanged. Insert reports whether a new
// key was added.
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	var added bool
	tree.root, added = tree.insert(tree.root, key, value)
	return added
}

func (tree *Tree[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		tree.size++
		return &node[K, V]{key: key, value: value, height: 1}, true
	}

	var added bool
	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left, added = tree.insert(n.left, key, value)
	case c > 0:
		n.right, added = tree.insert(n.right, key, value)
	default:
		// same key, shape is untouched
		n.value = value
		return n, false
	}

	return rebalance(n), added
}
