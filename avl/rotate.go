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

// height of a subtree, an absent child counts as 0
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[K, V any](n *node[K, V]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight turns (y (x a b) c) into (x a (y b c)).
func rotateRight[K, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	y.left = x.right
	x.right = y

	// y is now a child of x, so it goes first
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft turns (y a (x b c)) into (x (y a b) c).
func rotateLeft[K, V any](y *node[K, V]) *node[K, V] {
	x := y.right
	y.right = x.left
	x.left = y

	updateHeight(y)
	updateHeight(x)

	return x
}

// rebalance refreshes the cached height of n and restores the balance
// invariant at n. It returns the root of the subtree, which the caller
// must store back into the parent link.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	updateHeight(n)
	bf := balanceFactor(n)

	switch {
	case bf > 1 && balanceFactor(n.left) >= 0: // LL
		return rotateRight(n)
	case bf < -1 && balanceFactor(n.right) <= 0: // RR
		return rotateLeft(n)
	case bf > 1 && balanceFactor(n.left) < 0: // LR
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1 && balanceFactor(n.right) > 0: // RL
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}
