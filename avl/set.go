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

// Set is an ordered set of keys backed by a Tree with no values.
type Set[K any] struct {
	tree *Tree[K, struct{}]
}

// NewSet returns an empty set ordered by the natural order of K.
func NewSet[K cmp.Ordered]() *Set[K] {
	return &Set[K]{tree: New[K, struct{}]()}
}

// NewSetFunc returns an empty set ordered by compare.
func NewSetFunc[K any](compare func(a, b K) int) *Set[K] {
	return &Set[K]{tree: NewFunc[K, struct{}](compare)}
}

// Add inserts key, a duplicate is a no-op. It reports whether the key was new.
func (s *Set[K]) Add(key K) bool {
	return s.tree.Insert(key, struct{}{})
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.tree.Remove(key)
	return ok
}

func (s *Set[K]) Contains(key K) bool { return s.tree.Contains(key) }
func (s *Set[K]) Size() int           { return s.tree.Size() }
func (s *Set[K]) IsEmpty() bool       { return s.tree.IsEmpty() }
func (s *Set[K]) Height() int         { return s.tree.Height() }
func (s *Set[K]) Min() (K, error)     { return s.tree.Min() }
func (s *Set[K]) Max() (K, error)     { return s.tree.Max() }
func (s *Set[K]) Keys() []K           { return s.tree.Keys() }
func (s *Set[K]) IsBST() bool         { return s.tree.IsBST() }
func (s *Set[K]) IsBalanced() bool    { return s.tree.IsBalanced() }
func (s *Set[K]) Verify() error       { return s.tree.Verify() }

// All returns an iterator over the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}
