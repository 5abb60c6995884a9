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

package avl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func TestSetOperations(t *testing.T) {
	s := avl.NewSet[string]()
	assert.True(t, s.IsEmpty())

	for _, w := range strings.Fields("it is a truth universally acknowledged that a single man") {
		s.Add(w)
	}
	assert.Equal(t, 9, s.Size())
	assert.False(t, s.Add("truth"))
	assert.True(t, s.Contains("single"))
	assert.False(t, s.Contains("woman"))

	lo, err := s.Min()
	require.NoError(t, err)
	assert.Equal(t, "a", lo)
	hi, err := s.Max()
	require.NoError(t, err)
	assert.Equal(t, "universally", hi)

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, 8, s.Size())
	assert.True(t, s.IsBST())
	assert.True(t, s.IsBalanced())
	require.NoError(t, s.Verify())

	var all []string
	for k := range s.All() {
		all = append(all, k)
	}
	assert.Equal(t, s.Keys(), all)
	assert.LessOrEqual(t, s.Height(), 4)
}

func TestSetFunc(t *testing.T) {
	s := avl.NewSetFunc(func(a, b int) int { return b - a })
	for i := 0; i < 8; i++ {
		s.Add(i)
	}
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1, 0}, s.Keys())

	var first []int
	for k := range s.All() {
		first = append(first, k)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{7, 6}, first)

	empty := avl.NewSet[int]()
	_, err := empty.Max()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
}
