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
	"errors"
	"fmt"

	"github.com/cybrota/avltree/avl"
)

func ExampleTree() {
	tree := avl.New[int, string]()
	for i := 0; i < 10; i++ {
		tree.Insert(i, fmt.Sprintf("v%d", i))
	}
	tree.Remove(3)
	tree.Remove(0)

	fmt.Println(tree.Size(), tree.Height(), tree.IsBST(), tree.IsBalanced())
	fmt.Println(tree.Keys())
	// Output:
	// 8 4 true true
	// [1 2 4 5 6 7 8 9]
}

func ExampleTree_Min() {
	tree := avl.New[string, int]()
	if _, err := tree.Min(); errors.Is(err, avl.ErrEmptyTree) {
		fmt.Println("empty")
	}

	tree.Insert("pride", 1)
	tree.Insert("prejudice", 2)
	lo, _ := tree.Min()
	fmt.Println(lo)
	// Output:
	// empty
	// prejudice
}

func ExampleSet() {
	s := avl.NewSet[int]()
	for _, k := range []int{5, 2, 6, 8, 3, 8, 0} {
		s.Add(k)
	}
	fmt.Println(s.Size(), s.Keys())
	// Output: 6 [0 2 3 5 6 8]
}
