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
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Render draws the tree sideways on w, right subtree on top, one node per
// line with its balance factor. When values is set the stored values are
// drawn too. It returns the depth of the tree.
func (tree *Tree[K, V]) Render(w io.Writer, values bool) int {
	return render(w, tree.root, "", rootBranch, values)
}

func render[K, V any](w io.Writer, n *node[K, V], prefix string, br branch, values bool) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = render(w, n.right, prefix+pad, rightBranch, values)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if values {
		fmt.Fprintf(w, "%v → %v %+d\n", n.key, n.value, balanceFactor(n))
	} else {
		fmt.Fprintf(w, "%v %+d\n", n.key, balanceFactor(n))
	}

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = render(w, n.left, prefix+pad, leftBranch, values)
	}

	return 1 + max(ld, rd)
}
