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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A self-balancing binary search tree engine with an interactive explorer, a
word frequency counter, benchmarks and an invariant checker.

Built with Go %s

# 1. Commands
* **explore** (default): interactive tree explorer. Type *help* inside it for the command list
* **wordfreq FILE**: count word frequencies of a text file with an AVL map
* **bench**: time insert, lookup and remove per key workload against a builtin map
* **check**: randomized insert/remove run verifying every tree invariant after each step
* **settings**: show the configuration, creating ~/.avltree.yaml if missing

# 2. Key workloads
* ascending, descending: sorted input, the worst case for unbalanced trees
* random: seeded permutation
* zigzag: alternating smallest and largest key
* sawtooth: ascending runs in descending blocks

# 3. Guarantees
* Every node keeps a balance factor of -1, 0 or 1
* Height stays below 1.45 log2(n+2)
* Insert, remove and lookup are O(log n)

# Please be aware
* The explorer copy command on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
