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

// Package avl implements an ordered map and set on top of a
// height-balanced binary search tree.
//
// Every node caches the height of its subtree. After each insertion or
// removal the nodes on the path back to the root are rebalanced with
// single (LL, RR) or double (LR, RL) rotations, so the balance factor of
// every node stays within {-1, 0, 1} and all operations run in O(log n).
//
// A Tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl
