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

import "errors"

var (
	// ErrEmptyTree is returned by Min and Max when the tree holds no keys.
	ErrEmptyTree = errors.New("empty tree")
	// ErrKeyNotFound is returned by Set when the key is not in the tree.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvariant is wrapped by every error Verify reports.
	ErrInvariant = errors.New("avl invariant violated")
)
