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

// Package workload generates the key sequences used to drive trees in
// benchmarks, stress runs and the explorer.
package workload

import (
	"errors"
	"fmt"
)

// ErrUnknownWorkload is returned by Manager.Get for unregistered names.
var ErrUnknownWorkload = errors.New("unknown workload")

// Workload produces an insertion order for n distinct keys.
type Workload interface {
	Name() string
	Description() string
	Keys(n int) []int // a permutation of 0..n-1
}

// Manager keeps workloads in registration order.
type Manager struct {
	workloads []Workload
	byName    map[string]Workload
}

// NewManager creates a manager with all built-in workloads. The seed drives
// the random workload so runs are reproducible.
func NewManager(seed int64) *Manager {
	manager := &Manager{byName: make(map[string]Workload)}

	manager.Register(Ascending{})
	manager.Register(Descending{})
	manager.Register(NewRandom(seed))
	manager.Register(ZigZag{})
	manager.Register(Sawtooth{})

	return manager
}

// Register adds a workload, replacing any earlier one with the same name.
func (m *Manager) Register(w Workload) {
	if _, exists := m.byName[w.Name()]; exists {
		for i, old := range m.workloads {
			if old.Name() == w.Name() {
				m.workloads[i] = w
			}
		}
	} else {
		m.workloads = append(m.workloads, w)
	}
	m.byName[w.Name()] = w
}

// Get looks a workload up by name.
func (m *Manager) Get(name string) (Workload, error) {
	w, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownWorkload, name)
	}
	return w, nil
}

// Names returns the registered workload names in registration order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.workloads))
	for _, w := range m.workloads {
		names = append(names, w.Name())
	}
	return names
}
