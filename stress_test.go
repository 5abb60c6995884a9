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
	"testing"

	"github.com/cybrota/avltree/workload"
)

func TestRunStress(t *testing.T) {
	manager := workload.NewManager(1)

	for _, name := range manager.Names() {
		t.Run(name, func(t *testing.T) {
			w, err := manager.Get(name)
			if err != nil {
				t.Fatalf("Get(%q) returned error: %v", name, err)
			}

			config := StressConfig{Operations: 3000, KeySpace: 400, RemoveRatio: 0.4, Seed: 7}
			report, err := RunStress(config, w, nil)
			if err != nil {
				t.Fatalf("RunStress returned error: %v", err)
			}

			if report.Operations != config.Operations {
				t.Errorf("ran %d operations; want %d", report.Operations, config.Operations)
			}
			if report.Removes == 0 || report.Lookups == 0 || report.Inserts < 200 {
				t.Errorf("unexpected operation mix: %+v", report)
			}
			// 1.44 log2(402) is just under 13
			if report.MaxHeight > 12 {
				t.Errorf("max height %d exceeds the AVL bound", report.MaxHeight)
			}
		})
	}
}

func TestRunStressWithoutPreload(t *testing.T) {
	report, err := RunStress(StressConfig{Operations: 500, KeySpace: 50, RemoveRatio: 0, Seed: 3}, nil, nil)
	if err != nil {
		t.Fatalf("RunStress returned error: %v", err)
	}
	if report.Removes != 0 {
		t.Errorf("removes = %d with remove ratio 0", report.Removes)
	}
	if report.FinalSize == 0 || report.FinalSize > 50 {
		t.Errorf("final size %d outside (0, 50]", report.FinalSize)
	}
}

func TestRunStressRejectsEmptyKeySpace(t *testing.T) {
	if _, err := RunStress(StressConfig{Operations: 10}, nil, nil); err == nil {
		t.Errorf("RunStress accepted a zero key space")
	}
}
