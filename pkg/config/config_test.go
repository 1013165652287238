/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"strings"
	"testing"

	"k8s.io/utils/ptr"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantKind ConfigurationErrorKind
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "explicit slots", mutate: func(c *Config) { c.NumSlots = ptr.To(3) }},
		{name: "power zero", mutate: func(c *Config) { c.Power = 0 }},
		{name: "zero mult", mutate: func(c *Config) { c.Mult = 0 }, wantKind: InvalidMult},
		{name: "negative mult", mutate: func(c *Config) { c.Mult = -2 }, wantKind: InvalidMult},
		{name: "negative power", mutate: func(c *Config) { c.Power = -1 }, wantKind: InvalidPower},
		{name: "zero slots", mutate: func(c *Config) { c.NumSlots = ptr.To(0) }, wantKind: InvalidNumSlots},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "xml" }, wantKind: InvalidOutput},
		{name: "unknown solver", mutate: func(c *Config) { c.Solver = "greedy" }, wantKind: InvalidSolver},
		{name: "quote delimiter", mutate: func(c *Config) { c.Delimiter = '"' }, wantKind: InvalidDelimiter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() error = %v, want *ConfigurationError", err)
			}
			if cerr.Kind != tt.wantKind {
				t.Errorf("Validate() kind = %s, want %s", cerr.Kind, tt.wantKind)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("Validate() error does not match ErrConfiguration")
			}
		})
	}
}

func TestConfigResolve(t *testing.T) {
	tests := []struct {
		name      string
		numSlots  *int
		numAgents int
		want      int
		wantKind  ConfigurationErrorKind
	}{
		{name: "defaults to agent count", numAgents: 5, want: 5},
		{name: "explicit larger", numSlots: ptr.To(8), numAgents: 5, want: 8},
		{name: "explicit equal", numSlots: ptr.To(5), numAgents: 5, want: 5},
		{name: "no agents", numAgents: 0, want: 0},
		{name: "insufficient", numSlots: ptr.To(2), numAgents: 3, wantKind: InsufficientSlots},
		{name: "zero slots", numSlots: ptr.To(0), numAgents: 0, wantKind: InvalidNumSlots},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.NumSlots = tt.numSlots
			got, err := cfg.Resolve(tt.numAgents)
			if tt.wantKind != "" {
				var cerr *ConfigurationError
				if !errors.As(err, &cerr) || cerr.Kind != tt.wantKind {
					t.Fatalf("Resolve() error = %v, want kind %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInsufficientSlotsMessage(t *testing.T) {
	msg := NewInsufficientSlotsError(2, 3).Error()
	for _, want := range []string{"numSlots", "2", "must be at least the number of agents (3)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestConfigCostModel(t *testing.T) {
	cfg := Default()
	cfg.Mult, cfg.Power = 3, 2
	m := cfg.CostModel()
	if m.Mult != 3 || m.Power != 2 {
		t.Errorf("CostModel() = %+v", m)
	}
}
