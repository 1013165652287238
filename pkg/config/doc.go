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

// Package config defines the immutable run configuration of the assignment pipeline.
//
// A Config is collected once at startup (see internal/config for the flag, environment
// and file layering) and passed by value into the core functions. Nothing in the
// pipeline reads ambient or global configuration state.
//
// Configuration values:
//
//   - Mult: multiplicative coefficient of the cost model (default 4)
//   - Power: exponent of the cost model (default 1)
//   - NumSlots: number of slots; nil means "one slot per agent"
//   - Verbose: report achieved ranks and aggregate statistics
//   - Output: report format (text, yaml or json)
//   - Solver: assignment strategy (hungarian or exhaustive)
//
// Example usage:
//
//	cfg := config.Default()
//	cfg.NumSlots = ptr.To(12)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	numSlots, err := cfg.Resolve(len(prefs))
//
// Configuration Validation:
//
// Validate checks each value on its own; Resolve adds the cross-field constraint
// that there are at least as many slots as agents. Failures are reported as
// *ConfigurationError values carrying the offending field path.
package config
