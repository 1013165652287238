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

package collector

import (
	"context"

	"github.com/samueltardieu/assignments/pkg/core"
)

// PreferenceSource is the interface for pluggable preference inputs.
type PreferenceSource interface {
	// Name returns a human-readable identifier of the source (e.g. a file path).
	Name() string

	// Collect reads the whole input and returns the agents in input order.
	Collect(ctx context.Context) (core.PreferenceSet, error)
}
