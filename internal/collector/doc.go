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

// Package collector reads agent preferences from external sources.
//
// The collector package turns raw input into a core.PreferenceSet. The only source
// today is delimited text: one row per agent, the agent name followed by its choices
// in decreasing order of preference.
//
//	Alice,1,2
//	Bob,2,1
//
// Rows may have different numbers of choices and there is no header row.
//
// # Usage Example
//
//	src := collector.NewCSVSource(path, ',')
//	prefs, err := src.Collect(ctx)
//	if err != nil {
//		// *collector.InputError names the line and field at fault
//	}
//
// # Error Handling
//
// Every malformed row is reported as an *InputError matching ErrInput:
//   - empty agent name
//   - non-integer choice
//   - unreadable file or broken quoting
//
// Range and duplicate checks are not performed here; see core.Validate.
package collector
