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

// Package actuator emits the outcome of a run: the rendered report and the run metrics.
//
// # Architecture
//
//	Optimizer → Actuator → stdout (text | yaml | json)
//	                     → metrics file (prometheus text exposition)
//
// # Report Rendering
//
// The text format matches the historical output of the tool, one line per agent:
//
//	Alice -> 1
//	Bob -> 2
//
// In verbose mode each line carries the achieved rank, followed by the totals:
//
//	Alice -> 1 (choice ranked 1)
//	Carol -> 3 (unranked)
//
//	Total satisfaction: 16
//	Ranks:
//	  - rank 1: 2
//	  - unranked: 1
//
// The yaml and json formats render api/v1alpha1.AssignmentReport and always include
// ranks and totals.
//
// # Metric Emission
//
// MetricsEmitter records the report into the collectors of package metrics and can
// write them in the prometheus text exposition format, suitable for the node
// exporter textfile collector:
//
//	assignments_total_satisfaction 16
//	assignments_rank_agents{rank="1"} 2
//	assignments_runs_total{result="success"} 1
package actuator
