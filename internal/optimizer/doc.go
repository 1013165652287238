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

// Package optimizer implements the assignment pipeline.
//
// The optimizer turns a preference set into an assignment report by coordinating
// validation, weight matrix construction and solver invocation.
//
// Architecture:
//
// The optimizer follows a pipeline pattern:
//
//	Preferences → Validation → Weight Matrix → Solver → Report → Actuator
//	 (Collector)    (core)       (weights)    (solver) (report)
//
// Example usage:
//
//	opt := optimizer.NewOptimizer(cfg, actuator.NewMetricsEmitter(metrics.New()))
//
//	result, err := opt.Run(ctx, collector.NewCSVSource("prefs.csv", ','))
//	if err != nil {
//	    return err
//	}
//
//	log.Info("optimization complete",
//	    "agents", len(result.Report.Agents),
//	    "totalSatisfaction", result.Report.TotalSatisfaction)
//
// Optimization Flow:
//
//  1. Collect Preferences
//     - Read the preference source
//
//  2. Validate
//     - Check configuration values
//     - Reject duplicate agents, out of range and repeated choices
//
//  3. Build Weights
//     - Apply the cost model to every ranked choice
//     - Reject more agents than slots
//
//  4. Solve
//     - Compute the maximum-weight assignment
//
//  5. Report
//     - Derive ranks and totals, publish metrics
//
// Every stage fails fast: the first error aborts the run and nothing is reported.
package optimizer
