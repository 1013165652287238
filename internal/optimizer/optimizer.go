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

package optimizer

import (
	"context"
	"fmt"
	"time"

	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/samueltardieu/assignments/internal/collector"
	"github.com/samueltardieu/assignments/internal/engines/weights"
	"github.com/samueltardieu/assignments/internal/logging"
	"github.com/samueltardieu/assignments/internal/report"
	"github.com/samueltardieu/assignments/pkg/config"
	"github.com/samueltardieu/assignments/pkg/core"
	"github.com/samueltardieu/assignments/pkg/solver"
)

// Observer receives the measurements of a run.
type Observer interface {
	ObserveSolve(d time.Duration)
	EmitReport(ctx context.Context, rep *report.Report)
}

// Result is the outcome of a successful run.
type Result struct {
	Weights    *core.WeightMatrix
	Assignment core.Assignment
	Report     *report.Report
}

// Optimizer runs the assignment pipeline for one configuration.
type Optimizer struct {
	cfg      config.Config
	observer Observer
}

// NewOptimizer creates an Optimizer. observer may be nil.
func NewOptimizer(cfg config.Config, observer Observer) *Optimizer {
	return &Optimizer{
		cfg:      cfg,
		observer: observer,
	}
}

// Run collects the preferences from source and optimizes them.
func (o *Optimizer) Run(ctx context.Context, source collector.PreferenceSource) (*Result, error) {
	prefs, err := source.Collect(ctx)
	if err != nil {
		return nil, err
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Preferences collected",
		"source", source.Name(),
		"agents", len(prefs))
	return o.Optimize(ctx, prefs)
}

// Optimize computes the assignment maximizing the total satisfaction of prefs.
//
// Preferences are validated against the effective slot count before the slot count
// is compared with the number of agents, so an out of range choice is reported in
// preference to InsufficientSlots.
func (o *Optimizer) Optimize(ctx context.Context, prefs core.PreferenceSet) (*Result, error) {
	logger := ctrl.LoggerFrom(ctx)

	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	numSlots := ptr.Deref(o.cfg.NumSlots, len(prefs))
	if err := core.Validate(prefs, numSlots); err != nil {
		return nil, err
	}
	if _, err := o.cfg.Resolve(len(prefs)); err != nil {
		return nil, err
	}

	matrix, err := weights.NewBuilder(o.cfg.CostModel(), numSlots).Build(ctx, prefs)
	if err != nil {
		return nil, err
	}

	strategy, err := solver.ParseStrategy(o.cfg.Solver)
	if err != nil {
		return nil, err
	}
	s, err := solver.NewSolver(strategy)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	assignment, err := s.Solve(ctx, matrix)
	if err != nil {
		return nil, fmt.Errorf("solving %d agents over %d slots: %w", matrix.Rows(), matrix.Cols(), err)
	}
	elapsed := time.Since(start)

	rep, err := report.Build(prefs, matrix, assignment)
	if err != nil {
		return nil, err
	}

	if o.observer != nil {
		o.observer.ObserveSolve(elapsed)
		o.observer.EmitReport(ctx, rep)
	}
	logger.V(logging.DEBUG).Info("Assignment computed",
		"solver", strategy.String(),
		"agents", matrix.Rows(),
		"slots", matrix.Cols(),
		"totalSatisfaction", assignment.Total(),
		"unranked", rep.Unranked,
		"duration", elapsed)

	return &Result{
		Weights:    matrix,
		Assignment: assignment,
		Report:     rep,
	}, nil
}
