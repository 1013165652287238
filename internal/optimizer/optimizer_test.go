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
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/utils/ptr"

	"github.com/samueltardieu/assignments/internal/collector"
	"github.com/samueltardieu/assignments/internal/report"
	"github.com/samueltardieu/assignments/pkg/config"
	"github.com/samueltardieu/assignments/pkg/core"
)

type recordingObserver struct {
	solves  int
	reports []*report.Report
}

func (r *recordingObserver) ObserveSolve(time.Duration) { r.solves++ }

func (r *recordingObserver) EmitReport(_ context.Context, rep *report.Report) {
	r.reports = append(r.reports, rep)
}

type staticSource struct {
	prefs core.PreferenceSet
	err   error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Collect(context.Context) (core.PreferenceSet, error) {
	return s.prefs, s.err
}

var _ = Describe("Optimizer", func() {
	var (
		ctx      context.Context
		cfg      config.Config
		observer *recordingObserver
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Default()
		observer = &recordingObserver{}
	})

	Context("with two agents wanting different slots", func() {
		prefs := core.PreferenceSet{
			{Name: "Alice", Choices: []int{1, 2}},
			{Name: "Bob", Choices: []int{2, 1}},
		}

		It("should give each agent its first choice", func() {
			result, err := NewOptimizer(cfg, observer).Optimize(ctx, prefs)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Assignment.Slots()).To(Equal([]int{0, 1}))
			Expect(result.Report.TotalSatisfaction).To(Equal(int64(16)))
			Expect(result.Report.Ranks).To(Equal([]report.RankCount{{Rank: 1, Count: 2}}))
			Expect(result.Report.Unranked).To(BeZero())
		})

		It("should notify the observer once", func() {
			_, err := NewOptimizer(cfg, observer).Optimize(ctx, prefs)
			Expect(err).NotTo(HaveOccurred())
			Expect(observer.solves).To(Equal(1))
			Expect(observer.reports).To(HaveLen(1))
		})

		It("should agree with the exhaustive solver", func() {
			cfg.Solver = config.SolverExhaustive
			result, err := NewOptimizer(cfg, nil).Optimize(ctx, prefs)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Report.TotalSatisfaction).To(Equal(int64(16)))
		})

		It("should scale weights with power", func() {
			cfg.Power = 2
			result, err := NewOptimizer(cfg, nil).Optimize(ctx, prefs)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Report.TotalSatisfaction).To(Equal(int64(128)))
		})
	})

	Context("with a contested slot", func() {
		It("should leave the later agent unranked", func() {
			cfg.NumSlots = ptr.To(3)
			prefs := core.PreferenceSet{
				{Name: "Alice", Choices: []int{1}},
				{Name: "Bob", Choices: []int{1}},
			}
			result, err := NewOptimizer(cfg, nil).Optimize(ctx, prefs)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Report.Agents[0].Slot).To(Equal(1))
			Expect(result.Report.Agents[1].Slot).To(Equal(2))
			Expect(result.Report.Unranked).To(Equal(1))
			Expect(result.Report.TotalSatisfaction).To(Equal(int64(12)))
		})
	})

	Context("with more agents than slots", func() {
		It("should fail with InsufficientSlots before solving", func() {
			cfg.NumSlots = ptr.To(1)
			prefs := core.PreferenceSet{
				{Name: "Alice", Choices: []int{1}},
				{Name: "Bob"},
			}
			_, err := NewOptimizer(cfg, observer).Optimize(ctx, prefs)
			var cerr *config.ConfigurationError
			Expect(errors.As(err, &cerr)).To(BeTrue())
			Expect(cerr.Kind).To(Equal(config.InsufficientSlots))
			Expect(observer.solves).To(BeZero())
		})
	})

	Context("with invalid preferences", func() {
		It("should report the validation error first", func() {
			cfg.NumSlots = ptr.To(1)
			prefs := core.PreferenceSet{
				{Name: "Alice", Choices: []int{2}},
				{Name: "Bob"},
			}
			_, err := NewOptimizer(cfg, nil).Optimize(ctx, prefs)
			Expect(err).To(MatchError(core.ErrValidation))
		})

		It("should prefer ChoiceOutOfRange over InsufficientSlots", func() {
			cfg.NumSlots = ptr.To(1)
			prefs := core.PreferenceSet{
				{Name: "Alice", Choices: []int{1, 2}},
				{Name: "Bob", Choices: []int{1, 2}},
			}
			_, err := NewOptimizer(cfg, observer).Optimize(ctx, prefs)
			var verr *core.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Kind).To(Equal(core.ChoiceOutOfRange))
			Expect(verr.Value).To(Equal(2))
			Expect(err).NotTo(MatchError(config.ErrConfiguration))
			Expect(observer.solves).To(BeZero())
		})
	})

	Context("with an invalid configuration", func() {
		It("should reject a non-positive multiplier", func() {
			cfg.Mult = 0
			_, err := NewOptimizer(cfg, nil).Optimize(ctx, core.PreferenceSet{{Name: "Alice"}})
			Expect(err).To(MatchError(config.ErrConfiguration))
		})
	})

	Context("with no agents", func() {
		It("should produce an empty report", func() {
			result, err := NewOptimizer(cfg, nil).Optimize(ctx, core.PreferenceSet{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Report.Agents).To(BeEmpty())
			Expect(result.Report.TotalSatisfaction).To(BeZero())
		})
	})

	Describe("Run", func() {
		It("should propagate collection errors", func() {
			src := staticSource{err: &collector.InputError{Source: "static", Line: 1, Reason: "missing name"}}
			_, err := NewOptimizer(cfg, nil).Run(ctx, src)
			Expect(err).To(MatchError(collector.ErrInput))
		})

		It("should optimize the collected preferences", func() {
			src := staticSource{prefs: core.PreferenceSet{{Name: "Alice", Choices: []int{1}}}}
			result, err := NewOptimizer(cfg, nil).Run(ctx, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Report.TotalSatisfaction).To(Equal(int64(4)))
		})
	})
})
