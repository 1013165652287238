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

package actuator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/samueltardieu/assignments/internal/collector"
	"github.com/samueltardieu/assignments/internal/logging"
	"github.com/samueltardieu/assignments/internal/metrics"
	"github.com/samueltardieu/assignments/internal/report"
	"github.com/samueltardieu/assignments/pkg/config"
	"github.com/samueltardieu/assignments/pkg/core"
)

// MetricsEmitter records run outcomes into prometheus collectors.
type MetricsEmitter struct {
	metrics *metrics.Metrics
}

// NewMetricsEmitter creates an emitter backed by m.
func NewMetricsEmitter(m *metrics.Metrics) *MetricsEmitter {
	return &MetricsEmitter{metrics: m}
}

// ObserveSolve records the duration of a solver call.
func (e *MetricsEmitter) ObserveSolve(d time.Duration) {
	e.metrics.SolveDuration.Observe(d.Seconds())
}

// EmitReport publishes the sizes, total and rank histogram of rep.
func (e *MetricsEmitter) EmitReport(ctx context.Context, rep *report.Report) {
	e.metrics.Agents.Set(float64(len(rep.Agents)))
	e.metrics.Slots.Set(float64(rep.NumSlots))
	e.metrics.TotalSatisfaction.Set(float64(rep.TotalSatisfaction))
	e.metrics.RankAgents.Reset()
	for _, rc := range rep.Ranks {
		e.metrics.RankAgents.WithLabelValues(strconv.Itoa(rc.Rank)).Set(float64(rc.Count))
	}
	if rep.Unranked != 0 {
		e.metrics.RankAgents.WithLabelValues(metrics.UnrankedLabel).Set(float64(rep.Unranked))
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Emitted report metrics",
		"agents", len(rep.Agents),
		"totalSatisfaction", rep.TotalSatisfaction)
}

// RecordRun counts a finished run under the result matching err.
func (e *MetricsEmitter) RecordRun(err error) {
	e.metrics.RunsTotal.WithLabelValues(Classify(err)).Inc()
}

// Classify maps a pipeline error to a metrics result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, collector.ErrInput):
		return metrics.ResultInputError
	case errors.Is(err, core.ErrValidation):
		return metrics.ResultValidationError
	case errors.Is(err, config.ErrConfiguration):
		return metrics.ResultConfigurationError
	default:
		return metrics.ResultError
	}
}

// WriteMetrics writes every gathered metric family to w in the text exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteMetricsFile atomically replaces path with the current metrics.
func WriteMetricsFile(path string, g prometheus.Gatherer) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := WriteMetrics(tmp, g); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing metrics file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
