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

// Package metrics defines the prometheus collectors describing an assignment run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "assignments"

// Run results used as the "result" label of RunsTotal.
const (
	ResultSuccess            = "success"
	ResultInputError         = "input_error"
	ResultValidationError    = "validation_error"
	ResultConfigurationError = "configuration_error"
	ResultError              = "error"
)

// UnrankedLabel is the "rank" label value for agents that got an unlisted slot.
const UnrankedLabel = "unranked"

// Metrics holds the collectors of a run, registered in a private registry.
type Metrics struct {
	registry *prometheus.Registry

	SolveDuration     prometheus.Histogram
	Agents            prometheus.Gauge
	Slots             prometheus.Gauge
	TotalSatisfaction prometheus.Gauge
	RankAgents        *prometheus.GaugeVec
	RunsTotal         *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent computing the optimal assignment.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		Agents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "agents",
			Help:      "Number of agents in the preference set.",
		}),
		Slots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "slots",
			Help:      "Number of slots available.",
		}),
		TotalSatisfaction: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_satisfaction",
			Help:      "Total weight of the computed assignment.",
		}),
		RankAgents: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rank_agents",
			Help:      "Number of agents per achieved rank.",
		}, []string{"rank"}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.SolveDuration,
		m.Agents,
		m.Slots,
		m.TotalSatisfaction,
		m.RankAgents,
		m.RunsTotal,
	)
	return m
}

// Gatherer exposes the registry for export.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
