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

// Package v1alpha1 contains the serializable form of an assignment report, as
// rendered by the yaml and json output formats.
package v1alpha1

const (
	// GroupVersion identifies this schema in rendered reports.
	GroupVersion = "assignments/v1alpha1"
	// ReportKind is the kind of a rendered report.
	ReportKind = "AssignmentReport"
)

// AssignmentReport is the machine-readable result of a run.
type AssignmentReport struct {
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Kind       string `json:"kind" yaml:"kind"`

	// Spec echoes the parameters the assignment was computed with.
	Spec ReportSpec `json:"spec" yaml:"spec"`

	// Assignments lists every agent in input order.
	Assignments []AgentAssignment `json:"assignments" yaml:"assignments"`

	// Summary holds aggregate statistics.
	Summary ReportSummary `json:"summary" yaml:"summary"`
}

// ReportSpec holds the effective run parameters.
type ReportSpec struct {
	Mult     int64  `json:"mult" yaml:"mult"`
	Power    int    `json:"power" yaml:"power"`
	NumSlots int    `json:"numSlots" yaml:"numSlots"`
	Solver   string `json:"solver" yaml:"solver"`
}

// AgentAssignment is the outcome for a single agent.
type AgentAssignment struct {
	Name string `json:"name" yaml:"name"`
	// Slot is the assigned 1-based slot.
	Slot int `json:"slot" yaml:"slot"`
	// Rank is the 1-based rank of Slot in the agent's choices.
	// Omitted when the slot was not listed by the agent.
	Rank *int `json:"rank,omitempty" yaml:"rank,omitempty"`
	// Weight is the satisfaction contributed by this agent.
	Weight int64 `json:"weight" yaml:"weight"`
}

// ReportSummary aggregates the outcome of all agents.
type ReportSummary struct {
	TotalSatisfaction int64       `json:"totalSatisfaction" yaml:"totalSatisfaction"`
	Ranks             []RankCount `json:"ranks" yaml:"ranks"`
	Unranked          int         `json:"unranked" yaml:"unranked"`
}

// RankCount is the number of agents that obtained Rank.
type RankCount struct {
	Rank  int `json:"rank" yaml:"rank"`
	Count int `json:"count" yaml:"count"`
}

// NewAssignmentReport returns an empty report with its type fields set.
func NewAssignmentReport() *AssignmentReport {
	return &AssignmentReport{
		APIVersion:  GroupVersion,
		Kind:        ReportKind,
		Assignments: []AgentAssignment{},
		Summary: ReportSummary{
			Ranks: []RankCount{},
		},
	}
}
