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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/samueltardieu/assignments/api/v1alpha1"
	"github.com/samueltardieu/assignments/internal/report"
	"github.com/samueltardieu/assignments/pkg/config"
)

// Renderer writes a report in one output format.
type Renderer interface {
	Render(w io.Writer, rep *report.Report) error
}

// NewRenderer is a factory that returns the Renderer for cfg.Output.
func NewRenderer(cfg config.Config) (Renderer, error) {
	switch cfg.Output {
	case config.FormatText:
		return &TextRenderer{Verbose: cfg.Verbose}, nil
	case config.FormatYAML:
		return &YAMLRenderer{Spec: specFrom(cfg)}, nil
	case config.FormatJSON:
		return &JSONRenderer{Spec: specFrom(cfg)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", cfg.Output)
	}
}

func specFrom(cfg config.Config) v1alpha1.ReportSpec {
	return v1alpha1.ReportSpec{
		Mult:   cfg.Mult,
		Power:  cfg.Power,
		Solver: cfg.Solver,
	}
}

// TextRenderer writes the line-oriented human format.
type TextRenderer struct {
	Verbose bool
}

func (r *TextRenderer) Render(w io.Writer, rep *report.Report) error {
	ew := &errWriter{w: w}
	for _, a := range rep.Agents {
		if !r.Verbose {
			ew.printf("%s -> %d\n", a.Name, a.Slot)
			continue
		}
		outcome := "unranked"
		if a.Ranked() {
			outcome = "choice ranked " + strconv.Itoa(a.Rank)
		}
		ew.printf("%s -> %d (%s)\n", a.Name, a.Slot, outcome)
	}
	if r.Verbose {
		ew.printf("\nTotal satisfaction: %d\nRanks:\n", rep.TotalSatisfaction)
		for _, rc := range rep.Ranks {
			ew.printf("  - rank %d: %d\n", rc.Rank, rc.Count)
		}
		if rep.Unranked != 0 {
			ew.printf("  - unranked: %d\n", rep.Unranked)
		}
	}
	return ew.err
}

// YAMLRenderer writes an AssignmentReport document.
type YAMLRenderer struct {
	Spec v1alpha1.ReportSpec
}

func (r *YAMLRenderer) Render(w io.Writer, rep *report.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPI(r.Spec, rep)); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

// JSONRenderer writes an indented AssignmentReport object.
type JSONRenderer struct {
	Spec v1alpha1.ReportSpec
}

func (r *JSONRenderer) Render(w io.Writer, rep *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToAPI(r.Spec, rep)); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

// ToAPI converts a report into its serializable form.
func ToAPI(spec v1alpha1.ReportSpec, rep *report.Report) *v1alpha1.AssignmentReport {
	out := v1alpha1.NewAssignmentReport()
	out.Spec = spec
	out.Spec.NumSlots = rep.NumSlots
	for _, a := range rep.Agents {
		aa := v1alpha1.AgentAssignment{
			Name:   a.Name,
			Slot:   a.Slot,
			Weight: a.Weight,
		}
		if a.Ranked() {
			aa.Rank = ptr.To(a.Rank)
		}
		out.Assignments = append(out.Assignments, aa)
	}
	for _, rc := range rep.Ranks {
		out.Summary.Ranks = append(out.Summary.Ranks, v1alpha1.RankCount{Rank: rc.Rank, Count: rc.Count})
	}
	out.Summary.Unranked = rep.Unranked
	out.Summary.TotalSatisfaction = rep.TotalSatisfaction
	return out
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
