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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/samueltardieu/assignments/internal/logging"
	"github.com/samueltardieu/assignments/pkg/core"
)

// CSVSource reads preferences from a headerless delimited text file.
type CSVSource struct {
	path  string
	comma rune
	open  func(string) (io.ReadCloser, error)
}

// NewCSVSource creates a source reading path with the given field delimiter.
// A path of "-" reads standard input.
func NewCSVSource(path string, comma rune) *CSVSource {
	return &CSVSource{
		path:  path,
		comma: comma,
		open:  openFile,
	}
}

func openFile(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// WithStdin makes the "-" path read r instead of os.Stdin.
func (s *CSVSource) WithStdin(r io.Reader) *CSVSource {
	s.open = func(path string) (io.ReadCloser, error) {
		if path == "-" {
			return io.NopCloser(r), nil
		}
		return os.Open(path)
	}
	return s
}

// Name returns the input path.
func (s *CSVSource) Name() string {
	return s.path
}

// Collect reads every row of the file.
func (s *CSVSource) Collect(ctx context.Context) (core.PreferenceSet, error) {
	f, err := s.open(s.path)
	if err != nil {
		return nil, &InputError{Source: s.path, Reason: "cannot open input", Err: err}
	}
	defer func() { _ = f.Close() }()

	prefs, err := ReadPreferences(f, s.path, s.comma)
	if err != nil {
		return nil, err
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Collected preferences",
		"source", s.path,
		"agents", len(prefs))
	return prefs, nil
}

// ReadPreferences parses delimited rows from r. name is only used in error messages.
func ReadPreferences(r io.Reader, name string, comma rune) (core.PreferenceSet, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	prefs := core.PreferenceSet{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &InputError{Source: name, Line: perr.StartLine, Reason: "cannot parse row", Err: perr.Err}
			}
			return nil, &InputError{Source: name, Reason: "cannot read input", Err: err}
		}
		agent, ierr := parseRecord(record)
		if ierr != nil {
			ierr.Source = name
			ierr.Line, _ = reader.FieldPos(0)
			return nil, ierr
		}
		prefs = append(prefs, agent)
	}
	return prefs, nil
}

func parseRecord(record []string) (core.Agent, *InputError) {
	name := strings.TrimSpace(record[0])
	if name == "" {
		return core.Agent{}, &InputError{Field: 1, Reason: "missing agent name"}
	}
	choices := make([]int, 0, len(record)-1)
	for k, field := range record[1:] {
		choice, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return core.Agent{}, &InputError{
				Field:  k + 2,
				Reason: fmt.Sprintf("%s: choice %q is not an integer", name, field),
			}
		}
		choices = append(choices, choice)
	}
	return core.Agent{Name: name, Choices: choices}, nil
}
