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
// Package generator produces random preference files, for trying the solver on
// inputs of arbitrary size.
//
// Every agent ranks a random prefix, possibly empty, of a random permutation of the
// slots, so generated files always pass validation when there are as many slots as
// agents. Rows look like:
//
//	Student 1,3,1
//	Student 2
//	Student 3,2,3,1
package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/samueltardieu/assignments/pkg/core"
)

// NamePrefix starts the name of every generated agent.
const NamePrefix = "Student "

// Generator draws preference sets from a pseudo-random source.
type Generator struct {
	rand *rand.Rand
}

// New returns a Generator seeded with seed, or with a random seed when seed is nil.
// Generators built with the same seed produce the same preference sets.
func New(seed *uint64) *Generator {
	var s1, s2 uint64
	if seed != nil {
		s1, s2 = *seed, *seed
	} else {
		s1, s2 = rand.Uint64(), rand.Uint64()
	}
	return &Generator{rand: rand.New(rand.NewPCG(s1, s2))}
}

// Generate returns n agents named "Student 1" to "Student n", each ranking between
// 0 and n distinct slots in [1..n].
func (g *Generator) Generate(n int) (core.PreferenceSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("number of agents must be non-negative, got %d", n)
	}
	prefs := make(core.PreferenceSet, n)
	for i := range prefs {
		perm := g.rand.Perm(n)
		choices := make([]int, g.rand.IntN(n+1))
		for rank := range choices {
			choices[rank] = perm[rank] + 1
		}
		prefs[i] = core.Agent{
			Name:    NamePrefix + strconv.Itoa(i+1),
			Choices: choices,
		}
	}
	return prefs, nil
}

// Write encodes prefs as headerless delimited rows, the format read by the
// collector package.
func Write(w io.Writer, prefs core.PreferenceSet, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	for _, agent := range prefs {
		record := make([]string, 0, len(agent.Choices)+1)
		record = append(record, agent.Name)
		for _, c := range agent.Choices {
			record = append(record, strconv.Itoa(c))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", agent.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
