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

// Package weights assembles the agent×slot weight matrix fed to the solver.
package weights

import (
	"context"
	"errors"
	"math"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/samueltardieu/assignments/internal/logging"
	"github.com/samueltardieu/assignments/pkg/config"
	"github.com/samueltardieu/assignments/pkg/core"
)

// headroom is the factor kept free above the largest possible total weight so the
// solver's potentials cannot overflow.
const headroom = 4

// Builder converts a validated PreferenceSet into a WeightMatrix.
type Builder struct {
	model    core.CostModel
	numSlots int
}

// NewBuilder creates a Builder for numSlots slots using model to weigh ranks.
func NewBuilder(model core.CostModel, numSlots int) *Builder {
	return &Builder{
		model:    model,
		numSlots: numSlots,
	}
}

// Build returns the len(prefs)×numSlots matrix where entry (i, choice-1) holds the
// weight of the rank at which agent i listed choice, and every other entry is zero.
//
// prefs must have passed core.Validate for the same number of slots. Build fails with
// an InsufficientSlots configuration error when there are more agents than slots,
// and with WeightOverflow when the weights could not be solved without overflow.
func (b *Builder) Build(ctx context.Context, prefs core.PreferenceSet) (*core.WeightMatrix, error) {
	logger := ctrl.LoggerFrom(ctx)

	numAgents := len(prefs)
	if b.numSlots < numAgents {
		return nil, config.NewInsufficientSlotsError(b.numSlots, numAgents)
	}

	rankWeights, err := b.rankWeights(numAgents)
	if err != nil {
		return nil, err
	}

	matrix := core.NewWeightMatrix(numAgents, b.numSlots)
	for i, agent := range prefs {
		for rank, choice := range agent.Choices {
			matrix.Set(i, choice-1, rankWeights[rank])
		}
	}

	logger.V(logging.DEBUG).Info("Weight matrix built",
		"agents", numAgents,
		"slots", b.numSlots,
		"maxWeight", matrix.Max())
	return matrix, nil
}

// rankWeights returns the weight of every rank, index 0 being the top choice.
func (b *Builder) rankWeights(numAgents int) ([]int64, error) {
	if b.numSlots == 0 {
		return nil, nil
	}
	top, err := b.model.MaxWeight(b.numSlots)
	if err != nil {
		if errors.Is(err, core.ErrWeightOverflow) {
			return nil, config.NewWeightOverflowError(b.model.Mult, b.model.Power, err)
		}
		return nil, err
	}
	if top > math.MaxInt64/(headroom*int64(numAgents+1)) {
		return nil, config.NewWeightOverflowError(b.model.Mult, b.model.Power,
			errors.New("total satisfaction exceeds the solvable range"))
	}

	weights := make([]int64, b.numSlots)
	for rank := range weights {
		// lower ranks weigh less than the top one, so no overflow is possible
		weights[rank], _ = b.model.Weight(rank, b.numSlots)
	}
	return weights, nil
}
