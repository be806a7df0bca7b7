// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math/rand/v2"
)

// Metropolis represents options for drawing samples from a density
// with a single-chain Metropolis sampler.
//
// Each step proposes a move drawn from a normal distribution centred
// on the current state. Moves that leave the domain are rejected
// outright and the current state is repeated. This biases the chain
// near the domain boundaries compared to a reflecting scheme.
// Otherwise the move is accepted with probability
// min(1, f(proposed)/f(current)), so only ratios of the density are
// needed and normalization is not a prerequisite.
type Metropolis struct {
	// ProposalWidth is the standard deviation of the proposal
	// distribution. It must be positive.
	ProposalWidth float64

	// Rand is the source of randomness for the chain. It must be
	// non-nil; seed it explicitly for reproducible chains.
	Rand *rand.Rand
}

// A Chain is the output of one Metropolis run.
type Chain struct {
	// Xs holds one state per step, in order.
	Xs []float64

	// Accepted is the number of accepted moves. Proposals is the
	// number of proposed moves, including those rejected for
	// leaving the domain.
	Accepted, Proposals int
}

// AcceptanceRate returns the percentage of proposals that were
// accepted. It is NaN for an empty chain.
func (c *Chain) AcceptanceRate() float64 {
	if c.Proposals == 0 {
		return nan
	}
	return 100 * float64(c.Accepted) / float64(c.Proposals)
}

// Sample runs a chain of count steps over d and returns it.
//
// It fails with ErrNumerical if d evaluates to zero at the current
// state, where the acceptance ratio is undefined, or if d produces a
// non-finite value.
func (m Metropolis) Sample(d Target, count int) (*Chain, error) {
	if count < 0 {
		return nil, invalidf("sample count must not be negative, got %d", count)
	}
	if !(m.ProposalWidth > 0) || !isFinite(m.ProposalWidth) {
		return nil, invalidf("proposal width must be positive, got %v", m.ProposalWidth)
	}
	if m.Rand == nil {
		return nil, invalidf("metropolis sampler needs a random source")
	}
	lo, hi := d.Domain()
	if !(lo < hi) {
		return nil, invalidf("cannot sample over [%v, %v]", lo, hi)
	}

	chain := &Chain{Xs: make([]float64, 0, count)}
	if count == 0 {
		return chain, nil
	}

	x := lo + m.Rand.Float64()*(hi-lo)
	fx := d.Evaluate(x)
	for i := 0; i < count; i++ {
		chain.Proposals++
		y := x + m.Rand.NormFloat64()*m.ProposalWidth
		if y < lo || y > hi {
			chain.Xs = append(chain.Xs, x)
			continue
		}

		if fx == 0 || !isFinite(fx) {
			return nil, numericalf("density is %v at chain state %v", fx, x)
		}
		fy := d.Evaluate(y)
		if !isFinite(fy) {
			return nil, numericalf("density is %v at proposal %v", fy, y)
		}
		a := fy / fx
		if a > 1 {
			a = 1
		}
		if m.Rand.Float64() < a {
			x, fx = y, fy
			chain.Accepted++
		}
		chain.Xs = append(chain.Xs, x)
	}
	return chain, nil
}
