package model

import (
	"errors"

	"lbp-sim/internal/amm"
)

// PoolParams defines the immutable parameters of a single LBP run.
// Units:
// - Balances: token units (token A = sale token, token B = collateral)
// - Weights: fraction in (0, 1), token A side; token B weight is 1 - weightA
// - DurationHours: number of hourly steps; the series has DurationHours+1 rows
type PoolParams struct {
	TokenASymbol string
	TokenBSymbol string

	InitialTokenA float64
	InitialTokenB float64

	// Weight schedule, token A side. If both StartWeight and EndWeight are
	// zero, they are derived from StartPrice/EndPrice against the initial
	// balances (see ResolveWeights).
	StartWeight float64
	EndWeight   float64
	StartPrice  float64
	EndPrice    float64

	DurationHours int

	// TotalSupply of token A, used only for FDV reporting. Optional.
	TotalSupply float64
}

// PoolState captures mutable state: the reserves as of the current hour.
type PoolState struct {
	TokenABalance float64
	TokenBBalance float64
}

// Pool is a convenience wrapper bundling params + state.
type Pool struct {
	Params PoolParams
	State  PoolState
}

func NewPool(params PoolParams) (*Pool, error) {
	p := &Pool{
		Params: params,
		State: PoolState{
			TokenABalance: params.InitialTokenA,
			TokenBBalance: params.InitialTokenB,
		},
	}
	if err := p.Params.ResolveWeights(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ResolveWeights fills StartWeight/EndWeight from StartPrice/EndPrice when
// no explicit weights were given. Explicit weights always win. A partial
// price pair is an error: the missing side would otherwise resolve through
// the fallback weight and produce a schedule nobody asked for.
func (p *PoolParams) ResolveWeights() error {
	if p.StartWeight != 0 || p.EndWeight != 0 {
		return nil
	}
	if p.StartPrice <= 0 && p.EndPrice <= 0 {
		return nil
	}
	if p.StartPrice <= 0 || p.EndPrice <= 0 {
		return errors.New("StartPrice and EndPrice must both be set to derive weights")
	}
	p.StartWeight = amm.WeightFromPrice(p.InitialTokenA, p.InitialTokenB, p.StartPrice)
	p.EndWeight = amm.WeightFromPrice(p.InitialTokenA, p.InitialTokenB, p.EndPrice)
	return nil
}

func (p *Pool) Validate() error {
	params := p.Params
	if params.InitialTokenA <= 0 {
		return errors.New("InitialTokenA must be > 0")
	}
	if params.InitialTokenB <= 0 {
		return errors.New("InitialTokenB must be > 0")
	}
	if params.StartWeight <= 0 || params.StartWeight >= 1 {
		return errors.New("StartWeight must be in (0, 1)")
	}
	if params.EndWeight <= 0 || params.EndWeight >= 1 {
		return errors.New("EndWeight must be in (0, 1)")
	}
	if params.DurationHours < 1 {
		return errors.New("DurationHours must be >= 1")
	}
	if params.TotalSupply < 0 {
		return errors.New("TotalSupply must be >= 0")
	}
	return nil
}

// Fill represents what the market took from the pool in one hour:
// TokenBIn collateral came in, TokenAOut sale tokens went out.
type Fill struct {
	TokenBIn  float64
	TokenAOut float64
}

// ApplyFill folds a fill into the reserves. Balances never go negative;
// the drain guard in the simulation loop keeps fills feasible, this clamp
// only absorbs float drift.
func (p *Pool) ApplyFill(f Fill) {
	p.State.TokenABalance -= f.TokenAOut
	p.State.TokenBBalance += f.TokenBIn
	if p.State.TokenABalance < 0 {
		p.State.TokenABalance = 0
	}
}

// CollateralForTargetPrice returns the token B deposit required so that a
// pool holding tokenABalance at weightA opens at targetPrice:
//
//	B = price * (A / Wa) * (1 - Wa)
//
// Used to size the collateral side from a target FDV (price = FDV / supply).
func CollateralForTargetPrice(targetPrice, tokenABalance, weightA float64) float64 {
	if targetPrice <= 0 || tokenABalance <= 0 || weightA <= 0 || weightA >= 1 {
		return 0
	}
	return targetPrice * (tokenABalance / weightA) * (1 - weightA)
}
