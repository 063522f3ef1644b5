// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/examples/poolvm/consts"
	"github.com/ava-labs/hypersdk/examples/poolvm/storage"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	_ codec.Typed  = (*RemoveLiquidityResult)(nil)
	_ chain.Action = (*RemoveLiquidity)(nil)
)

type RemoveLiquidityResult struct {
	TokenAmount   uint64 `serialize:"true" json:"tokenAmount"`
	CounterAmount uint64 `serialize:"true" json:"counterAmount"`
}

func (*RemoveLiquidityResult) GetTypeID() uint8 {
	return consts.RemoveLiquidityID
}

// RemoveLiquidity withdraws both sides of a pool and credits them to
// [To]: the token side as a token account balance, the counter side as a
// counter-asset account balance. Only the pool owner may withdraw, and
// both reserves are checked before either is touched.
type RemoveLiquidity struct {
	// Token is required for `StateKeys()` and must match the token
	// backing the pool.
	Token codec.Address `serialize:"true" json:"token"`

	LiquidityPool codec.Address `serialize:"true" json:"liquidityPool"`
	TokenAmount   uint64        `serialize:"true" json:"tokenAmount"`
	CounterAmount uint64        `serialize:"true" json:"counterAmount"`
	To            codec.Address `serialize:"true" json:"to"`
}

// ComputeUnits implements chain.Action.
func (*RemoveLiquidity) ComputeUnits(chain.Rules) uint64 {
	return RemoveLiquidityComputeUnits
}

// Execute implements chain.Action.
func (r *RemoveLiquidity) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	token, tokenReserve, counterReserve, owner, err := storage.GetLiquidityPoolNoController(ctx, mu, r.LiquidityPool)
	if err != nil {
		return nil, ErrOutputLiquidityPoolDoesNotExist
	}
	if actor != owner {
		return nil, ErrOutputNotPoolOwner
	}
	if token != r.Token {
		return nil, ErrOutputTokenMismatch
	}

	// Check both sides before mutating either
	newTokenReserve, err := smath.Sub(tokenReserve, r.TokenAmount)
	if err != nil {
		return nil, ErrOutputInsufficientReserve
	}
	newCounterReserve, err := smath.Sub(counterReserve, r.CounterAmount)
	if err != nil {
		return nil, ErrOutputInsufficientReserve
	}

	toTokenBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, token, r.To)
	if err != nil {
		return nil, err
	}
	newToTokenBalance, err := smath.Add64(toTokenBalance, r.TokenAmount)
	if err != nil {
		return nil, ErrOutputBalanceOverflow
	}
	toCounterBalance, err := storage.GetCounterAccountBalanceNoController(ctx, mu, r.To)
	if err != nil {
		return nil, err
	}
	newToCounterBalance, err := smath.Add64(toCounterBalance, r.CounterAmount)
	if err != nil {
		return nil, ErrOutputBalanceOverflow
	}

	if err := storage.SetLiquidityPool(ctx, mu, r.LiquidityPool, token, newTokenReserve, newCounterReserve, owner); err != nil {
		return nil, err
	}
	if err := storage.SetTokenAccountBalance(ctx, mu, token, r.To, newToTokenBalance); err != nil {
		return nil, err
	}
	if err := storage.SetCounterAccountBalance(ctx, mu, r.To, newToCounterBalance); err != nil {
		return nil, err
	}

	return &RemoveLiquidityResult{
		TokenAmount:   r.TokenAmount,
		CounterAmount: r.CounterAmount,
	}, nil
}

// GetTypeID implements chain.Action.
func (*RemoveLiquidity) GetTypeID() uint8 {
	return consts.RemoveLiquidityID
}

// StateKeys implements chain.Action.
func (r *RemoveLiquidity) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.LiquidityPoolKey(r.LiquidityPool)):     state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(r.Token, r.To)): state.All,
		string(storage.CounterAccountBalanceKey(r.To)):        state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*RemoveLiquidity) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.LiquidityPoolChunks,
		storage.TokenAccountBalanceChunks,
		storage.CounterAccountBalanceChunks,
	}
}

// ValidRange implements chain.Action.
func (*RemoveLiquidity) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
