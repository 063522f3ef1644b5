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
	_ codec.Typed  = (*AddLiquidityResult)(nil)
	_ chain.Action = (*AddLiquidity)(nil)
)

type AddLiquidityResult struct {
	TokenReserve   uint64 `serialize:"true" json:"tokenReserve"`
	CounterReserve uint64 `serialize:"true" json:"counterReserve"`
}

func (*AddLiquidityResult) GetTypeID() uint8 {
	return consts.AddLiquidityID
}

// AddLiquidity moves [TokenAmount] from the token's reserve into the
// pool's token reserve and grows the counter reserve by [CounterAmount].
// Any caller may add. As with pool creation, the counter amount has no
// tracked source ledger and is assumed to be settled externally.
type AddLiquidity struct {
	LiquidityPool codec.Address `serialize:"true" json:"liquidityPool"`
	Token         codec.Address `serialize:"true" json:"token"`
	TokenAmount   uint64        `serialize:"true" json:"tokenAmount"`
	CounterAmount uint64        `serialize:"true" json:"counterAmount"`
}

// ComputeUnits implements chain.Action.
func (*AddLiquidity) ComputeUnits(chain.Rules) uint64 {
	return AddLiquidityComputeUnits
}

// Execute implements chain.Action.
func (a *AddLiquidity) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	token, tokenReserve, counterReserve, owner, err := storage.GetLiquidityPoolNoController(ctx, mu, a.LiquidityPool)
	if err != nil {
		return nil, ErrOutputLiquidityPoolDoesNotExist
	}
	if token != a.Token {
		return nil, ErrOutputTokenMismatch
	}

	name, symbol, totalSupply, balance, err := storage.GetTokenInfoNoController(ctx, mu, a.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	newBalance, err := smath.Sub(balance, a.TokenAmount)
	if err != nil {
		return nil, ErrOutputInsufficientBalance
	}

	newTokenReserve, err := smath.Add64(tokenReserve, a.TokenAmount)
	if err != nil {
		return nil, ErrOutputReserveOverflow
	}
	newCounterReserve, err := smath.Add64(counterReserve, a.CounterAmount)
	if err != nil {
		return nil, ErrOutputReserveOverflow
	}

	if err := storage.SetTokenInfo(ctx, mu, a.Token, name, symbol, totalSupply, newBalance); err != nil {
		return nil, err
	}
	if err := storage.SetLiquidityPool(ctx, mu, a.LiquidityPool, token, newTokenReserve, newCounterReserve, owner); err != nil {
		return nil, err
	}

	return &AddLiquidityResult{
		TokenReserve:   newTokenReserve,
		CounterReserve: newCounterReserve,
	}, nil
}

// GetTypeID implements chain.Action.
func (*AddLiquidity) GetTypeID() uint8 {
	return consts.AddLiquidityID
}

// StateKeys implements chain.Action.
func (a *AddLiquidity) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.LiquidityPoolKey(a.LiquidityPool)): state.Read | state.Write,
		string(storage.TokenInfoKey(a.Token)):             state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*AddLiquidity) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.LiquidityPoolChunks, storage.TokenInfoChunks}
}

// ValidRange implements chain.Action.
func (*AddLiquidity) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
