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
	_ codec.Typed  = (*CreateLiquidityPoolResult)(nil)
	_ chain.Action = (*CreateLiquidityPool)(nil)
)

type CreateLiquidityPoolResult struct {
	LiquidityPool codec.Address `serialize:"true" json:"liquidityPool"`
}

func (*CreateLiquidityPoolResult) GetTypeID() uint8 {
	return consts.CreateLiquidityPoolID
}

// CreateLiquidityPool seeds a pool from the token's reserve and makes the
// calling admin its owner. The token side is withdrawn from the token's
// reserve; the counter side is taken at face value from [CounterAmount]
// with no debit from any tracked ledger (the counter asset is assumed to
// be settled by an external system).
type CreateLiquidityPool struct {
	Authority     codec.Address `serialize:"true" json:"authority"`
	Token         codec.Address `serialize:"true" json:"token"`
	TokenAmount   uint64        `serialize:"true" json:"tokenAmount"`
	CounterAmount uint64        `serialize:"true" json:"counterAmount"`
}

// ComputeUnits implements chain.Action.
func (*CreateLiquidityPool) ComputeUnits(chain.Rules) uint64 {
	return CreateLiquidityPoolComputeUnits
}

// Execute implements chain.Action.
func (c *CreateLiquidityPool) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, actionID ids.ID) (codec.Typed, error) {
	admin, err := storage.GetAuthorityNoController(ctx, mu, c.Authority)
	if err != nil {
		return nil, ErrOutputAuthorityDoesNotExist
	}
	if actor != admin {
		return nil, ErrOutputUnauthorized
	}

	name, symbol, totalSupply, balance, err := storage.GetTokenInfoNoController(ctx, mu, c.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	newBalance, err := smath.Sub(balance, c.TokenAmount)
	if err != nil {
		return nil, ErrOutputInsufficientBalance
	}

	if err := storage.SetTokenInfo(ctx, mu, c.Token, name, symbol, totalSupply, newBalance); err != nil {
		return nil, err
	}

	poolAddress := storage.LiquidityPoolAddress(actionID)
	if err := storage.SetLiquidityPool(ctx, mu, poolAddress, c.Token, c.TokenAmount, c.CounterAmount, actor); err != nil {
		return nil, err
	}

	return &CreateLiquidityPoolResult{
		LiquidityPool: poolAddress,
	}, nil
}

// GetTypeID implements chain.Action.
func (*CreateLiquidityPool) GetTypeID() uint8 {
	return consts.CreateLiquidityPoolID
}

// StateKeys implements chain.Action.
func (c *CreateLiquidityPool) StateKeys(_ codec.Address, actionID ids.ID) state.Keys {
	return state.Keys{
		string(storage.AuthorityKey(c.Authority)):                                state.Read,
		string(storage.TokenInfoKey(c.Token)):                                    state.Read | state.Write,
		string(storage.LiquidityPoolKey(storage.LiquidityPoolAddress(actionID))): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*CreateLiquidityPool) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.AuthorityChunks, storage.TokenInfoChunks, storage.LiquidityPoolChunks}
}

// ValidRange implements chain.Action.
func (*CreateLiquidityPool) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
