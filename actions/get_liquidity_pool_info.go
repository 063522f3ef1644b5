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
)

var (
	_ codec.Typed  = (*GetLiquidityPoolInfoResult)(nil)
	_ chain.Action = (*GetLiquidityPoolInfo)(nil)
)

type GetLiquidityPoolInfoResult struct {
	Token          codec.Address `serialize:"true" json:"token"`
	TokenReserve   uint64        `serialize:"true" json:"tokenReserve"`
	CounterReserve uint64        `serialize:"true" json:"counterReserve"`
	Owner          codec.Address `serialize:"true" json:"owner"`
}

func (*GetLiquidityPoolInfoResult) GetTypeID() uint8 {
	return consts.GetLiquidityPoolInfoID
}

type GetLiquidityPoolInfo struct {
	LiquidityPool codec.Address `serialize:"true" json:"liquidityPool"`
}

func (*GetLiquidityPoolInfo) ComputeUnits(chain.Rules) uint64 {
	return GetLiquidityPoolInfoComputeUnits
}

// Execute implements chain.Action.
func (g *GetLiquidityPoolInfo) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	token, tokenReserve, counterReserve, owner, err := storage.GetLiquidityPoolNoController(ctx, mu, g.LiquidityPool)
	if err != nil {
		return nil, ErrOutputLiquidityPoolDoesNotExist
	}
	return &GetLiquidityPoolInfoResult{
		Token:          token,
		TokenReserve:   tokenReserve,
		CounterReserve: counterReserve,
		Owner:          owner,
	}, nil
}

// GetTypeID implements chain.Action.
func (*GetLiquidityPoolInfo) GetTypeID() uint8 {
	return consts.GetLiquidityPoolInfoID
}

// StateKeys implements chain.Action.
func (g *GetLiquidityPoolInfo) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.LiquidityPoolKey(g.LiquidityPool)): state.Read,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*GetLiquidityPoolInfo) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.LiquidityPoolChunks}
}

// ValidRange implements chain.Action.
func (*GetLiquidityPoolInfo) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
