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
	_ codec.Typed  = (*GetTokenInfoResult)(nil)
	_ chain.Action = (*GetTokenInfo)(nil)
)

type GetTokenInfoResult struct {
	Name        []byte `serialize:"true" json:"name"`
	Symbol      []byte `serialize:"true" json:"symbol"`
	TotalSupply uint64 `serialize:"true" json:"totalSupply"`
	Balance     uint64 `serialize:"true" json:"balance"`
}

func (*GetTokenInfoResult) GetTypeID() uint8 {
	return consts.GetTokenInfoID
}

type GetTokenInfo struct {
	Token codec.Address `serialize:"true" json:"token"`
}

func (*GetTokenInfo) ComputeUnits(chain.Rules) uint64 {
	return GetTokenInfoComputeUnits
}

// Execute implements chain.Action.
func (g *GetTokenInfo) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	name, symbol, totalSupply, balance, err := storage.GetTokenInfoNoController(ctx, mu, g.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	return &GetTokenInfoResult{
		Name:        name,
		Symbol:      symbol,
		TotalSupply: totalSupply,
		Balance:     balance,
	}, nil
}

// GetTypeID implements chain.Action.
func (*GetTokenInfo) GetTypeID() uint8 {
	return consts.GetTokenInfoID
}

// StateKeys implements chain.Action.
func (g *GetTokenInfo) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(g.Token)): state.Read,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*GetTokenInfo) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenInfoChunks}
}

// ValidRange implements chain.Action.
func (*GetTokenInfo) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
