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
	_ codec.Typed  = (*MintTokenResult)(nil)
	_ chain.Action = (*MintToken)(nil)
)

type MintTokenResult struct {
	TotalSupply uint64 `serialize:"true" json:"totalSupply"`
	Balance     uint64 `serialize:"true" json:"balance"`
}

func (*MintTokenResult) GetTypeID() uint8 {
	return consts.MintTokenID
}

// MintToken increases a token's total supply and deposits the minted
// value into the token's own reserve. Only the admin bound to
// [Authority] may mint. The supply addition is checked before the
// reserve deposit, so an overflowing mint leaves both untouched.
type MintToken struct {
	Authority codec.Address `serialize:"true" json:"authority"`
	Token     codec.Address `serialize:"true" json:"token"`
	Value     uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*MintToken) ComputeUnits(chain.Rules) uint64 {
	return MintTokenComputeUnits
}

// Execute implements chain.Action.
func (m *MintToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if m.Value == 0 {
		return nil, ErrOutputMintValueZero
	}

	admin, err := storage.GetAuthorityNoController(ctx, mu, m.Authority)
	if err != nil {
		return nil, ErrOutputAuthorityDoesNotExist
	}
	if actor != admin {
		return nil, ErrOutputUnauthorized
	}

	name, symbol, totalSupply, balance, err := storage.GetTokenInfoNoController(ctx, mu, m.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}

	newTotalSupply, err := smath.Add64(totalSupply, m.Value)
	if err != nil {
		return nil, ErrOutputSupplyOverflow
	}
	// balance <= totalSupply, so this cannot overflow when the above did not
	newBalance, err := smath.Add64(balance, m.Value)
	if err != nil {
		return nil, ErrOutputBalanceOverflow
	}

	if err := storage.SetTokenInfo(ctx, mu, m.Token, name, symbol, newTotalSupply, newBalance); err != nil {
		return nil, err
	}

	return &MintTokenResult{
		TotalSupply: newTotalSupply,
		Balance:     newBalance,
	}, nil
}

// GetTypeID implements chain.Action.
func (*MintToken) GetTypeID() uint8 {
	return consts.MintTokenID
}

// StateKeys implements chain.Action.
func (m *MintToken) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.AuthorityKey(m.Authority)): state.Read,
		string(storage.TokenInfoKey(m.Token)):     state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*MintToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.AuthorityChunks, storage.TokenInfoChunks}
}

// ValidRange implements chain.Action.
func (*MintToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
