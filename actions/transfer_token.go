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
	_ codec.Typed  = (*TransferTokenResult)(nil)
	_ chain.Action = (*TransferToken)(nil)
)

type TransferTokenResult struct {
	TokenBalance uint64 `serialize:"true" json:"tokenBalance"`
	ToBalance    uint64 `serialize:"true" json:"toBalance"`
}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// TransferToken withdraws [Value] from the token's reserve and credits it
// to [To]'s account balance as an independently owned coin. Total supply
// is unchanged: withdrawn value leaves the reserve for good.
type TransferToken struct {
	Token codec.Address `serialize:"true" json:"token"`
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

// Execute implements chain.Action.
func (t *TransferToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	if t.Value == 0 {
		return nil, ErrOutputTransferValueZero
	}

	name, symbol, totalSupply, balance, err := storage.GetTokenInfoNoController(ctx, mu, t.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	newBalance, err := smath.Sub(balance, t.Value)
	if err != nil {
		return nil, ErrOutputInsufficientBalance
	}

	toBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.Token, t.To)
	if err != nil {
		return nil, err
	}
	newToBalance, err := smath.Add64(toBalance, t.Value)
	if err != nil {
		return nil, ErrOutputBalanceOverflow
	}

	if err := storage.SetTokenInfo(ctx, mu, t.Token, name, symbol, totalSupply, newBalance); err != nil {
		return nil, err
	}
	if err := storage.SetTokenAccountBalance(ctx, mu, t.Token, t.To, newToBalance); err != nil {
		return nil, err
	}

	return &TransferTokenResult{
		TokenBalance: newBalance,
		ToBalance:    newToBalance,
	}, nil
}

// GetTypeID implements chain.Action.
func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// StateKeys implements chain.Action.
func (t *TransferToken) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(t.Token)):                 state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(t.Token, t.To)): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*TransferToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenInfoChunks, storage.TokenAccountBalanceChunks}
}

// ValidRange implements chain.Action.
func (*TransferToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
