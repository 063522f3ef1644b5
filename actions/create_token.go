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
	_ codec.Typed  = (*CreateTokenResult)(nil)
	_ chain.Action = (*CreateToken)(nil)
)

type CreateTokenResult struct {
	Token codec.Address `serialize:"true" json:"token"`
}

func (*CreateTokenResult) GetTypeID() uint8 {
	return consts.CreateTokenID
}

// CreateToken registers a token with zero supply and an empty reserve.
// Holding a reference to any existing authority suffices; the caller does
// not need to be its admin (minting is where the admin check applies).
type CreateToken struct {
	Name      []byte        `serialize:"true" json:"name"`
	Symbol    []byte        `serialize:"true" json:"symbol"`
	Authority codec.Address `serialize:"true" json:"authority"`
}

// ComputeUnits implements chain.Action.
func (*CreateToken) ComputeUnits(chain.Rules) uint64 {
	return CreateTokenComputeUnits
}

// Execute implements chain.Action.
func (c *CreateToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, actionID ids.ID) (codec.Typed, error) {
	// Enforce initial invariants
	if len(c.Name) == 0 {
		return nil, ErrOutputTokenNameEmpty
	}
	if len(c.Symbol) == 0 {
		return nil, ErrOutputTokenSymbolEmpty
	}
	if len(c.Name) > storage.MaxTokenNameSize {
		return nil, ErrOutputTokenNameTooLarge
	}
	if len(c.Symbol) > storage.MaxTokenSymbolSize {
		return nil, ErrOutputTokenSymbolTooLarge
	}

	// A valid authority reference is required, but no admin check is made
	if _, err := storage.GetAuthorityNoController(ctx, mu, c.Authority); err != nil {
		return nil, ErrOutputAuthorityDoesNotExist
	}

	tokenAddress := storage.TokenAddress(actionID)
	if err := storage.SetTokenInfo(ctx, mu, tokenAddress, c.Name, c.Symbol, 0, 0); err != nil {
		return nil, err
	}

	return &CreateTokenResult{
		Token: tokenAddress,
	}, nil
}

// GetTypeID implements chain.Action.
func (*CreateToken) GetTypeID() uint8 {
	return consts.CreateTokenID
}

// StateKeys implements chain.Action.
func (c *CreateToken) StateKeys(_ codec.Address, actionID ids.ID) state.Keys {
	return state.Keys{
		string(storage.AuthorityKey(c.Authority)):                    state.Read,
		string(storage.TokenInfoKey(storage.TokenAddress(actionID))): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*CreateToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.AuthorityChunks, storage.TokenInfoChunks}
}

// ValidRange implements chain.Action.
func (*CreateToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
