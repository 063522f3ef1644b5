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
	_ codec.Typed  = (*CreateAuthorityResult)(nil)
	_ chain.Action = (*CreateAuthority)(nil)
)

type CreateAuthorityResult struct {
	Authority codec.Address `serialize:"true" json:"authority"`
}

func (*CreateAuthorityResult) GetTypeID() uint8 {
	return consts.CreateAuthorityID
}

// CreateAuthority allocates an immutable authority record binding
// [Admin] as the principal allowed to mint and to create liquidity pools
// through it. Anyone may create an authority; possession of its address
// grants nothing unless the caller is the bound admin.
type CreateAuthority struct {
	Admin codec.Address `serialize:"true" json:"admin"`
}

// ComputeUnits implements chain.Action.
func (*CreateAuthority) ComputeUnits(chain.Rules) uint64 {
	return CreateAuthorityComputeUnits
}

// Execute implements chain.Action.
func (c *CreateAuthority) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, actionID ids.ID) (codec.Typed, error) {
	authorityAddress := storage.AuthorityAddress(actionID)
	if err := storage.SetAuthority(ctx, mu, authorityAddress, c.Admin); err != nil {
		return nil, err
	}
	return &CreateAuthorityResult{
		Authority: authorityAddress,
	}, nil
}

// GetTypeID implements chain.Action.
func (*CreateAuthority) GetTypeID() uint8 {
	return consts.CreateAuthorityID
}

// StateKeys implements chain.Action.
func (*CreateAuthority) StateKeys(_ codec.Address, actionID ids.ID) state.Keys {
	return state.Keys{
		string(storage.AuthorityKey(storage.AuthorityAddress(actionID))): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*CreateAuthority) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.AuthorityChunks}
}

// ValidRange implements chain.Action.
func (*CreateAuthority) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
