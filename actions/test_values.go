// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/examples/poolvm/storage"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"
)

const (
	TokenName   = "PoolCoin"
	TokenSymbol = "PLC"

	TooLargeTokenName   = "Lorem ipsum dolor sit amet, consectetur adipiscing elit pharetra." // #nosec G101
	TooLargeTokenSymbol = "AAAAAAAAA"

	InitialMintValue = 100
)

var (
	ts *tstate.TState

	authorityActionID = ids.GenerateTestID()
	tokenActionID     = ids.GenerateTestID()
	lpActionID        = ids.GenerateTestID()

	authorityAddress = storage.AuthorityAddress(authorityActionID)
	tokenAddress     = storage.TokenAddress(tokenActionID)
	lpAddress        = storage.LiquidityPoolAddress(lpActionID)
)

func GenerateEmptyState() state.Mutable {
	stateKeys := make(state.Keys)
	return ts.NewView(stateKeys, chaintest.NewInMemoryStore().Storage)
}
