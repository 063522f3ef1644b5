// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/examples/poolvm/consts"
	"github.com/ava-labs/hypersdk/utils"
)

// ReadState is the read interface exposed by the VM for API handlers.
type ReadState func(context.Context, [][]byte) ([][]byte, []error)

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for PoolVM
	authorityPrefix
	tokenInfoPrefix
	tokenAccountBalancePrefix
	counterAccountBalancePrefix
	liquidityPoolPrefix
)

// Chunks
const (
	AuthorityChunks             uint16 = 1
	TokenInfoChunks             uint16 = 2
	TokenAccountBalanceChunks   uint16 = 1
	CounterAccountBalanceChunks uint16 = 1
	// A pool record is two addresses plus two reserves, which is larger
	// than one 64-byte chunk.
	LiquidityPoolChunks uint16 = 2
)

// Related to action invariants
const (
	MaxTokenNameSize   = 64
	MaxTokenSymbolSize = 8
)

// Data for the PoolVM fee coin. The fee coin is an entry in the token
// ledger like any other token; its address is fixed at init so genesis
// allocations and fee settlement agree on it.
const (
	CoinSymbol = "PVM"
)

var CoinAddress codec.Address

func init() {
	v := make([]byte, len(consts.Name)+len(CoinSymbol))
	copy(v, consts.Name)
	copy(v[len(consts.Name):], CoinSymbol)
	CoinAddress = codec.CreateAddress(consts.TOKENID, utils.ToID(v))
}
