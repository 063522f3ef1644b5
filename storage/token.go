// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/examples/poolvm/consts"
	"github.com/ava-labs/hypersdk/state"

	lconsts "github.com/ava-labs/hypersdk/consts"
)

// A token record holds the ledger-side state of one token: metadata, the
// total amount ever minted, and the token's own reserve balance. Value
// withdrawn from the reserve by transfers or pool creation leaves the
// record as independently owned account balances; totalSupply is never
// decremented, so totalSupply >= balance always holds.

func TokenAddress(actionID ids.ID) codec.Address {
	return codec.CreateAddress(consts.TOKENID, actionID)
}

func TokenInfoKey(tokenAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+lconsts.Uint16Len)
	k[0] = tokenInfoPrefix
	copy(k[1:1+codec.AddressLen], tokenAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], TokenInfoChunks)
	return k
}

func TokenAccountBalanceKey(token codec.Address, account codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+codec.AddressLen+lconsts.Uint16Len)
	k[0] = tokenAccountBalancePrefix
	copy(k[1:], token[:])
	copy(k[1+codec.AddressLen:], account[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen+codec.AddressLen:], TokenAccountBalanceChunks)
	return k
}

func SetTokenInfo(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	name []byte,
	symbol []byte,
	totalSupply uint64,
	balance uint64,
) error {
	// Setup
	k := TokenInfoKey(tokenAddress)
	nameLen := len(name)
	symbolLen := len(symbol)
	tokenInfoSize := lconsts.Uint16Len + nameLen + lconsts.Uint16Len + symbolLen + lconsts.Uint64Len + lconsts.Uint64Len
	v := make([]byte, tokenInfoSize)

	// Insert name
	binary.BigEndian.PutUint16(v, uint16(nameLen))
	copy(v[lconsts.Uint16Len:lconsts.Uint16Len+nameLen], name)
	// Insert symbol
	binary.BigEndian.PutUint16(v[lconsts.Uint16Len+nameLen:], uint16(symbolLen))
	copy(v[lconsts.Uint16Len+nameLen+lconsts.Uint16Len:lconsts.Uint16Len+nameLen+lconsts.Uint16Len+symbolLen], symbol)
	// Insert totalSupply
	binary.BigEndian.PutUint64(v[lconsts.Uint16Len+nameLen+lconsts.Uint16Len+symbolLen:], totalSupply)
	// Insert balance
	binary.BigEndian.PutUint64(v[lconsts.Uint16Len+nameLen+lconsts.Uint16Len+symbolLen+lconsts.Uint64Len:], balance)
	return mu.Insert(ctx, k, v)
}

func GetTokenInfo(
	ctx context.Context,
	f ReadState,
	tokenAddress codec.Address,
) ([]byte, []byte, uint64, uint64, error) {
	k := TokenInfoKey(tokenAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return nil, nil, 0, 0, errs[0]
	}
	return innerGetTokenInfo(values[0])
}

func GetTokenInfoNoController(
	ctx context.Context,
	mu state.Immutable,
	tokenAddress codec.Address,
) ([]byte, []byte, uint64, uint64, error) {
	k := TokenInfoKey(tokenAddress)
	v, err := mu.GetValue(ctx, k)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	return innerGetTokenInfo(v)
}

func innerGetTokenInfo(
	v []byte,
) ([]byte, []byte, uint64, uint64, error) {
	// Extract name
	nameLen := binary.BigEndian.Uint16(v)
	name := v[lconsts.Uint16Len : lconsts.Uint16Len+nameLen]
	// Extract symbol
	symbolLen := binary.BigEndian.Uint16(v[lconsts.Uint16Len+nameLen:])
	symbol := v[lconsts.Uint16Len+nameLen+lconsts.Uint16Len : lconsts.Uint16Len+nameLen+lconsts.Uint16Len+symbolLen]
	// Extract totalSupply
	totalSupply := binary.BigEndian.Uint64(v[lconsts.Uint16Len+nameLen+lconsts.Uint16Len+symbolLen:])
	// Extract balance
	balance := binary.BigEndian.Uint64(v[lconsts.Uint16Len+nameLen+lconsts.Uint16Len+symbolLen+lconsts.Uint64Len:])

	return name, symbol, totalSupply, balance, nil
}

func SetTokenAccountBalance(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	account codec.Address,
	balance uint64,
) error {
	k := TokenAccountBalanceKey(tokenAddress, account)
	v := make([]byte, lconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, balance)
	return mu.Insert(ctx, k, v)
}

func GetTokenAccountBalance(
	ctx context.Context,
	f ReadState,
	tokenAddress codec.Address,
	account codec.Address,
) (uint64, error) {
	k := TokenAccountBalanceKey(tokenAddress, account)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] == database.ErrNotFound {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}

func GetTokenAccountBalanceNoController(
	ctx context.Context,
	mu state.Immutable,
	tokenAddress codec.Address,
	account codec.Address,
) (uint64, error) {
	k := TokenAccountBalanceKey(tokenAddress, account)
	v, err := mu.GetValue(ctx, k)
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func TokenExists(
	ctx context.Context,
	mu state.Immutable,
	tokenAddress codec.Address,
) bool {
	v, err := mu.GetValue(ctx, TokenInfoKey(tokenAddress))
	return v != nil && err == nil
}
