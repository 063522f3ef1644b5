// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/examples/poolvm/consts"
	"github.com/ava-labs/hypersdk/state"

	lconsts "github.com/ava-labs/hypersdk/consts"
)

// A liquidity pool pairs a token-side reserve with a counter-asset
// reserve under a single owner. Pool addresses are derived from the id of
// the creating action; pools are never destroyed (there is no close or
// burn operation), so one token may back any number of pools.

func LiquidityPoolAddress(actionID ids.ID) codec.Address {
	return codec.CreateAddress(consts.LIQUIDITYPOOLID, actionID)
}

func LiquidityPoolKey(liquidityPoolAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+lconsts.Uint16Len)
	k[0] = liquidityPoolPrefix
	copy(k[1:1+codec.AddressLen], liquidityPoolAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], LiquidityPoolChunks)
	return k
}

func SetLiquidityPool(
	ctx context.Context,
	mu state.Mutable,
	liquidityPoolAddress codec.Address,
	token codec.Address,
	tokenReserve uint64,
	counterReserve uint64,
	owner codec.Address,
) error {
	k := LiquidityPoolKey(liquidityPoolAddress)
	v := make([]byte, codec.AddressLen+lconsts.Uint64Len+lconsts.Uint64Len+codec.AddressLen)
	copy(v, token[:])
	binary.BigEndian.PutUint64(v[codec.AddressLen:], tokenReserve)
	binary.BigEndian.PutUint64(v[codec.AddressLen+lconsts.Uint64Len:], counterReserve)
	copy(v[codec.AddressLen+lconsts.Uint64Len+lconsts.Uint64Len:], owner[:])
	return mu.Insert(ctx, k, v)
}

func GetLiquidityPool(
	ctx context.Context,
	f ReadState,
	poolAddress codec.Address,
) (codec.Address, uint64, uint64, codec.Address, error) {
	k := LiquidityPoolKey(poolAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return codec.EmptyAddress, 0, 0, codec.EmptyAddress, errs[0]
	}
	return innerGetLiquidityPool(values[0])
}

func GetLiquidityPoolNoController(
	ctx context.Context,
	mu state.Immutable,
	poolAddress codec.Address,
) (codec.Address, uint64, uint64, codec.Address, error) {
	k := LiquidityPoolKey(poolAddress)
	v, err := mu.GetValue(ctx, k)
	if err != nil {
		return codec.EmptyAddress, 0, 0, codec.EmptyAddress, err
	}
	return innerGetLiquidityPool(v)
}

func innerGetLiquidityPool(
	v []byte,
) (codec.Address, uint64, uint64, codec.Address, error) {
	token := codec.Address(v[:codec.AddressLen])
	tokenReserve := binary.BigEndian.Uint64(v[codec.AddressLen:])
	counterReserve := binary.BigEndian.Uint64(v[codec.AddressLen+lconsts.Uint64Len:])
	owner := codec.Address(v[codec.AddressLen+lconsts.Uint64Len+lconsts.Uint64Len:])
	return token, tokenReserve, counterReserve, owner, nil
}

func LiquidityPoolExists(
	ctx context.Context,
	mu state.Immutable,
	poolAddress codec.Address,
) bool {
	v, err := mu.GetValue(ctx, LiquidityPoolKey(poolAddress))
	return v != nil && err == nil
}
