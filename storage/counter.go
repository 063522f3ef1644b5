// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	lconsts "github.com/ava-labs/hypersdk/consts"
)

// Counter-asset balances hold the counter side of pool withdrawals. There
// is no counter-asset token entity: counter amounts enter pools directly
// from action arguments (assumed settled by an external system), so the
// only counter-asset state this VM tracks is what RemoveLiquidity has
// paid out per account.

func CounterAccountBalanceKey(account codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+lconsts.Uint16Len)
	k[0] = counterAccountBalancePrefix
	copy(k[1:], account[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], CounterAccountBalanceChunks)
	return k
}

func SetCounterAccountBalance(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	balance uint64,
) error {
	k := CounterAccountBalanceKey(account)
	v := make([]byte, lconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, balance)
	return mu.Insert(ctx, k, v)
}

func GetCounterAccountBalance(
	ctx context.Context,
	f ReadState,
	account codec.Address,
) (uint64, error) {
	k := CounterAccountBalanceKey(account)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] == database.ErrNotFound {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}

func GetCounterAccountBalanceNoController(
	ctx context.Context,
	mu state.Immutable,
	account codec.Address,
) (uint64, error) {
	k := CounterAccountBalanceKey(account)
	v, err := mu.GetValue(ctx, k)
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}
