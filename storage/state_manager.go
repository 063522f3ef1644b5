// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.StateManager = (*StateManager)(nil)

// StateManager settles transaction fees against the PoolVM fee coin,
// which is itself an entry in the token ledger at [CoinAddress].
type StateManager struct{}

func (*StateManager) HeightKey() []byte {
	return []byte{heightPrefix}
}

func (*StateManager) TimestampKey() []byte {
	return []byte{timestampPrefix}
}

func (*StateManager) FeeKey() []byte {
	return []byte{feePrefix}
}

func (*StateManager) SponsorStateKeys(addr codec.Address) state.Keys {
	return state.Keys{
		string(TokenAccountBalanceKey(CoinAddress, addr)): state.Read | state.Write,
	}
}

func (*StateManager) CanDeduct(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, im, CoinAddress, addr)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInvalidBalance
	}
	return nil
}

func (*StateManager) Deduct(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, mu, CoinAddress, addr)
	if err != nil {
		return err
	}
	newBalance, err := smath.Sub(balance, amount)
	if err != nil {
		return err
	}
	return SetTokenAccountBalance(ctx, mu, CoinAddress, addr, newBalance)
}

func (*StateManager) AddBalance(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
	_ bool,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, mu, CoinAddress, addr)
	if err != nil {
		return err
	}
	newBalance, err := smath.Add64(balance, amount)
	if err != nil {
		return err
	}
	return SetTokenAccountBalance(ctx, mu, CoinAddress, addr, newBalance)
}
