// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/examples/poolvm/storage"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"
)

// TestTokenPoolLifecycle walks a token from creation through minting,
// transferring, pooling, and withdrawal, checking conservation along the
// way.
func TestTokenPoolLifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ts = tstate.New(1)

	admin := codectest.NewRandomAddress()
	stranger := codectest.NewRandomAddress()
	user := codectest.NewRandomAddress()
	recipient := codectest.NewRandomAddress()

	parentState := ts.NewView(
		state.Keys{
			string(storage.AuthorityKey(authorityAddress)):                  state.All,
			string(storage.TokenInfoKey(tokenAddress)):                      state.All,
			string(storage.LiquidityPoolKey(lpAddress)):                     state.All,
			string(storage.TokenAccountBalanceKey(tokenAddress, user)):      state.All,
			string(storage.TokenAccountBalanceKey(tokenAddress, recipient)): state.All,
			string(storage.CounterAccountBalanceKey(recipient)):             state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	_, err := (&CreateAuthority{Admin: admin}).Execute(ctx, nil, parentState, 0, admin, authorityActionID)
	req.NoError(err)
	_, err = (&CreateToken{Name: []byte(TokenName), Symbol: []byte(TokenSymbol), Authority: authorityAddress}).Execute(ctx, nil, parentState, 0, admin, tokenActionID)
	req.NoError(err)

	// Mint 100 into the token reserve
	_, err = (&MintToken{Authority: authorityAddress, Token: tokenAddress, Value: 100}).Execute(ctx, nil, parentState, 0, admin, ids.Empty)
	req.NoError(err)

	// A non-admin cannot mint
	_, err = (&MintToken{Authority: authorityAddress, Token: tokenAddress, Value: 100}).Execute(ctx, nil, parentState, 0, stranger, ids.Empty)
	req.ErrorIs(err, ErrOutputUnauthorized)

	// Move 40 out of the reserve into a user account
	_, err = (&TransferToken{Token: tokenAddress, To: user, Value: 40}).Execute(ctx, nil, parentState, 0, admin, ids.Empty)
	req.NoError(err)

	_, _, totalSupply, balance, err := storage.GetTokenInfoNoController(ctx, parentState, tokenAddress)
	req.NoError(err)
	req.Equal(uint64(100), totalSupply)
	req.Equal(uint64(60), balance)
	userBalance, err := storage.GetTokenAccountBalanceNoController(ctx, parentState, tokenAddress, user)
	req.NoError(err)
	req.Equal(uint64(40), userBalance)

	// Seed a pool with half of the remaining reserve
	_, err = (&CreateLiquidityPool{Authority: authorityAddress, Token: tokenAddress, TokenAmount: 30, CounterAmount: 1_000}).Execute(ctx, nil, parentState, 0, admin, lpActionID)
	req.NoError(err)

	_, _, _, balance, err = storage.GetTokenInfoNoController(ctx, parentState, tokenAddress)
	req.NoError(err)
	req.Equal(uint64(30), balance)

	// Only the pool owner may withdraw
	_, err = (&RemoveLiquidity{Token: tokenAddress, LiquidityPool: lpAddress, TokenAmount: 30, CounterAmount: 1_000, To: stranger}).Execute(ctx, nil, parentState, 0, stranger, ids.Empty)
	req.ErrorIs(err, ErrOutputNotPoolOwner)

	// Drain the pool to a recipient
	_, err = (&RemoveLiquidity{Token: tokenAddress, LiquidityPool: lpAddress, TokenAmount: 30, CounterAmount: 1_000, To: recipient}).Execute(ctx, nil, parentState, 0, admin, ids.Empty)
	req.NoError(err)

	_, tokenReserve, counterReserve, _, err := storage.GetLiquidityPoolNoController(ctx, parentState, lpAddress)
	req.NoError(err)
	req.Equal(uint64(0), tokenReserve)
	req.Equal(uint64(0), counterReserve)

	recipientTokens, err := storage.GetTokenAccountBalanceNoController(ctx, parentState, tokenAddress, recipient)
	req.NoError(err)
	req.Equal(uint64(30), recipientTokens)
	recipientCounter, err := storage.GetCounterAccountBalanceNoController(ctx, parentState, recipient)
	req.NoError(err)
	req.Equal(uint64(1_000), recipientCounter)

	// Supply is conserved end to end: 40 with the user, 30 with the
	// recipient, 30 still in the token reserve.
	_, _, totalSupply, balance, err = storage.GetTokenInfoNoController(ctx, parentState, tokenAddress)
	req.NoError(err)
	req.Equal(uint64(100), totalSupply)
	req.Equal(uint64(30), balance)
}
