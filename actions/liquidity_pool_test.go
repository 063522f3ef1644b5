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

func TestCreateLiquidityPool(t *testing.T) {
	req := require.New(t)
	ts = tstate.New(1)

	addr := codectest.NewRandomAddress()
	stranger := codectest.NewRandomAddress()
	missingToken := storage.TokenAddress(ids.GenerateTestID())

	parentState := ts.NewView(
		state.Keys{
			string(storage.AuthorityKey(authorityAddress)): state.All,
			string(storage.TokenInfoKey(tokenAddress)):     state.All,
			string(storage.TokenInfoKey(missingToken)):     state.All,
			string(storage.LiquidityPoolKey(lpAddress)):    state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	_, err := (&CreateAuthority{Admin: addr}).Execute(context.Background(), nil, parentState, 0, addr, authorityActionID)
	req.NoError(err)
	_, err = (&CreateToken{Name: []byte(TokenName), Symbol: []byte(TokenSymbol), Authority: authorityAddress}).Execute(context.Background(), nil, parentState, 0, addr, tokenActionID)
	req.NoError(err)
	_, err = (&MintToken{Authority: authorityAddress, Token: tokenAddress, Value: InitialMintValue}).Execute(context.Background(), nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "Authority must exist",
			Action: &CreateLiquidityPool{
				Authority:     authorityAddress,
				Token:         tokenAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAuthorityDoesNotExist,
			State:           GenerateEmptyState(),
		},
		{
			Name: "Only the admin may create a pool",
			Action: &CreateLiquidityPool{
				Authority:     authorityAddress,
				Token:         tokenAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputUnauthorized,
			State:           parentState,
			Actor:           stranger,
		},
		{
			Name: "Token must exist",
			Action: &CreateLiquidityPool{
				Authority:     authorityAddress,
				Token:         missingToken,
				TokenAmount:   30,
				CounterAmount: 1_000,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Cannot seed with more than the reserve holds",
			Action: &CreateLiquidityPool{
				Authority:     authorityAddress,
				Token:         tokenAddress,
				TokenAmount:   InitialMintValue + 1,
				CounterAmount: 1_000,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientBalance,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Correct instance of pool creation",
			Action: &CreateLiquidityPool{
				Authority:     authorityAddress,
				Token:         tokenAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
			},
			ExpectedOutputs: &CreateLiquidityPoolResult{
				LiquidityPool: lpAddress,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			ActionID:    lpActionID,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				token, tokenReserve, counterReserve, owner, err := storage.GetLiquidityPoolNoController(ctx, m, lpAddress)
				require.NoError(err)
				require.Equal(tokenAddress, token)
				require.Equal(uint64(30), tokenReserve)
				require.Equal(uint64(1_000), counterReserve)
				require.Equal(addr, owner)
				_, _, _, balance, err := storage.GetTokenInfoNoController(ctx, m, tokenAddress)
				require.NoError(err)
				require.Equal(uint64(InitialMintValue-30), balance)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestAddLiquidity(t *testing.T) {
	req := require.New(t)
	ts = tstate.New(1)

	addr := codectest.NewRandomAddress()
	missingToken := storage.TokenAddress(ids.GenerateTestID())

	parentState := ts.NewView(
		state.Keys{
			string(storage.AuthorityKey(authorityAddress)): state.All,
			string(storage.TokenInfoKey(tokenAddress)):     state.All,
			string(storage.LiquidityPoolKey(lpAddress)):    state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	_, err := (&CreateAuthority{Admin: addr}).Execute(context.Background(), nil, parentState, 0, addr, authorityActionID)
	req.NoError(err)
	_, err = (&CreateToken{Name: []byte(TokenName), Symbol: []byte(TokenSymbol), Authority: authorityAddress}).Execute(context.Background(), nil, parentState, 0, addr, tokenActionID)
	req.NoError(err)
	_, err = (&MintToken{Authority: authorityAddress, Token: tokenAddress, Value: InitialMintValue}).Execute(context.Background(), nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)
	_, err = (&CreateLiquidityPool{Authority: authorityAddress, Token: tokenAddress, TokenAmount: 30, CounterAmount: 1_000}).Execute(context.Background(), nil, parentState, 0, addr, lpActionID)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "Pool must exist",
			Action: &AddLiquidity{
				LiquidityPool: lpAddress,
				Token:         tokenAddress,
				TokenAmount:   10,
				CounterAmount: 100,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputLiquidityPoolDoesNotExist,
			State:           GenerateEmptyState(),
		},
		{
			Name: "Token must match the pool",
			Action: &AddLiquidity{
				LiquidityPool: lpAddress,
				Token:         missingToken,
				TokenAmount:   10,
				CounterAmount: 100,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenMismatch,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Cannot add more than the reserve holds",
			Action: &AddLiquidity{
				LiquidityPool: lpAddress,
				Token:         tokenAddress,
				TokenAmount:   InitialMintValue,
				CounterAmount: 100,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientBalance,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Correct instance of adding liquidity",
			Action: &AddLiquidity{
				LiquidityPool: lpAddress,
				Token:         tokenAddress,
				TokenAmount:   20,
				CounterAmount: 500,
			},
			ExpectedOutputs: &AddLiquidityResult{
				TokenReserve:   50,
				CounterReserve: 1_500,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, tokenReserve, counterReserve, _, err := storage.GetLiquidityPoolNoController(ctx, m, lpAddress)
				require.NoError(err)
				require.Equal(uint64(50), tokenReserve)
				require.Equal(uint64(1_500), counterReserve)
				_, _, _, balance, err := storage.GetTokenInfoNoController(ctx, m, tokenAddress)
				require.NoError(err)
				require.Equal(uint64(InitialMintValue-50), balance)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestAddRemoveLiquidityRoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ts = tstate.New(1)

	addr := codectest.NewRandomAddress()

	parentState := ts.NewView(
		state.Keys{
			string(storage.AuthorityKey(authorityAddress)):             state.All,
			string(storage.TokenInfoKey(tokenAddress)):                 state.All,
			string(storage.LiquidityPoolKey(lpAddress)):                state.All,
			string(storage.TokenAccountBalanceKey(tokenAddress, addr)): state.All,
			string(storage.CounterAccountBalanceKey(addr)):             state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	_, err := (&CreateAuthority{Admin: addr}).Execute(ctx, nil, parentState, 0, addr, authorityActionID)
	req.NoError(err)
	_, err = (&CreateToken{Name: []byte(TokenName), Symbol: []byte(TokenSymbol), Authority: authorityAddress}).Execute(ctx, nil, parentState, 0, addr, tokenActionID)
	req.NoError(err)
	_, err = (&MintToken{Authority: authorityAddress, Token: tokenAddress, Value: InitialMintValue}).Execute(ctx, nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)
	_, err = (&CreateLiquidityPool{Authority: authorityAddress, Token: tokenAddress, TokenAmount: 30, CounterAmount: 1_000}).Execute(ctx, nil, parentState, 0, addr, lpActionID)
	req.NoError(err)

	_, err = (&AddLiquidity{LiquidityPool: lpAddress, Token: tokenAddress, TokenAmount: 20, CounterAmount: 500}).Execute(ctx, nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)
	_, err = (&RemoveLiquidity{Token: tokenAddress, LiquidityPool: lpAddress, TokenAmount: 20, CounterAmount: 500, To: addr}).Execute(ctx, nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)

	// Both pool reserves are back to their pre-add values
	_, tokenReserve, counterReserve, _, err := storage.GetLiquidityPoolNoController(ctx, parentState, lpAddress)
	req.NoError(err)
	req.Equal(uint64(30), tokenReserve)
	req.Equal(uint64(1_000), counterReserve)

	// The token reserve is not: the added amount left it for good and was
	// paid out as coins to the withdrawal recipient
	_, _, _, balance, err := storage.GetTokenInfoNoController(ctx, parentState, tokenAddress)
	req.NoError(err)
	req.Equal(uint64(InitialMintValue-30-20), balance)
	addrBalance, err := storage.GetTokenAccountBalanceNoController(ctx, parentState, tokenAddress, addr)
	req.NoError(err)
	req.Equal(uint64(20), addrBalance)
	counterBalance, err := storage.GetCounterAccountBalanceNoController(ctx, parentState, addr)
	req.NoError(err)
	req.Equal(uint64(500), counterBalance)
}

func TestRemoveLiquidity(t *testing.T) {
	req := require.New(t)
	ts = tstate.New(1)

	addr := codectest.NewRandomAddress()
	stranger := codectest.NewRandomAddress()
	to := codectest.NewRandomAddress()
	missingToken := storage.TokenAddress(ids.GenerateTestID())

	parentState := ts.NewView(
		state.Keys{
			string(storage.AuthorityKey(authorityAddress)):           state.All,
			string(storage.TokenInfoKey(tokenAddress)):               state.All,
			string(storage.LiquidityPoolKey(lpAddress)):              state.All,
			string(storage.TokenAccountBalanceKey(tokenAddress, to)): state.All,
			string(storage.CounterAccountBalanceKey(to)):             state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	_, err := (&CreateAuthority{Admin: addr}).Execute(context.Background(), nil, parentState, 0, addr, authorityActionID)
	req.NoError(err)
	_, err = (&CreateToken{Name: []byte(TokenName), Symbol: []byte(TokenSymbol), Authority: authorityAddress}).Execute(context.Background(), nil, parentState, 0, addr, tokenActionID)
	req.NoError(err)
	_, err = (&MintToken{Authority: authorityAddress, Token: tokenAddress, Value: InitialMintValue}).Execute(context.Background(), nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)
	_, err = (&CreateLiquidityPool{Authority: authorityAddress, Token: tokenAddress, TokenAmount: 30, CounterAmount: 1_000}).Execute(context.Background(), nil, parentState, 0, addr, lpActionID)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "Pool must exist",
			Action: &RemoveLiquidity{
				Token:         tokenAddress,
				LiquidityPool: lpAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
				To:            to,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputLiquidityPoolDoesNotExist,
			State:           GenerateEmptyState(),
		},
		{
			Name: "Only the owner may withdraw",
			Action: &RemoveLiquidity{
				Token:         tokenAddress,
				LiquidityPool: lpAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
				To:            stranger,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputNotPoolOwner,
			State:           parentState,
			Actor:           stranger,
		},
		{
			Name: "Token must match the pool",
			Action: &RemoveLiquidity{
				Token:         missingToken,
				LiquidityPool: lpAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
				To:            to,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenMismatch,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Cannot withdraw more tokens than reserved",
			Action: &RemoveLiquidity{
				Token:         tokenAddress,
				LiquidityPool: lpAddress,
				TokenAmount:   31,
				CounterAmount: 1_000,
				To:            to,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientReserve,
			State:           parentState,
			Actor:           addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, tokenReserve, counterReserve, _, err := storage.GetLiquidityPoolNoController(ctx, m, lpAddress)
				require.NoError(err)
				require.Equal(uint64(30), tokenReserve)
				require.Equal(uint64(1_000), counterReserve)
			},
		},
		{
			Name: "Cannot withdraw more counter asset than reserved",
			Action: &RemoveLiquidity{
				Token:         tokenAddress,
				LiquidityPool: lpAddress,
				TokenAmount:   30,
				CounterAmount: 1_001,
				To:            to,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientReserve,
			State:           parentState,
			Actor:           addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, tokenReserve, counterReserve, _, err := storage.GetLiquidityPoolNoController(ctx, m, lpAddress)
				require.NoError(err)
				require.Equal(uint64(30), tokenReserve)
				require.Equal(uint64(1_000), counterReserve)
			},
		},
		{
			Name: "Correct instance of removing liquidity",
			Action: &RemoveLiquidity{
				Token:         tokenAddress,
				LiquidityPool: lpAddress,
				TokenAmount:   30,
				CounterAmount: 1_000,
				To:            to,
			},
			ExpectedOutputs: &RemoveLiquidityResult{
				TokenAmount:   30,
				CounterAmount: 1_000,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, tokenReserve, counterReserve, _, err := storage.GetLiquidityPoolNoController(ctx, m, lpAddress)
				require.NoError(err)
				require.Equal(uint64(0), tokenReserve)
				require.Equal(uint64(0), counterReserve)
				toTokenBalance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenAddress, to)
				require.NoError(err)
				require.Equal(uint64(30), toTokenBalance)
				toCounterBalance, err := storage.GetCounterAccountBalanceNoController(ctx, m, to)
				require.NoError(err)
				require.Equal(uint64(1_000), toCounterBalance)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
