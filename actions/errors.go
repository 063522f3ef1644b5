// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Authority-related errors
	ErrOutputAuthorityDoesNotExist = errors.New("authority does not exist")
	ErrOutputUnauthorized          = errors.New("actor is not the admin")

	// Token-related errors
	ErrOutputTokenNameEmpty      = errors.New("token name is empty")
	ErrOutputTokenNameTooLarge   = errors.New("token name is too large")
	ErrOutputTokenSymbolEmpty    = errors.New("token symbol is empty")
	ErrOutputTokenSymbolTooLarge = errors.New("token symbol is too large")
	ErrOutputTokenDoesNotExist   = errors.New("token does not exist")
	ErrOutputMintValueZero       = errors.New("mint value is zero")
	ErrOutputTransferValueZero   = errors.New("transfer value is zero")
	ErrOutputSupplyOverflow      = errors.New("total supply overflows")
	ErrOutputBalanceOverflow     = errors.New("balance overflows")
	ErrOutputInsufficientBalance = errors.New("insufficient token balance")

	// LP-related errors
	ErrOutputLiquidityPoolDoesNotExist = errors.New("liquidity pool does not exist")
	ErrOutputNotPoolOwner              = errors.New("actor is not the pool owner")
	ErrOutputTokenMismatch             = errors.New("token does not back this pool")
	ErrOutputReserveOverflow           = errors.New("pool reserve overflows")
	ErrOutputInsufficientReserve       = errors.New("insufficient pool reserve")
)
