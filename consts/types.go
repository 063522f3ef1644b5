// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// TypeIDs for actions
const (
	// Ledger-related
	CreateAuthorityID uint8 = iota
	CreateTokenID
	MintTokenID
	TransferTokenID
	// LP-related
	CreateLiquidityPoolID
	AddLiquidityID
	RemoveLiquidityID

	// Read-only actions
	GetTokenInfoID
	GetBalanceID
	GetLiquidityPoolInfoID
)

// TypeIDs for auth
const (
	// Required
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to PoolVM address generation
	AUTHORITYID
	TOKENID
	LIQUIDITYPOOLID
)
