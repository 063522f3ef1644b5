// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	CreateAuthorityComputeUnits      = 1
	CreateTokenComputeUnits          = 1
	MintTokenComputeUnits            = 1
	TransferTokenComputeUnits        = 1
	CreateLiquidityPoolComputeUnits  = 1
	AddLiquidityComputeUnits         = 1
	RemoveLiquidityComputeUnits      = 1
	GetTokenInfoComputeUnits         = 1
	GetBalanceComputeUnits           = 1
	GetLiquidityPoolInfoComputeUnits = 1
)
