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

// An authority is the capability record gating privileged calls: a single
// admin principal, bound once at creation and immutable afterwards.
// Authority addresses are derived from the id of the creating action, so
// every creation yields a distinct record.

func AuthorityAddress(actionID ids.ID) codec.Address {
	return codec.CreateAddress(consts.AUTHORITYID, actionID)
}

func AuthorityKey(authorityAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+lconsts.Uint16Len)
	k[0] = authorityPrefix
	copy(k[1:1+codec.AddressLen], authorityAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], AuthorityChunks)
	return k
}

func SetAuthority(
	ctx context.Context,
	mu state.Mutable,
	authorityAddress codec.Address,
	admin codec.Address,
) error {
	k := AuthorityKey(authorityAddress)
	v := make([]byte, codec.AddressLen)
	copy(v, admin[:])
	return mu.Insert(ctx, k, v)
}

func GetAuthority(
	ctx context.Context,
	f ReadState,
	authorityAddress codec.Address,
) (codec.Address, error) {
	k := AuthorityKey(authorityAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return codec.EmptyAddress, errs[0]
	}
	return codec.Address(values[0]), nil
}

func GetAuthorityNoController(
	ctx context.Context,
	mu state.Immutable,
	authorityAddress codec.Address,
) (codec.Address, error) {
	k := AuthorityKey(authorityAddress)
	v, err := mu.GetValue(ctx, k)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.Address(v), nil
}
