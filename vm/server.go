// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/examples/poolvm/consts"
	"github.com/ava-labs/hypersdk/examples/poolvm/storage"
	"github.com/ava-labs/hypersdk/genesis"
)

const JSONRPCEndpoint = "/poolapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type GetAuthorityArgs struct {
	AuthorityAddress codec.Address `json:"authorityAddress"`
}

type GetAuthorityReply struct {
	Admin codec.Address `json:"admin"`
}

func (j *JSONRPCServer) GetAuthority(req *http.Request, args *GetAuthorityArgs, reply *GetAuthorityReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetAuthority")
	defer span.End()

	admin, err := storage.GetAuthority(ctx, j.vm.ReadState, args.AuthorityAddress)
	if err != nil {
		return err
	}
	reply.Admin = admin
	return nil
}

type GetTokenInfoArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetTokenInfoReply struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply uint64 `json:"totalSupply"`
	Balance     uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetTokenInfo(req *http.Request, args *GetTokenInfoArgs, reply *GetTokenInfoReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenInfo")
	defer span.End()

	name, symbol, totalSupply, balance, err := storage.GetTokenInfo(ctx, j.vm.ReadState, args.TokenAddress)
	if err != nil {
		return err
	}
	reply.Name = string(name)
	reply.Symbol = string(symbol)
	reply.TotalSupply = totalSupply
	reply.Balance = balance
	return nil
}

type GetBalanceArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
	Account      codec.Address `json:"account"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetTokenAccountBalance(ctx, j.vm.ReadState, args.TokenAddress, args.Account)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetCounterBalanceArgs struct {
	Account codec.Address `json:"account"`
}

type GetCounterBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetCounterBalance(req *http.Request, args *GetCounterBalanceArgs, reply *GetCounterBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetCounterBalance")
	defer span.End()

	balance, err := storage.GetCounterAccountBalance(ctx, j.vm.ReadState, args.Account)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetLiquidityPoolArgs struct {
	LiquidityPoolAddress codec.Address `json:"liquidityPoolAddress"`
}

type GetLiquidityPoolReply struct {
	Token          codec.Address `json:"token"`
	TokenReserve   uint64        `json:"tokenReserve"`
	CounterReserve uint64        `json:"counterReserve"`
	Owner          codec.Address `json:"owner"`
}

func (j *JSONRPCServer) GetLiquidityPool(req *http.Request, args *GetLiquidityPoolArgs, reply *GetLiquidityPoolReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetLiquidityPool")
	defer span.End()

	token, tokenReserve, counterReserve, owner, err := storage.GetLiquidityPool(ctx, j.vm.ReadState, args.LiquidityPoolAddress)
	if err != nil {
		return err
	}
	reply.Token = token
	reply.TokenReserve = tokenReserve
	reply.CounterReserve = counterReserve
	reply.Owner = owner
	return nil
}
