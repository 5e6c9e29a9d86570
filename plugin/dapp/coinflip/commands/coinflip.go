// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coinflip 命令行
package commands

import (
	cfrpc "github.com/33cn/coinflip/plugin/dapp/coinflip/rpc"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/rpc/jsonclient"
	rpctypes "github.com/33cn/coinflip/rpc/types"
	"github.com/33cn/coinflip/types"
	"github.com/spf13/cobra"
)

// CoinflipCmd 猜硬币游戏
func CoinflipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coinflip",
		Short: "Coinflip wager game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateGameCmd(),
		JoinGameCmd(),
		WithdrawFeesCmd(),
		GetGameCmd(),
		ListGamesCmd(),
		GetFeesCmd(),
		GetRequestCmd(),
		ListEventsCmd(),
	)
	return cmd
}

func method(name string) string {
	return cfrpc.JRPCName + "." + name
}

// CreateGameCmd 创建游戏
func CreateGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game, escrow bet and flat fee",
		Run:   createGame,
	}
	cmd.Flags().StringP("from", "f", "", "creator address")
	cmd.Flags().StringP("bet", "b", "", "bet amount, e.g. 1.5")
	cmd.Flags().StringP("fee", "e", "", "flat fee paid to the house")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("bet")
	_ = cmd.MarkFlagRequired("fee")
	return cmd
}

func createGame(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	from, _ := cmd.Flags().GetString("from")
	bet, _ := cmd.Flags().GetString("bet")
	fee, _ := cmd.Flags().GetString("fee")
	params := &cfrpc.CreateGameReq{From: from, BetAmount: bet, FlatFee: fee}
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("CreateGame"), params, &res)
	ctx.Run()
}

// JoinGameCmd 加入游戏
func JoinGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open game and pick heads or tails",
		Run:   joinGame,
	}
	cmd.Flags().StringP("from", "f", "", "joiner address")
	cmd.Flags().Int64P("gameID", "g", 0, "game id")
	cmd.Flags().StringP("choice", "c", "", "heads or tails")
	cmd.Flags().StringP("value", "v", "", "attached value, defaults to the game bet")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("gameID")
	_ = cmd.MarkFlagRequired("choice")
	return cmd
}

func joinGame(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	from, _ := cmd.Flags().GetString("from")
	gameID, _ := cmd.Flags().GetInt64("gameID")
	choice, _ := cmd.Flags().GetString("choice")
	value, _ := cmd.Flags().GetString("value")
	params := &cfrpc.JoinGameReq{From: from, GameID: gameID, Choice: choice, Value: value}
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("JoinGame"), params, &res)
	ctx.Run()
}

// WithdrawFeesCmd 管理员提取手续费
func WithdrawFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw accumulated fees to the administrator",
		Run:   withdrawFees,
	}
	cmd.Flags().StringP("from", "f", "", "administrator address")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func withdrawFees(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	from, _ := cmd.Flags().GetString("from")
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("WithdrawFees"), &cfrpc.WithdrawFeesReq{From: from}, &res)
	ctx.Run()
}

// GetGameCmd 查询游戏
func GetGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a game",
		Run:   getGame,
	}
	cmd.Flags().Int64P("gameID", "g", 0, "game id")
	_ = cmd.MarkFlagRequired("gameID")
	return cmd
}

func getGame(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetInt64("gameID")
	var res cfrpc.GameResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetGame"), &ct.ReqGame{GameId: gameID}, &res)
	ctx.Run()
}

// ListGamesCmd 按状态列出游戏
func ListGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status, optionally for one address",
		Run:   listGames,
	}
	cmd.Flags().Int32P("status", "s", ct.GameStatusCreated, "1: created, 2: pending, 3: resolved")
	cmd.Flags().StringP("addr", "a", "", "participant address")
	cmd.Flags().StringP("primary", "p", "", "start after this game id")
	cmd.Flags().Int32P("count", "c", types.DefaultQueryCount, "max games")
	cmd.Flags().Int32P("direction", "d", types.ListDESC, "0: desc, 1: asc")
	return cmd
}

func listGames(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	primary, _ := cmd.Flags().GetString("primary")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	params := &ct.ReqListGames{
		Status:     status,
		Addr:       addr,
		PrimaryKey: primary,
		Count:      count,
		Direction:  direction,
	}
	var res []*cfrpc.GameResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("ListGames"), params, &res)
	ctx.Run()
}

// GetFeesCmd 手续费账本
func GetFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fees",
		Short: "Show accumulated fees",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var res cfrpc.FeesResult
			ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetFees"), &types.ReqNil{}, &res)
			ctx.Run()
		},
	}
}

// GetRequestCmd 随机数请求对应的游戏, --oracle 查询随机数服务中的请求和证明
func GetRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Show the game bound to a randomness request",
		Run:   getRequest,
	}
	cmd.Flags().StringP("id", "i", "", "request id")
	cmd.Flags().BoolP("oracle", "o", false, "show the oracle side request")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func getRequest(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	oracle, _ := cmd.Flags().GetBool("oracle")
	params := &types.ReqString{Data: id}
	if oracle {
		var res types.OracleRequest
		ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetOracleRequest"), params, &res)
		ctx.Run()
		return
	}
	var res ct.RequestRecord
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetRequest"), params, &res)
	ctx.Run()
}

// ListEventsCmd 执行器日志流水
func ListEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List coinflip events from a sequence",
		Run:   listEvents,
	}
	cmd.Flags().Int64P("start", "s", 0, "start seq")
	cmd.Flags().Int32P("count", "c", types.DefaultQueryCount, "max events")
	cmd.Flags().BoolP("all", "a", false, "include events of all executors")
	return cmd
}

func listEvents(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	start, _ := cmd.Flags().GetInt64("start")
	count, _ := cmd.Flags().GetInt32("count")
	all, _ := cmd.Flags().GetBool("all")
	params := &types.ReqListEvents{StartSeq: start, Count: count, Execer: ct.CoinflipX}
	if all {
		params.Execer = ""
	}
	var res []*rpctypes.EventResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("ListEvents"), params, &res)
	ctx.Run()
}
