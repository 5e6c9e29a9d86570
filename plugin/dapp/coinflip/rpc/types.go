// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// JRPCName jrpc 服务名, 方法形如 Coinflip.CreateGame
const JRPCName = "Coinflip"

// 金额都是十进制的 coins 字符串, 例如 "1.5"

// CreateGameReq 创建游戏
type CreateGameReq struct {
	From      string `json:"from"`
	BetAmount string `json:"betAmount"`
	FlatFee   string `json:"flatFee"`
}

// JoinGameReq 加入游戏, Value 为空时附带游戏的下注金额
type JoinGameReq struct {
	From   string `json:"from"`
	GameID int64  `json:"gameId"`
	Choice string `json:"choice"`
	Value  string `json:"value,omitempty"`
}

// WithdrawFeesReq 管理员提取手续费
type WithdrawFeesReq struct {
	From string `json:"from"`
}

// GameResult 游戏的 json 表示
type GameResult struct {
	ID        int64  `json:"id"`
	Creator   string `json:"creator"`
	Joiner    string `json:"joiner,omitempty"`
	BetAmount string `json:"betAmount"`
	FlatFee   string `json:"flatFee"`
	Choice    string `json:"choice,omitempty"`
	Status    string `json:"status"`
	RequestID string `json:"requestId,omitempty"`
	Winner    string `json:"winner,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
}

// FeesResult 手续费账本
type FeesResult struct {
	Fees   string `json:"fees"`
	Amount int64  `json:"amount"`
}

// AccountResult 账户余额
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

func toGameResult(g *ct.Game) *GameResult {
	res := &GameResult{
		ID:        g.Id,
		Creator:   g.Creator,
		Joiner:    g.Joiner,
		BetAmount: types.FormatAmountExact(g.BetAmount),
		FlatFee:   types.FormatAmountExact(g.FlatFee),
		Status:    ct.StatusName(g.Status),
		RequestID: g.RequestId,
		Winner:    g.Winner,
	}
	if g.Status != ct.GameStatusCreated {
		res.Choice = ct.ChoiceName(g.Choice)
	}
	if g.Status == ct.GameStatusResolved {
		res.Outcome = ct.ChoiceName(g.Outcome)
	}
	return res
}

func toAccountResult(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:    acc.GetAddr(),
		Balance: types.FormatAmountExact(acc.GetBalance()),
		Frozen:  types.FormatAmountExact(acc.GetFrozen()),
	}
}
