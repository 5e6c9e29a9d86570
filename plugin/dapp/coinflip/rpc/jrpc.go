// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	rpctypes "github.com/33cn/coinflip/rpc/types"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// 返回给客户端的错误只保留根错误, 例如 ErrGameNotOpen

// CreateGame 创建游戏, 附带 betAmount+flatFee
func (c *Jrpc) CreateGame(parm *CreateGameReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.create(parm)
	if err != nil {
		return errors.Cause(err)
	}
	*result = reply
	return nil
}

// JoinGame 加入游戏并请求随机数
func (c *Jrpc) JoinGame(parm *JoinGameReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.join(parm)
	if err != nil {
		return errors.Cause(err)
	}
	*result = reply
	return nil
}

// WithdrawFees 管理员提取全部手续费
func (c *Jrpc) WithdrawFees(parm *WithdrawFeesReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.sendTx(ct.CreateRawWithdrawTx(parm.From, newNonce()))
	if err != nil {
		return errors.Cause(err)
	}
	*result = reply
	return nil
}

// GetGame 查询游戏
func (c *Jrpc) GetGame(parm *ct.ReqGame, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	game, err := c.cli.getGame(parm.GameId)
	if err != nil {
		return errors.Cause(err)
	}
	*result = toGameResult(game)
	return nil
}

// ListGames 按状态或地址列出游戏
func (c *Jrpc) ListGames(parm *ct.ReqListGames, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	msg, err := c.cli.Query(ct.CoinflipX, ct.FuncNameListGames, parm)
	if err != nil {
		return errors.Cause(err)
	}
	list, ok := msg.(*ct.ReplyGameList)
	if !ok {
		return types.ErrTypeAsset
	}
	games := make([]*GameResult, 0, len(list.Games))
	for _, g := range list.Games {
		games = append(games, toGameResult(g))
	}
	*result = games
	return nil
}

// GetFees 手续费账本余额
func (c *Jrpc) GetFees(parm *types.ReqNil, result *interface{}) error {
	msg, err := c.cli.Query(ct.CoinflipX, ct.FuncNameGetFees, &types.ReqNil{})
	if err != nil {
		return errors.Cause(err)
	}
	fees, ok := msg.(*types.Int64)
	if !ok {
		return types.ErrTypeAsset
	}
	*result = &FeesResult{Fees: types.FormatAmountExact(fees.Data), Amount: fees.Data}
	return nil
}

// GetRequest requestId 对应的游戏
func (c *Jrpc) GetRequest(parm *types.ReqString, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	msg, err := c.cli.Query(ct.CoinflipX, ct.FuncNameGetRequest, parm)
	if err != nil {
		return errors.Cause(err)
	}
	*result = msg
	return nil
}

// ListEvents 执行器日志流水, execer 为空时列出全部
func (c *Jrpc) ListEvents(parm *types.ReqListEvents, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	records, err := c.cli.ListEvents(parm)
	if err != nil {
		return errors.Cause(err)
	}
	*result = rpctypes.DecodeEvents(records)
	return nil
}

// GetBalance 账户余额, execer 为空时查询 coins 账户
func (c *Jrpc) GetBalance(parm *types.ReqBalance, result *interface{}) error {
	if parm == nil || len(parm.Addresses) == 0 {
		return types.ErrInvalidParam
	}
	accs, err := c.cli.GetBalance(parm)
	if err != nil {
		return errors.Cause(err)
	}
	res := make([]*AccountResult, 0, len(accs.Acc))
	for _, acc := range accs.Acc {
		res = append(res, toAccountResult(acc))
	}
	*result = res
	return nil
}

// GetOracleRequest 随机数服务中的请求以及证明
func (c *Jrpc) GetOracleRequest(parm *types.ReqString, result *interface{}) error {
	if parm == nil || parm.Data == "" {
		return types.ErrInvalidParam
	}
	req, err := c.cli.GetOracleRequest(parm.Data)
	if err != nil {
		return errors.Cause(err)
	}
	*result = req
	return nil
}
