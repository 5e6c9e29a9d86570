// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"math"

	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	rpctypes "github.com/33cn/coinflip/rpc/types"
	"github.com/33cn/coinflip/types"
	"github.com/google/uuid"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var clog = log.New("module", "rpc.coinflip")

// Jrpc coinflip 的 json rpc 方法
type Jrpc struct {
	cli *channelClient
}

type channelClient struct {
	rpctypes.ChannelClient
}

// Init 注册日志解码以及 jrpc
func Init(name string, s rpctypes.RPCServer) {
	newMsgs := map[int32]func() types.Message{
		ct.TyLogCoinflipCreation:  func() types.Message { return &ct.ReceiptCreation{} },
		ct.TyLogCoinflipJoined:    func() types.Message { return &ct.ReceiptJoined{} },
		ct.TyLogCoinflipRequested: func() types.Message { return &ct.ReceiptRequested{} },
		ct.TyLogCoinflipResolved:  func() types.Message { return &ct.ReceiptResolved{} },
		ct.TyLogCoinflipWithdrawn: func() types.Message { return &ct.ReceiptWithdrawn{} },
	}
	for ty, newMsg := range newMsgs {
		rpctypes.RegisterLog(name, ty, ct.LogName(ty), newMsg)
	}
	cli := &channelClient{}
	cli.Init(JRPCName, s, &Jrpc{cli: cli})
}

// 没有钱包签名, 用 uuid 保证每笔交易的哈希不同
func newNonce() int64 {
	id := uuid.New()
	return nonceFromBytes(id[:8])
}

// nonceFromBytes 取大端整数并清掉符号位
func nonceFromBytes(b []byte) int64 {
	var n int64
	for _, c := range b {
		n = n<<8 | int64(c)
	}
	return n & math.MaxInt64
}

func (c *channelClient) sendTx(tx *types.Transaction) (*rpctypes.TxResult, error) {
	result, err := c.SendTx(tx)
	if err != nil {
		clog.Error("sendTx", "from", tx.From, "err", err)
		return nil, err
	}
	return rpctypes.DecodeTxResult(ct.CoinflipX, result), nil
}

func (c *channelClient) getGame(id int64) (*ct.Game, error) {
	msg, err := c.Query(ct.CoinflipX, ct.FuncNameGetGame, &ct.ReqGame{GameId: id})
	if err != nil {
		return nil, err
	}
	game, ok := msg.(*ct.Game)
	if !ok {
		return nil, types.ErrTypeAsset
	}
	return game, nil
}

func (c *channelClient) create(req *CreateGameReq) (*rpctypes.TxResult, error) {
	bet, err := types.ParseAmount(req.BetAmount)
	if err != nil {
		return nil, errors.Wrap(ct.ErrInvalidBetAmount, err.Error())
	}
	fee, err := types.ParseAmount(req.FlatFee)
	if err != nil {
		return nil, errors.Wrap(ct.ErrInvalidFlatFee, err.Error())
	}
	return c.sendTx(ct.CreateRawCreateTx(req.From, bet, fee, newNonce()))
}

func (c *channelClient) join(req *JoinGameReq) (*rpctypes.TxResult, error) {
	choice, err := ct.ParseChoice(req.Choice)
	if err != nil {
		return nil, err
	}
	var value int64
	if req.Value == "" {
		game, err := c.getGame(req.GameID)
		if err != nil {
			return nil, err
		}
		value = game.BetAmount
	} else {
		value, err = types.ParseAmount(req.Value)
		if err != nil {
			return nil, errors.Wrap(ct.ErrInvalidValue, err.Error())
		}
	}
	return c.sendTx(ct.CreateRawJoinTx(req.From, req.GameID, choice, value, newNonce()))
}
