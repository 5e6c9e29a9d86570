// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strconv"

	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// Query_GetGame 查询一局游戏
func (c *Coinflip) Query_GetGame(in *ct.ReqGame) (types.Message, error) {
	return readGame(c.GetStateDB(), in.GameId)
}

// Query_GetRequest 根据 requestId 查询对应的游戏编号
func (c *Coinflip) Query_GetRequest(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, types.ErrInvalidParam
	}
	return readRequest(c.GetStateDB(), in.Data)
}

// Query_GetFees 手续费账本余额
func (c *Coinflip) Query_GetFees(in *types.ReqNil) (types.Message, error) {
	fees, err := readInt64(c.GetStateDB(), feesKey)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: fees}, nil
}

// Query_ListGames 按状态列出游戏, Addr 非空时只列出该地址参与的游戏
func (c *Coinflip) Query_ListGames(in *ct.ReqListGames) (types.Message, error) {
	if in.Status < ct.GameStatusCreated || in.Status > ct.GameStatusResolved {
		return nil, types.ErrInvalidParam
	}
	count := in.Count
	if count <= 0 {
		count = types.DefaultQueryCount
	}
	if count > types.MaxQueryCount {
		count = types.MaxQueryCount
	}
	direction := in.Direction
	if direction != types.ListASC {
		direction = types.ListDESC
	}
	var prefix, key []byte
	if in.Addr == "" {
		prefix = calcStatusIndexPrefix(in.Status)
	} else {
		prefix = calcAddrIndexPrefix(in.Status, in.Addr)
	}
	if in.PrimaryKey != "" {
		id, err := strconv.ParseInt(in.PrimaryKey, 10, 64)
		if err != nil {
			return nil, types.ErrInvalidParam
		}
		if in.Addr == "" {
			key = calcStatusIndexKey(in.Status, id)
		} else {
			key = calcAddrIndexKey(in.Status, in.Addr, id)
		}
	}
	values, err := c.GetLocalDB().List(prefix, key, count, direction)
	if err != nil {
		return nil, err
	}
	reply := &ct.ReplyGameList{}
	for _, value := range values {
		var rec ct.GameRecord
		if err := types.Decode(value, &rec); err != nil {
			return nil, err
		}
		game, err := readGame(c.GetStateDB(), rec.GameId)
		if err != nil {
			clog.Error("Query_ListGames", "gameId", rec.GameId, "err", err)
			return nil, err
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}
