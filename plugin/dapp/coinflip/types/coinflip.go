// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Game 一局游戏
type Game struct {
	Id        int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id"`
	Creator   string `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	Joiner    string `protobuf:"bytes,3,opt,name=joiner,proto3" json:"joiner,omitempty"`
	BetAmount int64  `protobuf:"varint,4,opt,name=betAmount,proto3" json:"betAmount,omitempty"`
	FlatFee   int64  `protobuf:"varint,5,opt,name=flatFee,proto3" json:"flatFee,omitempty"`
	Choice    int32  `protobuf:"varint,6,opt,name=choice,proto3" json:"choice"`
	Status    int32  `protobuf:"varint,7,opt,name=status,proto3" json:"status,omitempty"`
	RequestId string `protobuf:"bytes,8,opt,name=requestId,proto3" json:"requestId,omitempty"`
	Winner    string `protobuf:"bytes,9,opt,name=winner,proto3" json:"winner,omitempty"`
	Outcome   int32  `protobuf:"varint,10,opt,name=outcome,proto3" json:"outcome"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

// GetStatus status
func (m *Game) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// CoinflipAction 交易payload, Ty 决定哪个字段有效
type CoinflipAction struct {
	Ty       int32             `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Create   *CoinflipCreate   `protobuf:"bytes,2,opt,name=create,proto3" json:"create,omitempty"`
	Join     *CoinflipJoin     `protobuf:"bytes,3,opt,name=join,proto3" json:"join,omitempty"`
	Fulfill  *CoinflipFulfill  `protobuf:"bytes,4,opt,name=fulfill,proto3" json:"fulfill,omitempty"`
	Withdraw *CoinflipWithdraw `protobuf:"bytes,5,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
}

func (m *CoinflipAction) Reset()         { *m = CoinflipAction{} }
func (m *CoinflipAction) String() string { return proto.CompactTextString(m) }
func (*CoinflipAction) ProtoMessage()    {}

// GetCreate get create
func (m *CoinflipAction) GetCreate() *CoinflipCreate {
	if m != nil {
		return m.Create
	}
	return nil
}

// GetJoin get join
func (m *CoinflipAction) GetJoin() *CoinflipJoin {
	if m != nil {
		return m.Join
	}
	return nil
}

// GetFulfill get fulfill
func (m *CoinflipAction) GetFulfill() *CoinflipFulfill {
	if m != nil {
		return m.Fulfill
	}
	return nil
}

// GetWithdraw get withdraw
func (m *CoinflipAction) GetWithdraw() *CoinflipWithdraw {
	if m != nil {
		return m.Withdraw
	}
	return nil
}

// CoinflipCreate 创建, 交易金额必须等于 BetAmount+FlatFee
type CoinflipCreate struct {
	BetAmount int64 `protobuf:"varint,1,opt,name=betAmount,proto3" json:"betAmount,omitempty"`
	FlatFee   int64 `protobuf:"varint,2,opt,name=flatFee,proto3" json:"flatFee,omitempty"`
}

func (m *CoinflipCreate) Reset()         { *m = CoinflipCreate{} }
func (m *CoinflipCreate) String() string { return proto.CompactTextString(m) }
func (*CoinflipCreate) ProtoMessage()    {}

// CoinflipJoin 加入, 交易金额必须等于 BetAmount
type CoinflipJoin struct {
	GameId int64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
	Choice int32 `protobuf:"varint,2,opt,name=choice,proto3" json:"choice"`
}

func (m *CoinflipJoin) Reset()         { *m = CoinflipJoin{} }
func (m *CoinflipJoin) String() string { return proto.CompactTextString(m) }
func (*CoinflipJoin) ProtoMessage()    {}

// CoinflipFulfill 随机数服务的回调
type CoinflipFulfill struct {
	RequestId   string   `protobuf:"bytes,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
	RandomWords [][]byte `protobuf:"bytes,2,rep,name=randomWords,proto3" json:"randomWords,omitempty"`
}

func (m *CoinflipFulfill) Reset()         { *m = CoinflipFulfill{} }
func (m *CoinflipFulfill) String() string { return proto.CompactTextString(m) }
func (*CoinflipFulfill) ProtoMessage()    {}

// CoinflipWithdraw 提取手续费
type CoinflipWithdraw struct {
}

func (m *CoinflipWithdraw) Reset()         { *m = CoinflipWithdraw{} }
func (m *CoinflipWithdraw) String() string { return proto.CompactTextString(m) }
func (*CoinflipWithdraw) ProtoMessage()    {}

// RequestRecord requestId -> gameId
type RequestRecord struct {
	RequestId string `protobuf:"bytes,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
	GameId    int64  `protobuf:"varint,2,opt,name=gameId,proto3" json:"gameId"`
}

func (m *RequestRecord) Reset()         { *m = RequestRecord{} }
func (m *RequestRecord) String() string { return proto.CompactTextString(m) }
func (*RequestRecord) ProtoMessage()    {}

// GameRecord 本地索引中保存的记录
type GameRecord struct {
	GameId int64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
}

func (m *GameRecord) Reset()         { *m = GameRecord{} }
func (m *GameRecord) String() string { return proto.CompactTextString(m) }
func (*GameRecord) ProtoMessage()    {}

// ReceiptCreation creation{id, creator, betAmount, flatFee}
type ReceiptCreation struct {
	GameId    int64  `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
	Creator   string `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	BetAmount int64  `protobuf:"varint,3,opt,name=betAmount,proto3" json:"betAmount,omitempty"`
	FlatFee   int64  `protobuf:"varint,4,opt,name=flatFee,proto3" json:"flatFee,omitempty"`
}

func (m *ReceiptCreation) Reset()         { *m = ReceiptCreation{} }
func (m *ReceiptCreation) String() string { return proto.CompactTextString(m) }
func (*ReceiptCreation) ProtoMessage()    {}

// ReceiptJoined joined{id, joiner, choice}, Creator 用于更新地址索引
type ReceiptJoined struct {
	GameId  int64  `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
	Joiner  string `protobuf:"bytes,2,opt,name=joiner,proto3" json:"joiner,omitempty"`
	Choice  int32  `protobuf:"varint,3,opt,name=choice,proto3" json:"choice"`
	Creator string `protobuf:"bytes,4,opt,name=creator,proto3" json:"creator,omitempty"`
}

func (m *ReceiptJoined) Reset()         { *m = ReceiptJoined{} }
func (m *ReceiptJoined) String() string { return proto.CompactTextString(m) }
func (*ReceiptJoined) ProtoMessage()    {}

// ReceiptRequested requested{id, requestId}
type ReceiptRequested struct {
	GameId    int64  `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
	RequestId string `protobuf:"bytes,2,opt,name=requestId,proto3" json:"requestId,omitempty"`
}

func (m *ReceiptRequested) Reset()         { *m = ReceiptRequested{} }
func (m *ReceiptRequested) String() string { return proto.CompactTextString(m) }
func (*ReceiptRequested) ProtoMessage()    {}

// ReceiptResolved resolved{id, winner, outcome}
type ReceiptResolved struct {
	GameId  int64  `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
	Winner  string `protobuf:"bytes,2,opt,name=winner,proto3" json:"winner,omitempty"`
	Outcome int32  `protobuf:"varint,3,opt,name=outcome,proto3" json:"outcome"`
	Payout  int64  `protobuf:"varint,4,opt,name=payout,proto3" json:"payout,omitempty"`
	Creator string `protobuf:"bytes,5,opt,name=creator,proto3" json:"creator,omitempty"`
	Joiner  string `protobuf:"bytes,6,opt,name=joiner,proto3" json:"joiner,omitempty"`
}

func (m *ReceiptResolved) Reset()         { *m = ReceiptResolved{} }
func (m *ReceiptResolved) String() string { return proto.CompactTextString(m) }
func (*ReceiptResolved) ProtoMessage()    {}

// ReceiptWithdrawn withdrawn{administrator, amount}
type ReceiptWithdrawn struct {
	Administrator string `protobuf:"bytes,1,opt,name=administrator,proto3" json:"administrator,omitempty"`
	Amount        int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReceiptWithdrawn) Reset()         { *m = ReceiptWithdrawn{} }
func (m *ReceiptWithdrawn) String() string { return proto.CompactTextString(m) }
func (*ReceiptWithdrawn) ProtoMessage()    {}

// ReqGame 查询一局游戏
type ReqGame struct {
	GameId int64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId"`
}

func (m *ReqGame) Reset()         { *m = ReqGame{} }
func (m *ReqGame) String() string { return proto.CompactTextString(m) }
func (*ReqGame) ProtoMessage()    {}

// ReqListGames 按状态(以及地址)列出游戏, PrimaryKey 为上一页最后一个 gameId, 为空时从头开始
type ReqListGames struct {
	Status     int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr       string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	PrimaryKey string `protobuf:"bytes,3,opt,name=primaryKey,proto3" json:"primaryKey,omitempty"`
	Count      int32  `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
	Direction  int32  `protobuf:"varint,5,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *ReqListGames) Reset()         { *m = ReqListGames{} }
func (m *ReqListGames) String() string { return proto.CompactTextString(m) }
func (*ReqListGames) ProtoMessage()    {}

// ReplyGameList games
type ReplyGameList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyGameList) Reset()         { *m = ReplyGameList{} }
func (m *ReplyGameList) String() string { return proto.CompactTextString(m) }
func (*ReplyGameList) ProtoMessage()    {}
