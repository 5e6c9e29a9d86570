// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// 本地索引: 按状态, 按状态+地址, value 为 GameRecord, nil 表示删除

func calcStatusIndexKey(status int32, id int64) []byte {
	return []byte(fmt.Sprintf("%s-%s-status:%d:%020d", types.LocalPrefix, ct.CoinflipX, status, id))
}

func calcStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("%s-%s-status:%d:", types.LocalPrefix, ct.CoinflipX, status))
}

func calcAddrIndexKey(status int32, addr string, id int64) []byte {
	return []byte(fmt.Sprintf("%s-%s-addr:%d:%s:%020d", types.LocalPrefix, ct.CoinflipX, status, addr, id))
}

func calcAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("%s-%s-addr:%d:%s:", types.LocalPrefix, ct.CoinflipX, status, addr))
}

func addIndex(status int32, id int64, addrs ...string) (kvs []*types.KeyValue) {
	value := types.Encode(&ct.GameRecord{GameId: id})
	kvs = append(kvs, &types.KeyValue{Key: calcStatusIndexKey(status, id), Value: value})
	for _, addr := range addrs {
		kvs = append(kvs, &types.KeyValue{Key: calcAddrIndexKey(status, addr, id), Value: value})
	}
	return kvs
}

func delIndex(status int32, id int64, addrs ...string) (kvs []*types.KeyValue) {
	kvs = append(kvs, &types.KeyValue{Key: calcStatusIndexKey(status, id)})
	for _, addr := range addrs {
		kvs = append(kvs, &types.KeyValue{Key: calcAddrIndexKey(status, addr, id)})
	}
	return kvs
}

func createdIndex(l *ct.ReceiptCreation) []*types.KeyValue {
	return addIndex(ct.GameStatusCreated, l.GameId, l.Creator)
}

func joinedIndex(l *ct.ReceiptJoined) []*types.KeyValue {
	kvs := delIndex(ct.GameStatusCreated, l.GameId, l.Creator)
	return append(kvs, addIndex(ct.GameStatusPending, l.GameId, participants(l.Creator, l.Joiner)...)...)
}

func resolvedIndex(l *ct.ReceiptResolved) []*types.KeyValue {
	addrs := participants(l.Creator, l.Joiner)
	kvs := delIndex(ct.GameStatusPending, l.GameId, addrs...)
	return append(kvs, addIndex(ct.GameStatusResolved, l.GameId, addrs...)...)
}

// 自己和自己对赌时只记一次
func participants(creator, joiner string) []string {
	if creator == joiner {
		return []string{creator}
	}
	return []string{creator, joiner}
}
