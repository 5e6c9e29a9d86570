// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
)

// 交易哈希 -> 执行结果, 同时用于重放检查
type txindexPlugin struct {
	pluginBase
}

func (p *txindexPlugin) ExecLocal(executor *Executor, tx *types.Transaction, result *types.TxResult) ([]*types.KeyValue, error) {
	return []*types.KeyValue{{Key: CalcTxKey(result.Hash), Value: types.Encode(result)}}, nil
}

// CalcTxKey local key of tx result
func CalcTxKey(hash []byte) []byte {
	return []byte(types.LocalPrefix + "-tx-" + common.ToHex(hash))
}

// GetTxResult 查询已执行交易的结果
func GetTxResult(db dbm.KV, hash []byte) (*types.TxResult, error) {
	value, err := db.Get(CalcTxKey(hash))
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
