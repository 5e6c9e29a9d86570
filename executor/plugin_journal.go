// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
)

// 事件流水: 每条回执日志一条记录, 序号从1开始连续递增
type journalPlugin struct {
	pluginBase
}

var (
	journalSeqKey    = []byte(types.LocalPrefix + "-journalseq")
	journalKeyPrefix = types.LocalPrefix + "-journal-"
)

func calcJournalKey(seq int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", journalKeyPrefix, seq))
}

func loadJournalSeq(db dbm.KV) (int64, error) {
	value, err := db.Get(journalSeqKey)
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var seq types.Int64
	if err := types.Decode(value, &seq); err != nil {
		return 0, err
	}
	return seq.Data, nil
}

func (p *journalPlugin) ExecLocal(executor *Executor, tx *types.Transaction, result *types.TxResult) ([]*types.KeyValue, error) {
	if len(result.Logs) == 0 {
		return nil, nil
	}
	seq, err := loadJournalSeq(executor.localDB)
	if err != nil {
		return nil, err
	}
	var kvs []*types.KeyValue
	for _, l := range result.Logs {
		seq++
		record := &types.EventRecord{
			Seq:    seq,
			TxHash: result.Hash,
			Execer: tx.Execer,
			Ty:     l.Ty,
			Log:    l.Log,
			Height: result.Seq,
		}
		kvs = append(kvs, &types.KeyValue{Key: calcJournalKey(seq), Value: types.Encode(record)})
	}
	kvs = append(kvs, &types.KeyValue{Key: journalSeqKey, Value: types.Encode(&types.Int64{Data: seq})})
	return kvs, nil
}

// ListEvents 从 startSeq 开始按顺序列出事件, execer 非空时只返回该执行器的事件
func ListEvents(db dbm.KVDB, req *types.ReqListEvents) (*types.EventRecords, error) {
	count := req.Count
	if count <= 0 {
		count = types.DefaultQueryCount
	}
	if count > types.MaxQueryCount {
		count = types.MaxQueryCount
	}
	var key []byte
	if req.StartSeq > 1 {
		key = calcJournalKey(req.StartSeq - 1)
	}
	values, err := db.List([]byte(journalKeyPrefix), key, count, types.ListASC)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	reply := &types.EventRecords{}
	for _, value := range values {
		var record types.EventRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		if req.Execer != "" && record.Execer != req.Execer {
			continue
		}
		reply.Records = append(reply.Records, &record)
	}
	return reply, nil
}
