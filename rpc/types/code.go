// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/33cn/coinflip/types"
)

// ReceiptLogResult 解码后的日志
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log"`
	RawLog string          `json:"rawLog"`
}

// TxResult 交易执行结果
type TxResult struct {
	Hash string              `json:"hash"`
	Seq  int64               `json:"seq"`
	Ty   int32               `json:"ty"`
	Logs []*ReceiptLogResult `json:"logs"`
}

// EventResult 解码后的事件
type EventResult struct {
	Seq    int64             `json:"seq"`
	Height int64             `json:"height"`
	TxHash string            `json:"txHash"`
	Execer string            `json:"execer"`
	Log    *ReceiptLogResult `json:"log"`
}

type logType struct {
	name   string
	newMsg func() types.Message
}

var (
	logMu    sync.RWMutex
	logTypes = make(map[string]map[int32]logType)
)

// RegisterLog 注册执行器日志的名称和结构, execer 为空表示系统日志
func RegisterLog(execer string, ty int32, name string, newMsg func() types.Message) {
	logMu.Lock()
	defer logMu.Unlock()
	if logTypes[execer] == nil {
		logTypes[execer] = make(map[int32]logType)
	}
	logTypes[execer][ty] = logType{name: name, newMsg: newMsg}
}

func loadLog(execer string, ty int32) (logType, bool) {
	logMu.RLock()
	defer logMu.RUnlock()
	if lt, ok := logTypes[execer][ty]; ok {
		return lt, true
	}
	lt, ok := logTypes[""][ty]
	return lt, ok
}

func init() {
	transfer := func() types.Message { return &types.ReceiptAccountTransfer{} }
	execTransfer := func() types.Message { return &types.ReceiptExecAccountTransfer{} }
	RegisterLog("", types.TyLogTransfer, "LogTransfer", transfer)
	RegisterLog("", types.TyLogGenesisTransfer, "LogGenesisTransfer", transfer)
	RegisterLog("", types.TyLogExecTransfer, "LogExecTransfer", execTransfer)
	RegisterLog("", types.TyLogExecWithdraw, "LogExecWithdraw", execTransfer)
	RegisterLog("", types.TyLogExecDeposit, "LogExecDeposit", execTransfer)
	RegisterLog("", types.TyLogExecFrozen, "LogExecFrozen", execTransfer)
	RegisterLog("", types.TyLogExecActive, "LogExecActive", execTransfer)
	RegisterLog("", types.TyLogGenesisDeposit, "LogGenesisDeposit", execTransfer)
}

// DecodeLog 按执行器注册的结构解码日志, 未注册的日志只返回原始数据
func DecodeLog(execer string, l *types.ReceiptLog) *ReceiptLogResult {
	rl := &ReceiptLogResult{Ty: l.Ty, TyName: "unknownType", RawLog: hex.EncodeToString(l.Log)}
	lt, ok := loadLog(execer, l.Ty)
	if !ok {
		return rl
	}
	rl.TyName = lt.name
	msg := lt.newMsg()
	if err := types.Decode(l.Log, msg); err != nil {
		return rl
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return rl
	}
	rl.Log = data
	return rl
}

// DecodeTxResult 转换为 json 结构
func DecodeTxResult(execer string, r *types.TxResult) *TxResult {
	res := &TxResult{Hash: hex.EncodeToString(r.Hash), Seq: r.Seq, Ty: r.Ty}
	for _, l := range r.Logs {
		res.Logs = append(res.Logs, DecodeLog(execer, l))
	}
	return res
}

// DecodeEvents 转换为 json 结构
func DecodeEvents(records *types.EventRecords) []*EventResult {
	res := make([]*EventResult, 0, len(records.Records))
	for _, r := range records.Records {
		res = append(res, &EventResult{
			Seq:    r.Seq,
			Height: r.Height,
			TxHash: hex.EncodeToString(r.TxHash),
			Execer: r.Execer,
			Log:    DecodeLog(r.Execer, &types.ReceiptLog{Ty: r.Ty, Log: r.Log}),
		})
	}
	return res
}
