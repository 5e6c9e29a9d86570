// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLog(t *testing.T) {
	r := &types.ReceiptAccountTransfer{
		Prev:    &types.Account{Addr: "a", Balance: 10},
		Current: &types.Account{Addr: "a", Balance: 5},
	}
	l := &types.ReceiptLog{Ty: types.TyLogTransfer, Log: types.Encode(r)}
	res := DecodeLog("demo", l)
	assert.Equal(t, "LogTransfer", res.TyName)
	assert.Equal(t, hex.EncodeToString(l.Log), res.RawLog)
	var decoded types.ReceiptAccountTransfer
	require.NoError(t, json.Unmarshal(res.Log, &decoded))
	assert.Equal(t, int64(5), decoded.Current.Balance)

	res = DecodeLog("demo", &types.ReceiptLog{Ty: 999, Log: []byte{1}})
	assert.Equal(t, "unknownType", res.TyName)
	assert.Nil(t, res.Log)
	assert.Equal(t, "01", res.RawLog)
}

func TestRegisterLog(t *testing.T) {
	RegisterLog("demo", 200, "LogDemo", func() types.Message { return &types.ReqString{} })
	res := DecodeLog("demo", &types.ReceiptLog{Ty: 200, Log: types.Encode(&types.ReqString{Data: "x"})})
	assert.Equal(t, "LogDemo", res.TyName)
	assert.JSONEq(t, `{"data":"x"}`, string(res.Log))

	// 其他执行器看不到
	res = DecodeLog("other", &types.ReceiptLog{Ty: 200})
	assert.Equal(t, "unknownType", res.TyName)
}

func TestDecodeTxResult(t *testing.T) {
	r := &types.TxResult{Hash: []byte{0xab}, Seq: 3, Ty: types.ExecOk, Logs: []*types.ReceiptLog{{Ty: 999}}}
	res := DecodeTxResult("demo", r)
	assert.Equal(t, "ab", res.Hash)
	assert.Equal(t, int64(3), res.Seq)
	require.Len(t, res.Logs, 1)

	events := DecodeEvents(&types.EventRecords{Records: []*types.EventRecord{{Seq: 1, TxHash: []byte{1}, Execer: "demo", Ty: 200}}})
	require.Len(t, events, 1)
	assert.Equal(t, "01", events[0].TxHash)
}
