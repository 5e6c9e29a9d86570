// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAmount(t *testing.T) {
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(1))
	assert.True(t, CheckAmount(MaxCoin-1))
}

func TestEncodeDecode(t *testing.T) {
	receipt := &Receipt{
		Ty:   ExecOk,
		KV:   []*KeyValue{{Key: []byte("k"), Value: []byte("v")}},
		Logs: []*ReceiptLog{{Ty: TyLogTransfer, Log: Encode(&Account{Addr: "a", Balance: 10})}},
	}
	var r Receipt
	require.Nil(t, Decode(Encode(receipt), &r))
	assert.Equal(t, int32(ExecOk), r.Ty)
	assert.Equal(t, []byte("v"), r.KV[0].Value)
	var acc Account
	require.Nil(t, Decode(r.Logs[0].Log, &acc))
	assert.Equal(t, int64(10), acc.Balance)
	assert.Equal(t, "a", acc.Addr)
}

func TestTxHash(t *testing.T) {
	tx1 := &Transaction{Execer: "coinflip", From: "a", Value: 1, Nonce: 1}
	tx2 := &Transaction{Execer: "coinflip", From: "a", Value: 1, Nonce: 2}
	assert.Len(t, tx1.Hash(), 32)
	assert.NotEqual(t, tx1.Hash(), tx2.Hash())
	assert.Equal(t, tx1.Hash(), tx1.Hash())
	assert.Nil(t, tx1.Check())
	assert.Equal(t, ErrExecNotFound, (&Transaction{}).Check())
	assert.Equal(t, ErrAmount, (&Transaction{Execer: "coinflip", Value: -1}).Check())
}

func TestMergeReceipt(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, Logs: []*ReceiptLog{{Ty: 1}}}
	r2 := &Receipt{Ty: ExecOk, Logs: []*ReceiptLog{{Ty: 2}}, KV: []*KeyValue{{Key: []byte("a")}}}
	r := MergeReceipt(r1, r2)
	assert.Len(t, r.Logs, 2)
	assert.Len(t, r.KV, 1)
	assert.Equal(t, r2, MergeReceipt(nil, r2))
	assert.Equal(t, r1, MergeReceipt(r1, nil))
}

func TestAmount(t *testing.T) {
	v, err := ParseAmount("1.001")
	require.Nil(t, err)
	assert.Equal(t, int64(100100000), v)
	v, err = ParseAmount("0.00000001")
	require.Nil(t, err)
	assert.Equal(t, int64(1), v)

	_, err = ParseAmount("0.000000001")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("-1")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("abc")
	assert.Equal(t, ErrAmount, errors.Cause(err))

	assert.Equal(t, "2.0000", FormatAmount(2*Coin))
	assert.Equal(t, "0.001", FormatAmountExact(1e5))
}

func TestDefaultConfig(t *testing.T) {
	cfg, sub := InitCfgString(GetDefaultCfgstring())
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "localhost:8801", cfg.RPC.JrpcBindAddr)
	assert.True(t, cfg.Oracle.Enable)
	assert.Equal(t, []uint64{1}, cfg.Oracle.Subscriptions)
	assert.Len(t, cfg.Oracle.Lanes, 1)
	assert.Len(t, cfg.Genesis, 3)
	assert.Equal(t, "100000", cfg.Genesis[0].Amount)

	var coinflip struct {
		Owner    string `json:"owner"`
		NumWords uint32 `json:"numWords"`
	}
	MustDecode(sub.Exec["coinflip"], &coinflip)
	assert.Equal(t, "1Bsg9j6gW83sShoee1fZAt9TkUjcrCgA9S", coinflip.Owner)
	assert.Equal(t, uint32(1), coinflip.NumWords)
}

func TestConfigDefaults(t *testing.T) {
	cfg, sub := InitCfgString(`Title="empty"`)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "vrfcoordinator", cfg.Oracle.Name)
	assert.Equal(t, int64(30), cfg.RPC.TxTimeout)
	assert.Empty(t, sub.Exec)
}

func TestGetEventName(t *testing.T) {
	assert.Equal(t, "EventTx", GetEventName(EventTx))
	assert.Equal(t, "unknow-event", GetEventName(1000))
}
