// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var execAddr = address.ExecAddress("coinflip")

func TestTransferToExecAndWithdraw(t *testing.T) {
	acc, _ := GenerAccDb()
	acc.GenerAccData()

	receipt, err := acc.TransferToExec(addr1, execAddr, 10*1e8)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 3)
	assert.Equal(t, int64(990*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(10*1e8), acc.LoadAccount(execAddr).Balance)
	assert.Equal(t, int64(10*1e8), acc.LoadExecAccount(addr1, execAddr).Balance)

	_, err = acc.TransferWithdraw(addr1, execAddr, 11*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.TransferWithdraw(addr1, execAddr, 4*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(994*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(6*1e8), acc.LoadAccount(execAddr).Balance)
	assert.Equal(t, int64(6*1e8), acc.LoadExecAccount(addr1, execAddr).Balance)
}

func TestTransferWithdrawCustodyShortfall(t *testing.T) {
	acc, _ := GenerAccDb()
	acc.GenerAccData()
	_, err := acc.TransferToExec(addr1, execAddr, 10*1e8)
	require.NoError(t, err)

	// 托管主账户被抽空, 子账户余额仍在
	acc.SaveAccount(&types.Account{Addr: execAddr, Balance: 1})
	_, err = acc.TransferWithdraw(addr1, execAddr, 10*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(10*1e8), acc.LoadExecAccount(addr1, execAddr).Balance)
}

func TestExecFrozenActive(t *testing.T) {
	acc, _ := GenerAccDb()
	acc.GenerAccData()
	_, err := acc.TransferToExec(addr1, execAddr, 10*1e8)
	require.NoError(t, err)

	_, err = acc.ExecFrozen(addr1, execAddr, 11*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.ExecFrozen(addr1, execAddr, 6*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecFrozen), receipt.Logs[0].Ty)
	a := acc.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, int64(4*1e8), a.Balance)
	assert.Equal(t, int64(6*1e8), a.Frozen)

	_, err = acc.ExecActive(addr1, execAddr, 7*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.ExecActive(addr1, execAddr, 2*1e8)
	require.NoError(t, err)
	a = acc.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, int64(6*1e8), a.Balance)
	assert.Equal(t, int64(4*1e8), a.Frozen)

	_, err = acc.ExecFrozen(execAddr, execAddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.ExecActive(addr1, execAddr, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestExecTransfer(t *testing.T) {
	acc, _ := GenerAccDb()
	acc.GenerAccData()
	_, err := acc.TransferToExec(addr1, execAddr, 10*1e8)
	require.NoError(t, err)
	_, err = acc.TransferToExec(addr2, execAddr, 10*1e8)
	require.NoError(t, err)

	receipt, err := acc.ExecTransfer(addr1, addr2, execAddr, 3*1e8)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, int64(7*1e8), acc.LoadExecAccount(addr1, execAddr).Balance)
	assert.Equal(t, int64(13*1e8), acc.LoadExecAccount(addr2, execAddr).Balance)

	_, err = acc.ExecTransfer(addr1, addr1, execAddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.ExecTransfer(addr1, addr2, execAddr, 8*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransferFrozen(t *testing.T) {
	acc, _ := GenerAccDb()
	acc.GenerAccData()
	for _, addr := range []string{addr1, addr2} {
		_, err := acc.TransferToExec(addr, execAddr, 10*1e8)
		require.NoError(t, err)
		_, err = acc.ExecFrozen(addr, execAddr, 10*1e8)
		require.NoError(t, err)
	}

	_, err := acc.ExecTransferFrozen(addr2, addr1, execAddr, 11*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.ExecTransferFrozen(addr2, addr1, execAddr, 10*1e8)
	require.NoError(t, err)
	_, err = acc.ExecActive(addr1, execAddr, 10*1e8)
	require.NoError(t, err)

	winner := acc.LoadExecAccount(addr1, execAddr)
	loser := acc.LoadExecAccount(addr2, execAddr)
	assert.Equal(t, int64(20*1e8), winner.Balance)
	assert.Equal(t, int64(0), winner.Frozen)
	assert.Equal(t, int64(0), loser.Balance)
	assert.Equal(t, int64(0), loser.Frozen)

	_, err = acc.TransferWithdraw(addr1, execAddr, 20*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(1010*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(execAddr).Balance)
}

func TestExecWithdraw(t *testing.T) {
	acc, _ := GenerAccDb()
	acc.GenerAccData()
	_, err := acc.TransferToExec(addr1, execAddr, 10*1e8)
	require.NoError(t, err)

	_, err = acc.ExecWithdraw(execAddr, addr1, 11*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	receipt, err := acc.ExecWithdraw(execAddr, addr1, 1*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecWithdraw), receipt.Logs[0].Ty)
	assert.Equal(t, int64(9*1e8), acc.LoadExecAccount(addr1, execAddr).Balance)
	// 主账户不变
	assert.Equal(t, int64(10*1e8), acc.LoadAccount(execAddr).Balance)
}
