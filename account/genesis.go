// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/coinflip/types"
	"github.com/golang/protobuf/proto"
)

func safeAdd(balance, amount int64) (int64, error) {
	if amount < 0 || balance+amount < amount || balance+amount > types.MaxTokenBalance {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

// GenesisInit 创世分配, 直接增加地址余额
func (acc *DB) GenesisInit(addr string, amount int64) (receipt *types.Receipt, err error) {
	accTo := acc.LoadAccount(addr)
	copyto := *accTo
	accTo.Balance, err = safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	acc.SaveAccount(accTo)
	return acc.genesisReceipt(accTo, &types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo}), nil
}

// GenesisInitExec 创世分配到 addr 在 execaddr 下的子账户
func (acc *DB) GenesisInitExec(addr string, amount int64, execaddr string) (receipt *types.Receipt, err error) {
	accTo := acc.LoadAccount(execaddr)
	copyto := *accTo
	accTo.Balance, err = safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	acc.SaveAccount(accTo)
	receipt = acc.genesisReceipt(accTo, &types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo})
	receipt2, err := acc.ExecDeposit(addr, execaddr, amount)
	if err != nil {
		panic(err)
	}
	for _, l := range receipt2.Logs {
		l.Ty = types.TyLogGenesisDeposit
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

func (acc *DB) genesisReceipt(accTo *types.Account, receiptTo proto.Message) *types.Receipt {
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: acc.GetKVSet(accTo),
		Logs: []*types.ReceiptLog{
			{Ty: types.TyLogGenesisTransfer, Log: types.Encode(receiptTo)},
		},
	}
}
