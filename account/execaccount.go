// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
)

// 执行器托管账户:
// 用户转入执行器地址的资金, 在 coins 主账户上记在执行器地址名下,
// 同时在执行器子账户 (addr, execaddr) 上记为 Balance. 合约可以将子账户资金冻结(Frozen),
// 在子账户之间划转, 最后提回到用户的 coins 主账户.

// LoadExecAccount Load exec account from address and exec
func (acc *DB) LoadExecAccount(addr, execaddr string) *types.Account {
	value, err := acc.db.Get(acc.execAccountKey(addr, execaddr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// SaveExecAccount save exec account data to db
func (acc *DB) SaveExecAccount(execaddr string, acc1 *types.Account) {
	set := acc.GetExecKVSet(execaddr, acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetExecKVSet 将执行账户数据转为数据库存储kv
func (acc *DB) GetExecKVSet(execaddr string, acc1 *types.Account) (kvset []*types.KeyValue) {
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.execAccountKey(acc1.Addr, execaddr),
		Value: types.Encode(acc1),
	})
	return kvset
}

func (acc *DB) execAccountKey(address, execaddr string) (key []byte) {
	key = make([]byte, 0, len(acc.execAccountKeyPerfix)+len(execaddr)+len(address)+1)
	key = append(key, acc.execAccountKeyPerfix...)
	key = append(key, []byte(execaddr)...)
	key = append(key, ':')
	key = append(key, []byte(address)...)
	return key
}

// ExecAddress 根据执行器名称获取执行器地址
func (acc *DB) ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// TransferToExec 从 from 的主账户转入执行器, 并记入 from 的执行器子账户
func (acc *DB) TransferToExec(from, execaddr string, amount int64) (*types.Receipt, error) {
	receipt, err := acc.Transfer(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.ExecDeposit(from, execaddr, amount)
	if err != nil {
		//存款不应该出任何问题
		panic(err)
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

// TransferWithdraw 从执行器子账户提回到 from 的主账户
func (acc *DB) TransferWithdraw(from, execaddr string, amount int64) (*types.Receipt, error) {
	//先判断执行器主账户可以付款
	if err := acc.CheckTransfer(execaddr, from, amount); err != nil {
		return nil, err
	}
	receipt, err := acc.ExecWithdraw(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.Transfer(execaddr, from, amount)
	if err != nil {
		panic(err) //已经检查过余额
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

// ExecDeposit 在当前addr的execaddr子账户中存款, 只在 TransferToExec 与创世中调用
func (acc *DB) ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execUpdate(types.TyLogExecDeposit, addr, execaddr, amount, func(a *types.Account) error {
		a.Balance += amount
		return nil
	})
}

// ExecWithdraw 从子账户中扣除可用余额
func (acc *DB) ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error) {
	return acc.execUpdate(types.TyLogExecWithdraw, addr, execaddr, amount, func(a *types.Account) error {
		if a.Balance-amount < 0 {
			return types.ErrNoBalance
		}
		a.Balance -= amount
		return nil
	})
}

// ExecFrozen 冻结子账户资金
func (acc *DB) ExecFrozen(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execUpdate(types.TyLogExecFrozen, addr, execaddr, amount, func(a *types.Account) error {
		if a.Balance-amount < 0 {
			alog.Error("ExecFrozen", "addr", addr, "balance", a.Balance, "amount", amount)
			return types.ErrNoBalance
		}
		a.Balance -= amount
		a.Frozen += amount
		return nil
	})
}

// ExecActive 解冻子账户资金
func (acc *DB) ExecActive(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execUpdate(types.TyLogExecActive, addr, execaddr, amount, func(a *types.Account) error {
		if a.Frozen-amount < 0 {
			alog.Error("ExecActive", "addr", addr, "frozen", a.Frozen, "amount", amount)
			return types.ErrNoBalance
		}
		a.Balance += amount
		a.Frozen -= amount
		return nil
	})
}

// ExecTransfer 子账户之间转移可用余额
func (acc *DB) ExecTransfer(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execMove(from, to, execaddr, amount, false)
}

// ExecTransferFrozen 从自己冻结的钱里面扣除，转移到别人的活动钱包里面去
func (acc *DB) ExecTransferFrozen(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execMove(from, to, execaddr, amount, true)
}

func (acc *DB) execUpdate(ty int32, addr, execaddr string, amount int64, update func(*types.Account) error) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	copyacc := *acc1
	if err := update(acc1); err != nil {
		return nil, err
	}
	receiptBalance := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     &copyacc,
		Current:  acc1,
	}
	acc.SaveExecAccount(execaddr, acc1)
	return acc.execReceipt(ty, acc1, receiptBalance), nil
}

func (acc *DB) execMove(from, to, execaddr string, amount int64, fromFrozen bool) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadExecAccount(from, execaddr)
	accTo := acc.LoadExecAccount(to, execaddr)
	copyaccFrom := *accFrom
	copyaccTo := *accTo

	if fromFrozen {
		if accFrom.GetFrozen()-amount < 0 {
			return nil, types.ErrNoBalance
		}
		accFrom.Frozen -= amount
	} else {
		if accFrom.GetBalance()-amount < 0 {
			return nil, types.ErrNoBalance
		}
		accFrom.Balance -= amount
	}
	accTo.Balance += amount

	r1 := &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &copyaccFrom, Current: accFrom}
	r2 := &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &copyaccTo, Current: accTo}
	acc.SaveExecAccount(execaddr, accFrom)
	acc.SaveExecAccount(execaddr, accTo)
	return acc.execReceipt2(accFrom, accTo, r1, r2), nil
}

func (acc *DB) execReceipt(ty int32, acc1 *types.Account, r *types.ReceiptExecAccountTransfer) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(r),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetExecKVSet(r.ExecAddr, acc1),
		Logs: []*types.ReceiptLog{log1},
	}
}

func (acc *DB) execReceipt2(acc1, acc2 *types.Account, r1, r2 *types.ReceiptExecAccountTransfer) *types.Receipt {
	ty := int32(types.TyLogExecTransfer)
	kv := acc.GetExecKVSet(r1.ExecAddr, acc1)
	kv = append(kv, acc.GetExecKVSet(r2.ExecAddr, acc2)...)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{
			{Ty: ty, Log: types.Encode(r1)},
			{Ty: ty, Log: types.Encode(r2)},
		},
	}
}

func (acc *DB) mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	receipt.KV = append(receipt.KV, receipt2.KV...)
	return receipt
}
