// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现coins资产操作

1. load from db
2. save to db
3. KVSet
4. Transfer
5. 执行器托管账户 (exec account)
*/
package account

import (
	"fmt"
	"strings"

	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

// NewCoinsAccount 新建coins账户数据库
func NewCoinsAccount(db dbm.KV) *DB {
	acc, err := NewAccountDB(types.CoinsX, "bty", db)
	if err != nil {
		panic(err)
	}
	return acc
}

// NewAccountDB 指定执行器与资产符号的账户数据库
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	prefix := SymbolPrefix(execer, symbol)
	accDB := &DB{
		accountKeyPerfix:     []byte(prefix),
		execAccountKeyPerfix: append([]byte(prefix), []byte("exec-")...),
		execer:               execer,
		symbol:               symbol,
	}
	accDB.SetDB(db)
	return accDB, nil
}

// SetDB 切换状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount 读取账户, 不存在时返回空账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
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

// LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// CheckTransfer 检查是否可以转账
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer coins账户之间转账
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Addr == accTo.Addr {
		return nil, types.ErrSendSameToRecv
	}
	if accFrom.GetBalance()-amount < 0 {
		alog.Error("Transfer", "from", from, "balance", accFrom.GetBalance(), "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = accTo.GetBalance() + amount

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 将账户数据转为数据库存储kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}

// GetBalance 查询coins账户或执行器托管子账户
func (acc *DB) GetBalance(in *types.ReqBalance) ([]*types.Account, error) {
	if len(in.GetAddresses()) == 0 {
		return nil, types.ErrInvalidParam
	}
	if in.GetExecer() == "" || in.GetExecer() == types.CoinsX {
		return acc.LoadAccounts(in.Addresses), nil
	}
	execaddress := address.ExecAddress(in.Execer)
	accounts := make([]*types.Account, 0, len(in.Addresses))
	for _, addr := range in.Addresses {
		accounts = append(accounts, acc.LoadExecAccount(addr, execaddress))
	}
	return accounts, nil
}
