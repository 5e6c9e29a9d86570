// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/coinflip/executor/drivers"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coinflip")

var (
	mu          sync.RWMutex
	driverCfg   *ct.Config
	owner       ct.Owner
	coordinator Coordinator
)

// Init 注册 coinflip 执行器, sub 为 exec.sub.coinflip 配置
func Init(name string, sub []byte) {
	cfg, err := ct.DecodeConfig(sub)
	if err != nil {
		panic(err)
	}
	SetConfig(cfg)
	drivers.Register(name, newCoinflip)
}

// SetConfig 设置执行器配置以及管理员
func SetConfig(cfg *ct.Config) {
	mu.Lock()
	defer mu.Unlock()
	driverCfg = cfg
	owner = ct.NewOwner(cfg.Owner)
}

// SetCoordinator 设置随机数服务
func SetCoordinator(c Coordinator) {
	mu.Lock()
	defer mu.Unlock()
	coordinator = c
}

func getEnv() (*ct.Config, ct.Owner, Coordinator) {
	mu.RLock()
	defer mu.RUnlock()
	return driverCfg, owner, coordinator
}

// GetName 执行器名称
func GetName() string {
	return ct.CoinflipX
}

// Coinflip 执行器
type Coinflip struct {
	drivers.DriverBase
}

func newCoinflip() drivers.Driver {
	c := &Coinflip{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (c *Coinflip) GetName() string {
	return GetName()
}

// CheckTx 只有 create 和 join 可以附带金额
func (c *Coinflip) CheckTx(tx *types.Transaction, index int) error {
	var action ct.CoinflipAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return types.ErrDecode
	}
	if tx.Value > 0 && action.Ty != ct.CoinflipActionCreate && action.Ty != ct.CoinflipActionJoin {
		return types.ErrNotAllowDeposit
	}
	return nil
}

// Exec 执行交易
func (c *Coinflip) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action ct.CoinflipAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	clog.Debug("exec coinflip tx", "action", action.Ty, "from", tx.From)
	actiondb := NewAction(c, tx, index)
	switch {
	case action.Ty == ct.CoinflipActionCreate && action.GetCreate() != nil:
		return actiondb.GameCreate(action.GetCreate())
	case action.Ty == ct.CoinflipActionJoin && action.GetJoin() != nil:
		return actiondb.GameJoin(action.GetJoin())
	case action.Ty == ct.CoinflipActionFulfill && action.GetFulfill() != nil:
		return actiondb.GameFulfill(action.GetFulfill())
	case action.Ty == ct.CoinflipActionWithdraw:
		return actiondb.WithdrawFees()
	}
	return nil, types.ErrActionNotSupport
}

// ExecLocal 根据游戏日志更新本地索引
func (c *Coinflip) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) ([]*types.KeyValue, error) {
	if receipt.GetTy() != types.ExecOk {
		return nil, nil
	}
	var kvs []*types.KeyValue
	for _, item := range receipt.Logs {
		switch item.Ty {
		case ct.TyLogCoinflipCreation:
			var l ct.ReceiptCreation
			if err := types.Decode(item.Log, &l); err != nil {
				return nil, err
			}
			kvs = append(kvs, createdIndex(&l)...)
		case ct.TyLogCoinflipJoined:
			var l ct.ReceiptJoined
			if err := types.Decode(item.Log, &l); err != nil {
				return nil, err
			}
			kvs = append(kvs, joinedIndex(&l)...)
		case ct.TyLogCoinflipResolved:
			var l ct.ReceiptResolved
			if err := types.Decode(item.Log, &l); err != nil {
				return nil, err
			}
			kvs = append(kvs, resolvedIndex(&l)...)
		}
	}
	return kvs, nil
}
