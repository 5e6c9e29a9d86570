// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行模块: 状态数据库, 驱动调度, 本地索引
package executor

import (
	"sync"
	"time"

	"github.com/33cn/coinflip/account"
	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/executor/drivers"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "executor")

var (
	genesisKey = []byte(types.StatePrefix + "-genesis")
	execSeqKey = []byte(types.LocalPrefix + "-execseq")
)

// DisableLog disable log
func DisableLog() {
	elog.SetHandler(log.DiscardHandler())
}

// Executor 执行器模块, 所有交易在同一个 goroutine 里面串行执行
type Executor struct {
	cfg     *types.Config
	db      dbm.DB
	stateDB *StateDB
	localDB *LocalDB
	client  queue.Client
	funcMap queue.FuncMap
	seq     int64
	mu      sync.Mutex
	wg      sync.WaitGroup
}

// New 创建执行器, 状态数据和本地数据共用一个数据库
func New(cfg *types.Config, db dbm.DB) *Executor {
	exec := &Executor{
		cfg:     cfg,
		db:      db,
		stateDB: NewStateDB(db, int(cfg.Store.StateCacheSize)),
		localDB: NewLocalDB(db),
	}
	seq, err := loadSeq(exec.localDB)
	if err != nil {
		panic(err)
	}
	exec.seq = seq
	exec.funcMap.Init()
	return exec
}

func loadSeq(db dbm.KV) (int64, error) {
	value, err := db.Get(execSeqKey)
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

// Seq 已经执行成功的交易数
func (exec *Executor) Seq() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.seq
}

// Genesis 创世分配, 只执行一次
func (exec *Executor) Genesis(allocs []*types.GenesisAlloc) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.stateDB.Get(genesisKey); err == nil {
		elog.Info("genesis already done")
		return nil
	}
	coins := account.NewCoinsAccount(exec.stateDB)
	exec.stateDB.Begin()
	for _, alloc := range allocs {
		if err := address.CheckAddress(alloc.Addr); err != nil {
			exec.stateDB.Rollback()
			return errors.Wrapf(err, "genesis addr %s", alloc.Addr)
		}
		amount, err := types.ParseAmount(alloc.Amount)
		if err != nil {
			exec.stateDB.Rollback()
			return errors.Wrapf(err, "genesis addr %s", alloc.Addr)
		}
		if _, err := coins.GenesisInit(alloc.Addr, amount); err != nil {
			exec.stateDB.Rollback()
			return errors.Wrapf(err, "genesis addr %s", alloc.Addr)
		}
		elog.Info("genesis", "addr", alloc.Addr, "amount", alloc.Amount)
	}
	_ = exec.stateDB.Set(genesisKey, []byte("1"))
	exec.stateDB.Commit()
	return exec.flush()
}

// ExecTx 执行一笔交易, 失败时状态不发生任何变化
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.TxResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	begin := time.Now()
	result, err := exec.execTx(tx)
	metrics.Timer(metrics.TxDuration).UpdateSince(begin)
	if err != nil {
		metrics.Inc(metrics.TxFailed)
		elog.Error("ExecTx", "execer", tx.GetExecer(), "from", tx.GetFrom(), "err", err)
		return nil, err
	}
	metrics.Inc(metrics.TxExecuted)
	return result, nil
}

func (exec *Executor) execTx(tx *types.Transaction) (*types.TxResult, error) {
	if tx == nil {
		return nil, types.ErrTxEmpty
	}
	if err := tx.Check(); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(tx.From); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "from %s: %v", tx.From, err)
	}
	hash := tx.Hash()
	if _, err := GetTxResult(exec.localDB, hash); err == nil {
		return nil, types.ErrTxDup
	}
	driver, err := exec.loadDriver(tx.Execer)
	if err != nil {
		return nil, err
	}
	driver.SetEnv(exec.seq+1, 0)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}

	exec.stateDB.Begin()
	receipt, err := exec.execWithDeposit(driver, tx)
	if err != nil {
		exec.stateDB.Rollback()
		return nil, err
	}
	exec.stateDB.Commit()

	result := &types.TxResult{Hash: hash, Ty: receipt.Ty, Logs: receipt.Logs, Seq: exec.seq + 1}
	if err := exec.execLocal(driver, tx, receipt, result); err != nil {
		exec.discard()
		return nil, err
	}
	_ = exec.localDB.Set(execSeqKey, types.Encode(&types.Int64{Data: result.Seq}))
	if err := exec.flush(); err != nil {
		return nil, err
	}
	exec.seq = result.Seq
	return result, nil
}

// 交易附带的金额先转入执行器地址, 再执行具体的 action
func (exec *Executor) execWithDeposit(driver drivers.Driver, tx *types.Transaction) (*types.Receipt, error) {
	var receipt *types.Receipt
	if tx.Value > 0 {
		r, err := driver.GetCoinsAccount().TransferToExec(tx.From, driver.GetExecAddr(), tx.Value)
		if err != nil {
			return nil, errors.Wrap(err, "deposit")
		}
		receipt = r
	}
	r, err := driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	if receipt == nil {
		receipt = &types.Receipt{}
	}
	receipt.Ty = types.ExecOk
	return receipt, nil
}

func (exec *Executor) execLocal(driver drivers.Driver, tx *types.Transaction, receipt *types.Receipt, result *types.TxResult) error {
	kvs, err := driver.ExecLocal(tx, receipt, 0)
	if err != nil {
		return errors.Wrap(err, "execLocal")
	}
	exec.setLocal(kvs)
	for _, name := range pluginNames() {
		p := globalPlugins[name]
		if !p.CheckEnable(true) {
			continue
		}
		kvs, err := p.ExecLocal(exec, tx, result)
		if err != nil {
			return errors.Wrapf(err, "plugin %s", name)
		}
		exec.setLocal(kvs)
	}
	return nil
}

func (exec *Executor) setLocal(kvs []*types.KeyValue) {
	for _, kv := range kvs {
		_ = exec.localDB.Set(kv.Key, kv.Value)
	}
}

// 状态数据和本地数据在同一个 batch 里面写盘
func (exec *Executor) flush() error {
	batch := exec.db.NewBatch(true)
	exec.stateDB.Flush(batch)
	exec.localDB.Flush(batch)
	if err := batch.Write(); err != nil {
		exec.discard()
		return errors.Wrap(err, "flush")
	}
	exec.stateDB.ResetDirty()
	exec.localDB.Reset()
	return nil
}

func (exec *Executor) discard() {
	exec.stateDB.DropDirty()
	exec.localDB.Reset()
}

func (exec *Executor) loadDriver(name string) (drivers.Driver, error) {
	driver, err := drivers.LoadDriver(name)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(exec.stateDB)
	driver.SetLocalDB(exec.localDB)
	return driver, nil
}

// Query 执行器只读查询
func (exec *Executor) Query(req *types.Query) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	driver, err := exec.loadDriver(req.Execer)
	if err != nil {
		return nil, err
	}
	driver.SetEnv(exec.seq, 0)
	return driver.Query(req.FuncName, req.Payload)
}

// GetBalance coins 账户或者执行器子账户余额
func (exec *Executor) GetBalance(req *types.ReqBalance) (*types.Accounts, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	accs, err := account.NewCoinsAccount(exec.stateDB).GetBalance(req)
	if err != nil {
		return nil, err
	}
	return &types.Accounts{Acc: accs}, nil
}

// ListEvents 事件流水
func (exec *Executor) ListEvents(req *types.ReqListEvents) (*types.EventRecords, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return ListEvents(exec.localDB, req)
}

// SetQueueClient 订阅 execs 主题
func (exec *Executor) SetQueueClient(client queue.Client) {
	exec.client = client
	exec.registerHandlers()
	exec.client.Sub("execs")
	exec.wg.Add(1)
	go func() {
		defer exec.wg.Done()
		for msg := range exec.client.Recv() {
			elog.Debug("exec recv", "msg", msg)
			exec.process(msg)
		}
		elog.Info("executor queue closed")
	}()
}

func (exec *Executor) process(msg *queue.Message) {
	exist, topic, ty, reply, err := exec.funcMap.Process(msg)
	if !exist {
		msg.ReplyErr("executor", types.ErrActionNotSupport)
		return
	}
	if err != nil {
		msg.Reply(exec.client.NewMessage(topic, ty, err))
		return
	}
	msg.Reply(exec.client.NewMessage(topic, ty, reply))
}

func (exec *Executor) registerHandlers() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(exec.funcMap.Register(types.EventTx, func(msg *queue.Message) (string, int64, interface{}, error) {
		tx, ok := msg.GetData().(*types.Transaction)
		if !ok {
			return "", types.EventReceipt, nil, types.ErrInvalidParam
		}
		result, err := exec.ExecTx(tx)
		return "", types.EventReceipt, result, err
	}))
	must(exec.funcMap.Register(types.EventQuery, func(msg *queue.Message) (string, int64, interface{}, error) {
		req, ok := msg.GetData().(*types.Query)
		if !ok {
			return "", types.EventReplyQuery, nil, types.ErrInvalidParam
		}
		reply, err := exec.Query(req)
		return "", types.EventReplyQuery, reply, err
	}))
	must(exec.funcMap.Register(types.EventGetBalance, func(msg *queue.Message) (string, int64, interface{}, error) {
		req, ok := msg.GetData().(*types.ReqBalance)
		if !ok {
			return "", types.EventReplyBalance, nil, types.ErrInvalidParam
		}
		reply, err := exec.GetBalance(req)
		return "", types.EventReplyBalance, reply, err
	}))
	must(exec.funcMap.Register(types.EventListEvents, func(msg *queue.Message) (string, int64, interface{}, error) {
		req, ok := msg.GetData().(*types.ReqListEvents)
		if !ok {
			return "", types.EventReplyEvents, nil, types.ErrInvalidParam
		}
		reply, err := exec.ListEvents(req)
		return "", types.EventReplyEvents, reply, err
	}))
}

// Close 关闭
func (exec *Executor) Close() {
	if exec.client != nil {
		exec.client.Close()
	}
	exec.wg.Wait()
	elog.Info("exec module closed")
}
