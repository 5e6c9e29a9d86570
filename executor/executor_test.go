// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"errors"
	"testing"

	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/executor/drivers"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errDemo  = errors.New("ErrDemo")
	genesis1 = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	genesis2 = "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"
)

// demo 执行器: payload 为 ReqString, 写入 mavl-demo-<data> = from, data 为 fail 时返回错误
type demo struct {
	drivers.DriverBase
}

func newDemo() drivers.Driver {
	d := &demo{}
	d.SetChild(d)
	return d
}

func (d *demo) GetName() string {
	return "demo"
}

func (d *demo) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var req types.ReqString
	if err := types.Decode(tx.Payload, &req); err != nil {
		return nil, err
	}
	kv := &types.KeyValue{Key: []byte("mavl-demo-" + req.Data), Value: []byte(tx.From)}
	_ = d.GetStateDB().Set(kv.Key, kv.Value)
	if req.Data == "fail" {
		return nil, errDemo
	}
	if tx.Value > 0 {
		r, err := d.GetCoinsAccount().ExecFrozen(tx.From, d.GetExecAddr(), tx.Value)
		if err != nil {
			return nil, err
		}
		return types.MergeReceipt(&types.Receipt{KV: []*types.KeyValue{kv}}, r), nil
	}
	return &types.Receipt{KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{{Ty: 100, Log: []byte(req.Data)}}}, nil
}

func (d *demo) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) ([]*types.KeyValue, error) {
	return []*types.KeyValue{{Key: []byte("LODB-demo-" + tx.From), Value: []byte("1")}}, nil
}

func (d *demo) Query_Get(in *types.ReqString) (types.Message, error) {
	v, err := d.GetStateDB().Get([]byte("mavl-demo-" + in.Data))
	if err != nil {
		return nil, err
	}
	return &types.ReqString{Data: string(v)}, nil
}

func init() {
	executor.DisableLog()
	queue.DisableLog()
	drivers.Register("demo", newDemo)
}

func newExecutor(t *testing.T) *executor.Executor {
	cfg, _ := types.InitCfgString(types.GetDefaultCfgstring())
	db := dbm.NewDB("test", dbm.MemDBBackendStr, "", 0)
	exec := executor.New(cfg, db)
	require.NoError(t, exec.Genesis(cfg.Genesis))
	return exec
}

func demoTx(from, data string, value, nonce int64) *types.Transaction {
	return &types.Transaction{
		Execer:  "demo",
		Payload: types.Encode(&types.ReqString{Data: data}),
		From:    from,
		Value:   value,
		Nonce:   nonce,
	}
}

func balance(t *testing.T, exec *executor.Executor, addr, execer string) *types.Account {
	accs, err := exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}, Execer: execer})
	require.NoError(t, err)
	require.Len(t, accs.Acc, 1)
	return accs.Acc[0]
}

func TestGenesis(t *testing.T) {
	cfg, _ := types.InitCfgString(types.GetDefaultCfgstring())
	db := dbm.NewDB("test", dbm.MemDBBackendStr, "", 0)
	exec := executor.New(cfg, db)
	require.NoError(t, exec.Genesis(cfg.Genesis))
	assert.Equal(t, 100000*types.Coin, balance(t, exec, genesis1, "").Balance)
	// 第二次不再分配
	require.NoError(t, exec.Genesis(cfg.Genesis))
	assert.Equal(t, 100000*types.Coin, balance(t, exec, genesis1, "").Balance)

	// 重新打开同一个数据库
	exec2 := executor.New(cfg, db)
	require.NoError(t, exec2.Genesis(cfg.Genesis))
	assert.Equal(t, 100000*types.Coin, balance(t, exec2, genesis1, "").Balance)

	bad := executor.New(cfg, dbm.NewDB("bad", dbm.MemDBBackendStr, "", 0))
	err := bad.Genesis([]*types.GenesisAlloc{{Addr: genesis1, Amount: "1"}, {Addr: genesis2, Amount: "x"}})
	assert.Equal(t, types.ErrAmount, pkgerr.Cause(err))
	assert.Equal(t, int64(0), balance(t, bad, genesis1, "").Balance)
}

func TestExecTxDeposit(t *testing.T) {
	exec := newExecutor(t)
	execaddr := address.ExecAddress("demo")

	result, err := exec.ExecTx(demoTx(genesis1, "a", 10*types.Coin, 1))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), result.Ty)
	assert.Equal(t, int64(1), result.Seq)
	assert.Equal(t, int64(1), exec.Seq())

	assert.Equal(t, 99990*types.Coin, balance(t, exec, genesis1, "").Balance)
	assert.Equal(t, 10*types.Coin, balance(t, exec, execaddr, "").Balance)
	sub := balance(t, exec, genesis1, "demo")
	assert.Equal(t, int64(0), sub.Balance)
	assert.Equal(t, 10*types.Coin, sub.Frozen)

	reply, err := exec.Query(&types.Query{Execer: "demo", FuncName: "Get", Payload: types.Encode(&types.ReqString{Data: "a"})})
	require.NoError(t, err)
	assert.Equal(t, genesis1, reply.(*types.ReqString).Data)
}

func TestExecTxRollback(t *testing.T) {
	exec := newExecutor(t)
	execaddr := address.ExecAddress("demo")

	_, err := exec.ExecTx(demoTx(genesis1, "fail", 10*types.Coin, 1))
	assert.Equal(t, errDemo, err)
	assert.Equal(t, int64(0), exec.Seq())
	// 押金没有被收取, 写入的状态也被丢弃
	assert.Equal(t, 100000*types.Coin, balance(t, exec, genesis1, "").Balance)
	assert.Equal(t, int64(0), balance(t, exec, execaddr, "").Balance)
	_, err = exec.Query(&types.Query{Execer: "demo", FuncName: "Get", Payload: types.Encode(&types.ReqString{Data: "fail"})})
	assert.Equal(t, types.ErrNotFound, err)

	// 余额不足
	_, err = exec.ExecTx(demoTx(genesis1, "a", 100001*types.Coin, 2))
	assert.Equal(t, types.ErrNoBalance, pkgerr.Cause(err))
	assert.Equal(t, 100000*types.Coin, balance(t, exec, genesis1, "").Balance)
}

func TestExecTxCheck(t *testing.T) {
	exec := newExecutor(t)
	_, err := exec.ExecTx(nil)
	assert.Equal(t, types.ErrTxEmpty, err)

	tx := demoTx(genesis1, "a", 0, 1)
	tx.Execer = "nobody"
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrExecNotFound, err)

	_, err = exec.ExecTx(demoTx(genesis1, "a", -1, 1))
	assert.Equal(t, types.ErrAmount, err)

	_, err = exec.ExecTx(demoTx("badaddr", "a", 0, 1))
	assert.Equal(t, types.ErrInvalidAddress, pkgerr.Cause(err))

	_, err = exec.Query(&types.Query{Execer: "demo", FuncName: "Nothing"})
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query(&types.Query{Execer: "demo", FuncName: "Get", Payload: []byte{0xff}})
	assert.Equal(t, types.ErrDecode, err)
}

func TestExecTxDup(t *testing.T) {
	exec := newExecutor(t)
	tx := demoTx(genesis1, "a", 0, 1)
	result, err := exec.ExecTx(tx)
	require.NoError(t, err)
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrTxDup, err)

	// 失败的交易没有记录, 可以重新提交
	fail := demoTx(genesis1, "fail", 0, 2)
	_, err = exec.ExecTx(fail)
	assert.Equal(t, errDemo, err)
	_, err = exec.ExecTx(fail)
	assert.Equal(t, errDemo, err)

	_, err = exec.ExecTx(demoTx(genesis1, "a", 0, 3))
	require.NoError(t, err)
	assert.Equal(t, result.Seq+1, exec.Seq())
}

func TestListEvents(t *testing.T) {
	exec := newExecutor(t)
	for i, data := range []string{"a", "b", "c", "d"} {
		_, err := exec.ExecTx(demoTx(genesis1, data, 0, int64(i)))
		require.NoError(t, err)
	}
	records, err := exec.ListEvents(&types.ReqListEvents{})
	require.NoError(t, err)
	require.Len(t, records.Records, 4)
	for i, r := range records.Records {
		assert.Equal(t, int64(i+1), r.Seq)
		assert.Equal(t, "demo", r.Execer)
		assert.Equal(t, int32(100), r.Ty)
	}
	assert.Equal(t, "a", string(records.Records[0].Log))

	records, err = exec.ListEvents(&types.ReqListEvents{StartSeq: 3, Count: 1})
	require.NoError(t, err)
	require.Len(t, records.Records, 1)
	assert.Equal(t, int64(3), records.Records[0].Seq)
	assert.Equal(t, "c", string(records.Records[0].Log))

	records, err = exec.ListEvents(&types.ReqListEvents{StartSeq: 1, Execer: "coins"})
	require.NoError(t, err)
	assert.Len(t, records.Records, 0)

	records, err = exec.ListEvents(&types.ReqListEvents{StartSeq: 10})
	require.NoError(t, err)
	assert.Len(t, records.Records, 0)
}

func TestExecutorQueue(t *testing.T) {
	q := queue.New("channel")
	exec := newExecutor(t)
	exec.SetQueueClient(q.Client())
	defer exec.Close()

	client := q.Client()
	msg := client.NewMessage("execs", types.EventTx, demoTx(genesis2, "q", types.Coin, 1))
	require.NoError(t, client.Send(msg, true))
	reply, err := client.Wait(msg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reply.GetData().(*types.TxResult).Seq)

	msg = client.NewMessage("execs", types.EventTx, demoTx(genesis2, "fail", 0, 2))
	require.NoError(t, client.Send(msg, true))
	_, err = client.Wait(msg)
	assert.Equal(t, errDemo, err)

	msg = client.NewMessage("execs", types.EventGetBalance, &types.ReqBalance{Addresses: []string{genesis2}})
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.Equal(t, 99999*types.Coin, reply.GetData().(*types.Accounts).Acc[0].Balance)

	msg = client.NewMessage("execs", types.EventQuery, &types.Query{Execer: "demo", FuncName: "Get", Payload: types.Encode(&types.ReqString{Data: "q"})})
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.Equal(t, genesis2, reply.GetData().(*types.ReqString).Data)

	msg = client.NewMessage("execs", types.EventListEvents, &types.ReqListEvents{})
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.NotEmpty(t, reply.GetData().(*types.EventRecords).Records)

	msg = client.NewMessage("execs", types.EventTx, "not a tx")
	require.NoError(t, client.Send(msg, true))
	_, err = client.Wait(msg)
	assert.Equal(t, types.ErrInvalidParam, err)

	msg = client.NewMessage("execs", types.EventGetLastHeight, nil)
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.False(t, reply.GetData().(*types.Reply).IsOk)
}
