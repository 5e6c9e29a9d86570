// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drivers 执行器驱动的公共部分: 驱动接口, 基础实现, 注册表
package drivers

import (
	"reflect"

	"github.com/33cn/coinflip/account"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetName() string
	GetExecAddr() string
	//seq 为本笔交易在节点上的执行序号
	SetEnv(seq int64, index int)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) ([]*types.KeyValue, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
}

// DriverBase 驱动的基础实现, 具体驱动内嵌后调用 SetChild
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	seq          int64
	index        int
	child        Driver
	childValue   reflect.Value
	funcmap      map[string]reflect.Method
}

// SetChild 设置具体驱动, 并收集 Query_ 方法
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = ListMethod(e, "Query_")
}

// GetFuncMap query 方法表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

// SetEnv 设置执行环境
func (d *DriverBase) SetEnv(seq int64, index int) {
	d.seq = seq
	d.index = index
}

// GetHeight 当前执行序号
func (d *DriverBase) GetHeight() int64 {
	return d.seq
}

// GetIndex 区块内的交易序号
func (d *DriverBase) GetIndex() int {
	return d.index
}

// SetStateDB 设置状态数据库, coins 账户跟随切换
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
		return
	}
	d.coinsaccount.SetDB(db)
}

// GetStateDB get statedb
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set localdb
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB get localdb
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetCoinsAccount coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// GetName 默认名称
func (d *DriverBase) GetName() string {
	return "driver"
}

// GetExecAddr 执行器托管地址
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.child.GetName())
}

// CheckTx 默认不做额外检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// Exec 默认不支持任何 action
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrActionNotSupport
}

// ExecLocal 默认不生成本地索引
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) ([]*types.KeyValue, error) {
	return nil, nil
}

// Query defines query function
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcname = "Query_" + funcname
	method, ok := d.funcmap[funcname]
	if !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrQueryNotSupport
	}
	ty := method.Type
	if ty.NumIn() != 2 || ty.NumOut() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrQueryNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrQueryNotSupport
	}
	p := reflect.New(paramin.Elem())
	in, ok := p.Interface().(proto.Message)
	if !ok {
		blog.Error(funcname + " in param is not proto.Message")
		return nil, types.ErrQueryNotSupport
	}
	if err := types.Decode(params, in); err != nil {
		return nil, types.ErrDecode
	}
	return callQueryFunc(d.childValue, method, in)
}
