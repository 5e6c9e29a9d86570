// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 在一个进程内启动完整节点: 队列, 执行器, 随机数服务, rpc
package testnode

import (
	"fmt"
	"strings"
	"time"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/oracle"
	cfexec "github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	"github.com/33cn/coinflip/pluginmgr"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/rpc"
	"github.com/33cn/coinflip/rpc/jsonclient"
	"github.com/33cn/coinflip/types"
	"github.com/inconshreveable/log15"
)

var nodelog = log15.New("module", "testnode")

// CoinflipMock 测试节点
type CoinflipMock struct {
	q      queue.Queue
	client queue.Client
	db     dbm.DB
	exec   *executor.Executor
	oracle *oracle.Oracle
	rpc    *rpc.RPC
	cfg    *types.Config
}

// GetDefaultConfig 默认配置: 内存数据库, 随机端口, 出块间隔 20ms
func GetDefaultConfig() (*types.Config, *types.ConfigSubModule) {
	cfg, sub := types.InitCfgString(types.GetDefaultCfgstring())
	cfg.Store.Driver = "memdb"
	cfg.RPC.JrpcBindAddr = "localhost:0"
	cfg.Oracle.TickInterval = 20
	return cfg, sub
}

// New cfgpath 为空时使用 GetDefaultConfig
func New(cfgpath string) *CoinflipMock {
	var cfg *types.Config
	var sub *types.ConfigSubModule
	if cfgpath == "" {
		cfg, sub = GetDefaultConfig()
	} else {
		cfg, sub = types.InitCfg(cfgpath)
	}
	return NewWithConfig(cfg, sub)
}

// NewWithConfig 按配置启动各个模块, rpc 需要调用 Listen 才开始监听
func NewWithConfig(cfg *types.Config, sub *types.ConfigSubModule) *CoinflipMock {
	q := queue.New("channel")
	mock := &CoinflipMock{q: q, cfg: cfg}
	mock.db = dbm.NewDB("coinflip", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)

	pluginmgr.InitExec(sub.Exec)
	mock.exec = executor.New(cfg, mock.db)
	if err := mock.exec.Genesis(cfg.Genesis); err != nil {
		panic(err)
	}
	mock.exec.SetQueueClient(q.Client())

	if cfg.Oracle.Enable {
		o, err := oracle.New(cfg.Oracle, mock.db)
		if err != nil {
			panic(err)
		}
		o.SetQueueClient(q.Client())
		mock.oracle = o
		cfexec.SetCoordinator(cfexec.NewQueueCoordinator(q.Client(), time.Duration(cfg.RPC.TxTimeout)*time.Second))
	}

	mock.rpc = rpc.New(cfg.RPC)
	mock.rpc.SetQueueClientNoListen(q.Client())
	mock.client = q.Client()
	return mock
}

// Listen 开始监听, 端口为 0 时改写为实际端口
func (mock *CoinflipMock) Listen() {
	port, err := mock.rpc.Listen()
	if err != nil {
		panic(err)
	}
	if strings.HasSuffix(mock.cfg.RPC.JrpcBindAddr, ":0") {
		l := len(mock.cfg.RPC.JrpcBindAddr)
		mock.cfg.RPC.JrpcBindAddr = mock.cfg.RPC.JrpcBindAddr[0:l-2] + ":" + fmt.Sprint(port)
	}
	nodelog.Info("testnode listen", "addr", mock.cfg.RPC.JrpcBindAddr)
}

// GetJSONC json rpc 客户端
func (mock *CoinflipMock) GetJSONC() *jsonclient.JSONClient {
	client, err := jsonclient.NewJSONClient(mock.cfg.RPC.JrpcBindAddr)
	if err != nil {
		return nil
	}
	return client
}

// GetClient 队列客户端
func (mock *CoinflipMock) GetClient() queue.Client {
	return mock.client
}

// GetExec 执行器模块
func (mock *CoinflipMock) GetExec() *executor.Executor {
	return mock.exec
}

// GetOracle 随机数服务, 未开启时为 nil
func (mock *CoinflipMock) GetOracle() *oracle.Oracle {
	return mock.oracle
}

// GetRPC rpc 模块
func (mock *CoinflipMock) GetRPC() *rpc.RPC {
	return mock.rpc
}

// GetCfg 配置
func (mock *CoinflipMock) GetCfg() *types.Config {
	return mock.cfg
}

// WaitHeight 等待随机数服务到达高度
func (mock *CoinflipMock) WaitHeight(height int64) error {
	for {
		msg := mock.client.NewMessage("oracle", types.EventGetLastHeight, nil)
		if err := mock.client.Send(msg, true); err != nil {
			return err
		}
		reply, err := mock.client.Wait(msg)
		if err != nil {
			return err
		}
		if reply.GetData().(*types.Int64).Data >= height {
			return nil
		}
		time.Sleep(mock.tick())
	}
}

func (mock *CoinflipMock) tick() time.Duration {
	return time.Duration(mock.cfg.Oracle.TickInterval) * time.Millisecond
}

// Close 关闭所有模块
func (mock *CoinflipMock) Close() {
	mock.rpc.Close()
	if mock.oracle != nil {
		mock.oracle.Close()
	}
	mock.exec.Close()
	mock.client.Close()
	mock.q.Close()
	mock.db.Close()
}
