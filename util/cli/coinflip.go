// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 节点和命令行客户端的入口
package cli

import (
	"flag"
	"net/http"
	_ "net/http/pprof" //
	"os"
	"time"

	"github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/common/limits"
	clog "github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/oracle"
	cfexec "github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	"github.com/33cn/coinflip/pluginmgr"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/rpc"
	"github.com/33cn/coinflip/types"
	"github.com/33cn/coinflip/util"
	"github.com/inconshreveable/log15"
)

var mlog = log15.New("module", "main")

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of coinflip, include logs and datas")
)

//RunCoinflip : run the node, name 为配置文件名前缀
func RunCoinflip(name string) {
	flag.Parse()
	if *configPath == "" {
		if name == "" {
			*configPath = "coinflip.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	if err := os.Chdir(util.Pwd()); err != nil {
		panic(err)
	}
	if err := limits.SetLimits(); err != nil {
		panic(err)
	}
	cfg, sub := types.InitCfg(*configPath)
	if *datadir != "" {
		util.ResetDatadir(cfg, *datadir)
	}
	clog.SetFileLog(cfg.Log)
	defer clog.Close()
	mlog.Info("loading config", "title", cfg.Title, "file", *configPath)

	if cfg.Pprof != nil && cfg.Pprof.ListenAddr != "" {
		go func() {
			err := http.ListenAndServe(cfg.Pprof.ListenAddr, nil)
			if err != nil {
				mlog.Info("ListenAndServe", "listen addr", cfg.Pprof.ListenAddr, "err", err)
			}
		}()
	}

	mlog.Info("loading db", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	if cfg.Store.Driver != "memdb" && !util.CheckPathExists(cfg.Store.DbPath) {
		if err := util.MakeDir(cfg.Store.DbPath); err != nil {
			panic(err)
		}
	}
	dbm := db.NewDB("coinflip", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)

	mlog.Info("loading queue")
	q := queue.New("channel")

	mlog.Info("loading execs module")
	pluginmgr.InitExec(sub.Exec)
	exec := executor.New(cfg, dbm)
	if err := exec.Genesis(cfg.Genesis); err != nil {
		panic(err)
	}
	exec.SetQueueClient(q.Client())

	var vrf *oracle.Oracle
	if cfg.Oracle.Enable {
		mlog.Info("loading oracle module")
		o, err := oracle.New(cfg.Oracle, dbm)
		if err != nil {
			panic(err)
		}
		o.SetQueueClient(q.Client())
		vrf = o
		mlog.Info("oracle ready", "addr", o.Address())
		cfexec.SetCoordinator(cfexec.NewQueueCoordinator(q.Client(), time.Duration(cfg.RPC.TxTimeout)*time.Second))
	}

	mlog.Info("loading rpc module")
	r := rpc.New(cfg.RPC)
	r.SetQueueClient(q.Client())

	metrics.StartMetrics(cfg.Metrics)

	defer func() {
		mlog.Info("begin close rpc module")
		r.Close()
		if vrf != nil {
			mlog.Info("begin close oracle module")
			vrf.Close()
		}
		mlog.Info("begin close execs module")
		exec.Close()
		metrics.StopMetrics()
		mlog.Info("begin close queue module")
		q.Close()
		dbm.Close()
	}()

	q.Start()
}
