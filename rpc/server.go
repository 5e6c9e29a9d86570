// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc 服务, 各个插件通过 pluginmgr 注册自己的方法
package rpc

import (
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/33cn/coinflip/pluginmgr"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
	log15 "github.com/inconshreveable/log15"
)

var log = log15.New("module", "rpc")

// RPC json rpc 模块
type RPC struct {
	cfg       *types.RPC
	whitelist map[string]bool
	client    queue.Client
	server    *rpc.Server
	listener  net.Listener
	httpSrv   *http.Server
}

// New produce a rpc by cfg
func New(cfg *types.RPC) *RPC {
	r := &RPC{
		cfg:       cfg,
		whitelist: make(map[string]bool),
		server:    rpc.NewServer(),
	}
	for _, ip := range cfg.Whitelist {
		r.whitelist[ip] = true
	}
	return r
}

// GetQueueClient get queue client
func (r *RPC) GetQueueClient() queue.Client {
	return r.client
}

// JRPC get json rpc server
func (r *RPC) JRPC() *rpc.Server {
	return r.server
}

// Timeout 等待执行结果的超时时间
func (r *RPC) Timeout() time.Duration {
	return time.Duration(r.cfg.TxTimeout) * time.Second
}

// SetQueueClient 注册所有插件的 rpc 并开始监听
func (r *RPC) SetQueueClient(c queue.Client) {
	r.SetQueueClientNoListen(c)
	if _, err := r.Listen(); err != nil {
		panic(err)
	}
}

// SetQueueClientNoListen set queue client with no listen
func (r *RPC) SetQueueClientNoListen(c queue.Client) {
	r.client = c
	pluginmgr.AddRPC(r)
}

// Listen 监听 jrpcBindAddr, 返回实际的端口
func (r *RPC) Listen() (int, error) {
	listener, err := net.Listen("tcp", r.cfg.JrpcBindAddr)
	if err != nil {
		return 0, err
	}
	r.listener = listener
	r.httpSrv = &http.Server{Handler: r.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		err := r.httpSrv.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			log.Error("jrpc serve", "err", err)
		}
	}()
	port := listener.Addr().(*net.TCPAddr).Port
	log.Info("jrpc listen", "addr", listener.Addr().String())
	return port, nil
}

// Close rpc close
func (r *RPC) Close() {
	if r.httpSrv != nil {
		if err := r.httpSrv.Close(); err != nil {
			log.Error("jrpc close", "err", err)
		}
	}
	if r.client != nil {
		r.client.Close()
	}
}
