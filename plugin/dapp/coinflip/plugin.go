// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coinflip 托管押金的猜硬币游戏插件
package coinflip

import (
	"github.com/33cn/coinflip/oracle"
	"github.com/33cn/coinflip/plugin/dapp/coinflip/commands"
	"github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	"github.com/33cn/coinflip/plugin/dapp/coinflip/rpc"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coinflip",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.CoinflipCmd,
		RPC:      rpc.Init,
	})
	oracle.RegisterConsumer(ct.CoinflipX, ct.EncodeFulfill)
}
