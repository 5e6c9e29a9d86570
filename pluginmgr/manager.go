// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr dapp 插件注册
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/rpc/types"
	"github.com/spf13/cobra"
)

var pluginItems = make(map[string]Plugin)

var once = &sync.Once{}

// InitExec 初始化所有插件的执行器, 只执行一次
func InitExec(sub map[string][]byte) {
	once.Do(func() {
		for _, item := range sortedItems() {
			item.InitExec(sub)
		}
	})
}

// HasExec 是否有插件提供该执行器
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件, 重名时 panic
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 添加所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}

// AddRPC 注册所有插件的 rpc
func AddRPC(s types.RPCServer) {
	for _, item := range sortedItems() {
		item.AddRPC(s)
	}
}

func sortedItems() []Plugin {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]Plugin, 0, len(names))
	for _, name := range names {
		items = append(items, pluginItems[name])
	}
	return items
}
