// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/coinflip/types"
)

//plugin 主要用于处理 execlocal 时候的全局kv的处理, 和具体的执行器无关
//每个插件都有是否开启的判断，如果不开启，执行的时候会被忽略

type plugin interface {
	CheckEnable(enable bool) bool
	ExecLocal(executor *Executor, tx *types.Transaction, result *types.TxResult) ([]*types.KeyValue, error)
}

var globalPlugins = make(map[string]plugin)

// RegisterPlugin register plugin
func RegisterPlugin(name string, p plugin) {
	if _, ok := globalPlugins[name]; ok {
		panic("plugin exist " + name)
	}
	globalPlugins[name] = p
}

// 按名称排序, 保证每次执行的顺序一致
func pluginNames() []string {
	names := make([]string, 0, len(globalPlugins))
	for name := range globalPlugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type pluginBase struct{}

func (base *pluginBase) CheckEnable(enable bool) bool {
	return enable
}

func init() {
	RegisterPlugin("txindex", &txindexPlugin{})
	RegisterPlugin("journal", &journalPlugin{})
}
