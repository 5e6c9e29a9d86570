// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
)

// DriverCreate 驱动构造函数
type DriverCreate func() Driver

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
)

// Register 注册驱动, 同名注册两次会 panic
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if len(name) == 0 {
		panic("empty name string")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[address.ExecAddress(name)] = name
}

// LoadDriver 创建一个新的驱动实例
func LoadDriver(name string) (driver Driver, err error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		return nil, types.ErrExecNotFound
	}
	return c(), nil
}

// IsDriverAddress 是否是某个已注册执行器的地址
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// ListDrivers 已注册的驱动名称
func ListDrivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
