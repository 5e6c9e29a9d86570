// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import "sync"

// EncodeCallback 把随机数编码为消费者执行器的回调 payload
type EncodeCallback func(requestID string, words [][]byte) []byte

var (
	consumerMu sync.RWMutex
	consumers  = make(map[string]EncodeCallback)
)

// RegisterConsumer 注册可以接收随机数回调的执行器, 重复注册时 panic
func RegisterConsumer(execer string, encode EncodeCallback) {
	if execer == "" || encode == nil {
		panic("oracle: register empty consumer")
	}
	consumerMu.Lock()
	defer consumerMu.Unlock()
	if _, dup := consumers[execer]; dup {
		panic("oracle: RegisterConsumer called twice for " + execer)
	}
	consumers[execer] = encode
}

func loadConsumer(execer string) (EncodeCallback, bool) {
	consumerMu.RLock()
	defer consumerMu.RUnlock()
	encode, ok := consumers[execer]
	return encode, ok
}
