// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import "errors"

// ErrMessageIDExisted 重复注册
var ErrMessageIDExisted = errors.New("ErrMessageIDExisted")

type msgcallback func(*Message) (string, int64, interface{}, error)

// FuncMap 按消息类型分发处理函数, 处理函数返回 (回复topic, 回复类型, 回复数据, 错误)
type FuncMap struct {
	funcmap map[int]msgcallback
}

// Init 初始化
func (qfm *FuncMap) Init() {
	qfm.funcmap = make(map[int]msgcallback)
}

// Register 注册消息处理函数
func (qfm *FuncMap) Register(msgid int, fn msgcallback) error {
	if _, ok := qfm.funcmap[msgid]; ok {
		return ErrMessageIDExisted
	}
	qfm.funcmap[msgid] = fn
	return nil
}

// UnRegister 注销
func (qfm *FuncMap) UnRegister(msgid int) {
	delete(qfm.funcmap, msgid)
}

// Process 第一个返回值表示是否存在处理函数
func (qfm *FuncMap) Process(msg *Message) (bool, string, int64, interface{}, error) {
	msgid := int(msg.Ty)
	fn, ok := qfm.funcmap[msgid]
	if !ok {
		return false, "", 0, nil, nil
	}
	topic, retty, reply, err := fn(msg)
	return true, topic, retty, reply, err
}
