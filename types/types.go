// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/sha256"
	"encoding/json"

	proto "github.com/golang/protobuf/proto"
)

// Message 通用消息接口
type Message proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//Clone 深拷贝
func Clone(data proto.Message) proto.Message {
	return proto.Clone(data)
}

//MustDecode 数据是否已经编码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

//CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// MergeReceipt 合并两个收据
func MergeReceipt(receipt, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt
	}
	if receipt == nil {
		return receipt2
	}
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	receipt.KV = append(receipt.KV, receipt2.KV...)
	return receipt
}

// Hash 交易哈希
func (m *Transaction) Hash() []byte {
	data := sha256.Sum256(Encode(m))
	return data[:]
}

// Check 交易基本检查
func (m *Transaction) Check() error {
	if m.Execer == "" {
		return ErrExecNotFound
	}
	if m.Value < 0 || m.Value >= MaxCoin {
		return ErrAmount
	}
	if Size(m) > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	return nil
}
