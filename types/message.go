// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Account 账户信息
type Account struct {
	Currency int32  `protobuf:"varint,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Balance  int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	Frozen   int64  `protobuf:"varint,3,opt,name=frozen,proto3" json:"frozen,omitempty"`
	Addr     string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// GetBalance nil safe
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetFrozen nil safe
func (m *Account) GetFrozen() int64 {
	if m != nil {
		return m.Frozen
	}
	return 0
}

// GetAddr nil safe
func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReceiptAccountTransfer 账户转账前后状态
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

// ReceiptExecAccountTransfer 执行器账户转账前后状态
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `protobuf:"bytes,1,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
	Prev     *Account `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	Current  *Account `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptExecAccountTransfer) Reset()         { *m = ReceiptExecAccountTransfer{} }
func (m *ReceiptExecAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptExecAccountTransfer) ProtoMessage()    {}

// KeyValue 状态数据
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

// GetKey nil safe
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return proto.CompactTextString(m) }
func (*ReceiptLog) ProtoMessage()    {}

// Receipt 交易执行收据
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

// GetTy get ty
func (m *Receipt) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// Transaction 交易. Value 是随交易一起存入执行器托管地址的金额
type Transaction struct {
	Execer  string `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	From    string `protobuf:"bytes,3,opt,name=from,proto3" json:"from,omitempty"`
	Value   int64  `protobuf:"varint,4,opt,name=value,proto3" json:"value,omitempty"`
	Nonce   int64  `protobuf:"varint,5,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

// GetExecer get execer
func (m *Transaction) GetExecer() string {
	if m != nil {
		return m.Execer
	}
	return ""
}

// GetFrom get from
func (m *Transaction) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

// TxResult 交易执行结果
type TxResult struct {
	Hash  []byte        `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	Ty    int32         `protobuf:"varint,2,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs  []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
	Error string        `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	Seq   int64         `protobuf:"varint,5,opt,name=seq,proto3" json:"seq,omitempty"`
}

func (m *TxResult) Reset()         { *m = TxResult{} }
func (m *TxResult) String() string { return proto.CompactTextString(m) }
func (*TxResult) ProtoMessage()    {}

// Reply 通用回复
type Reply struct {
	IsOk bool   `protobuf:"varint,1,opt,name=isOk,proto3" json:"isOk,omitempty"`
	Msg  []byte `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *Reply) Reset()         { *m = Reply{} }
func (m *Reply) String() string { return proto.CompactTextString(m) }
func (*Reply) ProtoMessage()    {}

// ReqString 字符串请求
type ReqString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReqString) Reset()         { *m = ReqString{} }
func (m *ReqString) String() string { return proto.CompactTextString(m) }
func (*ReqString) ProtoMessage()    {}

// Int64 整数
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return proto.CompactTextString(m) }
func (*Int64) ProtoMessage()    {}

// ReqBalance 余额查询. Execer 为空时查询coins账户
type ReqBalance struct {
	Addresses []string `protobuf:"bytes,1,rep,name=addresses,proto3" json:"addresses,omitempty"`
	Execer    string   `protobuf:"bytes,2,opt,name=execer,proto3" json:"execer,omitempty"`
}

func (m *ReqBalance) Reset()         { *m = ReqBalance{} }
func (m *ReqBalance) String() string { return proto.CompactTextString(m) }
func (*ReqBalance) ProtoMessage()    {}

// GetAddresses get addresses
func (m *ReqBalance) GetAddresses() []string {
	if m != nil {
		return m.Addresses
	}
	return nil
}

// GetExecer get execer
func (m *ReqBalance) GetExecer() string {
	if m != nil {
		return m.Execer
	}
	return ""
}

// Accounts 账户列表
type Accounts struct {
	Acc []*Account `protobuf:"bytes,1,rep,name=acc,proto3" json:"acc,omitempty"`
}

func (m *Accounts) Reset()         { *m = Accounts{} }
func (m *Accounts) String() string { return proto.CompactTextString(m) }
func (*Accounts) ProtoMessage()    {}

// Query 执行器查询
type Query struct {
	Execer   string `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	FuncName string `protobuf:"bytes,2,opt,name=funcName,proto3" json:"funcName,omitempty"`
	Payload  []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *Query) Reset()         { *m = Query{} }
func (m *Query) String() string { return proto.CompactTextString(m) }
func (*Query) ProtoMessage()    {}

// EventRecord 本地事件流水
type EventRecord struct {
	Seq    int64  `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	TxHash []byte `protobuf:"bytes,2,opt,name=txHash,proto3" json:"txHash,omitempty"`
	Execer string `protobuf:"bytes,3,opt,name=execer,proto3" json:"execer,omitempty"`
	Ty     int32  `protobuf:"varint,4,opt,name=ty,proto3" json:"ty,omitempty"`
	Log    []byte `protobuf:"bytes,5,opt,name=log,proto3" json:"log,omitempty"`
	Height int64  `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *EventRecord) Reset()         { *m = EventRecord{} }
func (m *EventRecord) String() string { return proto.CompactTextString(m) }
func (*EventRecord) ProtoMessage()    {}

// ReqListEvents 事件分页查询
type ReqListEvents struct {
	StartSeq int64  `protobuf:"varint,1,opt,name=startSeq,proto3" json:"startSeq,omitempty"`
	Count    int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Execer   string `protobuf:"bytes,3,opt,name=execer,proto3" json:"execer,omitempty"`
}

func (m *ReqListEvents) Reset()         { *m = ReqListEvents{} }
func (m *ReqListEvents) String() string { return proto.CompactTextString(m) }
func (*ReqListEvents) ProtoMessage()    {}

// EventRecords 事件列表
type EventRecords struct {
	Records []*EventRecord `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *EventRecords) Reset()         { *m = EventRecords{} }
func (m *EventRecords) String() string { return proto.CompactTextString(m) }
func (*EventRecords) ProtoMessage()    {}
