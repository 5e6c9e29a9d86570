// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// ReqNil 空请求
type ReqNil struct {
}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return proto.CompactTextString(m) }
func (*ReqNil) ProtoMessage()    {}

// RandomWordsRequest 随机数请求, Consumer 为回调的执行器名
type RandomWordsRequest struct {
	KeyHash                     string `protobuf:"bytes,1,opt,name=keyHash,proto3" json:"keyHash,omitempty"`
	SubId                       uint64 `protobuf:"varint,2,opt,name=subId,proto3" json:"subId,omitempty"`
	MinimumRequestConfirmations int32  `protobuf:"varint,3,opt,name=minimumRequestConfirmations,proto3" json:"minimumRequestConfirmations,omitempty"`
	CallbackGasLimit            int32  `protobuf:"varint,4,opt,name=callbackGasLimit,proto3" json:"callbackGasLimit,omitempty"`
	NumWords                    int32  `protobuf:"varint,5,opt,name=numWords,proto3" json:"numWords,omitempty"`
	Consumer                    string `protobuf:"bytes,6,opt,name=consumer,proto3" json:"consumer,omitempty"`
}

func (m *RandomWordsRequest) Reset()         { *m = RandomWordsRequest{} }
func (m *RandomWordsRequest) String() string { return proto.CompactTextString(m) }
func (*RandomWordsRequest) ProtoMessage()    {}

// ReplyRequestID 随机数请求编号
type ReplyRequestID struct {
	RequestId string `protobuf:"bytes,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
}

func (m *ReplyRequestID) Reset()         { *m = ReplyRequestID{} }
func (m *ReplyRequestID) String() string { return proto.CompactTextString(m) }
func (*ReplyRequestID) ProtoMessage()    {}

// OracleRequest 随机数服务保存的请求
type OracleRequest struct {
	RequestId        string   `protobuf:"bytes,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
	KeyHash          string   `protobuf:"bytes,2,opt,name=keyHash,proto3" json:"keyHash,omitempty"`
	SubId            uint64   `protobuf:"varint,3,opt,name=subId,proto3" json:"subId,omitempty"`
	Consumer         string   `protobuf:"bytes,4,opt,name=consumer,proto3" json:"consumer,omitempty"`
	NumWords         int32    `protobuf:"varint,5,opt,name=numWords,proto3" json:"numWords,omitempty"`
	CallbackGasLimit int32    `protobuf:"varint,6,opt,name=callbackGasLimit,proto3" json:"callbackGasLimit,omitempty"`
	Nonce            int64    `protobuf:"varint,7,opt,name=nonce,proto3" json:"nonce,omitempty"`
	RequestHeight    int64    `protobuf:"varint,8,opt,name=requestHeight,proto3" json:"requestHeight,omitempty"`
	TargetHeight     int64    `protobuf:"varint,9,opt,name=targetHeight,proto3" json:"targetHeight,omitempty"`
	Fulfilled        bool     `protobuf:"varint,10,opt,name=fulfilled,proto3" json:"fulfilled,omitempty"`
	RandomWords      [][]byte `protobuf:"bytes,11,rep,name=randomWords,proto3" json:"randomWords,omitempty"`
	Proof            []byte   `protobuf:"bytes,12,opt,name=proof,proto3" json:"proof,omitempty"`
}

func (m *OracleRequest) Reset()         { *m = OracleRequest{} }
func (m *OracleRequest) String() string { return proto.CompactTextString(m) }
func (*OracleRequest) ProtoMessage()    {}
