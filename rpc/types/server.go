// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc 服务端与插件之间的接口, 以及 json 返回结构
package types

import (
	"net/rpc"
	"time"

	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// RPCServer 插件注册 rpc 时可以拿到的服务端
type RPCServer interface {
	GetQueueClient() queue.Client
	JRPC() *rpc.Server
	Timeout() time.Duration
}

// ChannelClient 通过消息队列访问执行器和随机数服务
type ChannelClient struct {
	client  queue.Client
	timeout time.Duration
}

// Init 在 s 上以 name 注册 jrpc (可以为空)
func (c *ChannelClient) Init(name string, s RPCServer, jrpc interface{}) {
	c.client = s.GetQueueClient()
	c.timeout = s.Timeout()
	if c.timeout <= 0 {
		c.timeout = queue.DefaultTimeout
	}
	if jrpc != nil {
		if err := s.JRPC().RegisterName(name, jrpc); err != nil {
			panic(err)
		}
	}
}

func (c *ChannelClient) call(topic string, ty int64, data interface{}) (interface{}, error) {
	msg := c.client.NewMessage(topic, ty, data)
	if err := c.client.SendTimeout(msg, true, c.timeout); err != nil {
		return nil, errors.Wrapf(err, "send %s", types.GetEventName(int(ty)))
	}
	reply, err := c.client.WaitTimeout(msg, c.timeout)
	if err != nil {
		return nil, err
	}
	if r, ok := reply.GetData().(*types.Reply); ok && !r.IsOk {
		return nil, errors.New(string(r.Msg))
	}
	return reply.GetData(), nil
}

// SendTx 执行交易, 返回执行结果
func (c *ChannelClient) SendTx(tx *types.Transaction) (*types.TxResult, error) {
	data, err := c.call("execs", types.EventTx, tx)
	if err != nil {
		return nil, err
	}
	result, ok := data.(*types.TxResult)
	if !ok {
		return nil, types.ErrTypeAsset
	}
	return result, nil
}

// Query 执行器查询
func (c *ChannelClient) Query(execer, funcName string, req types.Message) (types.Message, error) {
	query := &types.Query{Execer: execer, FuncName: funcName, Payload: types.Encode(req)}
	data, err := c.call("execs", types.EventQuery, query)
	if err != nil {
		return nil, err
	}
	msg, ok := data.(types.Message)
	if !ok {
		return nil, types.ErrTypeAsset
	}
	return msg, nil
}

// GetBalance 账户余额
func (c *ChannelClient) GetBalance(req *types.ReqBalance) (*types.Accounts, error) {
	data, err := c.call("execs", types.EventGetBalance, req)
	if err != nil {
		return nil, err
	}
	accs, ok := data.(*types.Accounts)
	if !ok {
		return nil, types.ErrTypeAsset
	}
	return accs, nil
}

// ListEvents 事件流水
func (c *ChannelClient) ListEvents(req *types.ReqListEvents) (*types.EventRecords, error) {
	data, err := c.call("execs", types.EventListEvents, req)
	if err != nil {
		return nil, err
	}
	records, ok := data.(*types.EventRecords)
	if !ok {
		return nil, types.ErrTypeAsset
	}
	return records, nil
}

// GetOracleRequest 随机数服务中的请求
func (c *ChannelClient) GetOracleRequest(requestID string) (*types.OracleRequest, error) {
	data, err := c.call("oracle", types.EventGetOracleRequest, &types.ReqString{Data: requestID})
	if err != nil {
		return nil, err
	}
	req, ok := data.(*types.OracleRequest)
	if !ok {
		return nil, types.ErrTypeAsset
	}
	return req, nil
}
