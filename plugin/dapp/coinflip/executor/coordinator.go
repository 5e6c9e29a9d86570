// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"time"

	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
)

// Coordinator 随机数服务, 返回请求编号, 结果通过 fulfill 交易回调
type Coordinator interface {
	RequestRandomWords(req *types.RandomWordsRequest) (string, error)
}

type queueCoordinator struct {
	client  queue.Client
	timeout time.Duration
}

// NewQueueCoordinator 通过消息队列的 oracle 主题请求随机数
func NewQueueCoordinator(client queue.Client, timeout time.Duration) Coordinator {
	if timeout <= 0 {
		timeout = queue.DefaultTimeout
	}
	return &queueCoordinator{client: client, timeout: timeout}
}

func (q *queueCoordinator) RequestRandomWords(req *types.RandomWordsRequest) (string, error) {
	msg := q.client.NewMessage("oracle", types.EventRequestRandomWords, req)
	if err := q.client.SendTimeout(msg, true, q.timeout); err != nil {
		return "", err
	}
	reply, err := q.client.WaitTimeout(msg, q.timeout)
	if err != nil {
		return "", err
	}
	id, ok := reply.GetData().(*types.ReplyRequestID)
	if !ok || id.RequestId == "" {
		return "", types.ErrOracleUnavailable
	}
	return id.RequestId, nil
}
