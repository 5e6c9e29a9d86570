// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"encoding/binary"
	"sort"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// MaxRequestConfirmations 请求最多等待的高度
const MaxRequestConfirmations = 200

func int64Bytes(n int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(n))
	return b[:]
}

// requestID = keccak256(keyHash, subId, consumer, nonce)
func calcRequestID(keyHash string, subID uint64, consumer string, nonce int64) string {
	return common.ToHex(common.ShaKeccak256([]byte(keyHash), int64Bytes(int64(subID)), []byte(consumer), int64Bytes(nonce)))
}

// 第 i 个随机数 keccak256(output || i)
func expandWords(output [32]byte, n int32) [][]byte {
	words := make([][]byte, 0, n)
	for i := int32(0); i < n; i++ {
		words = append(words, common.ShaKeccak256(output[:], int64Bytes(int64(i))))
	}
	return words
}

func (o *Oracle) checkRequest(req *types.RandomWordsRequest) error {
	if _, ok := o.cfg.Lanes[req.KeyHash]; !ok {
		return errors.Wrapf(types.ErrInvalidKeyHash, "keyHash %s", req.KeyHash)
	}
	if !o.subscriptions[req.SubId] {
		return errors.Wrapf(types.ErrInvalidSubscription, "subId %d", req.SubId)
	}
	if req.MinimumRequestConfirmations < o.cfg.MinimumRequestConfirmations || req.MinimumRequestConfirmations > MaxRequestConfirmations {
		return errors.Wrapf(types.ErrInvalidConfirmations, "have %d want %d..%d",
			req.MinimumRequestConfirmations, o.cfg.MinimumRequestConfirmations, MaxRequestConfirmations)
	}
	if req.CallbackGasLimit > o.cfg.MaxGasLimit {
		return errors.Wrapf(types.ErrGasLimitTooBig, "have %d want <= %d", req.CallbackGasLimit, o.cfg.MaxGasLimit)
	}
	if req.NumWords < 1 || req.NumWords > o.cfg.MaxNumWords {
		return errors.Wrapf(types.ErrInvalidNumWords, "have %d want 1..%d", req.NumWords, o.cfg.MaxNumWords)
	}
	if _, ok := loadConsumer(req.Consumer); !ok {
		return errors.Wrapf(types.ErrExecNotFound, "consumer %q", req.Consumer)
	}
	return nil
}

// RequestRandomWords 登记一个随机数请求, 在 当前高度+confirmations 时回调
func (o *Oracle) RequestRandomWords(req *types.RandomWordsRequest) (string, error) {
	if err := o.checkRequest(req); err != nil {
		olog.Error("RequestRandomWords", "consumer", req.Consumer, "err", err)
		return "", err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	nonce := o.nonce + 1
	id := calcRequestID(req.KeyHash, req.SubId, req.Consumer, nonce)
	if _, ok := o.requests[id]; ok {
		return "", types.ErrOracleRequestExist
	}
	stored := &types.OracleRequest{
		RequestId:        id,
		KeyHash:          req.KeyHash,
		SubId:            req.SubId,
		Consumer:         req.Consumer,
		NumWords:         req.NumWords,
		CallbackGasLimit: req.CallbackGasLimit,
		Nonce:            nonce,
		RequestHeight:    o.height,
		TargetHeight:     o.height + int64(req.MinimumRequestConfirmations),
	}
	if err := o.saveRequest(stored); err != nil {
		olog.Error("RequestRandomWords", "requestId", id, "err", err)
		return "", err
	}
	o.nonce = nonce
	o.requests[id] = stored
	o.pending = append(o.pending, id)
	o.updatePending()
	metrics.Inc(metrics.OracleRequests)
	olog.Info("RequestRandomWords", "requestId", id, "consumer", req.Consumer, "target", o.height+int64(req.MinimumRequestConfirmations))
	return id, nil
}

// GetRequest 查询请求
func (o *Oracle) GetRequest(id string) (*types.OracleRequest, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	req, ok := o.requests[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return types.Clone(req).(*types.OracleRequest), nil
}

// PendingCount 等待回调的请求数
func (o *Oracle) PendingCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

// Height 当前高度
func (o *Oracle) Height() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.height
}

// 取出到期的请求, 按 nonce 排序
func (o *Oracle) takeDue() []*types.OracleRequest {
	var due []*types.OracleRequest
	rest := o.pending[:0]
	for _, id := range o.pending {
		req := o.requests[id]
		if req.TargetHeight <= o.height {
			due = append(due, req)
		} else {
			rest = append(rest, id)
		}
	}
	o.pending = rest
	sort.Slice(due, func(i, j int) bool { return due[i].Nonce < due[j].Nonce })
	return due
}
