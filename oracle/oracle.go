// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle 基于 P256 VRF 的随机数服务, 订阅 oracle 主题.
// 执行器发起请求后, 等待若干高度再以回调交易的形式把随机数发回 execs 主题.
package oracle

import (
	"bytes"
	"crypto/rand"
	"sync"
	"time"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/common/vrf/p256"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var olog = log.New("module", "oracle")

// DisableLog disable log
func DisableLog() {
	olog.SetHandler(log.DiscardHandler())
}

// Oracle 随机数服务
type Oracle struct {
	cfg           *types.Oracle
	subscriptions map[uint64]bool
	priv          *p256.PrivateKey
	pub           *p256.PublicKey
	seed          []byte
	addr          string
	db            dbm.DB

	mu       sync.Mutex
	height   int64
	nonce    int64
	requests map[string]*types.OracleRequest
	pending  []string

	client  queue.Client
	funcMap queue.FuncMap
	done    chan struct{}
	wg      sync.WaitGroup
}

// New 由配置生成随机数服务, keySeed 为空时随机生成密钥.
// 状态保存在 db 中, db 为空时只保存在内存里
func New(cfg *types.Oracle, db dbm.DB) (*Oracle, error) {
	if db == nil {
		mem, err := dbm.NewGoMemDB("oracle", "", 0)
		if err != nil {
			return nil, err
		}
		db = mem
	}
	o := &Oracle{
		db:            db,
		cfg:           cfg,
		subscriptions: make(map[uint64]bool),
		addr:          address.ExecAddress(cfg.Name),
		requests:      make(map[string]*types.OracleRequest),
		done:          make(chan struct{}),
	}
	for _, id := range cfg.Subscriptions {
		o.subscriptions[id] = true
	}
	if cfg.KeySeed != "" {
		seed, err := common.FromHex(cfg.KeySeed)
		if err != nil || len(seed) == 0 {
			return nil, errors.Wrapf(types.ErrInvalidParam, "oracle keySeed %q", cfg.KeySeed)
		}
		o.priv, o.pub = p256.NewKeyFromSeed(seed)
	} else {
		var seed [32]byte
		if _, err := rand.Read(seed[:]); err != nil {
			return nil, err
		}
		o.priv, o.pub = p256.NewKeyFromSeed(seed[:])
	}
	if err := o.load(); err != nil {
		return nil, err
	}
	o.funcMap.Init()
	o.registerHandlers()
	olog.Info("oracle key", "addr", o.addr, "pubkey", common.ToHex(o.PublicKey()))
	return o, nil
}

// PublicKey 非压缩格式的 VRF 公钥, 用于校验证明
func (o *Oracle) PublicKey() []byte {
	return p256.MarshalPublicKey(o.pub)
}

// Address 回调交易的发送地址
func (o *Oracle) Address() string {
	return o.addr
}

// SetQueueClient 订阅 oracle 主题并开始出块
func (o *Oracle) SetQueueClient(client queue.Client) {
	o.client = client
	o.client.Sub("oracle")
	o.wg.Add(2)
	go func() {
		defer o.wg.Done()
		for msg := range o.client.Recv() {
			olog.Debug("oracle recv", "msg", msg)
			o.process(msg)
		}
		olog.Info("oracle queue closed")
	}()
	go func() {
		defer o.wg.Done()
		o.tickLoop(time.Duration(o.cfg.TickInterval) * time.Millisecond)
	}()
}

func (o *Oracle) process(msg *queue.Message) {
	exist, topic, ty, reply, err := o.funcMap.Process(msg)
	if !exist {
		msg.ReplyErr("oracle", types.ErrActionNotSupport)
		return
	}
	if err != nil {
		msg.Reply(o.client.NewMessage(topic, ty, err))
		return
	}
	msg.Reply(o.client.NewMessage(topic, ty, reply))
}

func (o *Oracle) registerHandlers() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(o.funcMap.Register(types.EventRequestRandomWords, func(msg *queue.Message) (string, int64, interface{}, error) {
		req, ok := msg.GetData().(*types.RandomWordsRequest)
		if !ok {
			return "", types.EventReplyRequestID, nil, types.ErrInvalidParam
		}
		id, err := o.RequestRandomWords(req)
		if err != nil {
			return "", types.EventReplyRequestID, nil, err
		}
		return "", types.EventReplyRequestID, &types.ReplyRequestID{RequestId: id}, nil
	}))
	must(o.funcMap.Register(types.EventGetOracleRequest, func(msg *queue.Message) (string, int64, interface{}, error) {
		req, ok := msg.GetData().(*types.ReqString)
		if !ok {
			return "", types.EventReplyOracleRequest, nil, types.ErrInvalidParam
		}
		reply, err := o.GetRequest(req.Data)
		return "", types.EventReplyOracleRequest, reply, err
	}))
	must(o.funcMap.Register(types.EventGetLastHeight, func(msg *queue.Message) (string, int64, interface{}, error) {
		return "", types.EventReplyLastHeight, &types.Int64{Data: o.Height()}, nil
	}))
}

func (o *Oracle) tickLoop(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			txs := o.advance()
			if len(txs) > 0 {
				o.wg.Add(1)
				go func() {
					defer o.wg.Done()
					o.sendCallbacks(txs)
				}()
			}
		case <-o.done:
			return
		}
	}
}

// 高度加一, 返回到期请求的回调交易
func (o *Oracle) advance() []*types.Transaction {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.height++
	var txs []*types.Transaction
	var fulfilled []*types.OracleRequest
	for _, req := range o.takeDue() {
		tx, err := o.fulfill(req)
		if err != nil {
			olog.Error("fulfill", "requestId", req.RequestId, "err", err)
			continue
		}
		txs = append(txs, tx)
		fulfilled = append(fulfilled, req)
	}
	if err := o.saveHeight(fulfilled); err != nil {
		olog.Error("advance", "height", o.height, "err", err)
	}
	o.updatePending()
	return txs
}

func (o *Oracle) blockHash(height int64) []byte {
	return common.ShaKeccak256(o.seed, int64Bytes(height))
}

func (o *Oracle) fulfill(req *types.OracleRequest) (*types.Transaction, error) {
	encode, ok := loadConsumer(req.Consumer)
	if !ok {
		return nil, errors.Wrapf(types.ErrExecNotFound, "consumer %q", req.Consumer)
	}
	m := common.ShaKeccak256([]byte(req.RequestId), o.blockHash(req.TargetHeight))
	output, proof := o.priv.Evaluate(m)
	verified, err := o.pub.ProofToHash(m, proof)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidProof, err.Error())
	}
	if !bytes.Equal(verified[:], output[:]) {
		return nil, types.ErrInvalidProof
	}
	req.RandomWords = expandWords(output, req.NumWords)
	req.Proof = proof
	req.Fulfilled = true
	metrics.Inc(metrics.OracleFulfilled)
	olog.Info("fulfill", "requestId", req.RequestId, "height", o.height, "consumer", req.Consumer)
	return &types.Transaction{
		Execer:  req.Consumer,
		Payload: encode(req.RequestId, req.RandomWords),
		From:    o.addr,
		Nonce:   req.Nonce,
	}, nil
}

// 回调不等待执行结果, 执行失败只在执行器中记录
func (o *Oracle) sendCallbacks(txs []*types.Transaction) {
	for _, tx := range txs {
		msg := o.client.NewMessage("execs", types.EventTx, tx)
		if err := o.client.SendTimeout(msg, false, queue.DefaultTimeout); err != nil {
			olog.Error("sendCallback", "execer", tx.Execer, "err", err)
		}
	}
}

func (o *Oracle) updatePending() {
	metrics.Gauge(metrics.OraclePending).Update(int64(len(o.pending)))
}

// Close 停止出块并关闭队列
func (o *Oracle) Close() {
	select {
	case <-o.done:
	default:
		close(o.done)
	}
	if o.client != nil {
		o.client.Close()
	}
	o.wg.Wait()
	olog.Info("oracle module closed")
}
