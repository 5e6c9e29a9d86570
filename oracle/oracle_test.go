// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"testing"
	"time"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/common/vrf/p256"
	"github.com/33cn/coinflip/queue"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyHash = "0x474e34a077df58807dbe9c96d3c009b23b3c6d0cce433e59bbf5b34f823bc56c"

func init() {
	queue.DisableLog()
	DisableLog()
	RegisterConsumer("echo", func(requestID string, words [][]byte) []byte {
		return types.Encode(&types.ReqString{Data: requestID})
	})
}

func newConfig() *types.Oracle {
	cfg, _ := types.InitCfgString(types.GetDefaultCfgstring())
	return cfg.Oracle
}

func newOracle(t *testing.T) *Oracle {
	o, err := New(newConfig(), nil)
	require.NoError(t, err)
	return o
}

func newRequest() *types.RandomWordsRequest {
	return &types.RandomWordsRequest{
		KeyHash:                     keyHash,
		SubId:                       1,
		MinimumRequestConfirmations: 3,
		CallbackGasLimit:            100000,
		NumWords:                    1,
		Consumer:                    "echo",
	}
}

func TestNewKeySeed(t *testing.T) {
	cfg := newConfig()
	cfg.KeySeed = "0x0102030405"
	o1, err := New(cfg, nil)
	require.NoError(t, err)
	o2, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, o1.PublicKey(), o2.PublicKey())
	assert.Equal(t, address.ExecAddress("vrfcoordinator"), o1.Address())

	cfg.KeySeed = "zz"
	_, err = New(cfg, nil)
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
	cfg.KeySeed = "0x"
	_, err = New(cfg, nil)
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
}

func TestRequestValidation(t *testing.T) {
	o := newOracle(t)
	cases := []struct {
		modify func(*types.RandomWordsRequest)
		err    error
	}{
		{func(r *types.RandomWordsRequest) { r.KeyHash = "0x01" }, types.ErrInvalidKeyHash},
		{func(r *types.RandomWordsRequest) { r.SubId = 2 }, types.ErrInvalidSubscription},
		{func(r *types.RandomWordsRequest) { r.MinimumRequestConfirmations = 2 }, types.ErrInvalidConfirmations},
		{func(r *types.RandomWordsRequest) { r.MinimumRequestConfirmations = 201 }, types.ErrInvalidConfirmations},
		{func(r *types.RandomWordsRequest) { r.CallbackGasLimit = 2500001 }, types.ErrGasLimitTooBig},
		{func(r *types.RandomWordsRequest) { r.NumWords = 0 }, types.ErrInvalidNumWords},
		{func(r *types.RandomWordsRequest) { r.NumWords = 501 }, types.ErrInvalidNumWords},
		{func(r *types.RandomWordsRequest) { r.Consumer = "nobody" }, types.ErrExecNotFound},
	}
	for i, c := range cases {
		req := newRequest()
		c.modify(req)
		_, err := o.RequestRandomWords(req)
		assert.Equal(t, c.err, errors.Cause(err), "case %d", i)
	}
	assert.Equal(t, 0, o.PendingCount())

	req := newRequest()
	req.MinimumRequestConfirmations = MaxRequestConfirmations
	_, err := o.RequestRandomWords(req)
	assert.NoError(t, err)
}

func TestRequestAndFulfill(t *testing.T) {
	o := newOracle(t)
	id1, err := o.RequestRandomWords(newRequest())
	require.NoError(t, err)
	id2, err := o.RequestRandomWords(newRequest())
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, calcRequestID(keyHash, 1, "echo", 1), id1)
	assert.Equal(t, 2, o.PendingCount())

	req, err := o.GetRequest(id1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), req.RequestHeight)
	assert.Equal(t, int64(3), req.TargetHeight)
	assert.False(t, req.Fulfilled)
	_, err = o.GetRequest("0x00")
	assert.Equal(t, types.ErrNotFound, err)

	assert.Empty(t, o.advance())
	assert.Empty(t, o.advance())
	txs := o.advance()
	require.Len(t, txs, 2)
	assert.Equal(t, int64(3), o.Height())
	assert.Equal(t, 0, o.PendingCount())

	tx := txs[0]
	assert.Equal(t, "echo", tx.Execer)
	assert.Equal(t, o.Address(), tx.From)
	var payload types.ReqString
	require.NoError(t, types.Decode(tx.Payload, &payload))
	assert.Equal(t, id1, payload.Data)

	req, err = o.GetRequest(id1)
	require.NoError(t, err)
	assert.True(t, req.Fulfilled)
	require.Len(t, req.RandomWords, 1)
	assert.Len(t, req.RandomWords[0], 32)

	// 证明可以用公钥独立校验
	pub, err := p256.ParsePublicKey(o.PublicKey())
	require.NoError(t, err)
	m := common.ShaKeccak256([]byte(id1), o.blockHash(req.TargetHeight))
	output, err := pub.ProofToHash(m, req.Proof)
	require.NoError(t, err)
	assert.Equal(t, common.ShaKeccak256(output[:], int64Bytes(0)), req.RandomWords[0])

	other, err := o.GetRequest(id2)
	require.NoError(t, err)
	assert.NotEqual(t, req.RandomWords[0], other.RandomWords[0])
}

func TestExpandWords(t *testing.T) {
	var output [32]byte
	output[0] = 1
	words := expandWords(output, 3)
	require.Len(t, words, 3)
	assert.NotEqual(t, words[0], words[1])
	assert.NotEqual(t, words[1], words[2])
}

func TestQueue(t *testing.T) {
	cfg := newConfig()
	cfg.TickInterval = 10
	o, err := New(cfg, nil)
	require.NoError(t, err)
	q := queue.New("channel")

	callbacks := make(chan *types.Transaction, 1)
	execs := q.Client()
	execs.Sub("execs")
	go func() {
		for msg := range execs.Recv() {
			if msg.Ty == types.EventTx {
				callbacks <- msg.GetData().(*types.Transaction)
			}
		}
	}()
	o.SetQueueClient(q.Client())
	defer func() {
		o.Close()
		execs.Close()
		q.Close()
	}()

	client := q.Client()
	msg := client.NewMessage("oracle", types.EventRequestRandomWords, newRequest())
	require.NoError(t, client.Send(msg, true))
	reply, err := client.Wait(msg)
	require.NoError(t, err)
	id := reply.GetData().(*types.ReplyRequestID).RequestId
	assert.NotEmpty(t, id)

	bad := newRequest()
	bad.SubId = 9
	msg = client.NewMessage("oracle", types.EventRequestRandomWords, bad)
	require.NoError(t, client.Send(msg, true))
	_, err = client.Wait(msg)
	assert.Equal(t, types.ErrInvalidSubscription, errors.Cause(err))

	msg = client.NewMessage("oracle", types.EventTx, nil)
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.False(t, reply.GetData().(*types.Reply).IsOk)

	select {
	case tx := <-callbacks:
		var payload types.ReqString
		require.NoError(t, types.Decode(tx.Payload, &payload))
		assert.Equal(t, id, payload.Data)
	case <-time.After(5 * time.Second):
		t.Fatal("no callback")
	}

	msg = client.NewMessage("oracle", types.EventGetOracleRequest, &types.ReqString{Data: id})
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.True(t, reply.GetData().(*types.OracleRequest).Fulfilled)

	msg = client.NewMessage("oracle", types.EventGetLastHeight, nil)
	require.NoError(t, client.Send(msg, true))
	reply, err = client.Wait(msg)
	require.NoError(t, err)
	assert.True(t, reply.GetData().(*types.Int64).Data >= 3)
}

func TestRestartKeepsState(t *testing.T) {
	db, err := dbm.NewGoMemDB("oracle", "", 0)
	require.NoError(t, err)
	cfg := newConfig()
	cfg.KeySeed = "0x0102030405"

	o1, err := New(cfg, db)
	require.NoError(t, err)
	id1, err := o1.RequestRandomWords(newRequest())
	require.NoError(t, err)
	assert.Empty(t, o1.advance())
	seed := o1.blockHash(3)

	// 同一个库重建, nonce 接着递增, 未回调的请求仍在等待
	o2, err := New(cfg, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), o2.Height())
	assert.Equal(t, 1, o2.PendingCount())
	assert.Equal(t, seed, o2.blockHash(3))
	id2, err := o2.RequestRandomWords(newRequest())
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, calcRequestID(keyHash, 1, "echo", 2), id2)
	req, err := o2.GetRequest(id1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.Nonce)

	assert.Empty(t, o2.advance())
	txs := o2.advance()
	require.Len(t, txs, 1)
	var payload types.ReqString
	require.NoError(t, types.Decode(txs[0].Payload, &payload))
	assert.Equal(t, id1, payload.Data)

	// 已回调的结果也落盘
	o3, err := New(cfg, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), o3.Height())
	assert.Equal(t, 1, o3.PendingCount())
	req, err = o3.GetRequest(id1)
	require.NoError(t, err)
	assert.True(t, req.Fulfilled)
	assert.Len(t, req.RandomWords, 1)
	id3, err := o3.RequestRandomWords(newRequest())
	require.NoError(t, err)
	assert.Equal(t, calcRequestID(keyHash, 1, "echo", 3), id3)
}

func TestRequestIDScopedByDB(t *testing.T) {
	o1 := newOracle(t)
	o2 := newOracle(t)
	id1, err := o1.RequestRandomWords(newRequest())
	require.NoError(t, err)
	id2, err := o2.RequestRandomWords(newRequest())
	require.NoError(t, err)
	// nonce 只在各自的库内递增
	assert.Equal(t, id1, id2)
	assert.NotEqual(t, o1.blockHash(3), o2.blockHash(3))
}

func TestRequestNotPersistedOnError(t *testing.T) {
	db, err := dbm.NewGoMemDB("oracle", "", 0)
	require.NoError(t, err)
	o, err := New(newConfig(), db)
	require.NoError(t, err)
	bad := newRequest()
	bad.NumWords = 0
	_, err = o.RequestRandomWords(bad)
	assert.Equal(t, types.ErrInvalidNumWords, errors.Cause(err))

	o2, err := New(newConfig(), db)
	require.NoError(t, err)
	assert.Equal(t, 0, o2.PendingCount())
	id, err := o2.RequestRandomWords(newRequest())
	require.NoError(t, err)
	assert.Equal(t, calcRequestID(keyHash, 1, "echo", 1), id)
}
