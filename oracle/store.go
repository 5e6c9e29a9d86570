// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"crypto/rand"
	"sort"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// 随机数服务的状态和执行器共用节点数据库, 重启后 nonce 和高度接着递增,
// 未回调的请求继续等待
var (
	nonceKey         = []byte("oracle-nonce")
	heightKey        = []byte("oracle-height")
	seedKey          = []byte("oracle-seed")
	requestKeyPrefix = "oracle-req-"
)

func calcRequestKey(id string) []byte {
	return []byte(requestKeyPrefix + id)
}

func loadInt64(db dbm.KV, key []byte) (int64, error) {
	data, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var v types.Int64
	if err := types.Decode(data, &v); err != nil {
		return 0, err
	}
	return v.Data, nil
}

// load 恢复 nonce, 高度, 出块种子以及所有请求
func (o *Oracle) load() error {
	var err error
	if o.nonce, err = loadInt64(o.db, nonceKey); err != nil {
		return errors.Wrap(err, "load oracle nonce")
	}
	if o.height, err = loadInt64(o.db, heightKey); err != nil {
		return errors.Wrap(err, "load oracle height")
	}
	seed, err := o.db.Get(seedKey)
	switch {
	case err == dbm.ErrNotFoundInDb:
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return err
		}
		if err := o.db.SetSync(seedKey, seed); err != nil {
			return errors.Wrap(err, "save oracle seed")
		}
	case err != nil:
		return errors.Wrap(err, "load oracle seed")
	}
	o.seed = seed

	it := o.db.Iterator([]byte(requestKeyPrefix), nil, false)
	defer it.Close()
	var pending []*types.OracleRequest
	for it.Rewind(); it.Valid(); it.Next() {
		var req types.OracleRequest
		if err := types.Decode(it.ValueCopy(), &req); err != nil {
			return errors.Wrapf(err, "decode oracle request %s", it.Key())
		}
		o.requests[req.RequestId] = &req
		if !req.Fulfilled {
			pending = append(pending, &req)
		}
	}
	if err := it.Error(); err != nil {
		return err
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Nonce < pending[j].Nonce })
	for _, req := range pending {
		o.pending = append(o.pending, req.RequestId)
	}
	olog.Info("oracle state loaded", "nonce", o.nonce, "height", o.height, "requests", len(o.requests), "pending", len(o.pending))
	return nil
}

// saveRequest 新请求和 nonce 一起写入
func (o *Oracle) saveRequest(req *types.OracleRequest) error {
	batch := o.db.NewBatch(true)
	batch.Set(calcRequestKey(req.RequestId), types.Encode(req))
	batch.Set(nonceKey, types.Encode(&types.Int64{Data: req.Nonce}))
	return errors.Wrap(batch.Write(), "save oracle request")
}

// saveHeight 保存当前高度以及本高度回调的请求
func (o *Oracle) saveHeight(fulfilled []*types.OracleRequest) error {
	batch := o.db.NewBatch(true)
	batch.Set(heightKey, types.Encode(&types.Int64{Data: o.height}))
	for _, req := range fulfilled {
		batch.Set(calcRequestKey(req.RequestId), types.Encode(req))
	}
	return errors.Wrap(batch.Write(), "save oracle height")
}
