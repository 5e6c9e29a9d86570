// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	lru "github.com/hashicorp/golang-lru"
)

// StateDB 状态数据库
// 读写都先经过事务缓存 txcache, Commit 之后进入 dirty,
// Flush 时把 dirty 一次性写入后端数据库
type StateDB struct {
	db      dbm.DB
	cache   *lru.Cache
	dirty   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db, cacheSize 为已落盘数据的读缓存条数
func NewStateDB(db dbm.DB, cacheSize int) *StateDB {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		panic(err)
	}
	return &StateDB{
		db:    db,
		cache: cache,
		dirty: make(map[string][]byte),
	}
}

// Begin 开始一个事务
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback 回滚当前事务
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务内的修改并入 dirty
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.dirty[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Flush 把已经提交的修改写入 batch, 成功写盘后调用方需要调用 ResetDirty
func (s *StateDB) Flush(batch dbm.Batch) {
	for k, v := range s.dirty {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
}

// ResetDirty 写盘成功后更新读缓存
func (s *StateDB) ResetDirty() {
	for k, v := range s.dirty {
		if v == nil {
			s.cache.Remove(k)
			continue
		}
		s.cache.Add(k, v)
	}
	s.dirty = make(map[string][]byte)
}

// DropDirty 写盘失败时丢弃未落盘的修改
func (s *StateDB) DropDirty() {
	s.dirty = make(map[string][]byte)
}

// Get get value, 值为 nil 表示已删除
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := s.dirty[skey]; ok {
		return found(value)
	}
	if value, ok := s.cache.Get(skey); ok {
		return found(value.([]byte))
	}
	value, err := s.db.Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	s.cache.Add(skey, value)
	return value, nil
}

func found(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// BatchGet batch get values
func (s *StateDB) BatchGet(keys [][]byte) (values [][]byte, err error) {
	for _, key := range keys {
		v, err := s.Get(key)
		if err != nil && err != types.ErrNotFound {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Set set key value, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
		return nil
	}
	s.dirty[skey] = value
	return nil
}

// GetSetKeys 当前事务写过的 key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}
