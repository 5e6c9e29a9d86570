// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库接口以及 leveldb/badgerdb/memdb 后端
package db

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 状态读写接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// KVDB 状态读写以及列表查询
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// IteratorDB 迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reserver bool) Iterator
}

// DB 数据库
type DB interface {
	KV
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Prefix() []byte
	Close()
}

//-----------------------------------------------------------------------------

// 后端名称
const (
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
	BadgerDBBackendStr   = "badgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 根据后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// bytesPrefix 返回前缀对应的区间上界
func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

// itBase 共享 leveldb 与 memdb 的迭代器实现
type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

func (it *itBase) checkKey(key []byte) bool {
	if it.start != nil && bytes.Compare(key, it.start) < 0 {
		return false
	}
	if it.end != nil && bytes.Compare(key, it.end) >= 0 {
		return false
	}
	return true
}

func (it *itBase) Prefix() []byte {
	return it.start
}

type levelIterator struct {
	itBase
	iterator.Iterator
}

func newLevelIterator(it iterator.Iterator, start, end []byte, reverse bool) *levelIterator {
	return &levelIterator{itBase: itBase{start: start, end: end, reverse: reverse}, Iterator: it}
}

func (dbit *levelIterator) Rewind() bool {
	if dbit.reverse {
		return dbit.Iterator.Last() && dbit.Valid()
	}
	return dbit.Iterator.First() && dbit.Valid()
}

func (dbit *levelIterator) Next() bool {
	if dbit.reverse {
		return dbit.Iterator.Prev() && dbit.Valid()
	}
	return dbit.Iterator.Next() && dbit.Valid()
}

// Seek 定位到 key, 反向时定位到不大于 key 的最后一个元素
func (dbit *levelIterator) Seek(key []byte) bool {
	ok := dbit.Iterator.Seek(key)
	if !dbit.reverse {
		return ok && dbit.Valid()
	}
	if !ok {
		return dbit.Iterator.Last() && dbit.Valid()
	}
	if !bytes.Equal(dbit.Iterator.Key(), key) {
		return dbit.Iterator.Prev() && dbit.Valid()
	}
	return dbit.Valid()
}

func (dbit *levelIterator) Valid() bool {
	return dbit.Iterator.Valid() && dbit.checkKey(dbit.Key())
}

func (dbit *levelIterator) ValueCopy() []byte {
	return cloneByte(dbit.Iterator.Value())
}

func (dbit *levelIterator) Close() {
	dbit.Iterator.Release()
}
