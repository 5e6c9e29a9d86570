// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
	registerDBCreator(BadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{})   { blog.Error("badger", "msg", fmt.Sprintf(format, args...)) }
func (badgerLogger) Warningf(format string, args ...interface{}) { blog.Warn("badger", "msg", fmt.Sprintf(format, args...)) }
func (badgerLogger) Infof(format string, args ...interface{})    { blog.Debug("badger", "msg", fmt.Sprintf(format, args...)) }
func (badgerLogger) Debugf(format string, args ...interface{})   {}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync 同步
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  fmt.Sprintf("%d", lsm),
		"badger.vlog": fmt.Sprintf("%d", vlog),
	}
}

//Iterator 迭代器, end 为空时按 start 前缀迭代
func (db *GoBadgerDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	if end == nil {
		end = bytesPrefix(start)
	}
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &badgerIt{itBase: itBase{start: start, end: end, reverse: reverse}, txn: txn, Iterator: it}
}

type badgerIt struct {
	itBase
	*badger.Iterator
	txn *badger.Txn
	err error
}

func (it *badgerIt) Rewind() bool {
	if it.reverse {
		if it.end == nil {
			// 没有上界时, 定位到最大的 key
			it.Iterator.Rewind()
		} else {
			it.Iterator.Seek(it.end)
			// 反向时 Seek 定位到不大于 end 的位置, end 本身不包含在区间内
			if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), it.end) {
				it.Iterator.Next()
			}
		}
	} else {
		if it.start == nil {
			it.Iterator.Rewind()
		} else {
			it.Iterator.Seek(it.start)
		}
	}
	return it.Valid()
}

func (it *badgerIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

func (it *badgerIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

func (it *badgerIt) Valid() bool {
	return it.Iterator.Valid() && it.checkKey(it.Key())
}

func (it *badgerIt) Key() []byte {
	return it.Iterator.Item().Key()
}

func (it *badgerIt) Value() []byte {
	value, err := it.Iterator.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *badgerIt) ValueCopy() []byte {
	return it.Value()
}

func (it *badgerIt) Error() error {
	return it.err
}

func (it *badgerIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db}
}

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (b *badgerBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

// Write 在一个事务中提交, 事务过大时拆分
func (b *badgerBatch) Write() error {
	txn := b.db.db.NewTransaction(true)
	defer func() {
		txn.Discard()
	}()
	for i := 0; i < len(b.writes); i++ {
		err := b.apply(txn, b.writes[i])
		if err == badger.ErrTxnTooBig {
			if err = txn.Commit(); err != nil {
				blog.Error("Write", "error", err)
				return err
			}
			txn = b.db.db.NewTransaction(true)
			err = b.apply(txn, b.writes[i])
		}
		if err != nil {
			blog.Error("Write", "error", err)
			return err
		}
	}
	if err := txn.Commit(); err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (b *badgerBatch) apply(txn *badger.Txn, w kv) error {
	if w.v == nil {
		return txn.Delete(w.k)
	}
	return txn.Set(w.k, w.v)
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
