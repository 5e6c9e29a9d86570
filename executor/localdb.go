// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
)

//LocalDB 本地数据库，不属于状态的数据(索引, 事件流水)。
//get set 经过 cache, Flush 的时候和状态数据一起写盘
//List 只能看到已经写盘的数据
type LocalDB struct {
	db    dbm.DB
	list  *dbm.ListHelper
	cache map[string][]byte
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{
		db:    db,
		list:  dbm.NewListHelper(db),
		cache: make(map[string][]byte),
	}
}

//Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	if value, ok := l.cache[string(key)]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := l.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

//Set 设置key, value 为 nil 表示删除
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.cache[string(key)] = value
	return nil
}

//List 从数据库中查询数据列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

//PrefixCount 前缀计数
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return l.list.PrefixCount(prefix)
}

//Flush 写入 batch
func (l *LocalDB) Flush(batch dbm.Batch) {
	for k, v := range l.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
}

//Reset 清空缓存
func (l *LocalDB) Reset() {
	l.cache = make(map[string][]byte)
}
