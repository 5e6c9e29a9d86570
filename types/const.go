// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin            int64 = 1e8
	MaxCoin         int64 = 1e17
	MaxTxSize             = 100000 //100K
	TokenPrecision  int64 = 1e8
	MaxTokenBalance int64 = 900 * 1e8 * TokenPrecision //900亿
	CoinPrecision         = 8
)

// 执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 基础日志类型, 执行器日志从100开始编号
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2

	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

// 查询方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

// 系统执行器名称
const (
	CoinsX = "coins"
)

// 数据库前缀
const (
	LocalPrefix = "LODB"
	StatePrefix = "mavl"
)

// EmptyValue 这字符串表示数据库中的空值
var EmptyValue = []byte("FFFFFFFFemptyBVBiCj5jvE15pEiwro8TQRGnJSNsJF")

// DefaultQueryCount 列表查询默认条数
const DefaultQueryCount = 20

// MaxQueryCount 列表查询最大条数
const MaxQueryCount = 100
