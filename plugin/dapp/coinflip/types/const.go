// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// 执行器名称
const (
	CoinflipX = "coinflip"
	// DefaultCoordinatorName 默认的随机数服务执行器名
	DefaultCoordinatorName = "vrfcoordinator"
)

//coinflip action ty
const (
	CoinflipActionCreate = iota + 1
	CoinflipActionJoin
	CoinflipActionFulfill
	CoinflipActionWithdraw
)

// 游戏状态: Created -> Pending -> Resolved
const (
	GameStatusCreated = iota + 1
	GameStatusPending
	GameStatusResolved
)

// 硬币的两面, 随机数为偶数时是 Heads
const (
	Heads = 0
	Tails = 1
)

// log ty, 执行器日志从 100 开始
const (
	TyLogCoinflipCreation  = 101
	TyLogCoinflipJoined    = 102
	TyLogCoinflipRequested = 103
	TyLogCoinflipResolved  = 104
	TyLogCoinflipWithdrawn = 105
)

// NumWords 每局只需要一个随机数
const NumWords = 1

// query func name
const (
	FuncNameGetGame    = "GetGame"
	FuncNameListGames  = "ListGames"
	FuncNameGetRequest = "GetRequest"
	FuncNameGetFees    = "GetFees"
)

var statusName = map[int32]string{
	GameStatusCreated:  "Created",
	GameStatusPending:  "Pending",
	GameStatusResolved: "Resolved",
}

// StatusName 状态名称
func StatusName(status int32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "Unknown"
}

// ChoiceName 硬币面名称
func ChoiceName(choice int32) string {
	if choice == Heads {
		return "Heads"
	}
	return "Tails"
}

var logName = map[int32]string{
	TyLogCoinflipCreation:  "LogCoinflipCreation",
	TyLogCoinflipJoined:    "LogCoinflipJoined",
	TyLogCoinflipRequested: "LogCoinflipRequested",
	TyLogCoinflipResolved:  "LogCoinflipResolved",
	TyLogCoinflipWithdrawn: "LogCoinflipWithdrawn",
}

// LogName 日志名称
func LogName(ty int32) string {
	if name, ok := logName[ty]; ok {
		return name
	}
	return "unkownType"
}
