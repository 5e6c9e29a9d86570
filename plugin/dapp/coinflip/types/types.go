// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coinflip 执行器的数据类型, 配置, 以及交易构造
package types

import (
	"strings"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// Config exec.sub.coinflip 配置
type Config struct {
	Owner string `json:"owner,omitempty"`
	// 回调交易的发送地址, 为空时使用 DefaultCoordinatorName 的执行器地址
	Coordinator          string `json:"coordinator,omitempty"`
	KeyHash              string `json:"keyHash,omitempty"`
	SubId                uint64 `json:"subId,omitempty"`
	RequestConfirmations int32  `json:"requestConfirmations,omitempty"`
	CallbackGasLimit     int32  `json:"callbackGasLimit,omitempty"`
}

// DecodeConfig 解析子配置, 检查地址
func DecodeConfig(sub []byte) (*Config, error) {
	var cfg Config
	if sub == nil {
		return nil, types.ErrConfigNotFound
	}
	types.MustDecode(sub, &cfg)
	if cfg.Coordinator == "" {
		cfg.Coordinator = address.ExecAddress(DefaultCoordinatorName)
	}
	if err := address.CheckAddress(cfg.Owner); err != nil {
		return nil, errors.Wrapf(err, "owner %q", cfg.Owner)
	}
	if err := address.CheckAddress(cfg.Coordinator); err != nil {
		return nil, errors.Wrapf(err, "coordinator %q", cfg.Coordinator)
	}
	if cfg.KeyHash == "" {
		return nil, errors.Wrap(types.ErrInvalidParam, "empty keyHash")
	}
	return &cfg, nil
}

// RandomWordsRequest 固定配置的随机数请求
func (cfg *Config) RandomWordsRequest() *types.RandomWordsRequest {
	return &types.RandomWordsRequest{
		KeyHash:                     cfg.KeyHash,
		SubId:                       cfg.SubId,
		MinimumRequestConfirmations: cfg.RequestConfirmations,
		CallbackGasLimit:            cfg.CallbackGasLimit,
		NumWords:                    NumWords,
		Consumer:                    CoinflipX,
	}
}

// Owner 管理员权限
type Owner interface {
	IsOwner(addr string) bool
	Owner() string
}

type owner struct {
	addr string
}

// NewOwner 单一管理员地址
func NewOwner(addr string) Owner {
	return &owner{addr: addr}
}

func (o *owner) IsOwner(addr string) bool {
	return addr != "" && addr == o.addr
}

func (o *owner) Owner() string {
	return o.addr
}

// ParseChoice heads/tails 或者 0/1
func ParseChoice(s string) (int32, error) {
	switch strings.ToLower(s) {
	case "heads", "head", "h", "0":
		return Heads, nil
	case "tails", "tail", "t", "1":
		return Tails, nil
	}
	return 0, ErrInvalidChoice
}

// CreateRawCreateTx 创建游戏的交易, 附带 bet+fee
func CreateRawCreateTx(from string, bet, fee, nonce int64) *types.Transaction {
	action := &CoinflipAction{
		Ty:     CoinflipActionCreate,
		Create: &CoinflipCreate{BetAmount: bet, FlatFee: fee},
	}
	return &types.Transaction{
		Execer:  CoinflipX,
		Payload: types.Encode(action),
		From:    from,
		Value:   bet + fee,
		Nonce:   nonce,
	}
}

// CreateRawJoinTx 加入游戏的交易, value 为附带的押金
func CreateRawJoinTx(from string, gameID int64, choice int32, value, nonce int64) *types.Transaction {
	action := &CoinflipAction{
		Ty:   CoinflipActionJoin,
		Join: &CoinflipJoin{GameId: gameID, Choice: choice},
	}
	return &types.Transaction{
		Execer:  CoinflipX,
		Payload: types.Encode(action),
		From:    from,
		Value:   value,
		Nonce:   nonce,
	}
}

// CreateRawWithdrawTx 提取手续费的交易
func CreateRawWithdrawTx(from string, nonce int64) *types.Transaction {
	action := &CoinflipAction{
		Ty:       CoinflipActionWithdraw,
		Withdraw: &CoinflipWithdraw{},
	}
	return &types.Transaction{
		Execer:  CoinflipX,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   nonce,
	}
}

// EncodeFulfill 回调交易的 payload
func EncodeFulfill(requestID string, words [][]byte) []byte {
	action := &CoinflipAction{
		Ty:      CoinflipActionFulfill,
		Fulfill: &CoinflipFulfill{RequestId: requestID, RandomWords: words},
	}
	return types.Encode(action)
}
