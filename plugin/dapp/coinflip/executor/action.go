// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/coinflip/account"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/metrics"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// 状态数据库中的 key
var (
	gameCountKey    = []byte(types.StatePrefix + "-" + ct.CoinflipX + "-count")
	feesKey         = []byte(types.StatePrefix + "-" + ct.CoinflipX + "-fees")
	gameKeyPrefix   = types.StatePrefix + "-" + ct.CoinflipX + "-game-"
	requestKeyPrefx = types.StatePrefix + "-" + ct.CoinflipX + "-request-"
)

// Key 游戏记录的 key
func Key(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", gameKeyPrefix, id))
}

func requestKey(requestID string) []byte {
	return []byte(requestKeyPrefx + requestID)
}

// Action 一笔交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	value        int64
	seq          int64
	execaddr     string
	cfg          *ct.Config
	owner        ct.Owner
	coordinator  Coordinator
}

// NewAction new action
func NewAction(c *Coinflip, tx *types.Transaction, index int) *Action {
	cfg, o, coord := getEnv()
	return &Action{
		coinsAccount: c.GetCoinsAccount(),
		db:           c.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		value:        tx.Value,
		seq:          c.GetHeight(),
		execaddr:     c.GetExecAddr(),
		cfg:          cfg,
		owner:        o,
		coordinator:  coord,
	}
}

// GetReceiptLog 游戏日志
func (action *Action) GetReceiptLog(ty int32, msg types.Message) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(msg)}
}

func (action *Action) saveGame(game *ct.Game) *types.KeyValue {
	kv := &types.KeyValue{Key: Key(game.Id), Value: types.Encode(game)}
	_ = action.db.Set(kv.Key, kv.Value)
	return kv
}

func (action *Action) saveInt64(key []byte, v int64) *types.KeyValue {
	kv := &types.KeyValue{Key: key, Value: types.Encode(&types.Int64{Data: v})}
	_ = action.db.Set(kv.Key, kv.Value)
	return kv
}

func (action *Action) saveRequest(rec *ct.RequestRecord) *types.KeyValue {
	kv := &types.KeyValue{Key: requestKey(rec.RequestId), Value: types.Encode(rec)}
	_ = action.db.Set(kv.Key, kv.Value)
	return kv
}

func readGame(db dbm.KV, id int64) (*ct.Game, error) {
	data, err := db.Get(Key(id))
	if err == types.ErrNotFound {
		return nil, ct.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	var game ct.Game
	//decode
	if err := types.Decode(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func readRequest(db dbm.KV, requestID string) (*ct.RequestRecord, error) {
	data, err := db.Get(requestKey(requestID))
	if err == types.ErrNotFound {
		return nil, ct.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec ct.RequestRecord
	if err := types.Decode(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func readInt64(db dbm.KV, key []byte) (int64, error) {
	data, err := db.Get(key)
	if err == types.ErrNotFound {
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

// GameCreate 创建游戏, 押金 bet+fee 冻结在创建者的子账户中
func (action *Action) GameCreate(create *ct.CoinflipCreate) (*types.Receipt, error) {
	if !types.CheckAmount(create.BetAmount) {
		clog.Error("GameCreate", "addr", action.fromaddr, "betAmount", create.BetAmount, "err", ct.ErrInvalidBetAmount)
		return nil, ct.ErrInvalidBetAmount
	}
	if !types.CheckAmount(create.FlatFee) {
		clog.Error("GameCreate", "addr", action.fromaddr, "flatFee", create.FlatFee, "err", ct.ErrInvalidFlatFee)
		return nil, ct.ErrInvalidFlatFee
	}
	if action.value != create.BetAmount+create.FlatFee {
		clog.Error("GameCreate", "addr", action.fromaddr, "value", action.value, "err", ct.ErrInvalidValue)
		return nil, ct.ErrInvalidValue
	}
	id, err := readInt64(action.db, gameCountKey)
	if err != nil {
		return nil, err
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, action.value)
	if err != nil {
		clog.Error("GameCreate.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", action.value, "err", err)
		return nil, err
	}
	game := &ct.Game{
		Id:        id,
		Creator:   action.fromaddr,
		BetAmount: create.BetAmount,
		FlatFee:   create.FlatFee,
		Status:    ct.GameStatusCreated,
	}
	var kv []*types.KeyValue
	kv = append(kv, action.saveGame(game))
	kv = append(kv, action.saveInt64(gameCountKey, id+1))
	logs := []*types.ReceiptLog{action.GetReceiptLog(ct.TyLogCoinflipCreation, &ct.ReceiptCreation{
		GameId:    id,
		Creator:   game.Creator,
		BetAmount: game.BetAmount,
		FlatFee:   game.FlatFee,
	})}
	metrics.Inc(metrics.GamesCreated)
	return types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}), nil
}

// GameJoin 加入游戏, 押金 bet 冻结后向随机数服务发起请求
func (action *Action) GameJoin(join *ct.CoinflipJoin) (*types.Receipt, error) {
	game, err := readGame(action.db, join.GameId)
	if err != nil {
		clog.Error("GameJoin", "addr", action.fromaddr, "gameId", join.GameId, "err", err)
		return nil, err
	}
	if game.Status != ct.GameStatusCreated {
		clog.Error("GameJoin", "addr", action.fromaddr, "gameId", join.GameId, "status", ct.StatusName(game.Status), "err", ct.ErrGameNotOpen)
		return nil, ct.ErrGameNotOpen
	}
	if game.Joiner != "" {
		clog.Error("GameJoin", "addr", action.fromaddr, "gameId", join.GameId, "joiner", game.Joiner, "err", ct.ErrAlreadyJoined)
		return nil, ct.ErrAlreadyJoined
	}
	if action.value != game.BetAmount {
		clog.Error("GameJoin", "addr", action.fromaddr, "gameId", join.GameId, "value", action.value, "err", ct.ErrInvalidValue)
		return nil, ct.ErrInvalidValue
	}
	if join.Choice != ct.Heads && join.Choice != ct.Tails {
		return nil, ct.ErrInvalidChoice
	}
	if action.coordinator == nil {
		return nil, types.ErrOracleUnavailable
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, action.value)
	if err != nil {
		clog.Error("GameJoin.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", action.value, "err", err)
		return nil, err
	}
	game.Joiner = action.fromaddr
	game.Choice = join.Choice
	game.Status = ct.GameStatusPending
	logs := []*types.ReceiptLog{action.GetReceiptLog(ct.TyLogCoinflipJoined, &ct.ReceiptJoined{
		GameId:  game.Id,
		Joiner:  game.Joiner,
		Choice:  game.Choice,
		Creator: game.Creator,
	})}

	requestID, err := action.coordinator.RequestRandomWords(action.cfg.RandomWordsRequest())
	if err != nil {
		clog.Error("GameJoin.RequestRandomWords", "gameId", game.Id, "err", err)
		return nil, errors.Wrapf(ct.ErrRequestFailed, "game %d: %v", game.Id, err)
	}
	if _, err := readRequest(action.db, requestID); err == nil {
		clog.Crit("GameJoin duplicate request id", "gameId", game.Id, "requestId", requestID)
		metrics.Inc(metrics.InvariantViolations)
		return nil, errors.Wrapf(ct.ErrInvariantViolation, "request %s already correlated", requestID)
	}
	game.RequestId = requestID
	var kv []*types.KeyValue
	kv = append(kv, action.saveGame(game))
	kv = append(kv, action.saveRequest(&ct.RequestRecord{RequestId: requestID, GameId: game.Id}))
	logs = append(logs, action.GetReceiptLog(ct.TyLogCoinflipRequested, &ct.ReceiptRequested{
		GameId:    game.Id,
		RequestId: requestID,
	}))
	metrics.Inc(metrics.GamesJoined)
	return types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}), nil
}

// parity 随机数按大端整数的奇偶决定结果
func parity(word []byte) int32 {
	return int32(word[len(word)-1] & 1)
}

// GameFulfill 随机数服务回调: 结算游戏, 手续费记账, 最后把奖池付给赢家
func (action *Action) GameFulfill(fulfill *ct.CoinflipFulfill) (*types.Receipt, error) {
	if action.fromaddr != action.cfg.Coordinator {
		clog.Error("GameFulfill", "addr", action.fromaddr, "err", ct.ErrOnlyCoordinator)
		return nil, ct.ErrOnlyCoordinator
	}
	rec, err := readRequest(action.db, fulfill.RequestId)
	if err != nil {
		clog.Error("GameFulfill", "requestId", fulfill.RequestId, "err", err)
		return nil, err
	}
	game, err := readGame(action.db, rec.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != ct.GameStatusPending {
		clog.Crit("GameFulfill game is not pending", "gameId", game.Id, "requestId", fulfill.RequestId, "status", ct.StatusName(game.Status))
		metrics.Inc(metrics.InvariantViolations)
		return nil, errors.Wrapf(ct.ErrInvariantViolation, "game %d status %s", game.Id, ct.StatusName(game.Status))
	}
	if len(fulfill.RandomWords) == 0 || len(fulfill.RandomWords[0]) == 0 {
		return nil, ct.ErrInvalidRandomWords
	}
	outcome := parity(fulfill.RandomWords[0])
	winner, loser := game.Creator, game.Joiner
	if outcome == game.Choice {
		winner, loser = game.Joiner, game.Creator
	}
	fees, err := readInt64(action.db, feesKey)
	if err != nil {
		return nil, err
	}

	game.Status = ct.GameStatusResolved
	game.Winner = winner
	game.Outcome = outcome
	var kv []*types.KeyValue
	kv = append(kv, action.saveGame(game))
	kv = append(kv, action.saveInt64(feesKey, fees+game.FlatFee))

	receipt, err := action.settle(game, winner, loser)
	if err != nil {
		return nil, err
	}
	pot := 2 * game.BetAmount
	payout, err := action.coinsAccount.TransferWithdraw(winner, action.execaddr, pot)
	if err != nil {
		clog.Error("GameFulfill.TransferWithdraw", "gameId", game.Id, "winner", winner, "amount", pot, "err", err)
		return nil, errors.Wrapf(ct.ErrTransferFailed, "payout game %d: %v", game.Id, err)
	}
	receipt = types.MergeReceipt(receipt, payout)
	logs := []*types.ReceiptLog{action.GetReceiptLog(ct.TyLogCoinflipResolved, &ct.ReceiptResolved{
		GameId:  game.Id,
		Winner:  winner,
		Outcome: outcome,
		Payout:  pot,
		Creator: game.Creator,
		Joiner:  game.Joiner,
	})}
	metrics.Inc(metrics.GamesResolved)
	return types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}), nil
}

// settle 子账户中的记账: 输家的冻结押金转给赢家, 赢家解冻, 创建者的手续费转入手续费账本
func (action *Action) settle(game *ct.Game, winner, loser string) (*types.Receipt, error) {
	var receipt *types.Receipt
	merge := func(r *types.Receipt, err error) error {
		if err != nil {
			return err
		}
		receipt = types.MergeReceipt(receipt, r)
		return nil
	}
	bet, fee := game.BetAmount, game.FlatFee
	var err error
	if winner != loser {
		err = merge(action.coinsAccount.ExecTransferFrozen(loser, winner, action.execaddr, bet))
		if err == nil {
			err = merge(action.coinsAccount.ExecActive(winner, action.execaddr, bet))
		}
	} else {
		err = merge(action.coinsAccount.ExecActive(winner, action.execaddr, 2*bet))
	}
	if err == nil {
		err = merge(action.coinsAccount.ExecActive(game.Creator, action.execaddr, fee))
	}
	if err == nil {
		err = merge(action.coinsAccount.ExecWithdraw(action.execaddr, game.Creator, fee))
	}
	if err != nil {
		clog.Crit("GameFulfill escrow mismatch", "gameId", game.Id, "err", err)
		metrics.Inc(metrics.InvariantViolations)
		return nil, errors.Wrapf(ct.ErrInvariantViolation, "escrow game %d: %v", game.Id, err)
	}
	return receipt, nil
}

// WithdrawFees 管理员提取全部手续费, 先清零账本再转账
func (action *Action) WithdrawFees() (*types.Receipt, error) {
	if action.owner == nil || !action.owner.IsOwner(action.fromaddr) {
		clog.Error("WithdrawFees", "addr", action.fromaddr, "err", ct.ErrNoPrivilege)
		return nil, ct.ErrNoPrivilege
	}
	fees, err := readInt64(action.db, feesKey)
	if err != nil {
		return nil, err
	}
	if fees <= 0 {
		return nil, ct.ErrNoFeesToWithdraw
	}
	kv := []*types.KeyValue{action.saveInt64(feesKey, 0)}
	admin := action.owner.Owner()
	receipt, err := action.coinsAccount.Transfer(action.execaddr, admin, fees)
	if err != nil {
		clog.Error("WithdrawFees.Transfer", "addr", admin, "amount", fees, "err", err)
		return nil, errors.Wrapf(ct.ErrTransferFailed, "withdraw %d: %v", fees, err)
	}
	logs := []*types.ReceiptLog{action.GetReceiptLog(ct.TyLogCoinflipWithdrawn, &ct.ReceiptWithdrawn{
		Administrator: admin,
		Amount:        fees,
	})}
	metrics.Counter(metrics.FeesWithdrawn).Inc(fees)
	return types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}), nil
}
