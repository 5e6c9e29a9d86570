// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	engine "github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/executor/drivers"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	creator  = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	joiner   = "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"
	admin    = "1Bsg9j6gW83sShoee1fZAt9TkUjcrCgA9S"
	oracle   = address.ExecAddress(ct.DefaultCoordinatorName)
	execAddr = address.ExecAddress(ct.CoinflipX)

	bet = types.Coin
	fee = types.Coin / 1000

	nonce int64
)

type fakeCoordinator struct {
	n     int
	fixed string
	err   error
	reqs  []*types.RandomWordsRequest
}

func (f *fakeCoordinator) RequestRandomWords(req *types.RandomWordsRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.reqs = append(f.reqs, req)
	if f.fixed != "" {
		return f.fixed, nil
	}
	id := fmt.Sprintf("req-%d", f.n)
	f.n++
	return id, nil
}

// drain 执行器把 coinflip 托管地址的币转走, 模拟托管余额不足. 金额为负数时转回
type drain struct {
	drivers.DriverBase
}

func newDrain() drivers.Driver {
	d := &drain{}
	d.SetChild(d)
	return d
}

func (d *drain) GetName() string {
	return "drain"
}

func (d *drain) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var amount types.Int64
	if err := types.Decode(tx.Payload, &amount); err != nil {
		return nil, err
	}
	if amount.Data < 0 {
		return d.GetCoinsAccount().Transfer(tx.From, execAddr, -amount.Data)
	}
	return d.GetCoinsAccount().Transfer(execAddr, tx.From, amount.Data)
}

func init() {
	engine.DisableLog()
	_, sub := types.InitCfgString(types.GetDefaultCfgstring())
	Init(ct.CoinflipX, sub.Exec[ct.CoinflipX])
	drivers.Register("drain", newDrain)
}

func newEnv(t *testing.T) (*engine.Executor, *fakeCoordinator) {
	cfg, _ := types.InitCfgString(types.GetDefaultCfgstring())
	exec := engine.New(cfg, dbm.NewDB("test", dbm.MemDBBackendStr, "", 0))
	require.NoError(t, exec.Genesis(cfg.Genesis))
	coord := &fakeCoordinator{}
	SetCoordinator(coord)
	return exec, coord
}

func nextNonce() int64 {
	nonce++
	return nonce
}

func createTx(from string, bet, fee int64) *types.Transaction {
	return ct.CreateRawCreateTx(from, bet, fee, nextNonce())
}

func joinTx(from string, id int64, choice int32, value int64) *types.Transaction {
	return ct.CreateRawJoinTx(from, id, choice, value, nextNonce())
}

func fulfillTx(from, requestID string, last byte) *types.Transaction {
	word := make([]byte, 32)
	word[31] = last
	return &types.Transaction{
		Execer:  ct.CoinflipX,
		Payload: ct.EncodeFulfill(requestID, [][]byte{word}),
		From:    from,
		Nonce:   nextNonce(),
	}
}

func drainTx(from string, amount int64) *types.Transaction {
	return &types.Transaction{
		Execer:  "drain",
		Payload: types.Encode(&types.Int64{Data: amount}),
		From:    from,
		Nonce:   nextNonce(),
	}
}

func execOK(t *testing.T, exec *engine.Executor, tx *types.Transaction) *types.TxResult {
	result, err := exec.ExecTx(tx)
	require.NoError(t, err)
	return result
}

func execErr(t *testing.T, exec *engine.Executor, tx *types.Transaction, want error) {
	_, err := exec.ExecTx(tx)
	require.Error(t, err)
	assert.Equal(t, want, pkgerr.Cause(err), err.Error())
}

func query(exec *engine.Executor, funcName string, req types.Message) (types.Message, error) {
	return exec.Query(&types.Query{Execer: ct.CoinflipX, FuncName: funcName, Payload: types.Encode(req)})
}

func getGame(t *testing.T, exec *engine.Executor, id int64) *ct.Game {
	msg, err := query(exec, ct.FuncNameGetGame, &ct.ReqGame{GameId: id})
	require.NoError(t, err)
	return msg.(*ct.Game)
}

func getFees(t *testing.T, exec *engine.Executor) int64 {
	msg, err := query(exec, ct.FuncNameGetFees, &types.ReqNil{})
	require.NoError(t, err)
	return msg.(*types.Int64).Data
}

func listGames(t *testing.T, exec *engine.Executor, req *ct.ReqListGames) []int64 {
	msg, err := query(exec, ct.FuncNameListGames, req)
	if pkgerr.Cause(err) == types.ErrNotFound {
		return nil
	}
	require.NoError(t, err)
	var ids []int64
	for _, g := range msg.(*ct.ReplyGameList).Games {
		ids = append(ids, g.Id)
	}
	return ids
}

func coins(t *testing.T, exec *engine.Executor, addr string) int64 {
	accs, err := exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}})
	require.NoError(t, err)
	return accs.Acc[0].Balance
}

func escrow(t *testing.T, exec *engine.Executor, addr string) *types.Account {
	accs, err := exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}, Execer: ct.CoinflipX})
	require.NoError(t, err)
	return accs.Acc[0]
}

// 托管地址上的币 == 所有子账户 + 手续费账本
func checkCustody(t *testing.T, exec *engine.Executor, addrs ...string) {
	var sum int64
	for _, addr := range addrs {
		acc := escrow(t, exec, addr)
		sum += acc.Balance + acc.Frozen
	}
	assert.Equal(t, coins(t, exec, execAddr), sum+getFees(t, exec))
}

// 创建并加入一局, 返回 requestId
func pendingGame(t *testing.T, exec *engine.Executor, choice int32) (int64, string) {
	result := execOK(t, exec, createTx(creator, bet, fee))
	var created ct.ReceiptCreation
	for _, l := range result.Logs {
		if l.Ty == ct.TyLogCoinflipCreation {
			require.NoError(t, types.Decode(l.Log, &created))
		}
	}
	execOK(t, exec, joinTx(joiner, created.GameId, choice, bet))
	game := getGame(t, exec, created.GameId)
	require.Equal(t, int32(ct.GameStatusPending), game.Status)
	return game.Id, game.RequestId
}

func TestCreateGame(t *testing.T) {
	exec, _ := newEnv(t)
	before := coins(t, exec, creator)
	result := execOK(t, exec, createTx(creator, bet, fee))

	game := getGame(t, exec, 0)
	assert.Equal(t, int64(0), game.Id)
	assert.Equal(t, creator, game.Creator)
	assert.Equal(t, "", game.Joiner)
	assert.Equal(t, bet, game.BetAmount)
	assert.Equal(t, fee, game.FlatFee)
	assert.Equal(t, int32(ct.GameStatusCreated), game.Status)

	assert.Equal(t, before-bet-fee, coins(t, exec, creator))
	assert.Equal(t, bet+fee, escrow(t, exec, creator).Frozen)
	assert.Equal(t, int64(0), escrow(t, exec, creator).Balance)
	checkCustody(t, exec, creator)

	var found bool
	for _, l := range result.Logs {
		if l.Ty != ct.TyLogCoinflipCreation {
			continue
		}
		var r ct.ReceiptCreation
		require.NoError(t, types.Decode(l.Log, &r))
		assert.Equal(t, &ct.ReceiptCreation{GameId: 0, Creator: creator, BetAmount: bet, FlatFee: fee}, &r)
		found = true
	}
	assert.True(t, found)

	execOK(t, exec, createTx(joiner, 2*bet, fee))
	assert.Equal(t, int64(1), getGame(t, exec, 1).Id)
	assert.Equal(t, []int64{1, 0}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusCreated}))
}

func TestCreateGameInvalid(t *testing.T) {
	exec, _ := newEnv(t)
	before := coins(t, exec, creator)

	execErr(t, exec, createTx(creator, 0, fee), ct.ErrInvalidBetAmount)
	execErr(t, exec, createTx(creator, bet, 0), ct.ErrInvalidFlatFee)

	tx := createTx(creator, bet, fee)
	tx.Value = bet
	execErr(t, exec, tx, ct.ErrInvalidValue)
	tx = createTx(creator, bet, fee)
	tx.Value = bet + 2*fee
	execErr(t, exec, tx, ct.ErrInvalidValue)

	// 余额不足
	tx = createTx(creator, 200000*types.Coin, fee)
	_, err := exec.ExecTx(tx)
	require.Error(t, err)
	assert.Equal(t, types.ErrNoBalance, pkgerr.Cause(err))

	assert.Equal(t, before, coins(t, exec, creator))
	assert.Equal(t, &types.Account{Addr: creator}, escrow(t, exec, creator))
	_, err = query(exec, ct.FuncNameGetGame, &ct.ReqGame{GameId: 0})
	assert.Equal(t, ct.ErrGameNotFound, err)
}

func TestJoinGame(t *testing.T) {
	exec, coord := newEnv(t)
	execOK(t, exec, createTx(creator, bet, fee))
	before := coins(t, exec, joiner)
	result := execOK(t, exec, joinTx(joiner, 0, ct.Tails, bet))

	game := getGame(t, exec, 0)
	assert.Equal(t, joiner, game.Joiner)
	assert.Equal(t, int32(ct.Tails), game.Choice)
	assert.Equal(t, int32(ct.GameStatusPending), game.Status)
	assert.Equal(t, "req-0", game.RequestId)
	assert.Equal(t, before-bet, coins(t, exec, joiner))
	assert.Equal(t, bet, escrow(t, exec, joiner).Frozen)
	checkCustody(t, exec, creator, joiner)

	require.Len(t, coord.reqs, 1)
	assert.Equal(t, &types.RandomWordsRequest{
		KeyHash:                     "0x474e34a077df58807dbe9c96d3c009b23b3c6d0cce433e59bbf5b34f823bc56c",
		SubId:                       1,
		MinimumRequestConfirmations: 3,
		CallbackGasLimit:            100000,
		NumWords:                    1,
		Consumer:                    ct.CoinflipX,
	}, coord.reqs[0])

	var tys []int32
	for _, l := range result.Logs {
		if l.Ty > 100 {
			tys = append(tys, l.Ty)
		}
	}
	assert.Equal(t, []int32{ct.TyLogCoinflipJoined, ct.TyLogCoinflipRequested}, tys)

	msg, err := query(exec, ct.FuncNameGetRequest, &types.ReqString{Data: "req-0"})
	require.NoError(t, err)
	assert.Equal(t, &ct.RequestRecord{RequestId: "req-0", GameId: 0}, msg)
	_, err = query(exec, ct.FuncNameGetRequest, &types.ReqString{Data: "req-1"})
	assert.Equal(t, ct.ErrRequestNotFound, err)

	assert.Nil(t, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusCreated}))
	assert.Equal(t, []int64{0}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusPending}))
	assert.Equal(t, []int64{0}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusPending, Addr: joiner}))
	assert.Equal(t, []int64{0}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusPending, Addr: creator}))
}

func TestJoinGameInvalid(t *testing.T) {
	exec, coord := newEnv(t)
	execOK(t, exec, createTx(creator, bet, fee))
	before := coins(t, exec, joiner)

	execErr(t, exec, joinTx(joiner, 5, ct.Heads, bet), ct.ErrGameNotFound)
	execErr(t, exec, joinTx(joiner, 0, ct.Heads, bet-1), ct.ErrInvalidValue)
	execErr(t, exec, joinTx(joiner, 0, ct.Heads, bet+1), ct.ErrInvalidValue)
	execErr(t, exec, joinTx(joiner, 0, 2, bet), ct.ErrInvalidChoice)

	coord.err = errors.New("oracle down")
	execErr(t, exec, joinTx(joiner, 0, ct.Heads, bet), ct.ErrRequestFailed)
	coord.err = nil

	SetCoordinator(nil)
	execErr(t, exec, joinTx(joiner, 0, ct.Heads, bet), types.ErrOracleUnavailable)
	SetCoordinator(coord)

	assert.Equal(t, before, coins(t, exec, joiner))
	assert.Equal(t, &types.Account{Addr: joiner}, escrow(t, exec, joiner))
	game := getGame(t, exec, 0)
	assert.Equal(t, int32(ct.GameStatusCreated), game.Status)
	assert.Equal(t, "", game.Joiner)

	// 已经 Pending 的游戏不能再加入
	execOK(t, exec, joinTx(joiner, 0, ct.Heads, bet))
	execErr(t, exec, joinTx(creator, 0, ct.Tails, bet), ct.ErrGameNotOpen)
	execErr(t, exec, joinTx(joiner, 0, ct.Tails, bet), ct.ErrGameNotOpen)
	checkCustody(t, exec, creator, joiner)
}

func TestJoinDuplicateRequestID(t *testing.T) {
	exec, coord := newEnv(t)
	coord.fixed = "same"
	execOK(t, exec, createTx(creator, bet, fee))
	execOK(t, exec, createTx(creator, bet, fee))
	execOK(t, exec, joinTx(joiner, 0, ct.Heads, bet))
	execErr(t, exec, joinTx(joiner, 1, ct.Heads, bet), ct.ErrInvariantViolation)
	assert.Equal(t, int32(ct.GameStatusCreated), getGame(t, exec, 1).Status)
}

// 7 是奇数 -> Tails, 和加入者的选择一致, 加入者赢
func TestResolveJoinerWins(t *testing.T) {
	exec, _ := newEnv(t)
	creatorBefore := coins(t, exec, creator)
	joinerBefore := coins(t, exec, joiner)
	id, requestID := pendingGame(t, exec, ct.Tails)

	result := execOK(t, exec, fulfillTx(oracle, requestID, 7))
	game := getGame(t, exec, id)
	assert.Equal(t, int32(ct.GameStatusResolved), game.Status)
	assert.Equal(t, joiner, game.Winner)
	assert.Equal(t, int32(ct.Tails), game.Outcome)

	assert.Equal(t, joinerBefore+bet, coins(t, exec, joiner))
	assert.Equal(t, creatorBefore-bet-fee, coins(t, exec, creator))
	assert.Equal(t, fee, getFees(t, exec))
	assert.Equal(t, &types.Account{Addr: creator}, escrow(t, exec, creator))
	assert.Equal(t, &types.Account{Addr: joiner}, escrow(t, exec, joiner))
	assert.Equal(t, fee, coins(t, exec, execAddr))
	checkCustody(t, exec, creator, joiner)

	var resolved ct.ReceiptResolved
	for _, l := range result.Logs {
		if l.Ty == ct.TyLogCoinflipResolved {
			require.NoError(t, types.Decode(l.Log, &resolved))
		}
	}
	assert.Equal(t, joiner, resolved.Winner)
	assert.Equal(t, 2*bet, resolved.Payout)

	assert.Nil(t, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusPending}))
	assert.Equal(t, []int64{id}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusResolved, Addr: creator}))
}

func TestResolveCreatorWins(t *testing.T) {
	exec, _ := newEnv(t)
	creatorBefore := coins(t, exec, creator)
	joinerBefore := coins(t, exec, joiner)
	id, requestID := pendingGame(t, exec, ct.Tails)

	execOK(t, exec, fulfillTx(oracle, requestID, 8))
	game := getGame(t, exec, id)
	assert.Equal(t, creator, game.Winner)
	assert.Equal(t, int32(ct.Heads), game.Outcome)
	assert.Equal(t, creatorBefore+bet-fee, coins(t, exec, creator))
	assert.Equal(t, joinerBefore-bet, coins(t, exec, joiner))
	assert.Equal(t, fee, getFees(t, exec))
	checkCustody(t, exec, creator, joiner)
}

func TestResolveSelfPlay(t *testing.T) {
	exec, _ := newEnv(t)
	before := coins(t, exec, creator)
	execOK(t, exec, createTx(creator, bet, fee))
	execOK(t, exec, joinTx(creator, 0, ct.Heads, bet))
	execOK(t, exec, fulfillTx(oracle, "req-0", 1))

	game := getGame(t, exec, 0)
	assert.Equal(t, creator, game.Winner)
	assert.Equal(t, before-fee, coins(t, exec, creator))
	checkCustody(t, exec, creator)
	assert.Equal(t, []int64{0}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusResolved, Addr: creator}))
}

func TestResolveReplay(t *testing.T) {
	exec, _ := newEnv(t)
	_, requestID := pendingGame(t, exec, ct.Heads)
	execOK(t, exec, fulfillTx(oracle, requestID, 2))
	joinerAfter := coins(t, exec, joiner)
	custody := coins(t, exec, execAddr)

	execErr(t, exec, fulfillTx(oracle, requestID, 2), ct.ErrInvariantViolation)
	assert.Equal(t, joinerAfter, coins(t, exec, joiner))
	assert.Equal(t, custody, coins(t, exec, execAddr))
	assert.Equal(t, fee, getFees(t, exec))
}

func TestResolveInvalid(t *testing.T) {
	exec, _ := newEnv(t)
	id, requestID := pendingGame(t, exec, ct.Heads)

	execErr(t, exec, fulfillTx(joiner, requestID, 2), ct.ErrOnlyCoordinator)
	execErr(t, exec, fulfillTx(oracle, "unknown", 2), ct.ErrRequestNotFound)
	empty := &types.Transaction{
		Execer:  ct.CoinflipX,
		Payload: ct.EncodeFulfill(requestID, nil),
		From:    oracle,
		Nonce:   nextNonce(),
	}
	execErr(t, exec, empty, ct.ErrInvalidRandomWords)

	deposit := fulfillTx(oracle, requestID, 2)
	deposit.Value = 1
	execErr(t, exec, deposit, types.ErrNotAllowDeposit)

	assert.Equal(t, int32(ct.GameStatusPending), getGame(t, exec, id).Status)
	assert.Equal(t, int64(0), getFees(t, exec))
}

func TestResolveTransferFailed(t *testing.T) {
	exec, _ := newEnv(t)
	id, requestID := pendingGame(t, exec, ct.Heads)
	execOK(t, exec, drainTx(admin, bet))
	creatorEscrow := escrow(t, exec, creator)
	joinerEscrow := escrow(t, exec, joiner)

	execErr(t, exec, fulfillTx(oracle, requestID, 2), ct.ErrTransferFailed)
	game := getGame(t, exec, id)
	assert.Equal(t, int32(ct.GameStatusPending), game.Status)
	assert.Equal(t, "", game.Winner)
	assert.Equal(t, int64(0), getFees(t, exec))
	assert.Equal(t, creatorEscrow, escrow(t, exec, creator))
	assert.Equal(t, joinerEscrow, escrow(t, exec, joiner))

	// 补足托管后可以再次回调
	execOK(t, exec, drainTx(admin, -bet))
	execOK(t, exec, fulfillTx(oracle, requestID, 2))
	assert.Equal(t, joiner, getGame(t, exec, id).Winner)
	checkCustody(t, exec, creator, joiner)
}

func TestWithdrawFees(t *testing.T) {
	exec, _ := newEnv(t)
	// 没有手续费
	execErr(t, exec, ct.CreateRawWithdrawTx(admin, nextNonce()), ct.ErrNoFeesToWithdraw)
	assert.Equal(t, int64(0), coins(t, exec, admin))

	for i := 0; i < 3; i++ {
		_, requestID := pendingGame(t, exec, ct.Heads)
		execOK(t, exec, fulfillTx(oracle, requestID, byte(i)))
	}
	assert.Equal(t, 3*fee, getFees(t, exec))
	checkCustody(t, exec, creator, joiner)

	execErr(t, exec, ct.CreateRawWithdrawTx(creator, nextNonce()), ct.ErrNoPrivilege)
	tx := ct.CreateRawWithdrawTx(admin, nextNonce())
	tx.Value = 1
	execErr(t, exec, tx, types.ErrNotAllowDeposit)

	result := execOK(t, exec, ct.CreateRawWithdrawTx(admin, nextNonce()))
	assert.Equal(t, 3*fee, coins(t, exec, admin))
	assert.Equal(t, int64(0), getFees(t, exec))
	assert.Equal(t, int64(0), coins(t, exec, execAddr))
	var withdrawn ct.ReceiptWithdrawn
	for _, l := range result.Logs {
		if l.Ty == ct.TyLogCoinflipWithdrawn {
			require.NoError(t, types.Decode(l.Log, &withdrawn))
		}
	}
	assert.Equal(t, ct.ReceiptWithdrawn{Administrator: admin, Amount: 3 * fee}, withdrawn)

	execErr(t, exec, ct.CreateRawWithdrawTx(admin, nextNonce()), ct.ErrNoFeesToWithdraw)
}

func TestWithdrawTransferFailed(t *testing.T) {
	exec, _ := newEnv(t)
	_, requestID := pendingGame(t, exec, ct.Heads)
	execOK(t, exec, fulfillTx(oracle, requestID, 3))
	execOK(t, exec, drainTx(joiner, fee))

	execErr(t, exec, ct.CreateRawWithdrawTx(admin, nextNonce()), ct.ErrTransferFailed)
	assert.Equal(t, fee, getFees(t, exec))
	assert.Equal(t, int64(0), coins(t, exec, admin))
}

func TestListGames(t *testing.T) {
	exec, _ := newEnv(t)
	for i := 0; i < 5; i++ {
		execOK(t, exec, createTx(creator, bet, fee))
	}
	execOK(t, exec, createTx(joiner, bet, fee))
	execOK(t, exec, joinTx(joiner, 2, ct.Heads, bet))

	assert.Equal(t, []int64{5, 4, 3, 1, 0}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusCreated}))
	assert.Equal(t, []int64{0, 1}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusCreated, Direction: types.ListASC, Count: 2}))
	assert.Equal(t, []int64{3, 4}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusCreated, Direction: types.ListASC, Count: 2, PrimaryKey: "1"}))
	assert.Equal(t, []int64{5}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusCreated, Addr: joiner}))
	assert.Equal(t, []int64{2}, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusPending, Addr: joiner}))
	assert.Nil(t, listGames(t, exec, &ct.ReqListGames{Status: ct.GameStatusResolved}))

	_, err := query(exec, ct.FuncNameListGames, &ct.ReqListGames{})
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = query(exec, ct.FuncNameListGames, &ct.ReqListGames{Status: ct.GameStatusCreated, PrimaryKey: "x"})
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestEvents(t *testing.T) {
	exec, _ := newEnv(t)
	_, requestID := pendingGame(t, exec, ct.Tails)
	execOK(t, exec, fulfillTx(oracle, requestID, 7))
	execOK(t, exec, ct.CreateRawWithdrawTx(admin, nextNonce()))

	records, err := exec.ListEvents(&types.ReqListEvents{Execer: ct.CoinflipX, Count: 100})
	require.NoError(t, err)
	var tys []int32
	for _, r := range records.Records {
		if r.Ty > 100 {
			tys = append(tys, r.Ty)
		}
	}
	assert.Equal(t, []int32{
		ct.TyLogCoinflipCreation,
		ct.TyLogCoinflipJoined,
		ct.TyLogCoinflipRequested,
		ct.TyLogCoinflipResolved,
		ct.TyLogCoinflipWithdrawn,
	}, tys)
}

func TestParity(t *testing.T) {
	assert.Equal(t, int32(ct.Heads), parity([]byte{0xff, 0x00}))
	assert.Equal(t, int32(ct.Tails), parity([]byte{0x00, 0x07}))
	assert.Equal(t, int32(ct.Tails), parity([]byte{1}))
}
