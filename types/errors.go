// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrAmount             = errors.New("ErrAmount")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrTxDup              = errors.New("ErrTxDup")
	ErrTxEmpty            = errors.New("ErrTxEmpty")
	ErrTxMsgSizeTooBig    = errors.New("ErrTxMsgSizeTooBig")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrExecNotFound       = errors.New("ErrExecNotFound")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrTimeout            = errors.New("ErrTimeout")
	ErrIsClosed           = errors.New("ErrIsClosed")
	ErrChannelClosed      = errors.New("ErrChannelClosed")
	ErrChannelFull        = errors.New("ErrChannelFull")
	ErrDecode             = errors.New("ErrDecode")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrEmpty              = errors.New("ErrEmpty")
	ErrConfigNotFound     = errors.New("ErrConfigNotFound")
	ErrNotAllowDeposit    = errors.New("ErrNotAllowDeposit")
	ErrTypeAsset          = errors.New("ErrTypeAsset")
)

// 随机数服务
var (
	ErrInvalidKeyHash       = errors.New("ErrInvalidKeyHash")
	ErrInvalidSubscription  = errors.New("ErrInvalidSubscription")
	ErrInvalidNumWords      = errors.New("ErrInvalidNumWords")
	ErrGasLimitTooBig       = errors.New("ErrGasLimitTooBig")
	ErrInvalidConfirmations = errors.New("ErrInvalidConfirmations")
	ErrOracleRequestExist   = errors.New("ErrOracleRequestExist")
	ErrOracleUnavailable    = errors.New("ErrOracleUnavailable")
	ErrInvalidProof         = errors.New("ErrInvalidProof")
)
