// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrInvalidBetAmount   = errors.New("ErrInvalidBetAmount")
	ErrInvalidFlatFee     = errors.New("ErrInvalidFlatFee")
	ErrInvalidValue       = errors.New("ErrInvalidValue")
	ErrGameNotOpen        = errors.New("ErrGameNotOpen")
	ErrAlreadyJoined      = errors.New("ErrAlreadyJoined")
	ErrNoFeesToWithdraw   = errors.New("ErrNoFeesToWithdraw")
	ErrTransferFailed     = errors.New("ErrTransferFailed")
	ErrInvariantViolation = errors.New("ErrInvariantViolation")
	ErrGameNotFound       = errors.New("ErrGameNotFound")
	ErrRequestNotFound    = errors.New("ErrRequestNotFound")
	ErrNoPrivilege        = errors.New("ErrNoPrivilege")
	ErrOnlyCoordinator    = errors.New("ErrOnlyCoordinator")
	ErrInvalidChoice      = errors.New("ErrInvalidChoice")
	ErrInvalidRandomWords = errors.New("ErrInvalidRandomWords")
	ErrRequestFailed      = errors.New("ErrRequestFailed")
)
