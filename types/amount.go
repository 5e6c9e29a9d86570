// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var coinDecimal = decimal.New(1, CoinPrecision)

// FormatAmount 将最小单位的金额转为十进制coins字符串
func FormatAmount(amount int64) string {
	return decimal.New(amount, -CoinPrecision).StringFixed(4)
}

// FormatAmountExact 不截断精度
func FormatAmountExact(amount int64) string {
	return decimal.New(amount, -CoinPrecision).String()
}

// ParseAmount 十进制coins字符串转为最小单位, 超过8位小数的金额认为无效
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrAmount, "parse %q: %v", s, err)
	}
	v := d.Mul(coinDecimal)
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "too many decimals %q", s)
	}
	if v.IsNegative() || v.GreaterThanOrEqual(decimal.New(MaxCoin, 0)) {
		return 0, errors.Wrapf(ErrAmount, "out of range %q", s)
	}
	return v.IntPart(), nil
}
