// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"
	"time"

	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
)

func TestCounterAndSnapshot(t *testing.T) {
	before := Counter(GamesCreated).Count()
	Inc(GamesCreated)
	Inc(GamesCreated)
	Gauge(OraclePending).Update(3)
	Timer(TxDuration).Update(time.Millisecond)

	values := Snapshot()
	assert.Equal(t, before+2, values["coinflip."+GamesCreated])
	assert.Equal(t, int64(3), values["coinflip."+OraclePending])
	assert.True(t, values["coinflip."+TxDuration] >= 1)
}

func TestStartMetrics(t *testing.T) {
	StartMetrics(nil)
	StartMetrics(&types.Metrics{EnableMetrics: false})
	StartMetrics(&types.Metrics{EnableMetrics: true, Duration: 1})
	logSnapshot()
	StopMetrics()
	// 重复关闭不会 panic
	StopMetrics()
}
