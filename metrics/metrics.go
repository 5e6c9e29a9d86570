// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 计数器以及定时输出到日志
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Namespace 所有指标名称的前缀
var Namespace = "coinflip"

// 指标名称
const (
	TxExecuted          = "exec.tx.ok"
	TxFailed            = "exec.tx.failed"
	TxDuration          = "exec.tx.duration"
	GamesCreated        = "games.created"
	GamesJoined         = "games.joined"
	GamesResolved       = "games.resolved"
	FeesWithdrawn       = "fees.withdrawn"
	InvariantViolations = "invariant.violations"
	OracleRequests      = "oracle.requests"
	OracleFulfilled     = "oracle.fulfilled"
	OraclePending       = "oracle.pending"
)

func fullName(name string) string {
	return Namespace + "." + name
}

// Counter 获取或者注册计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(fullName(name), go_metrics.DefaultRegistry)
}

// Gauge 获取或者注册 gauge
func Gauge(name string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(fullName(name), go_metrics.DefaultRegistry)
}

// Timer 获取或者注册 timer
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(fullName(name), go_metrics.DefaultRegistry)
}

// Inc counter 加 1
func Inc(name string) {
	Counter(name).Inc(1)
}

// Snapshot 当前所有计数器和gauge的值
func Snapshot() map[string]int64 {
	values := make(map[string]int64)
	go_metrics.DefaultRegistry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			values[name] = m.Count()
		case go_metrics.Gauge:
			values[name] = m.Value()
		case go_metrics.Timer:
			values[name] = m.Count()
		}
	})
	return values
}

var (
	startOnce sync.Once
	quit      = make(chan struct{})
)

//StartMetrics 根据配置文件相关参数启动日志输出
func StartMetrics(cfg *types.Metrics) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	startOnce.Do(func() {
		duration := time.Duration(cfg.Duration) * time.Second
		mlog.Info("StartMetrics with log reporter", "duration", duration)
		go report(duration)
	})
}

// StopMetrics 停止日志输出
func StopMetrics() {
	select {
	case <-quit:
	default:
		close(quit)
	}
}

func report(duration time.Duration) {
	ticker := time.NewTicker(duration)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			logSnapshot()
		case <-quit:
			return
		}
	}
}

func logSnapshot() {
	values := Snapshot()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	ctx := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		ctx = append(ctx, name, values[name])
	}
	mlog.Info("metrics", ctx...)
}
