// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置
type Config struct {
	Title   string          `json:"title,omitempty"`
	Log     *Log            `json:"log,omitempty"`
	Store   *Store          `json:"store,omitempty"`
	RPC     *RPC            `json:"rpc,omitempty"`
	Exec    *Exec           `json:"exec,omitempty"`
	Oracle  *Oracle         `json:"oracle,omitempty"`
	Metrics *Metrics        `json:"metrics,omitempty"`
	Pprof   *Pprof          `json:"pprof,omitempty"`
	Genesis []*GenesisAlloc `json:"genesis,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

// Store 存储配置
type Store struct {
	// 数据库类型 leveldb/badgerdb/memdb
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
	// 状态读缓存条数
	StateCacheSize int32 `json:"stateCacheSize,omitempty"`
}

// RPC 配置
type RPC struct {
	JrpcBindAddr string   `json:"jrpcBindAddr,omitempty"`
	Whitelist    []string `json:"whitelist,omitempty"`
	CorsOrigins  []string `json:"corsOrigins,omitempty"`
	// 写接口等待执行结果的超时时间（单位：秒）
	TxTimeout int64 `json:"txTimeout,omitempty"`
}

// Exec 执行器配置, 子配置放在 exec.sub 下
type Exec struct {
	// 执行队列长度
	QueueSize int32 `json:"queueSize,omitempty"`
}

// Oracle 随机数服务配置
type Oracle struct {
	Enable bool `json:"enable,omitempty"`
	// VRF私钥种子(hex)，为空时随机生成
	KeySeed string `json:"keySeed,omitempty"`
	// 随机数服务地址所用的执行器名
	Name string `json:"name,omitempty"`
	// 出块间隔（单位：毫秒）
	TickInterval                int64 `json:"tickInterval,omitempty"`
	MinimumRequestConfirmations int32 `json:"minimumRequestConfirmations,omitempty"`
	MaxGasLimit                 int32 `json:"maxGasLimit,omitempty"`
	MaxNumWords                 int32 `json:"maxNumWords,omitempty"`
	// 已开通的订阅编号
	Subscriptions []uint64 `json:"subscriptions,omitempty"`
	// 可用的 gas lane, key hash -> 名称
	Lanes map[string]string `json:"lanes,omitempty"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool `json:"enableMetrics,omitempty"`
	// 日志输出间隔（单位：秒）
	Duration int64 `json:"duration,omitempty"`
}

// Pprof 配置
type Pprof struct {
	ListenAddr string `json:"listenAddr,omitempty"`
}

// GenesisAlloc 创世分配, Amount 为十进制coins
type GenesisAlloc struct {
	Addr   string `json:"addr,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// ConfigSubModule 子模块配置, 以json编码保存
type ConfigSubModule struct {
	Exec map[string][]byte
}

// InitCfg 从文件加载配置
func InitCfg(path string) (*Config, *ConfigSubModule) {
	return InitCfgString(readFile(path))
}

// InitCfgString 从字符串加载配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, err := initCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func initCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	setDefault(&cfg)
	return &cfg, nil
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var raw map[string]interface{}
	if _, err := tml.Decode(cfgstring, &raw); err != nil {
		return nil, errors.Wrap(err, "decode sub config")
	}
	sub := &ConfigSubModule{Exec: make(map[string][]byte)}
	exec, ok := raw["exec"].(map[string]interface{})
	if !ok {
		return sub, nil
	}
	subcfg, ok := exec["sub"].(map[string]interface{})
	if !ok {
		return sub, nil
	}
	for name, v := range subcfg {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "encode sub config %s", name)
		}
		sub.Exec[name] = data
	}
	return sub, nil
}

func setDefault(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{Loglevel: "info", LogConsoleLevel: "info"}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{Driver: "memdb"}
	}
	if cfg.Store.StateCacheSize <= 0 {
		cfg.Store.StateCacheSize = 10240
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.TxTimeout <= 0 {
		cfg.RPC.TxTimeout = 30
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.QueueSize <= 0 {
		cfg.Exec.QueueSize = 1024
	}
	if cfg.Oracle == nil {
		cfg.Oracle = &Oracle{}
	}
	if cfg.Oracle.Name == "" {
		cfg.Oracle.Name = "vrfcoordinator"
	}
	if cfg.Oracle.TickInterval <= 0 {
		cfg.Oracle.TickInterval = 1000
	}
	if cfg.Oracle.MaxNumWords <= 0 {
		cfg.Oracle.MaxNumWords = 500
	}
	if cfg.Oracle.MaxGasLimit <= 0 {
		cfg.Oracle.MaxGasLimit = 2500000
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
}
