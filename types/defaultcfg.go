// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var cfgstring = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "debug"
logConsoleLevel = "info"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/coinflip.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
# 最多保存的历史日志文件个数
maxBackups = 100
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地事件（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = true
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[store]
driver="memdb"
dbPath="datadir"
dbCache=16
stateCacheSize=10240

[rpc]
jrpcBindAddr="localhost:8801"
whitelist=["127.0.0.1"]
corsOrigins=["*"]
txTimeout=30

[exec]
queueSize=1024

[exec.sub.coinflip]
owner="1Bsg9j6gW83sShoee1fZAt9TkUjcrCgA9S"
# 为空时使用 vrfcoordinator 执行器地址, 需要和 oracle.name 一致
coordinator=""
keyHash="0x474e34a077df58807dbe9c96d3c009b23b3c6d0cce433e59bbf5b34f823bc56c"
subId=1
requestConfirmations=3
callbackGasLimit=100000

[oracle]
enable=true
keySeed=""
name="vrfcoordinator"
tickInterval=1000
minimumRequestConfirmations=3
maxGasLimit=2500000
maxNumWords=500
subscriptions=[1]

[oracle.lanes]
"0x474e34a077df58807dbe9c96d3c009b23b3c6d0cce433e59bbf5b34f823bc56c"="30gwei"

[metrics]
enableMetrics=false
duration=60

[[genesis]]
addr="14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
amount="100000"

[[genesis]]
addr="12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"
amount="100000"

[[genesis]]
addr="1BQXS6TxaYYG5mADaWij4AxhZZUTpw95a5"
amount="100000"
`

// GetDefaultCfgstring 获取默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}
