// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/33cn/coinflip/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlCrit, getLevel("crit"))
	assert.Equal(t, log15.LvlError, getLevel("unknown"))
}

func TestFillDefault(t *testing.T) {
	l := &types.Log{}
	fillDefaultValue(l)
	assert.Equal(t, "eror", l.Loglevel)
	assert.Equal(t, "eror", l.LogConsoleLevel)
}

func TestSetFileLog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.log")
	SetFileLog(&types.Log{
		Loglevel:        "debug",
		LogConsoleLevel: "crit",
		LogFile:         file,
		MaxFileSize:     1,
		MaxBackups:      1,
		MaxAge:          1,
	})
	New("module", "test").Info("hello", "key", "value")
	require.Nil(t, Close())

	data, err := os.ReadFile(file)
	require.Nil(t, err)
	assert.True(t, strings.Contains(string(data), "module=test"))
	assert.True(t, strings.Contains(string(data), "key=value"))
	SetLogLevel("crit")
}
