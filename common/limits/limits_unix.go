// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build !windows,!plan9

// Package limits 调整进程可打开的文件数, leveldb 和 badger 都需要较多的文件句柄
package limits

import (
	"syscall"

	"github.com/pkg/errors"
)

const (
	fileLimitWant = 2048
	fileLimitMin  = 1024
)

// SetLimits 把 RLIMIT_NOFILE 提高到 fileLimitWant, 硬上限不足时退到 fileLimitMin
func SetLimits() error {
	rLimit, err := GetLimits()
	if err != nil {
		return err
	}
	if rLimit.Cur >= fileLimitWant {
		return nil
	}
	if rLimit.Max < fileLimitMin {
		return errors.Errorf("need at least %v file descriptors, hard limit %v", fileLimitMin, rLimit.Max)
	}
	rLimit.Cur = fileLimitWant
	if rLimit.Max < fileLimitWant {
		rLimit.Cur = rLimit.Max
	}
	if err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err == nil {
		return nil
	}
	rLimit.Cur = fileLimitMin
	return errors.Wrap(syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit), "setrlimit")
}

//GetLimits 获取limits
func GetLimits() (syscall.Rlimit, error) {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		return syscall.Rlimit{}, errors.Wrap(err, "getrlimit")
	}
	return rLimit, nil
}
