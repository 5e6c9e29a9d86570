// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// CheckPathExists 检查文件夹是否存在
func CheckPathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDir 递归创建目录
func MakeDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// Pwd 可执行文件所在目录
func Pwd() string {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		panic(err)
	}
	return dir
}
