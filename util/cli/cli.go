// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/pluginmgr"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coinflip-cli",
	Short: "coinflip client tools",
}

var rootOnce sync.Once

func init() {
	rootCmd.AddCommand(
		AccountCmd(),
	)
}

// RootCmd 加载插件命令后的根命令
func RootCmd(RPCAddr string) *cobra.Command {
	rootOnce.Do(func() {
		pluginmgr.AddCmd(rootCmd)
		rootCmd.PersistentFlags().String("rpc_laddr", RPCAddr, "http url")
	})
	return rootCmd
}

//Run :
func Run(RPCAddr string) {
	log.SetLogLevel("error")
	cmd := RootCmd(RPCAddr)
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
