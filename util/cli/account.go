// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	cfrpc "github.com/33cn/coinflip/plugin/dapp/coinflip/rpc"
	"github.com/33cn/coinflip/rpc/jsonclient"
	"github.com/33cn/coinflip/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBalanceCmd(),
	)
	return cmd
}

// GetBalanceCmd get balance of an execer
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	_ = cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", `execer name, empty for the coins account, "coinflip" for escrow`)
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	execer, _ := cmd.Flags().GetString("exec")
	params := &types.ReqBalance{
		Addresses: []string{addr},
		Execer:    execer,
	}
	var res []*cfrpc.AccountResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, cfrpc.JRPCName+".GetBalance", params, &res)
	ctx.SetResultCb(parseGetBalanceRes)
	ctx.Run()
}

func parseGetBalanceRes(arg interface{}) (interface{}, error) {
	res := *arg.(*[]*cfrpc.AccountResult)
	if len(res) == 0 {
		return nil, types.ErrNotFound
	}
	return res[0], nil
}
