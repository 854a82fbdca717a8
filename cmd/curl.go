package cmd

import (
	"github.com/spf13/cobra"
)

var curlCmd = &cobra.Command{
	Use:   "curl",
	Short: "Print curl templates that POST each transaction to a wallet API",
	Long: `Print one curl POST command per network and token. The JSON body carries
to, data and value. The target defaults to a placeholder; pass --endpoint
to fill in your wallet's API.

Examples:
  txgen curl
  txgen curl --endpoint http://localhost:8545/wallet/send`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		txs, err := selectedTransactions()
		if err != nil {
			return err
		}
		return emitCurl(cmd.OutOrStdout(), txs)
	},
}
