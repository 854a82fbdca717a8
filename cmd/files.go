package cmd

import (
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Write one JSON transaction file per network and token",
	Long: `Write tx_<network>_<token>.json files into the output directory.

Each file holds {to, value, data, chainId} and can be imported by wallets
that accept pre-formatted transactions. Existing files are overwritten.

Examples:
  txgen files
  txgen files --out ./payloads
  txgen files --network base,optimism`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		txs, err := selectedTransactions()
		if err != nil {
			return err
		}
		return emitFiles(cmd.OutOrStdout(), txs)
	},
}
