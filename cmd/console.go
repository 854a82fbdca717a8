package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/txgen/internal/chain"
	"github.com/Mohsinsiddi/txgen/internal/txgen"
	"github.com/Mohsinsiddi/txgen/internal/ui"
	"github.com/spf13/cobra"
)

var consolePick bool

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Print eth_sendTransaction snippets for a browser console",
	Long: `Print one ethereum.request({ method: 'eth_sendTransaction', ... }) snippet per
network and token. Paste a snippet into the console of a page with an
injected wallet, after switching the wallet to the matching network.

Examples:
  txgen console
  txgen console --network polygon
  txgen console --pick`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		txs, err := selectedTransactions()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if consolePick {
			chains, err := selectedChains()
			if err != nil {
				return err
			}
			items := make([]ui.PickerItem, 0, len(chains))
			for _, c := range chains {
				items = append(items, ui.PickerItem{
					Label:    c.DisplayName,
					SubLabel: "chain " + strconv.FormatInt(c.ChainID, 10),
					Value:    c.Name,
				})
			}
			picked, err := ui.PickItem("Pick a network", items)
			if err != nil {
				return err
			}
			if picked == "" {
				fmt.Fprintln(out, ui.Warn("cancelled"))
				return nil
			}
			if txs, err = networkTransactions(picked); err != nil {
				return err
			}
		}

		return emitConsole(out, txs)
	},
}

// networkTransactions returns the transactions of the single network name.
func networkTransactions(name string) ([]txgen.Transaction, error) {
	c, err := chain.NewRegistry().GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return txgen.FromChains([]chain.Chain{*c}), nil
}

func init() {
	consoleCmd.Flags().BoolVar(&consolePick, "pick", false, "choose one network interactively")
}
