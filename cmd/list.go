package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/txgen/internal/chain"
	"github.com/Mohsinsiddi/txgen/internal/txgen"
	"github.com/Mohsinsiddi/txgen/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the transaction table without writing anything",
	Long: `List every (network, token) transaction with its chain ID, selector, the
token address carried in the calldata, and the file name it is written to.

The calldata is shown as stored. It is not checked against the contract's
ABI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chains, err := selectedChains()
		if err != nil {
			return err
		}
		txs := txgen.FromChains(chains)
		out := cmd.OutOrStdout()

		tbl := ui.NewTable([]ui.Column{
			{Title: "Network", Width: 10},
			{Title: "Chain ID", Width: 8, Right: true},
			{Title: "Token", Width: 6},
			{Title: "Selector", Width: 10},
			{Title: "Token Address", Width: 42},
			{Title: "File", Width: 24},
		})
		for _, tx := range txs {
			d, err := tx.Describe()
			if err != nil {
				return err
			}
			arg := "-"
			if d.HasArgument {
				arg = d.Argument.Hex()
			}
			tbl.AddRow(ui.Row{
				tx.NetworkKey,
				strconv.FormatInt(tx.ChainID, 10),
				tx.TokenSymbol,
				d.Selector,
				arg,
				tx.FileName(),
			})
		}
		fmt.Fprintln(out, tbl.Render())

		pairs := [][2]string{
			{"Address", ui.Addr(chain.ContractAddress)},
			{"Value", txgen.ZeroValue},
			{"Transactions", strconv.Itoa(len(txs))},
		}
		for _, c := range chains {
			pairs = append(pairs, [2]string{c.DisplayName, c.AddressURL(chain.ContractAddress)})
		}
		fmt.Fprintln(out, ui.KeyValueBlock("Enable Contract", pairs))

		var networks [][2]string
		for _, c := range chains {
			networks = append(networks, [2]string{c.DisplayName, c.Explorer() + "  " + ui.Meta("(native "+c.NativeCurrency+")")})
		}
		fmt.Fprintln(out, ui.KeyValueBlock("Networks", networks))
		fmt.Fprintln(out, ui.Warn("calldata is carried as-is and not verified against the contract ABI"))
		return nil
	},
}
