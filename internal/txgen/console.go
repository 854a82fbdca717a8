package txgen

import (
	"fmt"
	"io"
	"strings"
)

// WriteConsole writes a browser-console snippet per transaction. Each
// snippet calls ethereum.request with eth_sendTransaction from the
// currently selected account.
func WriteConsole(w io.Writer, txs []Transaction) error {
	var sb strings.Builder
	for i, tx := range txs {
		if i == 0 || txs[i-1].NetworkKey != tx.NetworkKey {
			fmt.Fprintf(&sb, "\n// %s (Chain ID: %d)\n", tx.NetworkName, tx.ChainID)
			sb.WriteString("// Make sure your wallet is on this network!\n\n")
		}
		fmt.Fprintf(&sb, "// Enable %s:\n", tx.TokenSymbol)
		sb.WriteString("await ethereum.request({\n")
		sb.WriteString("  method: 'eth_sendTransaction',\n")
		sb.WriteString("  params: [{\n")
		sb.WriteString("    from: ethereum.selectedAddress,\n")
		fmt.Fprintf(&sb, "    to: '%s',\n", tx.To)
		fmt.Fprintf(&sb, "    data: '%s',\n", tx.Calldata)
		fmt.Fprintf(&sb, "    value: '%s'\n", tx.Value)
		sb.WriteString("  }]\n")
		sb.WriteString("});\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
