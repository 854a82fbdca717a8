package txgen

import (
	"fmt"
	"io"
	"strings"
)

// DefaultEndpoint is the placeholder curl snippets target when no endpoint
// is given.
const DefaultEndpoint = "YOUR_WALLET_API_ENDPOINT"

// WriteCurl writes a curl POST template per transaction. The JSON body
// carries to, data and value; endpoint is inserted verbatim.
func WriteCurl(w io.Writer, txs []Transaction, endpoint string) error {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	var sb strings.Builder
	for i, tx := range txs {
		if i == 0 || txs[i-1].NetworkKey != tx.NetworkKey {
			fmt.Fprintf(&sb, "\n# %s\n", tx.NetworkName)
		}
		fmt.Fprintf(&sb, "\n# Enable %s:\n", tx.TokenSymbol)
		sb.WriteString("curl -X POST -H 'Content-Type: application/json' \\\n")
		sb.WriteString("  -d '{\n")
		fmt.Fprintf(&sb, "    \"to\": \"%s\",\n", tx.To)
		fmt.Fprintf(&sb, "    \"data\": \"%s\",\n", tx.Calldata)
		fmt.Fprintf(&sb, "    \"value\": \"%s\"\n", tx.Value)
		sb.WriteString("  }' \\\n")
		fmt.Fprintf(&sb, "  %s\n", endpoint)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
