package txgen_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/txgen/internal/chain"
	"github.com/Mohsinsiddi/txgen/internal/txgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteConsoleSingleSnippet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, txgen.WriteConsole(&buf, []txgen.Transaction{findTx(t, "base", "USDC")}))

	want := `
// Base (Chain ID: 8453)
// Make sure your wallet is on this network!

// Enable USDC:
await ethereum.request({
  method: 'eth_sendTransaction',
  params: [{
    from: ethereum.selectedAddress,
    to: '0x8B173c2E4C84b4bdD8c656F3d47Bc4259594Bd48',
    data: '0xeb0835bf000000000000000000000000833589fcd6edb6e08f4c7c32d4f71b54bda02913',
    value: '0x0'
  }]
});

`
	assert.Equal(t, want, buf.String())
}

func TestWriteConsoleAllTransactions(t *testing.T) {
	var buf bytes.Buffer
	txs := allTxs()
	require.NoError(t, txgen.WriteConsole(&buf, txs))
	out := buf.String()

	assert.Equal(t, len(txs), strings.Count(out, "await ethereum.request({"))
	assert.Equal(t, 4, strings.Count(out, "// Make sure your wallet is on this network!"))
	for _, c := range chain.NewRegistry().All() {
		assert.Contains(t, out, "// "+c.DisplayName+" (Chain ID: ")
	}
	for _, tx := range txs {
		assert.Contains(t, out, "data: '"+tx.Calldata+"'")
	}

	// Network headers come out in table order.
	arb := strings.Index(out, "Arbitrum One")
	poly := strings.Index(out, "Polygon")
	assert.Less(t, arb, poly)
}

func TestWriteConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, txgen.WriteConsole(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteConsoleWriterError(t *testing.T) {
	err := txgen.WriteConsole(failWriter{}, allTxs())
	assert.Error(t, err)
}

func TestWriteCurlSingleSnippet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, txgen.WriteCurl(&buf, []txgen.Transaction{findTx(t, "polygon", "USDT")}, ""))

	want := `
# Polygon

# Enable USDT:
curl -X POST -H 'Content-Type: application/json' \
  -d '{
    "to": "0x8B173c2E4C84b4bdD8c656F3d47Bc4259594Bd48",
    "data": "0xeb0835bf000000000000000000000000c2132d05d31c914a87c6611c10748aeb04b58e8f",
    "value": "0x0"
  }' \
  YOUR_WALLET_API_ENDPOINT
`
	assert.Equal(t, want, buf.String())
}

func TestWriteCurlCustomEndpoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, txgen.WriteCurl(&buf, allTxs(), "http://localhost:8080/tx"))
	out := buf.String()

	assert.NotContains(t, out, txgen.DefaultEndpoint)
	assert.Equal(t, 12, strings.Count(out, "  http://localhost:8080/tx\n"))
	assert.Equal(t, 12, strings.Count(out, "curl -X POST"))
	assert.Equal(t, 4, strings.Count(out, "\n# Enable ETH:\n"))
}

func TestWriteCurlWriterError(t *testing.T) {
	err := txgen.WriteCurl(failWriter{}, allTxs(), "")
	assert.Error(t, err)
}
