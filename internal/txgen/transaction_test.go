package txgen_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/txgen/internal/chain"
	"github.com/Mohsinsiddi/txgen/internal/txgen"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTxs() []txgen.Transaction {
	return txgen.FromChains(chain.NewRegistry().All())
}

func findTx(t *testing.T, network, token string) txgen.Transaction {
	t.Helper()
	for _, tx := range allTxs() {
		if tx.NetworkKey == network && tx.TokenSymbol == token {
			return tx
		}
	}
	t.Fatalf("no transaction for %s/%s", network, token)
	return txgen.Transaction{}
}

func TestZeroValue(t *testing.T) {
	assert.Equal(t, "0x0", txgen.ZeroValue)
}

func TestFromChainsCount(t *testing.T) {
	assert.Len(t, allTxs(), 12)
}

func TestFromChainsOrder(t *testing.T) {
	var got []string
	for _, tx := range allTxs() {
		got = append(got, tx.NetworkKey+"/"+tx.TokenSymbol)
	}
	assert.Equal(t, []string{
		"arbitrum/ETH", "arbitrum/USDC", "arbitrum/USDT",
		"base/ETH", "base/USDC", "base/USDT",
		"optimism/ETH", "optimism/USDC", "optimism/USDT",
		"polygon/ETH", "polygon/USDC", "polygon/USDT",
	}, got)
}

func TestFromChainsEmpty(t *testing.T) {
	assert.Empty(t, txgen.FromChains(nil))
}

func TestRecipientAndValueConstant(t *testing.T) {
	for _, tx := range allTxs() {
		assert.Equal(t, chain.ContractAddress, tx.To)
		assert.Equal(t, "0x0", tx.Value)
		p := tx.Payload()
		assert.Equal(t, chain.ContractAddress, p.To)
		assert.Equal(t, "0x0", p.Value)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		network, token, want string
	}{
		{"base", "USDC", "tx_base_usdc.json"},
		{"arbitrum", "ETH", "tx_arbitrum_eth.json"},
		{"polygon", "USDT", "tx_polygon_usdt.json"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, findTx(t, tt.network, tt.token).FileName())
		})
	}
}

func TestFileNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tx := range allTxs() {
		name := tx.FileName()
		assert.False(t, seen[name], "duplicate file name %s", name)
		seen[name] = true
		assert.Equal(t, strings.ToLower(name), name)
	}
}

func TestMarshalPayloadBaseUSDC(t *testing.T) {
	data, err := txgen.MarshalPayload(findTx(t, "base", "USDC").Payload())
	require.NoError(t, err)

	want := `{
  "to": "0x8B173c2E4C84b4bdD8c656F3d47Bc4259594Bd48",
  "value": "0x0",
  "data": "0xeb0835bf000000000000000000000000833589fcd6edb6e08f4c7c32d4f71b54bda02913",
  "chainId": 8453
}`
	assert.Equal(t, want, string(data))
}

func TestMarshalPayloadRoundTrip(t *testing.T) {
	for _, tx := range allTxs() {
		data, err := txgen.MarshalPayload(tx.Payload())
		require.NoError(t, err)

		var p txgen.Payload
		require.NoError(t, json.Unmarshal(data, &p))
		again, err := txgen.MarshalPayload(p)
		require.NoError(t, err)
		assert.Equal(t, string(data), string(again), tx.FileName())
	}
}

func TestDescribeToken(t *testing.T) {
	d, err := findTx(t, "base", "USDC").Describe()
	require.NoError(t, err)
	assert.Equal(t, chain.EnableSelector, d.Selector)
	assert.Equal(t, 36, d.Size)
	assert.True(t, d.HasArgument)
	assert.Equal(t, common.HexToAddress("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"), d.Argument)
}

func TestDescribeNativeToken(t *testing.T) {
	d, err := findTx(t, "optimism", "ETH").Describe()
	require.NoError(t, err)
	assert.True(t, d.HasArgument)
	assert.Equal(t, common.Address{}, d.Argument)
}

func TestDescribeSelectorOnly(t *testing.T) {
	d, err := txgen.Transaction{Calldata: "0xeb0835bf"}.Describe()
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size)
	assert.False(t, d.HasArgument)
}

func TestDescribeMalformed(t *testing.T) {
	_, err := txgen.Transaction{NetworkKey: "base", TokenSymbol: "X", Calldata: "eb0835bf"}.Describe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base/X")

	_, err = txgen.Transaction{Calldata: "0xeb08"}.Describe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shorter than a selector")
}
