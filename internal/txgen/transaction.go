package txgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/txgen/internal/chain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroValue is the value every enable transaction carries.
var ZeroValue = hexutil.EncodeUint64(0)

// Transaction is one unsigned token-enable transaction: a single
// (network, token) row of the chain table bound to the enable contract.
type Transaction struct {
	NetworkKey  string
	ChainID     int64
	NetworkName string
	TokenSymbol string
	Calldata    string
	To          string
	Value       string
}

// Payload is the wallet-importable JSON form of a Transaction. Field order
// here is the key order on disk.
type Payload struct {
	To      string `json:"to"`
	Value   string `json:"value"`
	Data    string `json:"data"`
	ChainID int64  `json:"chainId"`
}

// FromChains flattens chains into transactions, keeping table order.
func FromChains(chains []chain.Chain) []Transaction {
	var txs []Transaction
	for _, c := range chains {
		for _, tok := range c.Tokens {
			txs = append(txs, Transaction{
				NetworkKey:  c.Name,
				ChainID:     c.ChainID,
				NetworkName: c.DisplayName,
				TokenSymbol: tok.Symbol,
				Calldata:    tok.Calldata,
				To:          chain.ContractAddress,
				Value:       ZeroValue,
			})
		}
	}
	return txs
}

// FileName returns the JSON file name for t: tx_<network>_<token>.json.
func (t Transaction) FileName() string {
	return fmt.Sprintf("tx_%s_%s.json", t.NetworkKey, strings.ToLower(t.TokenSymbol))
}

// Payload returns the JSON payload for t.
func (t Transaction) Payload() Payload {
	return Payload{
		To:      t.To,
		Value:   t.Value,
		Data:    t.Calldata,
		ChainID: t.ChainID,
	}
}

// MarshalPayload encodes p with two-space indentation and no trailing newline.
func MarshalPayload(p Payload) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Description holds display-only facts read off a transaction's calldata.
type Description struct {
	Selector string
	Size     int
	// Argument is the address in the first 32-byte word, if there is one.
	Argument    common.Address
	HasArgument bool
}

// Describe decodes t's calldata for display. It does not check that the
// calldata is correct for the contract; malformed hex is reported as-is.
func (t Transaction) Describe() (Description, error) {
	raw, err := hexutil.Decode(t.Calldata)
	if err != nil {
		return Description{}, fmt.Errorf("decoding calldata for %s/%s: %w", t.NetworkKey, t.TokenSymbol, err)
	}
	if len(raw) < 4 {
		return Description{}, fmt.Errorf("calldata for %s/%s is %d bytes, shorter than a selector", t.NetworkKey, t.TokenSymbol, len(raw))
	}

	d := Description{
		Selector: hexutil.Encode(raw[:4]),
		Size:     len(raw),
	}
	if args := raw[4:]; len(args) >= 32 {
		d.Argument = common.BytesToAddress(args[:32])
		d.HasArgument = true
	}
	return d, nil
}
