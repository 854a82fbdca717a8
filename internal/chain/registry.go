package chain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrChainNotFound is returned when a chain is not in the registry.
var ErrChainNotFound = errors.New("chain not found")

// Token is one token the enable contract accepts on a chain, together with
// the calldata that enables it. Calldata is looked up, never computed.
type Token struct {
	Symbol   string
	Calldata string
}

// Chain holds the metadata and token list for a single network.
type Chain struct {
	Name            string
	DisplayName     string
	ChainID         int64
	NativeCurrency  string
	MainnetExplorer string
	Tokens          []Token
}

// Registry is the fixed network table. It is never mutated after NewRegistry.
type Registry struct {
	chains []Chain
	byName map[string]int
}

// NewRegistry returns the registry of all supported networks.
func NewRegistry() *Registry {
	chains := allChains()
	r := &Registry{
		chains: chains,
		byName: make(map[string]int, len(chains)),
	}
	for i, c := range r.chains {
		r.byName[c.Name] = i
	}
	return r
}

// All returns a copy of every chain in table order.
func (r *Registry) All() []Chain {
	out := make([]Chain, len(r.chains))
	for i, c := range r.chains {
		out[i] = c.clone()
	}
	return out
}

// GetByName finds a chain by its key (e.g. "base", "arbitrum").
func (r *Registry) GetByName(name string) (*Chain, error) {
	i, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrChainNotFound
	}
	c := r.chains[i].clone()
	return &c, nil
}

// Select returns the named chains in table order, regardless of the order
// they were asked for. An empty selection returns every chain.
func (r *Registry) Select(names []string) ([]Chain, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	want := make(map[int]bool, len(names))
	for _, n := range names {
		i, ok := r.byName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrChainNotFound, n)
		}
		want[i] = true
	}
	out := make([]Chain, 0, len(want))
	for i, c := range r.chains {
		if want[i] {
			out = append(out, c.clone())
		}
	}
	return out, nil
}

// Names returns every chain key in table order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.chains))
	for i, c := range r.chains {
		out[i] = c.Name
	}
	return out
}

// Explorer returns the block explorer base URL.
func (c *Chain) Explorer() string {
	return c.MainnetExplorer
}

// AddressURL returns the explorer page for addr.
func (c *Chain) AddressURL(addr string) string {
	return strings.TrimRight(c.Explorer(), "/") + "/address/" + addr
}

func (c Chain) clone() Chain {
	c.Tokens = append([]Token(nil), c.Tokens...)
	return c
}

// --- chain data ---

func allChains() []Chain {
	return []Chain{
		// 1. Arbitrum
		{
			Name: "arbitrum", DisplayName: "Arbitrum One", ChainID: 42161,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://arbiscan.io",
			Tokens: []Token{
				{Symbol: "ETH", Calldata: "0xeb0835bf0000000000000000000000000000000000000000000000000000000000000000"},
				{Symbol: "USDC", Calldata: "0xeb0835bf000000000000000000000000af88d065e77c8cc2239327c5edb3a432268e5831"},
				{Symbol: "USDT", Calldata: "0xeb0835bf000000000000000000000000fd086bc7cd5c481dcc9c85ebe478a1c0b69fcbb9"},
			},
		},
		// 2. Base
		{
			Name: "base", DisplayName: "Base", ChainID: 8453,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://basescan.org",
			Tokens: []Token{
				{Symbol: "ETH", Calldata: "0xeb0835bf0000000000000000000000000000000000000000000000000000000000000000"},
				{Symbol: "USDC", Calldata: "0xeb0835bf000000000000000000000000833589fcd6edb6e08f4c7c32d4f71b54bda02913"},
				{Symbol: "USDT", Calldata: "0xeb0835bf000000000000000000000000fde4c96c8593536e31f229ea8f37b2ada2699bb2"},
			},
		},
		// 3. Optimism
		{
			Name: "optimism", DisplayName: "Optimism", ChainID: 10,
			NativeCurrency:  "ETH",
			MainnetExplorer: "https://optimistic.etherscan.io",
			Tokens: []Token{
				{Symbol: "ETH", Calldata: "0xeb0835bf0000000000000000000000000000000000000000000000000000000000000000"},
				{Symbol: "USDC", Calldata: "0xeb0835bf0000000000000000000000000b2c639c533813f4aa9d7837caf62653d097ff85"},
				{Symbol: "USDT", Calldata: "0xeb0835bf00000000000000000000000094b008aa00579c1307b0ef2c499ad98a8ce58e58"},
			},
		},
		// 4. Polygon
		{
			Name: "polygon", DisplayName: "Polygon", ChainID: 137,
			NativeCurrency:  "POL",
			MainnetExplorer: "https://polygonscan.com",
			Tokens: []Token{
				{Symbol: "ETH", Calldata: "0xeb0835bf0000000000000000000000000000000000000000000000000000000000000000"},
				{Symbol: "USDC", Calldata: "0xeb0835bf0000000000000000000000002791bca1f2de4661ed88a30c99a7a9449aa84174"},
				{Symbol: "USDT", Calldata: "0xeb0835bf000000000000000000000000c2132d05d31c914a87c6611c10748aeb04b58e8f"},
			},
		},
	}
}
