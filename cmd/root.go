package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Mohsinsiddi/txgen/internal/chain"
	"github.com/Mohsinsiddi/txgen/internal/config"
	"github.com/Mohsinsiddi/txgen/internal/txgen"
	"github.com/Mohsinsiddi/txgen/internal/ui"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/txgen/cmd.Version=1.2.3" .
var Version = "1.0.0"

var opts config.Options

// rootCmd is the top-level command. Without a sub-command it runs every
// emitter in turn: files, console snippets, curl snippets.
var rootCmd = &cobra.Command{
	Use:   "txgen",
	Short: "Generate ready-to-sign token enable transactions",
	Long: `txgen emits unsigned transactions that enable tokens on the enable contract
across Arbitrum One, Base, Optimism and Polygon.

Running txgen with no sub-command writes one JSON file per (network, token)
into the output directory, then prints browser-console snippets and curl
templates for the same transactions.

Nothing is signed or sent: the output is meant to be imported into, or
pasted into, a wallet you already use.

Running txgen with no flags and no environment is the reference behavior:
every network, files in the working directory, placeholder curl endpoint.
--out (or TXGEN_OUT_DIR), --network and --endpoint only narrow or redirect
that run.`,
	Version:      Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		txs, err := selectedTransactions()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ui.Banner())

		if err := emitFiles(out, txs); err != nil {
			return err
		}
		if err := emitConsole(out, txs); err != nil {
			return err
		}
		if err := emitCurl(out, txs); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Success("Done! Use any of the methods above."))
		fmt.Fprintln(out, ui.Hint("The JSON files can be imported into many wallets."))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.OutDir, "out", config.DefaultOutDir(), "directory for JSON files (env: "+config.EnvOutDir+")")
	rootCmd.PersistentFlags().StringSliceVar(&opts.Networks, "network", nil, "networks to emit, comma separated (default: all)")
	rootCmd.PersistentFlags().StringVar(&opts.Endpoint, "endpoint", txgen.DefaultEndpoint, "endpoint used in curl templates")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		filesCmd,
		consoleCmd,
		curlCmd,
		listCmd,
	)
}

// selectedChains returns the chains named by --network, in table order.
func selectedChains() ([]chain.Chain, error) {
	reg := chain.NewRegistry()
	chains, err := reg.Select(opts.Networks)
	if err != nil {
		return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(reg.Names(), ", "))
	}
	return chains, nil
}

func selectedTransactions() ([]txgen.Transaction, error) {
	chains, err := selectedChains()
	if err != nil {
		return nil, err
	}
	return txgen.FromChains(chains), nil
}

// emitFiles writes the JSON files one network at a time, printing each
// network's header before its files are written. A failure stops the pass
// after reporting the files already written for that network.
func emitFiles(out io.Writer, txs []txgen.Transaction) error {
	if err := opts.CheckOutDir(); err != nil {
		return err
	}
	for start := 0; start < len(txs); {
		end := start + 1
		for end < len(txs) && txs[end].NetworkKey == txs[start].NetworkKey {
			end++
		}
		group := txs[start:end]

		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.NetworkHeader(group[0].NetworkName, group[0].ChainID))

		paths, err := txgen.WriteFiles(opts.OutDir, group)
		for i, path := range paths {
			tx := group[i]
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Success("Created: "+tx.FileName()))
			fmt.Fprintln(out, "   Token: "+tx.TokenSymbol)
			if opts.Verbose {
				fmt.Fprintln(out, "   Path:  "+ui.Meta(path))
				fmt.Fprintln(out, "   Data:  "+ui.Addr(tx.Calldata))
			}
			fmt.Fprintln(out, "   "+ui.Meta("To use: import this JSON into your wallet"))
		}
		if err != nil {
			return err
		}
		start = end
	}
	return nil
}

func emitConsole(out io.Writer, txs []txgen.Transaction) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Section("📋 COMMANDS TO PASTE INTO THE BROWSER CONSOLE"))
	return txgen.WriteConsole(out, txs)
}

func emitCurl(out io.Writer, txs []txgen.Transaction) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Section("🔧 CURL COMMANDS FOR WALLETS WITH AN API"))
	return txgen.WriteCurl(out, txs, opts.Endpoint)
}
