package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the evm-kit command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evm-kit",
		Short: "EVM Kit - 256-bit word codec and JSON-RPC provider tooling",
		Long: `EVM Kit converts integers to and from canonical 256-bit EVM words
and sends JSON-RPC requests to an Ethereum node through a provider adapter
that always answers with a well-formed JSON-RPC response.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(
		ConfigFlag,
		"",
		"the path to the CLI config. Supports .yaml, .hcl and .json files",
	)

	rootCmd.PersistentFlags().String(
		LogLevelFlag,
		"INFO",
		"the log level for console output",
	)

	rootCmd.PersistentFlags().Bool(
		JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)

	rootCmd.AddCommand(
		GetWordCommand(),
		GetCallCommand(),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
