package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"evm-kit/internal/config"
	"github.com/spf13/cobra"
)

const (
	ConfigFlag     = "config"
	LogLevelFlag   = "log-level"
	JSONOutputFlag = "json"
	RPCURLFlag     = "rpc-url"
	TimeoutFlag    = "timeout"
)

// loadConfig resolves the configuration of cmd. Flags set explicitly on
// the command line win over the environment and the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(ConfigFlag)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		LogLevelFlag: &cfg.LogLevel,
		RPCURLFlag:   &cfg.RPCURL,
		TimeoutFlag:  &cfg.Timeout,
	}

	for name, field := range overrides {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		*field = flag.Value.String()
	}

	if _, err := cfg.CallTimeout(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CommandResult is the output of a command in both formats
type CommandResult interface {
	GetOutput() string
}

func writeOutput(cmd *cobra.Command, result CommandResult) error {
	return writeResult(cmd.OutOrStdout(), isJSONOutput(cmd), result)
}

func writeResult(w io.Writer, jsonOutput bool, result CommandResult) error {
	if !jsonOutput {
		_, err := fmt.Fprintln(w, result.GetOutput())

		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func isJSONOutput(cmd *cobra.Command) bool {
	jsonOutput, _ := cmd.Flags().GetBool(JSONOutputFlag)

	return jsonOutput
}
