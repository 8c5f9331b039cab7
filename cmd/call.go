package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"evm-kit/internal/logger"
	"evm-kit/jsonrpc"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/cobra"
)

type CallResult struct {
	*jsonrpc.Response
}

func (r *CallResult) GetOutput() string {
	data, err := json.MarshalIndent(r.Response, "", "  ")
	if err != nil {
		return err.Error()
	}

	return string(data)
}

func GetCallCommand() *cobra.Command {
	callCmd := &cobra.Command{
		Use:   "call [method] [params...]",
		Short: "Send a JSON-RPC request to the node and print the response",
		Long: `Send a JSON-RPC request to the node and print the response.
Every param that is valid JSON is sent decoded, anything else as a string.
Provider failures are printed as a JSON-RPC error object.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCall,
	}

	callCmd.Flags().String(
		RPCURLFlag,
		"",
		"the node endpoint (http, ws or ipc)",
	)

	callCmd.Flags().String(
		TimeoutFlag,
		"",
		"the deadline for the call, 0 disables it",
	)

	return callCmd
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)
	defer func() {
		_ = log.Sync()
	}()

	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	timeout, _ := cfg.CallTimeout()
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	headers := http.Header{}
	for key, value := range cfg.Headers {
		headers.Set(key, value)
	}

	provider, err := jsonrpc.Dial(ctx, cfg.RPCURL, rpc.WithHeaders(headers))
	if err != nil {
		return err
	}
	defer provider.Close()

	log.Debugw("sending request", "url", cfg.RPCURL, "method", args[0], "params", len(params))

	resp := jsonrpc.NewEthereumProvider(log, provider).
		SendRequest(ctx, jsonrpc.NewRequest(args[0], params...))

	return writeOutput(cmd, &CallResult{resp})
}

// parseParams decodes every arg that is valid JSON, numbers are kept
// exact, anything else is sent as a plain string
func parseParams(args []string) ([]any, error) {
	params := make([]any, 0, len(args))

	for _, arg := range args {
		if !json.Valid([]byte(arg)) {
			params = append(params, arg)

			continue
		}

		decoder := json.NewDecoder(bytes.NewReader([]byte(arg)))
		decoder.UseNumber()

		var param any
		if err := decoder.Decode(&param); err != nil {
			return nil, err
		}

		params = append(params, param)
	}

	return params, nil
}
