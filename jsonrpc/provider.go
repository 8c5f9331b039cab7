package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks evm-kit/jsonrpc Provider

// Provider is anything able to dispatch a named remote call
// with positional params
type Provider interface {
	Send(ctx context.Context, method string, params []any) (any, error)
}

// ProviderFunc lets an ordinary function act as a Provider
type ProviderFunc func(ctx context.Context, method string, params []any) (any, error)

func (f ProviderFunc) Send(ctx context.Context, method string, params []any) (any, error) {
	return f(ctx, method, params)
}

// RPCProvider is a Provider backed by a go-ethereum RPC client.
// Results are returned as raw JSON, untouched.
type RPCProvider struct {
	client *rpc.Client
}

// Dial connects to the node at rawURL (http, ws or ipc)
func Dial(ctx context.Context, rawURL string, options ...rpc.ClientOption) (*RPCProvider, error) {
	client, err := rpc.DialOptions(ctx, rawURL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}

	return NewRPCProvider(client), nil
}

func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{
		client: client,
	}
}

// Send issues the call. Errors are returned unwrapped so their message
// and code reach the caller as the node sent them.
func (p *RPCProvider) Send(ctx context.Context, method string, params []any) (any, error) {
	var result json.RawMessage
	if err := p.client.CallContext(ctx, &result, method, params...); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *RPCProvider) Close() {
	p.client.Close()
}
