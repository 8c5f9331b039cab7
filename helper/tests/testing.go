package tests

import (
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

func newRPCServer(t *testing.T, services map[string]any) *rpc.Server {
	t.Helper()

	server := rpc.NewServer()

	for namespace, receiver := range services {
		require.NoError(t, server.RegisterName(namespace, receiver), "unable to register %s", namespace)
	}

	return server
}

// NewInProcClient starts an in-process RPC server exposing the given
// services (namespace -> receiver) and returns a client connected to it.
// Both are closed when the test ends.
func NewInProcClient(t *testing.T, services map[string]any) *rpc.Client {
	t.Helper()

	server := newRPCServer(t, services)
	client := rpc.DialInProc(server)

	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})

	return client
}

// NewHTTPServer serves the given services over HTTP on a free local
// port and returns the endpoint URL
func NewHTTPServer(t *testing.T, services map[string]any) string {
	t.Helper()

	server := newRPCServer(t, services)
	httpServer := httptest.NewServer(server)

	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})

	return httpServer.URL
}
