package jsonrpc

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Callback receives the outcome of Send. err is reserved for failures
// of the adapter itself, provider failures arrive as resp.Error.
type Callback func(resp *Response, err error)

// EthereumProvider turns a raw Provider into a JSON-RPC endpoint that
// always answers with a response object and never fails the request
type EthereumProvider struct {
	logger   *zap.SugaredLogger
	provider Provider
	metrics  *Metrics
}

type Option func(*EthereumProvider)

// WithMetrics sets the metrics the adapter reports to
func WithMetrics(m *Metrics) Option {
	return func(e *EthereumProvider) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewEthereumProvider wraps provider
func NewEthereumProvider(logger *zap.SugaredLogger, provider Provider, opts ...Option) *EthereumProvider {
	if provider == nil {
		panic("BUG: nil provider")
	}

	e := &EthereumProvider{
		logger:   logger.Named("jsonrpc"),
		provider: provider,
		metrics:  NilMetrics(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SendRequest forwards req to the provider and waits for the answer.
// The returned response echoes the version and id of req. It carries
// either the provider's result as is, or the provider's error message.
func (e *EthereumProvider) SendRequest(ctx context.Context, req *Request) *Response {
	if req == nil {
		panic("BUG: nil request")
	}

	e.logger.Debugw("handle", "id", req.ID, "method", req.Method)

	e.metrics.Requests.With(methodLabel, req.Method).Add(1)

	start := time.Now()
	result, err := e.provider.Send(ctx, req.Method, req.Params)

	e.metrics.Duration.With(methodLabel, req.Method).Observe(time.Since(start).Seconds())

	if err != nil {
		e.metrics.Errors.With(methodLabel, req.Method).Add(1)
		e.logger.Debugw("provider call failed", "id", req.ID, "method", req.Method, "err", err)

		return NewErrorResponse(req, err)
	}

	return NewResultResponse(req, result)
}

// Send is the callback flavour of SendRequest. The callback is invoked
// exactly once, from a new goroutine.
func (e *EthereumProvider) Send(ctx context.Context, req *Request, callback Callback) {
	if req == nil || callback == nil {
		panic("BUG: nil request or callback")
	}

	go func() {
		callback(e.SendRequest(ctx, req), nil)
	}()
}
