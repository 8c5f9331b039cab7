package jsonrpc

import (
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/rpc"
)

const Version = "2.0"

var requestID atomic.Uint64

// Request is a JSON-RPC request object
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// NewRequest builds a 2.0 request with the next free numeric id
func NewRequest(method string, params ...any) *Request {
	if params == nil {
		params = []any{}
	}

	return &Request{
		JSONRPC: Version,
		ID:      requestID.Add(1),
		Method:  method,
		Params:  params,
	}
}

// ObjectError is the error object of a JSON-RPC response
type ObjectError struct {
	// Code is set only when the failure carried a JSON-RPC error code
	Code    *int   `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *ObjectError) Error() string {
	return e.Message
}

// ErrorCode returns the error code or 0 when none was set
func (e *ObjectError) ErrorCode() int {
	if e.Code == nil {
		return 0
	}

	return *e.Code
}

// newObjectError keeps the message of err verbatim
func newObjectError(err error) *ObjectError {
	objErr := &ObjectError{
		Message: err.Error(),
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		code := rpcErr.ErrorCode()
		objErr.Code = &code
	}

	return objErr
}

// Response is a JSON-RPC response object.
// Exactly one of Result and Error is meaningful, Error wins when set.
type Response struct {
	JSONRPC string       `json:"jsonrpc"`
	ID      any          `json:"id"`
	Result  any          `json:"result,omitempty"`
	Error   *ObjectError `json:"error,omitempty"`
}

// NewResultResponse answers req with a successful result
func NewResultResponse(req *Request, result any) *Response {
	return &Response{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
		Result:  result,
	}
}

// NewErrorResponse answers req with an error object built from err
func NewErrorResponse(req *Request, err error) *Response {
	return &Response{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
		Error:   newObjectError(err),
	}
}

type successResponseJSON struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result"`
}

type errorResponseJSON struct {
	JSONRPC string       `json:"jsonrpc"`
	ID      any          `json:"id"`
	Error   *ObjectError `json:"error"`
}

// MarshalJSON always writes exactly one of result and error,
// a nil result is written as null
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(&errorResponseJSON{
			JSONRPC: r.JSONRPC,
			ID:      r.ID,
			Error:   r.Error,
		})
	}

	return json.Marshal(&successResponseJSON{
		JSONRPC: r.JSONRPC,
		ID:      r.ID,
		Result:  r.Result,
	})
}
