package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
)

type responseJSON struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *ObjectError    `json:"error"`
}

func expectJSONResult(data []byte, v interface{}) error {
	var resp responseJSON
	if err := json.Unmarshal(data, &resp); err != nil {
		return err
	}

	if resp.Error != nil {
		return resp.Error
	}

	if err := json.Unmarshal(resp.Result, v); err != nil {
		return err
	}

	return nil
}

// mockedEthereumProvider answers a fixed set of methods
// and never answers anything else
func mockedEthereumProvider() ProviderFunc {
	return func(ctx context.Context, method string, params []any) (any, error) {
		switch method {
		case "net_version":
			return "4", nil
		case "bleep":
			return nil, errors.New("Method not found")
		case "fail_method":
			return nil, errors.New("do not meet the requirements")
		case "return_params":
			return params, nil
		case "return_nil":
			return nil, nil
		}

		<-ctx.Done()

		return nil, ctx.Err()
	}
}

type codedError struct {
	code int
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

func (e *codedError) ErrorCode() int {
	return e.code
}
