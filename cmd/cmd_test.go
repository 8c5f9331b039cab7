package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"evm-kit/helper/tests"
	"evm-kit/pkg/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type netService struct{}

func (s *netService) Version() string {
	return "4"
}

type echoService struct{}

func (s *echoService) Pair(a string, b int) []any {
	return []any{a, b}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	out := new(bytes.Buffer)

	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestWordEncode(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "word", "encode", "255")
	require.NoError(t, err)

	assert.Contains(t, out, "decimal: 255")
	assert.Contains(t, out, "hex:     0xff")
	assert.Contains(t, out, "word:    "+strings.Repeat("0", 62)+"ff")
}

func TestWordEncode_JSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "word", "encode", "0x10", "--json")
	require.NoError(t, err)

	var result WordResult

	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, WordResult{
		Decimal: "16",
		Hex:     "0x10",
		Word:    strings.Repeat("0", 62) + "10",
	}, result)
}

func TestWordEncode_Errors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "word", "encode", "0x1"+strings.Repeat("0", 64))
	assert.ErrorIs(t, err, bigint.ErrWordOverflow)

	_, err = execute(t, "word", "encode", "twelve")
	assert.ErrorIs(t, err, bigint.ErrInvalidNumericString)

	_, err = execute(t, "word", "encode", "1e2000000000")
	assert.ErrorIs(t, err, bigint.ErrInvalidNumericString)

	_, err = execute(t, "word", "encode")
	assert.Error(t, err)
}

func TestWordDecode(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("0", 60) + "04d2"

	out, err := execute(t, "word", "decode", word, "--json")
	require.NoError(t, err)

	var result WordResult

	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "1234", result.Decimal)
	assert.Equal(t, "0x4d2", result.Hex)
	assert.Equal(t, word, result.Word)

	_, err = execute(t, "word", "decode", "0x4d2")
	assert.ErrorIs(t, err, bigint.ErrInvalidWord)
}

func TestCall(t *testing.T) {
	t.Parallel()

	url := tests.NewHTTPServer(t, map[string]any{
		"net":  new(netService),
		"echo": new(echoService),
	})

	cases := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "result",
			args:     []string{"call", "net_version"},
			expected: `"4"`,
		},
		{
			name:     "params are kept",
			args:     []string{"call", "echo_pair", "hola", "123"},
			expected: `["hola",123]`,
		},
	}

	for _, test := range cases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, append(test.args, "--rpc-url", url, "--json")...)
			require.NoError(t, err)

			var resp struct {
				JSONRPC string          `json:"jsonrpc"`
				Result  json.RawMessage `json:"result"`
				Error   json.RawMessage `json:"error"`
			}

			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "2.0", resp.JSONRPC)
			assert.JSONEq(t, test.expected, string(resp.Result))
			assert.Nil(t, resp.Error)
		})
	}
}

func TestCall_ProviderFailureIsAResponse(t *testing.T) {
	t.Parallel()

	url := tests.NewHTTPServer(t, map[string]any{"net": new(netService)})

	out, err := execute(t, "call", "bleep", "--rpc-url", url)
	require.NoError(t, err)

	var resp struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, -32601, resp.Error.Code)
	assert.Equal(t, "the method bleep does not exist/is not available", resp.Error.Message)
}

func TestCall_InvalidFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "call", "net_version", "--rpc-url", "unknown://nowhere")
	assert.ErrorContains(t, err, "failed to connect to Ethereum node")

	_, err = execute(t, "call", "net_version", "--timeout", "whenever")
	assert.ErrorContains(t, err, "invalid timeout")

	_, err = execute(t, "call")
	assert.Error(t, err)
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{
		"hola",
		"123",
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		`{"to":"0x01"}`,
		"true",
		`"quoted"`,
	})
	require.NoError(t, err)

	assert.Equal(t, []any{
		"hola",
		json.Number("123"),
		json.Number("115792089237316195423570985008687907853269984665640564039457584007913129639935"),
		map[string]any{"to": "0x01"},
		true,
		"quoted",
	}, params)
}
