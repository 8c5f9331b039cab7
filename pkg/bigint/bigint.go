package bigint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// WordLength is the number of hex digits in a canonical 256-bit word
const WordLength = 64

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNegativeDivisor = errors.New("negative divisor")
	ErrNegativeWord    = errors.New("negative value can't be encoded as a word")
	ErrWordOverflow    = errors.New("value exceeds 256 bits")
	ErrInvalidWord     = errors.New("invalid word")
)

// Min returns the smaller of a and b. No copy is made.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) < 0 {
		return a
	}

	return b
}

// Max returns the larger of a and b. No copy is made.
func Max(a, b *big.Int) *big.Int {
	if a.Cmp(b) > 0 {
		return a
	}

	return b
}

// Cmp returns -1 if a < b, 0 if a == b and 1 if a > b
func Cmp(a, b *big.Int) int {
	return a.Cmp(b)
}

// DivUp returns the ceiling of x / y.
// It panics if y is zero or negative.
func DivUp(x, y *big.Int) *big.Int {
	switch y.Sign() {
	case 0:
		panic(ErrDivisionByZero)
	case -1:
		panic(fmt.Errorf("%w: %s", ErrNegativeDivisor, y))
	}

	// with a positive divisor Euclidean division floors, so the
	// remainder is never negative
	q, r := new(big.Int).DivMod(x, y, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, common.Big1)
	}

	return q
}

// ToWord encodes x as a zero-padded, 64 digit lowercase hex string
// without prefix. Values outside [0, 2^256) are rejected.
func ToWord(x *big.Int) (string, error) {
	if x.Sign() < 0 {
		return "", fmt.Errorf("%w: %s", ErrNegativeWord, x)
	}

	word, overflow := uint256.FromBig(x)
	if overflow {
		return "", fmt.Errorf("%w: %s", ErrWordOverflow, hexutil.EncodeBig(x))
	}

	raw := word.Bytes32()

	return common.Bytes2Hex(raw[:]), nil
}

// MustToWord is ToWord that panics on out of range input
func MustToWord(x *big.Int) string {
	word, err := ToWord(x)
	if err != nil {
		panic(err)
	}

	return word
}

// FromWord decodes a canonical word produced by ToWord
func FromWord(word string) (*big.Int, error) {
	if len(word) != WordLength {
		return nil, fmt.Errorf("%w: expected %d hex digits, got %d", ErrInvalidWord, WordLength, len(word))
	}

	if strings.ToLower(word) != word {
		return nil, fmt.Errorf("%w: %q is not lowercase", ErrInvalidWord, word)
	}

	raw, err := hexutil.Decode("0x" + word)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWord, err)
	}

	return new(big.Int).SetBytes(raw), nil
}

// ToHex returns the minimal 0x-prefixed hex form of x (0x0 for zero)
func ToHex(x *big.Int) string {
	return hexutil.EncodeBig(x)
}
