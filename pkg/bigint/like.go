package bigint

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNonIntegralNumber    = errors.New("number is not an integer")
	ErrInvalidNumericString = errors.New("invalid numeric string")
	ErrNilInt               = errors.New("nil big integer")
)

// BigIntLike is any of the values FromBigIntLike knows how to convert:
// Number, String, Int or Bytes
type BigIntLike interface {
	isBigIntLike()
}

// Number is a plain numeric value. It must be finite and integral.
type Number float64

// String is a decimal string, or a 0x, 0o or 0b prefixed one
type String string

// Int is an already parsed integer
type Int struct {
	*big.Int
}

// Bytes is a big-endian unsigned magnitude
type Bytes []byte

func (Number) isBigIntLike() {}
func (String) isBigIntLike() {}
func (Int) isBigIntLike()    {}
func (Bytes) isBigIntLike()  {}

// FromBigIntLike returns the integer denoted by x.
// An Int is returned as is, an empty Bytes denotes zero.
func FromBigIntLike(x BigIntLike) (*big.Int, error) {
	switch v := x.(type) {
	case Int:
		if v.Int == nil {
			return nil, ErrNilInt
		}

		return v.Int, nil
	case Number:
		return numberToBigInt(float64(v))
	case String:
		return stringToBigInt(string(v))
	case Bytes:
		return new(big.Int).SetBytes(v), nil
	default:
		// BigIntLike is sealed, nothing else can implement it
		panic(fmt.Sprintf("BUG: unexpected BigIntLike %T", x))
	}
}

func numberToBigInt(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNonIntegralNumber, f)
	}

	bf := big.NewFloat(f)
	if !bf.IsInt() {
		return nil, fmt.Errorf("%w: %v", ErrNonIntegralNumber, f)
	}

	n, _ := bf.Int(nil)

	return n, nil
}

var prefixBases = map[string]int{
	"0x": 16,
	"0o": 8,
	"0b": 2,
}

func stringToBigInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}

	if len(s) > 2 {
		if base, ok := prefixBases[strings.ToLower(s[:2])]; ok {
			n, ok := new(big.Int).SetString(s[2:], base)
			if !ok || strings.ContainsAny(s[2:], "+-_") {
				return nil, fmt.Errorf("%w: %q", ErrInvalidNumericString, s)
			}

			return n, nil
		}
	}

	// plain signed digits only, no fraction or exponent
	if strings.ContainsAny(s, ".eE") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumericString, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNumericString, err)
	}

	if d.Exponent() != 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumericString, s)
	}

	return d.BigInt(), nil
}
