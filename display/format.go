// Package display formats decoded values into the bounded text buffers of a confirmation
// screen.
//
// Plain text is truncated silently when it does not fit. Amounts are never truncated: a
// clipped number would show the user a different value, so [FormatScaledAmount] fails with
// [ErrTruncated] instead.
package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const addressPrefix = "0x"

var (
	ErrTruncated = errors.New("value does not fit in buffer")
	ErrNilAmount = errors.New("amount is nil")
)

// AddressEncoder turns address bytes into their display hex digits, without the 0x prefix.
type AddressEncoder interface {
	EncodeAddress(addr common.Address) (string, error)
}

// EncoderFunc adapts a function to AddressEncoder.
type EncoderFunc func(addr common.Address) (string, error)

func (f EncoderFunc) EncodeAddress(addr common.Address) (string, error) { return f(addr) }

// ChecksumEncoder encodes addresses with the EIP-55 mixed case checksum.
type ChecksumEncoder struct{}

func (ChecksumEncoder) EncodeAddress(addr common.Address) (string, error) {
	return strings.TrimPrefix(addr.Hex(), addressPrefix), nil
}

// FormatAddress writes "0x" followed by the encoded address into buf.
func FormatAddress(enc AddressEncoder, addr common.Address, buf *Buffer) error {
	buf.Reset()

	encoded, err := enc.EncodeAddress(addr)
	if err != nil {
		return fmt.Errorf("encode address %x: %w", addr.Bytes(), err)
	}
	buf.SetString(addressPrefix + encoded)

	return nil
}

// FormatScaledAmount writes v / 10^decimals into buf, followed by a space and the ticker
// when ticker is not empty. Every digit of v is kept, so 1050 with 2 decimals is "10.50".
func FormatScaledAmount(v *uint256.Int, decimals uint8, ticker string, buf *Buffer) error {
	buf.Reset()
	if v == nil {
		return ErrNilAmount
	}

	out := ScaleDecimal(v.Dec(), decimals)
	if ticker != "" {
		out += " " + ticker
	}
	if len(out) > buf.Available() {
		return fmt.Errorf("%w: %q needs %d bytes, have %d", ErrTruncated, out, len(out), buf.Available())
	}
	buf.SetString(out)

	return nil
}

// FormatInteger writes the decimal representation of v into buf.
func FormatInteger(v *uint256.Int, buf *Buffer) error {
	return FormatScaledAmount(v, 0, "", buf)
}

// FormatPlural writes "<count> <noun>" into buf, using singular only when count is 1.
func FormatPlural(buf *Buffer, count int, singular, plural string) {
	noun := plural
	if count == 1 {
		noun = singular
	}
	buf.SetString(strconv.Itoa(count) + " " + noun)
}

// ScaleDecimal places a decimal point in the unsigned decimal string digits so that it has
// exactly decimals fractional digits. Values below one get a leading "0.".
func ScaleDecimal(digits string, decimals uint8) string {
	d := int(decimals)
	if d == 0 {
		return digits
	}
	if len(digits) <= d {
		return "0." + strings.Repeat("0", d-len(digits)) + digits
	}

	return digits[:len(digits)-d] + "." + digits[len(digits)-d:]
}
