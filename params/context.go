package params

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// WordLength is the size in bytes of a calldata word.
const WordLength = 32

// Context is the flat parameter layout filled in by the calldata decoder. Uint256One and
// Uint256Two are big-endian words whose meaning depends on the selector:
//
//	GRIND                               Uint256One = card id
//	GET_REWARD                          Uint256One = game id, as zero terminated text
//	RENTAL_CREATE_OFFER                 Uint256One = nonce, Uint256Two = fee amount
//	RENTAL_CANCEL_OFFER                 Uint256One = nonce
//	RENTAL_RENT                         Uint256Two = fee amount
//	RENTAL_SUBLET                       Uint256One = token id, Uint256Two = basis points
//	RENTAL_END_RENTAL, _PREMATURELY,
//	RENTAL_END_SUBLET                   Uint256One = token id
type Context struct {
	Selector         Selector
	Address          common.Address
	BoosterCardCount uint8
	ArrayLength      uint8
	Decimals         uint8
	Ticker           string
	TokenFound       bool
	Uint256One       [WordLength]byte
	Uint256Two       [WordLength]byte
}

// Params converts c into the typed parameters of its selector. The returned value shares
// no memory with c.
func (c *Context) Params() (Params, error) {
	switch c.Selector {
	case SelectorCraft:
		return Craft{Beneficiary: c.Address, BoosterCards: c.BoosterCardCount}, nil
	case SelectorRedeem:
		return Redeem{Beneficiary: c.Address}, nil
	case SelectorGrind:
		return Grind{CardID: word(c.Uint256One)}, nil
	case SelectorGetReward:
		return GetReward{GameID: cString(c.Uint256One[:])}, nil
	case SelectorRentalCreateOffer:
		return CreateOffer{
			Borrower:   c.Address,
			BundleSize: c.ArrayLength,
			Fee:        c.fee(),
			Nonce:      word(c.Uint256One),
		}, nil
	case SelectorRentalCancelOffer:
		return CancelOffer{Nonce: word(c.Uint256One)}, nil
	case SelectorRentalRent:
		return Rent{Maker: c.Address, BundleSize: c.ArrayLength, Fee: c.fee()}, nil
	case SelectorRentalSublet:
		return Sublet{
			TokenID:     word(c.Uint256One),
			Tenant:      c.Address,
			BasisPoints: word(c.Uint256Two),
		}, nil
	case SelectorRentalEndRental, SelectorRentalEndRentalPrematurely, SelectorRentalEndSublet:
		return EndRental{Op: c.Selector, TokenID: word(c.Uint256One)}, nil
	default:
		return nil, fmt.Errorf("unsupported selector %s", c.Selector)
	}
}

func (c *Context) fee() Fee {
	return Fee{
		Token: Token{
			Found:    c.TokenFound,
			Ticker:   c.Ticker,
			Decimals: c.Decimals,
		},
		Amount: word(c.Uint256Two),
	}
}

func word(b [WordLength]byte) *uint256.Int {
	return new(uint256.Int).SetBytes32(b[:])
}

// cString returns the bytes of b up to the first zero byte.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}
