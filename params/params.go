// Package params holds the decoded, operation specific values shown on the confirmation
// screens of the Cometh plugin.
//
// Each contract function has its own parameter type so that a screen can only read the
// fields that exist for that function. [Context] is the flat shape produced by the calldata
// decoder; [Context.Params] converts it into the matching typed variant.
package params

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Params is implemented by every per-operation parameter type.
type Params interface {
	Selector() Selector
}

// Token describes the currency a rental fee is paid in.
type Token struct {
	// Found is false when the host could not resolve the token address.
	Found    bool
	Ticker   string
	Decimals uint8
}

// Fee is an amount of Token.
type Fee struct {
	Token  Token
	Amount *uint256.Int
}

// Craft opens booster packs for a beneficiary.
type Craft struct {
	Beneficiary  common.Address
	BoosterCards uint8
}

// Redeem redeems cards for a beneficiary.
type Redeem struct {
	Beneficiary common.Address
}

// Grind destroys a card.
type Grind struct {
	CardID *uint256.Int
}

// GetReward claims the reward of a game.
type GetReward struct {
	GameID string
}

// CreateOffer creates a rental offer. A zero Borrower makes the offer public.
type CreateOffer struct {
	Borrower   common.Address
	BundleSize uint8
	Fee        Fee
	Nonce      *uint256.Int
}

// CancelOffer cancels a rental offer.
type CancelOffer struct {
	Nonce *uint256.Int
}

// Rent accepts a rental offer made by Maker.
type Rent struct {
	Maker      common.Address
	BundleSize uint8
	Fee        Fee
}

// Sublet sublets a rented ship to Tenant. BasisPoints is the lender's share.
type Sublet struct {
	TokenID     *uint256.Int
	Tenant      common.Address
	BasisPoints *uint256.Int
}

// EndRental ends a rental or sublet. Op is one of SelectorRentalEndRental,
// SelectorRentalEndRentalPrematurely or SelectorRentalEndSublet.
type EndRental struct {
	Op      Selector
	TokenID *uint256.Int
}

func (Craft) Selector() Selector       { return SelectorCraft }
func (Redeem) Selector() Selector      { return SelectorRedeem }
func (Grind) Selector() Selector       { return SelectorGrind }
func (GetReward) Selector() Selector   { return SelectorGetReward }
func (CreateOffer) Selector() Selector { return SelectorRentalCreateOffer }
func (CancelOffer) Selector() Selector { return SelectorRentalCancelOffer }
func (Rent) Selector() Selector        { return SelectorRentalRent }
func (Sublet) Selector() Selector      { return SelectorRentalSublet }
func (e EndRental) Selector() Selector { return e.Op }
