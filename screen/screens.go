package screen

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/cometh-game/cometh-screens/display"
	"github.com/cometh-game/cometh-screens/params"
)

// Screen titles and labels as shown on the device.
const (
	LabelBeneficiary = "Beneficiary"
	LabelOfferFrom   = "Offer From"
	LabelTenant      = "Tenant"

	TitleBooster           = "Booster"
	TitleCardID            = "Card ID"
	TitleGameID            = "Game ID"
	TitlePublicBundleSize  = "Public bundle size"
	TitlePrivateBundleSize = "Private bundle size"
	TitleEntryFee          = "Entry fee"
	TitleOfferNonce        = "Offer Nonce"
	TitleShipID            = "Ship ID"
	TitlePercentageLender  = "Percentage lender"

	UnknownToken = "Unknown token"

	// basisPointsDecimals renders basis points as a percentage with two decimals.
	basisPointsDecimals = 2
)

// Screen is the pair of output buffers of one confirmation screen.
type Screen struct {
	Title *display.Buffer
	Msg   *display.Buffer
}

func (s Screen) reset() {
	s.Title.Reset()
	s.Msg.Reset()
}

func (r *Renderer) addressScreen(s Screen, label string, addr common.Address) error {
	s.Title.SetString(label)

	return display.FormatAddress(r.encoder, addr, s.Msg)
}

func boosterScreen(s Screen, cards uint8) error {
	s.Title.SetString(TitleBooster)
	display.FormatPlural(s.Msg, int(cards), "card", "cards")

	return nil
}

func itemIDScreen(s Screen, id *uint256.Int) error {
	s.Title.SetString(TitleCardID)

	return display.FormatInteger(id, s.Msg)
}

func gameIDScreen(s Screen, gameID string) error {
	s.Title.SetString(TitleGameID)
	s.Msg.SetString(gameID)

	return nil
}

func bundleSizeScreen(s Screen, owner common.Address, size uint8) error {
	if owner == (common.Address{}) {
		s.Title.SetString(TitlePublicBundleSize)
	} else {
		s.Title.SetString(TitlePrivateBundleSize)
	}
	display.FormatPlural(s.Msg, int(size), "NFT", "NFTs")

	return nil
}

func feeAmountScreen(s Screen, fee params.Fee) error {
	s.Title.SetString(TitleEntryFee)
	if !fee.Token.Found {
		s.Msg.SetString(UnknownToken)
		return nil
	}

	return display.FormatScaledAmount(fee.Amount, fee.Token.Decimals, fee.Token.Ticker, s.Msg)
}

func offerNonceScreen(s Screen, nonce *uint256.Int) error {
	s.Title.SetString(TitleOfferNonce)

	return display.FormatInteger(nonce, s.Msg)
}

func tokenIDScreen(s Screen, id *uint256.Int) error {
	s.Title.SetString(TitleShipID)

	return display.FormatInteger(id, s.Msg)
}

func basisPointsScreen(s Screen, bps *uint256.Int) error {
	s.Title.SetString(TitlePercentageLender)

	return display.FormatScaledAmount(bps, basisPointsDecimals, "", s.Msg)
}
