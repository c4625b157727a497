package screen

import (
	"fmt"

	"github.com/cometh-game/cometh-screens/params"
)

type renderFunc func(r *Renderer, p params.Params, s Screen) error

// Route is the renderer bound to one (selector, screen index) coordinate.
type Route struct {
	Selector params.Selector
	Index    int
	// Name identifies the screen kind, e.g. "beneficiary" or "fee_amount".
	Name string

	render renderFunc
}

type route struct {
	name   string
	render renderFunc
}

// on binds a screen to the parameter type P. Rendering fails with ErrParamsMismatch when
// the params passed in are of another type.
func on[P params.Params](name string, fn func(r *Renderer, p P, s Screen) error) route {
	return route{
		name: name,
		render: func(r *Renderer, p params.Params, s Screen) error {
			typed, ok := p.(P)
			if !ok {
				return fmt.Errorf("%w: screen %q expects %T, got %T", ErrParamsMismatch, name, *new(P), p)
			}

			return fn(r, typed, s)
		},
	}
}

var endRentalRoutes = []route{
	on("token_id", func(_ *Renderer, p params.EndRental, s Screen) error { return tokenIDScreen(s, p.TokenID) }),
}

var routes = map[params.Selector][]route{
	params.SelectorCraft: {
		on("beneficiary", func(r *Renderer, p params.Craft, s Screen) error {
			return r.addressScreen(s, LabelBeneficiary, p.Beneficiary)
		}),
		on("booster_count", func(_ *Renderer, p params.Craft, s Screen) error { return boosterScreen(s, p.BoosterCards) }),
	},
	params.SelectorRedeem: {
		on("beneficiary", func(r *Renderer, p params.Redeem, s Screen) error {
			return r.addressScreen(s, LabelBeneficiary, p.Beneficiary)
		}),
	},
	params.SelectorGrind: {
		on("item_id", func(_ *Renderer, p params.Grind, s Screen) error { return itemIDScreen(s, p.CardID) }),
	},
	params.SelectorGetReward: {
		on("game_id", func(_ *Renderer, p params.GetReward, s Screen) error { return gameIDScreen(s, p.GameID) }),
	},
	params.SelectorRentalCreateOffer: {
		on("bundle_size", func(_ *Renderer, p params.CreateOffer, s Screen) error {
			return bundleSizeScreen(s, p.Borrower, p.BundleSize)
		}),
		on("fee_amount", func(_ *Renderer, p params.CreateOffer, s Screen) error { return feeAmountScreen(s, p.Fee) }),
		on("offer_nonce", func(_ *Renderer, p params.CreateOffer, s Screen) error { return offerNonceScreen(s, p.Nonce) }),
		on("beneficiary", func(r *Renderer, p params.CreateOffer, s Screen) error {
			return r.addressScreen(s, LabelBeneficiary, p.Borrower)
		}),
	},
	params.SelectorRentalCancelOffer: {
		on("offer_nonce", func(_ *Renderer, p params.CancelOffer, s Screen) error { return offerNonceScreen(s, p.Nonce) }),
	},
	params.SelectorRentalRent: {
		on("bundle_size", func(_ *Renderer, p params.Rent, s Screen) error {
			return bundleSizeScreen(s, p.Maker, p.BundleSize)
		}),
		on("fee_amount", func(_ *Renderer, p params.Rent, s Screen) error { return feeAmountScreen(s, p.Fee) }),
		on("offer_from", func(r *Renderer, p params.Rent, s Screen) error {
			return r.addressScreen(s, LabelOfferFrom, p.Maker)
		}),
	},
	params.SelectorRentalSublet: {
		on("token_id", func(_ *Renderer, p params.Sublet, s Screen) error { return tokenIDScreen(s, p.TokenID) }),
		on("tenant", func(r *Renderer, p params.Sublet, s Screen) error {
			return r.addressScreen(s, LabelTenant, p.Tenant)
		}),
		on("basis_points", func(_ *Renderer, p params.Sublet, s Screen) error { return basisPointsScreen(s, p.BasisPoints) }),
	},
	params.SelectorRentalEndRental:            endRentalRoutes,
	params.SelectorRentalEndRentalPrematurely: endRentalRoutes,
	params.SelectorRentalEndSublet:            endRentalRoutes,
}

// Resolve returns the screen shown at index for sel. It reports false for any coordinate
// without a screen, including unknown selectors and negative indexes.
func Resolve(sel params.Selector, index int) (Route, bool) {
	screens := routes[sel]
	if index < 0 || index >= len(screens) {
		return Route{}, false
	}
	rt := screens[index]

	return Route{Selector: sel, Index: index, Name: rt.name, render: rt.render}, true
}

// ScreenCount returns the number of confirmation screens for sel.
func ScreenCount(sel params.Selector) int {
	return len(routes[sel])
}
