package params

import (
	"fmt"
	"strings"
)

// Selector identifies the contract function being confirmed.
type Selector uint8

const (
	SelectorCraft Selector = iota
	SelectorRedeem
	SelectorGrind
	SelectorGetReward
	SelectorRentalCreateOffer
	SelectorRentalCancelOffer
	SelectorRentalRent
	SelectorRentalSublet
	SelectorRentalEndRental
	SelectorRentalEndRentalPrematurely
	SelectorRentalEndSublet

	numSelectors
)

var selectorNames = [numSelectors]string{
	SelectorCraft:                      "CRAFT",
	SelectorRedeem:                     "REDEEM",
	SelectorGrind:                      "GRIND",
	SelectorGetReward:                  "GET_REWARD",
	SelectorRentalCreateOffer:          "RENTAL_CREATE_OFFER",
	SelectorRentalCancelOffer:          "RENTAL_CANCEL_OFFER",
	SelectorRentalRent:                 "RENTAL_RENT",
	SelectorRentalSublet:               "RENTAL_SUBLET",
	SelectorRentalEndRental:            "RENTAL_END_RENTAL",
	SelectorRentalEndRentalPrematurely: "RENTAL_END_RENTAL_PREMATURELY",
	SelectorRentalEndSublet:            "RENTAL_END_SUBLET",
}

// Valid reports whether s is one of the known selectors.
func (s Selector) Valid() bool {
	return s < numSelectors
}

func (s Selector) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Selector(%d)", uint8(s))
	}

	return selectorNames[s]
}

// Selectors returns every known selector in declaration order.
func Selectors() []Selector {
	out := make([]Selector, 0, numSelectors)
	for s := range numSelectors {
		out = append(out, s)
	}

	return out
}

// ParseSelector returns the selector with the given name. Matching is case insensitive.
func ParseSelector(name string) (Selector, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for s, n := range selectorNames {
		if n == upper {
			return Selector(s), nil
		}
	}

	return 0, fmt.Errorf("unknown selector %q", name)
}
