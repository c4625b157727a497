// Package tokens resolves the ticker and decimals of fee tokens from a YAML token list.
//
// Example file:
//
//	tokens:
//	  - address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
//	    ticker: USDC
//	    decimals: 6
package tokens

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/cometh-game/cometh-screens/params"
)

// MaxTickerLength is the longest ticker the device can display.
const MaxTickerLength = 11

// Entry is one token of the list file.
type Entry struct {
	Address  string `yaml:"address"`
	Ticker   string `yaml:"ticker"`
	Decimals uint8  `yaml:"decimals"`
}

type file struct {
	Tokens []Entry `yaml:"tokens"`
}

// List is an in-memory token list keyed by token address.
type List struct {
	byAddress map[common.Address]params.Token
}

// NewList builds a list from entries. It fails on malformed addresses, empty or overlong
// tickers and duplicate addresses.
func NewList(entries []Entry) (*List, error) {
	l := &List{byAddress: make(map[common.Address]params.Token, len(entries))}

	var errs []error
	for i, e := range entries {
		if !common.IsHexAddress(e.Address) {
			errs = append(errs, fmt.Errorf("token %d: invalid address %q", i, e.Address))
			continue
		}
		ticker := strings.TrimSpace(e.Ticker)
		if ticker == "" || len(ticker) > MaxTickerLength {
			errs = append(errs, fmt.Errorf("token %d: ticker %q must be 1 to %d characters", i, e.Ticker, MaxTickerLength))
			continue
		}

		addr := common.HexToAddress(e.Address)
		if _, exists := l.byAddress[addr]; exists {
			errs = append(errs, fmt.Errorf("token %d: duplicate address %s", i, addr.Hex()))
			continue
		}
		l.byAddress[addr] = params.Token{Found: true, Ticker: ticker, Decimals: e.Decimals}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return l, nil
}

// Parse reads a YAML token list from r.
func Parse(r io.Reader) (*List, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode token list: %w", err)
	}

	return NewList(f.Tokens)
}

// Load reads a YAML token list from path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Lookup returns the token at addr. The returned token has Found set to false when addr is
// not listed.
func (l *List) Lookup(addr common.Address) params.Token {
	if l == nil {
		return params.Token{}
	}

	return l.byAddress[addr]
}

// Len returns the number of tokens in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.byAddress)
}
