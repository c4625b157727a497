package screens

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"gopkg.in/yaml.v3"

	"github.com/cometh-game/cometh-screens/params"
	"github.com/cometh-game/cometh-screens/tokens"
)

// Operation is the YAML description of a decoded operation, mirroring the decoder context.
//
//	selector: RENTAL_CREATE_OFFER
//	address: "0x0000000000000000000000000000000000000000"
//	array_length: 2
//	token: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
//	uint256_one: "7"
//	uint256_two: "0x4c4b40"
//
// The fee token is resolved through the token list when Token is set; Ticker, Decimals and
// TokenFound are used as given otherwise. GameID fills uint256_one with text for GET_REWARD.
type Operation struct {
	Selector         string `yaml:"selector"`
	Address          string `yaml:"address"`
	BoosterCardCount uint8  `yaml:"booster_card_count"`
	ArrayLength      uint8  `yaml:"array_length"`
	Token            string `yaml:"token"`
	Ticker           string `yaml:"ticker"`
	Decimals         uint8  `yaml:"decimals"`
	TokenFound       bool   `yaml:"token_found"`
	Uint256One       string `yaml:"uint256_one"`
	Uint256Two       string `yaml:"uint256_two"`
	GameID           string `yaml:"game_id"`
}

// ParseOperation reads an Operation from YAML.
func ParseOperation(r io.Reader) (Operation, error) {
	var op Operation
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&op); err != nil {
		if errors.Is(err, io.EOF) {
			return op, errors.New("operation file is empty")
		}

		return op, fmt.Errorf("decode operation: %w", err)
	}

	return op, nil
}

// LoadOperation reads an Operation from a YAML file.
func LoadOperation(path string) (Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Operation{}, err
	}
	defer f.Close()

	return ParseOperation(f)
}

// Context builds the decoder context of op, resolving the fee token against list.
func (op Operation) Context(list *tokens.List) (*params.Context, error) {
	sel, err := params.ParseSelector(op.Selector)
	if err != nil {
		return nil, err
	}

	c := &params.Context{
		Selector:         sel,
		BoosterCardCount: op.BoosterCardCount,
		ArrayLength:      op.ArrayLength,
		Ticker:           op.Ticker,
		Decimals:         op.Decimals,
		TokenFound:       op.TokenFound,
	}

	if op.Address != "" {
		if !common.IsHexAddress(op.Address) {
			return nil, fmt.Errorf("invalid address %q", op.Address)
		}
		c.Address = common.HexToAddress(op.Address)
	}

	if op.Token != "" {
		if !common.IsHexAddress(op.Token) {
			return nil, fmt.Errorf("invalid token address %q", op.Token)
		}
		tok := list.Lookup(common.HexToAddress(op.Token))
		c.Ticker, c.Decimals, c.TokenFound = tok.Ticker, tok.Decimals, tok.Found
	}

	if op.GameID != "" {
		if op.Uint256One != "" {
			return nil, errors.New("game_id and uint256_one are mutually exclusive")
		}
		if len(op.GameID) >= params.WordLength {
			return nil, fmt.Errorf("game_id must be shorter than %d bytes", params.WordLength)
		}
		copy(c.Uint256One[:], op.GameID)
	} else if c.Uint256One, err = parseWord(op.Uint256One); err != nil {
		return nil, fmt.Errorf("uint256_one: %w", err)
	}

	if c.Uint256Two, err = parseWord(op.Uint256Two); err != nil {
		return nil, fmt.Errorf("uint256_two: %w", err)
	}

	return c, nil
}

// parseWord parses a decimal or 0x prefixed hexadecimal 256-bit value. An empty string is
// zero.
func parseWord(s string) ([params.WordLength]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return [params.WordLength]byte{}, nil
	}

	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = uint256.FromHex(s)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return [params.WordLength]byte{}, fmt.Errorf("invalid value %q: %w", s, err)
	}

	return v.Bytes32(), nil
}
