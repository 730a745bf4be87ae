package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Symbol is the mark a player places on the board.
type Symbol uint8

const (
	SymbolX Symbol = iota + 1
	SymbolO
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

func (that Symbol) String() string {
	switch that {
	case SymbolX:
		return PlayerX
	case SymbolO:
		return PlayerO
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(that))
	}
}

// Other - returns the opponent's symbol.
func (that Symbol) Other() Symbol {
	if that == SymbolX {
		return SymbolO
	}
	return SymbolX
}

func (that Symbol) Valid() bool {
	return that == SymbolX || that == SymbolO
}

// ParseSymbol - converts "x" or "o" (any case, surrounding spaces ignored) into a Symbol.
func ParseSymbol(s string) (Symbol, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case PlayerX:
		return SymbolX, nil
	case PlayerO:
		return SymbolO, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownSymbol, s)
	}
}

func (that Symbol) MarshalText() ([]byte, error) {
	if !that.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownSymbol, uint8(that))
	}
	return []byte(that.String()), nil
}

func (that *Symbol) UnmarshalText(text []byte) error {
	symbol, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}

	*that = symbol
	return nil
}
