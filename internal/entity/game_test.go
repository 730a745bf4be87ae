package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

func TestParseSymbol(t *testing.T) {
	t.Run("Accepts both symbols in any case", func(t *testing.T) {
		for input, expected := range map[string]Symbol{"x": SymbolX, "X": SymbolX, " o\n": SymbolO, "O": SymbolO} {
			symbol, err := ParseSymbol(input)
			require.NoError(t, err)
			assert.Equal(t, expected, symbol)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParseSymbol("z")

		assert.ErrorIs(t, err, apperror.ErrUnknownSymbol)
	})
}

func TestSymbol_Other(t *testing.T) {
	assert.Equal(t, SymbolO, SymbolX.Other())
	assert.Equal(t, SymbolX, SymbolO.Other())
}

func TestCellIndex_Valid(t *testing.T) {
	assert.True(t, CellIndex{Column: 2, Row: 2}.Valid())
	assert.False(t, CellIndex{Column: 3, Row: 0}.Valid())
	assert.False(t, CellIndex{Column: 0, Row: 3}.Valid())
}

func TestCell(t *testing.T) {
	t.Run("Empty cell has no symbol", func(t *testing.T) {
		_, ok := EmptyCell.Symbol()

		assert.False(t, ok)
		assert.True(t, EmptyCell.IsEmpty())
		assert.Equal(t, " ", EmptyCell.Mark())
	})

	t.Run("Occupied cell returns its symbol", func(t *testing.T) {
		cell := Occupied(SymbolO)

		symbol, ok := cell.Symbol()

		require.True(t, ok)
		assert.Equal(t, SymbolO, symbol)
		assert.Equal(t, "O", cell.Mark())
	})
}

func TestTurnResult(t *testing.T) {
	t.Run("Only Winner carries a symbol", func(t *testing.T) {
		for _, result := range []TurnResult{Continue(), Draw(), InvalidMove()} {
			_, ok := result.Winner()
			assert.False(t, ok, result.String())
		}

		winner, ok := Winner(SymbolX).Winner()
		require.True(t, ok)
		assert.Equal(t, SymbolX, winner)
	})

	t.Run("Terminal outcomes", func(t *testing.T) {
		assert.True(t, Draw().IsTerminal())
		assert.True(t, Winner(SymbolO).IsTerminal())
		assert.False(t, Continue().IsTerminal())
		assert.False(t, InvalidMove().IsTerminal())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "winner(O)", Winner(SymbolO).String())
		assert.Equal(t, "invalid_move", InvalidMove().String())
	})
}

func TestNewTurnEvent(t *testing.T) {
	t.Run("Winner event", func(t *testing.T) {
		// Given: a winning turn
		event := NewTurnEvent("game-1", SymbolX, CellIndex{Column: 2, Row: 2}, Winner(SymbolX))

		// When: it is encoded
		data, err := json.Marshal(event)
		require.NoError(t, err)

		// Then: the winner is included
		assert.JSONEq(t,
			`{"game_id":"game-1","player":"X","cell":{"column":2,"row":2},"outcome":"winner","winner":"X"}`,
			string(data))
	})

	t.Run("Continue event has no winner", func(t *testing.T) {
		event := NewTurnEvent("game-1", SymbolO, CellIndex{Column: 0, Row: 1}, Continue())

		data, err := json.Marshal(event)
		require.NoError(t, err)

		assert.JSONEq(t,
			`{"game_id":"game-1","player":"O","cell":{"column":0,"row":1},"outcome":"continue"}`,
			string(data))
	})
}
