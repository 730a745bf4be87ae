package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const cellsCount = entity.BoardWidth * entity.BoardWidth

var (
	center = entity.CellIndex{Column: 1, Row: 1}

	// rows first, then columns.
	LineCombos = [][3]entity.CellIndex{
		{{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0}},
		{{Column: 0, Row: 1}, {Column: 1, Row: 1}, {Column: 2, Row: 1}},
		{{Column: 0, Row: 2}, {Column: 1, Row: 2}, {Column: 2, Row: 2}},
		{{Column: 0, Row: 0}, {Column: 0, Row: 1}, {Column: 0, Row: 2}},
		{{Column: 1, Row: 0}, {Column: 1, Row: 1}, {Column: 1, Row: 2}},
		{{Column: 2, Row: 0}, {Column: 2, Row: 1}, {Column: 2, Row: 2}},
	}

	// both pass through the center.
	DiagonalCombos = [][3]entity.CellIndex{
		{{Column: 0, Row: 0}, center, {Column: 2, Row: 2}},
		{{Column: 2, Row: 0}, center, {Column: 0, Row: 2}},
	}
)

// Board holds the cells of one game and whose turn it is.
// Not safe for concurrent use.
type Board struct {
	cells         [cellsCount]entity.Cell
	currentPlayer entity.Symbol
	finished      bool
}

// NewBoard - an empty board with initialPlayer to move. Any value other than SymbolX or SymbolO starts with X.
func NewBoard(initialPlayer entity.Symbol) *Board {
	if !initialPlayer.Valid() {
		initialPlayer = entity.SymbolX
	}

	return &Board{
		currentPlayer: initialPlayer,
	}
}

func (that *Board) CurrentPlayer() entity.Symbol {
	return that.currentPlayer
}

// IsFinished - true once a move produced a win or a draw.
func (that *Board) IsFinished() bool {
	return that.finished
}

// Get - returns the occupant of the cell. Indices outside the board are rejected with ErrInvalidCell.
func (that *Board) Get(index entity.CellIndex) (entity.Cell, error) {
	if !index.Valid() {
		return entity.EmptyCell, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, index)
	}

	return that.cells[index.Offset()], nil
}

// ProcessTurn - places the current player's symbol and reports the outcome.
// A rejected move (occupied cell or error) leaves the board untouched.
func (that *Board) ProcessTurn(index entity.CellIndex) (entity.TurnResult, error) {
	if !index.Valid() {
		return entity.InvalidMove(), fmt.Errorf("%w: %s", apperror.ErrInvalidCell, index)
	}

	if that.finished {
		return entity.InvalidMove(), apperror.ErrGameFinished
	}

	if !that.tryPlayerMove(index) {
		return entity.InvalidMove(), nil
	}

	if winner, ok := that.checkForWin(); ok {
		that.finished = true
		return entity.Winner(winner), nil
	}

	if that.checkForDraw() {
		that.finished = true
		return entity.Draw(), nil
	}

	that.currentPlayer = that.currentPlayer.Other()

	return entity.Continue(), nil
}

func (that *Board) tryPlayerMove(index entity.CellIndex) bool {
	offset := index.Offset()
	if !that.cells[offset].IsEmpty() {
		return false
	}

	that.cells[offset] = entity.Occupied(that.currentPlayer)

	return true
}

func (that *Board) checkForWin() (entity.Symbol, bool) {
	for _, combo := range LineCombos {
		if winner, ok := that.checkLine(combo); ok {
			return winner, true
		}
	}

	// any diagonal win requires the center
	if that.cells[center.Offset()].IsEmpty() {
		return 0, false
	}

	for _, combo := range DiagonalCombos {
		if winner, ok := that.checkLine(combo); ok {
			return winner, true
		}
	}

	return 0, false
}

func (that *Board) checkLine(combo [3]entity.CellIndex) (entity.Symbol, bool) {
	a, b, c := that.cells[combo[0].Offset()], that.cells[combo[1].Offset()], that.cells[combo[2].Offset()]
	if a.IsEmpty() || a != b || b != c {
		return 0, false
	}

	return a.Symbol()
}

// the game will continue until all the cells are full.
func (that *Board) checkForDraw() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}
