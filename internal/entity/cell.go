package entity

import "fmt"

// BoardWidth is the number of cells along each side of the board.
const BoardWidth = 3

// CellIndex addresses a cell by column and row, both in [0, BoardWidth).
type CellIndex struct {
	Column uint8 `json:"column"`
	Row    uint8 `json:"row"`
}

func (that CellIndex) Valid() bool {
	return that.Column < BoardWidth && that.Row < BoardWidth
}

// Offset - position of the cell in a row-major array. Only meaningful for valid indices.
func (that CellIndex) Offset() int {
	return int(that.Column) + BoardWidth*int(that.Row)
}

func (that CellIndex) String() string {
	return fmt.Sprintf("%d %d", that.Column, that.Row)
}

// Cell is either empty or holds exactly one symbol.
type Cell struct {
	symbol Symbol
}

// EmptyCell is the zero Cell.
var EmptyCell = Cell{}

func Occupied(symbol Symbol) Cell {
	return Cell{symbol: symbol}
}

func (that Cell) Symbol() (Symbol, bool) {
	return that.symbol, that.symbol.Valid()
}

func (that Cell) IsEmpty() bool {
	return !that.symbol.Valid()
}

// Mark - the symbol text, or a single space for an empty cell.
func (that Cell) Mark() string {
	if that.IsEmpty() {
		return " "
	}
	return that.symbol.String()
}
