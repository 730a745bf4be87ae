package tictactoe

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const verticalDeco = "-|0|1|2|-"

// MarkFunc renders a single cell. PlainMark is used by AsText.
type MarkFunc func(cell entity.Cell) string

func PlainMark(cell entity.Cell) string {
	return cell.Mark()
}

// AsText - renders the board as a fixed grid framed by column indices, each row wrapped in its row index.
func (that *Board) AsText() string {
	return that.Render(PlainMark)
}

// Render - same layout as AsText with a custom cell renderer.
func (that *Board) Render(mark MarkFunc) string {
	var output strings.Builder

	output.WriteString(verticalDeco)
	output.WriteByte('\n')

	for row := uint8(0); row < uint8(entity.BoardWidth); row++ {
		that.writeRow(&output, row, mark)
	}

	output.WriteString(verticalDeco)
	output.WriteByte('\n')

	return output.String()
}

func (that *Board) writeRow(output *strings.Builder, row uint8, mark MarkFunc) {
	rowIndex := strconv.Itoa(int(row))

	output.WriteString(rowIndex)
	output.WriteByte('|')

	for column := uint8(0); column < uint8(entity.BoardWidth); column++ {
		cell := that.cells[entity.CellIndex{Column: column, Row: row}.Offset()]
		output.WriteString(mark(cell))
		output.WriteByte('|')
	}

	output.WriteString(rowIndex)
	output.WriteByte('\n')
}
