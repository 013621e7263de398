package game

import (
	"strings"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
)

// Render returns a text dump of the board for debugging. The first line shows
// the sideboard, the bonus slot and the completion piles; the following lines
// show the tableau row by row, bottom cards first. The format is not stable.
func (b *Board) Render() string {
	var sb strings.Builder

	row := make([]string, 0, NumColumns)
	for _, c := range b.sideboard {
		row = append(row, c.String())
	}
	row = append(row, "  ")
	if b.piles.bonus {
		row = append(row, card.Bonus.String())
	} else {
		row = append(row, card.None.String())
	}
	for _, s := range card.Suits {
		top := card.None
		if h := b.piles.Highest(s); h > 0 {
			top = card.Numeral(s, h)
		}
		row = append(row, top.String())
	}
	writeRow(&sb, row)

	height := 0
	for _, column := range b.columns {
		height = max(height, len(column))
	}
	for depth := 0; depth < height; depth++ {
		row = row[:0]
		for _, column := range b.columns {
			if depth < len(column) {
				row = append(row, column[depth].String())
			} else {
				row = append(row, "  ")
			}
		}
		writeRow(&sb, row)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	sb.WriteByte('\n')
}
