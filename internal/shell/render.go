package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/dicegame/internal/game"
)

// RenderBoard draws every option on one line, with removed options shown
// as "-", followed by the remaining score.
func RenderBoard(b *game.Board, styles *Styles) string {
	var sb strings.Builder
	sb.WriteString(RenderBoardCells(b, styles))
	sb.WriteString("\n")
	sb.WriteString(styles.Info.Render(fmt.Sprintf("Remaining score: %d", b.Score())))
	return sb.String()
}

// RenderMoves draws the legal move list.
func RenderMoves(moves []game.Move, styles *Styles) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = styles.Move.Render(m.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RenderBoardCells draws the options alone, e.g. "1 2 - 4".
func RenderBoardCells(b *game.Board, styles *Styles) string {
	cells := make([]string, 0, b.Size())
	for _, opt := range b.Options() {
		if b.Available(opt) {
			cells = append(cells, styles.Option.Render(strconv.Itoa(opt)))
		} else {
			cells = append(cells, styles.Removed.Render("-"))
		}
	}
	return strings.Join(cells, " ")
}
