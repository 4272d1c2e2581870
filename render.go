package main

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"nogo/game"
)

const columns = "ABCDEFGHJ"

// render draws the board with colored stones, row 1 at the bottom.
func render(b game.Board) string {
	out := termenv.NewOutput(os.Stdout)
	blackStone := out.String("X").Foreground(out.Color("1")).Bold()
	whiteStone := out.String("O").Foreground(out.Color("4")).Bold()
	empty := out.String(".").Faint()

	var sb strings.Builder
	for y := game.SizeY - 1; y >= 0; y-- {
		sb.WriteString(out.String(string(rune('1'+y)) + " ").Faint().String())
		for x := 0; x < game.SizeX; x++ {
			switch b.At(y*game.SizeX + x) {
			case game.Black:
				sb.WriteString(blackStone.String())
			case game.White:
				sb.WriteString(whiteStone.String())
			default:
				sb.WriteString(empty.String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for _, c := range columns {
		sb.WriteRune(c)
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
