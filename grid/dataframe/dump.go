package dataframe

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/gridframe/grid/geom"
	dw "github.com/mattn/go-runewidth"
)

// Cells with no entry render as a middle dot in dumps.
const absentGlyph = "·"

// String renders the full declared bounds as an aligned table, one line
// per row, columns padded to the widest cell by display width so CJK and
// other wide content stays lined up. Meant for debugging and test
// failures, not for machine parsing.
func (d *DataFrame[V]) String() string {
	widths := make([]int, d.bounds.Width())
	rows := geom.MapRows(d.bounds, func(p geom.Point) string {
		s := absentGlyph
		if v, ok := d.cells[p]; ok {
			s = fmt.Sprint(v)
		}
		col := p.X - d.bounds.Origin.X
		widths[col] = max(widths[col], dw.StringWidth(s))
		return s
	})

	var sb strings.Builder
	for _, row := range rows {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell)
			if col < len(row)-1 {
				for pad := dw.StringWidth(cell); pad < widths[col]; pad++ {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
