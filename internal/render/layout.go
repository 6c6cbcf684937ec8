package render

import (
	"github.com/tartampluch/birthday-board/internal/config"
)

// Slot is the computed on-canvas center position for one celebrant's
// photo/bubble/name cluster. Slots are recomputed every render, never
// persisted.
type Slot struct {
	Row int
	Col int
	X   float64
	Y   float64
}

// Layout partitions total celebrants into rows of at most RowCapacity,
// in selection order, and spaces each row's centers evenly across the
// canvas width: a row of k gets centers at canvasWidth/(k+1)*(pos+1),
// so a lone celebrant in the last row ends up centered rather than
// left-aligned.
//
// The vertical origin depends on the total count: a single-row board
// sits closer to the top than the first row of a multi-row board.
func Layout(total int, canvasWidth float64) []Slot {
	if total <= 0 {
		return nil
	}

	originY := config.RowOriginMulti
	if total <= config.RowCapacity {
		originY = config.RowOriginSingle
	}

	slots := make([]Slot, total)
	for i := range slots {
		row := i / config.RowCapacity
		col := i % config.RowCapacity

		rowSize := config.RowCapacity
		if remaining := total - row*config.RowCapacity; remaining < rowSize {
			rowSize = remaining
		}

		slots[i] = Slot{
			Row: row,
			Col: col,
			X:   canvasWidth / float64(rowSize+1) * float64(col+1),
			Y:   originY + float64(row)*config.RowPitch,
		}
	}
	return slots
}
