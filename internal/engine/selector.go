package engine

import (
	"github.com/tartampluch/birthday-board/internal/roster"
)

// Celebrant is an employee known to fall inside the current window,
// plus its index in selection order. Selection order is roster order,
// not date order.
type Celebrant struct {
	roster.Employee

	// Index is the position within the selected set, used by the layout
	// engine to assign a grid slot.
	Index int
}

// SelectCelebrants filters the roster to employees whose (day, month)
// falls on any date in the window, preserving roster order. Records
// with out-of-range day/month values never match.
func SelectCelebrants(employees []roster.Employee, w Window) []Celebrant {
	var selected []Celebrant
	for _, e := range employees {
		if !w.Contains(e.BirthDay, e.BirthMonth) {
			continue
		}
		selected = append(selected, Celebrant{
			Employee: e,
			Index:    len(selected),
		})
	}
	return selected
}
