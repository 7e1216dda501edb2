package lights

import (
	"fmt"
	"slices"
)

// Count returns the number of cells lit after applying cmds in order.
// All cells start off.
//
// Rather than simulating a grid, Count compresses both axes to the
// boundaries of the command rectangles. Every cell inside one block between
// consecutive boundaries sees exactly the same commands, so it is enough
// to evaluate one corner of each block and weight it by the block's area.
func Count(cmds []Command) int64 {
	xs, ys := Boundaries(cmds)
	var total int64
	for i := 0; i+1 < len(xs); i++ {
		w := int64(xs[i+1] - xs[i])
		for j := 0; j+1 < len(ys); j++ {
			h := int64(ys[j+1] - ys[j])
			if Lit(cmds, Point{xs[i], ys[j]}) {
				total += w * h
			}
		}
	}
	return total
}

// Lit reports whether the cell at p is lit after applying cmds in order.
func Lit(cmds []Command, p Point) bool {
	// Walk backwards: the last turn on/off covering p fixes the state and
	// every later toggle covering p inverts it once.
	toggled := false
	for i := len(cmds) - 1; i >= 0; i-- {
		cmd := cmds[i]
		if !cmd.Rect.Contains(p) {
			continue
		}
		switch cmd.Action {
		case TurnOn:
			return !toggled
		case TurnOff:
			return toggled
		case Toggle:
			toggled = !toggled
		default:
			panic(fmt.Sprintf("lights: bad action %d", int(cmd.Action)))
		}
	}
	return toggled
}

// Boundaries returns the sorted, distinct x and y coordinates at which some
// command rectangle starts or ends (one past its last cell), plus 0.
// The largest boundary on each axis lies past every rectangle.
func Boundaries(cmds []Command) (xs, ys []int) {
	xs = make([]int, 1, 2*len(cmds)+1)
	ys = make([]int, 1, 2*len(cmds)+1)
	for _, cmd := range cmds {
		xs = append(xs, cmd.Rect.Min.X, cmd.Rect.Max.X+1)
		ys = append(ys, cmd.Rect.Min.Y, cmd.Rect.Max.Y+1)
	}
	slices.Sort(xs)
	slices.Sort(ys)
	return slices.Compact(xs), slices.Compact(ys)
}
