// Package lights evaluates light grid instructions: rectangles of cells
// turned on, turned off, or toggled, in order.
package lights

import "fmt"

type Action int

const (
	TurnOn Action = iota + 1
	TurnOff
	Toggle
)

func (a Action) String() string {
	switch a {
	case TurnOn:
		return "turn on"
	case TurnOff:
		return "turn off"
	case Toggle:
		return "toggle"
	}
	panic(fmt.Sprintf("lights: bad action %d", int(a)))
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// A Rect is an inclusive, axis-aligned rectangle of cells.
type Rect struct {
	Min, Max Point
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) Area() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.Max.X-r.Min.X+1) * int64(r.Max.Y-r.Min.Y+1)
}

type Command struct {
	Action Action
	Rect   Rect
}

// String formats c the way it appears in puzzle input.
func (c Command) String() string {
	return fmt.Sprintf("%s %s through %s", c.Action, c.Rect.Min, c.Rect.Max)
}
