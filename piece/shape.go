package piece

import "github.com/plus3/blockfall/grid"

//go:generate go tool stringer -type=Type

// Type tags a piece with the template it was built from.
type Type uint8

const (
	T Type = iota
	L
	J
	O
	I
	S
	Z

	// NumTypes is the number of distinct templates.
	NumTypes = 7
)

// Types lists every template tag in declaration order.
var Types = [NumTypes]Type{T, L, J, O, I, S, Z}

// Shape is a 0/1 occupancy matrix indexed [row][column].
type Shape [][]bool

// Width is the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height is the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Offsets returns the occupied cells relative to the shape's top-left
// corner, in row-major order.
func (s Shape) Offsets() []grid.Pos {
	var out []grid.Pos
	for y, row := range s {
		for x, filled := range row {
			if filled {
				out = append(out, grid.Pos{X: x, Y: y})
			}
		}
	}
	return out
}

// RotateCCW returns the shape turned 90° counter-clockwise: the transpose
// with its row order reversed.
func (s Shape) RotateCCW() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
		for j := range h {
			out[i][j] = s[j][w-1-i]
		}
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

type template struct {
	shape Shape
	color grid.Color
}

var templates = [NumTypes]template{
	T: {shape: parse("###", ".#."), color: grid.RGB(160, 0, 240)},
	L: {shape: parse("..#", "###"), color: grid.RGB(240, 160, 0)},
	J: {shape: parse("#..", "###"), color: grid.RGB(0, 0, 240)},
	O: {shape: parse("##", "##"), color: grid.RGB(240, 240, 0)},
	I: {shape: parse("####"), color: grid.RGB(0, 240, 240)},
	S: {shape: parse(".##", "##."), color: grid.RGB(0, 240, 0)},
	Z: {shape: parse("##.", ".##"), color: grid.RGB(240, 0, 0)},
}

// parse builds a shape from rows where '#' marks a filled cell.
func parse(rows ...string) Shape {
	out := make(Shape, len(rows))
	for y, row := range rows {
		out[y] = make([]bool, len(row))
		for x, r := range row {
			out[y][x] = r == '#'
		}
	}
	return out
}

// Template returns a copy of the shape and the color for t.
func Template(t Type) (Shape, grid.Color) {
	tpl := templates[t]
	return tpl.shape.Clone(), tpl.color
}
