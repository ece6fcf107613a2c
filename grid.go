package graph

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

type Pt = Pt2[int]

// Pt2 is a 2D vector. Y grows downwards, matching grid rows.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

// Scale multiplies both coordinates by n.
func (p Pt2[T]) Scale(n T) Pt2[T] {
	return Pt2[T]{p.X * n, p.Y * n}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// ForImmediateNeighbors calls f for the four orthogonal neighbours of p
// until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for the eight neighbours of p, row by row, until f
// returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Delta returns the unit step for d.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

// Move returns p moved n steps in direction d.
func (d Direction) Move(p Pt, n int) Pt {
	return p.Add(d.Delta().Scale(n))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

// ParseGrid splits s into lines and returns them as a grid of runes.
// Trailing blank lines are dropped.
func ParseGrid(s string) Grid[rune] {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	out := make(Grid[rune], len(lines))
	for y, line := range lines {
		out[y] = []rune(line)
	}
	return out
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Find returns the first cell, in row-major order, holding v.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a content hash of g, handy for cycle detection over grid
// states.
func (g Grid[T]) Hash() deephash.Sum {
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// ToGraph converts the grid into a graph with one node per open cell, in
// row-major order, and an edge from every open cell to each open
// neighbour. If allowDiagonals is true, diagonal neighbours are included.
// A nil open treats every cell as open.
func (grid Grid[T]) ToGraph(allowDiagonals bool, open func(T) bool) *Graph[Pt, T] {
	isOpen := func(v T) bool { return open == nil || open(v) }

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	var order []Pt
	values := make(map[Pt]T)
	var edges []Edge[Pt]
	grid.ForEach(func(p1 Pt, v T) {
		if !isOpen(v) {
			return
		}
		order = append(order, p1)
		values[p1] = v
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v2, ok := grid.AtOk(p2); ok && isOpen(v2) {
				edges = append(edges, Edge[Pt]{p1, p2})
			}
			return true
		})
	})
	// Every endpoint is an open cell, so build cannot fail.
	return MustGet(build(order, values, edges))
}

// Render draws the grid with cell, replacing annotated cells by their mark.
// Each row ends with a newline.
func (g Grid[T]) Render(cell func(T) rune, marks Annotations[Pt, rune]) string {
	var sb strings.Builder
	for y, row := range g {
		for x, v := range row {
			if m, ok := marks.Get(Pt{x, y}); ok {
				sb.WriteRune(m)
				continue
			}
			sb.WriteRune(cell(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
