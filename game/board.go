package game

// Kind identifies which of the two supported board topologies is in play.
type Kind int

const (
	GridKind  Kind = iota // 5x5 Bagh-Chal grid
	GraphKind             // Aadu Puli graph
)

func (k Kind) String() string {
	if k == GridKind {
		return "grid"
	}
	return "graph"
}

// Cell is the occupant state of a single position.
type Cell int8

const (
	Empty Cell = iota
	Tiger
	Goat
)

// Point is a display/geometry coordinate for a position.
type Point struct {
	X int
	Y int
}

// Jump is one entry of the jump-triple relation: a tiger standing on the
// origin position may jump over Over and land on To.
type Jump struct {
	Over int
	To   int
}

// Board is the static topology: a flat arena of positions with adjacency,
// jump triples, and a boundary mask stored as index lists. It is built once
// per game and never mutated afterwards, so game states share it freely.
type Board struct {
	Kind Kind
	Name string

	adj      [][]int
	jumps    [][]Jump
	boundary []bool
	coords   []Point

	RequiredCaptures int
	GoatsToPlace     int
	TigerStarts      []int
}

// Size returns the number of positions in the arena.
func (b *Board) Size() int {
	return len(b.adj)
}

// Adjacent returns the positions adjacent to id, in construction order.
// Callers must not mutate the returned slice.
func (b *Board) Adjacent(id int) []int {
	return b.adj[id]
}

// JumpsFrom returns the jump triples whose origin is id, in construction
// order.
func (b *Board) JumpsFrom(id int) []Jump {
	return b.jumps[id]
}

// IsBoundary reports whether id lies on the board's outer edge.
func (b *Board) IsBoundary(id int) bool {
	return b.boundary[id]
}

// Coord returns the display coordinate of id.
func (b *Board) Coord(id int) Point {
	return b.coords[id]
}

// AreAdjacent reports whether a and b share an edge.
func (b *Board) AreAdjacent(id1, id2 int) bool {
	for _, adjID := range b.adj[id1] {
		if adjID == id2 {
			return true
		}
	}
	return false
}

// Landing returns the landing position for a jump from the given origin over
// the given midpoint, if the triple exists.
func (b *Board) Landing(from, over int) (int, bool) {
	for _, j := range b.jumps[from] {
		if j.Over == over {
			return j.To, true
		}
	}
	return NoPosition, false
}

// IsCapture resolves (from, to) against the jump-triple relation and returns
// the midpoint position if the pair is a jump.
func (b *Board) IsCapture(from, to int) (int, bool) {
	for _, j := range b.jumps[from] {
		if j.To == to {
			return j.Over, true
		}
	}
	return NoPosition, false
}

// addEdge adds a bidirectional edge between two positions.
func (b *Board) addEdge(id1, id2 int) {
	if !containsInt(b.adj[id1], id2) {
		b.adj[id1] = append(b.adj[id1], id2)
	}
	if !containsInt(b.adj[id2], id1) {
		b.adj[id2] = append(b.adj[id2], id1)
	}
}

// addJump records a jump triple in both directions along a line.
func (b *Board) addJump(from, over, to int) {
	if !containsJump(b.jumps[from], over, to) {
		b.jumps[from] = append(b.jumps[from], Jump{Over: over, To: to})
	}
	if !containsJump(b.jumps[to], over, from) {
		b.jumps[to] = append(b.jumps[to], Jump{Over: over, To: from})
	}
}

func containsInt(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

func containsJump(slice []Jump, over, to int) bool {
	for _, j := range slice {
		if j.Over == over && j.To == to {
			return true
		}
	}
	return false
}

// GridSize is the side length of the Bagh-Chal board.
const GridSize = 5

// GridID maps grid coordinates to an arena index.
func GridID(x, y int) int {
	return y*GridSize + x
}

func inGrid(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// hasDiagonals reports whether a grid intersection carries diagonal lines.
// On the traditional board diagonals exist only at alternating intersections.
func hasDiagonals(x, y int) bool {
	return (x+y)%2 == 0
}

// NewGridBoard builds the 5x5 Bagh-Chal topology: cardinal neighbors
// everywhere, diagonal neighbors at intersections that carry diagonal lines,
// and jump triples mirrored through each neighbor along the same direction.
func NewGridBoard() *Board {
	n := GridSize * GridSize
	b := &Board{
		Kind:             GridKind,
		Name:             "baghchal",
		adj:              make([][]int, n),
		jumps:            make([][]Jump, n),
		boundary:         make([]bool, n),
		coords:           make([]Point, n),
		RequiredCaptures: 5,
		GoatsToPlace:     20,
		TigerStarts: []int{
			GridID(0, 0), GridID(GridSize-1, 0),
			GridID(0, GridSize-1), GridID(GridSize-1, GridSize-1),
		},
	}

	cardinal := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal := [][2]int{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			id := GridID(x, y)
			b.coords[id] = Point{X: x, Y: y}
			b.boundary[id] = x == 0 || x == GridSize-1 || y == 0 || y == GridSize-1

			directions := cardinal
			if hasDiagonals(x, y) {
				directions = append(append([][2]int{}, cardinal...), diagonal...)
			}
			for _, d := range directions {
				nx, ny := x+d[0], y+d[1]
				if inGrid(nx, ny) {
					b.addEdge(id, GridID(nx, ny))
				}
			}
		}
	}

	// A jump continues a step one more cell in the same direction. Because
	// diagonal steps preserve intersection parity, a diagonal midpoint always
	// carries the diagonal through to the landing cell.
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			id := GridID(x, y)
			for _, overID := range b.adj[id] {
				over := b.coords[overID]
				lx, ly := 2*over.X-x, 2*over.Y-y
				if inGrid(lx, ly) && b.AreAdjacent(overID, GridID(lx, ly)) {
					b.addJump(id, overID, GridID(lx, ly))
				}
			}
		}
	}
	return b
}

// NewGraphBoard builds an irregular topology from board-definition data: a
// set of straight lines given as ordered position sequences. Consecutive
// points of a line are adjacent; three consecutive points of a line form a
// jump triple. Boundary positions are listed explicitly since the outline of
// an irregular board is part of its drawing, not derivable from adjacency.
func NewGraphBoard(name string, coords []Point, lines [][]int, boundary []int,
	tigerStarts []int, goatsToPlace, requiredCaptures int) *Board {
	n := len(coords)
	b := &Board{
		Kind:             GraphKind,
		Name:             name,
		adj:              make([][]int, n),
		jumps:            make([][]Jump, n),
		boundary:         make([]bool, n),
		coords:           coords,
		RequiredCaptures: requiredCaptures,
		GoatsToPlace:     goatsToPlace,
		TigerStarts:      tigerStarts,
	}

	for _, line := range lines {
		for i := 0; i+1 < len(line); i++ {
			b.addEdge(line[i], line[i+1])
		}
		for i := 0; i+2 < len(line); i++ {
			b.addJump(line[i], line[i+1], line[i+2])
		}
	}
	for _, id := range boundary {
		b.boundary[id] = true
	}
	return b
}

// NewBoard builds the standard board for a topology kind.
func NewBoard(kind Kind) *Board {
	if kind == GridKind {
		return NewGridBoard()
	}
	return NewAaduPuliBoard()
}
