package game

// Board-definition data for the Aadu Puli ("goats and tigers") board: 23
// positions on 10 straight lines. The apex sits on top of four slanted lines,
// two long horizontals cross them inside the triangle, and shorter outer
// segments close the figure on both sides.

var aaduPuliCoords = []Point{
	{X: 7, Y: 0}, // 0: apex
	{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 6, Y: 2}, {X: 8, Y: 2}, {X: 10, Y: 2}, {X: 13, Y: 2}, // 1-6
	{X: 0, Y: 4}, {X: 3, Y: 4}, {X: 6, Y: 4}, {X: 8, Y: 4}, {X: 11, Y: 4}, {X: 14, Y: 4}, // 7-12
	{X: 2, Y: 6}, {X: 5, Y: 6}, {X: 7, Y: 6}, {X: 9, Y: 6}, {X: 13, Y: 6}, // 13-17
	{X: 1, Y: 8}, {X: 4, Y: 8}, {X: 7, Y: 8}, {X: 10, Y: 8}, {X: 13, Y: 8}, // 18-22
}

var aaduPuliLines = [][]int{
	{0, 2, 8, 13, 18}, // left slant
	{0, 3, 9, 14, 19},
	{0, 4, 10, 15, 20},
	{0, 5, 11, 16, 21}, // right slant
	{1, 2, 3, 4, 5, 6},     // upper horizontal
	{7, 8, 9, 10, 11, 12},  // lower horizontal
	{13, 14, 15, 16, 17},   // third row
	{18, 19, 20, 21, 22},   // base
	{1, 7},                 // left outer segment
	{6, 12, 17, 22},        // right outer segment
}

var aaduPuliBoundary = []int{0, 1, 6, 7, 12, 13, 17, 18, 19, 20, 21, 22}

var aaduPuliTigerStarts = []int{0, 3, 4}

// NewAaduPuliBoard builds the standard Aadu Puli topology: 23 positions,
// 3 tigers starting at the apex cluster, 15 goats, 6 captures to win.
func NewAaduPuliBoard() *Board {
	return NewGraphBoard("aadupuli", aaduPuliCoords, aaduPuliLines,
		aaduPuliBoundary, aaduPuliTigerStarts, 15, 6)
}
