// Package game implements the 2048 rules: the 4x4 board, the slide/merge
// move engine, the tile spawner, and the session state machine.
package game

// Direction represents a slide direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Directions lists all four slide directions, used when probing for legal moves.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// BoardSize is the board dimension. The game is fixed at 4x4.
const BoardSize = 4

// Board represents a 4x4 game board. Zero cells are empty; every non-zero
// cell holds a power of two.
type Board [BoardSize][BoardSize]int

// Cell identifies a board position by column and row.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if any two orthogonally adjacent cells hold
// the same non-zero value.
func (b Board) HasAdjacentPair() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := b[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && b[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the board.
// A board with an empty cell or an adjacent equal pair always has a move.
func (b Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasAdjacentPair()
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// TileSum returns the sum of all tile values. Merges conserve this sum,
// so after a move it grows only by the spawned tile's value.
func (b Board) TileSum() int {
	sum := 0
	for y := range BoardSize {
		for x := range BoardSize {
			sum += b[y][x]
		}
	}
	return sum
}
