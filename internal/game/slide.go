package game

// slideRow slides and merges a single row to the left.
// Returns the updated row and the score gained from merges.
//
// Each cell can take part in at most one merge per move: once a pair has
// merged, the resulting tile is locked for the rest of the scan, so
// [2,2,4,0] becomes [4,4,0,0] and never [8,0,0,0].
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	writePos := 0
	lastMerge := -1

	for i := range BoardSize {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == row[i] && lastMerge != writePos-1 {
			// Merge with previous tile and lock it
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerge = writePos - 1
		} else {
			// Move tile
			result[writePos] = row[i]
			writePos++
		}
	}

	return result, score
}

// reverseRow reverses a row.
func reverseRow(row [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// SlideLeft slides all tiles left and merges.
// Returns the new board, score gained, and whether the board changed.
func SlideLeft(board Board) (Board, int, bool) {
	var newBoard Board
	totalScore := 0
	changed := false

	for y := range BoardSize {
		row := board[y]
		newRow, score := slideRow(row)
		newBoard[y] = newRow
		totalScore += score

		if row != newRow {
			changed = true
		}
	}

	return newBoard, totalScore, changed
}

// SlideRight slides all tiles right and merges.
func SlideRight(board Board) (Board, int, bool) {
	var newBoard Board
	totalScore := 0
	changed := false

	for y := range BoardSize {
		// Reverse, slide left, reverse back
		row := reverseRow(board[y])
		newRow, score := slideRow(row)
		newBoard[y] = reverseRow(newRow)
		totalScore += score

		if board[y] != newBoard[y] {
			changed = true
		}
	}

	return newBoard, totalScore, changed
}

// SlideUp slides all tiles up and merges.
func SlideUp(board Board) (Board, int, bool) {
	// Transpose, slide left, transpose back
	transposed := transpose(board)
	slid, score, changed := SlideLeft(transposed)
	return transpose(slid), score, changed
}

// SlideDown slides all tiles down and merges.
func SlideDown(board Board) (Board, int, bool) {
	// Transpose, slide right, transpose back
	transposed := transpose(board)
	slid, score, changed := SlideRight(transposed)
	return transpose(slid), score, changed
}

// Slide performs a move in the given direction. It is a pure function:
// the same board and direction always produce the same result.
// Returns the new board, score gained, and whether the board changed.
// A false changed flag means the move is illegal and must be ignored.
func Slide(board Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return SlideLeft(board)
	case DirRight:
		return SlideRight(board)
	case DirUp:
		return SlideUp(board)
	case DirDown:
		return SlideDown(board)
	default:
		return board, 0, false
	}
}
