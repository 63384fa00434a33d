package game

// Encode maps a board to its raw index in [0, NumStates): each cell is a base-3
// digit (Empty=0, PieceA=1, PieceB=2), most significant first, in row-major order.
// Different orientations of the same position have different raw indices.
func Encode(b Board) int {
	index := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			index = 3*index + int(b[i][j])
		}
	}
	return index
}

// Decode is the inverse of Encode.
func Decode(index int) Board {
	if index < 0 || index >= NumStates {
		panic("board index out of range")
	}
	var b Board
	for k := Size*Size - 1; k >= 0; k-- {
		b[k/Size][k%Size] = Piece(index % 3)
		index /= 3
	}
	return b
}
