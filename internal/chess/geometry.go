package chess

import "fmt"

// Constants for board dimensions.
const (
	NumSquares    = 64
	SquaresPerRow = 8
)

// Coordinate is a square index in [0,63], row-major.
// Row 0 is Black's back rank (a8..h8), row 7 is White's (a1..h1).
type Coordinate int

// NoCoordinate marks the absence of a square.
const NoCoordinate Coordinate = -1

// Column and row membership tables used to stop offsets from wrapping
// around the edge of the board.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)

	EighthRank  = initRow(0)
	SeventhRank = initRow(8)
	SixthRank   = initRow(16)
	FifthRank   = initRow(24)
	FourthRank  = initRow(32)
	ThirdRank   = initRow(40)
	SecondRank  = initRow(48)
	FirstRank   = initRow(56)
)

func initColumn(column int) [NumSquares]bool {
	var table [NumSquares]bool
	for c := column; c < NumSquares; c += SquaresPerRow {
		table[c] = true
	}
	return table
}

func initRow(start int) [NumSquares]bool {
	var table [NumSquares]bool
	for c := start; c < start+SquaresPerRow; c++ {
		table[c] = true
	}
	return table
}

// IsValid returns true if the coordinate lies on the board.
func (c Coordinate) IsValid() bool {
	return c >= 0 && c < NumSquares
}

// Column returns the file index of the coordinate, 0 for the a-file.
func (c Coordinate) Column() int {
	return int(c) % SquaresPerRow
}

// Row returns the row index of the coordinate, 0 for the eighth rank.
func (c Coordinate) Row() int {
	return int(c) / SquaresPerRow
}

// String returns the algebraic name of the coordinate, e.g. "e4".
func (c Coordinate) String() string {
	if !c.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + c.Column()), byte('8' - c.Row())})
}

// At returns the coordinate for a zero-based column and row.
func At(column, row int) Coordinate {
	if column < 0 || column >= SquaresPerRow || row < 0 || row >= SquaresPerRow {
		return NoCoordinate
	}
	return Coordinate(row*SquaresPerRow + column)
}

// ParseCoordinate converts an algebraic square name such as "e2".
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoCoordinate, fmt.Errorf("invalid square %q", s)
	}
	return At(int(s[0]-'a'), int('8'-s[1])), nil
}

// MustParseCoordinate is like ParseCoordinate but panics on bad input.
// It is intended for fixed names in tables and tests.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HomeRow reports whether c is on the row a pawn of colour starts from.
func HomeRow(colour Colour, c Coordinate) bool {
	if !c.IsValid() {
		return false
	}
	if colour == White {
		return SecondRank[c]
	}
	return SeventhRank[c]
}

// PromotionRow reports whether a pawn of colour reaching c promotes.
func PromotionRow(colour Colour, c Coordinate) bool {
	if !c.IsValid() {
		return false
	}
	if colour == White {
		return EighthRank[c]
	}
	return FirstRank[c]
}
