package chess

import "unicode"

// Piece is an immutable piece value. Two pieces are equal when kind,
// colour, position and moved flag all match, so == can be used directly.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Position Coordinate
	Moved    bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind Kind, colour Colour, position Coordinate) Piece {
	return Piece{Kind: kind, Colour: colour, Position: position}
}

// MovedTo returns a copy of the piece relocated to c with Moved set.
func (p Piece) MovedTo(c Coordinate) Piece {
	p.Position = c
	p.Moved = true
	return p
}

// PromotedTo returns a copy of the piece as kind, relocated to c.
func (p Piece) PromotedTo(kind Kind, c Coordinate) Piece {
	p = p.MovedTo(c)
	p.Kind = kind
	return p
}

// Letter returns the FEN letter of the piece: upper case for White.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns a short description such as "White Knight g1".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " " + p.Position.String()
}
