package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys, generated once from a fixed seed so hashes are stable
// between runs and can be stored.
var (
	zobristPiece      [2][len(chess.Kinds) + 1][chess.NumSquares]uint64 // [Colour][Kind][Coordinate]
	zobristEnPassant  [chess.SquaresPerRow]uint64                       // one per column
	zobristCastling   [16]uint64                                        // every KQkq combination
	zobristSideToMove uint64                                            // XOR when Black is to move
)

func init() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for colour := range zobristPiece {
		for _, kind := range chess.Kinds {
			for c := range zobristPiece[colour][kind] {
				zobristPiece[colour][kind][c] = rng.next()
			}
		}
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// castlingBits maps the FEN castling letters to bits of the castling key index.
var castlingBits = map[rune]int{'K': 1, 'Q': 2, 'k': 4, 'q': 8}

// GenerateZobristHash returns the Zobrist hash of a position: the pieces,
// the side to move, the castling rights and the en passant column.
// Clocks do not take part, so repeated positions hash alike.
func GenerateZobristHash(board *engine.Board) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, piece := range board.ActivePieces(colour) {
			hash ^= zobristPiece[colour][piece.Kind][piece.Position]
		}
	}

	if board.SideToMove() == chess.Black {
		hash ^= zobristSideToMove
	}

	castling := 0
	for _, letter := range engine.CastlingRights(board) {
		castling |= castlingBits[letter]
	}
	hash ^= zobristCastling[castling]

	if target := board.EnPassantTarget(); target.IsValid() {
		hash ^= zobristEnPassant[target.Column()]
	}
	return hash
}
