// Package hashing provides position hashing and repetition counting.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PositionCounter tracks how often each position has occurred in a game.
// Positions are identified by their Zobrist hash.
type PositionCounter struct {
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records an occurrence of the board's position and returns how many
// times it has now occurred.
func (pc *PositionCounter) Add(board *engine.Board) int {
	hash := GenerateZobristHash(board)
	pc.counts[hash]++
	return pc.counts[hash]
}

// Remove forgets one occurrence of the board's position, as when a move
// is taken back. Removing a position that was never added does nothing.
func (pc *PositionCounter) Remove(board *engine.Board) {
	hash := GenerateZobristHash(board)
	n, ok := pc.counts[hash]
	if !ok {
		return
	}
	if n <= 1 {
		delete(pc.counts, hash)
	} else {
		pc.counts[hash] = n - 1
	}
}

// Count returns how many times the board's position has occurred.
func (pc *PositionCounter) Count(board *engine.Board) int {
	return pc.counts[GenerateZobristHash(board)]
}
