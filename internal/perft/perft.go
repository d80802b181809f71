// Package perft counts the leaf nodes of the legal move tree of a position.
//
// Node counts for well known positions are published, which makes perft the
// standard way to check a move generator end to end. Each promotion counts
// once per piece a pawn can become.
package perft

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// promotionKinds are the kinds a pawn may become, in the order they are
// reported.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Entry is the node count below one root move.
type Entry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Result is the outcome of Divide.
type Result struct {
	Depth   int     `json:"depth"`
	Entries []Entry `json:"entries"`
	Nodes   uint64  `json:"nodes"`
	Workers int     `json:"workers"` // goroutines that shared the root moves
}

// Count returns the number of leaf nodes depth plies below board.
func Count(board *engine.Board, depth int) uint64 {
	nodes, _ := count(context.Background(), board, depth)
	return nodes
}

// count is Count that gives up with ctx.Err() once ctx is done. The context
// is checked before every move that has plies left below it.
func count(ctx context.Context, board *engine.Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	player := board.CurrentPlayer()
	var nodes uint64
	for _, move := range player.LegalMoves() {
		for _, variant := range variants(move) {
			transition := player.AttemptMove(variant)
			if transition.Status != engine.Done {
				break
			}
			if depth == 1 {
				nodes++
				continue
			}
			if err := ctx.Err(); err != nil {
				return nodes, err
			}
			below, err := count(ctx, transition.Board, depth-1)
			nodes += below
			if err != nil {
				return nodes, err
			}
		}
	}
	return nodes, nil
}

// variants expands a promotion into one move per promotion kind.
func variants(move engine.Move) []engine.Move {
	if !move.IsPromotion() {
		return []engine.Move{move}
	}
	moves := make([]engine.Move, 0, len(promotionKinds))
	for _, kind := range promotionKinds {
		promoted, err := move.WithPromotion(kind)
		if err != nil {
			continue
		}
		moves = append(moves, promoted)
	}
	return moves
}

// Divide counts the nodes below every legal root move, spreading the root
// moves over a worker pool. Entries are sorted by move text.
func Divide(ctx context.Context, board *engine.Board, depth, workers int) (Result, error) {
	if depth < 1 {
		return Result{}, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	var roots []engine.Move
	for _, move := range board.CurrentPlayer().DoneMoves() {
		roots = append(roots, variants(move)...)
	}

	pool := worker.NewPool(countBelow, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)+1))
	pool.Start(ctx)
	go func() {
		for i, move := range roots {
			if !pool.Submit(worker.WorkItem{Move: move, Depth: depth - 1, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	result := Result{Depth: depth, Entries: make([]Entry, 0, len(roots)), Workers: pool.NumWorkers()}
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			pool.Stop()
			continue
		}
		result.Entries = append(result.Entries, Entry{Move: r.Move.String(), Nodes: r.Nodes})
		result.Nodes += r.Nodes
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("perft divide: %w", err)
	}
	if firstErr != nil {
		return Result{}, firstErr
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Move < result.Entries[j].Move
	})
	return result, nil
}

func countBelow(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Move: item.Move, Index: item.Index}
	if err := ctx.Err(); err != nil {
		result.Error = err
		return result
	}
	next, err := item.Move.Apply()
	if err != nil {
		result.Error = err
		return result
	}
	result.Nodes, result.Error = count(ctx, next, item.Depth)
	return result
}
