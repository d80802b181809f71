// Package storage persists game sessions in a BadgerDB database so a game
// can be resumed later.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

const gamePrefix = "game/"

// Record is the stored form of a session. A session is rebuilt by
// replaying Moves from StartFEN; FEN and Status describe the position
// reached when the record was saved.
type Record struct {
	ID       string    `json:"id"`
	StartFEN string    `json:"startFen"`
	Moves    []string  `json:"moves"`
	FEN      string    `json:"fen"`
	Status   string    `json:"status"`
	Updated  time.Time `json:"updated"`
}

// NewRecord captures a session under id.
func NewRecord(id string, s *game.Session) Record {
	return Record{
		ID:       id,
		StartFEN: engine.BoardToFEN(s.StartBoard()),
		Moves:    s.MoveTexts(),
		FEN:      engine.BoardToFEN(s.Board()),
		Status:   s.Status().String(),
		Updated:  time.Now(),
	}
}

// Session replays the record into a live session.
func (r Record) Session(opts ...game.Option) (*game.Session, error) {
	return game.Replay(r.StartFEN, r.Moves, opts...)
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening game store %s", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame stores the session under id, replacing any earlier record.
func (s *Store) SaveGame(id string, session *game.Session) (Record, error) {
	if id == "" || strings.Contains(id, "/") {
		return Record{}, errors.Wrapf(errors.ErrInvalidConfig, "game id %q", id)
	}
	record := NewRecord(id, session)

	data, err := json.Marshal(record)
	if err != nil {
		return Record{}, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
	return record, err
}

// LoadRecord returns the record stored under id.
func (s *Store) LoadRecord(id string) (Record, error) {
	var record Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})

	return record, err
}

// LoadGame replays the game stored under id.
func (s *Store) LoadGame(id string, opts ...game.Option) (*game.Session, error) {
	record, err := s.LoadRecord(id)
	if err != nil {
		return nil, err
	}
	return record.Session(opts...)
}

// ListGames returns every stored record in id order.
func (s *Store) ListGames() ([]Record, error) {
	var records []Record

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})

	return records, err
}

// DeleteGame removes the game stored under id.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(gameKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
		}
		if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}
