package recorder

import (
	"context"

	"github.com/HuXin0817/sim/pkg/models/message/moverecord"
)

// Store persists game records.
type Store interface {
	InsertStart(ctx context.Context, record *moverecord.GameStartRecord) error
	InsertMoves(ctx context.Context, records []*moverecord.MoveRecord) error
	InsertEnd(ctx context.Context, record *moverecord.GameEndRecord) error
	// FindMoves returns the moves of a game in play order.
	FindMoves(ctx context.Context, gameUid string) ([]*moverecord.MoveRecord, error)
}

type MongoStore struct {
	Starts moverecord.GameStartRecordModel
	Moves  moverecord.MoveRecordModel
	Ends   moverecord.GameEndRecordModel
}

func NewMongoStore(url, db string) *MongoStore {
	return &MongoStore{
		Starts: moverecord.NewGameStartRecordModel(url, db),
		Moves:  moverecord.NewMoveRecordModel(url, db),
		Ends:   moverecord.NewGameEndRecordModel(url, db),
	}
}

func (s *MongoStore) InsertStart(ctx context.Context, record *moverecord.GameStartRecord) error {
	return s.Starts.Insert(ctx, record)
}

func (s *MongoStore) InsertMoves(ctx context.Context, records []*moverecord.MoveRecord) error {
	return s.Moves.InsertMany(ctx, records)
}

func (s *MongoStore) InsertEnd(ctx context.Context, record *moverecord.GameEndRecord) error {
	return s.Ends.Insert(ctx, record)
}

func (s *MongoStore) FindMoves(ctx context.Context, gameUid string) ([]*moverecord.MoveRecord, error) {
	return s.Moves.FindByGame(ctx, gameUid)
}
