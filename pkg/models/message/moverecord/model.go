package moverecord

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound        = mon.ErrNotFound
	ErrInvalidObjectId = errors.New("invalid objectId")
)

// Meta holds the fields shared by every record.
type Meta struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`
}

func (m *Meta) prepare(now time.Time) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
		m.CreateAt = now
	}
	m.UpdateAt = now
}

type document interface {
	prepare(time.Time)
}

type recordModel[T any] interface {
	Insert(ctx context.Context, data *T) error
	InsertMany(ctx context.Context, data []*T) error
	FindOne(ctx context.Context, id string) (*T, error)
	FindByGame(ctx context.Context, gameUid string) ([]*T, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type defaultModel[T any] struct {
	conn   *mon.Model
	sortBy string
}

func newDefaultModel[T any](conn *mon.Model, sortBy string) *defaultModel[T] {
	return &defaultModel[T]{conn: conn, sortBy: sortBy}
}

func (m *defaultModel[T]) Insert(ctx context.Context, data *T) error {
	if d, ok := any(data).(document); ok {
		d.prepare(time.Now())
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultModel[T]) InsertMany(ctx context.Context, data []*T) error {
	if len(data) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, 0, len(data))
	for _, d := range data {
		if doc, ok := any(d).(document); ok {
			doc.prepare(now)
		}
		docs = append(docs, d)
	}

	_, err := m.conn.InsertMany(ctx, docs)
	return err
}

func (m *defaultModel[T]) FindOne(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data T
	err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid})
	switch {
	case err == nil:
		return &data, nil
	case errors.Is(err, mon.ErrNotFound):
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultModel[T]) FindByGame(ctx context.Context, gameUid string) ([]*T, error) {
	var data []*T
	opts := options.Find().SetSort(bson.D{{Key: m.sortBy, Value: 1}})
	if err := m.conn.Find(ctx, &data, bson.M{"gameUid": gameUid}, opts); err != nil {
		return nil, err
	}
	return data, nil
}

func (m *defaultModel[T]) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	return m.conn.DeleteOne(ctx, bson.M{"_id": oid})
}
