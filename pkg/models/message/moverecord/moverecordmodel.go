package moverecord

import "github.com/zeromicro/go-zero/core/stores/mon"

const MoveRecordCollectionName = "move_record"

var _ MoveRecordModel = (*customMoveRecordModel)(nil)

type (
	// MoveRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMoveRecordModel.
	MoveRecordModel interface {
		recordModel[MoveRecord]
	}

	customMoveRecordModel struct {
		*defaultModel[MoveRecord]
	}
)

// MoveRecord is one colored edge. State is the board after the move.
type MoveRecord struct {
	Meta `bson:",inline"`

	GameUid   string `bson:"gameUid" json:"gameUid"`
	StepCount int    `bson:"stepCount" json:"stepCount"`
	Color     string `bson:"color" json:"color"`
	Edge      int    `bson:"edge" json:"edge"`
	MoveEdge  string `bson:"moveEdge" json:"moveEdge"`
	State     string `bson:"state" json:"state"`
}

// NewMoveRecordModel returns a model for the mongo.
func NewMoveRecordModel(url, db string) MoveRecordModel {
	conn := mon.MustNewModel(url, db, MoveRecordCollectionName)
	return &customMoveRecordModel{
		defaultModel: newDefaultModel[MoveRecord](conn, "stepCount"),
	}
}
