package moverecord

import "github.com/zeromicro/go-zero/core/stores/mon"

const GameEndRecordCollectionName = "game_end_record"

var _ GameEndRecordModel = (*customGameEndRecordModel)(nil)

type (
	// GameEndRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameEndRecordModel.
	GameEndRecordModel interface {
		recordModel[GameEndRecord]
	}

	customGameEndRecordModel struct {
		*defaultModel[GameEndRecord]
	}
)

// GameEndRecord is written once the loser has closed a triangle.
type GameEndRecord struct {
	Meta `bson:",inline"`

	GameUid   string `bson:"gameUid" json:"gameUid"`
	Winner    string `bson:"winner" json:"winner"`
	Loser     string `bson:"loser" json:"loser"`
	Triangle  string `bson:"triangle" json:"triangle"`
	StepCount int    `bson:"stepCount" json:"stepCount"`
}

// NewGameEndRecordModel returns a model for the mongo.
func NewGameEndRecordModel(url, db string) GameEndRecordModel {
	conn := mon.MustNewModel(url, db, GameEndRecordCollectionName)
	return &customGameEndRecordModel{
		defaultModel: newDefaultModel[GameEndRecord](conn, "createAt"),
	}
}
