package moverecord

import "github.com/zeromicro/go-zero/core/stores/mon"

const GameStartRecordCollectionName = "game_start_record"

var _ GameStartRecordModel = (*customGameStartRecordModel)(nil)

type (
	// GameStartRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameStartRecordModel.
	GameStartRecordModel interface {
		recordModel[GameStartRecord]
	}

	customGameStartRecordModel struct {
		*defaultModel[GameStartRecord]
	}
)

// GameStartRecord is written once when a game begins.
type GameStartRecord struct {
	Meta `bson:",inline"`

	GameUid string `bson:"gameUid" json:"gameUid"`
	Red     string `bson:"red" json:"red"`
	Blue    string `bson:"blue" json:"blue"`
}

// NewGameStartRecordModel returns a model for the mongo.
func NewGameStartRecordModel(url, db string) GameStartRecordModel {
	conn := mon.MustNewModel(url, db, GameStartRecordCollectionName)
	return &customGameStartRecordModel{
		defaultModel: newDefaultModel[GameStartRecord](conn, "createAt"),
	}
}
