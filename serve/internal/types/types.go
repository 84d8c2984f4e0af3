package types

import (
	"github.com/HuXin0817/sim/pkg/models/message"
)

type AnalysisRequest struct {
	GameUid string `json:"gameUid"`
	// Step defaults to the number of colored edges of State.
	Step  *int   `json:"step"`
	State string `json:"state" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type AnalysisResponse struct {
	GameUid   string                 `json:"gameUid"`
	Step      int                    `json:"step"`
	Partition message.RedisPartition `json:"partition"`
}

type AnalysisResultResponse struct {
	GameUid  string `json:"gameUid"`
	Step     int    `json:"step"`
	Edge     uint8  `json:"edge"`
	Win      bool   `json:"win"`
	Expanded uint64 `json:"expanded"`
}

type GameRequest struct {
	Red   string `json:"red"`
	Blue  string `json:"blue"`
	Moves []int  `json:"moves" binding:"required"`
}

type GameResponse struct {
	GameUid  string `json:"gameUid"`
	Winner   string `json:"winner"`
	Loser    string `json:"loser"`
	Triangle string `json:"triangle"`
	Recorded bool   `json:"recorded"`
}

type MoveEntry struct {
	Step  int    `json:"step"`
	Color string `json:"color"`
	Edge  int    `json:"edge"`
	State string `json:"state"`
}

type GameMovesResponse struct {
	GameUid string      `json:"gameUid"`
	Moves   []MoveEntry `json:"moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
