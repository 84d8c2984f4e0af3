package message

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/sim/pkg/models/sim"
)

// AnalysisKey names the position reached after Step moves of a game.
type AnalysisKey struct {
	GameUid
	Step int
}

func (k AnalysisKey) String() string {
	str, _ := sonic.MarshalString(k)
	return str
}

// AnalysisJob asks for a full search of State with Color to move.
type AnalysisJob struct {
	TimeStamp
	AnalysisKey
	State sim.State
	Color sim.Color
}

func NewAnalysisJob(str string) (job AnalysisJob, err error) {
	err = sonic.UnmarshalString(str, &job)
	return
}

func (j AnalysisJob) String() string {
	str, _ := sonic.MarshalString(j)
	return str
}

// AnalysisResult is the verdict of a search. Edge is only meaningful when Win
// is set.
type AnalysisResult struct {
	Edge     sim.Edge
	Win      bool
	Expanded uint64
}

func NewAnalysisResult(str string) (r AnalysisResult, err error) {
	err = sonic.UnmarshalString(str, &r)
	return
}

func (r AnalysisResult) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
