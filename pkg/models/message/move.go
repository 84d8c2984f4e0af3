package message

// MoveRequest asks the move service for the next edge of Color on State.
// State uses the 15 character form of sim.State.
type MoveRequest struct {
	State string `json:"state" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type MoveResponse struct {
	Edge     uint8  `json:"edge"`
	Win      bool   `json:"win,optional"`
	Expanded uint64 `json:"expanded,optional"`
}
