package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return GameUid(id.String()), nil
}
