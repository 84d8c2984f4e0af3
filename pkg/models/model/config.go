package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPlayerKind = errors.New("unknown player kind")

type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON": On,
	"On": On,
	"on": On,
	"1":  On,

	"OFF": Off,
	"Off": Off,
	"off": Off,
	"0":   Off,
}

func NewConfig(s string) Config {
	return configName[s]
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}

// PlayerKind names a move source selectable from the command line.
type PlayerKind string

const (
	Human      PlayerKind = "human"
	Random     PlayerKind = "random"
	DumbRandom PlayerKind = "dumb_random"
	MiniMax    PlayerKind = "minimax"
	Remote     PlayerKind = "remote"
)

var PlayerKinds = []PlayerKind{Human, Random, DumbRandom, MiniMax, Remote}

func NewPlayerKind(s string) (PlayerKind, error) {
	k := PlayerKind(strings.ToLower(strings.TrimSpace(s)))
	for _, kind := range PlayerKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPlayerKind, s)
}
