package main

import (
	"flag"
	"fmt"

	"github.com/HuXin0817/sim/pkg/models/model"
)

var (
	redConf     = flag.String("red", string(model.Human), "red player, the one moving first")
	blueConf    = flag.String("blue", string(model.Random), "blue player")
	gamesConf   = flag.Int("games", 1, "number of games; more than one runs a self-play tournament")
	workersConf = flag.Int("workers", 4, "tournament workers")
	outputConf  = flag.String("output", "", "directory receiving one json file per tournament game")
	prefixConf  = flag.String("prefix", "game", "file name prefix of the tournament results")
	serveConf   = flag.String("serve", "127.0.0.1:8000", "move service address for remote players")
	seedConf    = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	pliesConf   = flag.Int("plies", 3, "opening plies the minimax player plays randomly")
	recordConf  = flag.String("record", "OFF", "record games in mongo, ON or OFF")
	mongoConf   = flag.String("mongo", "mongodb://127.0.0.1:27017", "mongo url used with -record ON")
	dbConf      = flag.String("db", "sim", "mongo database used with -record ON")
	colorConf   = flag.String("color", "ON", "colored board output, ON or OFF")
	pprofConf   = flag.String("pprof", "", "pprof listen address")
)

type Options struct {
	Red, Blue    model.PlayerKind
	Games        int
	Workers      int
	OutputDir    string
	Prefix       string
	ServeAddress string
	Seed         int64
	OpeningPlies int
	Record       model.Config
	MongoUrl     string
	DataBase     string
	Color        model.Config
	Pprof        string
}

// parseOptions reads the flags. Two positional arguments name the red and
// blue players and win over -red and -blue.
func parseOptions(args []string) (o Options, err error) {
	red, blue := *redConf, *blueConf
	switch len(args) {
	case 0:
	case 2:
		red, blue = args[0], args[1]
	default:
		return o, fmt.Errorf("expected <red> <blue>, got %d arguments", len(args))
	}

	if o.Red, err = model.NewPlayerKind(red); err != nil {
		return o, err
	}
	if o.Blue, err = model.NewPlayerKind(blue); err != nil {
		return o, err
	}

	if o.Games = *gamesConf; o.Games < 1 {
		return o, fmt.Errorf("-games must be positive, got %d", o.Games)
	}
	if o.Games > 1 && (o.Red == model.Human || o.Blue == model.Human) {
		return o, fmt.Errorf("a tournament cannot seat a %s player", model.Human)
	}

	o.Workers = *workersConf
	o.OutputDir = *outputConf
	o.Prefix = *prefixConf
	o.ServeAddress = *serveConf
	o.Seed = *seedConf
	o.OpeningPlies = *pliesConf
	o.Record = model.NewConfig(*recordConf)
	o.MongoUrl = *mongoConf
	o.DataBase = *dbConf
	o.Color = model.NewConfig(*colorConf)
	o.Pprof = *pprofConf
	return o, nil
}
