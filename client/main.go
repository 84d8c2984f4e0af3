package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/models/model"
	"github.com/HuXin0817/sim/pkg/player"
	"github.com/HuXin0817/sim/pkg/pprof"
	"github.com/HuXin0817/sim/pkg/recorder"
	"github.com/HuXin0817/sim/pkg/runner"
)

func main() {
	flag.Parse()
	o, err := parseOptions(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	pprof.Start(o.Pprof)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var observers []runner.Observer
	if o.Record {
		rec := recorder.NewRecorder(recorder.NewMongoStore(o.MongoUrl, o.DataBase), recorder.DefaultPushInterval)
		defer rec.Close()
		observers = append(observers, rec)
	}

	if o.Games == 1 {
		// Logs would interleave with the board and the human prompts.
		logx.Disable()
		observers = append(observers, newBoardPrinter(os.Stdout, bool(o.Color)))
		err = playOne(ctx, o, observers)
	} else {
		err = playTournament(ctx, o, observers)
	}

	if err != nil {
		log.Fatalln(err)
	}
}

func newPlayer(o Options, kind model.PlayerKind, index int) player.Player {
	seed := o.Seed
	if seed != 0 {
		seed += int64(index)
	}

	p, err := runner.NewPlayer(kind, runner.PlayerDeps{
		In:            os.Stdin,
		Out:           os.Stdout,
		ServeAddress:  o.ServeAddress,
		Seed:          seed,
		EngineOptions: []assess.Option{assess.WithOpeningPlies(o.OpeningPlies)},
	})
	if err != nil {
		// kinds were checked while parsing the flags
		panic(err)
	}
	return p
}

func playOne(ctx context.Context, o Options, observers []runner.Observer) error {
	gr := runner.NewGameRunner(newPlayer(o, o.Red, 0), newPlayer(o, o.Blue, 1), observers...)
	_, err := gr.Run(ctx)
	return err
}

func playTournament(ctx context.Context, o Options, observers []runner.Observer) error {
	// Per move decisions would bury the progress bar.
	logx.SetLevel(logx.ErrorLevel)

	var index atomic.Int64
	next := func(kind model.PlayerKind) func() player.Player {
		return func() player.Player {
			return newPlayer(o, kind, int(index.Add(1)))
		}
	}

	bar := model.NewBar(o.Games, fmt.Sprintf("%s vs %s", o.Red, o.Blue))
	defer bar.Close()

	t := &runner.Tournament{
		Games:     o.Games,
		Workers:   o.Workers,
		NewRed:    next(o.Red),
		NewBlue:   next(o.Blue),
		Observers: observers,
		OutputDir: o.OutputDir,
		Prefix:    o.Prefix,
		Bar:       bar,
	}

	summary, err := t.Run(ctx)
	fmt.Println()
	fmt.Println(summary)
	return err
}
