package main

import (
	"context"
	"errors"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
)

var errGameStuck = errors.New("self-play game made no progress")

type Summary struct {
	Games      int
	FirstWins  int
	SecondWins int
	Draws      int
	Failed     int
	Last       chess.Snapshot
}

func (s *Summary) add(snapshot chess.Snapshot) {
	s.Games++
	switch snapshot.Outcome {
	case chess.FirstWins:
		s.FirstWins++
	case chess.SecondWins:
		s.SecondWins++
	case chess.Draw:
		s.Draws++
	}
	s.Last = snapshot
}

// PlayOne plays a whole game in which the first player also moves by the
// greedy rule and the automated opponent replies inline.
func PlayOne(ctx context.Context, opts session.Options, listeners ...session.Listener) (chess.Snapshot, error) {
	opts.Opponent = chess.AutomatedOpponent
	opts.OpponentDelay = 0
	opts.TimeLimit = 0

	s, err := session.New(opts, listeners...)
	if err != nil {
		return chess.Snapshot{}, err
	}
	defer s.Close()

	for {
		snapshot, err := s.Snapshot(ctx)
		if err != nil {
			return chess.Snapshot{}, err
		}
		if snapshot.Terminal {
			return snapshot, nil
		}

		line, ok := assess.BestLine(snapshot.Board())
		if !ok {
			return snapshot, errGameStuck
		}
		if _, err := s.Submit(ctx, line); err != nil {
			return snapshot, err
		}
	}
}

// Run plays games across workers and reports each finished game to bar.
func Run(ctx context.Context, games, workers int, opts session.Options, bar *model.Bar, listeners ...session.Listener) Summary {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var (
		mu      sync.Mutex
		summary Summary
	)

	group := threading.NewRoutineGroup()
	for range workers {
		group.RunSafe(func() {
			for i := range jobs {
				snapshot, err := PlayOne(ctx, opts, listeners...)

				mu.Lock()
				if err != nil {
					summary.Failed++
					logx.Errorf("game %d: %v", i, err)
				} else {
					summary.add(snapshot)
					logx.Infof("game %d: %s %d - %d", i, snapshot.Outcome, snapshot.FirstScore, snapshot.SecondScore)
				}
				mu.Unlock()

				if bar != nil {
					bar.Add(1)
				}
			}
		})
	}

	for i := range games {
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	group.Wait()

	return summary
}
