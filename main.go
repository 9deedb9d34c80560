package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"isolation/engine"
	"isolation/experiments"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "tournament", "What to run: tournament, game or serve")
	matches := flag.Int("matches", experiments.NumMatches, "Openings per pairing in a tournament")
	timeLimit := flag.Duration("time", experiments.TimeLimit, "Time limit per move")
	seed := flag.Uint64("seed", 1, "Seed for openings and random agents")
	workers := flag.Int("workers", 0, "Games played at once (0 uses every CPU)")
	out := flag.String("out", "results", "Folder for tournament records")
	kind := flag.String("agent", "alphabeta", "Agent for game and serve: minimax, alphabeta, greedy or random")
	opponent := flag.String("opponent", "random", "Opponent kind in a single game")
	score := flag.String("score", "custom", "Evaluator of the agent")
	depth := flag.Int("depth", 3, "Search depth of minimax agents")
	timeout := flag.Float64("timeout", 10, "Milliseconds left at which searches give up")
	port := flag.String("port", "8080", "Port of the agent server")
	debug := flag.Bool("debug", false, "Log every search depth and game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config := metrics.AgentConfig{ID: 1, Name: *kind, Kind: *kind, Depth: *depth, Evaluator: *score, Timeout: *timeout}

	var err error
	switch *mode {
	case "tournament":
		err = runTournament(*matches, *timeLimit, *seed, *workers, *out)
	case "game":
		err = runGame(config, metrics.AgentConfig{ID: 2, Name: *opponent, Kind: *opponent, Depth: *depth, Evaluator: "improved"}, *timeLimit, *seed)
	case "serve":
		err = serve(config, *seed, *port)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func runTournament(matches int, timeLimit time.Duration, seed uint64, workers int, out string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := experiments.DefaultTournament()
	t.NumMatches = matches
	t.TimeLimit = timeLimit
	t.Seed = seed
	if workers > 0 {
		t.Workers = workers
	}

	outcome, err := t.Run(ctx)
	if err != nil {
		return err
	}
	dir, err := t.Store(outcome, out)
	if err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", dir)
	return nil
}

func runGame(config1, config2 metrics.AgentConfig, timeLimit time.Duration, seed uint64) error {
	agent1, err := experiments.NewAgent(config1, seed)
	if err != nil {
		return err
	}
	agent2, err := experiments.NewAgent(config2, seed+1)
	if err != nil {
		return err
	}

	board := game.NewBoard(game.DefaultHeight, game.DefaultWidth)
	e := engine.NewLocalEngine([2]agent.Agent{agent1, agent2}, board, timeLimit)
	winner, gameMetric, _ := e.Run()

	names := map[game.Player]string{game.Player1: config1.Name, game.Player2: config2.Name}
	fmt.Print(board)
	log.Info().Msgf("%s (%s) wins by %s after %d moves: %v", winner, names[winner], gameMetric.Reason, gameMetric.TotalMoves, e.History)
	return nil
}

func serve(config metrics.AgentConfig, seed uint64, port string) error {
	a, err := experiments.NewAgent(config, seed)
	if err != nil {
		return err
	}
	return agent.StartAgentServer(port, a)
}
