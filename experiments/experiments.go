package experiments

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	NumMatches = 5 // Openings per pairing, each played from both sides
	TimeLimit  = 150 * time.Millisecond
)

// Tournament pits every test agent against every baseline agent.
type Tournament struct {
	Name       string
	TestAgents []metrics.AgentConfig
	Baselines  []metrics.AgentConfig
	NumMatches int
	TimeLimit  time.Duration // Per move
	Height     int
	Width      int
	Seed       uint64
	Workers    int // Games played at once
}

// DefaultTournament mirrors the classic Isolation project tournament.
func DefaultTournament() Tournament {
	return Tournament{
		Name:       "tournament",
		TestAgents: TestAgents,
		Baselines:  BaselineAgents,
		NumMatches: NumMatches,
		TimeLimit:  TimeLimit,
		Height:     game.DefaultHeight,
		Width:      game.DefaultWidth,
		Seed:       1,
		Workers:    runtime.NumCPU(),
	}
}

type Result struct {
	Agent  metrics.AgentConfig
	Wins   int
	Losses int
}

func (r Result) WinRate() float64 {
	total := r.Wins + r.Losses
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

type Outcome struct {
	Results []Result // One per test agent, in order
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

type match struct {
	id      int
	players [2]metrics.AgentConfig
	test    game.Player // Which side the test agent plays
	testIdx int
	opening [2]game.Move
}

// Run plays all matches, a bounded number at a time, and tallies the results.
func (t Tournament) Run(ctx context.Context) (Outcome, error) {
	matches := t.schedule()
	games := make([]metrics.GameRecord, len(matches))
	moves := make([][]metrics.MoveRecord, len(matches))
	winners := make([]game.Player, len(matches))

	log.Info().Msgf("starting %s with %d games...", t.Name, len(matches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(t.Workers, 1))
	for i, m := range matches {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			winner, record, moveRecords, err := t.play(m)
			if err != nil {
				return fmt.Errorf("game %d: %w", m.id, err)
			}
			games[i], moves[i], winners[i] = record, moveRecords, winner
			log.Debug().Msgf("completed game %d of %d (%s vs %s) with winner: %s",
				m.id, len(matches), m.players[0].Name, m.players[1].Name, winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Games: games}
	for _, config := range t.TestAgents {
		outcome.Results = append(outcome.Results, Result{Agent: config})
	}
	for i, m := range matches {
		if winners[i] == m.test {
			outcome.Results[m.testIdx].Wins++
		} else {
			outcome.Results[m.testIdx].Losses++
		}
		outcome.Moves = append(outcome.Moves, moves[i]...)
	}

	for _, r := range outcome.Results {
		log.Info().Msgf("%-12s won %d of %d games (%.1f%%)", r.Agent.Name, r.Wins, r.Wins+r.Losses, 100*r.WinRate())
	}
	log.Info().Msgf("completed %s", t.Name)
	return outcome, nil
}

// schedule draws the openings up front so results only depend on the seed.
func (t Tournament) schedule() []match {
	rng := rand.New(rand.NewSource(t.Seed))
	matches := []match{}
	for ti, test := range t.TestAgents {
		for _, baseline := range t.Baselines {
			for i := 0; i < t.NumMatches; i++ {
				opening := randomOpening(rng, t.Height, t.Width)
				matches = append(matches,
					match{players: [2]metrics.AgentConfig{test, baseline}, test: game.Player1, testIdx: ti, opening: opening},
					match{players: [2]metrics.AgentConfig{baseline, test}, test: game.Player2, testIdx: ti, opening: opening},
				)
			}
		}
	}
	for i := range matches {
		matches[i].id = i + 1
	}
	return matches
}

// randomOpening places both players on distinct random cells.
func randomOpening(rng *rand.Rand, height, width int) [2]game.Move {
	first := rng.Intn(height * width)
	second := rng.Intn(height*width - 1)
	if second >= first {
		second++
	}
	return [2]game.Move{
		{Row: first / width, Col: first % width},
		{Row: second / width, Col: second % width},
	}
}

func (t Tournament) play(m match) (game.Player, metrics.GameRecord, []metrics.MoveRecord, error) {
	var agents [2]agent.Agent
	for i, config := range m.players {
		a, err := NewAgent(config, t.Seed+uint64(m.id)*2+uint64(i))
		if err != nil {
			return game.NoPlayer, metrics.GameRecord{}, nil, err
		}
		agents[i] = a
	}

	board := game.NewBoard(t.Height, t.Width)
	for _, move := range m.opening {
		if err := board.Apply(move); err != nil {
			return game.NoPlayer, metrics.GameRecord{}, nil, fmt.Errorf("bad opening: %w", err)
		}
	}

	e := engine.NewLocalEngine(agents, board, t.TimeLimit)
	winner, gameMetric, moveMetrics := e.Run()

	record := metrics.GameRecord{
		ID:         m.id,
		Agent1:     m.players[0].ID,
		Agent2:     m.players[1].ID,
		GameMetric: gameMetric,
	}
	moveRecords := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moveRecords[i] = metrics.MoveRecord{Game: m.id, MoveMetric: mm}
	}
	return winner, record, moveRecords, nil
}

// Store writes the agent configs and the game and move records.
func (t Tournament) Store(outcome Outcome, root string) (string, error) {
	writer, err := metrics.NewWriter(root, t.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := append(append([]metrics.AgentConfig{}, t.TestAgents...), t.Baselines...)
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(outcome.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(outcome.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
