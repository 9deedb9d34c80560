package engine

import (
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
)

// metricsAgent is implemented by agents that report search metrics.
type metricsAgent interface {
	FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetrics)
}

type LocalEngine struct {
	Board     *game.Board
	Agents    [2]agent.Agent // Agents[0] plays game.Player1
	TimeLimit time.Duration  // Per move
	History   []game.Move
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(agents [2]agent.Agent, board *game.Board, timeLimit time.Duration) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}
	return &LocalEngine{
		Board:     board,
		Agents:    agents,
		TimeLimit: timeLimit,
	}
}

// Run plays until the player to move is isolated, runs out of time or
// returns an illegal move. Agents only ever see copies of the board.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.ActivePlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", gameMetric.StartingPlayer)

	for step := 1; ; step++ {
		player := e.Board.ActivePlayer()
		if len(e.Board.LegalMoves()) == 0 {
			gameMetric.Winner = e.Board.Opponent(player)
			gameMetric.Reason = ReasonIsolated
			break
		}

		timeLeft := searcher.Countdown(e.TimeLimit)
		move, searchMetrics := findMove(e.Agents[player-1], e.Board.Copy(), timeLeft)
		left := timeLeft()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        player,
			Move:          move,
			TimeLeft:      left,
			SearchMetrics: searchMetrics,
		})

		if left <= 0 {
			log.Warn().Msgf("%s forfeits after running %.1fms over time", player, -left)
			gameMetric.Winner = e.Board.Opponent(player)
			gameMetric.Reason = ReasonTimeout
			break
		}
		if err := e.Board.Apply(move); err != nil {
			log.Warn().Err(err).Msgf("%s forfeits", player)
			gameMetric.Winner = e.Board.Opponent(player)
			gameMetric.Reason = ReasonIllegalMove
			break
		}
		e.History = append(e.History, move)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.History)

	log.Debug().Msgf("%s wins (%s) after %d moves", gameMetric.Winner, gameMetric.Reason, gameMetric.TotalMoves)
	return gameMetric.Winner, gameMetric, moveMetrics
}

func findMove(a agent.Agent, state game.State, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetrics) {
	if m, ok := a.(metricsAgent); ok {
		return m.FindMove(state, timeLeft)
	}
	start := time.Now()
	move := a.GetMove(state, timeLeft)
	return move, searcher.SearchMetrics{StartTime: start, Duration: time.Since(start)}
}
