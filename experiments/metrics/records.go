package metrics

import (
	"time"

	"isolation/game"
	"isolation/searcher"
)

// AgentConfig describes an agent taking part in an experiment.
type AgentConfig struct {
	ID        int
	Name      string
	Kind      string  // minimax, alphabeta, random or greedy
	Depth     int     // Fixed depth of minimax agents
	Evaluator string  // game.EvaluatorByName key
	Timeout   float64 // Milliseconds
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Reason         string // How the game ended
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Move     game.Move
	TimeLeft float64 // Milliseconds left when the move was returned
	searcher.SearchMetrics
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of player1
	Agent2 int // AgentConfig.ID of player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
