package experiments

import (
	"fmt"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
)

// Agents under test, named after the evaluator they search with
var TestAgents = []metrics.AgentConfig{
	{ID: 1, Name: "AB_Improved", Kind: "alphabeta", Evaluator: "improved"},
	{ID: 2, Name: "AB_Custom", Kind: "alphabeta", Evaluator: "custom"},
	{ID: 3, Name: "AB_Custom_2", Kind: "alphabeta", Evaluator: "custom2"},
	{ID: 4, Name: "AB_Custom_3", Kind: "alphabeta", Evaluator: "custom3"},
}

// Opponents every test agent plays against
var BaselineAgents = []metrics.AgentConfig{
	{ID: 101, Name: "Random", Kind: "random"},
	{ID: 102, Name: "MM_Open", Kind: "minimax", Depth: 3, Evaluator: "open"},
	{ID: 103, Name: "MM_Center", Kind: "minimax", Depth: 3, Evaluator: "center"},
	{ID: 104, Name: "MM_Improved", Kind: "minimax", Depth: 3, Evaluator: "improved"},
	{ID: 105, Name: "AB_Open", Kind: "alphabeta", Evaluator: "open"},
	{ID: 106, Name: "AB_Center", Kind: "alphabeta", Evaluator: "center"},
	{ID: 107, Name: "AB_Improved", Kind: "alphabeta", Evaluator: "improved"},
}

// NewAgent builds the agent described by config. seed only matters for
// random agents.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	var evaluator game.Evaluator
	if config.Evaluator != "" {
		e, err := game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", config.Name, err)
		}
		evaluator = e
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if evaluator != nil {
		options = append(options, searcher.WithEvaluator(evaluator))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithSearchDepth(config.Depth))
	}
	if config.Timeout > 0 {
		options = append(options, searcher.WithTimeout(config.Timeout))
	}

	switch config.Kind {
	case "minimax":
		return searcher.NewMinimaxPlayer(options...), nil
	case "alphabeta":
		return searcher.NewAlphaBetaPlayer(options...), nil
	case "greedy":
		return agent.NewGreedyAgent(evaluator), nil
	case "random":
		return agent.NewRandomAgent(seed), nil
	default:
		return nil, fmt.Errorf("agent %s: unknown kind %q", config.Name, config.Kind)
	}
}
