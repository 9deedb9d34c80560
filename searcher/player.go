package searcher

import (
	"errors"
	"math"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

type Option func(c *config)

// config is set once at construction and never changed afterwards.
type config struct {
	depth            int
	evaluator        game.Evaluator
	timeout          float64 // Milliseconds
	metrics          bool
	sentinelFallback bool
}

// WithSearchDepth sets the fixed depth of MinimaxPlayer. AlphaBetaPlayer
// ignores it and deepens until the clock runs out.
func WithSearchDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(c *config) {
		if evaluator != nil {
			c.evaluator = evaluator
		}
	}
}

// WithTimeout sets how many milliseconds must remain for the search to go on.
func WithTimeout(timeout float64) Option {
	return func(c *config) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// WithSentinelFallback makes the agent answer game.NoMove, rather than its
// first legal move, when no search completes in time.
func WithSentinelFallback() Option {
	return func(c *config) {
		c.sentinelFallback = true
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:     DefaultSearchDepth,
		evaluator: DefaultEvaluator,
		timeout:   DefaultTimeout,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// defaultMove is returned when the search is aborted before any result.
func (c *config) defaultMove(moves []game.Move) game.Move {
	if len(moves) == 0 || c.sentinelFallback {
		return game.NoMove
	}
	return moves[0]
}

// MinimaxPlayer picks moves with a fixed-depth minimax search.
type MinimaxPlayer struct {
	config
}

func NewMinimaxPlayer(options ...Option) *MinimaxPlayer {
	return &MinimaxPlayer{config: newConfig(options)}
}

func (p *MinimaxPlayer) GetMove(state game.State, timeLeft TimeLeft) game.Move {
	move, _ := p.FindMove(state, timeLeft)
	return move
}

// FindMove returns the chosen move along with metrics of the search.
func (p *MinimaxPlayer) FindMove(state game.State, timeLeft TimeLeft) (game.Move, SearchMetrics) {
	s := p.newSearch(state, timeLeft)
	s.metrics.Start()

	best := p.defaultMove(state.LegalMoves())
	move, _, err := s.minimax(state, p.depth)
	switch {
	case errors.Is(err, ErrSearchTimeout):
		s.metrics.TimedOut()
		log.Debug().Msgf("minimax timed out at depth %d, falling back to %s", p.depth, best)
	case err == nil:
		best = move
		s.metrics.CompleteDepth(p.depth)
	}
	return best, s.metrics.Complete()
}

// Minimax runs a single depth-limited minimax search from state and returns
// the best move with its value. With no legal moves it returns game.NoMove
// and the terminal utility.
func (p *MinimaxPlayer) Minimax(state game.State, depth int, timeLeft TimeLeft) (game.Move, float64, error) {
	return p.newSearch(state, timeLeft).minimax(state, depth)
}

// AlphaBetaPlayer picks moves with iterative deepening alpha-beta search.
type AlphaBetaPlayer struct {
	config
}

func NewAlphaBetaPlayer(options ...Option) *AlphaBetaPlayer {
	return &AlphaBetaPlayer{config: newConfig(options)}
}

func (p *AlphaBetaPlayer) GetMove(state game.State, timeLeft TimeLeft) game.Move {
	move, _ := p.FindMove(state, timeLeft)
	return move
}

// FindMove searches depth 1, 2, 3, ... until the clock runs out and keeps
// the move of the deepest search that completed. It also stops once a
// completed search never reached its depth limit, since deeper searches
// would explore the same tree.
func (p *AlphaBetaPlayer) FindMove(state game.State, timeLeft TimeLeft) (game.Move, SearchMetrics) {
	s := p.newSearch(state, timeLeft)
	s.metrics.Start()

	moves := state.LegalMoves()
	best := p.defaultMove(moves)
	if len(moves) == 0 {
		return best, s.metrics.Complete()
	}

	for depth := 1; ; depth++ {
		s.cutoff = false
		move, score, err := s.alphaBeta(state, depth, math.Inf(-1), math.Inf(1))
		if err != nil {
			if errors.Is(err, ErrSearchTimeout) {
				s.metrics.TimedOut()
			}
			log.Debug().Msgf("search at depth %d aborted: %v", depth, err)
			break
		}

		best = move
		s.metrics.CompleteDepth(depth)
		log.Debug().Msgf("completed depth %d: best move %s with score %.2f", depth, best, score)

		if !s.cutoff {
			break
		}
	}
	return best, s.metrics.Complete()
}

// AlphaBeta runs a single depth-limited alpha-beta search from state within
// the window (alpha, beta). With no legal moves it returns game.NoMove and
// the terminal utility.
func (p *AlphaBetaPlayer) AlphaBeta(state game.State, depth int, alpha, beta float64, timeLeft TimeLeft) (game.Move, float64, error) {
	return p.newSearch(state, timeLeft).alphaBeta(state, depth, alpha, beta)
}
