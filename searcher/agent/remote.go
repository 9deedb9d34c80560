package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent returns an agent that asks the agent server at url for its
// moves. Only *game.Board states can be sent over the wire.
func NewRemoteAgent(url string, client *http.Client) Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return &remoteAgent{url: url, client: client}
}

func (a *remoteAgent) GetMove(state game.State, timeLeft searcher.TimeLeft) game.Move {
	move, err := a.requestMove(state, timeLeft)
	if err != nil {
		log.Warn().Err(err).Msgf("remote agent %s failed to answer", a.url)
		return game.NoMove
	}
	return move
}

func (a *remoteAgent) requestMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, error) {
	board, ok := state.(*game.Board)
	if !ok {
		return game.NoMove, fmt.Errorf("unsupported state type %T", state)
	}

	left := timeLeft()
	body, err := json.Marshal(FindMoveRequest{Board: board, TimeLeft: left})
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(left*float64(time.Millisecond)))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/findmove", bytes.NewReader(body))
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to post request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.NoMove, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var move game.Move
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return game.NoMove, fmt.Errorf("failed to decode move: %w", err)
	}
	return move, nil
}
