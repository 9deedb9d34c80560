package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

// FindMoveRequest is the body posted to /findmove.
type FindMoveRequest struct {
	Board    *game.Board `json:"board"`
	TimeLeft float64     `json:"time_left_ms"`
}

// StartAgentServer serves agent on the given port until the server fails.
func StartAgentServer(port string, agent Agent) error {
	log.Info().Msgf("starting agent server on :%s...", port)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           NewAgentHandler(agent),
		ReadHeaderTimeout: 5 * time.Second,
	}
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// NewAgentHandler answers POST /findmove with the move agent picks for the
// posted board. The turn clock starts when the request is decoded.
func NewAgentHandler(agent Agent) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload FindMoveRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if payload.Board == nil {
			http.Error(w, "bad request: missing board", http.StatusBadRequest)
			return
		}
		timeLeft := searcher.Countdown(time.Duration(payload.TimeLeft * float64(time.Millisecond)))

		move := agent.GetMove(payload.Board, timeLeft)
		log.Debug().Msgf("answered %s for %s with %.1fms left", move, payload.Board.ActivePlayer(), timeLeft())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(move); err != nil {
			http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}
