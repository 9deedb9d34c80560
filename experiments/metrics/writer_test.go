package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	t.Run("writing agent configs", func(t *testing.T) {
		err := writer.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Name: "AB_Custom", Kind: "alphabeta", Evaluator: "custom", Timeout: 10},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Equal(t, []string{"id", "name", "kind", "depth", "evaluator", "timeout_ms"}, rows[0])
		require.Equal(t, []string{"1", "AB_Custom", "alphabeta", "0", "custom", "10"}, rows[1])
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := writer.WriteGameRecords([]GameRecord{{
			ID:     3,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: game.Player1,
				Winner:         game.Player2,
				Reason:         "isolated",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     17,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"3", "1", "2", "player1", "player2", "isolated",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "17"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		err := writer.WriteMoveRecords([]MoveRecord{{
			Game: 3,
			MoveMetric: MoveMetric{
				Step:     1,
				Player:   game.Player1,
				Move:     game.Move{Row: 2, Col: 4},
				TimeLeft: 12.5,
				SearchMetrics: searcher.SearchMetrics{
					Duration: 5 * time.Millisecond,
					Nodes:    420,
					Depth:    4,
					TimedOut: true,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Equal(t, []string{"3", "1", "player1", "2", "4", "12.50", "5ms", "420", "4", "true"}, rows[1])
	})
}
