package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShiftRecord is the summary of one finished shift.
type ShiftRecord struct {
	ID         string
	GameID     string
	Score      int
	Served     int // dishes delivered correctly
	Wrong      int // dishes delivered to the wrong order
	Walkouts   int // customers that left out of patience
	Customers  int // customers that reached the counter
	Duration   int // seconds
	Difficulty string
	CreatedAt  time.Time
}

// ShiftStats aggregates the shifts of one game.
type ShiftStats struct {
	GameID      string
	Shifts      int
	Served      int
	Wrong       int
	Walkouts    int
	Accuracy    float64 // correct / all deliveries, 0 when nothing was delivered
	AvgDuration float64
}

// SaveShift records a finished shift. An empty ID is replaced by a new uuid.
// Returns the record ID.
func (s *Store) SaveShift(rec ShiftRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO shifts
		 (id, game_id, score, served, wrong, walkouts, customers, duration_secs, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Score, rec.Served, rec.Wrong,
		rec.Walkouts, rec.Customers, rec.Duration, rec.Difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save shift: %w", err)
	}
	return rec.ID, nil
}

// RecentShifts returns the latest shifts of a game, newest first.
func (s *Store) RecentShifts(gameID string, limit int) ([]ShiftRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, served, wrong, walkouts, customers, duration_secs, difficulty, created_at
		 FROM shifts
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shifts: %w", err)
	}
	defer rows.Close()

	var out []ShiftRecord
	for rows.Next() {
		var r ShiftRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Score, &r.Served, &r.Wrong,
			&r.Walkouts, &r.Customers, &r.Duration, &r.Difficulty, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// GetShiftStats aggregates every shift of a game.
func (s *Store) GetShiftStats(gameID string) (*ShiftStats, error) {
	stats := &ShiftStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(served), 0), COALESCE(SUM(wrong), 0),
		        COALESCE(SUM(walkouts), 0), COALESCE(AVG(duration_secs), 0)
		 FROM shifts WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Shifts, &stats.Served, &stats.Wrong, &stats.Walkouts, &stats.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get shift stats: %w", err)
	}
	if n := stats.Served + stats.Wrong; n > 0 {
		stats.Accuracy = float64(stats.Served) / float64(n)
	}
	return stats, nil
}
