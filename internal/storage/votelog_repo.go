package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type VoteLogRepo struct {
	db *sql.DB
}

func NewVoteLogRepo(db *sql.DB) *VoteLogRepo {
	return &VoteLogRepo{db: db}
}

func (r *VoteLogRepo) Insert(ctx context.Context, e VoteEvent) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO vote_log (target_id, action, day, at)
		VALUES (?, ?, ?, ?)
	`, e.TargetID, e.Action, e.Day, e.At.UTC())
	if err != nil {
		return 0, fmt.Errorf("vote log insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("vote log last insert id: %w", err)
	}
	return id, nil
}

func (r *VoteLogRepo) ListByDay(ctx context.Context, day string) ([]VoteEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, target_id, action, day, at
		FROM vote_log
		WHERE day = ?
		ORDER BY at ASC, id ASC
	`, day)
	if err != nil {
		return nil, fmt.Errorf("vote log list: %w", err)
	}
	defer rows.Close()

	var out []VoteEvent
	for rows.Next() {
		var e VoteEvent
		if err := rows.Scan(&e.ID, &e.TargetID, &e.Action, &e.Day, &e.At); err != nil {
			return nil, fmt.Errorf("vote log scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vote log rows: %w", err)
	}
	return out, nil
}

// Tallies returns net completions per day, most recent day first.
func (r *VoteLogRepo) Tallies(ctx context.Context, limit int) ([]DayTally, error) {
	if limit <= 0 {
		limit = 7
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT day,
			SUM(CASE action WHEN 'completed' THEN 1 ELSE -1 END) AS net,
			MIN(at) AS first_at
		FROM vote_log
		GROUP BY day
		ORDER BY first_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("vote log tallies: %w", err)
	}
	defer rows.Close()

	var out []DayTally
	for rows.Next() {
		var (
			t     DayTally
			first string
		)
		if err := rows.Scan(&t.Day, &t.Net, &first); err != nil {
			return nil, fmt.Errorf("vote log tally scan: %w", err)
		}
		t.First = parseSQLiteTime(first)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vote log tally rows: %w", err)
	}
	return out, nil
}

// Aggregates lose the DATETIME column type, so MIN(at) comes back as text.
func parseSQLiteTime(s string) time.Time {
	layouts := []string{
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
