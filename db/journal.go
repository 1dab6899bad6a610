// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Idris-jose/AnonVote/idgen"
	"github.com/Idris-jose/AnonVote/models"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var ErrUnknownDatabaseType = errors.New("unknown database type")

const writeTimeout = 5 * time.Second

// Journal is an append-only record of poll creations and votes. The store
// never reads it back; it is an audit trail for the in-process state.
type Journal struct {
	db     *sql.DB
	dbType string
}

// Open connects to the database, verifies the connection and creates the
// schema.
func Open(dbType, url string) (*Journal, error) {
	const op = "db.Open"

	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownDatabaseType, dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if dbType == TypeSQLite {
		// every new connection to an in-memory database is a new database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Journal{db: conn, dbType: dbType}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordCreate stores the poll and its options.
func (j *Journal) RecordCreate(ctx context.Context, p models.Poll) error {
	const op = "db.Journal.RecordCreate"

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, j.rebind(`
		INSERT INTO poll (id, question, created_at)
		VALUES (?, ?, ?)
	`), p.ID, p.Question, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: insert poll: %w", op, err)
	}

	for i, o := range p.Options {
		_, err = tx.ExecContext(ctx, j.rebind(`
			INSERT INTO poll_option (poll_id, option_index, text)
			VALUES (?, ?, ?)
		`), p.ID, i, o.Text)
		if err != nil {
			return fmt.Errorf("%s: insert option %d: %w", op, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}

// RecordVote appends one vote event. p is the poll after the vote.
func (j *Journal) RecordVote(ctx context.Context, p models.Poll, optionIndex int) error {
	const op = "db.Journal.RecordVote"

	eventID, err := idgen.GenerateID(16)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = j.db.ExecContext(ctx, j.rebind(`
		INSERT INTO vote_event (id, poll_id, option_index, total_votes, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`), eventID, p.ID, optionIndex, p.TotalVotes, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Tally counts the journaled votes of a poll per option index.
func (j *Journal) Tally(ctx context.Context, pollID string) ([]int, error) {
	const op = "db.Journal.Tally"

	var optionCount int
	err := j.db.QueryRowContext(ctx, j.rebind(`
		SELECT COUNT(*) FROM poll_option WHERE poll_id = ?
	`), pollID).Scan(&optionCount)
	if err != nil {
		return nil, fmt.Errorf("%s: count options: %w", op, err)
	}
	if optionCount == 0 {
		return nil, fmt.Errorf("%s: %w", op, models.ErrPollNotFound)
	}

	rows, err := j.db.QueryContext(ctx, j.rebind(`
		SELECT option_index, COUNT(*)
		FROM vote_event
		WHERE poll_id = ?
		GROUP BY option_index
	`), pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tally := make([]int, optionCount)
	for rows.Next() {
		var idx, count int
		if err := rows.Scan(&idx, &count); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if idx < 0 || idx >= optionCount {
			return nil, fmt.Errorf("%s: %w: %d", op, models.ErrIndexOutOfRange, idx)
		}
		tally[idx] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tally, nil
}

// PollCreated implements store.Observer.
func (j *Journal) PollCreated(p models.Poll) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := j.RecordCreate(ctx, p); err != nil {
		slog.Error("failed to journal poll", "error", err, "poll_id", p.ID)
	}
}

// VoteRecorded implements store.Observer.
func (j *Journal) VoteRecorded(p models.Poll, optionIndex int) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := j.RecordVote(ctx, p, optionIndex); err != nil {
		slog.Error("failed to journal vote", "error", err, "poll_id", p.ID, "option_index", optionIndex)
	}
}

// rebind turns ? placeholders into $1, $2, ... for postgres.
func (j *Journal) rebind(query string) string {
	if j.dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
