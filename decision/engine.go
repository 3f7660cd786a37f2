// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"context"
	"database/sql"
	"time"

	"github.com/lmk-app/decide-server/ai"
)

// Suggester proposes poll options. Satisfied by *ai.Client; tests supply a
// stub to drive the fallback path.
type Suggester interface {
	SuggestOptions(ctx context.Context, req ai.SuggestionRequest) ([]ai.Suggestion, error)
}

// Engine executes group decision operations against the relational store.
// It is stateless: every operation takes the caller's identity and entity
// ids explicitly, and re-checks authorization against the store on each
// call. The store is the only shared mutable resource.
type Engine struct {
	db        *sql.DB
	suggester Suggester
	aiTimeout time.Duration
}

func New(db *sql.DB, suggester Suggester, aiTimeout time.Duration) *Engine {
	if aiTimeout <= 0 {
		aiTimeout = 10 * time.Second
	}
	return &Engine{db: db, suggester: suggester, aiTimeout: aiTimeout}
}

// dbtx is satisfied by both *sql.DB and *sql.Tx, so shared queries (tally
// recomputation in particular) can run inside a write transaction and see a
// consistent snapshot.
type dbtx interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}
