package store

import (
	"context"
	"time"

	"github.com/abhisek/bigtop/internal/workshop"
)

var _ workshop.EventSink = (*Events)(nil)

// AnswerEvent is one append-only record of a module completion or refresh.
type AnswerEvent struct {
	ID        int64
	SessionID string
	ModuleID  string
	Kind      string
	Points    int
	CreatedAt time.Time
}

// AppendAnswer logs an answer event. Event logging is best-effort: the
// progress record is the source of truth and a failed append is dropped.
func (s *Store) AppendAnswer(ctx context.Context, moduleID, kind string, points int) {
	_, _ = s.db.ExecContext(ctx,
		`INSERT INTO answer_events (session_id, module_id, kind, points, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.sessionID, moduleID, kind, points, time.Now().UTC().Format(time.RFC3339Nano),
	)
}

// Events adapts the store to the session's answer log interface.
type Events struct {
	s *Store
}

// Events returns the answer-log adapter for this store.
func (s *Store) Events() *Events {
	return &Events{s: s}
}

// AnswerRecorded implements workshop.EventSink.
func (e *Events) AnswerRecorded(moduleID, kind string, points int) {
	e.s.AppendAnswer(context.Background(), moduleID, kind, points)
}

// AnswerHistory returns all answer events in append order.
func (s *Store) AnswerHistory(ctx context.Context) ([]AnswerEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, module_id, kind, points, created_at
		 FROM answer_events ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var ev AnswerEvent
		var created string
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.ModuleID, &ev.Kind, &ev.Points, &created); err != nil {
			return nil, err
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		events = append(events, ev)
	}
	return events, rows.Err()
}
