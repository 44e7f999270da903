package store

import (
	"encoding/json"
	"time"

	"github.com/abhisek/bigtop/internal/workshop"
)

// progressKey is the fixed namespaced key for the single progress record.
// Carried over from the original storage format.
const progressKey = "ai_field_manual_v1"

// Progress adapts the store to the workshop.Saver contract. All failures
// are swallowed: Load answers nil for missing, corrupt, or unreadable
// records, and the write paths silently no-op on error.
type Progress struct {
	s *Store
}

var _ workshop.Saver = (*Progress)(nil)

// Progress returns the progress adapter for this store.
func (s *Store) Progress() *Progress {
	return &Progress{s: s}
}

// Load reads the stored progress record, or nil when absent or unusable.
// Legacy records without a ticket count are flagged so the session can
// backfill one.
func (p *Progress) Load() *workshop.SavedState {
	var data string
	err := p.s.db.QueryRow(
		`SELECT data FROM progress WHERE key = ?`, progressKey,
	).Scan(&data)
	if err != nil {
		return nil
	}

	var st workshop.SavedState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil
	}

	// Probe the raw record for the tickets field; its absence marks a
	// legacy record, not a zero count.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &keys); err == nil {
		_, st.HasTickets = keys["tickets"]
	}

	if st.Answers == nil {
		st.Answers = make(workshop.AnswerSet)
	}
	return &st
}

// Save writes the full progress record, replacing whatever is stored.
func (p *Progress) Save(st workshop.SavedState) {
	data, err := json.Marshal(st)
	if err != nil {
		return
	}
	_, _ = p.s.db.Exec(
		`INSERT INTO progress (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		progressKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
}

// Merge reads the stored record, applies the patch on top, and writes the
// union back. Fields the patch leaves nil keep their stored values.
func (p *Progress) Merge(patch workshop.Patch) {
	prev := p.Load()
	if prev == nil {
		prev = &workshop.SavedState{Answers: make(workshop.AnswerSet)}
	}
	p.Save(patch.Apply(*prev))
}
