package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(
		&catalog.Poll{
			Meta:    catalog.Meta{ID: "m1", Title: "Poll"},
			Prompt:  "Pick",
			Options: []catalog.Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
			Points:  map[string]int{"a": 2},
		},
		&catalog.Info{Meta: catalog.Meta{ID: "m2", Title: "Card"}, Bullets: []string{"x"}},
	)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "bigtop.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestProgressRoundTrip(t *testing.T) {
	st := openTestStore(t)
	p := st.Progress()

	if p.Load() != nil {
		t.Fatal("fresh store must load nil")
	}

	p.Save(workshop.SavedState{
		Answers: workshop.AnswerSet{
			"m1": workshop.PollAnswer{ChoiceID: "a", Points: 2},
			"m2": workshop.BoothAnswer{Principle: "p1", Analogy: "a1", Closing: "c1", Response: "x y z"},
		},
		Idx:     3,
		Tickets: 2,
	})

	got := p.Load()
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if got.Idx != 3 || got.Tickets != 2 || len(got.Answers) != 2 {
		t.Errorf("loaded = {idx:%d tickets:%d answers:%d}", got.Idx, got.Tickets, len(got.Answers))
	}
	if !got.HasTickets {
		t.Error("a saved record carries tickets, HasTickets must be set")
	}
	if a, ok := got.Answers["m1"].(workshop.PollAnswer); !ok || a.Points != 2 {
		t.Errorf("m1 = %#v", got.Answers["m1"])
	}
}

func TestMergeKeepsUnpatchedFields(t *testing.T) {
	st := openTestStore(t)
	p := st.Progress()

	p.Save(workshop.SavedState{
		Answers: workshop.AnswerSet{"m1": workshop.InfoAnswer{ChoiceID: "x", Points: 1}},
		Idx:     2,
		Tickets: 1,
	})

	idx := 4
	p.Merge(workshop.Patch{Idx: &idx})

	got := p.Load()
	if got.Idx != 4 {
		t.Errorf("Idx = %d, want patched 4", got.Idx)
	}
	if got.Tickets != 1 || len(got.Answers) != 1 {
		t.Errorf("merge dropped unpatched fields: tickets=%d answers=%d", got.Tickets, len(got.Answers))
	}
}

func TestMergeOntoEmptyStore(t *testing.T) {
	st := openTestStore(t)
	p := st.Progress()

	tickets := 1
	p.Merge(workshop.Patch{
		Answers: workshop.AnswerSet{"m1": workshop.PollAnswer{ChoiceID: "a", Points: 2}},
		Tickets: &tickets,
	})

	got := p.Load()
	if got == nil || got.Tickets != 1 || len(got.Answers) != 1 {
		t.Fatalf("Load = %+v", got)
	}
}

func TestLoadLegacyRecordWithoutTickets(t *testing.T) {
	st := openTestStore(t)

	// A record written before ticket tracking existed.
	legacy := `{"answers":{"m1":{"type":"poll","choiceId":"a","points":2}},"idx":1}`
	if _, err := st.DB().Exec(
		`INSERT INTO progress (key, data, updated_at) VALUES (?, ?, ?)`,
		progressKey, legacy, "2024-01-01T00:00:00Z",
	); err != nil {
		t.Fatalf("seed legacy record: %v", err)
	}

	got := st.Progress().Load()
	if got == nil {
		t.Fatal("legacy record must load")
	}
	if got.HasTickets {
		t.Error("a record without a tickets key must not read as explicit")
	}
	if len(got.Answers) != 1 {
		t.Errorf("answers = %d, want 1", len(got.Answers))
	}
}

func TestLoadCorruptRecordDegradesToNil(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.DB().Exec(
		`INSERT INTO progress (key, data, updated_at) VALUES (?, ?, ?)`,
		progressKey, `{broken`, "2024-01-01T00:00:00Z",
	); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	if st.Progress().Load() != nil {
		t.Error("corrupt data must degrade to no saved state")
	}
}

func TestAnswerEvents(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	st.AppendAnswer(ctx, "m1", "poll", 2)
	st.AppendAnswer(ctx, "m2", "heckler_booth", 0)

	events, err := st.AnswerHistory(ctx)
	if err != nil {
		t.Fatalf("AnswerHistory: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ModuleID != "m1" || events[0].Points != 2 {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Kind != "heckler_booth" {
		t.Errorf("events[1].Kind = %q", events[1].Kind)
	}
	if events[0].SessionID != st.SessionID() {
		t.Errorf("event session = %q, want %q", events[0].SessionID, st.SessionID())
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("event timestamps must parse")
	}
}

func TestEventsAdapter(t *testing.T) {
	st := openTestStore(t)

	st.Events().AnswerRecorded("m1", "quiz", 4)

	events, err := st.AnswerHistory(context.Background())
	if err != nil {
		t.Fatalf("AnswerHistory: %v", err)
	}
	if len(events) != 1 || events[0].Kind != "quiz" {
		t.Fatalf("events = %+v", events)
	}
}

func TestSessionAgainstSQLiteStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bigtop.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	sess := workshop.NewSession(testCatalog(), st.Progress())
	sess.Record("m1", workshop.PollAnswer{ChoiceID: "a", Points: 2})
	sess.GoNext()
	st.Close()

	// A second process reopens the same file and resumes.
	st2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	resumed := workshop.NewSession(testCatalog(), st2.Progress())
	if resumed.Idx() != 1 || resumed.Tickets() != 1 || resumed.Score() != 2 {
		t.Errorf("resumed session = {idx:%d tickets:%d score:%d}",
			resumed.Idx(), resumed.Tickets(), resumed.Score())
	}
	if !resumed.Completed("m1") {
		t.Error("completion must survive a restart")
	}
}
