package engine

import (
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/promptlab"
	"github.com/abhisek/bigtop/internal/workshop"
)

// TriagePointCap limits how many points a prompt draft can earn. The rubric
// rewards structure, not perfection.
const TriagePointCap = 5

// Triage scores a free-text draft continuously and freezes it on submit.
type Triage struct {
	Module *catalog.PromptTriage

	Draft  string
	Rubric promptlab.Result
	Done   bool
}

func newTriage(m *catalog.PromptTriage, prior workshop.Answer) *Triage {
	t := &Triage{Module: m, Draft: m.BadPrompt}
	if a, ok := prior.(workshop.TriageAnswer); ok {
		t.Draft = a.Draft
		t.Done = a.Done
	}
	t.Rubric = promptlab.Score(t.Draft)
	return t
}

func (t *Triage) state() {}

// SetDraft replaces the working draft and rescores it. No-op once
// submitted.
func (t *Triage) SetDraft(draft string) {
	if t.Done {
		return
	}
	t.Draft = draft
	t.Rubric = promptlab.Score(draft)
}

// Submit freezes the draft and emits the stored answer with points capped
// at TriagePointCap. Idempotent: repeated calls while done return false.
func (t *Triage) Submit() (workshop.Answer, bool) {
	if t.Done {
		return nil, false
	}
	t.Done = true

	points := t.Rubric.Score
	if points > TriagePointCap {
		points = TriagePointCap
	}
	return workshop.TriageAnswer{
		Draft:  t.Draft,
		Score:  t.Rubric.Score,
		Checks: t.Rubric.Checks,
		Done:   true,
		Points: points,
	}, true
}
