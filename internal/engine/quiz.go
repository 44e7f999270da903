package engine

import (
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

// Quiz collects per-item picks while open, then grades everything in one
// atomic submit. No partial submission: an item without a pick simply
// grades as wrong.
type Quiz struct {
	Module *catalog.Quiz

	Picks   map[string]string
	Results map[string]workshop.ItemResult
	Done    bool
}

func newQuiz(m *catalog.Quiz, prior workshop.Answer) *Quiz {
	q := &Quiz{
		Module: m,
		Picks:  make(map[string]string),
	}
	if a, ok := prior.(workshop.QuizAnswer); ok {
		for k, v := range a.Answers {
			q.Picks[k] = v
		}
		q.Results = a.Results
		q.Done = true
	}
	return q
}

func (q *Quiz) state() {}

// Choose records a pick for one item. Picks stay editable until submit.
func (q *Quiz) Choose(itemID, choiceID string) bool {
	if q.Done {
		return false
	}
	item := q.item(itemID)
	if item == nil {
		return false
	}
	for _, c := range item.Choices {
		if c.ID == choiceID {
			q.Picks[itemID] = choiceID
			return true
		}
	}
	return false
}

// Submit grades all items against their declared answers and finalizes the
// quiz. Points sum the per-item values for correct picks, defaulting to 1
// where a value is unspecified. Returns false once already submitted.
func (q *Quiz) Submit() (workshop.Answer, bool) {
	if q.Done {
		return nil, false
	}

	points := 0
	results := make(map[string]workshop.ItemResult, len(q.Module.Items))
	for _, item := range q.Module.Items {
		picked := q.Picks[item.ID]
		correct := picked != "" && picked == item.AnswerID
		results[item.ID] = workshop.ItemResult{Picked: picked, Correct: correct}
		if correct {
			if item.Points > 0 {
				points += item.Points
			} else {
				points++
			}
		}
	}

	q.Results = results
	q.Done = true

	answers := make(map[string]string, len(q.Picks))
	for k, v := range q.Picks {
		answers[k] = v
	}
	return workshop.QuizAnswer{Answers: answers, Results: results, Points: points}, true
}

// AllPicked reports whether every item has a pick.
func (q *Quiz) AllPicked() bool {
	for _, item := range q.Module.Items {
		if q.Picks[item.ID] == "" {
			return false
		}
	}
	return true
}

func (q *Quiz) item(id string) *catalog.QuizItem {
	for i := range q.Module.Items {
		if q.Module.Items[i].ID == id {
			return &q.Module.Items[i]
		}
	}
	return nil
}
