package engine

import (
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

// Poll locks on the first pick; later picks are ignored.
type Poll struct {
	Module *catalog.Poll

	ChoiceID string
	Locked   bool
}

func newPoll(m *catalog.Poll, prior workshop.Answer) *Poll {
	p := &Poll{Module: m}
	if a, ok := prior.(workshop.PollAnswer); ok {
		p.ChoiceID = a.ChoiceID
		p.Locked = true
	}
	return p
}

func (p *Poll) state() {}

// Pick selects a choice. The first selection is terminal: it returns the
// finalized answer with the choice's point value. Subsequent calls return
// false and change nothing.
func (p *Poll) Pick(choiceID string) (workshop.Answer, bool) {
	if p.Locked {
		return nil, false
	}
	if !hasOption(p.Module.Options, choiceID) {
		return nil, false
	}

	p.ChoiceID = choiceID
	p.Locked = true
	return workshop.PollAnswer{
		ChoiceID: choiceID,
		Points:   p.Module.Points[choiceID],
	}, true
}

func hasOption(opts []catalog.Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}
