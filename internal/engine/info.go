package engine

import (
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

// infoPoints is the fixed point value for an info module's embedded prompt.
const infoPoints = 1

// Info is a read-mostly card. When it carries a prompt the behavior matches
// a poll at a fixed point value; without one there is nothing to emit and
// the module counts as seen on view.
type Info struct {
	Module *catalog.Info

	ChoiceID string
	Locked   bool
}

func newInfo(m *catalog.Info, prior workshop.Answer) *Info {
	i := &Info{Module: m}
	if a, ok := prior.(workshop.InfoAnswer); ok {
		i.ChoiceID = a.ChoiceID
		i.Locked = true
	}
	return i
}

func (i *Info) state() {}

// Pick selects the embedded prompt's choice. First selection locks.
func (i *Info) Pick(choiceID string) (workshop.Answer, bool) {
	if i.Locked || !i.Module.Interactive() {
		return nil, false
	}
	if !hasOption(i.Module.Options, choiceID) {
		return nil, false
	}

	i.ChoiceID = choiceID
	i.Locked = true
	return workshop.InfoAnswer{ChoiceID: choiceID, Points: infoPoints}, true
}
