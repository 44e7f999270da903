// Package engine holds the per-variant interaction state machines. A state
// is derived purely from (module, stored answer) whenever the active module
// changes; it collects picks and emits finalized answer payloads for the
// session to record. The engine never touches persisted state itself.
package engine

import (
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

// State is the closed set of per-variant interaction states.
type State interface {
	state()
}

// New derives the transient interaction state for a module, rehydrating
// from the stored answer when one exists. A nil module (stale or unknown
// id) yields a nil state; the caller navigates away.
func New(m catalog.Module, prior workshop.Answer) State {
	if m == nil {
		return nil
	}
	switch mod := m.(type) {
	case *catalog.Poll:
		return newPoll(mod, prior)
	case *catalog.Quiz:
		return newQuiz(mod, prior)
	case *catalog.PromptTriage:
		return newTriage(mod, prior)
	case *catalog.SecuritySim:
		return newSim(mod, prior)
	case *catalog.Info:
		return newInfo(mod, prior)
	case *catalog.Booth:
		return newBooth(mod, prior)
	}
	return nil
}
