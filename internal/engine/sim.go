package engine

import (
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

// Sim is a security scenario: one pick, immediately terminal.
type Sim struct {
	Module *catalog.SecuritySim

	ChoiceID string
	Done     bool
}

func newSim(m *catalog.SecuritySim, prior workshop.Answer) *Sim {
	s := &Sim{Module: m}
	if a, ok := prior.(workshop.SimAnswer); ok {
		s.ChoiceID = a.ChoiceID
		s.Done = true
	}
	return s
}

func (s *Sim) state() {}

// Pick selects an option. Points are the module's pointsCorrect value when
// the option is flagged correct, zero otherwise. Terminal on first call.
func (s *Sim) Pick(choiceID string) (workshop.Answer, bool) {
	if s.Done {
		return nil, false
	}
	opt := s.option(choiceID)
	if opt == nil {
		return nil, false
	}

	s.ChoiceID = choiceID
	s.Done = true

	points := 0
	if opt.IsCorrect {
		points = s.Module.PointsCorrect
	}
	return workshop.SimAnswer{
		ChoiceID:  choiceID,
		IsCorrect: opt.IsCorrect,
		Points:    points,
	}, true
}

// Picked returns the chosen option once done, or nil.
func (s *Sim) Picked() *catalog.SimOption {
	if !s.Done {
		return nil
	}
	return s.option(s.ChoiceID)
}

func (s *Sim) option(id string) *catalog.SimOption {
	for i := range s.Module.Options {
		if s.Module.Options[i].ID == id {
			return &s.Module.Options[i]
		}
	}
	return nil
}
