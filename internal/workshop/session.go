// Package workshop owns the persisted session state: the answer set, the
// tour position, and the prize-ticket count. The interaction engine emits
// answer payloads; only this package mutates or persists state.
package workshop

import (
	"github.com/abhisek/bigtop/internal/catalog"
)

// Session drives a guided tour or a single-module visit over a catalog.
// All mutation happens on the Bubble Tea update loop, so no locking.
type Session struct {
	cat   *catalog.Catalog
	saver Saver     // nil disables persistence
	sink  EventSink // nil disables the answer log

	answers AnswerSet
	idx     int
	tickets int
	justWon bool

	// activeIdx points a single-module visit at its target; -1 follows
	// the tour position. Never persisted.
	activeIdx int
}

// EventSink receives a notification for every recorded answer. Sinks are
// best-effort; they must not block the update loop.
type EventSink interface {
	AnswerRecorded(moduleID, kind string, points int)
}

// Progress is the aggregate exposed to presentation surfaces.
type Progress struct {
	Completed int
	Total     int
	Tickets   int
	Percent   int
}

// NewSession loads persisted state and normalizes legacy records: a record
// without a ticket count gets one backfilled from its completed-module
// count, and the tour index is clamped to the catalog bounds.
func NewSession(cat *catalog.Catalog, saver Saver) *Session {
	s := &Session{
		cat:       cat,
		saver:     saver,
		answers:   make(AnswerSet),
		activeIdx: -1,
	}

	var saved *SavedState
	if saver != nil {
		saved = saver.Load()
	}
	if saved != nil {
		if saved.Answers != nil {
			s.answers = saved.Answers
		}
		s.idx = saved.Idx
		if saved.HasTickets {
			s.tickets = saved.Tickets
		} else {
			s.tickets = len(s.answers)
		}
	}
	s.idx = s.clamp(s.idx)

	return s
}

// Catalog returns the catalog this session navigates.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Answers returns the live answer set. Callers must not mutate it.
func (s *Session) Answers() AnswerSet {
	return s.answers
}

// AnswerFor returns the stored answer for a module, or nil.
func (s *Session) AnswerFor(moduleID string) Answer {
	a, ok := s.answers[moduleID]
	if !ok {
		return nil
	}
	return a
}

// Completed reports whether a module has any stored answer.
func (s *Session) Completed(moduleID string) bool {
	_, ok := s.answers[moduleID]
	return ok
}

// Idx returns the current tour position.
func (s *Session) Idx() int {
	return s.idx
}

// ActiveIdx returns the index of the module on stage: the single-module
// target when one is set, otherwise the tour position.
func (s *Session) ActiveIdx() int {
	if s.activeIdx >= 0 {
		return s.activeIdx
	}
	return s.idx
}

// Enter points a single-module visit at a catalog index. The tour
// position stays put, so a later tour resumes where it left off.
func (s *Session) Enter(idx int) {
	s.activeIdx = s.clamp(idx)
}

// Tickets returns the prize-ticket count.
func (s *Session) Tickets() int {
	return s.tickets
}

// Score returns the summed points across all stored answers.
func (s *Session) Score() int {
	return Score(s.answers)
}

// JustWon reports whether the last recorded answer was a first completion.
// The flag is transient; it clears whenever the active module changes.
func (s *Session) JustWon() bool {
	return s.justWon
}

// ClearJustWon resets the first-completion flag. Called on every module
// change.
func (s *Session) ClearJustWon() {
	s.justWon = false
}

// Resolve maps a start identifier to a catalog index, or catalog.NotFound.
// A NotFound result in single-module mode means "navigate away", not an
// error.
func (s *Session) Resolve(start string) int {
	return s.cat.FindIndex(start)
}

// Record stores an answer for a module and awards a ticket if this is the
// module's first completion. The answer set always takes the new payload
// (last write wins); the ticket and the just-won flag fire at most once
// per module id. Persists immediately.
func (s *Session) Record(moduleID string, a Answer) {
	already := s.Completed(moduleID)

	next := s.answers.Clone()
	next[moduleID] = a
	s.answers = next

	if !already {
		s.tickets++
		s.justWon = true
	}

	s.merge(Patch{Answers: s.answers, Idx: intPtr(s.idx), Tickets: intPtr(s.tickets)})

	if s.sink != nil {
		s.sink.AnswerRecorded(moduleID, Tag(a), Points(a))
	}
}

// SetEventSink attaches an answer log. Pass nil to detach.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Visit jumps the tour position to an arbitrary index, clamped to the
// catalog bounds, and persists the transition.
func (s *Session) Visit(idx int) {
	s.moveTo(idx)
}

// GoNext advances the tour position, clamped to the last module, and
// persists the transition.
func (s *Session) GoNext() {
	s.moveTo(s.idx + 1)
}

// GoBack moves the tour position back, clamped to zero, and persists the
// transition.
func (s *Session) GoBack() {
	s.moveTo(s.idx - 1)
}

func (s *Session) moveTo(idx int) {
	next := s.clamp(idx)
	if next != s.idx {
		s.justWon = false
	}
	s.idx = next
	s.merge(Patch{Answers: s.answers, Idx: intPtr(s.idx), Tickets: intPtr(s.tickets)})
}

// Reset clears all progress and persists the cleared record synchronously.
func (s *Session) Reset() {
	s.answers = make(AnswerSet)
	s.idx = 0
	s.tickets = 0
	s.justWon = false
	if s.saver != nil {
		s.saver.Save(SavedState{Answers: s.answers, Idx: 0, Tickets: 0, HasTickets: true})
	}
}

// Progress returns the aggregate display values. Single-module mode always
// reports full progress; tour mode reports position through the catalog.
func (s *Session) Progress(single bool) Progress {
	total := s.cat.Len()
	p := Progress{
		Completed: len(s.answers),
		Total:     total,
		Tickets:   s.tickets,
		Percent:   100,
	}
	if !single && total > 0 {
		p.Percent = ((s.idx+1)*100 + total/2) / total
	}
	return p
}

func (s *Session) clamp(idx int) int {
	if idx < 0 {
		return 0
	}
	if max := s.cat.Len() - 1; idx > max {
		if max < 0 {
			return 0
		}
		return max
	}
	return idx
}

func (s *Session) merge(p Patch) {
	if s.saver == nil {
		return
	}
	s.saver.Merge(p)
}
