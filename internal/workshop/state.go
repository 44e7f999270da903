package workshop

// SavedState is the single persisted progress record.
type SavedState struct {
	Answers AnswerSet `json:"answers"`
	Idx     int       `json:"idx"`
	Tickets int       `json:"tickets"`

	// HasTickets distinguishes a stored zero from a legacy record that
	// predates ticket tracking. Set by the persistence layer on load.
	HasTickets bool `json:"-"`
}

// Patch is a partial update merged onto the last stored record. Nil fields
// leave the stored value untouched, mirroring a shallow key merge.
type Patch struct {
	Answers AnswerSet
	Idx     *int
	Tickets *int
}

// Apply merges the patch onto a state, returning the merged result.
func (p Patch) Apply(prev SavedState) SavedState {
	next := prev
	if p.Answers != nil {
		next.Answers = p.Answers
	}
	if p.Idx != nil {
		next.Idx = *p.Idx
	}
	if p.Tickets != nil {
		next.Tickets = *p.Tickets
		next.HasTickets = true
	}
	return next
}

// Saver is the persistence adapter contract. Implementations swallow
// storage failures: Load returns nil for "no usable saved state" and the
// writes silently no-op, since losing persistence must not block the
// session.
type Saver interface {
	Load() *SavedState
	Save(SavedState)
	Merge(Patch)
}

func intPtr(v int) *int { return &v }
