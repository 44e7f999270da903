package workshop

import (
	"encoding/json"
	"fmt"
	"time"
)

// Answer is the closed set of payloads a module interaction can emit.
// Exactly the types in this file implement it. Presence of a module id in
// an AnswerSet is what "completed" means; the payload itself may be
// overwritten later without the module counting twice.
type Answer interface {
	answer()
}

// Stored payload type tags. These are the persistence format and must not
// change without a migration.
const (
	tagPoll    = "poll"
	tagQuiz    = "quiz"
	tagTriage  = "promptTriage"
	tagSim     = "securitySim"
	tagInfo    = "info"
	tagBooth   = "heckler_booth"
	tagUnknown = ""
)

// PollAnswer records a locked single choice.
type PollAnswer struct {
	ChoiceID string `json:"choiceId"`
	Points   int    `json:"points"`
}

// ItemResult is the per-question verdict of a quiz submission.
type ItemResult struct {
	Picked  string `json:"picked"`
	Correct bool   `json:"correct"`
}

// QuizAnswer records an atomic quiz submission.
type QuizAnswer struct {
	Answers map[string]string     `json:"answers"`
	Results map[string]ItemResult `json:"results"`
	Points  int                   `json:"points"`
}

// TriageAnswer records a frozen prompt draft with its rubric outcome.
type TriageAnswer struct {
	Draft  string          `json:"draft"`
	Score  int             `json:"score"`
	Checks map[string]bool `json:"checks"`
	Done   bool            `json:"done"`
	Points int             `json:"points"`
}

// SimAnswer records a terminal security-scenario choice.
type SimAnswer struct {
	ChoiceID  string `json:"choiceId"`
	IsCorrect bool   `json:"isCorrect"`
	Points    int    `json:"points"`
}

// InfoAnswer records the optional embedded prompt of an info module.
type InfoAnswer struct {
	ChoiceID string `json:"choiceId"`
	Points   int    `json:"points"`
}

// BoothAnswer records the three comeback parts and the derived response.
// It carries no point value; the scorer treats it as zero.
type BoothAnswer struct {
	Principle   string    `json:"principle"`
	Analogy     string    `json:"analogy"`
	Closing     string    `json:"closing"`
	Response    string    `json:"response"`
	CompletedAt time.Time `json:"completedAt"`
}

func (PollAnswer) answer()   {}
func (QuizAnswer) answer()   {}
func (TriageAnswer) answer() {}
func (SimAnswer) answer()    {}
func (InfoAnswer) answer()   {}
func (BoothAnswer) answer()  {}

// AnswerSet maps module ids to their latest stored answer.
type AnswerSet map[string]Answer

// Clone returns a shallow copy. Answer payloads are value types, so a
// shallow copy is enough for last-write-wins replacement.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// envelope is the persisted shape of a single answer: the payload fields
// plus a type tag for decoding.
type envelope struct {
	Type string `json:"type"`
}

// Tag returns the persisted type tag for an answer, or the empty string
// for an unknown payload.
func Tag(a Answer) string {
	return tagOf(a)
}

func tagOf(a Answer) string {
	switch a.(type) {
	case PollAnswer:
		return tagPoll
	case QuizAnswer:
		return tagQuiz
	case TriageAnswer:
		return tagTriage
	case SimAnswer:
		return tagSim
	case InfoAnswer:
		return tagInfo
	case BoothAnswer:
		return tagBooth
	}
	return tagUnknown
}

// MarshalJSON encodes each answer with an injected "type" tag.
func (s AnswerSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s))
	for id, a := range s {
		raw, err := marshalAnswer(a)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", id, err)
		}
		out[id] = raw
	}
	return json.Marshal(out)
}

func marshalAnswer(a Answer) (json.RawMessage, error) {
	tag := tagOf(a)
	if tag == tagUnknown {
		return nil, fmt.Errorf("unknown answer type %T", a)
	}

	fields, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(fields, &m); err != nil {
		return nil, err
	}
	m["type"] = json.RawMessage(fmt.Sprintf("%q", tag))
	return json.Marshal(m)
}

// UnmarshalJSON decodes a persisted answer map. Entries with a missing or
// unknown type tag are dropped rather than failing the whole record; a
// malformed entry must not cost the learner the rest of their progress.
func (s *AnswerSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(AnswerSet, len(raw))
	for id, entry := range raw {
		a, err := unmarshalAnswer(entry)
		if err != nil || a == nil {
			continue
		}
		out[id] = a
	}
	*s = out
	return nil
}

func unmarshalAnswer(data json.RawMessage) (Answer, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	var a Answer
	var err error
	switch env.Type {
	case tagPoll:
		var v PollAnswer
		err = json.Unmarshal(data, &v)
		a = v
	case tagQuiz:
		var v QuizAnswer
		err = json.Unmarshal(data, &v)
		a = v
	case tagTriage:
		var v TriageAnswer
		err = json.Unmarshal(data, &v)
		a = v
	case tagSim:
		var v SimAnswer
		err = json.Unmarshal(data, &v)
		a = v
	case tagInfo:
		var v InfoAnswer
		err = json.Unmarshal(data, &v)
		a = v
	case tagBooth:
		var v BoothAnswer
		err = json.Unmarshal(data, &v)
		a = v
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
