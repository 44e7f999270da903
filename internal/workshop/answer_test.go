package workshop

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAnswerSetRoundTrip(t *testing.T) {
	set := AnswerSet{
		"poll-1":   PollAnswer{ChoiceID: "a", Points: 2},
		"quiz-1":   QuizAnswer{Answers: map[string]string{"q1": "b"}, Results: map[string]ItemResult{"q1": {Picked: "b", Correct: true}}, Points: 2},
		"triage-1": TriageAnswer{Draft: "Act as a reviewer", Score: 3, Checks: map[string]bool{"role": true}, Done: true, Points: 3},
		"sim-1":    SimAnswer{ChoiceID: "c", IsCorrect: true, Points: 3},
		"info-1":   InfoAnswer{ChoiceID: "x", Points: 1},
		"booth-1":  BoothAnswer{Principle: "p1", Analogy: "a1", Closing: "c1", Response: "one two three", CompletedAt: time.Now().UTC().Truncate(time.Second)},
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got AnswerSet
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(got) != len(set) {
		t.Fatalf("round trip lost entries: %d != %d", len(got), len(set))
	}
	if a, ok := got["poll-1"].(PollAnswer); !ok || a.Points != 2 {
		t.Errorf("poll-1 = %#v", got["poll-1"])
	}
	if a, ok := got["booth-1"].(BoothAnswer); !ok || a.Response != "one two three" {
		t.Errorf("booth-1 = %#v", got["booth-1"])
	}
	if a, ok := got["quiz-1"].(QuizAnswer); !ok || !a.Results["q1"].Correct {
		t.Errorf("quiz-1 = %#v", got["quiz-1"])
	}
}

func TestMarshalInjectsTypeTag(t *testing.T) {
	data, err := json.Marshal(AnswerSet{"b": BoothAnswer{Principle: "p"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"heckler_booth"`) {
		t.Errorf("booth entries must carry the heckler_booth tag, got %s", data)
	}
}

func TestUnmarshalDropsBadEntries(t *testing.T) {
	raw := `{
		"good": {"type": "poll", "choiceId": "a", "points": 2},
		"unknown-tag": {"type": "carousel", "choiceId": "a"},
		"no-tag": {"choiceId": "a"},
		"not-an-object": 42
	}`

	var got AnswerSet
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want only the well-formed one", len(got))
	}
	if _, ok := got["good"].(PollAnswer); !ok {
		t.Errorf("good = %#v, want PollAnswer", got["good"])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := AnswerSet{"m1": PollAnswer{ChoiceID: "a"}}
	clone := orig.Clone()
	clone["m2"] = InfoAnswer{ChoiceID: "x"}

	if len(orig) != 1 {
		t.Errorf("mutating a clone changed the original: %d entries", len(orig))
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		a    Answer
		want string
	}{
		{PollAnswer{}, "poll"},
		{QuizAnswer{}, "quiz"},
		{TriageAnswer{}, "promptTriage"},
		{SimAnswer{}, "securitySim"},
		{InfoAnswer{}, "info"},
		{BoothAnswer{}, "heckler_booth"},
	}
	for _, tt := range tests {
		if got := Tag(tt.a); got != tt.want {
			t.Errorf("Tag(%T) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	set := AnswerSet{
		"p": PollAnswer{Points: 2},
		"q": QuizAnswer{Points: 4},
		"t": TriageAnswer{Points: 5},
		"s": SimAnswer{Points: 3},
		"i": InfoAnswer{Points: 1},
		"b": BoothAnswer{Response: "worth nothing"},
	}
	if got := Score(set); got != 15 {
		t.Errorf("Score() = %d, want 15", got)
	}
	if got := Score(AnswerSet{}); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
}

func TestPatchApply(t *testing.T) {
	prev := SavedState{
		Answers: AnswerSet{"m1": PollAnswer{ChoiceID: "a"}},
		Idx:     2,
		Tickets: 1,
	}

	idx := 3
	next := Patch{Idx: &idx}.Apply(prev)
	if next.Idx != 3 || next.Tickets != 1 || len(next.Answers) != 1 {
		t.Errorf("partial patch = %+v", next)
	}
	if next.HasTickets {
		t.Error("a patch without tickets must not mark them explicit")
	}

	tickets := 2
	next = Patch{Tickets: &tickets}.Apply(prev)
	if next.Tickets != 2 || !next.HasTickets {
		t.Errorf("ticket patch = %+v", next)
	}
}
