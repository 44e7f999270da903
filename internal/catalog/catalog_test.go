package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", cat.Len())
	}

	wantKinds := []Kind{KindBooth, KindQuiz, KindPromptTriage, KindSecuritySim, KindInfo, KindInfo}
	for i, want := range wantKinds {
		if got := cat.At(i).Kind(); got != want {
			t.Errorf("At(%d).Kind() = %q, want %q", i, got, want)
		}
	}
}

func TestFindIndex(t *testing.T) {
	cat := Default()

	tests := []struct {
		key  string
		want int
	}{
		{"culture-purity-test", 0},
		{"heckler-booth", 0}, // slug
		{"ai-failure-modes", 1},
		{"gift-shop", 5}, // slug
		{"end", 5},
		{"no-such-module", NotFound},
		{"", NotFound},
	}

	for _, tt := range tests {
		if got := cat.FindIndex(tt.key); got != tt.want {
			t.Errorf("FindIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	cat := Default()
	if cat.At(-1) != nil {
		t.Error("At(-1) should be nil")
	}
	if cat.At(cat.Len()) != nil {
		t.Error("At(Len()) should be nil")
	}
}

func TestFrontGatePartition(t *testing.T) {
	cat := Default()

	gate := cat.FrontGate()
	beyond := cat.Beyond()

	if len(gate)+len(beyond) != cat.Len() {
		t.Fatalf("partition sizes %d + %d != %d", len(gate), len(beyond), cat.Len())
	}
	if len(gate) != 1 || gate[0].Describe().ID != "culture-purity-test" {
		t.Errorf("FrontGate() = %d modules, want the booth alone", len(gate))
	}
	// Beyond preserves catalog order.
	for i := 1; i < cat.Len(); i++ {
		if beyond[i-1].Describe().ID != cat.At(i).Describe().ID {
			t.Errorf("Beyond()[%d] = %q, out of catalog order", i-1, beyond[i-1].Describe().ID)
		}
	}
}

func TestAreaFallback(t *testing.T) {
	m := Meta{}
	if got := m.Area(); got != DefaultArea {
		t.Errorf("Area() = %q, want %q", got, DefaultArea)
	}
	m.Park.Area = "Midway"
	if got := m.Area(); got != "Midway" {
		t.Errorf("Area() = %q, want Midway", got)
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	data := `[
		{"type":"info","id":"dup","title":"One","bullets":["a"],"park":{}},
		{"type":"info","id":"dup","title":"Two","bullets":["b"],"park":{}}
	]`
	_, err := Load([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("Load() err = %v, want duplicate id error", err)
	}
}

func TestLoadRejectsUnknownType(t *testing.T) {
	data := `[{"type":"carousel","id":"x","title":"X","park":{}}]`
	_, err := Load([]byte(data))
	if err == nil {
		t.Fatal("Load() should reject an unknown module type")
	}
}

func TestLoadRejectsNonCanonicalFields(t *testing.T) {
	// Polls declare "options"; a record using "choices" must fail
	// validation instead of silently coercing.
	data := `[{
		"type": "poll",
		"id": "p1",
		"title": "Pick one",
		"prompt": "Which?",
		"choices": [{"id": "a", "label": "A"}],
		"points": {"a": 1},
		"park": {}
	}]`
	_, err := Load([]byte(data))
	if err == nil {
		t.Fatal("Load() should reject a poll using a non-canonical option field")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	if _, err := Load([]byte(`{not json`)); err == nil {
		t.Fatal("Load() should reject malformed JSON")
	}
}

func TestLoadValidPoll(t *testing.T) {
	data := `[{
		"type": "poll",
		"id": "p1",
		"slug": "first-poll",
		"title": "Pick one",
		"prompt": "Which?",
		"options": [{"id": "a", "label": "A"}, {"id": "b", "label": "B"}],
		"points": {"a": 2},
		"reveal": {"headline": "Well", "body": "Both work."},
		"park": {"area": "Front Gate", "icon": "🎪"}
	}]`
	cat, err := Load([]byte(data))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	p, ok := cat.At(0).(*Poll)
	if !ok {
		t.Fatalf("At(0) = %T, want *Poll", cat.At(0))
	}
	if p.ID != "p1" || p.Slug != "first-poll" || len(p.Options) != 2 {
		t.Errorf("poll fields not decoded: %+v", p)
	}
	if p.Points["a"] != 2 {
		t.Errorf("Points[a] = %d, want 2", p.Points["a"])
	}
	if p.Reveal == nil || p.Reveal.Headline != "Well" {
		t.Errorf("reveal not decoded: %+v", p.Reveal)
	}
}

func TestInfoInteractive(t *testing.T) {
	plain := &Info{Bullets: []string{"a"}}
	if plain.Interactive() {
		t.Error("info without prompt should not be interactive")
	}

	prompted := &Info{
		Prompt:  "Pick",
		Options: []Option{{ID: "a", Label: "A"}},
	}
	if !prompted.Interactive() {
		t.Error("info with prompt and options should be interactive")
	}
}
