package engine

import (
	"strings"
	"time"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
)

// BoothPartKind names one of the three comeback slots.
type BoothPartKind string

const (
	PartPrinciple BoothPartKind = "principle"
	PartAnalogy   BoothPartKind = "analogy"
	PartClosing   BoothPartKind = "closing"
)

// Booth builds a comeback from three independently re-selectable parts.
// Completion fires the moment all three are set; every change after that
// re-derives the response and re-emits the answer. The session keeps the
// ticket frozen to the first completion regardless.
type Booth struct {
	Module *catalog.Booth

	Principle string
	Analogy   string
	Closing   string
}

func newBooth(m *catalog.Booth, prior workshop.Answer) *Booth {
	b := &Booth{Module: m}
	if a, ok := prior.(workshop.BoothAnswer); ok {
		b.Principle = a.Principle
		b.Analogy = a.Analogy
		b.Closing = a.Closing
	}
	return b
}

func (b *Booth) state() {}

// Pick sets one part. Unlike poll, parts never lock. When the booth is
// complete after the pick, the finalized (or refreshed) answer is
// returned; while parts are still missing it returns false.
func (b *Booth) Pick(kind BoothPartKind, id string) (workshop.Answer, bool) {
	parts := b.partsFor(kind)
	if findPart(parts, id) == nil {
		return nil, false
	}

	switch kind {
	case PartPrinciple:
		b.Principle = id
	case PartAnalogy:
		b.Analogy = id
	case PartClosing:
		b.Closing = id
	}

	if !b.Complete() {
		return nil, false
	}
	return workshop.BoothAnswer{
		Principle:   b.Principle,
		Analogy:     b.Analogy,
		Closing:     b.Closing,
		Response:    b.Response(),
		CompletedAt: time.Now(),
	}, true
}

// Complete reports whether all three parts are chosen.
func (b *Booth) Complete() bool {
	return b.Principle != "" && b.Analogy != "" && b.Closing != ""
}

// Response derives the comeback text: the three selected texts joined in
// principle, analogy, closing order, whitespace-collapsed and trimmed.
func (b *Booth) Response() string {
	p := partText(b.Module.Principles, b.Principle)
	a := partText(b.Module.Analogies, b.Analogy)
	c := partText(b.Module.Closings, b.Closing)
	joined := p + " " + a + " " + c
	return strings.Join(strings.Fields(joined), " ")
}

func (b *Booth) partsFor(kind BoothPartKind) []catalog.BoothPart {
	switch kind {
	case PartPrinciple:
		return b.Module.Principles
	case PartAnalogy:
		return b.Module.Analogies
	case PartClosing:
		return b.Module.Closings
	}
	return nil
}

func findPart(parts []catalog.BoothPart, id string) *catalog.BoothPart {
	for i := range parts {
		if parts[i].ID == id {
			return &parts[i]
		}
	}
	return nil
}

func partText(parts []catalog.BoothPart, id string) string {
	if p := findPart(parts, id); p != nil {
		return p.Text
	}
	return ""
}
