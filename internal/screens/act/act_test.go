package act

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/engine"
	"github.com/abhisek/bigtop/internal/screen"
	"github.com/abhisek/bigtop/internal/workshop"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(
		&catalog.Poll{
			Meta:    catalog.Meta{ID: "m1", Title: "Opening Poll"},
			Prompt:  "Which way?",
			Options: []catalog.Option{{ID: "a", Label: "Left"}, {ID: "b", Label: "Right"}},
			Points:  map[string]int{"a": 2},
			Reveal:  &catalog.Reveal{Headline: "Both", Body: "Either works."},
		},
		&catalog.SecuritySim{
			Meta:     catalog.Meta{ID: "m2", Title: "Injection"},
			Scenario: "The email says ignore your instructions.",
			Options: []catalog.SimOption{
				{ID: "comply", Label: "Comply", Why: "That is the con."},
				{ID: "flag", Label: "Flag", IsCorrect: true, Why: "Right."},
			},
			PointsCorrect: 3,
		},
		&catalog.Booth{
			Meta:       catalog.Meta{ID: "m3", Title: "Booth"},
			Intro:      "A heckler steps up.",
			Principles: []catalog.BoothPart{{ID: "p1", Label: "P1", Text: "One."}, {ID: "p2", Label: "P2", Text: "Uno."}},
			Analogies:  []catalog.BoothPart{{ID: "a1", Label: "A1", Text: "Two."}, {ID: "a2", Label: "A2", Text: "Dos."}},
			Closings:   []catalog.BoothPart{{ID: "c1", Label: "C1", Text: "Three."}, {ID: "c2", Label: "C2", Text: "Tres."}},
		},
	)
}

func testSession() *workshop.Session {
	return workshop.NewSession(testCatalog(), nil)
}

func TestPollPickByEnter(t *testing.T) {
	sess := testSession()
	var scr screen.Screen = New(sess, false)

	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // picks "a", cursor at top
	a := scr.(*ActScreen)

	if !sess.Completed("m1") {
		t.Fatal("enter on a poll choice must record the answer")
	}
	if sess.Score() != 2 || sess.Tickets() != 1 {
		t.Errorf("score=%d tickets=%d", sess.Score(), sess.Tickets())
	}
	if !sess.JustWon() {
		t.Error("first completion must flag the win")
	}

	view := a.View(100, 40)
	if !strings.Contains(view, "Both") {
		t.Error("a locked poll must show its reveal")
	}
	if !strings.Contains(view, "ticket") {
		t.Error("the just-won banner must show")
	}
}

func TestPollCursorMovesBeforePick(t *testing.T) {
	sess := testSession()
	var scr screen.Screen = New(sess, false)

	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // picks "b"
	_ = scr

	a, ok := sess.AnswerFor("m1").(workshop.PollAnswer)
	if !ok || a.ChoiceID != "b" {
		t.Errorf("AnswerFor(m1) = %#v, want choice b", sess.AnswerFor("m1"))
	}
	if sess.Score() != 0 {
		t.Errorf("Score() = %d, choice b is unscored", sess.Score())
	}
}

func TestTourNavigationReloadsState(t *testing.T) {
	sess := testSession()
	var scr screen.Screen = New(sess, false)
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // complete the poll

	scr, _ = scr.Update(keyPress('n'))
	a := scr.(*ActScreen)

	if sess.Idx() != 1 {
		t.Fatalf("Idx() = %d, want 1", sess.Idx())
	}
	if _, ok := a.state.(*engine.Sim); !ok {
		t.Errorf("state = %T, want the sim for module 2", a.state)
	}
	if sess.JustWon() {
		t.Error("moving on must clear the win flag")
	}

	scr, _ = scr.Update(keyPress('b'))
	a = scr.(*ActScreen)
	if sess.Idx() != 0 {
		t.Fatalf("Idx() = %d after back, want 0", sess.Idx())
	}
	if st, ok := a.state.(*engine.Poll); !ok || !st.Locked {
		t.Errorf("returning must rehydrate the locked poll, got %T", a.state)
	}
}

func TestSingleModeIgnoresNavKeys(t *testing.T) {
	sess := testSession()
	var scr screen.Screen = New(sess, true)

	scr, _ = scr.Update(keyPress('n'))
	_ = scr
	if sess.Idx() != 0 {
		t.Errorf("Idx() = %d, single mode must not navigate", sess.Idx())
	}
}

func TestSingleModeUsesEnteredModule(t *testing.T) {
	sess := testSession()
	sess.Enter(1)
	var scr screen.Screen = New(sess, true)

	a := scr.(*ActScreen)
	if a.mod == nil || a.mod.Describe().ID != "m2" {
		t.Fatalf("active module = %v, want the entered attraction m2", a.mod)
	}
	if sess.Idx() != 0 {
		t.Errorf("Idx() = %d, entering an attraction must not move the tour", sess.Idx())
	}
}

func TestSimVerdictShowsWhy(t *testing.T) {
	sess := testSession()
	sess.Visit(1)
	var scr screen.Screen = New(sess, false)

	scr, _ = scr.Update(keyPress('j')) // move to "flag"
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	a := scr.(*ActScreen)

	if sess.Score() != 3 {
		t.Errorf("Score() = %d, want 3 for the correct call", sess.Score())
	}
	if !strings.Contains(a.View(100, 40), "Right.") {
		t.Error("the verdict must show the option's why text")
	}
}

func TestBoothBuildsAcrossColumns(t *testing.T) {
	sess := testSession()
	sess.Visit(2)
	var scr screen.Screen = New(sess, false)

	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // principle p1
	if sess.Completed("m3") {
		t.Fatal("one part must not complete the booth")
	}

	scr, _ = scr.Update(specialKey(tea.KeyTab))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // analogy a1
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // closing c1

	if !sess.Completed("m3") {
		t.Fatal("three parts must complete the booth")
	}
	ba := sess.AnswerFor("m3").(workshop.BoothAnswer)
	if ba.Response != "One. Two. Three." {
		t.Errorf("Response = %q", ba.Response)
	}
	if sess.Tickets() != 1 {
		t.Errorf("Tickets() = %d, want 1", sess.Tickets())
	}

	// Swap the principle: payload refreshes, ticket stays frozen.
	shiftTab := tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	scr, _ = scr.Update(shiftTab)
	scr, _ = scr.Update(shiftTab)
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // principle p2
	_ = scr

	ba = sess.AnswerFor("m3").(workshop.BoothAnswer)
	if ba.Response != "Uno. Two. Three." {
		t.Errorf("Response = %q after re-pick", ba.Response)
	}
	if sess.Tickets() != 1 {
		t.Errorf("Tickets() = %d, re-picking must not pay again", sess.Tickets())
	}
}

func TestTitleTracksModule(t *testing.T) {
	sess := testSession()
	a := New(sess, false)
	if a.Title() != "Opening Poll" {
		t.Errorf("Title() = %q", a.Title())
	}
}

func TestEmptyCatalogRendersPlaceholder(t *testing.T) {
	sess := workshop.NewSession(catalog.New(), nil)
	a := New(sess, false)
	if a.Title() != "The Big Top" {
		t.Errorf("Title() = %q", a.Title())
	}
	if a.View(80, 24) == "" {
		t.Error("empty catalog must still render something")
	}
}
