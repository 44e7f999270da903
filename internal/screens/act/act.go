// Package act hosts the active attraction: it derives the interaction
// state for the current module, translates keys into engine calls, and
// hands finalized answers to the session.
package act

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/engine"
	"github.com/abhisek/bigtop/internal/screen"
	"github.com/abhisek/bigtop/internal/ui/components"
	"github.com/abhisek/bigtop/internal/ui/layout"
	"github.com/abhisek/bigtop/internal/workshop"
)

// ActScreen renders one module and owns its transient interaction state.
type ActScreen struct {
	sess   *workshop.Session
	single bool

	mod   catalog.Module
	state engine.State

	choices     components.ChoiceList
	quizItem    int
	quizChoices components.ChoiceList
	editor      components.Editor
	boothCol    int
	boothLists  [3]components.ChoiceList
}

var _ screen.Screen = (*ActScreen)(nil)

// New creates a screen for the session's current module. In single mode
// the tour navigation keys are disabled and progress reads full.
func New(sess *workshop.Session, single bool) *ActScreen {
	a := &ActScreen{sess: sess, single: single}
	a.reload()
	return a
}

// reload re-derives all transient state from (current module, stored
// answer). Called on every navigation so nothing carries over between
// modules.
func (a *ActScreen) reload() {
	a.mod = nil
	a.state = nil
	a.quizItem = 0
	a.boothCol = 0

	cat := a.sess.Catalog()
	if cat.Len() == 0 {
		return
	}
	a.mod = cat.At(a.sess.ActiveIdx())
	if a.mod == nil {
		return
	}
	prior := a.sess.AnswerFor(a.mod.Describe().ID)
	a.state = engine.New(a.mod, prior)

	switch st := a.state.(type) {
	case *engine.Poll:
		a.choices = components.NewChoiceList(toChoices(st.Module.Options))
		if st.Locked {
			a.choices.Lock(st.ChoiceID)
		}
	case *engine.Sim:
		a.choices = components.NewChoiceList(simChoices(st.Module.Options))
		if st.Done {
			a.choices.Lock(st.ChoiceID)
			a.choices.CorrectID = correctSimID(st.Module.Options)
		}
	case *engine.Info:
		if st.Module.Interactive() {
			a.choices = components.NewChoiceList(toChoices(st.Module.Options))
			if st.Locked {
				a.choices.Lock(st.ChoiceID)
			}
		}
	case *engine.Quiz:
		a.loadQuizItem()
	case *engine.Triage:
		a.editor = components.NewEditor(st.Draft, 60, 8)
		if st.Done {
			a.editor.Blur()
		}
	case *engine.Booth:
		a.boothLists[0] = boothList(st.Module.Principles, st.Principle)
		a.boothLists[1] = boothList(st.Module.Analogies, st.Analogy)
		a.boothLists[2] = boothList(st.Module.Closings, st.Closing)
	}
}

// loadQuizItem points the choice list at the current quiz item, restoring
// any editable pick.
func (a *ActScreen) loadQuizItem() {
	st, ok := a.state.(*engine.Quiz)
	if !ok || a.quizItem >= len(st.Module.Items) {
		return
	}
	item := st.Module.Items[a.quizItem]
	a.quizChoices = components.NewChoiceList(quizChoices(item.Choices))
	a.quizChoices.PickedID = st.Picks[item.ID]
	if st.Done {
		a.quizChoices.Lock(st.Picks[item.ID])
		a.quizChoices.CorrectID = item.AnswerID
	}
}

func (a *ActScreen) Init() tea.Cmd {
	if _, ok := a.state.(*engine.Triage); ok {
		return a.editor.Init()
	}
	return nil
}

func (a *ActScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey && !a.single {
		switch kmsg.String() {
		case "ctrl+n":
			a.move(+1)
			return a, nil
		case "ctrl+p":
			a.move(-1)
			return a, nil
		}
	}

	switch st := a.state.(type) {
	case *engine.Poll:
		return a.updatePoll(st, msg)
	case *engine.Quiz:
		return a.updateQuiz(st, msg)
	case *engine.Triage:
		return a.updateTriage(st, msg)
	case *engine.Sim:
		return a.updateSim(st, msg)
	case *engine.Info:
		return a.updateInfo(st, msg)
	case *engine.Booth:
		return a.updateBooth(st, msg)
	}

	if isKey {
		a.updateNav(kmsg)
	}
	return a, nil
}

// updateNav handles the plain tour navigation keys for variants that do
// not capture printable input.
func (a *ActScreen) updateNav(kmsg tea.KeyMsg) bool {
	if a.single {
		return false
	}
	switch kmsg.String() {
	case "n", "right":
		a.move(+1)
		return true
	case "b", "left":
		a.move(-1)
		return true
	}
	return false
}

func (a *ActScreen) move(delta int) {
	if delta > 0 {
		a.sess.GoNext()
	} else {
		a.sess.GoBack()
	}
	a.reload()
}

func (a *ActScreen) record(ans workshop.Answer) {
	a.sess.Record(a.mod.Describe().ID, ans)
}

func (a *ActScreen) updatePoll(st *engine.Poll, msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && !st.Locked {
			if ans, ok := st.Pick(a.choices.Current().ID); ok {
				a.choices.Lock(st.ChoiceID)
				a.record(ans)
			}
			return a, nil
		}
		if a.updateNav(kmsg) {
			return a, nil
		}
	}
	a.choices, _ = a.choices.Update(msg)
	return a, nil
}

func (a *ActScreen) updateQuiz(st *engine.Quiz, msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "tab":
		if a.quizItem < len(st.Module.Items)-1 {
			a.quizItem++
			a.loadQuizItem()
		}
		return a, nil
	case "shift+tab":
		if a.quizItem > 0 {
			a.quizItem--
			a.loadQuizItem()
		}
		return a, nil
	case "enter":
		if st.Done {
			return a, nil
		}
		item := st.Module.Items[a.quizItem]
		if st.Choose(item.ID, a.quizChoices.Current().ID) {
			a.quizChoices.PickedID = st.Picks[item.ID]
			if next := a.nextUnpicked(st); next >= 0 {
				a.quizItem = next
				a.loadQuizItem()
			}
		}
		return a, nil
	case "s":
		if !st.Done && st.AllPicked() {
			if ans, ok := st.Submit(); ok {
				a.record(ans)
				a.loadQuizItem()
			}
		}
		return a, nil
	}

	if a.updateNav(kmsg) {
		return a, nil
	}
	a.quizChoices, _ = a.quizChoices.Update(msg)
	return a, nil
}

// nextUnpicked returns the index of the next item without a pick, or -1.
func (a *ActScreen) nextUnpicked(st *engine.Quiz) int {
	for off := 1; off <= len(st.Module.Items); off++ {
		i := (a.quizItem + off) % len(st.Module.Items)
		if st.Picks[st.Module.Items[i].ID] == "" {
			return i
		}
	}
	return -1
}

func (a *ActScreen) updateTriage(st *engine.Triage, msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "ctrl+s" {
		if ans, ok := st.Submit(); ok {
			a.record(ans)
			a.editor.Blur()
		}
		return a, nil
	}
	if st.Done {
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	st.SetDraft(a.editor.Value())
	return a, cmd
}

func (a *ActScreen) updateSim(st *engine.Sim, msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && !st.Done {
			if ans, ok := st.Pick(a.choices.Current().ID); ok {
				a.choices.Lock(st.ChoiceID)
				a.choices.CorrectID = correctSimID(st.Module.Options)
				a.record(ans)
			}
			return a, nil
		}
		if a.updateNav(kmsg) {
			return a, nil
		}
	}
	a.choices, _ = a.choices.Update(msg)
	return a, nil
}

func (a *ActScreen) updateInfo(st *engine.Info, msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && st.Module.Interactive() && !st.Locked {
			if ans, ok := st.Pick(a.choices.Current().ID); ok {
				a.choices.Lock(st.ChoiceID)
				a.record(ans)
			}
			return a, nil
		}
		if a.updateNav(kmsg) {
			return a, nil
		}
	}
	if st.Module.Interactive() {
		a.choices, _ = a.choices.Update(msg)
	}
	return a, nil
}

func (a *ActScreen) updateBooth(st *engine.Booth, msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "tab", "right", "l":
		if a.boothCol < 2 {
			a.boothCol++
		}
		return a, nil
	case "shift+tab", "left", "h":
		if a.boothCol > 0 {
			a.boothCol--
		}
		return a, nil
	case "enter":
		kind := boothKinds[a.boothCol]
		picked := a.boothLists[a.boothCol].Current().ID
		if ans, ok := st.Pick(kind, picked); ok {
			a.record(ans)
		}
		a.boothLists[a.boothCol].PickedID = picked
		return a, nil
	case "n":
		if !a.single {
			a.move(+1)
		}
		return a, nil
	case "b":
		if !a.single {
			a.move(-1)
		}
		return a, nil
	}

	a.boothLists[a.boothCol], _ = a.boothLists[a.boothCol].Update(msg)
	return a, nil
}

var boothKinds = [3]engine.BoothPartKind{
	engine.PartPrinciple,
	engine.PartAnalogy,
	engine.PartClosing,
}

func (a *ActScreen) Title() string {
	if a.mod == nil {
		return "The Big Top"
	}
	return a.mod.Describe().Title
}

func (a *ActScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	switch st := a.state.(type) {
	case *engine.Quiz:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Choose"},
			layout.KeyHint{Key: "Tab", Description: "Question"},
			layout.KeyHint{Key: "Enter", Description: "Pick"})
		if !st.Done {
			hints = append(hints, layout.KeyHint{Key: "s", Description: "Submit"})
		}
	case *engine.Triage:
		if !st.Done {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
		}
	case *engine.Booth:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Slot"},
			layout.KeyHint{Key: "↑↓", Description: "Choose"},
			layout.KeyHint{Key: "Enter", Description: "Pick"})
	default:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Choose"},
			layout.KeyHint{Key: "Enter", Description: "Pick"})
	}

	if !a.single {
		nav := layout.KeyHint{Key: "n/b", Description: "Next/Back"}
		if _, ok := a.state.(*engine.Triage); ok {
			nav = layout.KeyHint{Key: "Ctrl+N/P", Description: "Next/Back"}
		}
		hints = append(hints, nav, layout.KeyHint{Key: "Esc", Description: "Map"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func toChoices(opts []catalog.Option) []components.ChoiceOption {
	out := make([]components.ChoiceOption, len(opts))
	for i, o := range opts {
		out[i] = components.ChoiceOption{ID: o.ID, Label: o.Label}
	}
	return out
}

func correctSimID(opts []catalog.SimOption) string {
	for _, o := range opts {
		if o.IsCorrect {
			return o.ID
		}
	}
	return ""
}

func simChoices(opts []catalog.SimOption) []components.ChoiceOption {
	out := make([]components.ChoiceOption, len(opts))
	for i, o := range opts {
		out[i] = components.ChoiceOption{ID: o.ID, Label: o.Label}
	}
	return out
}

func quizChoices(opts []catalog.QuizChoice) []components.ChoiceOption {
	out := make([]components.ChoiceOption, len(opts))
	for i, o := range opts {
		out[i] = components.ChoiceOption{ID: o.ID, Label: o.Text}
	}
	return out
}

func boothList(parts []catalog.BoothPart, picked string) components.ChoiceList {
	opts := make([]components.ChoiceOption, len(parts))
	for i, p := range parts {
		opts[i] = components.ChoiceOption{ID: p.ID, Label: p.Label}
	}
	c := components.NewChoiceList(opts)
	c.PickedID = picked
	return c
}
