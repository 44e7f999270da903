package act

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigtop/internal/engine"
	"github.com/abhisek/bigtop/internal/promptlab"
	"github.com/abhisek/bigtop/internal/ui/components"
	"github.com/abhisek/bigtop/internal/ui/theme"
)

func (a *ActScreen) View(width, height int) string {
	if a.mod == nil || a.state == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nothing playing under this tent."))
	}

	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 20 {
		cw = 20
	}

	var sections []string
	sections = append(sections, a.renderBanner(cw))

	switch st := a.state.(type) {
	case *engine.Poll:
		sections = append(sections, a.renderPoll(st, cw)...)
	case *engine.Quiz:
		sections = append(sections, a.renderQuiz(st, cw)...)
	case *engine.Triage:
		sections = append(sections, a.renderTriage(st, cw)...)
	case *engine.Sim:
		sections = append(sections, a.renderSim(st, cw)...)
	case *engine.Info:
		sections = append(sections, a.renderInfo(st, cw)...)
	case *engine.Booth:
		sections = append(sections, a.renderBooth(st, cw)...)
	}

	if a.sess.JustWon() {
		sections = append(sections, theme.Done.Render("🎟  You won a ticket! First time through this act."))
	}

	sections = append(sections, a.renderProgress(cw))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *ActScreen) renderBanner(cw int) string {
	meta := a.mod.Describe()
	icon := meta.Park.Icon
	if icon == "" {
		icon = "🎪"
	}
	line := icon + " " + meta.Title
	var tag []string
	if meta.Park.Attraction != "" {
		tag = append(tag, meta.Park.Attraction)
	}
	if meta.Park.Time != "" {
		tag = append(tag, meta.Park.Time)
	}
	if meta.Park.Level != "" {
		tag = append(tag, meta.Park.Level)
	}
	s := theme.Title.Render(line)
	if len(tag) > 0 {
		s += "\n" + theme.Hint.Render(strings.Join(tag, " · "))
	}
	return s
}

func (a *ActScreen) renderProgress(cw int) string {
	p := a.sess.Progress(a.single)
	label := fmt.Sprintf("Act %d of %d", a.sess.ActiveIdx()+1, p.Total)
	if a.single {
		label = "Side show"
	}
	bar := components.NewProgressBar(label, float64(p.Percent)/100, true, cw)
	return bar.View()
}

func (a *ActScreen) renderPoll(st *engine.Poll, cw int) []string {
	wrap := lipgloss.NewStyle().Width(cw)
	out := []string{
		wrap.Foreground(theme.Text).Render(st.Module.Prompt),
		a.choices.View(),
	}
	if st.Locked && st.Module.Reveal != nil {
		card := theme.Card.Width(cw).Render(
			theme.Subtitle.Render(st.Module.Reveal.Headline) + "\n\n" +
				theme.Body.Render(st.Module.Reveal.Body))
		out = append(out, card)
	}
	if st.Locked {
		out = append(out, theme.Hint.Render(
			fmt.Sprintf("★ %d pts banked for this act.", st.Module.Points[st.ChoiceID])))
	}
	return out
}

func (a *ActScreen) renderQuiz(st *engine.Quiz, cw int) []string {
	item := st.Module.Items[a.quizItem]
	wrap := lipgloss.NewStyle().Width(cw)

	picked := 0
	for _, it := range st.Module.Items {
		if st.Picks[it.ID] != "" {
			picked++
		}
	}

	out := []string{
		theme.Hint.Render(fmt.Sprintf("Question %d of %d · %d answered",
			a.quizItem+1, len(st.Module.Items), picked)),
		wrap.Foreground(theme.Text).Render(item.Question),
		a.quizChoices.View(),
	}

	if st.Done {
		res := st.Results[item.ID]
		verdict := theme.Incorrect.Render("✗ Not quite.")
		if res.Correct {
			verdict = theme.Correct.Render("✓ Dead on.")
		}
		out = append(out, verdict+"\n"+wrap.Foreground(theme.TextDim).Render(item.Explain))
	} else if st.AllPicked() {
		out = append(out, theme.Done.Render("All answered. Press s to submit."))
	}
	return out
}

func (a *ActScreen) renderTriage(st *engine.Triage, cw int) []string {
	wrap := lipgloss.NewStyle().Width(cw)
	cf := st.Module.CaseFile

	brief := theme.Card.Width(cw).Render(strings.Join([]string{
		theme.Subtitle.Render("Case file · " + cf.Language),
		"Subject: " + cf.Subject,
		"Hero: " + cf.Hero,
		"CTA: " + cf.PrimaryCTA + "  ·  Expiry: " + cf.Expiry,
	}, "\n"))

	chips := make([]components.Chip, 0, len(promptlab.CheckNames))
	for _, name := range promptlab.CheckNames {
		chips = append(chips, components.Chip{Label: name, On: st.Rubric.Checks[name]})
	}

	out := []string{
		brief,
		wrap.Foreground(theme.Text).Render("Goal: " + strings.Join(st.Module.TargetOutcome, "; ")),
		a.editor.View(),
		components.RenderChips(chips, cw),
		theme.Hint.Render(fmt.Sprintf("Rubric %d/%d", st.Rubric.Score, promptlab.MaxScore)),
	}

	if st.Done {
		gold := theme.Tent.Width(cw).Render(
			theme.Subtitle.Render("A ringmaster's rendition") + "\n\n" +
				theme.Body.Render(st.Module.GoldPrompt))
		out = append(out, gold)
	}
	return out
}

func (a *ActScreen) renderSim(st *engine.Sim, cw int) []string {
	wrap := lipgloss.NewStyle().Width(cw)
	out := []string{
		theme.Card.Width(cw).Render(theme.Body.Render(st.Module.Scenario)),
		a.choices.View(),
	}
	if opt := st.Picked(); opt != nil {
		verdict := theme.Incorrect.Render("✗ The mark got played.")
		if opt.IsCorrect {
			verdict = theme.Correct.Render(fmt.Sprintf("✓ Con spotted. ★ %d pts.", st.Module.PointsCorrect))
		}
		out = append(out, verdict+"\n"+wrap.Foreground(theme.TextDim).Render(opt.Why))
	}
	return out
}

func (a *ActScreen) renderInfo(st *engine.Info, cw int) []string {
	wrap := lipgloss.NewStyle().Width(cw)
	var b strings.Builder
	for _, line := range st.Module.Bullets {
		b.WriteString("• " + line + "\n")
	}
	out := []string{wrap.Foreground(theme.Text).Render(strings.TrimRight(b.String(), "\n"))}

	if st.Module.Interactive() {
		out = append(out, wrap.Foreground(theme.Text).Render(st.Module.Prompt), a.choices.View())
	}
	return out
}

func (a *ActScreen) renderBooth(st *engine.Booth, cw int) []string {
	wrap := lipgloss.NewStyle().Width(cw)
	out := []string{wrap.Foreground(theme.Text).Render(st.Module.Intro)}
	if st.Module.Prompt != "" {
		out = append(out, theme.Hint.Render(st.Module.Prompt))
	}

	headers := [3]string{"Principle", "Analogy", "Closer"}
	colWidth := (cw - 4) / 3
	if colWidth < 14 {
		colWidth = 14
	}
	cols := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		h := theme.Unselected.Render(headers[i])
		if i == a.boothCol {
			h = theme.Subtitle.Render("▾ " + headers[i])
		}
		col := h + "\n" + a.boothLists[i].View()
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(col))
	}
	out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	if st.Complete() {
		out = append(out, theme.Tent.Width(cw).Render(
			theme.Subtitle.Render("Your comeback")+"\n\n"+
				theme.Body.Render(st.Response())))
	} else {
		out = append(out, theme.Hint.Render("Pick one from each column to build your comeback."))
	}
	return out
}
