package workshop

// Score sums the point values across an answer set. Payloads that carry no
// point value (booth answers) contribute zero. Order-independent and
// idempotent; the result is never negative for catalog-produced answers.
func Score(answers AnswerSet) int {
	total := 0
	for _, a := range answers {
		total += points(a)
	}
	return total
}

// Points returns the point value carried by a single answer, zero for
// payloads without one.
func Points(a Answer) int {
	return points(a)
}

func points(a Answer) int {
	switch v := a.(type) {
	case PollAnswer:
		return v.Points
	case QuizAnswer:
		return v.Points
	case TriageAnswer:
		return v.Points
	case SimAnswer:
		return v.Points
	case InfoAnswer:
		return v.Points
	}
	return 0
}
