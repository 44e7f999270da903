// Package promptlab scores a free-text prompt draft against a fixed rubric
// of seven pattern checks. The rubric rewards structure, not perfection:
// each check looks for one family of signals (role framing, task verbs,
// provided facts, constraints, output format, verification, safety).
package promptlab

import (
	"regexp"
	"strings"
)

// MaxScore is the number of rubric checks.
const MaxScore = 7

// CheckNames lists the rubric checks in display order.
var CheckNames = []string{
	"role",
	"task",
	"context",
	"constraints",
	"format",
	"verification",
	"safety",
}

var checkPatterns = map[string]*regexp.Regexp{
	"role":         regexp.MustCompile(`you are|act as|role:`),
	"task":         regexp.MustCompile(`task:|write|generate|create|draft|produce`),
	"context":      regexp.MustCompile(`facts|context|inputs|given|may use`),
	"constraints":  regexp.MustCompile(`must|must not|do not|avoid|only|limit|constraints`),
	"format":       regexp.MustCompile(`output format|format|json|bullets|schema|headings`),
	"verification": regexp.MustCompile(`qa|checklist|verify|validate|assumptions|unknown|questions`),
	"safety":       regexp.MustCompile(`personal data|pii|sensitive|refuse|allowlist|untrusted`),
}

// Result is the outcome of scoring one draft.
type Result struct {
	Score  int             `json:"score"`
	Checks map[string]bool `json:"checks"`
}

// Score evaluates a draft against the rubric. It is pure and deterministic:
// identical input always yields an identical Result.
func Score(draft string) Result {
	t := strings.ToLower(draft)

	checks := make(map[string]bool, len(checkPatterns))
	score := 0
	for name, re := range checkPatterns {
		ok := re.MatchString(t)
		checks[name] = ok
		if ok {
			score++
		}
	}

	return Result{Score: score, Checks: checks}
}
