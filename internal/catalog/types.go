package catalog

// Kind discriminates the module variants in the catalog.
type Kind string

const (
	KindPoll         Kind = "poll"
	KindQuiz         Kind = "quiz"
	KindPromptTriage Kind = "promptTriage"
	KindSecuritySim  Kind = "securitySim"
	KindInfo         Kind = "info"
	KindBooth        Kind = "booth"
)

// DefaultArea is used when a module declares no park area.
const DefaultArea = "Park"

// Park holds the map placement metadata for a module.
type Park struct {
	Area       string `json:"area"`
	Attraction string `json:"attraction"`
	Blurb      string `json:"blurb"`
	Time       string `json:"time"`
	Level      string `json:"level"`
	Icon       string `json:"icon"`
}

// Meta carries the fields common to every module variant.
type Meta struct {
	ID    string `json:"id"`
	Slug  string `json:"slug,omitempty"`
	Title string `json:"title"`
	Park  Park   `json:"park"`
}

// Area returns the park area, falling back to DefaultArea.
func (m Meta) Area() string {
	if m.Park.Area == "" {
		return DefaultArea
	}
	return m.Park.Area
}

// Module is the closed set of catalog entries. Exactly the six variant
// types in this file implement it.
type Module interface {
	Describe() Meta
	Kind() Kind

	module()
}

// Option is a single selectable choice.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Reveal is the explanation shown after a poll is answered.
type Reveal struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// Poll is a single-choice module. The first pick locks the answer.
type Poll struct {
	Meta
	Prompt  string         `json:"prompt"`
	Options []Option       `json:"options"`
	Points  map[string]int `json:"points"`
	Reveal  *Reveal        `json:"reveal,omitempty"`
}

// QuizChoice is one answer candidate within a quiz item.
type QuizChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizItem is one sub-question of a quiz.
type QuizItem struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Choices  []QuizChoice `json:"choices"`
	AnswerID string       `json:"answerId"`
	Explain  string       `json:"explain"`
	Points   int          `json:"points"` // 0 means the default of 1
}

// Quiz is a multi-question module with a single atomic submit.
type Quiz struct {
	Meta
	Items []QuizItem `json:"items"`
}

// CaseFile is the sanitized reference material for a prompt-triage exercise.
type CaseFile struct {
	Language   string   `json:"language"`
	Subject    string   `json:"subject"`
	Preheader  string   `json:"preheader"`
	Hero       string   `json:"hero"`
	Expiry     string   `json:"expiry"`
	PrimaryCTA string   `json:"primaryCta"`
	Benefits   []string `json:"benefits"`
}

// PromptTriage is a free-text prompt-rewriting exercise scored by the
// promptlab rubric.
type PromptTriage struct {
	Meta
	CaseFile      CaseFile `json:"casefile"`
	BadPrompt     string   `json:"badPrompt"`
	TargetOutcome []string `json:"targetOutcome"`
	GoldPrompt    string   `json:"goldPrompt"`
}

// SimOption is a security-scenario choice with a static verdict.
type SimOption struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsCorrect bool   `json:"isCorrect"`
	Why       string `json:"why"`
}

// SecuritySim is a single-choice scenario. The first pick is terminal.
type SecuritySim struct {
	Meta
	Scenario      string      `json:"scenario"`
	Options       []SimOption `json:"options"`
	PointsCorrect int         `json:"pointsCorrect"`
}

// Info is a read-mostly module with an optional one-shot prompt.
type Info struct {
	Meta
	Bullets []string `json:"bullets"`
	Prompt  string   `json:"prompt,omitempty"`
	Options []Option `json:"options,omitempty"`
}

// Interactive reports whether the info module carries a scorable prompt.
func (i *Info) Interactive() bool {
	return i.Prompt != "" && len(i.Options) > 0
}

// BoothPart is one selectable fragment of a booth comeback.
type BoothPart struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Booth is the three-part comeback builder. Each part stays re-selectable;
// the module completes the moment all three are chosen.
type Booth struct {
	Meta
	Intro      string      `json:"intro"`
	Prompt     string      `json:"prompt,omitempty"`
	Principles []BoothPart `json:"principles"`
	Analogies  []BoothPart `json:"analogies"`
	Closings   []BoothPart `json:"closings"`
}

func (p *Poll) Describe() Meta         { return p.Meta }
func (q *Quiz) Describe() Meta         { return q.Meta }
func (t *PromptTriage) Describe() Meta { return t.Meta }
func (s *SecuritySim) Describe() Meta  { return s.Meta }
func (i *Info) Describe() Meta         { return i.Meta }
func (b *Booth) Describe() Meta        { return b.Meta }

func (p *Poll) Kind() Kind         { return KindPoll }
func (q *Quiz) Kind() Kind         { return KindQuiz }
func (t *PromptTriage) Kind() Kind { return KindPromptTriage }
func (s *SecuritySim) Kind() Kind  { return KindSecuritySim }
func (i *Info) Kind() Kind         { return KindInfo }
func (b *Booth) Kind() Kind        { return KindBooth }

func (p *Poll) module()         {}
func (q *Quiz) module()         {}
func (t *PromptTriage) module() {}
func (s *SecuritySim) module()  {}
func (i *Info) module()         {}
func (b *Booth) module()        {}
