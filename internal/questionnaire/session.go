package questionnaire

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// Extension is a follow-up question inserted while the session ran.
type Extension struct {
	Question    Question `json:"question"`
	TriggeredBy string   `json:"triggered_by"`
}

type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Session walks one founder through a question bank. Follow-up questions are
// spliced right after the question that triggered them and are never
// removed, even if that answer later changes. A Session is not safe for
// concurrent use; callers serialize actions on one session.
type Session struct {
	artifactType ArtifactType
	bank         []Question
	sequence     []Question
	extensions   []Extension
	cursor       int
	answers      AnswerSet
	state        State
}

// NewSession starts a session over the built-in bank for t.
func NewSession(t ArtifactType) (*Session, error) {
	bank, err := ListQuestions(t)
	if err != nil {
		return nil, err
	}
	return newSession(t, bank), nil
}

// NewSessionWithBank starts a session over a caller supplied bank. The
// artifact type still selects the transform applied on completion.
func NewSessionWithBank(t ArtifactType, bank []Question) (*Session, error) {
	if _, ok := transforms[t]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArtifactType, t)
	}
	if err := checkBank(bank); err != nil {
		return nil, err
	}
	return newSession(t, cloneQuestions(bank)), nil
}

func newSession(t ArtifactType, bank []Question) *Session {
	s := &Session{artifactType: t, bank: bank}
	s.Restart()
	return s
}

func (s *Session) ArtifactType() ArtifactType { return s.artifactType }
func (s *Session) State() State               { return s.state }
func (s *Session) Completed() bool            { return s.state == StateCompleted }
func (s *Session) Cursor() int                { return s.cursor }
func (s *Session) Len() int                   { return len(s.sequence) }

// Sequence returns the effective sequence: the bank with extensions spliced in.
func (s *Session) Sequence() []Question { return cloneQuestions(s.sequence) }

func (s *Session) Extensions() []Extension {
	out := make([]Extension, len(s.extensions))
	for i, e := range s.extensions {
		out[i] = Extension{Question: e.Question.clone(), TriggeredBy: e.TriggeredBy}
	}
	return out
}

func (s *Session) Answers() AnswerSet { return s.answers.Clone() }

// CurrentQuestion returns the question under the cursor, or false once the
// sequence is exhausted.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.cursor >= len(s.sequence) {
		return Question{}, false
	}
	return s.sequence[s.cursor].clone(), true
}

// PriorAnswer returns the answer already recorded for the current question,
// used to pre-fill it after navigating back.
func (s *Session) PriorAnswer() string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	return s.answers[q.ID]
}

// SubmitAnswer records value for the current question and moves forward. It
// returns the artifact content when this answer completes the session and nil
// otherwise. A rejected answer leaves the session unchanged.
func (s *Session) SubmitAnswer(value string) (Content, error) {
	if s.Completed() {
		return nil, ErrSessionCompleted
	}
	q := s.sequence[s.cursor]
	if err := q.Validate(value); err != nil {
		return nil, err
	}

	// stored as submitted; rules see the trimmed value
	s.answers[q.ID] = value

	if q.FollowUp != nil {
		if next, ok := q.FollowUp.Evaluate(strings.TrimSpace(value)); ok && !s.has(next.ID) {
			s.sequence = slices.Insert(s.sequence, s.cursor+1, next)
			s.extensions = append(s.extensions, Extension{Question: next.clone(), TriggeredBy: q.ID})
		}
	}

	s.cursor++
	if s.cursor < len(s.sequence) {
		return nil, nil
	}
	s.state = StateCompleted
	return Transform(s.artifactType, s.answers)
}

// GoBack moves the cursor to the previous question. Answers and inserted
// follow-ups are kept.
func (s *Session) GoBack() error {
	if s.Completed() {
		return ErrSessionCompleted
	}
	if s.cursor == 0 {
		return ErrAtFirstQuestion
	}
	s.cursor--
	return nil
}

// CompleteEarly transforms whatever has been answered so far. It is a draft
// export: cursor and state do not change.
func (s *Session) CompleteEarly() (Content, error) {
	return Transform(s.artifactType, s.answers)
}

// Restart drops every answer and extension and returns to the first question.
func (s *Session) Restart() {
	s.sequence = cloneQuestions(s.bank)
	s.extensions = nil
	s.cursor = 0
	s.answers = AnswerSet{}
	s.state = StateInProgress
}

func (s *Session) Progress() Progress {
	total := len(s.sequence)
	current := min(s.cursor+1, total)
	p := Progress{Current: current, Total: total}
	if total > 0 {
		p.Percent = current * 100 / total
	}
	return p
}

func (s *Session) Clone() *Session {
	return &Session{
		artifactType: s.artifactType,
		bank:         cloneQuestions(s.bank),
		sequence:     cloneQuestions(s.sequence),
		extensions:   s.Extensions(),
		cursor:       s.cursor,
		answers:      s.answers.Clone(),
		state:        s.state,
	}
}

func (s *Session) has(id string) bool {
	return slices.ContainsFunc(s.sequence, func(q Question) bool { return q.ID == id })
}

type sessionJSON struct {
	ArtifactType ArtifactType `json:"artifact_type"`
	Bank         []Question   `json:"bank"`
	Sequence     []Question   `json:"sequence"`
	Extensions   []Extension  `json:"extensions"`
	Cursor       int          `json:"cursor"`
	Answers      AnswerSet    `json:"answers"`
	State        State        `json:"state"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionJSON{
		ArtifactType: s.artifactType,
		Bank:         s.bank,
		Sequence:     s.sequence,
		Extensions:   s.extensions,
		Cursor:       s.cursor,
		Answers:      s.answers,
		State:        s.state,
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var raw sessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := transforms[raw.ArtifactType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedArtifactType, raw.ArtifactType)
	}
	if len(raw.Bank) == 0 || len(raw.Sequence) < len(raw.Bank) {
		return fmt.Errorf("questionnaire session: malformed question sequence")
	}
	if raw.Cursor < 0 || raw.Cursor > len(raw.Sequence) {
		return fmt.Errorf("questionnaire session: cursor %d out of range", raw.Cursor)
	}
	if (raw.Cursor == len(raw.Sequence)) != (raw.State == StateCompleted) {
		return fmt.Errorf("questionnaire session: state %q inconsistent with cursor", raw.State)
	}
	if raw.Answers == nil {
		raw.Answers = AnswerSet{}
	}

	*s = Session{
		artifactType: raw.ArtifactType,
		bank:         raw.Bank,
		sequence:     raw.Sequence,
		extensions:   raw.Extensions,
		cursor:       raw.Cursor,
		answers:      raw.Answers,
		state:        raw.State,
	}
	return nil
}
