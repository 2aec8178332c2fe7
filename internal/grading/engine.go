// Package grading scores a submitted attempt against a test's answer key.
//
// The engine is pure: it performs no I/O, holds no state and returns the same
// outcome for the same inputs, so a single Grader is shared by all requests.
package grading

import (
	"math"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
)

// Grader routes every question to the rule for its type and sums the verdicts.
type Grader interface {
	Grade(key TestKey, responses []Response) (Outcome, error)
}

type grader struct{}

func NewGrader() Grader {
	return grader{}
}

// Grade checks that the submission covers every question exactly once and
// grades each one independently. Shape problems are reported as validation
// errors; wrong answers are not errors.
func (grader) Grade(key TestKey, responses []Response) (Outcome, error) {
	if len(responses) != len(key.Questions) {
		return Outcome{}, apperror.Validation("all questions must be answered")
	}

	byQuestion := make(map[uint]Response, len(responses))
	for _, r := range responses {
		if _, dup := byQuestion[r.QuestionID]; dup {
			return Outcome{}, apperror.Validation("question %d answered more than once", r.QuestionID)
		}
		byQuestion[r.QuestionID] = r
	}

	out := Outcome{
		TotalQuestions: len(key.Questions),
		Verdicts:       make([]Verdict, 0, len(key.Questions)),
	}
	for _, q := range key.Questions {
		r, ok := byQuestion[q.ID]
		if !ok {
			return Outcome{}, apperror.Validation("question %d is not answered", q.ID)
		}
		correct, err := gradeQuestion(q, r)
		if err != nil {
			return Outcome{}, err
		}
		if correct {
			out.Score++
		}
		out.Verdicts = append(out.Verdicts, Verdict{QuestionID: q.ID, Correct: correct})
	}
	return out, nil
}

func gradeQuestion(q Question, r Response) (bool, error) {
	switch q.Type {
	case Text:
		if r.AnswerID != nil || r.AnswerIDs != nil {
			return false, apperror.Validation("question %d expects a text answer", q.ID)
		}
		return gradeText(q, r.TextAnswer), nil
	case Single:
		if r.AnswerIDs != nil || r.TextAnswer != nil {
			return false, apperror.Validation("question %d expects a single answer id", q.ID)
		}
		return gradeSingle(q, r.AnswerID), nil
	case Multiple:
		if r.AnswerID != nil || r.TextAnswer != nil {
			return false, apperror.Validation("question %d expects a list of answer ids", q.ID)
		}
		return gradeMultiple(q, r.AnswerIDs), nil
	}
	return false, apperror.Validation("question %d has unsupported type %q", q.ID, q.Type)
}

func gradeText(q Question, answer *string) bool {
	if answer == nil {
		return false
	}
	return normalize(*answer) == normalize(q.CorrectText)
}

// gradeSingle accepts any option marked correct, so a key with several
// correct options is graded as authored.
func gradeSingle(q Question, answerID *uint) bool {
	if answerID == nil {
		return false
	}
	for _, o := range q.Options {
		if o.ID == *answerID {
			return o.Correct
		}
	}
	return false
}

// gradeMultiple requires the chosen set to equal the correct set exactly.
// A key without correct options can never be satisfied.
func gradeMultiple(q Question, answerIDs []uint) bool {
	correct := make(map[uint]struct{})
	for _, o := range q.Options {
		if o.Correct {
			correct[o.ID] = struct{}{}
		}
	}
	if len(correct) == 0 {
		return false
	}
	return setEqual(correct, toSet(answerIDs))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSet(ids []uint) map[uint]struct{} {
	m := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func setEqual(a, b map[uint]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Percentage returns score/total*100 rounded half up. A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}
