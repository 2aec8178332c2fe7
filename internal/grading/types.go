package grading

import (
	"fmt"
	"strings"
)

// QuestionType is the closed set of question kinds the engine knows how to
// grade.
type QuestionType string

const (
	Single   QuestionType = "single"
	Multiple QuestionType = "multiple"
	Text     QuestionType = "text"
)

// ParseQuestionType converts a stored or submitted type name. Unknown names
// are rejected instead of falling through to a default.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(strings.ToLower(strings.TrimSpace(s))) {
	case Single:
		return Single, nil
	case Multiple:
		return Multiple, nil
	case Text:
		return Text, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

func (t QuestionType) IsChoice() bool {
	return t == Single || t == Multiple
}

// Option is one answer option of a choice question.
type Option struct {
	ID      uint
	Correct bool
}

// Question is the answer key of a single question.
type Question struct {
	ID          uint
	Type        QuestionType
	CorrectText string
	Options     []Option
}

// TestKey is the full answer key of a test, questions in display order.
type TestKey struct {
	TestID    uint
	Questions []Question
}

// Response is a learner's answer to one question. Exactly one of the answer
// fields is expected, matching the question type.
type Response struct {
	QuestionID uint
	AnswerID   *uint
	AnswerIDs  []uint
	TextAnswer *string
}

// Verdict is the per-question grading result.
type Verdict struct {
	QuestionID uint
	Correct    bool
}

// Outcome is the graded result of a whole submission.
type Outcome struct {
	Score          int
	TotalQuestions int
	Verdicts       []Verdict
}

// Percentage is the outcome's score as a rounded percentage.
func (o Outcome) Percentage() int {
	return Percentage(o.Score, o.TotalQuestions)
}
