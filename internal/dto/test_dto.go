package dto

import "time"

type GroupDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AnswerDTO hides is_correct from students by leaving it nil.
type AnswerDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

type QuestionDTO struct {
	ID                uint        `json:"id"`
	Text              string      `json:"text"`
	QuestionType      string      `json:"question_type"`
	CorrectTextAnswer *string     `json:"correct_text_answer,omitempty"`
	Answers           []AnswerDTO `json:"answers"`
}

// TestSummaryDTO is used for listing tests.
type TestSummaryDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AuthorID    uint       `json:"author_id"`
	Author      string     `json:"author"`
	Groups      []GroupDTO `json:"groups"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TestDetailDTO is a test with its questions, as shown to the caller.
type TestDetailDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AuthorID    uint          `json:"author_id"`
	Author      string        `json:"author"`
	Groups      []GroupDTO    `json:"groups"`
	Questions   []QuestionDTO `json:"questions"`
}

type TestCreatedDTO struct {
	Success bool   `json:"success"`
	TestID  uint   `json:"testId"`
	Message string `json:"message"`
}

type CheckAccessDTO struct {
	HasAccess bool `json:"hasAccess"`
}
