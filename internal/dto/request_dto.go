package dto

// SubmittedAnswerDTO is the learner's answer to one question. Which field is
// set depends on the question type: answerId for single, answerIds for
// multiple, textAnswer for text.
type SubmittedAnswerDTO struct {
	QuestionID uint    `json:"questionId" binding:"required"`
	AnswerID   *uint   `json:"answerId,omitempty"`
	AnswerIDs  []uint  `json:"answerIds,omitempty"`
	TextAnswer *string `json:"textAnswer,omitempty"`
}

// TestSubmitDTO is the body of POST /api/tests/{id}/submit.
type TestSubmitDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
