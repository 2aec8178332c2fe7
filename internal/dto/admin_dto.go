package dto

// AnswerCreateDTO is one option of a choice question.
type AnswerCreateDTO struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within TestCreateDTO and TestUpdateDTO.
type QuestionCreateDTO struct {
	Text              string            `json:"text"`
	QuestionType      string            `json:"question_type" binding:"omitempty,oneof=single multiple text"`
	CorrectTextAnswer *string           `json:"correct_text_answer"`
	Answers           []AnswerCreateDTO `json:"answers"`
}

// TestCreateDTO is sent by a teacher or admin to create a test with all its questions.
type TestCreateDTO struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	GroupIDs    []uint              `json:"group_ids"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"dive"`
}

// TestUpdateDTO replaces the parts of a test that are present. Nil fields are
// left untouched; an empty group_ids list makes the test general.
type TestUpdateDTO struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	GroupIDs    *[]uint             `json:"group_ids"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// GroupCreateDTO creates a student group.
type GroupCreateDTO struct {
	Name string `json:"name" binding:"required"`
}
