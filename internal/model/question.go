package model

// Question types as stored in the question_type column.
const (
	QuestionSingle   = "single"
	QuestionMultiple = "multiple"
	QuestionText     = "text"
)

type Question struct {
	ID                uint     `gorm:"primarykey" json:"id"`
	TestID            uint     `json:"test_id" gorm:"not null;index"`
	Text              string   `json:"text" gorm:"type:text;not null"`
	QuestionType      string   `json:"question_type" gorm:"not null;default:single"`
	CorrectTextAnswer *string  `json:"correct_text_answer,omitempty" gorm:"type:text"`
	Position          int      `json:"position" gorm:"not null;default:0"`
	Answers           []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
}
