package model

import "time"

// TestResult is the stored outcome of one accepted submission. Rows are only
// inserted, and removed together with their test.
type TestResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	TestID         uint      `json:"test_id" gorm:"not null;index"`
	Test           Test      `json:"-" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CompletedAt    time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
