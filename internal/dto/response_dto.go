package dto

import "time"

// ErrorResponse is a generic error response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse acknowledges a mutation that has no other payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitResultDTO is returned after a submission has been graded and stored.
type SubmitResultDTO struct {
	Success        bool `json:"success"`
	CorrectAnswers int  `json:"correctAnswers"`
	TotalQuestions int  `json:"totalQuestions"`
	Percentage     int  `json:"percentage"`
}

// UserStatDTO is one row of the per-test statistics table.
type UserStatDTO struct {
	Username     string `json:"username"`
	Group        string `json:"group"`
	Attempts     int    `json:"attempts"`
	BestScore    int    `json:"bestScore"`
	WorstScore   int    `json:"worstScore"`
	AverageScore int    `json:"averageScore"`
}

// TestStatisticsDTO is the body of GET /api/tests/{id}/statistics.
type TestStatisticsDTO struct {
	UserStats     []UserStatDTO `json:"userStats"`
	TotalUsers    int           `json:"totalUsers"`
	TotalAttempts int           `json:"totalAttempts"`
}

// MyStatDTO is one entry of GET /api/students/my-stats.
type MyStatDTO struct {
	TestTitle    string    `json:"test_title"`
	Author       string    `json:"author"`
	Attempts     int       `json:"attempts"`
	BestScore    int       `json:"best_score"`
	WorstScore   int       `json:"worst_score"`
	AverageScore int       `json:"average_score"`
	LastAttempt  time.Time `json:"last_attempt"`
}

type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	GroupID  *uint  `json:"group_id"`
}

type LoginResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type HealthDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	DBStatus  string    `json:"dbStatus"`
}
