package repository

import (
	"context"
	"time"

	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/statistics"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	WithTx(tx *gorm.DB) TestResultRepository
	Create(ctx context.Context, result *model.TestResult) error
	CountByTest(ctx context.Context, testID uint) (int64, error)
	RowsForTest(ctx context.Context, testID uint) ([]statistics.AttemptRow, error)
	RowsForUser(ctx context.Context, userID uint) ([]statistics.AttemptRow, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) WithTx(tx *gorm.DB) TestResultRepository {
	return &testResultRepository{db: tx}
}

func (r *testResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	err := r.db.WithContext(ctx).Omit("User", "Test").Create(result).Error
	return classify(err, nil, "create test result")
}

func (r *testResultRepository) CountByTest(ctx context.Context, testID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TestResult{}).Where("test_id = ?", testID).Count(&n).Error
	return n, classify(err, nil, "count test results")
}

// attemptRecord is the flat shape of a joined result row.
type attemptRecord struct {
	UserID         uint
	Username       string
	GroupName      string
	TestID         uint
	TestTitle      string
	Author         string
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}

func (r *testResultRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("test_results AS tr").
		Select(`tr.user_id, u.username, COALESCE(g.name, '') AS group_name,
			tr.test_id, t.title AS test_title, COALESCE(a.username, '') AS author,
			tr.score, tr.total_questions, tr.completed_at`).
		Joins("JOIN users u ON u.id = tr.user_id").
		Joins("LEFT JOIN user_groups g ON g.id = u.group_id").
		Joins("JOIN tests t ON t.id = tr.test_id").
		Joins("LEFT JOIN users a ON a.id = t.author_id").
		Order("tr.completed_at ASC, tr.id ASC")
}

// RowsForTest returns every stored result of one test with user and group
// names.
func (r *testResultRepository) RowsForTest(ctx context.Context, testID uint) ([]statistics.AttemptRow, error) {
	var records []attemptRecord
	if err := r.joined(ctx).Where("tr.test_id = ?", testID).Scan(&records).Error; err != nil {
		return nil, classify(err, nil, "load test results")
	}
	return toAttemptRows(records), nil
}

// RowsForUser returns every stored result of one user with test titles and
// authors.
func (r *testResultRepository) RowsForUser(ctx context.Context, userID uint) ([]statistics.AttemptRow, error) {
	var records []attemptRecord
	if err := r.joined(ctx).Where("tr.user_id = ?", userID).Scan(&records).Error; err != nil {
		return nil, classify(err, nil, "load user results")
	}
	return toAttemptRows(records), nil
}

func toAttemptRows(records []attemptRecord) []statistics.AttemptRow {
	rows := make([]statistics.AttemptRow, len(records))
	for i, rec := range records {
		rows[i] = statistics.AttemptRow{
			UserID:         rec.UserID,
			Username:       rec.Username,
			Group:          rec.GroupName,
			TestID:         rec.TestID,
			TestTitle:      rec.TestTitle,
			Author:         rec.Author,
			Score:          rec.Score,
			TotalQuestions: rec.TotalQuestions,
			CompletedAt:    rec.CompletedAt,
		}
	}
	return rows
}
