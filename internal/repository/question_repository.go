package repository

import (
	"context"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	FindInTest(ctx context.Context, testID, questionID uint) (*model.Question, error)
	CountByTest(ctx context.Context, testID uint) (int64, error)
	Delete(ctx context.Context, questionID uint) error
	ReplaceForTest(ctx context.Context, testID uint, questions []model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) FindInTest(ctx context.Context, testID, questionID uint) (*model.Question, error) {
	var q model.Question
	err := r.db.WithContext(ctx).
		Where("id = ? AND test_id = ?", questionID, testID).
		First(&q).Error
	if err != nil {
		return nil, classify(err, apperror.NotFound("question %d not found in test %d", questionID, testID), "find question")
	}
	return &q, nil
}

func (r *questionRepository) CountByTest(ctx context.Context, testID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("test_id = ?", testID).Count(&n).Error
	return n, classify(err, nil, "count questions")
}

func (r *questionRepository) Delete(ctx context.Context, questionID uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
		return classify(err, nil, "delete answers")
	}
	res := db.Delete(&model.Question{}, questionID)
	if res.Error != nil {
		return classify(res.Error, nil, "delete question")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("question %d not found", questionID)
	}
	return nil
}

// ReplaceForTest drops the test's questions and inserts the given ones in
// order.
func (r *questionRepository) ReplaceForTest(ctx context.Context, testID uint, questions []model.Question) error {
	db := r.db.WithContext(ctx)
	if err := deleteQuestionsOfTest(db, testID); err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}
	for i := range questions {
		questions[i].ID = 0
		questions[i].TestID = testID
	}
	return classify(db.Create(&questions).Error, nil, "create questions")
}

func deleteQuestionsOfTest(db *gorm.DB, testID uint) error {
	sub := db.Model(&model.Question{}).Select("id").Where("test_id = ?", testID)
	if err := db.Where("question_id IN (?)", sub).Delete(&model.Answer{}).Error; err != nil {
		return classify(err, nil, "delete answers")
	}
	if err := db.Where("test_id = ?", testID).Delete(&model.Question{}).Error; err != nil {
		return classify(err, nil, "delete questions")
	}
	return nil
}
